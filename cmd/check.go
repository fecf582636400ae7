package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/csvquiz/internal/quiz"
)

var errEmptyBank = errors.New("question bank has no questions")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the question bank and list its questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		showAnswers, _ := cmd.Flags().GetBool("answers")

		qs, err := newLoader(cfg, quiz.NoShuffle, log).Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("check %s: %w", cfg.Source, err)
		}
		if len(qs) == 0 {
			return fmt.Errorf("check %s: %w", cfg.Source, errEmptyBank)
		}

		printBank(cmd, qs, showAnswers)
		return nil
	},
}

func printBank(cmd *cobra.Command, qs []quiz.Question, showAnswers bool) {
	out := cmd.OutOrStdout()

	header := fmt.Sprintf("%-4s  %-50s", "#", "Question")
	if showAnswers {
		header += "  Correct Answer"
	}
	fmt.Fprintln(out, header)
	fmt.Fprintln(out, strings.Repeat("─", 80))

	for i, q := range qs {
		prompt := q.Prompt
		if len([]rune(prompt)) > 50 {
			prompt = string([]rune(prompt)[:47]) + "..."
		}
		line := fmt.Sprintf("%-4d  %-50s", i+1, prompt)
		if showAnswers {
			line += "  " + q.Correct
			if q.OptionIndex(q.Correct) < 0 {
				line += " (not among the options)"
			}
		}
		fmt.Fprintln(out, line)
	}

	fmt.Fprintf(out, "\n%d questions\n", len(qs))
}

func init() {
	checkCmd.Flags().Bool("answers", false, "Show the correct answer for each question")
}
