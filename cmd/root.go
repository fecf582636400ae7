package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/csvquiz/internal/config"
	"github.com/abhisek/csvquiz/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "csvquiz",
	Short: "Multiple-choice quiz from a CSV question bank",
	Long: "csvquiz loads a CSV question bank from a file or URL and runs a " +
		"multiple-choice quiz in the terminal.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("source", "", "Question bank file path or http(s) URL (overrides CSVQUIZ_SOURCE)")
	pf.String("config", "", "Path to a config file (default ./csvquiz.yaml)")
	pf.String("log-file", "", "Log file path, - for stderr (overrides CSVQUIZ_LOG_FILE)")
	pf.String("env", "", "Environment name; production switches to JSON logs")
	pf.Bool("reshuffle-on-restart", false, "Shuffle the questions again on restart")
	pf.Uint64("seed", 0, "Shuffle seed for a reproducible order (0 = random)")
	pf.Duration("fetch-timeout", 0, "Timeout for fetching a remote bank (0 = none)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and builds the logger for cmd.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
