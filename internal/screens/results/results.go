package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/csvquiz/internal/quiz"
	"github.com/abhisek/csvquiz/internal/router"
	"github.com/abhisek/csvquiz/internal/screen"
	"github.com/abhisek/csvquiz/internal/ui/components"
	"github.com/abhisek/csvquiz/internal/ui/layout"
	"github.com/abhisek/csvquiz/internal/ui/theme"
)

// ResultsScreen shows the score, performance tier and a per-question
// review of a submitted session.
type ResultsScreen struct {
	session *quiz.Session
	offset  int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(session *quiz.Session) *ResultsScreen {
	return &ResultsScreen{session: session}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "r/Enter", Description: "Restart"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r", "enter":
		s.session.Restart()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "q":
		return s, tea.Quit
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < s.session.Len()-1 {
			s.offset++
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	res := s.session.Result()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("Score: %d / %d        %d%%", res.Score, res.Total, res.Percentage)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(scoreLine))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewScoreBar(res.Percentage, min(width-8, 40)).View()))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(tierColor(res.Tier)).
		Render(res.Tier.Label() + ". " + res.Tier.Message()))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Review")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	header := b.String()
	room := height - lipgloss.Height(header)

	rows := make([]string, 0, len(res.Items))
	for _, item := range res.Items {
		rows = append(rows, renderItem(item, width))
	}
	b.WriteString(visible(rows, s.offset, room))

	return b.String()
}

// visible returns the review rows starting at offset that fit in room lines.
func visible(rows []string, offset, room int) string {
	if offset >= len(rows) {
		offset = max(len(rows)-1, 0)
	}
	var b strings.Builder
	used := 0
	for _, r := range rows[offset:] {
		h := lipgloss.Height(r) + 1
		if used > 0 && used+h > room {
			break
		}
		b.WriteString(r)
		b.WriteString("\n")
		used += h
	}
	return b.String()
}

func renderItem(item quiz.ReviewItem, width int) string {
	inner := min(width-8, 72)
	if inner < 20 {
		inner = 20
	}

	mark := theme.Correct.Render("✓")
	if !item.IsCorrect {
		mark = theme.Incorrect.Render("✗")
	}

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(inner - 6).
		Render(fmt.Sprintf("%d. %s", item.Number, item.Prompt))

	var answer string
	switch {
	case !item.Answered:
		answer = theme.Incorrect.Render("not answered")
	case item.IsCorrect:
		answer = "your answer: " + theme.Correct.Render(item.Answer)
	default:
		answer = "your answer: " + theme.Incorrect.Render(item.Answer)
	}
	lines := []string{"     " + answer}
	if !item.IsCorrect {
		lines = append(lines, "     correct answer: "+theme.Correct.Render(item.Correct))
	}

	block := lipgloss.JoinHorizontal(lipgloss.Top, " "+mark+"  ", prompt) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(lines, "\n"))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(inner).Render(block))
}

// tierColor returns the theme color for a performance tier.
func tierColor(t quiz.Tier) color.Color {
	switch t {
	case quiz.TierExcellent:
		return theme.Success
	case quiz.TierGood:
		return theme.Warning
	default:
		return theme.Error
	}
}
