package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/csvquiz/internal/ui/components"
	"github.com/abhisek/csvquiz/internal/ui/theme"
)

const contentMaxWidth = 76

// renderLoading shows the spinner while the bank is fetched.
func (s *QuizScreen) renderLoading(width, height int) string {
	msg := s.spinner.View() + " " + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Loading questions from "+s.source)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// renderEmpty is shown when the bank could not be loaded or had no rows.
func renderEmpty(width, height int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("No questions available"),
		"",
		theme.Hint.Render("Check the question source and try again."),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// renderSubmitted covers the frame between submit and the results push.
func renderSubmitted(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Hint.Render("Scoring..."))
}

// renderQuestion renders progress, the current question and the nav buttons.
func (s *QuizScreen) renderQuestion(width, height int) string {
	inner := width - 4
	if inner > contentMaxWidth {
		inner = contentMaxWidth
	}

	pos, total := s.session.Progress()

	var b strings.Builder

	b.WriteString(components.NewQuestionProgress(pos, total, inner).View())
	b.WriteString("\n\n")

	b.WriteString(s.choice.View(inner))
	b.WriteString("\n")

	nextLabel := "Next"
	if s.session.IsLast() {
		nextLabel = "Submit"
	}
	b.WriteString(components.ButtonRow(
		components.NewButton("Previous", "←", s.session.CanRetreat()),
		components.NewButton(nextLabel, "→", s.session.CanAdvance()),
	))

	if s.session.Selection() == "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Choose an option to continue."))
	}

	content := lipgloss.NewStyle().
		Width(inner).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().PaddingTop(1).Render(content))
}
