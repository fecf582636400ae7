package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/csvquiz/internal/ui/theme"
)

const minBarWidth = 4

// ProgressBar is a labelled horizontal bar. Percent is a fraction in [0, 1].
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// NewQuestionProgress builds the "Question i of n" indicator.
func NewQuestionProgress(position, total, width int) ProgressBar {
	var frac float64
	if total > 0 {
		frac = float64(position) / float64(total)
	}
	return NewProgressBar(fmt.Sprintf("Question %d of %d", position, total), frac, false, width)
}

// NewScoreBar builds the bar under the final score. percentage is 0-100.
func NewScoreBar(percentage, width int) ProgressBar {
	return NewProgressBar("", float64(percentage)/100, true, width)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	suffix := ""
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %3d%%", int(clamp(p.Percent)*100+0.5)))
	}

	barWidth := max(p.Width-lipgloss.Width(b.String())-lipgloss.Width(suffix), minBarWidth)
	filled := int(float64(barWidth) * clamp(p.Percent))

	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)))
	b.WriteString(suffix)

	return b.String()
}

func clamp(f float64) float64 {
	return min(max(f, 0), 1)
}
