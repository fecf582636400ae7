package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/csvquiz/internal/ui/theme"
)

// Button is a navigation control. Inactive buttons render dimmed and the
// screen ignores their keys.
type Button struct {
	Label  string
	Hotkey string
	Active bool
}

// NewButton creates a new button.
func NewButton(label, hotkey string, active bool) Button {
	return Button{
		Label:  label,
		Hotkey: hotkey,
		Active: active,
	}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Hotkey != "" {
		label = b.Hotkey + " " + label
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow joins buttons horizontally with a gap.
func ButtonRow(buttons ...Button) string {
	views := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			views = append(views, strings.Repeat(" ", 3))
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
