package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/csvquiz/internal/quiz"
	"github.com/abhisek/csvquiz/internal/ui/theme"
)

// MultiChoice renders a question with its four labelled options and lets
// the user move focus and choose one. Choosing only updates Selected; the
// caller decides what a choice means.
type MultiChoice struct {
	Prompt   string
	Options  []string
	Focused  int
	Selected string
}

// NewMultiChoice creates a selector for q with selected pre-chosen. Focus
// starts on the selected option, or the first one.
func NewMultiChoice(q quiz.Question, selected string) MultiChoice {
	focus := q.OptionIndex(selected)
	if focus < 0 {
		focus = 0
	}
	return MultiChoice{
		Prompt:   q.Prompt,
		Options:  q.Options[:],
		Focused:  focus,
		Selected: selected,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles focus movement and selection keys.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Focused > 0 {
			m.Focused--
		}
	case "down", "j":
		if m.Focused < len(m.Options)-1 {
			m.Focused++
		}
	case "space", " ", "enter":
		m.choose(m.Focused)
	default:
		if i := optionKeyIndex(key); i >= 0 && i < len(m.Options) {
			m.Focused = i
			m.choose(i)
		}
	}

	return m, nil
}

func (m *MultiChoice) choose(i int) {
	if i < 0 || i >= len(m.Options) {
		return
	}
	m.Selected = m.Options[i]
}

// optionKeyIndex maps a-d / A-D / 1-4 to an option index, or -1.
func optionKeyIndex(key string) int {
	if len(key) != 1 {
		return -1
	}
	c := key[0]
	switch {
	case c >= 'a' && c < 'a'+quiz.OptionCount:
		return int(c - 'a')
	case c >= 'A' && c < 'A'+quiz.OptionCount:
		return int(c - 'A')
	case c >= '1' && c < '1'+quiz.OptionCount:
		return int(c - '1')
	}
	return -1
}

// View renders the prompt and options.
func (m MultiChoice) View(width int) string {
	var b strings.Builder

	promptWidth := width - 4
	if promptWidth > 72 {
		promptWidth = 72
	}
	if promptWidth < 10 {
		promptWidth = 10
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(promptWidth).
		Render(m.Prompt))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Focused {
			prefix = "▸ "
		}
		mark := "○"
		chosen := m.Selected != "" && opt == m.Selected
		if chosen {
			mark = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, quiz.OptionLabel(i), opt)

		switch {
		case chosen:
			b.WriteString(theme.Chosen.Render(line))
		case i == m.Focused:
			b.WriteString(theme.Focused.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
