package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/csvquiz/internal/ui/layout"
)

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Choose key.Binding
	Move   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "n", "tab"),
			key.WithHelp("→/n", "Next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "p", "shift+tab"),
			key.WithHelp("←/p", "Previous"),
		),
		Choose: key.NewBinding(
			key.WithKeys("a", "b", "c", "d", "1", "2", "3", "4", "space", "enter"),
			key.WithHelp("A-D/Enter", "Choose"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑↓", "Move"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// hints converts enabled bindings to footer hints.
func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
