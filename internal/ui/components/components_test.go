package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/csvquiz/internal/quiz"
)

func question() quiz.Question {
	return quiz.Question{
		Prompt:  "What is the capital of France?",
		Options: [quiz.OptionCount]string{"Berlin", "Paris", "Rome", "Madrid"},
		Correct: "Paris",
	}
}

func TestNewMultiChoice_FocusFollowsSelection(t *testing.T) {
	assert.Equal(t, 0, NewMultiChoice(question(), "").Focused)
	assert.Equal(t, 2, NewMultiChoice(question(), "Rome").Focused)
	assert.Equal(t, 0, NewMultiChoice(question(), "Lyon").Focused)
}

func TestMultiChoice_MoveFocusStaysInBounds(t *testing.T) {
	m := NewMultiChoice(question(), "")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, m.Focused)

	for range 10 {
		m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	}
	assert.Equal(t, 3, m.Focused)
	assert.Empty(t, m.Selected, "moving focus does not choose")
}

func TestMultiChoice_ChooseKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyPressMsg
		want string
	}{
		{"letter", tea.KeyPressMsg{Code: 'c', Text: "c"}, "Rome"},
		{"upper letter", tea.KeyPressMsg{Code: 'D', Text: "D"}, "Madrid"},
		{"digit", tea.KeyPressMsg{Code: '2', Text: "2"}, "Paris"},
		{"enter on focus", tea.KeyPressMsg{Code: tea.KeyEnter}, "Berlin"},
		{"space on focus", tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}, "Berlin"},
		{"out of range", tea.KeyPressMsg{Code: 'e', Text: "e"}, ""},
		{"digit out of range", tea.KeyPressMsg{Code: '5', Text: "5"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := NewMultiChoice(question(), "").Update(tt.msg)
			assert.Equal(t, tt.want, m.Selected)
		})
	}
}

func TestMultiChoice_View(t *testing.T) {
	m := NewMultiChoice(question(), "Paris")
	view := ansi.Strip(m.View(80))

	assert.Contains(t, view, "What is the capital of France?")
	assert.Contains(t, view, "A)  Berlin")
	assert.Contains(t, view, "● B)  Paris")
	assert.Contains(t, view, "▸ ● B)  Paris")
	assert.Equal(t, 1, strings.Count(view, "●"))
}

func TestButton_View(t *testing.T) {
	active := ansi.Strip(NewButton("Next", "→", true).View())
	inactive := ansi.Strip(NewButton("Previous", "←", false).View())

	assert.Contains(t, active, "→ Next")
	assert.Contains(t, inactive, "← Previous")

	row := ansi.Strip(ButtonRow(NewButton("Previous", "", false), NewButton("Submit", "", true)))
	assert.Contains(t, row, "Previous")
	assert.Contains(t, row, "Submit")
	assert.Less(t, strings.Index(row, "Previous"), strings.Index(row, "Submit"))
}

func TestQuestionProgress(t *testing.T) {
	p := NewQuestionProgress(3, 4, 60)
	assert.Equal(t, 0.75, p.Percent)
	assert.Contains(t, ansi.Strip(p.View()), "Question 3 of 4")
	assert.Equal(t, 60, ansi.StringWidth(p.View()))

	assert.Equal(t, 0.0, NewQuestionProgress(0, 0, 60).Percent)
}

func TestScoreBar(t *testing.T) {
	view := ansi.Strip(NewScoreBar(67, 40).View())
	assert.True(t, strings.HasSuffix(view, " 67%"))
	assert.Equal(t, 40, ansi.StringWidth(NewScoreBar(67, 40).View()))

	assert.True(t, strings.HasSuffix(ansi.Strip(NewScoreBar(150, 40).View()), "100%"))
}
