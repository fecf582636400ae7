package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		pct  int
		want Tier
	}{
		{100, TierExcellent},
		{80, TierExcellent},
		{79, TierGood},
		{60, TierGood},
		{59, TierNeedsPractice},
		{0, TierNeedsPractice},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.pct), "pct=%d", tt.pct)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name         string
		score, total int
		want         int
	}{
		{"all", 3, 3, 100},
		{"none", 0, 3, 0},
		{"one third rounds down", 1, 3, 33},
		{"two thirds rounds up", 2, 3, 67},
		{"half", 1, 2, 50},
		{"zero total", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.score, tt.total))
		})
	}
}

func TestScore_ExactMatch(t *testing.T) {
	qs := []Question{
		{Prompt: "a", Correct: "Paris"},
		{Prompt: "b", Correct: "42"},
		{Prompt: "c", Correct: "Yes"},
	}
	answers := []string{"paris", "42", " Yes"}

	assert.Equal(t, 1, Score(qs, answers), "comparison is case and space sensitive")
}

func TestScore_Bounds(t *testing.T) {
	qs := capitalQuestions()
	cases := [][]string{
		{"", ""},
		{"Paris", ""},
		{"Paris", "42"},
		{"Berlin", "7"},
	}
	for _, answers := range cases {
		score := Score(qs, answers)
		pct := Percentage(score, len(qs))
		assert.LessOrEqual(t, score, len(qs))
		assert.GreaterOrEqual(t, pct, 0)
		assert.LessOrEqual(t, pct, 100)
	}
}

func TestReview_Unanswered(t *testing.T) {
	items := Review(capitalQuestions(), []string{"", "42"})

	assert.Equal(t, 1, items[0].Number)
	assert.False(t, items[0].Answered)
	assert.False(t, items[0].IsCorrect)
	assert.Equal(t, "Paris", items[0].Correct)

	assert.True(t, items[1].Answered)
	assert.True(t, items[1].IsCorrect)
}

func TestTierLabels(t *testing.T) {
	for _, tier := range []Tier{TierExcellent, TierGood, TierNeedsPractice} {
		assert.NotEmpty(t, tier.Label())
		assert.NotEmpty(t, tier.Message())
	}
}

func TestOptionHelpers(t *testing.T) {
	q := capitalQuestions()[0]
	assert.Equal(t, 1, q.OptionIndex("Paris"))
	assert.Equal(t, -1, q.OptionIndex(""))
	assert.Equal(t, -1, q.OptionIndex("Lisbon"))
	assert.Equal(t, "A", OptionLabel(0))
	assert.Equal(t, "D", OptionLabel(3))
	assert.Equal(t, "", OptionLabel(4))
}
