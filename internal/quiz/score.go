package quiz

import "math"

// Tier is the qualitative label derived from a percentage.
type Tier int

const (
	TierNeedsPractice Tier = iota
	TierGood
	TierExcellent
)

// Tier thresholds, inclusive lower bounds.
const (
	ExcellentThreshold = 80
	GoodThreshold      = 60
)

// TierFor maps a percentage to its tier.
func TierFor(percentage int) Tier {
	switch {
	case percentage >= ExcellentThreshold:
		return TierExcellent
	case percentage >= GoodThreshold:
		return TierGood
	default:
		return TierNeedsPractice
	}
}

// Label returns the short tier name.
func (t Tier) Label() string {
	switch t {
	case TierExcellent:
		return "Excellent"
	case TierGood:
		return "Good"
	default:
		return "Needs practice"
	}
}

// Message returns the line shown under the score.
func (t Tier) Message() string {
	switch t {
	case TierExcellent:
		return "Excellent work! You really know this material."
	case TierGood:
		return "Good job! A little more review and you'll have it."
	default:
		return "Keep practicing! Review the answers below and try again."
	}
}

// Score counts answers that exactly equal their question's correct answer.
// Slots beyond either slice are ignored.
func Score(questions []Question, answers []string) int {
	n := min(len(questions), len(answers))
	score := 0
	for i := 0; i < n; i++ {
		if questions[i].IsCorrect(answers[i]) {
			score++
		}
	}
	return score
}

// Percentage returns round(score/total*100). A zero total yields 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// ReviewItem is one row of the per-question breakdown.
type ReviewItem struct {
	Number    int // 1-based
	Prompt    string
	Answer    string
	Correct   string
	Answered  bool
	IsCorrect bool
}

// Review builds the per-question breakdown in question order.
func Review(questions []Question, answers []string) []ReviewItem {
	items := make([]ReviewItem, len(questions))
	for i, q := range questions {
		var ans string
		if i < len(answers) {
			ans = answers[i]
		}
		items[i] = ReviewItem{
			Number:    i + 1,
			Prompt:    q.Prompt,
			Answer:    ans,
			Correct:   q.Correct,
			Answered:  ans != "",
			IsCorrect: q.IsCorrect(ans),
		}
	}
	return items
}

// Result holds everything the results screen displays.
type Result struct {
	Score      int
	Total      int
	Percentage int
	Tier       Tier
	Items      []ReviewItem
}

// NewResult scores answers against questions.
func NewResult(questions []Question, answers []string) Result {
	score := Score(questions, answers)
	pct := Percentage(score, len(questions))
	return Result{
		Score:      score,
		Total:      len(questions),
		Percentage: pct,
		Tier:       TierFor(pct),
		Items:      Review(questions, answers),
	}
}
