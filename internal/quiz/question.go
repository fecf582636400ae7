package quiz

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// optionLabels label options in display order.
var optionLabels = [OptionCount]string{"A", "B", "C", "D"}

// Question is a single multiple-choice question loaded from the bank.
// Correct holds the text of the right option, not its position.
type Question struct {
	Prompt  string
	Options [OptionCount]string
	Correct string
}

// OptionLabel returns the display label ("A".."D") for option i.
// Out-of-range indexes yield "".
func OptionLabel(i int) string {
	if i < 0 || i >= OptionCount {
		return ""
	}
	return optionLabels[i]
}

// OptionIndex returns the position of answer among q's options, or -1.
func (q Question) OptionIndex(answer string) int {
	if answer == "" {
		return -1
	}
	for i, opt := range q.Options {
		if opt == answer {
			return i
		}
	}
	return -1
}

// IsCorrect reports whether answer matches the correct answer exactly.
func (q Question) IsCorrect(answer string) bool {
	return answer == q.Correct
}
