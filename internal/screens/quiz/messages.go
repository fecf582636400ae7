package quiz

import (
	qz "github.com/abhisek/csvquiz/internal/quiz"
)

// loadedMsg is sent when the question bank fetch finishes.
type loadedMsg struct {
	Questions []qz.Question
	Err       error
}
