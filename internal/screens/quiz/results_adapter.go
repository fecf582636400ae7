package quiz

import (
	qz "github.com/abhisek/csvquiz/internal/quiz"
	"github.com/abhisek/csvquiz/internal/screen"
	"github.com/abhisek/csvquiz/internal/screens/results"
)

// newResultsScreen creates the results screen for a submitted session.
func newResultsScreen(s *qz.Session) screen.Screen {
	return results.New(s)
}
