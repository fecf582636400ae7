package quiz

import (
	"github.com/google/uuid"
)

// Phase represents where the session is in its lifecycle.
type Phase int

const (
	PhaseLoading    Phase = iota // Waiting for the question bank
	PhaseInProgress              // Navigating questions
	PhaseEmpty                   // Bank unavailable or had no questions
	PhaseResults                 // Final question submitted
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseInProgress:
		return "in_progress"
	case PhaseEmpty:
		return "empty"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// Session tracks the runtime state of one quiz run: the loaded questions,
// the cursor, the transient selection and the answer log.
//
// A Session is not safe for concurrent use. It is owned by the UI event loop.
type Session struct {
	id        string
	questions []Question
	answers   []string
	cursor    int
	selection string
	phase     Phase
	err       error

	shuffle   Shuffler
	reshuffle bool

	listeners []listener
	nextID    int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithShuffler sets the shuffler used when reshuffling on restart.
func WithShuffler(s Shuffler) SessionOption {
	return func(sess *Session) {
		if s != nil {
			sess.shuffle = s
		}
	}
}

// WithReshuffleOnRestart makes Restart re-permute the questions.
func WithReshuffleOnRestart(enabled bool) SessionOption {
	return func(sess *Session) {
		sess.reshuffle = enabled
	}
}

// NewSession creates a session in the loading phase.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		id:      uuid.New().String(),
		phase:   PhaseLoading,
		shuffle: UniformShuffler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier used to correlate log lines.
func (s *Session) ID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Err returns the load failure, if the session went empty because of one.
func (s *Session) Err() error { return s.err }

// Len returns the number of loaded questions.
func (s *Session) Len() int { return len(s.questions) }

// Cursor returns the index of the question on display.
func (s *Session) Cursor() int { return s.cursor }

// Selection returns the transient selection for the current question.
func (s *Session) Selection() string { return s.selection }

// Questions returns a copy of the question sequence.
func (s *Session) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Answers returns a copy of the answer log.
func (s *Session) Answers() []string {
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

// Current returns the question under the cursor. ok is false outside the
// in-progress phase.
func (s *Session) Current() (q Question, ok bool) {
	if s.phase != PhaseInProgress || s.cursor < 0 || s.cursor >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.cursor], true
}

// Progress returns the 1-based position of the cursor and the total.
func (s *Session) Progress() (position, total int) {
	total = len(s.questions)
	if total == 0 {
		return 0, 0
	}
	return s.cursor + 1, total
}

// IsLast reports whether the cursor is on the final question.
func (s *Session) IsLast() bool {
	return len(s.questions) > 0 && s.cursor == len(s.questions)-1
}

// CanAdvance reports whether Advance would do anything.
func (s *Session) CanAdvance() bool {
	return s.phase == PhaseInProgress && s.selection != ""
}

// CanRetreat reports whether Retreat would do anything.
func (s *Session) CanRetreat() bool {
	return s.phase == PhaseInProgress && s.cursor > 0
}

// Load installs the loaded questions. Only valid while loading; an empty
// slice moves the session to PhaseEmpty.
func (s *Session) Load(questions []Question) {
	if s.phase != PhaseLoading {
		return
	}
	s.questions = make([]Question, len(questions))
	copy(s.questions, questions)
	s.answers = make([]string, len(questions))
	s.cursor = 0
	s.selection = ""
	if len(s.questions) == 0 {
		s.phase = PhaseEmpty
	} else {
		s.phase = PhaseInProgress
	}
	s.notify(ChangeLoaded)
}

// Fail records a load failure and moves the session to PhaseEmpty.
func (s *Session) Fail(err error) {
	if s.phase != PhaseLoading {
		return
	}
	s.err = err
	s.phase = PhaseEmpty
	s.notify(ChangeFailed)
}

// Select sets the transient selection. The answer log is untouched until
// the next Advance or Retreat.
func (s *Session) Select(answer string) {
	if s.phase != PhaseInProgress {
		return
	}
	s.selection = answer
	s.notify(ChangeSelected)
}

// Advance commits the selection and moves to the next question, or to the
// results phase from the last question. It is a no-op without a selection.
func (s *Session) Advance() bool {
	if !s.CanAdvance() {
		return false
	}
	s.answers[s.cursor] = s.selection
	if s.IsLast() {
		s.phase = PhaseResults
		s.notify(ChangeSubmitted)
		return true
	}
	s.cursor++
	s.selection = s.answers[s.cursor]
	s.notify(ChangeAdvanced)
	return true
}

// Retreat commits the selection and moves to the previous question.
// It is a no-op on the first question.
func (s *Session) Retreat() bool {
	if !s.CanRetreat() {
		return false
	}
	s.answers[s.cursor] = s.selection
	s.cursor--
	s.selection = s.answers[s.cursor]
	s.notify(ChangeRetreated)
	return true
}

// Restart clears the answer log and returns to the first question.
// The question set is kept; it is re-permuted only when the session was
// built with WithReshuffleOnRestart.
func (s *Session) Restart() {
	if s.phase != PhaseInProgress && s.phase != PhaseResults {
		return
	}
	s.cursor = 0
	s.selection = ""
	for i := range s.answers {
		s.answers[i] = ""
	}
	if s.reshuffle {
		s.shuffle(s.questions)
	}
	s.phase = PhaseInProgress
	s.notify(ChangeRestarted)
}

// Result scores the answer log against the questions.
func (s *Session) Result() Result {
	return NewResult(s.questions, s.answers)
}
