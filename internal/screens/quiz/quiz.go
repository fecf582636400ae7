package quiz

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/csvquiz/internal/quiz"
	"github.com/abhisek/csvquiz/internal/router"
	"github.com/abhisek/csvquiz/internal/screen"
	"github.com/abhisek/csvquiz/internal/ui/components"
	"github.com/abhisek/csvquiz/internal/ui/layout"
	"github.com/abhisek/csvquiz/internal/ui/theme"
)

// QuestionLoader produces the question bank.
type QuestionLoader interface {
	Load(ctx context.Context) ([]qz.Question, error)
}

// QuizScreen loads the bank into the session and lets the user step
// through the questions. It pushes the results screen once the last
// question is submitted.
type QuizScreen struct {
	session *qz.Session
	loader  QuestionLoader
	source  string
	keys    keyMap
	spinner spinner.Model
	choice  components.MultiChoice

	// Set by the session listener.
	stale     bool
	submitted bool

	unsubscribe func()
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.Resumer = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)

// New creates a QuizScreen over session. source names the bank in the
// loading message.
func New(session *qz.Session, loader QuestionLoader, source string) *QuizScreen {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	s := &QuizScreen{
		session: session,
		loader:  loader,
		source:  source,
		keys:    defaultKeyMap(),
		spinner: sp,
		stale:   true,
	}
	s.unsubscribe = session.Subscribe(s.onChange)
	return s
}

// onChange keeps the screen's derived state in step with the session.
func (s *QuizScreen) onChange(c qz.Change) {
	switch c.Kind {
	case qz.ChangeSubmitted:
		s.submitted = true
	case qz.ChangeLoaded, qz.ChangeAdvanced, qz.ChangeRetreated, qz.ChangeRestarted:
		s.stale = true
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.session.Phase() != qz.PhaseLoading {
		return nil
	}
	return tea.Batch(
		s.spinner.Tick,
		s.load(),
	)
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Resume refreshes the view after the results screen is popped.
func (s *QuizScreen) Resume() tea.Cmd {
	s.stale = true
	s.submitted = false
	return nil
}

// Close detaches the screen from the session.
func (s *QuizScreen) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *QuizScreen) Status() string {
	if s.session.Phase() != qz.PhaseInProgress {
		return ""
	}
	pos, total := s.session.Progress()
	return fmt.Sprintf("%d/%d", pos, total)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case qz.PhaseInProgress:
		next := s.keys.Next
		if s.session.IsLast() {
			next.SetHelp(next.Help().Key, "Submit")
		}
		next.SetEnabled(s.session.CanAdvance())
		prev := s.keys.Prev
		prev.SetEnabled(s.session.CanRetreat())
		return hints(s.keys.Move, s.keys.Choose, prev, next, s.keys.Quit)
	default:
		return hints(s.keys.Quit)
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return s.handleLoaded(msg)

	case spinner.TickMsg:
		if s.session.Phase() != qz.PhaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// load fetches the bank off the event loop.
func (s *QuizScreen) load() tea.Cmd {
	loader := s.loader
	return func() tea.Msg {
		qs, err := loader.Load(context.Background())
		return loadedMsg{Questions: qs, Err: err}
	}
}

func (s *QuizScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.session.Fail(msg.Err)
		return s, nil
	}
	s.session.Load(msg.Questions)
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if key.Matches(msg, s.keys.Quit) {
		return s, tea.Quit
	}

	if s.session.Phase() != qz.PhaseInProgress {
		return s, nil
	}
	s.sync()

	switch {
	case key.Matches(msg, s.keys.Next):
		return s.advance()

	case key.Matches(msg, s.keys.Prev):
		s.session.Retreat()
		s.sync()
		return s, nil

	case msg.String() == "enter" && s.focusedIsSelected():
		// Enter on the already chosen option submits it.
		return s.advance()
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Selected != s.session.Selection() {
		s.session.Select(s.choice.Selected)
	}
	return s, cmd
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if !s.session.Advance() {
		return s, nil
	}
	if s.submitted {
		s.submitted = false
		results := newResultsScreen(s.session)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: results}
		}
	}
	s.sync()
	return s, nil
}

func (s *QuizScreen) focusedIsSelected() bool {
	sel := s.session.Selection()
	if sel == "" || s.choice.Focused < 0 || s.choice.Focused >= len(s.choice.Options) {
		return false
	}
	return s.choice.Options[s.choice.Focused] == sel
}

// sync rebuilds the option selector from the session after the cursor moved.
func (s *QuizScreen) sync() {
	if !s.stale {
		return
	}
	q, ok := s.session.Current()
	if !ok {
		return
	}
	s.choice = components.NewMultiChoice(q, s.session.Selection())
	s.stale = false
}

func (s *QuizScreen) View(width, height int) string {
	switch s.session.Phase() {
	case qz.PhaseLoading:
		return s.renderLoading(width, height)
	case qz.PhaseEmpty:
		return renderEmpty(width, height)
	case qz.PhaseInProgress:
		s.sync()
		return s.renderQuestion(width, height)
	default:
		return renderSubmitted(width, height)
	}
}
