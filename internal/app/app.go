package app

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/csvquiz/internal/quiz"
	"github.com/abhisek/csvquiz/internal/router"
	"github.com/abhisek/csvquiz/internal/screen"
	quizscreen "github.com/abhisek/csvquiz/internal/screens/quiz"
	"github.com/abhisek/csvquiz/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Session *quiz.Session
	Loader  quizscreen.QuestionLoader
	// Source names the question bank while it loads.
	Source string
	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the quiz screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(quizscreen.New(opts.Session, opts.Loader, opts.Source)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = hp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)
	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// logChanges records every session transition at debug level.
func logChanges(session *quiz.Session, logger *zap.Logger) func() {
	return session.Subscribe(func(c quiz.Change) {
		logger.Debug("session changed",
			zap.String("session_id", session.ID()),
			zap.String("kind", string(c.Kind)),
			zap.Stringer("phase", c.Phase),
			zap.Int("cursor", c.Cursor),
			zap.String("selection", c.Selection),
		)
		switch c.Kind {
		case quiz.ChangeFailed:
			logger.Warn("question bank unavailable",
				zap.String("session_id", session.ID()),
				zap.Error(session.Err()))
		case quiz.ChangeSubmitted:
			res := session.Result()
			logger.Info("quiz submitted",
				zap.String("session_id", session.ID()),
				zap.Int("score", res.Score),
				zap.Int("total", res.Total),
				zap.Int("percentage", res.Percentage),
				zap.String("tier", res.Tier.Label()),
			)
		}
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Session == nil {
		opts.Session = quiz.NewSession()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	unsubscribe := logChanges(opts.Session, opts.Logger)
	defer unsubscribe()

	opts.Logger.Info("starting quiz",
		zap.String("session_id", opts.Session.ID()),
		zap.String("source", opts.Source))

	m := newAppModel(opts)
	defer m.router.Close()

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		opts.Logger.Error("program exited with error", zap.Error(err))
		return err
	}
	return nil
}
