package loader

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/csvquiz/internal/quiz"
)

// Loader fetches, parses and permutes the question bank.
type Loader struct {
	source  Source
	shuffle quiz.Shuffler
	logger  *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithShuffler overrides the uniform shuffler.
func WithShuffler(s quiz.Shuffler) Option {
	return func(l *Loader) {
		if s != nil {
			l.shuffle = s
		}
	}
}

// WithLogger sets the logger used to report load failures.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Loader for source.
func New(source Source, opts ...Option) *Loader {
	l := &Loader{
		source:  source,
		shuffle: quiz.UniformShuffler(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the configured source.
func (l *Loader) Source() Source { return l.source }

// Load fetches and parses the bank once and returns the questions in a
// random order. Failures are logged and returned; there is no retry.
// A bank with no data rows returns an empty slice and no error.
func (l *Loader) Load(ctx context.Context) ([]quiz.Question, error) {
	questions, err := l.fetch(ctx)
	if err != nil {
		l.logger.Error("load question bank",
			zap.String("source", l.source.String()),
			zap.Error(err),
		)
		return nil, err
	}

	l.shuffle(questions)

	l.logger.Info("question bank loaded",
		zap.String("source", l.source.String()),
		zap.Int("questions", len(questions)),
	)
	return questions, nil
}

func (l *Loader) fetch(ctx context.Context) ([]quiz.Question, error) {
	rc, err := l.source.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.source, err)
	}
	defer func() { _ = rc.Close() }()

	questions, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.source, err)
	}
	return questions, nil
}
