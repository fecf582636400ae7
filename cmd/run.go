package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/csvquiz/internal/app"
	"github.com/abhisek/csvquiz/internal/config"
	"github.com/abhisek/csvquiz/internal/loader"
	"github.com/abhisek/csvquiz/internal/quiz"
)

// runApp loads configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	shuffle := shufflerFor(cfg)
	session := quiz.NewSession(
		quiz.WithShuffler(shuffle),
		quiz.WithReshuffleOnRestart(cfg.ReshuffleOnRestart),
	)

	return app.Run(app.Options{
		Session: session,
		Loader:  newLoader(cfg, shuffle, log),
		Source:  cfg.Source,
		Logger:  log,
	})
}

// newLoader builds the bank loader for the configured source.
func newLoader(cfg *config.Config, shuffle quiz.Shuffler, log *zap.Logger) *loader.Loader {
	src := loader.NewSource(cfg.Source, loader.NewHTTPClient(cfg.FetchTimeout))
	return loader.New(src,
		loader.WithShuffler(shuffle),
		loader.WithLogger(log),
	)
}

// shufflerFor returns a seeded shuffler when a seed is configured.
func shufflerFor(cfg *config.Config) quiz.Shuffler {
	if cfg.Seed != 0 {
		return quiz.SeededShuffler(cfg.Seed)
	}
	return quiz.UniformShuffler()
}
