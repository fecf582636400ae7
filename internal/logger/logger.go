package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/abhisek/csvquiz/internal/config"
)

// New builds the application logger. Production environments get the JSON
// encoder, everything else the console encoder. Output goes to
// cfg.LogFile, or stderr when it is "-". The TUI owns stdout, so stdout is
// never used.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	out := cfg.LogFile
	if out == "" || out == config.LogToStderr {
		out = "stderr"
	} else if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	zcfg.OutputPaths = []string{out}
	zcfg.ErrorOutputPaths = []string{out}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("env", cfg.Env)), nil
}
