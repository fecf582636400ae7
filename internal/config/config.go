package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the app reads.
const EnvPrefix = "CSVQUIZ"

// LogToStderr as log_file sends logs to stderr instead of a file.
const LogToStderr = "-"

var ErrMissingSource = errors.New("question bank source is not configured")

// Config holds application configuration loaded from flags, environment
// variables and an optional config file.
type Config struct {
	Env                string        `mapstructure:"env"`                  // "production" switches to JSON logs
	Source             string        `mapstructure:"source"`               // file path or http(s) URL of the CSV bank
	LogFile            string        `mapstructure:"log_file"`             // log destination, "-" for stderr
	ReshuffleOnRestart bool          `mapstructure:"reshuffle_on_restart"` // re-permute questions on restart
	Seed               uint64        `mapstructure:"seed"`                 // 0 = random order every run
	FetchTimeout       time.Duration `mapstructure:"fetch_timeout"`        // 0 = no timeout
	Serve              Serve         `mapstructure:"serve"`
}

// Serve configures the `serve` command.
type Serve struct {
	Addr string `mapstructure:"addr"`
	File string `mapstructure:"file"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"source":               "source",
	"log-file":             "log_file",
	"reshuffle-on-restart": "reshuffle_on_restart",
	"seed":                 "seed",
	"fetch-timeout":        "fetch_timeout",
	"env":                  "env",
	"addr":                 "serve.addr",
	"file":                 "serve.file",
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Env:     "local",
		Source:  "questions.csv",
		LogFile: DefaultLogPath(),
		Serve: Serve{
			Addr: ":8080",
			File: "questions.csv",
		},
	}
}

// Load reads configuration in increasing priority: defaults, config file,
// environment (a .env file is loaded first when present), then any flags
// in flags that were set explicitly. A nil flag set is allowed.
func Load(flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	def := Default()
	v := viper.New()
	v.SetDefault("env", def.Env)
	v.SetDefault("source", def.Source)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("reshuffle_on_restart", def.ReshuffleOnRestart)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("fetch_timeout", def.FetchTimeout)
	v.SetDefault("serve.addr", def.Serve.Addr)
	v.SetDefault("serve.file", def.Serve.File)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicitFile := ""
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			explicitFile = f.Value.String()
		}
	}
	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
	} else {
		v.SetConfigName("csvquiz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return ErrMissingSource
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout must not be negative, got %s", c.FetchTimeout)
	}
	return nil
}

// DefaultLogPath resolves the log file path:
// 1. $XDG_STATE_HOME/csvquiz/csvquiz.log
// 2. ~/.local/state/csvquiz/csvquiz.log
// It falls back to the temp dir when no home directory is known.
func DefaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "csvquiz.log")
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "csvquiz", "csvquiz.log")
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "csvquiz"), nil
}
