package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with no user config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("source", "", "")
	fs.String("log-file", "", "")
	fs.Bool("reshuffle-on-restart", false, "")
	fs.Uint64("seed", 0, "")
	fs.Duration("fetch-timeout", 0, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "questions.csv", cfg.Source)
	assert.Equal(t, filepath.Join(dir, "state", "csvquiz", "csvquiz.log"), cfg.LogFile)
	assert.False(t, cfg.ReshuffleOnRestart)
	assert.Zero(t, cfg.Seed)
	assert.Zero(t, cfg.FetchTimeout)
	assert.Equal(t, ":8080", cfg.Serve.Addr)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("CSVQUIZ_SOURCE", "https://example.com/q.csv")
	t.Setenv("CSVQUIZ_RESHUFFLE_ON_RESTART", "true")
	t.Setenv("CSVQUIZ_SEED", "99")
	t.Setenv("CSVQUIZ_FETCH_TIMEOUT", "5s")
	t.Setenv("CSVQUIZ_SERVE_ADDR", ":9000")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/q.csv", cfg.Source)
	assert.True(t, cfg.ReshuffleOnRestart)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, ":9000", cfg.Serve.Addr)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CSVQUIZ_SOURCE=from-dotenv.csv\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("CSVQUIZ_SOURCE") })

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.csv", cfg.Source)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	yaml := "source: bank.csv\nreshuffle_on_restart: true\nserve:\n  addr: \":7070\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "csvquiz.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "bank.csv", cfg.Source)
	assert.True(t, cfg.ReshuffleOnRestart)
	assert.Equal(t, ":7070", cfg.Serve.Addr)
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	dir := isolate(t)
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--config", filepath.Join(dir, "absent.yaml")}))

	_, err := Load(fs)
	assert.Error(t, err)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CSVQUIZ_SOURCE", "env.csv")
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--source", "flag.csv", "--seed", "3", "--log-file", "-"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "flag.csv", cfg.Source)
	assert.Equal(t, uint64(3), cfg.Seed)
	assert.Equal(t, LogToStderr, cfg.LogFile)
}

func TestLoad_UnsetFlagsDoNotOverride(t *testing.T) {
	isolate(t)
	t.Setenv("CSVQUIZ_SOURCE", "env.csv")
	fs := testFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "env.csv", cfg.Source)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Source = "  "
	assert.ErrorIs(t, cfg.Validate(), ErrMissingSource)

	cfg = Default()
	cfg.FetchTimeout = -time.Second
	assert.Error(t, cfg.Validate())
}
