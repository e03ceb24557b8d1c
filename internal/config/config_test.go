package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")

	_, err := LoadFrom(t.TempDir())
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_ENV", "")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.TelegramAPIToken)
	assert.Equal(t, "local", cfg.Env)
	assert.Empty(t, cfg.QuestionsPath)
	assert.Equal(t, 60, cfg.Bot.UpdateTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Session.IdleTTL)
	assert.Equal(t, "0 * * * *", cfg.Session.SweepSchedule)
	assert.Equal(t, 30*time.Minute, cfg.DB.MaxConnLifetime)
	assert.False(t, cfg.DB.Enabled())

	_, err = cfg.DB.DSN()
	require.ErrorIs(t, err, ErrDatabaseNotConfigured)
}

func TestLoadFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	body := `
env: dev
questions_path: assets/data/questions.json
bot:
  debug: true
  update_timeout: 30
session:
  idle_ttl: 2h
  sweep_schedule: "@every 10m"
database:
  max_connections: 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))

	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/trivial")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env, "environment overrides the file")
	assert.Equal(t, "assets/data/questions.json", cfg.QuestionsPath)
	assert.True(t, cfg.Bot.Debug)
	assert.Equal(t, 30, cfg.Bot.UpdateTimeout)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)
	assert.Equal(t, "@every 10m", cfg.Session.SweepSchedule)
	assert.Equal(t, 5, cfg.DB.MaxConnections)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/trivial", dsn)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("bot: [\n"), 0o600))
	t.Setenv("TELEGRAM_API_TOKEN", "token")

	_, err := LoadFrom(dir)
	require.Error(t, err)
}
