package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingyamilmolinar/apothecary/internal/config"
	game_log "github.com/ingyamilmolinar/apothecary/internal/log"
)

func execute(t *testing.T, env map[string]string, args ...string) (config.Config, error) {
	t.Helper()
	t.Setenv(config.EnvAPIKey, env[config.EnvAPIKey])
	t.Setenv(config.EnvLogLevel, env[config.EnvLogLevel])

	var got config.Config
	cmd := newRootCmd(func(c config.Config) error {
		got = c
		return nil
	})
	cmd.SetArgs(append([]string{}, args...))
	return got, cmd.Execute()
}

func TestDefaults(t *testing.T) {
	cfg, err := execute(t, nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	env := map[string]string{config.EnvLogLevel: "error", config.EnvAPIKey: "k"}

	cfg, err := execute(t, env)
	require.NoError(t, err)
	assert.Equal(t, game_log.LevelError, cfg.LogLevel)
	assert.Equal(t, "k", cfg.APIKey)

	cfg, err = execute(t, env, "--log-level", "debug", "--width", "800", "--height", "600", "--debug", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, game_log.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.True(t, cfg.Debug)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "k", cfg.APIKey)
}

func TestInvalidInput(t *testing.T) {
	_, err := execute(t, nil, "--width", "0")
	assert.True(t, errors.Is(err, config.ErrWindowSize), "got %v", err)

	_, err = execute(t, nil, "--log-level", "loud")
	assert.ErrorContains(t, err, "loud")

	_, err = execute(t, map[string]string{config.EnvLogLevel: "chatty"})
	assert.ErrorContains(t, err, config.EnvLogLevel)
}
