// Package config gathers runtime settings from the environment; the command
// line overrides them.
package config

import (
	"errors"
	"fmt"

	game_log "github.com/ingyamilmolinar/apothecary/internal/log"
)

const (
	EnvAPIKey   = "API_KEY"
	EnvLogLevel = "APOTHECARY_LOG_LEVEL"
)

type Config struct {
	LogLevel   game_log.Level
	APIKey     string
	Width      int
	Height     int
	Fullscreen bool
	Debug      bool
	Seed       int64 // 0 seeds from the clock
}

func Default() Config {
	return Config{
		LogLevel: game_log.LevelInfo,
		Width:    1280,
		Height:   800,
	}
}

// FromEnv layers environment values over Default. getenv is os.Getenv in
// production.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	c.APIKey = getenv(EnvAPIKey)
	if s := getenv(EnvLogLevel); s != "" {
		lv, ok := game_log.LevelFromString(s)
		if !ok {
			return c, fmt.Errorf("%s: unknown level %q", EnvLogLevel, s)
		}
		c.LogLevel = lv
	}
	return c, nil
}

var ErrWindowSize = errors.New("window size must be positive")

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrWindowSize, c.Width, c.Height)
	}
	return nil
}
