// Package config assembles the Tempus configuration from the config file, a
// first-run prompt and command-line flags
package config

import (
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/tempus/internal/models"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Settings models.AppSettings
		Timer    TimerConfig
		System   SystemConfig
	}

	// TimerConfig holds the settings that only apply to the current run.
	TimerConfig struct {
		// Duration is the simple mode countdown length.
		Duration   time.Duration
		Tag        models.Tag
		SessionCmd string
	}

	// SystemConfig holds system-related settings.
	SystemConfig struct {
		ConfigPath string
		Debug      bool
		NoColor    bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const debugEnvVar = "TEMPUS_DEBUG"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Default returns the configuration of a fresh install.
func Default() *Config {
	return &Config{
		Settings: models.DefaultSettings(),
		Timer: TimerConfig{
			Duration: 25 * time.Minute,
			Tag:      models.TagWork,
		},
		System: SystemConfig{
			Debug: os.Getenv(debugEnvVar) != "",
		},
	}
}

// New creates a Config with default values, applies opts in order and
// validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// SimpleDuration splits the simple mode duration into clock components.
func (c *Config) SimpleDuration() (hours, minutes, seconds int) {
	total := int(c.Timer.Duration / time.Second)

	return total / 3600, (total % 3600) / 60, total % 60
}
