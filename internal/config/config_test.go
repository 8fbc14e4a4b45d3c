package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tempus/internal/config"
	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/testutil"
)

func TestViperWriteConfig(t *testing.T) {
	t.Setenv("TEMPUS_DEBUG", "")

	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	want := config.Default()
	want.System.ConfigPath = configPath

	assert.Equal(t, want, cfg)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)

	written := string(b)

	for _, s := range []string{
		"pomodoro:",
		"long_break_interval: 4",
		"mode: simple",
		"ambient: none",
	} {
		assert.Contains(t, written, s)
	}

	// reading the file back yields the same configuration
	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	t.Setenv("TEMPUS_DEBUG", "")

	configPath := testutil.Fixture(t, "modified_config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	want := &config.Config{
		Settings: models.AppSettings{
			Theme:       models.ThemeLight,
			AccentColor: "cyan",
			Timer: models.TimerSettings{
				Mode: models.ModePomodoro,
				Pomodoro: models.PomodoroSettings{
					WorkDuration:            50,
					ShortBreakDuration:      10,
					LongBreakDuration:       30,
					SessionsBeforeLongBreak: 6,
				},
				AutoStartBreaks: true,
				AutoStartWork:   false,
			},
			Sound: models.SoundSettings{
				Type:           models.SoundRain,
				Volume:         0.8,
				FadeOnComplete: true,
			},
			Notifications: models.NotificationSettings{
				Enabled: true,
				Sound:   true,
			},
		},
		Timer: config.TimerConfig{
			Duration:   45 * time.Minute,
			Tag:        models.TagStudy,
			SessionCmd: `notify-send "break time"`,
		},
		System: config.SystemConfig{
			ConfigPath: configPath,
		},
	}

	assert.Equal(t, want, cfg)
}

func TestViperInvalidConfig(t *testing.T) {
	configPath := testutil.Fixture(t, "invalid_config.yml")

	_, err := config.New(config.WithViperConfig(configPath))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "long break duration (10m)")
}

func TestPromptSkippedWhenConfigExists(t *testing.T) {
	configPath := testutil.Fixture(t, "modified_config.yml")

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Settings.Timer.Pomodoro.WorkDuration)
}

func TestSimpleDuration(t *testing.T) {
	cfg := config.Default()
	cfg.Timer.Duration = 1*time.Hour + 2*time.Minute + 3*time.Second

	h, m, s := cfg.SimpleDuration()

	assert.Equal(t, []int{1, 2, 3}, []int{h, m, s})
}
