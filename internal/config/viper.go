package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/tempus/internal/models"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyTheme                = "display.theme"
	keyAccentColor          = "display.accent_color"
	keyMode                 = "timer.mode"
	keyDuration             = "timer.duration"
	keyTag                  = "timer.tag"
	keyAutoStartBreaks      = "timer.auto_start_breaks"
	keyAutoStartWork        = "timer.auto_start_work"
	keySessionCmd           = "timer.session_cmd"
	keyWorkDuration         = "pomodoro.work"
	keyShortBreakDuration   = "pomodoro.short_break"
	keyLongBreakDuration    = "pomodoro.long_break"
	keyLongBreakInterval    = "pomodoro.long_break_interval"
	keySoundType            = "sound.ambient"
	keySoundVolume          = "sound.volume"
	keySoundFadeOnComplete  = "sound.fade_on_complete"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsHalfway = "notifications.halfway_reminder"
	keyNotificationsSound   = "notifications.sound"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created with the current values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		c.System.ConfigPath = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper seeds v with the values already present in c, which are the
// defaults or the answers to the first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	s := c.Settings

	v.SetDefault(keyTheme, string(s.Theme))
	v.SetDefault(keyAccentColor, string(s.AccentColor))
	v.SetDefault(keyMode, string(s.Timer.Mode))
	v.SetDefault(keyDuration, c.Timer.Duration.String())
	v.SetDefault(keyTag, string(c.Timer.Tag))
	v.SetDefault(keyAutoStartBreaks, s.Timer.AutoStartBreaks)
	v.SetDefault(keyAutoStartWork, s.Timer.AutoStartWork)
	v.SetDefault(keySessionCmd, c.Timer.SessionCmd)
	v.SetDefault(keyWorkDuration, s.Timer.Pomodoro.WorkDuration)
	v.SetDefault(keyShortBreakDuration, s.Timer.Pomodoro.ShortBreakDuration)
	v.SetDefault(keyLongBreakDuration, s.Timer.Pomodoro.LongBreakDuration)
	v.SetDefault(keyLongBreakInterval, s.Timer.Pomodoro.SessionsBeforeLongBreak)
	v.SetDefault(keySoundType, string(s.Sound.Type))
	v.SetDefault(keySoundVolume, s.Sound.Volume)
	v.SetDefault(keySoundFadeOnComplete, s.Sound.FadeOnComplete)
	v.SetDefault(keyNotificationsEnabled, s.Notifications.Enabled)
	v.SetDefault(keyNotificationsHalfway, s.Notifications.HalfwayReminder)
	v.SetDefault(keyNotificationsSound, s.Notifications.Sound)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	dur, err := parseDuration(v.GetString(keyDuration))
	if err != nil {
		return fmt.Errorf("%s: %w", keyDuration, err)
	}

	c.Timer.Duration = dur
	c.Timer.Tag = models.Tag(v.GetString(keyTag))
	c.Timer.SessionCmd = v.GetString(keySessionCmd)

	s := &c.Settings

	s.Theme = models.Theme(v.GetString(keyTheme))
	s.AccentColor = models.AccentColor(v.GetString(keyAccentColor))
	s.Timer.Mode = models.Mode(v.GetString(keyMode))
	s.Timer.AutoStartBreaks = v.GetBool(keyAutoStartBreaks)
	s.Timer.AutoStartWork = v.GetBool(keyAutoStartWork)
	s.Timer.Pomodoro = models.PomodoroSettings{
		WorkDuration:            v.GetInt(keyWorkDuration),
		ShortBreakDuration:      v.GetInt(keyShortBreakDuration),
		LongBreakDuration:       v.GetInt(keyLongBreakDuration),
		SessionsBeforeLongBreak: v.GetInt(keyLongBreakInterval),
	}
	s.Sound = models.SoundSettings{
		Type:           models.SoundType(v.GetString(keySoundType)),
		Volume:         v.GetFloat64(keySoundVolume),
		FadeOnComplete: v.GetBool(keySoundFadeOnComplete),
	}
	s.Notifications = models.NotificationSettings{
		Enabled:         v.GetBool(keyNotificationsEnabled),
		HalfwayReminder: v.GetBool(keyNotificationsHalfway),
		Sound:           v.GetBool(keyNotificationsSound),
	}

	return nil
}

// parseDuration accepts Go duration strings and bare minute counts.
func parseDuration(s string) (time.Duration, error) {
	// Try parsing as duration string first
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	// Try parsing as minutes in case duration unit is absent
	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return mins, nil
}
