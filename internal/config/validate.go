package config

import (
	"slices"
	"time"

	"github.com/ayoisaiah/tempus/internal/models"
)

var (
	// Minimum and maximum phase lengths in minutes.
	minPhaseMinutes = 1
	maxPhaseMinutes = 720 // 12 hours

	// The simple timer is bounded by the clock components it is entered in.
	minSimpleDuration = 1 * time.Second
	maxSimpleDuration = 23*time.Hour + 59*time.Minute + 59*time.Second

	// Valid long break intervals.
	minLongBreakInterval = 1
	maxLongBreakInterval = 12
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateTimer(); err != nil {
		return err
	}

	if err := c.validatePomodoro(); err != nil {
		return err
	}

	if err := c.validateSound(); err != nil {
		return err
	}

	return c.validateDisplay()
}

func (c *Config) validateTimer() error {
	if !c.Settings.Timer.Mode.Valid() {
		return errUnknownMode.Fmt(c.Settings.Timer.Mode)
	}

	if !c.Timer.Tag.Valid() {
		return errUnknownTag.Fmt(c.Timer.Tag)
	}

	d := c.Timer.Duration
	if d < minSimpleDuration || d > maxSimpleDuration {
		return errInvalidSimpleDuration.Fmt(minSimpleDuration, maxSimpleDuration, d)
	}

	return nil
}

// validatePomodoro validates the phase lengths and their relationship.
func (c *Config) validatePomodoro() error {
	p := c.Settings.Timer.Pomodoro

	phases := []struct {
		name    string
		minutes int
	}{
		{"work", p.WorkDuration},
		{"short break", p.ShortBreakDuration},
		{"long break", p.LongBreakDuration},
	}

	for _, ph := range phases {
		if ph.minutes < minPhaseMinutes || ph.minutes > maxPhaseMinutes {
			return errInvalidPhaseDuration.Fmt(
				ph.name,
				minPhaseMinutes,
				maxPhaseMinutes,
				ph.minutes,
			)
		}
	}

	if p.LongBreakDuration < p.ShortBreakDuration {
		return errLongBreakTooShort.Fmt(p.LongBreakDuration, p.ShortBreakDuration)
	}

	if p.SessionsBeforeLongBreak < minLongBreakInterval ||
		p.SessionsBeforeLongBreak > maxLongBreakInterval {
		return errInvalidLongBreakInterval.Fmt(
			minLongBreakInterval,
			maxLongBreakInterval,
			p.SessionsBeforeLongBreak,
		)
	}

	return nil
}

func (c *Config) validateSound() error {
	s := c.Settings.Sound

	if !s.Type.Valid() {
		return errUnknownAmbientSound.Fmt(s.Type)
	}

	if s.Volume < 0 || s.Volume > 1 {
		return errInvalidVolume.Fmt(s.Volume)
	}

	return nil
}

func (c *Config) validateDisplay() error {
	theme := c.Settings.Theme
	if theme != models.ThemeDark && theme != models.ThemeLight {
		return errUnknownTheme.Fmt(theme)
	}

	if !slices.Contains(models.AccentColors, c.Settings.AccentColor) {
		return errUnknownAccentColor.Fmt(c.Settings.AccentColor)
	}

	return nil
}
