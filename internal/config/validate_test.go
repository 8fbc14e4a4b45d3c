package config

import (
	"errors"
	"testing"
	"time"

	"github.com/ayoisaiah/tempus/internal/models"
)

type ValidateTest struct {
	Name   string
	Modify func(c *Config)
	Err    error
}

var validateTestCases = []ValidateTest{
	{
		Name:   "defaults are valid",
		Modify: func(*Config) {},
	},
	{
		Name: "unknown mode",
		Modify: func(c *Config) {
			c.Settings.Timer.Mode = "flow"
		},
		Err: errUnknownMode,
	},
	{
		Name: "unknown tag",
		Modify: func(c *Config) {
			c.Timer.Tag = "gaming"
		},
		Err: errUnknownTag,
	},
	{
		Name: "zero simple duration",
		Modify: func(c *Config) {
			c.Timer.Duration = 0
		},
		Err: errInvalidSimpleDuration,
	},
	{
		Name: "simple duration over a day",
		Modify: func(c *Config) {
			c.Timer.Duration = 24 * time.Hour
		},
		Err: errInvalidSimpleDuration,
	},
	{
		Name: "work phase too long",
		Modify: func(c *Config) {
			c.Settings.Timer.Pomodoro.WorkDuration = 721
		},
		Err: errInvalidPhaseDuration,
	},
	{
		Name: "work phase over an hour",
		Modify: func(c *Config) {
			c.Settings.Timer.Pomodoro.WorkDuration = 90
		},
	},
	{
		Name: "zero short break",
		Modify: func(c *Config) {
			c.Settings.Timer.Pomodoro.ShortBreakDuration = 0
		},
		Err: errInvalidPhaseDuration,
	},
	{
		Name: "long break shorter than short break",
		Modify: func(c *Config) {
			c.Settings.Timer.Pomodoro.ShortBreakDuration = 20
			c.Settings.Timer.Pomodoro.LongBreakDuration = 10
		},
		Err: errLongBreakTooShort,
	},
	{
		Name: "single session cycle",
		Modify: func(c *Config) {
			c.Settings.Timer.Pomodoro.SessionsBeforeLongBreak = 1
		},
	},
	{
		Name: "zero long break interval",
		Modify: func(c *Config) {
			c.Settings.Timer.Pomodoro.SessionsBeforeLongBreak = 0
		},
		Err: errInvalidLongBreakInterval,
	},
	{
		Name: "unknown sound",
		Modify: func(c *Config) {
			c.Settings.Sound.Type = "thunder"
		},
		Err: errUnknownAmbientSound,
	},
	{
		Name: "volume out of range",
		Modify: func(c *Config) {
			c.Settings.Sound.Volume = 1.5
		},
		Err: errInvalidVolume,
	},
	{
		Name: "unknown theme",
		Modify: func(c *Config) {
			c.Settings.Theme = "solarized"
		},
		Err: errUnknownTheme,
	},
	{
		Name: "unknown accent color",
		Modify: func(c *Config) {
			c.Settings.AccentColor = "#ff0000"
		},
		Err: errUnknownAccentColor,
	},
	{
		Name: "every sound is accepted",
		Modify: func(c *Config) {
			c.Settings.Sound.Type = models.SoundWhiteNoise
		},
	},
}

func TestValidate(t *testing.T) {
	for _, tc := range validateTestCases {
		t.Run(tc.Name, func(t *testing.T) {
			c := Default()
			tc.Modify(c)

			err := c.Validate()

			if tc.Err == nil {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}

				return
			}

			if !errors.Is(err, tc.Err) {
				t.Fatalf("expected error: %v, got: %v", tc.Err, err)
			}
		})
	}
}
