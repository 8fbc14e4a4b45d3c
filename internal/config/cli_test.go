package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tempus/internal/models"
)

type CLITest struct {
	Name   string
	Flags  map[string]string
	Bools  map[string]string
	Assert func(t *testing.T, c *Config)
	Err    error
}

var cliTestCases = []CLITest{
	{
		Name: "no flags keep the defaults",
		Assert: func(t *testing.T, c *Config) {
			assert.Equal(t, Default(), c)
		},
	},
	{
		Name: "pomodoro lengths",
		Flags: map[string]string{
			"mode":                "pomodoro",
			"work":                "50m",
			"short-break":         "10",
			"long-break":          "1h30m",
			"long-break-interval": "3",
		},
		Assert: func(t *testing.T, c *Config) {
			assert.Equal(t, models.ModePomodoro, c.Settings.Timer.Mode)
			assert.Equal(t, models.PomodoroSettings{
				WorkDuration:            50,
				ShortBreakDuration:      10,
				LongBreakDuration:       90,
				SessionsBeforeLongBreak: 3,
			}, c.Settings.Timer.Pomodoro)
		},
	},
	{
		Name: "simple duration and tag",
		Flags: map[string]string{
			"duration": "1h5m30s",
			"tag":      " Reading ",
		},
		Assert: func(t *testing.T, c *Config) {
			assert.Equal(t, time.Hour+5*time.Minute+30*time.Second, c.Timer.Duration)
			assert.Equal(t, models.TagReading, c.Timer.Tag)
		},
	},
	{
		Name: "sound flags",
		Flags: map[string]string{
			"sound":  "whiteNoise",
			"volume": "0.25",
		},
		Assert: func(t *testing.T, c *Config) {
			assert.Equal(t, models.SoundWhiteNoise, c.Settings.Sound.Type)
			assert.InDelta(t, 0.25, c.Settings.Sound.Volume, 1e-9)
		},
	},
	{
		Name: "sound off",
		Flags: map[string]string{
			"sound": "off",
		},
		Assert: func(t *testing.T, c *Config) {
			assert.Equal(t, models.SoundNone, c.Settings.Sound.Type)
		},
	},
	{
		Name: "boolean flags only override when set",
		Bools: map[string]string{
			"notify":            "true",
			"auto-start-breaks": "true",
		},
		Assert: func(t *testing.T, c *Config) {
			assert.True(t, c.Settings.Notifications.Enabled)
			assert.True(t, c.Settings.Timer.AutoStartBreaks)
			assert.False(t, c.Settings.Timer.AutoStartWork)
			assert.True(t, c.Settings.Notifications.Sound)
		},
	},
	{
		Name: "session command",
		Flags: map[string]string{
			"session-cmd": "echo done",
		},
		Assert: func(t *testing.T, c *Config) {
			assert.Equal(t, "echo done", c.Timer.SessionCmd)
		},
	},
	{
		Name: "invalid duration",
		Flags: map[string]string{
			"work": "soon",
		},
		Err: errInvalidCLIDuration,
	},
}

func newCLIContext(t *testing.T, tc CLITest) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("tempus", flag.ContinueOnError)

	for _, name := range []string{
		"mode", "work", "short-break", "long-break", "duration",
		"tag", "sound", "session-cmd",
	} {
		_ = f.String(name, "", "")
	}

	_ = f.Uint("long-break-interval", 0, "")
	_ = f.Float64("volume", 0, "")

	for _, name := range []string{
		"notify", "halfway", "auto-start-breaks", "auto-start-work",
		"no-color", "debug",
	} {
		_ = f.Bool(name, false, "")
	}

	for k, v := range tc.Flags {
		require.NoError(t, f.Set(k, v))
	}

	for k, v := range tc.Bools {
		require.NoError(t, f.Set(k, v))
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestWithCLIConfig(t *testing.T) {
	for _, tc := range cliTestCases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Setenv("TEMPUS_DEBUG", "")

			ctx := newCLIContext(t, tc)

			c := Default()

			err := WithCLIConfig(ctx)(c)
			if tc.Err != nil {
				require.ErrorIs(t, err, tc.Err)
				return
			}

			require.NoError(t, err)

			tc.Assert(t, c)
		})
	}
}
