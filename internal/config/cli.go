package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tempus/internal/models"
)

// CLIOptions represents command-line configuration options. Pointer fields
// are nil when the flag was not given.
type CLIOptions struct {
	Mode              string
	Work              string
	ShortBreak        string
	LongBreak         string
	Duration          string
	Tag               string
	AmbientSound      string
	SessionCmd        string
	Volume            *float64
	Notify            *bool
	Halfway           *bool
	AutoStartBreaks   *bool
	AutoStartWork     *bool
	LongBreakInterval uint
	NoColor           bool
	Debug             bool
}

func boolFlag(ctx *cli.Context, name string) *bool {
	if !ctx.IsSet(name) {
		return nil
	}

	v := ctx.Bool(name)

	return &v
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Mode:              ctx.String("mode"),
			Work:              ctx.String("work"),
			ShortBreak:        ctx.String("short-break"),
			LongBreak:         ctx.String("long-break"),
			LongBreakInterval: ctx.Uint("long-break-interval"),
			Duration:          ctx.String("duration"),
			Tag:               ctx.String("tag"),
			AmbientSound:      ctx.String("sound"),
			SessionCmd:        ctx.String("session-cmd"),
			Notify:            boolFlag(ctx, "notify"),
			Halfway:           boolFlag(ctx, "halfway"),
			AutoStartBreaks:   boolFlag(ctx, "auto-start-breaks"),
			AutoStartWork:     boolFlag(ctx, "auto-start-work"),
			NoColor:           ctx.Bool("no-color"),
			Debug:             ctx.Bool("debug"),
		}

		if ctx.IsSet("volume") {
			v := ctx.Float64("volume")
			opts.Volume = &v
		}

		return applyCLIOptions(c, &opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts *CLIOptions) error {
	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	if opts.Mode != "" {
		c.Settings.Timer.Mode = models.Mode(opts.Mode)
	}

	if opts.Tag != "" {
		c.Timer.Tag = models.Tag(strings.ToLower(strings.TrimSpace(opts.Tag)))
	}

	applyCLISounds(c, opts)

	if opts.Notify != nil {
		c.Settings.Notifications.Enabled = *opts.Notify
	}

	if opts.Halfway != nil {
		c.Settings.Notifications.HalfwayReminder = *opts.Halfway
	}

	if opts.AutoStartBreaks != nil {
		c.Settings.Timer.AutoStartBreaks = *opts.AutoStartBreaks
	}

	if opts.AutoStartWork != nil {
		c.Settings.Timer.AutoStartWork = *opts.AutoStartWork
	}

	if opts.SessionCmd != "" {
		c.Timer.SessionCmd = opts.SessionCmd
	}

	c.System.NoColor = c.System.NoColor || opts.NoColor
	c.System.Debug = c.System.Debug || opts.Debug

	return nil
}

// applyCLIDurations handles parsing and applying duration settings from CLI.
// Phase lengths are truncated to whole minutes.
func applyCLIDurations(c *Config, opts *CLIOptions) error {
	phases := []struct {
		name  string
		value string
		dst   *int
	}{
		{"work", opts.Work, &c.Settings.Timer.Pomodoro.WorkDuration},
		{"short break", opts.ShortBreak, &c.Settings.Timer.Pomodoro.ShortBreakDuration},
		{"long break", opts.LongBreak, &c.Settings.Timer.Pomodoro.LongBreakDuration},
	}

	for _, p := range phases {
		if p.value == "" {
			continue
		}

		dur, err := parseDuration(p.value)
		if err != nil {
			return errInvalidCLIDuration.Fmt(p.name, err)
		}

		*p.dst = int(dur / time.Minute)
	}

	if opts.Duration != "" {
		dur, err := parseDuration(opts.Duration)
		if err != nil {
			return errInvalidCLIDuration.Fmt("timer", err)
		}

		c.Timer.Duration = dur
	}

	if opts.LongBreakInterval > 0 {
		c.Settings.Timer.Pomodoro.SessionsBeforeLongBreak = int(opts.LongBreakInterval)
	}

	return nil
}

// applyCLISounds handles sound-related CLI options.
func applyCLISounds(c *Config, opts *CLIOptions) {
	if opts.AmbientSound != "" {
		if opts.AmbientSound == "off" {
			c.Settings.Sound.Type = models.SoundNone
		} else {
			c.Settings.Sound.Type = models.SoundType(opts.AmbientSound)
		}
	}

	if opts.Volume != nil {
		c.Settings.Sound.Volume = *opts.Volume
	}
}
