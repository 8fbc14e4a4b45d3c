package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/tempus/internal/models"
)

const asciiLogo = `
████████╗███████╗███╗   ███╗██████╗ ██╗   ██╗███████╗
╚══██╔══╝██╔════╝████╗ ████║██╔══██╗██║   ██║██╔════╝
   ██║   █████╗  ██╔████╔██║██████╔╝██║   ██║███████╗
   ██║   ██╔══╝  ██║╚██╔╝██║██╔═══╝ ██║   ██║╚════██║
   ██║   ███████╗██║ ╚═╝ ██║██║     ╚██████╔╝███████║
   ╚═╝   ╚══════╝╚═╝     ╚═╝╚═╝      ╚═════╝ ╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Mode               string
	WorkDuration       int
	ShortBreakDuration int
	LongBreakDuration  int
	LongBreakInterval  int
	Notify             bool
}

// WithPromptConfig returns an Option that asks for the Pomodoro settings when
// no config file exists yet. Non-interactive runs keep the defaults.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, &opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	// Display welcome message
	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Tempus for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'tempus edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default timer").
				Options(
					huh.NewOption("Simple countdown", "simple").Selected(true),
					huh.NewOption("Pomodoro cycle", "pomodoro"),
				).
				Value(&opts.Mode),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Work session length").
				Options(
					huh.NewOption("25 minutes", 25).Selected(true),
					huh.NewOption("35 minutes", 35),
					huh.NewOption("50 minutes", 50),
					huh.NewOption("60 minutes", 60),
					huh.NewOption("90 minutes", 90),
				).
				Value(&opts.WorkDuration),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Short break length").
				Options(
					huh.NewOption("5 minutes", 5).Selected(true),
					huh.NewOption("10 minutes", 10),
					huh.NewOption("15 minutes", 15),
					huh.NewOption("20 minutes", 20),
				).
				Value(&opts.ShortBreakDuration),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Long break length").
				Options(
					huh.NewOption("15 minutes", 15).Selected(true),
					huh.NewOption("20 minutes", 20),
					huh.NewOption("30 minutes", 30),
					huh.NewOption("45 minutes", 45),
				).
				Value(&opts.LongBreakDuration),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Work sessions before long break").
				Options(
					huh.NewOption("4 sessions", 4).Selected(true),
					huh.NewOption("6 sessions", 6),
					huh.NewOption("8 sessions", 8),
				).
				Value(&opts.LongBreakInterval),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show desktop notifications?").
				Value(&opts.Notify),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts *PromptOptions) {
	p := &c.Settings.Timer.Pomodoro

	c.Settings.Timer.Mode = models.Mode(opts.Mode)
	p.WorkDuration = opts.WorkDuration
	p.ShortBreakDuration = opts.ShortBreakDuration
	p.LongBreakDuration = opts.LongBreakDuration
	p.SessionsBeforeLongBreak = opts.LongBreakInterval
	c.Settings.Notifications.Enabled = opts.Notify
}
