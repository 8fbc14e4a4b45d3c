// Package app defines the Tempus command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tempus/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the tempus app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "tempus",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Tempus is a focus timer for the command-line. Run a simple countdown or
		a full Pomodoro cycle, and keep track of your daily streak.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "stats",
				Usage:  "Show your weekly progress, streaks, tags and activity heatmap",
				Action: statsAction,
				Flags: []cli.Flag{
					jsonFlag,
					weeksFlag,
					serveFlag,
					statsPortFlag,
				},
			},
			{
				Name:   "sessions",
				Usage:  "List the sessions completed on a day",
				Action: sessionsAction,
				Flags: []cli.Flag{
					dateFlag,
					jsonFlag,
				},
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			modeFlag,
			workFlag,
			shortBreakFlag,
			longBreakFlag,
			longBreakIntervalFlag,
			durationFlag,
			tagFlag,
			soundFlag,
			volumeFlag,
			notifyFlag,
			halfwayFlag,
			autoStartBreaksFlag,
			autoStartWorkFlag,
			sessionCmdFlag,
			noColorFlag,
			debugFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
