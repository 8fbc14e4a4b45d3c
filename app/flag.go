package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug logs to the log file",
	}

	modeFlag = &cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "Timer mode: simple or pomodoro",
	}

	workFlag = &cli.StringFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration in minutes (default: 25)",
	}

	shortBreakFlag = &cli.StringFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes (default: 5)",
	}

	longBreakFlag = &cli.StringFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes (default: 15)",
	}

	longBreakIntervalFlag = &cli.UintFlag{
		Name:    "long-break-interval",
		Aliases: []string{"int"},
		Usage:   "The number of work sessions before a long break (default: 4)",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Simple timer duration, e.g. 45m or 1h30m (default: 25m)",
	}

	tagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Session tag: work, study, creative, exercise, reading or other",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Ambient sound: rain, lofi, cafe or whiteNoise. Disable sound by setting to 'off'",
	}

	volumeFlag = &cli.Float64Flag{
		Name:  "volume",
		Usage: "Ambient sound volume between 0 and 1 (default: 0.5)",
	}

	notifyFlag = &cli.BoolFlag{
		Name:  "notify",
		Usage: "Show a desktop notification when a session completes",
	}

	halfwayFlag = &cli.BoolFlag{
		Name:  "halfway",
		Usage: "Show a reminder at the halfway point of each session",
	}

	autoStartBreaksFlag = &cli.BoolFlag{
		Name:  "auto-start-breaks",
		Usage: "Start breaks automatically after a work session",
	}

	autoStartWorkFlag = &cli.BoolFlag{
		Name:  "auto-start-work",
		Usage: "Start work sessions automatically after a break",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the raw data as JSON",
	}

	weeksFlag = &cli.IntFlag{
		Name:  "weeks",
		Usage: "Number of weeks covered by the activity heatmap",
		Value: 12,
	}

	serveFlag = &cli.BoolFlag{
		Name:  "serve",
		Usage: "Serve the statistics as JSON over HTTP. Requests fail while a timer is running",
	}

	statsPortFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the statistics server",
		Value: 1111,
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "Day to list, e.g. 2024-03-14, yesterday or '3 days ago'",
		Value: "today",
	}
)
