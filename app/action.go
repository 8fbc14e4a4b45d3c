package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tempus/internal/analytics"
	"github.com/ayoisaiah/tempus/internal/config"
	"github.com/ayoisaiah/tempus/internal/focus"
	"github.com/ayoisaiah/tempus/internal/logger"
	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/osutil"
	"github.com/ayoisaiah/tempus/internal/pathutil"
	"github.com/ayoisaiah/tempus/internal/timeutil"
	"github.com/ayoisaiah/tempus/internal/ui"
	"github.com/ayoisaiah/tempus/report"
	"github.com/ayoisaiah/tempus/stats"
	"github.com/ayoisaiah/tempus/store"
	"github.com/ayoisaiah/tempus/timer"
)

const (
	envUpdateNotifier = "TEMPUS_UPDATE_NOTIFIER"
	envNoColor        = "NO_COLOR"
	envTempusNoColor  = "TEMPUS_NO_COLOR"
	envDebug          = "TEMPUS_DEBUG"
)

// logCloser closes the log file opened by beforeAction.
var logCloser io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// checkForUpdates alerts the user if there is
// an updated version of Tempus from the one currently installed.
func checkForUpdates(app *cli.App) {
	spinner, _ := pterm.DefaultSpinner.Start("Checking for updates...")
	c := http.Client{Timeout: 10 * time.Second}

	resp, err := c.Get("https://github.com/ayoisaiah/tempus/releases/latest")
	if err != nil {
		pterm.Error.Println("HTTP Error: Failed to check for update")
		return
	}

	defer resp.Body.Close()

	var version string

	_, err = fmt.Sscanf(
		resp.Request.URL.String(),
		"https://github.com/ayoisaiah/tempus/releases/tag/%s",
		&version,
	)
	if err != nil {
		pterm.Error.Println("Failed to get latest version")
		return
	}

	if version == app.Version {
		text := pterm.Sprintf(
			"Congratulations, you are using the latest version of %s",
			app.Name,
		)
		spinner.Success(text)
	} else {
		pterm.Warning.Prefix = pterm.Prefix{
			Text:  "UPDATE AVAILABLE",
			Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
		}
		pterm.Warning.Printfln("A new release of tempus is available: %s at %s", version, resp.Request.URL.String())
	}
}

// openPersister opens the database. A database held by another instance is
// an error, while any other failure degrades to an in-memory log.
func openPersister() (analytics.Persister, func(), error) {
	client, err := store.NewClient(
		pathutil.DBFilePath(),
		store.WithLogger(slog.Default()),
	)
	if err != nil {
		if errors.Is(err, store.ErrTempusRunning) {
			return nil, nil, err
		}

		slog.Error("opening database failed", slog.Any("error", err))
		report.Warning("Unable to open %s, sessions will not be saved: %v", pathutil.DBFilePath(), err)

		return store.NewMemory(), func() {}, nil
	}

	return client, func() {
		_ = client.Close()
	}, nil
}

// openStore loads the session log. A corrupt record is reported and
// replaced by an empty log.
func openStore(ctx *cli.Context, cfg *config.Config) (*analytics.Store, func(), error) {
	p, closeFn, err := openPersister()
	if err != nil {
		return nil, nil, err
	}

	s, _, err := analytics.Open(
		ctx.Context,
		p,
		analytics.WithSettings(cfg.Settings),
		analytics.WithLogger(slog.Default()),
	)
	if err != nil {
		if !errors.Is(err, store.ErrDecodeState) {
			closeFn()
			return nil, nil, err
		}

		report.Warning("%v, starting with an empty session log", err)
	}

	return s, closeFn, nil
}

// loadLog returns a stats.Loader that reads the session log from the
// database on every call. The database is only held for the duration of the
// read so that a timer can be started while the server runs.
func loadLog(cfg *config.Config) stats.Loader {
	return func(ctx context.Context) (*analytics.Store, error) {
		client, err := store.NewClient(
			pathutil.DBFilePath(),
			store.WithLogger(slog.Default()),
		)
		if err != nil {
			return nil, err
		}

		defer client.Close()

		s, _, err := analytics.Open(
			ctx,
			client,
			analytics.WithSettings(cfg.Settings),
			analytics.WithLogger(slog.Default()),
		)
		if err != nil && !errors.Is(err, store.ErrDecodeState) {
			return nil, err
		}

		return s, nil
	}
}

// loadConfig reads the config file and, when withFlags is set, applies the
// timer flags on top of it.
func loadConfig(ctx *cli.Context, withFlags bool) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	opts := []config.Option{config.WithViperConfig(configPath)}

	if withFlags {
		opts = []config.Option{
			config.WithPromptConfig(configPath),
			config.WithViperConfig(configPath),
			config.WithCLIConfig(ctx),
		}
	}

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Settings.Theme != models.ThemeLight

	return cfg, nil
}

// editConfigAction handles the edit-config command which opens the tempus
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// statsAction prints or serves the statistics of the session log.
func statsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	weeks := ctx.Int("weeks")

	if ctx.Bool("serve") {
		h := stats.NewHandler(loadLog(cfg), time.Now, weeks)

		return stats.Serve(ctx.Context, h, ctx.Uint("port"))
	}

	s, closeFn, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	// statistics never write, so the database is released straight away
	closeFn()

	r := stats.Build(s, time.Now(), weeks)

	if ctx.Bool("json") {
		return stats.WriteJSON(config.Stdout, r)
	}

	stats.Show(config.Stdout, r)

	return nil
}

// sessionsAction lists the sessions completed on the day given by --date.
func sessionsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	s, closeFn, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	closeFn()

	now := time.Now()

	day, err := timeutil.FromStr(ctx.String("date"), now)
	if err != nil {
		return errInvalidDate.Fmt(ctx.String("date")).Wrap(err)
	}

	sessions := s.SessionsForDate(timeutil.DateKey(day, s.Location()))

	if ctx.Bool("json") {
		if sessions == nil {
			sessions = []models.Session{}
		}

		return stats.WriteJSON(config.Stdout, sessions)
	}

	stats.List(config.Stdout, sessions, s.Location())

	return nil
}

// statusAction handles the status command and prints the status of the
// currently running timer.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus(
		config.Stdout,
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
		time.Now(),
	)
}

// subscribe registers the completion side effects of a timer run.
func subscribe(
	coord *focus.Coordinator,
	cfg *config.Config,
	player *timer.Player,
) error {
	l := slog.Default()

	coord.Subscribe(timer.NewNotifier(coord.Settings, l))
	coord.Subscribe(timer.NewSoundSubscriber(player, coord.Settings, l))

	cmd, err := timer.NewCommand(cfg.Timer.SessionCmd, l)
	if err != nil {
		return err
	}

	if cmd != nil {
		coord.Subscribe(cmd)
	}

	return nil
}

// defaultAction starts the interactive timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	s, closeFn, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	defer closeFn()

	h, m, sec := cfg.SimpleDuration()

	coord := focus.New(
		s,
		cfg.Settings,
		focus.WithTag(cfg.Timer.Tag),
		focus.WithSimpleDuration(focus.Duration{Hours: h, Minutes: m, Seconds: sec}),
		focus.WithLogger(slog.Default()),
	)

	player := timer.NewPlayer(pathutil.SoundDir(), slog.Default())
	defer player.Close()

	err = subscribe(coord, cfg, player)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx.Context, "starting timer",
		slog.String("mode", string(cfg.Settings.Timer.Mode)),
		slog.String("tag", string(cfg.Timer.Tag)),
	)

	return timer.Run(
		ctx.Context,
		coord,
		timer.WithAmbient(player),
		timer.WithStatusFile(pathutil.StatusFilePath()),
		timer.WithDebug(cfg.System.Debug),
		timer.WithLogger(slog.Default()),
	)
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/tempus/releases/%s\n",
			c.App.Version,
		)

		if _, found := os.LookupEnv(envUpdateNotifier); found {
			checkForUpdates(c.App)
		}
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if TEMPUS_NO_COLOR is set
	if _, exists := os.LookupEnv(envTempusNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	_, debug := os.LookupEnv(envDebug)

	logCloser = logger.Init(logger.Options{
		Path:  pathutil.LogFilePath(),
		Debug: debug || ctx.Bool("debug"),
	})

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting tempus")

	if logCloser != nil {
		return logCloser.Close()
	}

	return nil
}
