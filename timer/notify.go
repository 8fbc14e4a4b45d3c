package timer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/pathutil"
	"github.com/ayoisaiah/tempus/internal/timeutil"
)

// SettingsFunc returns the effective settings at the time of an event.
type SettingsFunc func() models.AppSettings

var nextPhaseMessage = map[models.Phase]string{
	models.PhaseWork:       "Time to refocus and get back to work!",
	models.PhaseShortBreak: "It's time to take a well-deserved break!",
	models.PhaseLongBreak:  "Great work! Enjoy a long break.",
}

// completionMessage returns the notification shown for ev.
func completionMessage(ev *models.CompletionEvent) (title, msg string) {
	if ev.Mode == models.ModePomodoro {
		title = ev.Phase.String() + " is finished"
		msg = nextPhaseMessage[ev.NextPhase]
	} else {
		title = "Focus session complete"
		msg = fmt.Sprintf(
			"You focused on %s for %s.",
			ev.Tag,
			timeutil.FormatMinutes(ev.DurationSeconds/60),
		)
	}

	if ev.Milestone {
		msg += fmt.Sprintf(" You're on a %d day streak!", ev.StreakAfter)
	}

	return title, msg
}

func halfwayMessage(phase models.Phase, remaining int) (title, msg string) {
	title = "Halfway there"
	if phase.IsBreak() {
		title = phase.String() + " is halfway done"
	}

	return title, timeutil.FormatClock(remaining) + " remaining"
}

// Notifier shows desktop notifications for completed and halfway runs.
type Notifier struct {
	settings SettingsFunc
	logger   *slog.Logger
	notify   func(title, message, icon string) error
	icon     string
}

// NewNotifier returns a Notifier backed by beeep.
func NewNotifier(settings SettingsFunc, logger *slog.Logger) *Notifier {
	// pathToIcon will be an empty string if file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join(pathutil.Dir(), "icon.png"),
	)

	return &Notifier{
		settings: settings,
		logger:   logger,
		notify:   beeep.Notify,
		icon:     pathToIcon,
	}
}

func (n *Notifier) send(ctx context.Context, title, msg string) {
	err := n.notify(title, msg, n.icon)
	if err != nil {
		n.logger.WarnContext(
			ctx,
			"unable to display notification",
			slog.Any("error", err),
		)
	}
}

func (n *Notifier) Completed(ctx context.Context, ev models.CompletionEvent) {
	if !n.settings().Notifications.Enabled {
		return
	}

	title, msg := completionMessage(&ev)

	n.send(ctx, title, msg)
}

func (n *Notifier) Halfway(ctx context.Context, phase models.Phase, remaining int) {
	s := n.settings().Notifications
	if !s.Enabled || !s.HalfwayReminder {
		return
	}

	title, msg := halfwayMessage(phase, remaining)

	n.send(ctx, title, msg)
}

// audio is the part of Player used by SoundSubscriber.
type audio interface {
	Chime() error
	FadeOut(d time.Duration)
	Pause()
}

// SoundSubscriber plays the chime and fades the ambient loop on completion.
type SoundSubscriber struct {
	player   audio
	settings SettingsFunc
	logger   *slog.Logger
}

func NewSoundSubscriber(
	player audio,
	settings SettingsFunc,
	logger *slog.Logger,
) *SoundSubscriber {
	return &SoundSubscriber{
		player:   player,
		settings: settings,
		logger:   logger,
	}
}

func (s *SoundSubscriber) Completed(ctx context.Context, _ models.CompletionEvent) {
	settings := s.settings()

	if settings.Sound.FadeOnComplete {
		s.player.FadeOut(fadeDuration)
	} else {
		s.player.Pause()
	}

	if !settings.Notifications.Sound {
		return
	}

	err := s.player.Chime()
	if err != nil {
		s.logger.WarnContext(ctx, "unable to play chime", slog.Any("error", err))
	}
}

// Command runs the user's session command after every completed run.
type Command struct {
	logger *slog.Logger
	name   string
	args   []string
}

// NewCommand parses cmdline. A blank command yields nil.
func NewCommand(cmdline string, logger *slog.Logger) (*Command, error) {
	cmdSlice, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, errParseSessionCmd.Fmt(cmdline).Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil, nil
	}

	return &Command{
		logger: logger,
		name:   cmdSlice[0],
		args:   cmdSlice[1:],
	}, nil
}

// Env returns the variables describing ev that are passed to the command.
func (c *Command) Env(ev *models.CompletionEvent) []string {
	return []string{
		"TEMPUS_MODE=" + string(ev.Mode),
		"TEMPUS_PHASE=" + string(ev.Phase),
		"TEMPUS_NEXT_PHASE=" + string(ev.NextPhase),
		"TEMPUS_TAG=" + string(ev.Tag),
		"TEMPUS_DURATION=" + strconv.Itoa(ev.DurationSeconds),
		"TEMPUS_STREAK=" + strconv.Itoa(ev.StreakAfter),
	}
}

// Completed starts the command without waiting for it so that the timer
// keeps ticking.
func (c *Command) Completed(ctx context.Context, ev models.CompletionEvent) {
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Env = append(os.Environ(), c.Env(&ev)...)

	err := cmd.Start()
	if err != nil {
		c.logger.WarnContext(
			ctx,
			"unable to run session command",
			slog.String("cmd", c.name),
			slog.Any("error", err),
		)

		return
	}

	go func() {
		err := cmd.Wait()
		if err != nil {
			c.logger.WarnContext(
				ctx,
				"session command failed",
				slog.String("cmd", c.name),
				slog.Any("error", err),
			)
		}
	}()
}
