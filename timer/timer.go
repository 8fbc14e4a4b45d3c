// Package timer is the terminal interface of the Tempus timer and the
// completion side effects that go with it
package timer

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/tempus/internal/countdown"
	"github.com/ayoisaiah/tempus/internal/focus"
	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/timeutil"
	"github.com/ayoisaiah/tempus/internal/ui"
)

const (
	padding  = 2
	maxWidth = 80

	idleTitle = "Tempus - Focus Timer"
)

// Ambient controls the background sound while the timer runs.
type Ambient interface {
	Set(sound models.SoundType, volume float64) error
	Resume()
	Pause()
}

type nopAmbient struct{}

func (nopAmbient) Set(models.SoundType, float64) error { return nil }
func (nopAmbient) Resume()                             {}
func (nopAmbient) Pause()                              {}

type tickMsg time.Time

// Option configures a Model.
type Option func(*Model)

func WithAmbient(a Ambient) Option {
	return func(m *Model) {
		m.ambient = a
	}
}

// WithStatusFile writes the timer status to path on every tick.
func WithStatusFile(path string) Option {
	return func(m *Model) {
		m.statusPath = path
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithDebug dumps every non tick message to the log.
func WithDebug(debug bool) Option {
	return func(m *Model) {
		m.debug = debug
	}
}

// Model is the bubbletea model of the running timer.
type Model struct {
	ctx        context.Context
	coord      *focus.Coordinator
	ambient    Ambient
	logger     *slog.Logger
	now        func() time.Time
	lastTick   time.Time
	styles     styles
	statusPath string
	notice     string
	title      string
	help       help.Model
	progress   progress.Model
	keys       keyMap
	carry      time.Duration
	zen        bool
	debug      bool
}

// New returns a Model driving coord.
func New(ctx context.Context, coord *focus.Coordinator, opts ...Option) *Model {
	settings := coord.Settings()

	m := &Model{
		ctx:     ctx,
		coord:   coord,
		ambient: nopAmbient{},
		logger:  slog.Default(),
		now:     time.Now,
		help:    help.New(),
		keys:    newKeyMap(),
		styles:  newStyles(settings),
	}

	m.progress = progress.New(
		progress.WithSolidFill(string(ui.Accent(settings.AccentColor))),
		progress.WithoutPercentage(),
	)

	for _, opt := range opts {
		opt(m)
	}

	m.setSound(settings.Sound.Type)

	return m
}

// Run starts the interface and blocks until the user quits.
func Run(ctx context.Context, coord *focus.Coordinator, opts ...Option) error {
	m := New(ctx, coord, opts...)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()

	return err
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.titleCmd())
}

// windowTitle shows the remaining time while the timer runs.
func (m *Model) windowTitle() string {
	snap := m.coord.Snapshot()
	if snap.Status == countdown.Running {
		return timeutil.FormatClock(snap.Remaining) + " - Tempus"
	}

	return idleTitle
}

// titleCmd updates the terminal title when it changed since the last call.
func (m *Model) titleCmd() tea.Cmd {
	title := m.windowTitle()
	if title == m.title {
		return nil
	}

	m.title = title

	return tea.SetWindowTitle(title)
}

// setSound selects the ambient sound and keeps it in step with the timer.
func (m *Model) setSound(sound models.SoundType) {
	settings := m.coord.Settings()

	err := m.ambient.Set(sound, settings.Sound.Volume)
	if err != nil {
		m.logger.WarnContext(m.ctx, "ambient sound unavailable", slog.Any("error", err))
		m.notice = err.Error()
		sound = models.SoundNone
	}

	if settings.Sound.Type != sound {
		settings.Sound.Type = sound
		m.coord.SetSettings(settings)
	}

	if m.coord.Status() == countdown.Running {
		m.ambient.Resume()
	}
}

func (m *Model) writeStatus(now time.Time) {
	if m.statusPath == "" {
		return
	}

	s := NewStatus(m.coord.Snapshot(), now)

	err := WriteStatusFile(m.statusPath, &s)
	if err != nil {
		m.logger.DebugContext(m.ctx, "writing status file failed", slog.Any("error", err))
	}
}

// shutdown saves pending changes and removes the status file.
func (m *Model) shutdown() {
	m.ambient.Pause()

	err := m.coord.Store().Flush(m.ctx)
	if err != nil {
		m.logger.ErrorContext(m.ctx, "saving state failed", slog.Any("error", err))
	}

	if m.statusPath != "" {
		_ = os.Remove(m.statusPath)
	}
}
