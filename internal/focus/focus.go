// Package focus coordinates the countdown engine, the Pomodoro phase
// controller and the session log, and fans completion events out to the
// registered subscribers
package focus

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/tempus/internal/analytics"
	"github.com/ayoisaiah/tempus/internal/countdown"
	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/pomodoro"
)

type (
	// Subscriber is notified once for every completed run.
	Subscriber interface {
		Completed(ctx context.Context, ev models.CompletionEvent)
	}

	// HalfwaySubscriber is an optional extension of Subscriber that is told
	// when a run crosses its halfway point.
	HalfwaySubscriber interface {
		Halfway(ctx context.Context, phase models.Phase, remaining int)
	}

	// SubscriberFunc adapts a function to the Subscriber interface.
	SubscriberFunc func(ctx context.Context, ev models.CompletionEvent)

	// Option configures a Coordinator.
	Option func(*Coordinator)
)

func (f SubscriberFunc) Completed(ctx context.Context, ev models.CompletionEvent) {
	f(ctx, ev)
}

const defaultSimpleMinutes = 25

// Duration is the simple mode countdown length split into components.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// Coordinator drives a single timer. It is safe for concurrent use.
type Coordinator struct {
	engine      *countdown.Engine
	phases      *pomodoro.Controller
	store       *analytics.Store
	logger      *slog.Logger
	now         func() time.Time
	subscribers []Subscriber
	settings    models.AppSettings
	simple      Duration
	tag         models.Tag
	mu          sync.Mutex
}

// WithClock replaces the wall clock used to date completions.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = l
	}
}

// WithTag sets the initial session tag.
func WithTag(tag models.Tag) Option {
	return func(c *Coordinator) {
		if tag.Valid() {
			c.tag = tag
		}
	}
}

// WithSimpleDuration sets the countdown length used in simple mode.
func WithSimpleDuration(d Duration) Option {
	return func(c *Coordinator) {
		c.simple = d
	}
}

// New returns an idle coordinator configured from settings.
func New(
	store *analytics.Store,
	settings models.AppSettings,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		engine:   &countdown.Engine{},
		phases:   pomodoro.New(settings.Timer.Pomodoro),
		store:    store,
		logger:   slog.Default(),
		now:      time.Now,
		settings: settings,
		simple:   Duration{Minutes: defaultSimpleMinutes},
		tag:      models.TagWork,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.applyDuration()

	return c
}

// Subscribe registers s. Subscribers run synchronously in registration
// order.
func (c *Coordinator) Subscribe(s Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subscribers = append(c.subscribers, s)
}

// applyDuration loads the length of the current phase, or the simple mode
// duration, into an idle engine.
func (c *Coordinator) applyDuration() {
	if c.engine.Status() != countdown.Idle {
		return
	}

	if c.settings.Timer.Mode == models.ModePomodoro {
		c.engine.ConfigureMinutes(c.phases.Minutes())
		return
	}

	c.engine.Configure(c.simple.Hours, c.simple.Minutes, c.simple.Seconds)
}

func (c *Coordinator) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.engine.Start()
}

func (c *Coordinator) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.engine.Pause()
}

// Toggle pauses a running timer and starts it otherwise.
func (c *Coordinator) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.engine.Toggle()
}

// Reset stops the current run and restores the full duration of the
// current phase.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.engine.Reset()
	c.applyDuration()
}

// Configure sets the simple mode duration. It is ignored unless the timer is
// idle.
func (c *Coordinator) Configure(d Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.engine.Status() != countdown.Idle {
		return
	}

	c.simple = d

	c.applyDuration()
}

// SetMode switches between simple and Pomodoro timing. The phase cycle
// restarts and an idle timer picks up the new duration.
func (c *Coordinator) SetMode(mode models.Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setMode(mode)
}

// ToggleMode flips between simple and Pomodoro timing and returns the new
// mode.
func (c *Coordinator) ToggleMode() models.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := models.ModePomodoro
	if c.settings.Timer.Mode == models.ModePomodoro {
		next = models.ModeSimple
	}

	c.setMode(next)

	return c.settings.Timer.Mode
}

// setMode must be called with c.mu held.
func (c *Coordinator) setMode(mode models.Mode) {
	if !mode.Valid() || mode == c.settings.Timer.Mode {
		return
	}

	c.settings.Timer.Mode = mode
	c.phases.Reset()
	c.engine.Reset()
	c.applyDuration()

	c.store.SetSettings(c.settings)
}

// SetSettings replaces the settings. Phase lengths take effect the next time
// the timer is idle.
func (c *Coordinator) SetSettings(settings models.AppSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()

	modeChanged := settings.Timer.Mode != c.settings.Timer.Mode

	c.settings = settings
	c.phases.SetSettings(settings.Timer.Pomodoro)

	if modeChanged {
		c.phases.Reset()
		c.engine.Reset()
	}

	c.applyDuration()

	c.store.SetSettings(settings)
}

// SetTag sets the tag attached to the next completed session. Unknown tags
// are ignored.
func (c *Coordinator) SetTag(tag models.Tag) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tag.Valid() {
		c.tag = tag
	}
}

// CycleTag moves to the next tag and returns it.
func (c *Coordinator) CycleTag() models.Tag {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tag = c.tag.Next()

	return c.tag
}

// Tick advances a running timer by one second.
func (c *Coordinator) Tick(ctx context.Context) (models.CompletionEvent, bool) {
	return c.Elapse(ctx, 1)
}

// Elapse advances a running timer by up to n seconds. The returned event is
// only valid when the second value is true.
func (c *Coordinator) Elapse(
	ctx context.Context,
	n int,
) (models.CompletionEvent, bool) {
	c.mu.Lock()

	completion, done := c.engine.Elapse(n)

	halfway := !done && c.engine.CrossedHalfway()
	phase := c.phases.Phase()
	remaining := c.engine.Remaining()

	if !done {
		subs := c.subscribers
		c.mu.Unlock()

		if halfway {
			c.publishHalfway(ctx, subs, phase, remaining)
		}

		return models.CompletionEvent{}, false
	}

	mode := c.settings.Timer.Mode
	tag := c.tag
	completedAt := c.now()
	before := c.store.CurrentStreak()

	c.store.RecordCompletion(ctx, completion.Duration, tag, mode, completedAt)

	next := phase
	if mode == models.ModePomodoro {
		next = c.phases.Advance()
	}

	c.applyDuration()

	if c.shouldAutoStart(mode, next) {
		c.engine.Start()
	}

	streak := c.store.CurrentStreak()

	ev := models.CompletionEvent{
		CompletedAt:     completedAt,
		Tag:             tag,
		Mode:            mode,
		Phase:           phase,
		NextPhase:       next,
		DurationSeconds: completion.Duration,
		StreakAfter:     streak,
		Milestone:       streak != before && models.IsStreakMilestone(streak),
	}

	subs := c.subscribers

	c.mu.Unlock()

	c.logger.DebugContext(
		ctx,
		"run completed",
		slog.String("phase", string(phase)),
		slog.String("next", string(next)),
		slog.Int("duration", ev.DurationSeconds),
	)

	for _, s := range subs {
		s.Completed(ctx, ev)
	}

	return ev, true
}

func (c *Coordinator) publishHalfway(
	ctx context.Context,
	subs []Subscriber,
	phase models.Phase,
	remaining int,
) {
	for _, s := range subs {
		if h, ok := s.(HalfwaySubscriber); ok {
			h.Halfway(ctx, phase, remaining)
		}
	}
}

func (c *Coordinator) shouldAutoStart(mode models.Mode, next models.Phase) bool {
	if mode != models.ModePomodoro {
		return false
	}

	if next.IsBreak() {
		return c.settings.Timer.AutoStartBreaks
	}

	return c.settings.Timer.AutoStartWork
}

// Snapshot is a consistent view of the timer for rendering.
type Snapshot struct {
	Status                  countdown.Status
	Mode                    models.Mode
	Phase                   models.Phase
	Tag                     models.Tag
	Remaining               int
	Configured              int
	Progress                float64
	CycleCount              int
	SessionsBeforeLongBreak int
}

// Snapshot returns the current state of the timer.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Status:                  c.engine.Status(),
		Mode:                    c.settings.Timer.Mode,
		Phase:                   c.phases.Phase(),
		Tag:                     c.tag,
		Remaining:               c.engine.Remaining(),
		Configured:              c.engine.Configured(),
		Progress:                c.engine.Progress(),
		CycleCount:              c.phases.CycleCount(),
		SessionsBeforeLongBreak: c.phases.SessionsBeforeLongBreak(),
	}
}

func (c *Coordinator) Status() countdown.Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.engine.Status()
}

func (c *Coordinator) Mode() models.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.settings.Timer.Mode
}

func (c *Coordinator) Tag() models.Tag {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tag
}

// Settings returns the effective settings.
func (c *Coordinator) Settings() models.AppSettings {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.settings
}

// Store returns the session log backing the coordinator.
func (c *Coordinator) Store() *analytics.Store {
	return c.store
}
