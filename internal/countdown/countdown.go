// Package countdown implements the Tempus countdown engine: an idle, running
// and paused state machine over whole seconds that reports completion once
// per run
package countdown

// Status is the state of the countdown.
type Status string

const (
	Idle    Status = "idle"
	Running Status = "running"
	Paused  Status = "paused"
)

const (
	maxHours   = 23
	maxMinutes = 59
	maxSeconds = 59
)

// Completion is returned by the tick that brings a run to zero.
type Completion struct {
	// Duration is the configured duration of the completed run in seconds.
	Duration int
}

// Engine tracks a single countdown. The zero value is an idle engine with
// nothing configured.
type Engine struct {
	hours      int
	minutes    int
	seconds    int
	configured int
	remaining  int
	status     Status
	halfway    bool
}

// New returns an idle engine configured with the given components.
func New(hours, minutes, seconds int) *Engine {
	e := &Engine{status: Idle}
	e.Configure(hours, minutes, seconds)

	return e
}

func clamp(v, hi int) int {
	return max(0, min(hi, v))
}

// Configure sets the duration of the next run. Each component is clamped to
// its range independently. It is ignored unless the engine is idle.
func (e *Engine) Configure(hours, minutes, seconds int) {
	if e.Status() != Idle {
		return
	}

	e.hours = clamp(hours, maxHours)
	e.minutes = clamp(minutes, maxMinutes)
	e.seconds = clamp(seconds, maxSeconds)
	e.configured = e.hours*3600 + e.minutes*60 + e.seconds
	e.remaining = e.configured
	e.halfway = false
}

// ConfigureMinutes configures the engine from a minute count, carrying whole
// hours into the hour component.
func (e *Engine) ConfigureMinutes(mins int) {
	e.Configure(mins/60, mins%60, 0)
}

// Start begins or resumes the countdown. A fresh run is initialised from the
// configured duration. Zero-length runs cannot be started.
func (e *Engine) Start() {
	switch e.Status() {
	case Running:
		return
	case Idle:
		if e.remaining == 0 {
			e.remaining = e.configured
			e.halfway = false
		}
	}

	if e.remaining == 0 {
		return
	}

	e.status = Running
}

// Pause suspends a running countdown. Remaining time is kept.
func (e *Engine) Pause() {
	if e.Status() != Running {
		return
	}

	e.status = Paused
}

// Toggle pauses a running countdown and starts it otherwise.
func (e *Engine) Toggle() {
	if e.Status() == Running {
		e.Pause()
		return
	}

	e.Start()
}

// Reset returns the engine to idle with a full configured duration.
func (e *Engine) Reset() {
	e.status = Idle
	e.remaining = e.configured
	e.halfway = false
}

// Tick advances a running countdown by one second. The tick that reaches
// zero moves the engine to idle and is the only one that reports completion.
func (e *Engine) Tick() (Completion, bool) {
	if e.Status() != Running || e.remaining <= 0 {
		return Completion{}, false
	}

	e.remaining--

	if e.remaining > 0 {
		return Completion{}, false
	}

	e.status = Idle

	return Completion{Duration: e.configured}, true
}

// Elapse applies up to n ticks and stops early at completion so that a run
// can never complete twice.
func (e *Engine) Elapse(n int) (Completion, bool) {
	for range n {
		if c, done := e.Tick(); done {
			return c, true
		}

		if e.Status() != Running {
			break
		}
	}

	return Completion{}, false
}

// CrossedHalfway reports, once per run, that at least half of the
// configured duration has elapsed.
func (e *Engine) CrossedHalfway() bool {
	if e.halfway || e.Status() == Idle || e.configured < 2 {
		return false
	}

	if e.remaining*2 > e.configured {
		return false
	}

	e.halfway = true

	return true
}

func (e *Engine) Status() Status {
	if e.status == "" {
		return Idle
	}

	return e.status
}

// Remaining returns the seconds left in the current run.
func (e *Engine) Remaining() int {
	return e.remaining
}

// Configured returns the configured duration in seconds.
func (e *Engine) Configured() int {
	return e.configured
}

// Components returns the clamped hour, minute and second inputs.
func (e *Engine) Components() (hours, minutes, seconds int) {
	return e.hours, e.minutes, e.seconds
}

// Progress returns the elapsed fraction of the current run in [0, 1].
func (e *Engine) Progress() float64 {
	if e.configured == 0 {
		return 0
	}

	return 1 - float64(e.remaining)/float64(e.configured)
}
