// Package pomodoro cycles between work sessions and short and long breaks
package pomodoro

import "github.com/ayoisaiah/tempus/internal/models"

// Controller tracks the current Pomodoro phase. Settings are expected to be
// validated by the caller.
type Controller struct {
	settings   models.PomodoroSettings
	phase      models.Phase
	cycleCount int
}

// New returns a controller in the work phase.
func New(settings models.PomodoroSettings) *Controller {
	return &Controller{
		settings: settings,
		phase:    models.PhaseWork,
	}
}

// Advance moves to the phase that follows a completed one and returns it.
// Every work session counts towards the long break; breaks always lead back
// to work.
func (c *Controller) Advance() models.Phase {
	if c.phase != models.PhaseWork {
		c.phase = models.PhaseWork
		return c.phase
	}

	c.cycleCount++

	if c.cycleCount >= c.settings.SessionsBeforeLongBreak {
		c.phase = models.PhaseLongBreak
		c.cycleCount = 0

		return c.phase
	}

	c.phase = models.PhaseShortBreak

	return c.phase
}

// Reset returns to the first work session of a cycle.
func (c *Controller) Reset() {
	c.phase = models.PhaseWork
	c.cycleCount = 0
}

// SetSettings replaces the phase lengths without touching the cycle.
func (c *Controller) SetSettings(settings models.PomodoroSettings) {
	c.settings = settings
}

func (c *Controller) Phase() models.Phase {
	return c.phase
}

// CycleCount returns the work sessions completed since the last long break.
func (c *Controller) CycleCount() int {
	return c.cycleCount
}

// SessionsBeforeLongBreak returns the configured long break interval.
func (c *Controller) SessionsBeforeLongBreak() int {
	return c.settings.SessionsBeforeLongBreak
}

// Minutes returns the configured length of the current phase.
func (c *Controller) Minutes() int {
	return c.MinutesFor(c.phase)
}

// MinutesFor returns the configured length of phase p.
func (c *Controller) MinutesFor(p models.Phase) int {
	switch p {
	case models.PhaseShortBreak:
		return c.settings.ShortBreakDuration
	case models.PhaseLongBreak:
		return c.settings.LongBreakDuration
	default:
		return c.settings.WorkDuration
	}
}
