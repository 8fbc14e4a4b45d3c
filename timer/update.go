package timer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/tempus/internal/countdown"
	"github.com/ayoisaiah/tempus/internal/models"
)

// handleTick applies the wall clock time that passed since the previous
// tick. Ticks that arrive late are caught up in a single step.
func (m *Model) handleTick(now time.Time) tea.Cmd {
	if m.coord.Status() != countdown.Running {
		m.lastTick = time.Time{}
		m.carry = 0
		m.writeStatus(now)

		return tea.Batch(m.tick(), m.titleCmd())
	}

	if !m.lastTick.IsZero() {
		m.carry += now.Sub(m.lastTick)
	}

	m.lastTick = now

	n := int(m.carry / time.Second)
	m.carry -= time.Duration(n) * time.Second

	if n > 0 {
		ev, done := m.coord.Elapse(m.ctx, n)
		if done {
			m.handleCompletion(&ev)
		}
	}

	m.writeStatus(now)

	return tea.Batch(m.tick(), m.titleCmd())
}

func (m *Model) handleCompletion(ev *models.CompletionEvent) {
	title, msg := completionMessage(ev)
	m.notice = title + ". " + msg

	if m.coord.Status() == countdown.Running {
		m.ambient.Resume()
		return
	}

	m.lastTick = time.Time{}
	m.carry = 0
}

func (m *Model) handleTogglePlay() {
	m.coord.Toggle()

	if m.coord.Status() == countdown.Running {
		m.notice = ""
		m.lastTick = m.now()
		m.carry = 0
		m.ambient.Resume()

		return
	}

	m.ambient.Pause()
}

func (m *Model) handleReset() {
	m.coord.Reset()
	m.ambient.Pause()
	m.lastTick = time.Time{}
	m.carry = 0
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.togglePlay):
		m.handleTogglePlay()

	case key.Matches(msg, m.keys.reset):
		m.handleReset()

	case key.Matches(msg, m.keys.tag):
		m.coord.CycleTag()

	case key.Matches(msg, m.keys.mode):
		mode := m.coord.ToggleMode()
		m.ambient.Pause()
		m.notice = fmt.Sprintf("Switched to %s mode", mode)

	case key.Matches(msg, m.keys.sound):
		m.setSound(m.coord.Settings().Sound.Type.Next())

	case key.Matches(msg, m.keys.zen):
		m.zen = !m.zen

	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.quit):
		m.shutdown()

		return tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return m.titleCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok && m.debug {
		m.logger.DebugContext(m.ctx, "tui message", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return m, m.handleTick(time.Time(msg))

	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width

		return m, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	return m, nil
}
