package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/tempus/internal/countdown"
	"github.com/ayoisaiah/tempus/internal/focus"
	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/timeutil"
	"github.com/ayoisaiah/tempus/internal/ui"
)

type styles struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	phase     map[models.Phase]lipgloss.Style
}

func newStyles(settings models.AppSettings) styles {
	accent := ui.Accent(settings.AccentColor)

	text := lipgloss.Color("#F8FAFC")
	muted := lipgloss.Color("#94A3B8")

	if settings.Theme == models.ThemeLight {
		text = lipgloss.Color("#0F172A")
		muted = lipgloss.Color("#64748B")
	}

	label := lipgloss.NewStyle().Bold(true).Padding(0, 1).MarginRight(1)

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		secondary: lipgloss.NewStyle().Foreground(accent),
		hint:      lipgloss.NewStyle().Foreground(muted),
		phase: map[models.Phase]lipgloss.Style{
			models.PhaseWork: label.
				Background(accent).
				Foreground(lipgloss.Color("#FFFFFF")),
			models.PhaseShortBreak: label.
				Background(lipgloss.Color("#3B82F6")).
				Foreground(lipgloss.Color("#FFFFFF")),
			models.PhaseLongBreak: label.
				Background(lipgloss.Color("#8B5CF6")).
				Foreground(lipgloss.Color("#FFFFFF")),
		},
	}
}

func (m *Model) headerView(snap *focus.Snapshot) string {
	var s strings.Builder

	if snap.Mode == models.ModePomodoro {
		s.WriteString(m.styles.phase[snap.Phase].Render(snap.Phase.String()))

		if snap.Phase == models.PhaseWork {
			s.WriteString(m.styles.hint.Render(fmt.Sprintf(
				"(%d/%d) ",
				snap.CycleCount+1,
				snap.SessionsBeforeLongBreak,
			)))
		}
	} else {
		s.WriteString(m.styles.phase[models.PhaseWork].Render("Focus"))
	}

	s.WriteString(m.styles.secondary.Render("#" + string(snap.Tag)))

	switch snap.Status {
	case countdown.Paused:
		s.WriteString(m.styles.hint.Render(" [Paused]"))
	case countdown.Idle:
		s.WriteString(m.styles.hint.Render(" [Ready]"))
	case countdown.Running:
		end := m.now().Add(time.Duration(snap.Remaining) * time.Second)
		s.WriteString(m.styles.hint.Render(" until " + end.Format("15:04:05")))
	}

	return s.String()
}

func (m *Model) summaryView() string {
	store := m.coord.Store()
	today := store.TodayMinutes(m.now())
	streak := store.CurrentStreak()

	days := "days"
	if streak == 1 {
		days = "day"
	}

	summary := fmt.Sprintf(
		"Today %s · Streak %d %s",
		timeutil.FormatMinutes(today),
		streak,
		days,
	)

	sound := m.coord.Settings().Sound.Type
	if sound != models.SoundNone {
		summary += " · ♪ " + string(sound)
	}

	return m.styles.hint.Render(summary)
}

func (m *Model) View() string {
	snap := m.coord.Snapshot()
	clock := m.styles.main.Render(timeutil.FormatClock(snap.Remaining))

	if m.zen {
		return m.styles.base.Render(clock)
	}

	var s strings.Builder

	s.WriteString(m.headerView(&snap))
	s.WriteString("\n\n")
	s.WriteString(clock)
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(snap.Progress))
	s.WriteString("\n\n")
	s.WriteString(m.summaryView())

	if m.notice != "" {
		s.WriteString("\n\n" + m.styles.secondary.Render(m.notice))
	}

	s.WriteString("\n\n" + m.help.View(m.keys))

	return m.styles.base.Render(s.String())
}
