package timer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tempus/internal/analytics"
	"github.com/ayoisaiah/tempus/internal/countdown"
	"github.com/ayoisaiah/tempus/internal/focus"
	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/store"
)

type fakeAmbient struct {
	err     error
	sound   models.SoundType
	playing bool
}

func (f *fakeAmbient) Set(sound models.SoundType, _ float64) error {
	if f.err != nil && sound != models.SoundNone {
		return f.err
	}

	f.sound = sound
	f.playing = false

	return nil
}

func (f *fakeAmbient) Resume() { f.playing = true }
func (f *fakeAmbient) Pause()  { f.playing = false }

type harness struct {
	model   *Model
	ambient *fakeAmbient
	mem     *store.Memory
	start   time.Time
	now     time.Time
}

func newHarness(t *testing.T, ambientErr error) *harness {
	t.Helper()

	h := &harness{
		ambient: &fakeAmbient{err: ambientErr},
		mem:     store.NewMemory(),
		start:   time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	h.now = h.start

	clock := func() time.Time { return h.now }

	s := analytics.New(
		h.mem,
		models.DefaultAnalytics(),
		analytics.WithLocation(time.UTC),
	)

	coord := focus.New(
		s,
		models.DefaultSettings(),
		focus.WithClock(clock),
		focus.WithSimpleDuration(focus.Duration{Seconds: 5}),
	)

	h.model = New(
		context.Background(),
		coord,
		WithAmbient(h.ambient),
		WithClock(clock),
		WithStatusFile(filepath.Join(t.TempDir(), "status.json")),
	)

	return h
}

func (h *harness) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd

	for _, k := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		if k == " " {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(k)}
		}

		_, cmd = h.model.Update(msg)
	}

	return cmd
}

func (h *harness) tickAt(d time.Duration) {
	h.now = h.start.Add(d)
	h.model.Update(tickMsg(h.now))
}

func TestTickCountsDownAndCompletes(t *testing.T) {
	h := newHarness(t, nil)

	h.press(" ")
	require.Equal(t, countdown.Running, h.model.coord.Status())
	assert.True(t, h.ambient.playing)

	h.tickAt(2 * time.Second)
	assert.Equal(t, 3, h.model.coord.Snapshot().Remaining)

	h.tickAt(5 * time.Second)

	data := h.model.coord.Store().Data()
	require.Len(t, data.Sessions, 1)
	assert.Equal(t, 5, data.Sessions[0].Duration)
	assert.Equal(t, countdown.Idle, h.model.coord.Status())
	assert.Contains(t, h.model.notice, "Focus session complete")
}

func TestLateTicksAreCaughtUp(t *testing.T) {
	h := newHarness(t, nil)

	h.press(" ")

	h.tickAt(1500 * time.Millisecond)
	assert.Equal(t, 4, h.model.coord.Snapshot().Remaining)

	h.tickAt(3 * time.Second)
	assert.Equal(t, 2, h.model.coord.Snapshot().Remaining)
}

func TestPausedTimerIgnoresTicks(t *testing.T) {
	h := newHarness(t, nil)

	h.press(" ", " ")
	require.Equal(t, countdown.Paused, h.model.coord.Status())
	assert.False(t, h.ambient.playing)

	h.tickAt(3 * time.Second)
	assert.Equal(t, 5, h.model.coord.Snapshot().Remaining)

	// resuming starts counting from the resume time
	h.press(" ")
	h.tickAt(4 * time.Second)
	assert.Equal(t, 4, h.model.coord.Snapshot().Remaining)
}

func TestWindowTitleFollowsTimer(t *testing.T) {
	h := newHarness(t, nil)

	require.NotNil(t, h.model.titleCmd())
	assert.Equal(t, idleTitle, h.model.title)

	// unchanged titles are not sent again
	assert.Nil(t, h.model.titleCmd())

	require.NotNil(t, h.press(" "))
	assert.Equal(t, "00:05 - Tempus", h.model.title)

	h.tickAt(2 * time.Second)
	assert.Equal(t, "00:03 - Tempus", h.model.title)

	h.press(" ")
	assert.Equal(t, idleTitle, h.model.title)

	// a completed run goes back to the idle title
	h.press(" ")
	h.tickAt(5 * time.Second)
	require.Len(t, h.model.coord.Store().Data().Sessions, 1)
	assert.Equal(t, idleTitle, h.model.title)
}

func TestResetKey(t *testing.T) {
	h := newHarness(t, nil)

	h.press(" ")
	h.tickAt(2 * time.Second)
	h.press("r")

	snap := h.model.coord.Snapshot()
	assert.Equal(t, countdown.Idle, snap.Status)
	assert.Equal(t, 5, snap.Remaining)
	assert.False(t, h.ambient.playing)
}

func TestModeAndTagKeys(t *testing.T) {
	h := newHarness(t, nil)

	h.press("t")
	assert.Equal(t, models.TagStudy, h.model.coord.Tag())

	h.press("m")

	snap := h.model.coord.Snapshot()
	assert.Equal(t, models.ModePomodoro, snap.Mode)
	assert.Equal(t, 25*60, snap.Remaining)
	assert.Contains(t, h.model.notice, "pomodoro")
}

func TestSoundKey(t *testing.T) {
	h := newHarness(t, nil)

	h.press("s")

	assert.Equal(t, models.SoundRain, h.ambient.sound)
	assert.Equal(t, models.SoundRain, h.model.coord.Settings().Sound.Type)
}

func TestSoundKeyFailure(t *testing.T) {
	h := newHarness(t, errors.New("no rain file"))

	h.press("s")

	assert.Equal(t, models.SoundNone, h.model.coord.Settings().Sound.Type)
	assert.Equal(t, "no rain file", h.model.notice)
}

func TestZenAndHelpKeys(t *testing.T) {
	h := newHarness(t, nil)

	assert.Contains(t, h.model.View(), "Streak")

	h.press("z")

	view := h.model.View()
	assert.Contains(t, view, "00:05")
	assert.NotContains(t, view, "Streak")

	h.press("?")
	assert.True(t, h.model.help.ShowAll)
}

func TestStatusFileLifecycle(t *testing.T) {
	h := newHarness(t, nil)

	h.press(" ")
	h.tickAt(2 * time.Second)

	s, err := ReadStatusFile(h.model.statusPath)
	require.NoError(t, err)
	assert.Equal(t, countdown.Running, s.Status)
	assert.Equal(t, 3, s.Remaining)
	assert.Equal(t, h.now.Add(3*time.Second), s.EndTime.UTC())

	cmd := h.press("q")
	require.NotNil(t, cmd)

	_, err = os.Stat(h.model.statusPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Positive(t, h.mem.Saves())
}
