package timer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tempus/internal/countdown"
	"github.com/ayoisaiah/tempus/internal/focus"
	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/store"
)

func TestStatusLabel(t *testing.T) {
	cases := []struct {
		Name   string
		Status Status
		Want   string
	}{
		{
			Name:   "simple",
			Status: Status{Mode: models.ModeSimple},
			Want:   "[Focus]",
		},
		{
			Name: "work",
			Status: Status{
				Mode:              models.ModePomodoro,
				Phase:             models.PhaseWork,
				WorkCycle:         2,
				LongBreakInterval: 4,
			},
			Want: "[Work 2/4]",
		},
		{
			Name:   "short break",
			Status: Status{Mode: models.ModePomodoro, Phase: models.PhaseShortBreak},
			Want:   "[Short break]",
		},
		{
			Name:   "long break",
			Status: Status{Mode: models.ModePomodoro, Phase: models.PhaseLongBreak},
			Want:   "[Long break]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, tc.Status.Label())
		})
	}
}

func TestStatusRemainingAt(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)

	running := NewStatus(focus.Snapshot{
		Status:    countdown.Running,
		Remaining: 90,
	}, now)

	assert.Equal(t, now.Add(90*time.Second), running.EndTime)
	assert.Equal(t, 60, running.RemainingAt(now.Add(30*time.Second)))

	paused := NewStatus(focus.Snapshot{
		Status:    countdown.Paused,
		Remaining: 90,
	}, now)

	assert.True(t, paused.EndTime.IsZero())
	assert.Equal(t, 90, paused.RemainingAt(now.Add(time.Hour)))
}

func TestStatusText(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	now := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)

	s := Status{
		Status:            countdown.Paused,
		Mode:              models.ModePomodoro,
		Phase:             models.PhaseWork,
		Tag:               models.TagReading,
		Remaining:         754,
		WorkCycle:         1,
		LongBreakInterval: 4,
	}

	assert.Equal(t, "[Work 1/4]: 12:34 >>> reading (paused)", s.Text(now))
}

func TestStatusFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")

	want := Status{
		EndTime:           time.Date(2024, 3, 14, 9, 25, 0, 0, time.UTC),
		Status:            countdown.Running,
		Mode:              models.ModeSimple,
		Phase:             models.PhaseWork,
		Tag:               models.TagWork,
		Remaining:         1500,
		WorkCycle:         1,
		LongBreakInterval: 4,
	}

	require.NoError(t, WriteStatusFile(path, &want))

	got, err := ReadStatusFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadStatusFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := ReadStatusFile(path)
	assert.ErrorIs(t, err, errReadStatus)
}

func TestReportStatusWhenNotRunning(t *testing.T) {
	dir := t.TempDir()

	var buf strings.Builder

	err := ReportStatus(
		&buf,
		filepath.Join(dir, "tempus.db"),
		filepath.Join(dir, "status.json"),
		time.Now(),
	)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestReportStatusWhileRunning(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "tempus.db")
	statusPath := filepath.Join(dir, "status.json")
	now := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)

	client, err := store.NewClient(dbPath)
	require.NoError(t, err)

	defer client.Close()

	s := NewStatus(focus.Snapshot{
		Status:    countdown.Running,
		Mode:      models.ModeSimple,
		Phase:     models.PhaseWork,
		Tag:       models.TagWork,
		Remaining: 300,
	}, now)
	require.NoError(t, WriteStatusFile(statusPath, &s))

	var buf strings.Builder

	require.NoError(t, ReportStatus(&buf, dbPath, statusPath, now.Add(time.Minute)))
	assert.Equal(t, "[Focus]: 04:00 >>> work\n", buf.String())
}
