package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/tempus/internal/models"
)

func TestWeeklyStats(t *testing.T) {
	s := newTestStore(t, &DBMock{})
	ctx := context.Background()

	now := time.Date(2024, time.March, 14, 15, 0, 0, 0, time.UTC) // Thursday

	s.RecordCompletion(ctx, 30*60, models.TagWork, models.ModeSimple, now.Add(-time.Hour))
	s.RecordCompletion(ctx, 45*60, models.TagWork, models.ModeSimple, now.AddDate(0, 0, -2))
	// outside the window
	s.RecordCompletion(ctx, 10*60, models.TagWork, models.ModeSimple, now.AddDate(0, 0, -7))

	want := []DayBucket{
		{Day: "Fri", Date: "2024-03-08", Minutes: 0},
		{Day: "Sat", Date: "2024-03-09", Minutes: 0},
		{Day: "Sun", Date: "2024-03-10", Minutes: 0},
		{Day: "Mon", Date: "2024-03-11", Minutes: 0},
		{Day: "Tue", Date: "2024-03-12", Minutes: 45},
		{Day: "Wed", Date: "2024-03-13", Minutes: 0},
		{Day: "Thu", Date: "2024-03-14", Minutes: 30},
	}

	if diff := cmp.Diff(want, s.WeeklyStats(now)); diff != "" {
		t.Errorf("weekly stats mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionsForDate(t *testing.T) {
	s := newTestStore(t, &DBMock{})
	ctx := context.Background()

	s.RecordCompletion(ctx, 60, models.TagWork, models.ModeSimple, day(3, 8))
	s.RecordCompletion(ctx, 120, models.TagStudy, models.ModeSimple, day(4, 8))
	s.RecordCompletion(ctx, 180, models.TagReading, models.ModeSimple, day(3, 22))

	got := s.SessionsForDate("2024-03-03")

	ids := make([]string, len(got))
	for i := range got {
		ids[i] = got[i].ID
	}

	if diff := cmp.Diff([]string{"session-1", "session-3"}, ids); diff != "" {
		t.Errorf("sessions mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, s.SessionsForDate("2024-03-05"))
}

func TestLevel(t *testing.T) {
	cases := []struct {
		minutes    int
		hasSession bool
		want       int
	}{
		{0, false, 0},
		{0, true, 1},
		{29, true, 1},
		{30, true, 2},
		{59, true, 2},
		{60, true, 3},
		{119, true, 3},
		{120, true, 4},
		{600, true, 4},
	}

	for _, tc := range cases {
		if got := Level(tc.minutes, tc.hasSession); got != tc.want {
			t.Errorf("Level(%d, %v) = %d, want %d", tc.minutes, tc.hasSession, got, tc.want)
		}
	}
}

func TestHeatmap(t *testing.T) {
	s := newTestStore(t, &DBMock{})
	ctx := context.Background()

	now := time.Date(2024, time.March, 14, 15, 0, 0, 0, time.UTC)

	s.RecordCompletion(ctx, 30, models.TagWork, models.ModeSimple, now)
	s.RecordCompletion(ctx, 70*60, models.TagWork, models.ModeSimple, now.AddDate(0, 0, -1))
	s.RecordCompletion(ctx, 60*60, models.TagWork, models.ModeSimple, now.AddDate(0, 0, -3))
	s.RecordCompletion(ctx, 60*60, models.TagWork, models.ModeSimple, now.AddDate(0, 0, -3))

	cells := s.Heatmap(now, 0)

	assert.Len(t, cells, DefaultHeatmapWeeks*7)
	assert.Equal(t, "2023-12-22", cells[0].Date)

	last := cells[len(cells)-4:]

	want := []HeatmapCell{
		{Date: "2024-03-11", Minutes: 120, Level: 4},
		{Date: "2024-03-12", Minutes: 0, Level: 0},
		{Date: "2024-03-13", Minutes: 70, Level: 3},
		{Date: "2024-03-14", Minutes: 0, Level: 1},
	}

	if diff := cmp.Diff(want, last); diff != "" {
		t.Errorf("heatmap tail mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, s.Heatmap(now, 2), 14)
}

func TestTodayMinutesAndTagTotals(t *testing.T) {
	s := newTestStore(t, &DBMock{})
	ctx := context.Background()

	s.RecordCompletion(ctx, 25*60, models.TagWork, models.ModeSimple, day(5, 9))
	s.RecordCompletion(ctx, 15*60, models.TagStudy, models.ModeSimple, day(5, 11))
	s.RecordCompletion(ctx, 40*60, models.TagWork, models.ModeSimple, day(4, 11))

	assert.Equal(t, 40, s.TodayMinutes(day(5, 20)))
	assert.Equal(t, map[models.Tag]int{
		models.TagWork:  65,
		models.TagStudy: 15,
	}, s.TagTotals())
}
