package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tempus/internal/analytics"
	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/store"
)

// Thursday afternoon
var now = time.Date(2024, time.March, 14, 15, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	pterm.DisableStyling()

	m.Run()
}

func newStore(t *testing.T) *analytics.Store {
	t.Helper()

	s := analytics.New(
		store.NewMemory(),
		models.DefaultAnalytics(),
		analytics.WithLocation(time.UTC),
	)

	ctx := context.Background()

	s.RecordCompletion(ctx, 45*60, models.TagWork, models.ModePomodoro, now.AddDate(0, 0, -2))
	s.RecordCompletion(ctx, 20*60, models.TagStudy, models.ModeSimple, now.AddDate(0, 0, -1))
	s.RecordCompletion(ctx, 30*60, models.TagWork, models.ModeSimple, now.Add(-time.Hour))

	return s
}

func TestSortedTags(t *testing.T) {
	got := sortedTags(map[models.Tag]int{
		models.TagReading: 10,
		models.TagWork:    50,
		models.TagStudy:   10,
	})

	want := []TagTotal{
		{models.TagWork, 50},
		{models.TagStudy, 10},
		{models.TagReading, 10},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild(t *testing.T) {
	r := Build(newStore(t), now, 0)

	assert.Equal(t, 95, r.TotalMinutes)
	assert.Equal(t, 3, r.TotalSessions)
	assert.Equal(t, 30, r.TodayMinutes)
	assert.Equal(t, 3, r.CurrentStreak)
	assert.Equal(t, 3, r.LongestStreak)
	assert.Equal(t, analytics.DefaultHeatmapWeeks, r.HeatmapWeeks)
	assert.Len(t, r.Heatmap, analytics.DefaultHeatmapWeeks*7)
	assert.Len(t, r.Weekly, 7)
	assert.Equal(t, []TagTotal{
		{models.TagWork, 75},
		{models.TagStudy, 20},
	}, r.Tags)
}

func TestShow(t *testing.T) {
	var buf bytes.Buffer

	Show(&buf, Build(newStore(t), now, 2))

	out := buf.String()

	for _, s := range []string{
		"Statistics as of March 14, 2024",
		"Time logged: 1h 35m",
		"Today: 30m",
		"Sessions completed: 3",
		"Current streak: 3 days",
		"work: 1h 15m (79%)",
		"Thu 03-14",
		"Activity (2 weeks)",
	} {
		assert.Contains(t, out, s)
	}
}

func TestHeatmapRows(t *testing.T) {
	r := Build(newStore(t), now, 3)

	lines := strings.Split(strings.TrimSpace(getHeatmap(r.Heatmap)), "\n")

	// title, seven weekdays and the legend
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[1], "Fri "))
	assert.Equal(t, 3, strings.Count(lines[1], heatmapChar))
	assert.True(t, strings.HasPrefix(lines[7], "Thu "))
}

func TestList(t *testing.T) {
	s := newStore(t)

	var buf bytes.Buffer

	List(&buf, s.SessionsForDate("2024-03-14"), time.UTC)

	out := buf.String()
	assert.Contains(t, out, "March 14, 2024 02:00 PM")
	assert.Contains(t, out, "30:00")
	assert.Contains(t, out, "simple")

	buf.Reset()
	List(&buf, nil, time.UTC)
	assert.Contains(t, buf.String(), noSessionsMsg)
}

func TestHandler(t *testing.T) {
	s := newStore(t)
	load := func(context.Context) (*analytics.Store, error) { return s, nil }

	h := NewHandler(load, func() time.Time { return now }, 4)
	srv := httptest.NewServer(h.Routes())

	defer srv.Close()

	cases := []struct {
		Name   string
		Path   string
		Status int
		Check  func(t *testing.T, body []byte)
	}{
		{
			Name:   "stats",
			Path:   "/api/stats",
			Status: http.StatusOK,
			Check: func(t *testing.T, body []byte) {
				var r Report
				require.NoError(t, json.Unmarshal(body, &r))
				assert.Equal(t, 95, r.TotalMinutes)
				assert.Len(t, r.Heatmap, 28)
			},
		},
		{
			Name:   "stats with weeks",
			Path:   "/api/stats?weeks=1",
			Status: http.StatusOK,
			Check: func(t *testing.T, body []byte) {
				var r Report
				require.NoError(t, json.Unmarshal(body, &r))
				assert.Len(t, r.Heatmap, 7)
			},
		},
		{
			Name:   "invalid weeks",
			Path:   "/api/stats?weeks=none",
			Status: http.StatusBadRequest,
		},
		{
			Name:   "sessions for yesterday",
			Path:   "/api/sessions?date=2024-03-13",
			Status: http.StatusOK,
			Check: func(t *testing.T, body []byte) {
				var sessions []models.Session
				require.NoError(t, json.Unmarshal(body, &sessions))
				require.Len(t, sessions, 1)
				assert.Equal(t, models.TagStudy, sessions[0].Tag)
			},
		},
		{
			Name:   "no sessions",
			Path:   "/api/sessions?date=2024-01-01",
			Status: http.StatusOK,
			Check: func(t *testing.T, body []byte) {
				assert.Equal(t, "[]", strings.TrimSpace(string(body)))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			res, err := http.Get(srv.URL + tc.Path)
			require.NoError(t, err)

			defer res.Body.Close()

			assert.Equal(t, tc.Status, res.StatusCode)

			var buf bytes.Buffer
			_, err = buf.ReadFrom(res.Body)
			require.NoError(t, err)

			if tc.Check != nil {
				tc.Check(t, buf.Bytes())
			}
		})
	}
}

func getStats(t *testing.T, url string) (Report, int) {
	t.Helper()

	res, err := http.Get(url + "/api/stats")
	require.NoError(t, err)

	defer res.Body.Close()

	var r Report
	if res.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(res.Body).Decode(&r))
	}

	return r, res.StatusCode
}

func TestHandlerReloadsLog(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	var failLoad atomic.Bool

	load := func(ctx context.Context) (*analytics.Store, error) {
		if failLoad.Load() {
			return nil, store.ErrTempusRunning
		}

		s, _, err := analytics.Open(ctx, mem, analytics.WithLocation(time.UTC))

		return s, err
	}

	srv := httptest.NewServer(NewHandler(load, func() time.Time { return now }, 1).Routes())
	defer srv.Close()

	r, status := getStats(t, srv.URL)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, r.TotalSessions)

	// a timer run records a session after the server started
	timerLog, _, err := analytics.Open(ctx, mem, analytics.WithLocation(time.UTC))
	require.NoError(t, err)
	timerLog.RecordCompletion(ctx, 25*60, models.TagWork, models.ModeSimple, now)

	r, status = getStats(t, srv.URL)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, r.TotalSessions)
	assert.Equal(t, 25, r.TodayMinutes)

	failLoad.Store(true)

	_, status = getStats(t, srv.URL)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}
