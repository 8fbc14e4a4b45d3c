package analytics

import (
	"time"

	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/timeutil"
)

const (
	// DefaultHeatmapWeeks is the span of the activity heatmap.
	DefaultHeatmapWeeks = 12

	daysInAWeek = 7
)

// heatmapThresholds are the minimum daily minutes for levels 2, 3 and 4.
var heatmapThresholds = []int{30, 60, 120}

type (
	// DayBucket holds the minutes logged on one calendar day.
	DayBucket struct {
		Day     string `json:"day"`
		Date    string `json:"date"`
		Minutes int    `json:"minutes"`
	}

	// HeatmapCell is one day of the activity heatmap.
	HeatmapCell struct {
		Date    string `json:"date"`
		Minutes int    `json:"minutes"`
		Level   int    `json:"level"`
	}
)

// Level maps a day's minutes and whether it had any session to an
// intensity from 0 to 4.
func Level(minutes int, hasSession bool) int {
	if !hasSession && minutes <= 0 {
		return 0
	}

	level := 1

	for i, threshold := range heatmapThresholds {
		if minutes >= threshold {
			level = i + 2
		}
	}

	return level
}

// dailyTotals sums the credited minutes and counts the sessions of every
// calendar day in the log.
func (s *Store) dailyTotals() (minutes, counts map[string]int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	minutes = make(map[string]int)
	counts = make(map[string]int)

	for i := range s.data.Sessions {
		sess := &s.data.Sessions[i]
		key := timeutil.DateKey(sess.CompletedAt, s.loc)

		minutes[key] += sess.Minutes()
		counts[key]++
	}

	return minutes, counts
}

// days returns n consecutive calendar days ending on the day of now, oldest
// first.
func (s *Store) days(now time.Time, n int) []time.Time {
	out := make([]time.Time, n)

	for i := range n {
		out[i] = timeutil.AddDays(now, i-n+1, s.loc)
	}

	return out
}

// WeeklyStats returns the minutes of the last seven days ending today,
// oldest first.
func (s *Store) WeeklyStats(now time.Time) []DayBucket {
	minutes, _ := s.dailyTotals()

	days := s.days(now, daysInAWeek)
	buckets := make([]DayBucket, len(days))

	for i, d := range days {
		key := timeutil.DateKey(d, s.loc)

		buckets[i] = DayBucket{
			Day:     d.Format("Mon"),
			Date:    key,
			Minutes: minutes[key],
		}
	}

	return buckets
}

// SessionsForDate returns the sessions completed on date (YYYY-MM-DD) in
// log order.
func (s *Store) SessionsForDate(date string) []models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Session

	for i := range s.data.Sessions {
		sess := s.data.Sessions[i]

		if timeutil.DateKey(sess.CompletedAt, s.loc) == date {
			out = append(out, sess)
		}
	}

	return out
}

// Heatmap returns one cell per day for the last weeks*7 days, oldest first.
// A non-positive weeks uses DefaultHeatmapWeeks.
func (s *Store) Heatmap(now time.Time, weeks int) []HeatmapCell {
	if weeks <= 0 {
		weeks = DefaultHeatmapWeeks
	}

	minutes, counts := s.dailyTotals()

	days := s.days(now, weeks*daysInAWeek)
	cells := make([]HeatmapCell, len(days))

	for i, d := range days {
		key := timeutil.DateKey(d, s.loc)

		cells[i] = HeatmapCell{
			Date:    key,
			Minutes: minutes[key],
			Level:   Level(minutes[key], counts[key] > 0),
		}
	}

	return cells
}

// TodayMinutes returns the minutes logged on the day of now.
func (s *Store) TodayMinutes(now time.Time) int {
	minutes, _ := s.dailyTotals()

	return minutes[timeutil.DateKey(now, s.loc)]
}

// TagTotals returns the minutes logged per tag over the whole log.
func (s *Store) TagTotals() map[models.Tag]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[models.Tag]int)

	for i := range s.data.Sessions {
		sess := &s.data.Sessions[i]
		totals[sess.Tag] += sess.Minutes()
	}

	return totals
}
