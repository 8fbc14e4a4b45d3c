// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// DateLayout is the layout of calendar date keys (YYYY-MM-DD).
const DateLayout = "2006-01-02"

const (
	minutesInAnHour  = 60
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = val / minutesInAnHour
	mins = val % minutesInAnHour

	return
}

// FormatClock renders a second count as HH:MM:SS, or MM:SS when it is
// shorter than an hour.
func FormatClock(total int) string {
	total = max(total, 0)

	h := total / secondsInAnHour
	m := (total % secondsInAnHour) / secondsInAMinute
	s := total % secondsInAMinute

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatMinutes renders a minute count as "1h 5m" or "25m".
func FormatMinutes(val int) string {
	h, m := MinsToHoursAndMins(val)
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// DateKey returns the calendar date of t in loc as YYYY-MM-DD.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// AddDays moves t by n calendar days in loc. The wall clock is kept so a
// DST change never moves the result onto a different date.
func AddDays(t time.Time, n int, loc *time.Location) time.Time {
	t = t.In(loc)

	return time.Date(t.Year(), t.Month(), t.Day()+n, 12, 0, 0, 0, loc)
}

// DaysBetween returns the number of whole calendar days from a to b, both
// YYYY-MM-DD. The difference is computed in UTC so it is immune to DST.
func DaysBetween(a, b string) (int, error) {
	from, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0, err
	}

	to, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0, err
	}

	return int(to.Sub(from).Hours() / 24), nil
}

// FromStr parses an absolute or relative date such as "yesterday" or
// "3 days ago" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, now.Location()); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}
