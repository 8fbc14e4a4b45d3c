package analytics

import (
	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/timeutil"
)

// applyStreak updates the streak counters of data for a completion on today
// (YYYY-MM-DD).
//
// A completion dated before the last session (clock skew or a backdated
// entry) counts as a same-day repeat and leaves lastSessionDate alone, so a
// later completion is still measured against the most recent day.
func applyStreak(data *models.AnalyticsData, today string) {
	if data.LastSessionDate == nil {
		data.CurrentStreak = 1
	} else {
		diff, err := timeutil.DaysBetween(*data.LastSessionDate, today)

		switch {
		case err != nil:
			// an unreadable date cannot continue a streak
			data.CurrentStreak = 1
		case diff < 0:
			data.LongestStreak = max(data.LongestStreak, data.CurrentStreak)
			return
		case diff == 0:
		case diff == 1:
			data.CurrentStreak++
		default:
			data.CurrentStreak = 1
		}
	}

	data.CurrentStreak = max(data.CurrentStreak, 1)
	data.LongestStreak = max(data.LongestStreak, data.CurrentStreak)
	data.LastSessionDate = &today
}

// Rebuild derives the counters of data from its session log. It is used to
// repair records whose counters drifted from the log.
func Rebuild(data models.AnalyticsData, fold func(models.Session) string) models.AnalyticsData {
	out := models.DefaultAnalytics()
	out.Sessions = data.Sessions

	if out.Sessions == nil {
		out.Sessions = []models.Session{}
	}

	for i := range out.Sessions {
		sess := out.Sessions[i]

		out.TotalMinutes += sess.Minutes()

		applyStreak(&out, fold(sess))
	}

	out.LongestStreak = max(out.LongestStreak, data.LongestStreak)

	return out
}
