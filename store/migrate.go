package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/tempus/internal/analytics"
	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/timeutil"
)

// repairSessions fills in the fields that older or hand-edited records may
// lack. Sessions with a non-positive duration cannot have been produced by a
// completed run and are dropped.
func repairSessions(sessions []models.Session) ([]models.Session, bool) {
	var changed bool

	out := make([]models.Session, 0, len(sessions))

	for i := range sessions {
		s := sessions[i]

		if s.Duration <= 0 {
			changed = true
			continue
		}

		if s.ID == "" {
			s.ID = uuid.NewString()
			changed = true
		}

		if !s.Tag.Valid() {
			s.Tag = models.TagOther
			changed = true
		}

		if !s.Mode.Valid() {
			s.Mode = models.ModeSimple
			changed = true
		}

		out = append(out, s)
	}

	return out, changed || sessions == nil
}

// repairCounters re-derives the counters of data from its log when they
// cannot be right. The current streak is only recomputed when the stored
// values are impossible since it depends on dates the log may not cover.
func repairCounters(
	data models.AnalyticsData,
	loc *time.Location,
) (models.AnalyticsData, bool) {
	var minutes int
	for i := range data.Sessions {
		minutes += data.Sessions[i].Minutes()
	}

	invalid := data.CurrentStreak < 1 ||
		data.LongestStreak < data.CurrentStreak ||
		(data.LastSessionDate == nil && len(data.Sessions) > 0)

	if minutes == data.TotalMinutes && !invalid {
		return data, false
	}

	if !invalid {
		data.TotalMinutes = minutes
		return data, true
	}

	rebuilt := analytics.Rebuild(data, func(s models.Session) string {
		return timeutil.DateKey(s.CompletedAt, loc)
	})

	return rebuilt, true
}

// repair returns a consistent copy of state and whether anything changed.
func repair(state models.State, loc *time.Location) (models.State, bool) {
	sessions, sessionsChanged := repairSessions(state.Analytics.Sessions)

	state.Analytics.Sessions = sessions

	data, countersChanged := repairCounters(state.Analytics, loc)

	state.Analytics = data

	return state, sessionsChanged || countersChanged
}
