// Package models defines the persisted and shared types of Tempus
package models

import (
	"slices"
	"time"
)

type (
	// Tag is the closed category attached to a session.
	Tag string

	// Mode identifies which timer produced a session.
	Mode string

	// Phase is one of the three Pomodoro phases.
	Phase string

	Theme       string
	AccentColor string
	SoundType   string
)

const (
	TagWork     Tag = "work"
	TagStudy    Tag = "study"
	TagCreative Tag = "creative"
	TagExercise Tag = "exercise"
	TagReading  Tag = "reading"
	TagOther    Tag = "other"
)

const (
	ModeSimple   Mode = "simple"
	ModePomodoro Mode = "pomodoro"
)

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "shortBreak"
	PhaseLongBreak  Phase = "longBreak"
)

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

const (
	SoundRain       SoundType = "rain"
	SoundLofi       SoundType = "lofi"
	SoundCafe       SoundType = "cafe"
	SoundWhiteNoise SoundType = "whiteNoise"
	SoundNone       SoundType = "none"
)

// Tags lists every valid tag in display order.
var Tags = []Tag{
	TagWork,
	TagStudy,
	TagCreative,
	TagExercise,
	TagReading,
	TagOther,
}

// Sounds lists every ambient sound option in display order.
var Sounds = []SoundType{
	SoundNone,
	SoundRain,
	SoundLofi,
	SoundCafe,
	SoundWhiteNoise,
}

var AccentColors = []AccentColor{
	"rose",
	"violet",
	"cyan",
	"amber",
	"emerald",
	"blue",
}

// streakMilestones are the streak lengths that deserve a celebration.
var streakMilestones = []int{7, 30, 100}

// Valid reports whether t belongs to the closed tag set.
func (t Tag) Valid() bool {
	return slices.Contains(Tags, t)
}

// Next returns the tag that follows t in display order.
func (t Tag) Next() Tag {
	i := slices.Index(Tags, t)

	return Tags[(i+1)%len(Tags)]
}

func (m Mode) Valid() bool {
	return m == ModeSimple || m == ModePomodoro
}

func (s SoundType) Valid() bool {
	return slices.Contains(Sounds, s)
}

// Next returns the sound that follows s in display order.
func (s SoundType) Next() SoundType {
	i := slices.Index(Sounds, s)

	return Sounds[(i+1)%len(Sounds)]
}

// IsBreak reports whether p is one of the break phases.
func (p Phase) IsBreak() bool {
	return p == PhaseShortBreak || p == PhaseLongBreak
}

// String returns a human readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWork:
		return "Work session"
	case PhaseShortBreak:
		return "Short break"
	case PhaseLongBreak:
		return "Long break"
	}

	return string(p)
}

// IsStreakMilestone reports whether a streak of n days is worth celebrating.
func IsStreakMilestone(n int) bool {
	return slices.Contains(streakMilestones, n)
}

// Session is a completed focus run. It is never modified after creation.
type Session struct {
	ID          string    `json:"id"`
	Duration    int       `json:"duration"` // seconds
	Tag         Tag       `json:"tag"`
	CompletedAt time.Time `json:"completedAt"`
	Mode        Mode      `json:"mode"`
}

// Minutes returns the whole minutes credited for the session.
func (s *Session) Minutes() int {
	return s.Duration / 60
}

// AnalyticsData is the persisted session log and its derived counters.
type AnalyticsData struct {
	Sessions        []Session `json:"sessions"`
	TotalMinutes    int       `json:"totalMinutes"`
	CurrentStreak   int       `json:"currentStreak"`
	LongestStreak   int       `json:"longestStreak"`
	LastSessionDate *string   `json:"lastSessionDate"`
}

// DefaultAnalytics returns the analytics of a user with no sessions.
func DefaultAnalytics() AnalyticsData {
	return AnalyticsData{
		Sessions:      []Session{},
		TotalMinutes:  0,
		CurrentStreak: 1,
		LongestStreak: 1,
	}
}

// Clone returns a deep copy of the analytics.
func (a *AnalyticsData) Clone() AnalyticsData {
	c := *a
	c.Sessions = slices.Clone(a.Sessions)

	if c.Sessions == nil {
		c.Sessions = []Session{}
	}

	if a.LastSessionDate != nil {
		d := *a.LastSessionDate
		c.LastSessionDate = &d
	}

	return c
}

type (
	// PomodoroSettings holds phase lengths in minutes.
	PomodoroSettings struct {
		WorkDuration            int `json:"workDuration"`
		ShortBreakDuration      int `json:"shortBreakDuration"`
		LongBreakDuration       int `json:"longBreakDuration"`
		SessionsBeforeLongBreak int `json:"sessionsBeforeLongBreak"`
	}

	TimerSettings struct {
		Mode            Mode             `json:"mode"`
		Pomodoro        PomodoroSettings `json:"pomodoro"`
		AutoStartBreaks bool             `json:"autoStartBreaks"`
		AutoStartWork   bool             `json:"autoStartWork"`
	}

	SoundSettings struct {
		Type           SoundType `json:"type"`
		Volume         float64   `json:"volume"` // 0-1
		FadeOnComplete bool      `json:"fadeOnComplete"`
	}

	NotificationSettings struct {
		Enabled         bool `json:"enabled"`
		HalfwayReminder bool `json:"halfwayReminder"`
		Sound           bool `json:"sound"`
	}

	// AppSettings is the user preference record.
	AppSettings struct {
		Theme         Theme                `json:"theme"`
		AccentColor   AccentColor          `json:"accentColor"`
		Timer         TimerSettings        `json:"timer"`
		Sound         SoundSettings        `json:"sound"`
		Notifications NotificationSettings `json:"notifications"`
	}
)

// DefaultPomodoroSettings returns the classic 25/5/15 x4 cycle.
func DefaultPomodoroSettings() PomodoroSettings {
	return PomodoroSettings{
		WorkDuration:            25,
		ShortBreakDuration:      5,
		LongBreakDuration:       15,
		SessionsBeforeLongBreak: 4,
	}
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:       ThemeDark,
		AccentColor: "rose",
		Timer: TimerSettings{
			Mode:     ModeSimple,
			Pomodoro: DefaultPomodoroSettings(),
		},
		Sound: SoundSettings{
			Type:           SoundNone,
			Volume:         0.5,
			FadeOnComplete: true,
		},
		Notifications: NotificationSettings{
			Sound: true,
		},
	}
}

// State is the single persisted record.
type State struct {
	Settings  AppSettings   `json:"settings"`
	Analytics AnalyticsData `json:"analytics"`
}

// CompletionEvent is published once for every completed run.
type CompletionEvent struct {
	CompletedAt     time.Time `json:"completedAt"`
	Tag             Tag       `json:"tag"`
	Mode            Mode      `json:"mode"`
	Phase           Phase     `json:"phase,omitempty"`
	NextPhase       Phase     `json:"nextPhase,omitempty"`
	DurationSeconds int       `json:"durationSeconds"`
	StreakAfter     int       `json:"streakAfter"`
	Milestone       bool      `json:"milestone"`
}
