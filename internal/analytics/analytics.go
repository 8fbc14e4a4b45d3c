// Package analytics keeps the log of completed sessions together with the
// running streak and minute totals derived from it
package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/timeutil"
)

// Persister reads and writes the persisted state record.
type Persister interface {
	Load(ctx context.Context) (models.State, error)
	Save(ctx context.Context, state models.State) error
}

type (
	// Store is the single owner of the analytics data. Only RecordCompletion
	// mutates it.
	Store struct {
		persister Persister
		logger    *slog.Logger
		loc       *time.Location
		newID     func() string
		settings  models.AppSettings
		data      models.AnalyticsData
		mu        sync.RWMutex
	}

	// Option configures a Store.
	Option func(*Store)
)

// WithLocation sets the time zone that defines calendar days.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		s.loc = loc
	}
}

// WithIDGenerator replaces the session id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithSettings sets the settings written alongside the analytics.
func WithSettings(settings models.AppSettings) Option {
	return func(s *Store) {
		s.settings = settings
	}
}

// New returns a store seeded with data that persists through p.
func New(p Persister, data models.AnalyticsData, opts ...Option) *Store {
	s := &Store{
		persister: p,
		data:      data.Clone(),
		settings:  models.DefaultSettings(),
		loc:       time.Local,
		newID:     uuid.NewString,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Open loads the persisted state through p and returns a store seeded with
// it. A failed load yields a fresh store together with the error so the
// caller can decide whether to continue without history.
func Open(
	ctx context.Context,
	p Persister,
	opts ...Option,
) (*Store, models.State, error) {
	state, err := p.Load(ctx)
	if err != nil {
		return New(p, models.DefaultAnalytics(), opts...), models.State{
			Settings:  models.DefaultSettings(),
			Analytics: models.DefaultAnalytics(),
		}, err
	}

	return New(p, state.Analytics, opts...), state, nil
}

// SetSettings replaces the settings snapshot persisted with the analytics.
func (s *Store) SetSettings(settings models.AppSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
}

// Location returns the time zone that defines calendar days.
func (s *Store) Location() *time.Location {
	return s.loc
}

// RecordCompletion appends a completed session and updates the totals and
// streak counters. Non-positive durations are ignored. The updated record is
// persisted before returning; persistence failures are logged and the in
// memory state stays authoritative.
func (s *Store) RecordCompletion(
	ctx context.Context,
	durationSeconds int,
	tag models.Tag,
	mode models.Mode,
	now time.Time,
) (models.Session, bool) {
	if durationSeconds <= 0 {
		s.logger.WarnContext(
			ctx,
			"ignoring non-positive session duration",
			slog.Int("duration", durationSeconds),
		)

		return models.Session{}, false
	}

	if !tag.Valid() {
		tag = models.TagOther
	}

	sess := models.Session{
		ID:          s.newID(),
		Duration:    durationSeconds,
		Tag:         tag,
		CompletedAt: now.In(s.loc),
		Mode:        mode,
	}

	s.mu.Lock()

	next := s.data.Clone()
	next.Sessions = append(next.Sessions, sess)
	next.TotalMinutes += sess.Minutes()

	applyStreak(&next, timeutil.DateKey(now, s.loc))

	s.data = next

	state := models.State{
		Settings:  s.settings,
		Analytics: next.Clone(),
	}

	s.mu.Unlock()

	if err := s.persister.Save(ctx, state); err != nil {
		s.logger.ErrorContext(
			ctx,
			"unable to persist analytics",
			slog.Any("error", err),
			slog.String("session", sess.ID),
		)
	}

	s.logger.InfoContext(
		ctx,
		"session recorded",
		slog.String("id", sess.ID),
		slog.Int("duration", sess.Duration),
		slog.String("tag", string(sess.Tag)),
		slog.String("mode", string(sess.Mode)),
		slog.Int("streak", next.CurrentStreak),
	)

	return sess, true
}

// Flush persists the current state, e.g. after a settings change.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.RLock()
	state := models.State{
		Settings:  s.settings,
		Analytics: s.data.Clone(),
	}
	s.mu.RUnlock()

	return s.persister.Save(ctx, state)
}

// Data returns a copy of the analytics.
func (s *Store) Data() models.AnalyticsData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.Clone()
}

func (s *Store) CurrentStreak() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.CurrentStreak
}

func (s *Store) LongestStreak() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.LongestStreak
}

func (s *Store) TotalMinutes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.TotalMinutes
}

// Snapshot returns a deep copy of the whole persisted record.
func (s *Store) Snapshot() models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.State{
		Settings:  s.settings,
		Analytics: s.data.Clone(),
	}
}
