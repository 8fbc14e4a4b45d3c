package store

import (
	"context"
	"sync"

	"github.com/ayoisaiah/tempus/internal/models"
)

// Memory keeps the state record in memory. It backs degraded runs where the
// database cannot be opened, and tests.
type Memory struct {
	state models.State
	saves int
	mu    sync.Mutex
}

// NewMemory returns a persister seeded with the default state.
func NewMemory() *Memory {
	return &Memory{
		state: models.State{
			Settings:  models.DefaultSettings(),
			Analytics: models.DefaultAnalytics(),
		},
	}
}

func (m *Memory) Load(ctx context.Context) (models.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.state
	state.Analytics = m.state.Analytics.Clone()

	return state, ctx.Err()
}

func (m *Memory) Save(ctx context.Context, state models.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = state
	m.state.Analytics = state.Analytics.Clone()
	m.saves++

	return nil
}

// Saves returns how many times the record was written.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saves
}
