package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// MockTimeProvider is a controllable clock for deterministic scheduler and simulator tests
// Satisfies both TimeProvider and Clock
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	paused      atomic.Bool
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// SetPaused toggles the pause flag reported through Clock
func (m *MockTimeProvider) SetPaused(paused bool) {
	m.paused.Store(paused)
}

// IsPaused implements Clock
func (m *MockTimeProvider) IsPaused() bool {
	return m.paused.Load()
}
