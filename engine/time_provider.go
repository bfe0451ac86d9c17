package engine

import "time"

// TimeProvider is the source of wall-clock readings for clocks and schedulers
type TimeProvider interface {
	Now() time.Time
}

// Clock is the time source driving simulation ticks
// A paused clock stops simulation steps; pending roll requests wait in the queue
type Clock interface {
	Now() time.Time
	IsPaused() bool
}

// PauseTracker is implemented by clocks that account for time spent paused
type PauseTracker interface {
	TotalPauseDuration() time.Duration
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
// Used for real-time operations (UI, spinner animation) that should not pause
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
