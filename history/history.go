// Package history keeps the newest-first log of settled roll results.
package history

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lixenwraith/dice-roller/events"
	"github.com/lixenwraith/dice-roller/physics"
)

// ErrInvalidCapacity is returned by New for a non-positive capacity.
var ErrInvalidCapacity = errors.New("history capacity must be positive")

// Log is a bounded newest-first list of face values
// Safe for concurrent use; handlers write on the simulation goroutine while renderers read
type Log struct {
	mu       sync.RWMutex
	capacity int
	values   []int // values[0] is the newest
}

// New creates an empty log holding at most capacity results
func New(capacity int) (*Log, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Log{
		capacity: capacity,
		values:   make([]int, 0, capacity),
	}, nil
}

// Add records a result as the newest entry, evicting the oldest beyond capacity
// Values outside 1..6 are rejected
func (l *Log) Add(value int) bool {
	if value < 1 || value > 6 {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.values) < l.capacity {
		l.values = append(l.values, 0)
	}
	copy(l.values[1:], l.values[:len(l.values)-1])
	l.values[0] = value
	return true
}

// Seed replaces the contents with newest-first values, keeping at most capacity valid entries
func (l *Log) Seed(newestFirst []int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.values = l.values[:0]
	for _, v := range newestFirst {
		if len(l.values) == l.capacity {
			break
		}
		if v >= 1 && v <= 6 {
			l.values = append(l.values, v)
		}
	}
}

// Values returns a newest-first copy
func (l *Log) Values() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]int, len(l.values))
	copy(out, l.values)
	return out
}

// Average returns the mean of the logged results, false when empty
func (l *Log) Average() (float64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.values) == 0 {
		return 0, false
	}
	sum := 0
	for _, v := range l.values {
		sum += v
	}
	return float64(sum) / float64(len(l.values)), true
}

// AverageText formats the average to two decimals, "-" when empty
func (l *Log) AverageText() string {
	avg, ok := l.Average()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.2f", avg)
}

// Counts returns per-face tallies; Counts()[v-1] is the number of v results
func (l *Log) Counts() [6]int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var counts [6]int
	for _, v := range l.values {
		counts[v-1]++
	}
	return counts
}

// Len returns the number of logged results
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.values)
}

// Capacity returns the maximum number of results kept
func (l *Log) Capacity() int {
	return l.capacity
}

// Clear empties the log
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values = l.values[:0]
}

// HandleEvent implements events.Handler
func (l *Log) HandleEvent(_ *physics.DieState, ev events.GameEvent) {
	switch ev.Type {
	case events.EventRollSettled:
		if p, ok := ev.Payload.(*events.RollSettledPayload); ok {
			l.Add(p.Value)
		}
	case events.EventHistoryClear:
		l.Clear()
	}
}

// EventTypes implements events.Handler
func (l *Log) EventTypes() []events.EventType {
	return []events.EventType{events.EventRollSettled, events.EventHistoryClear}
}
