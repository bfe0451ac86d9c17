package engine

import (
	"testing"
	"time"
)

func TestFixedStepAdvance(t *testing.T) {
	step := 10 * time.Millisecond
	tests := []struct {
		name     string
		max      int
		elapsed  []time.Duration
		want     []int
		leftover time.Duration
	}{
		{"exact", 0, []time.Duration{10 * time.Millisecond}, []int{1}, 0},
		{"carry", 0, []time.Duration{6 * time.Millisecond, 6 * time.Millisecond}, []int{0, 1}, 2 * time.Millisecond},
		{"burst", 0, []time.Duration{35 * time.Millisecond}, []int{3}, 5 * time.Millisecond},
		{"capped", 2, []time.Duration{55 * time.Millisecond}, []int{2}, 5 * time.Millisecond},
		{"negative", 0, []time.Duration{-time.Second}, []int{0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFixedStep(step, tt.max)
			for i, e := range tt.elapsed {
				if got := f.Advance(e); got != tt.want[i] {
					t.Errorf("advance %d = %d, want %d", i, got, tt.want[i])
				}
			}
			if f.Leftover() != tt.leftover {
				t.Errorf("leftover = %v, want %v", f.Leftover(), tt.leftover)
			}
		})
	}
}

func TestFixedStepDropped(t *testing.T) {
	f := NewFixedStep(time.Millisecond, 4)
	f.Advance(10*time.Millisecond + 500*time.Microsecond)
	if f.Dropped() != 6 {
		t.Errorf("dropped = %d, want 6", f.Dropped())
	}
	if f.Leftover() != 500*time.Microsecond {
		t.Errorf("leftover after cap = %v", f.Leftover())
	}
	if n := (&FixedStep{}).Advance(time.Second); n != 0 {
		t.Errorf("zero step advanced %d", n)
	}
}
