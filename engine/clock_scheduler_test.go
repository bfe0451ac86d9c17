package engine

import (
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/physics"
)

func newSchedulerFixture(clock Clock) (*ClockScheduler, *Simulator) {
	sim := NewSimulator(physics.DefaultConfig(), rand.New(rand.NewSource(7)), nil, nil)
	return NewClockScheduler(sim, clock, parameter.FrameUpdateInterval), sim
}

func TestClockSchedulerProcessTickMock(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	cs, sim := newSchedulerFixture(mock)

	var hookSteps []int
	cs.SetTickHook(func(steps int) { hookSteps = append(hookSteps, steps) })

	mock.Advance(2 * parameter.StepInterval)
	if n := cs.processTick(); n != 2 {
		t.Errorf("steps = %d, want 2", n)
	}
	if len(hookSteps) != 1 || hookSteps[0] != 2 {
		t.Errorf("hook saw %v", hookSteps)
	}
	if sim.Snapshot().Step != 2 {
		t.Errorf("simulator step = %d", sim.Snapshot().Step)
	}
	if got := sim.Status().Ints.Get("engine.ticks").Load(); got != 1 {
		t.Errorf("tick count = %d", got)
	}
}

func TestClockSchedulerPauseDiscardsElapsed(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	cs, sim := newSchedulerFixture(mock)

	sim.RequestRoll()
	mock.SetPaused(true)
	mock.Advance(time.Second)
	if n := cs.processTick(); n != 0 {
		t.Errorf("paused tick ran %d steps", n)
	}
	if sim.IsRolling() {
		t.Error("request consumed while paused")
	}
	if !sim.Status().Bools.Get("engine.paused").Load() {
		t.Error("paused flag not published")
	}

	mock.SetPaused(false)
	mock.Advance(parameter.StepInterval)
	if n := cs.processTick(); n != 1 {
		t.Errorf("resumed tick ran %d steps, want 1", n)
	}
	if !sim.IsRolling() {
		t.Error("pending request not consumed after resume")
	}
}

func TestClockSchedulerWithPausableClock(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewPausableClock(mock)
	cs, sim := newSchedulerFixture(clock)

	clock.Pause()
	mock.Advance(10 * parameter.StepInterval)
	cs.processTick()
	clock.Resume()
	mock.Advance(parameter.StepInterval)
	cs.processTick()

	if got := sim.Snapshot().Step; got != 1 {
		t.Errorf("steps after pause/resume = %d, want 1", got)
	}
	wantMs := float64(10*parameter.StepInterval) / float64(time.Millisecond)
	if got := sim.Status().Floats.Get("engine.paused_ms").Get(); got != wantMs {
		t.Errorf("paused_ms metric = %v, want %v", got, wantMs)
	}
}

func TestClockSchedulerStartStop(t *testing.T) {
	cs, _ := newSchedulerFixture(NewPausableClock(nil))
	cs.tickInterval = time.Millisecond

	var ticks atomic.Int32
	cs.SetTickHook(func(int) { ticks.Add(1) })

	cs.Start()
	cs.Start()
	if !cs.running.Load() {
		t.Fatal("scheduler not running after Start")
	}

	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < 5 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if ticks.Load() < 5 {
		t.Fatalf("only %d ticks in 2s", ticks.Load())
	}

	cs.Stop()
	cs.Stop()
	if cs.running.Load() {
		t.Error("scheduler running after Stop")
	}

	stopped := cs.tickCount.Load()
	time.Sleep(10 * time.Millisecond)
	if cs.tickCount.Load() != stopped {
		t.Error("ticks continued after Stop")
	}

	cs.Start()
	if cs.running.Load() {
		t.Error("Start after Stop restarted the loop")
	}
}
