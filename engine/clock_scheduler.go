package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/dice-roller/core"
	"github.com/lixenwraith/dice-roller/status"
)

// ClockScheduler drives a Simulator from a Clock on a fixed interval
// Elapsed clock time between ticks is handed to the simulator, which converts it into
// fixed physics steps; paused clocks tick the hook only so frontends keep redrawing
type ClockScheduler struct {
	sim   *Simulator
	clock Clock

	tickInterval     time.Duration
	lastTickTime     time.Time // Clock time of the last processed tick
	nextTickDeadline time.Time // Next tick deadline for drift correction

	tickCount atomic.Uint64
	mu        sync.Mutex

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	onTick func(steps int)

	statTicks   *atomic.Int64
	statPaused  *atomic.Bool
	statPauseMs *status.AtomicFloat
}

// NewClockScheduler creates a stopped scheduler for sim
func NewClockScheduler(sim *Simulator, clock Clock, tickInterval time.Duration) *ClockScheduler {
	reg := sim.Status()
	return &ClockScheduler{
		sim:          sim,
		clock:        clock,
		tickInterval: tickInterval,
		lastTickTime: clock.Now(),
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get("engine.ticks"),
		statPaused:   reg.Bools.Get("engine.paused"),
		statPauseMs:  reg.Floats.Get("engine.paused_ms"),
	}
}

// SetTickHook installs a callback run on the scheduler goroutine after every tick,
// must be called before Start()
func (cs *ClockScheduler) SetTickHook(fn func(steps int)) {
	cs.onTick = fn
}

// Start begins the scheduler loop, no-op when already running or stopped
func (cs *ClockScheduler) Start() {
	select {
	case <-cs.stopChan:
		return
	default:
	}
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick, idempotent
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.lastTickTime = cs.clock.Now()
	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		cs.processTick()

		// Deadlines run on real time so a frozen clock still yields hook ticks
		now := time.Now()
		cs.mu.Lock()
		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
		if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
			cs.nextTickDeadline = now.Add(cs.tickInterval)
		}
		sleep := cs.nextTickDeadline.Sub(now)
		cs.mu.Unlock()

		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// processTick executes one clock cycle and returns the physics steps run
func (cs *ClockScheduler) processTick() int {
	now := cs.clock.Now()
	paused := cs.clock.IsPaused()

	cs.mu.Lock()
	elapsed := now.Sub(cs.lastTickTime)
	cs.lastTickTime = now
	cs.mu.Unlock()

	steps := 0
	if !paused {
		steps = cs.sim.Tick(elapsed)
	}

	cs.statPaused.Store(paused)
	if pt, ok := cs.clock.(PauseTracker); ok {
		cs.statPauseMs.Set(float64(pt.TotalPauseDuration()) / float64(time.Millisecond))
	}
	cs.statTicks.Store(int64(cs.tickCount.Add(1)))

	if cs.onTick != nil {
		cs.onTick(steps)
	}
	return steps
}
