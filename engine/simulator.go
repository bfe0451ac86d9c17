package engine

import (
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/dice-roller/events"
	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/physics"
	"github.com/lixenwraith/dice-roller/status"
	"github.com/lixenwraith/dice-roller/vmath"
)

// Phase names published to the status registry
const (
	PhaseIdle    = "idle"
	PhaseRolling = "rolling"
	PhaseSettled = "settled"
)

// Snapshot is a copy of the simulation state for renderers
type Snapshot struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Rolling     bool
	BounceCount int
	Result      int // Valid only when HasResult
	HasResult   bool
	SceneTime   float64 // Drives idle float and orbiting accent lights
	Step        int64   // Total steps since construction
}

// Simulator owns the die and advances it on a fixed step
// RequestRoll and ClearHistory are safe from any goroutine; they enqueue and the
// request is consumed at the start of the next step
// Handlers run synchronously inside Tick with the die as context and must not call
// back into Tick, Snapshot or Result
type Simulator struct {
	mu sync.Mutex

	cfg    physics.Config
	die    *physics.DieState
	roller *physics.Roller
	queue  *events.EventQueue
	router *events.Router[*physics.DieState]
	step   FixedStep

	result    int
	hasResult bool
	sceneTime float64
	frame     int64

	rolling atomic.Bool // Mirrors die.Rolling for lock-free reads

	statusReg      *status.Registry
	statSteps      *atomic.Int64
	statRolls      *atomic.Int64
	statBounces    *atomic.Int64
	statIgnored    *atomic.Int64
	statDropped    *atomic.Int64
	statLastResult *atomic.Int64
	statMaxSteps   *status.AtomicFloat
	statLeftover   *status.AtomicFloat
	statPhase      *status.AtomicString
}

// NewSimulator creates an idle simulator
// A nil rng is seeded from the global source; a nil queue or registry is created
func NewSimulator(cfg physics.Config, rng *rand.Rand, queue *events.EventQueue, reg *status.Registry) *Simulator {
	if queue == nil {
		queue = events.NewEventQueue()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	s := &Simulator{
		cfg:            cfg,
		die:            physics.NewDieState(cfg),
		roller:         physics.NewRoller(cfg, rng),
		queue:          queue,
		router:         events.NewRouter[*physics.DieState](),
		step:           NewFixedStep(parameter.StepInterval, parameter.MaxStepsPerTick),
		statusReg:      reg,
		statSteps:      reg.Ints.Get("sim.steps"),
		statRolls:      reg.Ints.Get("sim.rolls"),
		statBounces:    reg.Ints.Get("sim.bounces"),
		statIgnored:    reg.Ints.Get("sim.ignored_requests"),
		statDropped:    reg.Ints.Get("sim.dropped_steps"),
		statLastResult: reg.Ints.Get("sim.last_result"),
		statMaxSteps:   reg.Floats.Get("sim.max_roll_steps"),
		statLeftover:   reg.Floats.Get("sim.step_leftover_ms"),
		statPhase:      reg.Strings.Get("sim.phase"),
	}
	s.statPhase.Store(PhaseIdle)
	return s
}

// Register adds an event handler, must be called before the first Tick
func (s *Simulator) Register(h events.Handler[*physics.DieState]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.router.Register(h)
}

// RequestRoll asks for a new roll; ignored at consumption time if a roll is in progress
func (s *Simulator) RequestRoll() {
	s.queue.Push(events.GameEvent{Type: events.EventRollRequest, Timestamp: time.Now()})
}

// ClearHistory asks history handlers to empty their logs
func (s *Simulator) ClearHistory() {
	s.queue.Push(events.GameEvent{Type: events.EventHistoryClear, Timestamp: time.Now()})
}

// Tick converts elapsed time into fixed steps and runs them, returns the steps run
func (s *Simulator) Tick(elapsed time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.step.Dropped()
	n := s.step.Advance(elapsed)
	if dropped := s.step.Dropped() - before; dropped > 0 {
		s.statDropped.Add(int64(dropped))
	}
	s.statLeftover.Set(float64(s.step.Leftover()) / float64(time.Millisecond))

	for i := 0; i < n; i++ {
		s.stepLocked()
	}
	return n
}

// Step runs exactly one fixed step regardless of elapsed time
func (s *Simulator) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stepLocked()
}

// stepLocked consumes pending requests, then advances the die or the idle float
func (s *Simulator) stepLocked() {
	s.frame++
	s.statSteps.Add(1)

	for _, ev := range s.queue.Consume() {
		if ev.Type == events.EventRollRequest {
			s.startRollLocked()
		}
		s.router.Emit(s.die, ev)
	}

	if s.die.Rolling {
		res := physics.Step(s.die, s.cfg)
		if res.Contact {
			s.statBounces.Add(1)
			s.emit(events.EventDieBounced, &events.DieBouncedPayload{
				Bounce:      s.die.BounceCount,
				ImpactSpeed: res.ImpactSpeed,
			})
		}
		if res.Settled {
			s.settleLocked(res.Face)
		}
	} else if !s.hasResult {
		s.idleLocked()
	}

	s.sceneTime += s.cfg.IdleTimeStep
}

func (s *Simulator) startRollLocked() {
	if !s.roller.Roll(s.die) {
		s.statIgnored.Add(1)
		return
	}
	s.rolling.Store(true)
	s.hasResult = false
	s.result = 0
	s.statRolls.Add(1)
	s.statPhase.Store(PhaseRolling)
	s.emit(events.EventRollStarted, &events.RollStartedPayload{
		Position:        s.die.Position,
		LinearVelocity:  s.die.LinearVelocity,
		AngularVelocity: s.die.AngularVelocity,
	})
}

func (s *Simulator) settleLocked(face int) {
	s.rolling.Store(false)
	s.result = face
	s.hasResult = true
	s.statLastResult.Store(int64(face))
	s.statMaxSteps.StoreMax(float64(s.die.Steps))
	s.statPhase.Store(PhaseSettled)
	s.emit(events.EventRollSettled, &events.RollSettledPayload{
		Value:   face,
		Bounces: s.die.BounceCount,
		Steps:   s.die.Steps,
	})
}

// idleLocked floats the die before the first result; never marks it rolling
func (s *Simulator) idleLocked() {
	s.die.Position[1] = s.cfg.IdleBaseY + math.Sin(s.sceneTime)*s.cfg.IdleAmplitude
	s.die.Orientation = vmath.Yaw(s.die.Orientation, s.cfg.IdleYawStep)
}

// emit stamps and routes an outbound event; types nobody listens for are skipped
func (s *Simulator) emit(t events.EventType, payload any) {
	if !s.router.HasHandlers(t) {
		return
	}
	s.router.Emit(s.die, events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     s.frame,
		Timestamp: time.Now(),
	})
}

// Snapshot copies the state renderers need
func (s *Simulator) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Position:    s.die.Position,
		Orientation: s.die.Orientation,
		Rolling:     s.die.Rolling,
		BounceCount: s.die.BounceCount,
		Result:      s.result,
		HasResult:   s.hasResult,
		SceneTime:   s.sceneTime,
		Step:        s.frame,
	}
}

// Result returns the last settled face, false before the first roll settles or while rolling
func (s *Simulator) Result() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.hasResult
}

// IsRolling reports whether a roll is in progress, lock-free
func (s *Simulator) IsRolling() bool {
	return s.rolling.Load()
}

// Config returns the physics configuration the simulator runs with
func (s *Simulator) Config() physics.Config {
	return s.cfg
}

// Status returns the registry the simulator publishes metrics to
func (s *Simulator) Status() *status.Registry {
	return s.statusReg
}
