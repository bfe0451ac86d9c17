package parameter

import "time"

// Simulation timing
const (
	// StepRate is the fixed physics step frequency; per-step constants assume this rate
	StepRate = 60

	// StepInterval is the duration of one physics step
	StepInterval = time.Second / StepRate

	// MaxStepsPerTick bounds catch-up work after a stall, backlog beyond it is dropped
	MaxStepsPerTick = 8

	// FrameUpdateInterval is the render/tick interval of the real-time scheduler (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// LivenessStepLimit is the step budget within which every roll must settle
	LivenessStepLimit = 2000
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 64

	// EventBufferMask is the bitmask for fast modulo operations (64 - 1)
	EventBufferMask = EventQueueSize - 1
)
