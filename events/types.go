package events

import (
	"time"
)

// EventType represents the type of simulation event
type EventType int

const (
	// EventRollRequest signals user intent to roll
	// Trigger: input handler (space, enter, click) on any goroutine
	// Consumer: Simulator at the start of the next step | Payload: nil
	// Ignored while a roll is in progress
	EventRollRequest EventType = iota

	// EventRollStarted signals a new throw was launched
	// Trigger: Simulator after accepting a request
	// Consumer: audio, HUD | Payload: *RollStartedPayload
	EventRollStarted

	// EventDieBounced signals a table contact during a roll
	// Trigger: integrator contact | Payload: *DieBouncedPayload
	EventDieBounced

	// EventRollSettled signals the end of a roll with its outcome
	// Trigger: integrator settle, emitted exactly once per roll
	// Consumer: history, audio, persistence | Payload: *RollSettledPayload
	EventRollSettled

	// EventHistoryClear requests the result history be emptied
	// Trigger: input handler ('c') | Payload: nil
	EventHistoryClear

	eventTypeCount
)

// GameEvent is a single queued or dispatched event
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64 // Simulation step at emission
	Timestamp time.Time
}
