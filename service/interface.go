package service

import (
	"github.com/lixenwraith/dice-roller/events"
	"github.com/lixenwraith/dice-roller/physics"
)

// Service defines the lifecycle interface for infrastructure subsystems
// Services own long-lived resources: terminal screen, audio speaker, history database
//
// Lifecycle:
//  1. Construction (via factory)
//  2. Init(args...) - acquire resources; may fail, triggering rollback
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	// Return nil or empty slice if no dependencies
	Dependencies() []string

	// Init acquires resources using optional args
	// Args are service-specific; most services take their config at construction
	Init(args ...any) error

	// Start begins service operation (launches goroutines if any)
	// Called after all services have initialized
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times, including after a failed Init
	Stop() error
}

// Handler is the simulation event handler signature shared by subscribers
type Handler = events.Handler[*physics.DieState]

// Subscriber is implemented by services that consume simulation events
// Optional interface - services not implementing it are skipped during subscription
type Subscriber interface {
	Subscribe(register func(Handler))
}
