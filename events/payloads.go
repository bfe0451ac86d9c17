package events

import "github.com/go-gl/mathgl/mgl64"

// RollStartedPayload carries the launch state of a new throw
type RollStartedPayload struct {
	Position        mgl64.Vec3
	LinearVelocity  mgl64.Vec3
	AngularVelocity mgl64.Vec3
}

// DieBouncedPayload describes one table contact
type DieBouncedPayload struct {
	Bounce      int     // 1-based bounce index within the roll
	ImpactSpeed float64 // Vertical speed before restitution
}

// RollSettledPayload is the outcome of a finished roll
type RollSettledPayload struct {
	Value   int // Top face, 1..6
	Bounces int
	Steps   int
}
