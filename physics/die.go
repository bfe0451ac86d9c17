package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// DieState is the mutable rigid-body state of one die
// Rolling is true from roll start until settle; idle animation never sets it
type DieState struct {
	Position        mgl64.Vec3
	LinearVelocity  mgl64.Vec3
	AngularVelocity mgl64.Vec3 // World-space spin, radians per step
	Orientation     mgl64.Quat
	BounceCount     int
	Steps           int // Steps since the current roll started
	Rolling         bool
}

// NewDieState creates a die at rest at the idle height with identity orientation
func NewDieState(cfg Config) *DieState {
	return &DieState{
		Position:    mgl64.Vec3{0, cfg.IdleBaseY, 0},
		Orientation: mgl64.QuatIdent(),
	}
}

// TopFace resolves the face currently pointing up
func (d *DieState) TopFace() int {
	return TopFace(d.Orientation)
}

// settle zeroes motion and ends the roll
func (d *DieState) settle() {
	d.LinearVelocity = mgl64.Vec3{}
	d.AngularVelocity = mgl64.Vec3{}
	d.Rolling = false
}
