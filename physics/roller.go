package physics

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/dice-roller/vmath"
)

// Throw is the launch state assigned at roll start
type Throw struct {
	Position        mgl64.Vec3
	LinearVelocity  mgl64.Vec3
	AngularVelocity mgl64.Vec3
}

// Roller generates randomized throws within the configured ranges
type Roller struct {
	cfg Config
	rng *rand.Rand
}

// NewRoller creates a roller drawing from rng; a nil rng is seeded from time
func NewRoller(cfg Config, rng *rand.Rand) *Roller {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Roller{cfg: cfg, rng: rng}
}

// NextThrow draws launch parameters: position in the spawn box, horizontal-only
// linear velocity, and per-axis spin
func (r *Roller) NextThrow() Throw {
	return Throw{
		Position: mgl64.Vec3{
			vmath.RandRange(r.rng, r.cfg.SpawnX.Min, r.cfg.SpawnX.Max),
			vmath.RandRange(r.rng, r.cfg.SpawnY.Min, r.cfg.SpawnY.Max),
			vmath.RandRange(r.rng, r.cfg.SpawnZ.Min, r.cfg.SpawnZ.Max),
		},
		LinearVelocity: mgl64.Vec3{
			vmath.RandSymmetric(r.rng, r.cfg.ThrowSpeed),
			0,
			vmath.RandSymmetric(r.rng, r.cfg.ThrowSpeed),
		},
		AngularVelocity: vmath.RandVec3Symmetric(r.rng, r.cfg.SpinSpeed),
	}
}

// Roll launches d with a random throw
// Returns false without touching d when a roll is already in progress
func (r *Roller) Roll(d *DieState) bool {
	if d.Rolling {
		return false
	}
	return Launch(d, r.NextThrow())
}

// Launch starts a roll from explicit parameters; orientation carries over
// Returns false without touching d when a roll is already in progress
func Launch(d *DieState, t Throw) bool {
	if d.Rolling {
		return false
	}
	d.Position = t.Position
	d.LinearVelocity = t.LinearVelocity
	d.AngularVelocity = t.AngularVelocity
	d.BounceCount = 0
	d.Steps = 0
	d.Rolling = true
	return true
}
