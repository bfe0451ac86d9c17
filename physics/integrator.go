package physics

import (
	"math"

	"github.com/lixenwraith/dice-roller/vmath"
)

// StepResult reports what happened during one integration step
type StepResult struct {
	Contact     bool
	ImpactSpeed float64 // Vertical speed at contact, before restitution
	WallHit     bool
	Settled     bool
	Face        int // Resolved top face, set only when Settled
}

// Step advances a rolling die by one fixed step
// Semi-implicit Euler: gravity into velocity, velocity into position, spin into orientation
// Settling is only evaluated on a contact step so a die cannot freeze mid-air at an apex
// No-op when the die is not rolling
func Step(d *DieState, cfg Config) StepResult {
	var res StepResult
	if !d.Rolling {
		return res
	}
	d.Steps++

	d.LinearVelocity[1] += cfg.Gravity
	d.Position = d.Position.Add(d.LinearVelocity)
	d.Orientation = vmath.IntegrateSpin(d.Orientation, d.AngularVelocity)

	if cfg.TableBounds {
		hx := cfg.TableHalfWidth - cfg.HalfExtent
		hz := cfg.TableHalfDepth - cfg.HalfExtent
		hitX := vmath.ReflectAxis(&d.Position[0], &d.LinearVelocity[0], -hx, hx, cfg.WallRestitution)
		hitZ := vmath.ReflectAxis(&d.Position[2], &d.LinearVelocity[2], -hz, hz, cfg.WallRestitution)
		res.WallHit = hitX || hitZ
	}

	if impact, hit := vmath.FloorContact(&d.Position[1], &d.LinearVelocity[1], cfg.RestHeight(), cfg.Restitution); hit {
		res.Contact = true
		res.ImpactSpeed = impact
		d.LinearVelocity[0] *= cfg.HorizontalDamping
		d.LinearVelocity[2] *= cfg.HorizontalDamping
		d.AngularVelocity = d.AngularVelocity.Mul(cfg.AngularContactDamping)
		d.BounceCount++
	}

	d.AngularVelocity = d.AngularVelocity.Mul(cfg.AngularDamping)

	if res.Contact && d.BounceCount > cfg.SettleBounces && math.Abs(d.LinearVelocity.Y()) < cfg.SettleEpsilon {
		d.settle()
		res.Settled = true
		res.Face = TopFace(d.Orientation)
	}

	return res
}
