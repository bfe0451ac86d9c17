package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// SpinQuat returns the world-space rotation produced by one step of angular velocity w
// Rotation axis is w normalized, angle is |w| radians; zero spin yields identity
func SpinQuat(w mgl64.Vec3) mgl64.Quat {
	angle := w.Len()
	if angle < Epsilon {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatRotate(angle, w.Mul(1/angle))
}

// IntegrateSpin advances orientation q by one step of world-space angular velocity w
// Result is renormalized to keep drift out of long rolls
func IntegrateSpin(q mgl64.Quat, w mgl64.Vec3) mgl64.Quat {
	if w.Len() < Epsilon {
		return q
	}
	return SpinQuat(w).Mul(q).Normalize()
}

// Yaw rotates q about the world up axis by angle radians
func Yaw(q mgl64.Quat, angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, Up).Mul(q).Normalize()
}
