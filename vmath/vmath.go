package vmath

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance below which a rotation angle or length is treated as zero
const Epsilon = 1e-12

// Axis vectors in world space, Y is up
var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}
	Up    = AxisY
)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ApproxEqual reports whether a and b differ by at most tol
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Vec3ApproxEqual compares vectors component-wise with tolerance
func Vec3ApproxEqual(a, b mgl64.Vec3, tol float64) bool {
	return ApproxEqual(a[0], b[0], tol) && ApproxEqual(a[1], b[1], tol) && ApproxEqual(a[2], b[2], tol)
}

// RandRange returns a uniform value in [lo, hi)
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RandSymmetric returns a uniform value in [-half, half)
func RandSymmetric(rng *rand.Rand, half float64) float64 {
	return (rng.Float64() - 0.5) * 2 * half
}

// RandVec3Symmetric returns a vector with each component in [-half, half)
func RandVec3Symmetric(rng *rand.Rand, half float64) mgl64.Vec3 {
	return mgl64.Vec3{
		RandSymmetric(rng, half),
		RandSymmetric(rng, half),
		RandSymmetric(rng, half),
	}
}
