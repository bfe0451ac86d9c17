package vmath

// ReflectAxis clamps a position component to [lo, hi] and reflects its velocity on contact
// Velocity is only reflected when moving into the boundary; returns true on contact
func ReflectAxis(pos, vel *float64, lo, hi, restitution float64) bool {
	if *pos < lo {
		*pos = lo
		if *vel < 0 {
			*vel = -*vel * restitution
		}
		return true
	}
	if *pos > hi {
		*pos = hi
		if *vel > 0 {
			*vel = -*vel * restitution
		}
		return true
	}
	return false
}

// FloorContact clamps a vertical position to rest height and reflects downward velocity
// Returns impact speed (absolute pre-contact velocity) and true on contact
// Contact is inclusive: resting exactly at rest height counts
func FloorContact(pos, vel *float64, rest, restitution float64) (float64, bool) {
	if *pos > rest {
		return 0, false
	}
	*pos = rest
	impact := *vel
	if impact < 0 {
		impact = -impact
	}
	if *vel < 0 {
		*vel = -*vel * restitution
	}
	return impact, true
}
