package game

import "math"

// Near is the independent-axis box test used by every collision:
// |Δx| < eps and |Δy| < eps. It is not a Euclidean distance check.
func Near(a, b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

// Excluded reports whether p lies inside the respawn exclusion box of any
// of the given actor positions.
func Excluded(p Vec2, actors ...Vec2) bool {
	for _, a := range actors {
		if Near(p, a, RespawnExclusion) {
			return true
		}
	}
	return false
}

// SpawnPoint draws uniform positions in the play square until one falls
// outside every exclusion box. It gives up after MaxRespawnAttempts draws.
func SpawnPoint(rng *Rand, actors ...Vec2) (Vec2, error) {
	for range MaxRespawnAttempts {
		p := Vec2{
			X: rng.RangeF(BoundMin, BoundMax),
			Y: rng.RangeF(BoundMin, BoundMax),
		}
		if !Excluded(p, actors...) {
			return p, nil
		}
	}
	return Vec2{}, ErrNoSpawnPoint
}
