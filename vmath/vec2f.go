package vmath

// Vec2F is a float64 2D vector, used for pointer deltas and sensitivity scales
type Vec2F struct {
	X, Y float64
}

// IsZero is exact; a delta of 1e-300 still counts as motion
func (v Vec2F) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
