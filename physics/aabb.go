package physics

import (
	"math"

	"github.com/lixenwraith/fps-proto/vmath"
)

// AABB is an axis-aligned bounding box in world space
type AABB struct {
	Min, Max vmath.Vec3F
}

// AABBFromCenter builds a box around center with the given half extents
func AABBFromCenter(center, half vmath.Vec3F) AABB {
	return AABB{
		Min: vmath.V3FSub(center, half),
		Max: vmath.V3FAdd(center, half),
	}
}

// Overlaps reports strict overlap; touching faces do not overlap
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// Penetration returns the axis of least penetration between a and b.
// normal is the unit direction a must move to separate from b.
func Penetration(a, b AABB) (normal vmath.Vec3F, depth float64, ok bool) {
	if !a.Overlaps(b) {
		return vmath.V3FZero, 0, false
	}

	ca := center(a)
	cb := center(b)

	// Overlap along each axis
	ox := math.Min(a.Max.X, b.Max.X) - math.Max(a.Min.X, b.Min.X)
	oy := math.Min(a.Max.Y, b.Max.Y) - math.Max(a.Min.Y, b.Min.Y)
	oz := math.Min(a.Max.Z, b.Max.Z) - math.Max(a.Min.Z, b.Min.Z)

	// Ties prefer Y so resting contacts resolve vertically
	switch {
	case oy <= ox && oy <= oz:
		return vmath.Vec3F{Y: sign(ca.Y - cb.Y)}, oy, true
	case ox <= oz:
		return vmath.Vec3F{X: sign(ca.X - cb.X)}, ox, true
	default:
		return vmath.Vec3F{Z: sign(ca.Z - cb.Z)}, oz, true
	}
}

func center(a AABB) vmath.Vec3F {
	return vmath.V3FScale(vmath.V3FAdd(a.Min, a.Max), 0.5)
}

// sign maps 0 to +1 so coincident centers still separate upward
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
