package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3F is a float64 3D vector for positions, velocities and directions
type Vec3F struct {
	X, Y, Z float64
}

var (
	V3FZero    = Vec3F{}
	V3FUp      = Vec3F{0, 1, 0}
	V3FRight   = Vec3F{1, 0, 0}
	V3FForward = Vec3F{0, 0, -1}
)

func (v Vec3F) mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func v3fFromMgl(m mgl64.Vec3) Vec3F {
	return Vec3F{m[0], m[1], m[2]}
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FNeg(v Vec3F) Vec3F {
	return Vec3F{-v.X, -v.Y, -v.Z}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FNormalize returns the unit vector, or the zero vector when v has zero or
// non-finite length
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 || math.IsInf(mag, 0) || math.IsNaN(mag) {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FHorizontal drops the vertical component and renormalizes (normalize-or-zero).
// Horizontal extent below Epsilon is rounding noise from a vertical vector and yields zero.
func V3FHorizontal(v Vec3F) Vec3F {
	h := Vec3F{X: v.X, Z: v.Z}
	if V3FMagSq(h) < Epsilon*Epsilon {
		return Vec3F{}
	}
	return V3FNormalize(h)
}

// V3FLerp interpolates each component independently
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t), Lerp(a.Z, b.Z, t)}
}

// V3FApproxEqual compares component-wise within tol
func V3FApproxEqual(a, b Vec3F, tol float64) bool {
	return ApproxEqual(a.X, b.X, tol) && ApproxEqual(a.Y, b.Y, tol) && ApproxEqual(a.Z, b.Z, tol)
}

// IsFinite reports false if any component is NaN or Inf
func (v Vec3F) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
