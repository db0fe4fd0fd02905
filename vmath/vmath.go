// Package vmath provides the float64 vector and rotation primitives used by the
// simulation. Conventions: right-handed, +Y up, -Z forward, +X right.
package vmath

import "math"

// Epsilon is the tolerance used by approximate comparisons
const Epsilon = 1e-9

// Lerp interpolates from start toward end by t, unclamped
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

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

// ApproxEqual reports whether a and b differ by at most tol
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
