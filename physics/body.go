// Package physics is a small rigid-body step: gravity, semi-implicit Euler
// integration and AABB push-out. Rotation is never integrated.
package physics

import (
	"github.com/lixenwraith/fps-proto/vmath"
)

// Body is the physics view of one entity for a single step
type Body struct {
	Position    vmath.Vec3F
	Velocity    vmath.Vec3F
	HalfExtents vmath.Vec3F

	// InvMass is 0 for static bodies
	InvMass float64

	// Grounded is set by Step when the body rests on a contact from below
	Grounded bool
}

// Dynamic reports whether the body moves
func (b *Body) Dynamic() bool {
	return b.InvMass > 0
}

// Bounds returns the body's world-space AABB
func (b *Body) Bounds() AABB {
	return AABBFromCenter(b.Position, b.HalfExtents)
}

// InverseMass converts a mass to the form used by Body; non-positive mass is static
func InverseMass(mass float64) float64 {
	if mass <= 0 {
		return 0
	}
	return 1 / mass
}

// Integrate applies gravity then advances position by the new velocity
func Integrate(b *Body, gravity, dt float64) {
	if !b.Dynamic() {
		return
	}
	b.Velocity.Y += gravity * dt
	b.Position = vmath.V3FAdd(b.Position, vmath.V3FScale(b.Velocity, dt))
}

// ResolvePair separates two overlapping bodies, split by inverse mass.
// Velocity into the contact normal is removed from each pushed body.
// Returns true if a contact was resolved.
func ResolvePair(a, b *Body, slop, groundedTolerance float64) bool {
	totalInv := a.InvMass + b.InvMass
	if totalInv == 0 {
		return false
	}

	normal, depth, ok := Penetration(a.Bounds(), b.Bounds())
	if !ok || depth <= slop {
		return false
	}

	if a.Dynamic() {
		a.Position = vmath.V3FAdd(a.Position, vmath.V3FScale(normal, depth*a.InvMass/totalInv))
		removeInto(&a.Velocity, normal)
		if normal.Y >= groundedTolerance {
			a.Grounded = true
		}
	}
	if b.Dynamic() {
		n := vmath.V3FNeg(normal)
		b.Position = vmath.V3FAdd(b.Position, vmath.V3FScale(n, depth*b.InvMass/totalInv))
		removeInto(&b.Velocity, n)
		if n.Y >= groundedTolerance {
			b.Grounded = true
		}
	}
	return true
}

// removeInto zeroes the velocity component opposing normal; separating motion is kept
func removeInto(v *vmath.Vec3F, normal vmath.Vec3F) {
	if d := vmath.V3FDot(*v, normal); d < 0 {
		*v = vmath.V3FSub(*v, vmath.V3FScale(normal, d))
	}
}

// Step integrates every dynamic body then resolves all overlapping pairs once.
// Returns the number of contacts resolved.
func Step(bodies []*Body, gravity, dt, slop, groundedTolerance float64) int {
	for _, b := range bodies {
		if b.Dynamic() {
			b.Grounded = false
		}
		Integrate(b, gravity, dt)
	}

	contacts := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if ResolvePair(bodies[i], bodies[j], slop, groundedTolerance) {
				contacts++
			}
		}
	}
	return contacts
}
