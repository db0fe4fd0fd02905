package component

import "github.com/lixenwraith/fps-proto/vmath"

// BodyKind selects how the physics step treats a body
type BodyKind uint8

const (
	// BodyDynamic receives gravity, integrates velocity and can be pushed
	BodyDynamic BodyKind = iota
	// BodyStatic never moves
	BodyStatic
)

func (k BodyKind) String() string {
	switch k {
	case BodyDynamic:
		return "dynamic"
	case BodyStatic:
		return "static"
	default:
		return "unknown"
	}
}

// RigidBodyComponent registers an entity with the physics step
type RigidBodyComponent struct {
	Kind BodyKind
	Mass float64

	// Grounded is written by the physics step: resting on a contact from below
	Grounded bool
}

// VelocityComponent is the linear velocity in units per second
type VelocityComponent struct {
	Linear vmath.Vec3F
}

// ColliderShape identifies the collider geometry
type ColliderShape uint8

const (
	ShapeCuboid ColliderShape = iota
	ShapeCapsule
)

// ColliderComponent describes collision geometry centered on the transform
type ColliderComponent struct {
	Shape ColliderShape

	// HalfExtents is used by ShapeCuboid
	HalfExtents vmath.Vec3F

	// Radius and Length are used by ShapeCapsule (Y-aligned, Length excludes the caps)
	Radius float64
	Length float64
}

// CuboidCollider builds a box collider from full edge lengths
func CuboidCollider(x, y, z float64) ColliderComponent {
	return ColliderComponent{
		Shape:       ShapeCuboid,
		HalfExtents: vmath.Vec3F{X: x / 2, Y: y / 2, Z: z / 2},
	}
}

// CapsuleCollider builds a Y-aligned capsule collider
func CapsuleCollider(radius, length float64) ColliderComponent {
	return ColliderComponent{
		Shape:  ShapeCapsule,
		Radius: radius,
		Length: length,
	}
}

// Extents returns the half extents of the collider's bounding box
func (c ColliderComponent) Extents() vmath.Vec3F {
	if c.Shape == ShapeCapsule {
		return vmath.Vec3F{X: c.Radius, Y: c.Length/2 + c.Radius, Z: c.Radius}
	}
	return c.HalfExtents
}

// LockedAxesComponent keeps physics from rotating the body
type LockedAxesComponent struct {
	Rotation bool
}
