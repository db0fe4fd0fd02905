package component

import "github.com/lixenwraith/fps-proto/vmath"

// TransformComponent is the world-space placement of an entity.
// Children store their transform relative to the parent.
type TransformComponent struct {
	Translation vmath.Vec3F
	Rotation    vmath.Quat
}

// NewTransform places an entity at (x, y, z) with no rotation
func NewTransform(x, y, z float64) TransformComponent {
	return TransformComponent{
		Translation: vmath.Vec3F{X: x, Y: y, Z: z},
		Rotation:    vmath.QuatIdentity,
	}
}
