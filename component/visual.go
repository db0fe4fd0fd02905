package component

import "github.com/lixenwraith/fps-proto/vmath"

// MeshShape identifies a primitive mesh
type MeshShape uint8

const (
	MeshPlane MeshShape = iota
	MeshCuboid
	MeshCapsule
)

// MeshComponent is a primitive mesh with a flat colour
type MeshComponent struct {
	Shape MeshShape
	Size  vmath.Vec3F
	// Color is an sRGB hex string "#rrggbb"
	Color string
}

// NotShadowCasterComponent excludes a mesh from shadow casting
type NotShadowCasterComponent struct{}

// PointLightComponent is an omnidirectional light
type PointLightComponent struct {
	Color   string
	Shadows bool
}
