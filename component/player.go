package component

import "github.com/lixenwraith/fps-proto/vmath"

// PlayerComponent tags the single controllable entity
type PlayerComponent struct{}

// SensitivityComponent scales pointer delta into (yaw, pitch) radians; constant after spawn
type SensitivityComponent struct {
	Scale vmath.Vec2F
}

// SpeedComponent is the horizontal movement speed in units per second
type SpeedComponent struct {
	Value float64
}
