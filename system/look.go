package system

import (
	"github.com/lixenwraith/fps-proto/component"
	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/parameter"
	"github.com/lixenwraith/fps-proto/vmath"
)

// LookSystem turns accumulated pointer motion into player yaw and pitch
type LookSystem struct {
	world       *engine.World
	player      *engine.Store[component.PlayerComponent]
	transform   *engine.Store[component.TransformComponent]
	sensitivity *engine.Store[component.SensitivityComponent]
}

// NewLookSystem creates a look system
func NewLookSystem(world *engine.World) engine.System {
	return &LookSystem{
		world:       world,
		player:      engine.GetStore[component.PlayerComponent](world),
		transform:   engine.GetStore[component.TransformComponent](world),
		sensitivity: engine.GetStore[component.SensitivityComponent](world),
	}
}

func (s *LookSystem) Name() string { return "look" }

// Priority returns the system's priority
func (s *LookSystem) Priority() int {
	return parameter.PriorityLook
}

// Update applies this tick's pointer delta; a zero delta leaves the rotation untouched
func (s *LookSystem) Update(ctx *engine.TickContext) {
	delta := ctx.Input.MouseDelta
	if delta.IsZero() {
		return
	}

	e, ok := s.world.Query().
		With(s.player).
		With(s.transform).
		With(s.sensitivity).
		Single()
	if !ok {
		return
	}

	tr, _ := s.transform.Get(e)
	sens, _ := s.sensitivity.Get(e)
	tr.Rotation = ApplyLook(tr.Rotation, delta, sens.Scale)
	s.transform.Set(e, tr)
}

// ApplyLook decomposes rot as yaw-pitch-roll (YXZ), adds the scaled delta and
// recomposes with roll dropped. Pointer right turns right, pointer down looks down.
func ApplyLook(rot vmath.Quat, delta, sens vmath.Vec2F) vmath.Quat {
	yawDelta := -delta.X * sens.X
	pitchDelta := -delta.Y * sens.Y

	yaw, pitch, _ := rot.EulerYXZ()
	yaw += yawDelta
	pitch = vmath.Clamp(pitch+pitchDelta, -parameter.PitchLimit, parameter.PitchLimit)

	return vmath.QuatFromEulerYXZ(yaw, pitch, 0)
}
