package system

import (
	"math"

	"github.com/lixenwraith/fps-proto/component"
	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/event"
	"github.com/lixenwraith/fps-proto/input"
	"github.com/lixenwraith/fps-proto/parameter"
	"github.com/lixenwraith/fps-proto/vmath"
)

// MovementMode selects what the movement controller writes
type MovementMode uint8

const (
	// MovementVelocity writes horizontal velocity and leaves integration to physics
	MovementVelocity MovementMode = iota
	// MovementKinematic moves the translation directly; jump is ignored
	MovementKinematic
)

// ParseMovementMode maps a config string to a mode
func ParseMovementMode(s string) (MovementMode, bool) {
	switch s {
	case "", "velocity":
		return MovementVelocity, true
	case "kinematic":
		return MovementKinematic, true
	default:
		return MovementVelocity, false
	}
}

func (m MovementMode) String() string {
	if m == MovementKinematic {
		return "kinematic"
	}
	return "velocity"
}

// MovementOptions configures the movement controller
type MovementOptions struct {
	Mode MovementMode

	// Damping is the per-tick lerp weight toward zero; 0 uses the default
	Damping float64

	// TimeScaledDamping makes damping independent of tick rate
	TimeScaledDamping bool
}

// MovementSystem translates WASD and Space into player velocity
type MovementSystem struct {
	world *engine.World
	opts  MovementOptions

	player    *engine.Store[component.PlayerComponent]
	transform *engine.Store[component.TransformComponent]
	velocity  *engine.Store[component.VelocityComponent]
	speed     *engine.Store[component.SpeedComponent]
}

// NewMovementSystem creates a movement system
func NewMovementSystem(world *engine.World, opts MovementOptions) engine.System {
	return &MovementSystem{
		world:     world,
		opts:      opts,
		player:    engine.GetStore[component.PlayerComponent](world),
		transform: engine.GetStore[component.TransformComponent](world),
		velocity:  engine.GetStore[component.VelocityComponent](world),
		speed:     engine.GetStore[component.SpeedComponent](world),
	}
}

func (s *MovementSystem) Name() string { return "movement" }

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update runs once per tick
func (s *MovementSystem) Update(ctx *engine.TickContext) {
	if s.opts.Mode == MovementKinematic {
		s.updateKinematic(ctx)
		return
	}

	e, ok := s.world.Query().
		With(s.player).
		With(s.transform).
		With(s.velocity).
		With(s.speed).
		Single()
	if !ok {
		return
	}

	tr, _ := s.transform.Get(e)
	vel, _ := s.velocity.Get(e)
	speed, _ := s.speed.Get(e)

	forward, right := HorizontalBasis(tr.Rotation)
	dir := WishDirection(ctx.Input, forward, right)

	if dir != vmath.V3FZero {
		dir = vmath.V3FNormalize(dir)
		vel.Linear.X = dir.X * speed.Value
		vel.Linear.Z = dir.Z * speed.Value
	} else {
		vel.Linear = Damp(vel.Linear, s.dampingFactor(ctx.DeltaSeconds))
	}

	if ctx.Input.JustPressed(input.KeySpace) {
		vel.Linear.Y = parameter.JumpImpulse
		ctx.PushEvent(event.EventPlayerJumped, &event.JumpPayload{Entity: e, VelocityY: vel.Linear.Y})
	}

	s.velocity.Set(e, vel)
}

func (s *MovementSystem) updateKinematic(ctx *engine.TickContext) {
	e, ok := s.world.Query().
		With(s.player).
		With(s.transform).
		With(s.speed).
		Single()
	if !ok {
		return
	}

	tr, _ := s.transform.Get(e)
	speed, _ := s.speed.Get(e)

	forward, right := HorizontalBasis(tr.Rotation)
	dir := WishDirection(ctx.Input, forward, right)
	if dir == vmath.V3FZero {
		return
	}

	dir = vmath.V3FNormalize(dir)
	tr.Translation = vmath.V3FAdd(tr.Translation, vmath.V3FScale(dir, speed.Value*ctx.DeltaSeconds))
	s.transform.Set(e, tr)
}

func (s *MovementSystem) dampingFactor(dt float64) float64 {
	factor := s.opts.Damping
	if factor == 0 {
		factor = parameter.DampingFactor
	}
	if !s.opts.TimeScaledDamping {
		return factor
	}
	return TimeScaledDamping(factor, dt, parameter.DampingReferenceRate)
}

// HorizontalBasis returns the forward and right vectors of rot flattened onto the XZ plane.
// A vector with no horizontal extent becomes zero.
func HorizontalBasis(rot vmath.Quat) (forward, right vmath.Vec3F) {
	return vmath.V3FHorizontal(rot.Forward()), vmath.V3FHorizontal(rot.Right())
}

// WishDirection sums the held movement keys; opposing keys cancel
func WishDirection(in input.Snapshot, forward, right vmath.Vec3F) vmath.Vec3F {
	dir := vmath.V3FZero
	if in.Pressed(input.KeyW) {
		dir = vmath.V3FAdd(dir, forward)
	}
	if in.Pressed(input.KeyS) {
		dir = vmath.V3FSub(dir, forward)
	}
	if in.Pressed(input.KeyA) {
		dir = vmath.V3FSub(dir, right)
	}
	if in.Pressed(input.KeyD) {
		dir = vmath.V3FAdd(dir, right)
	}
	return dir
}

// Damp moves X and Z toward zero by factor; Y is untouched
func Damp(v vmath.Vec3F, factor float64) vmath.Vec3F {
	v.X = vmath.Lerp(v.X, 0, factor)
	v.Z = vmath.Lerp(v.Z, 0, factor)
	return v
}

// TimeScaledDamping converts a per-tick factor defined at referenceRate to one for a tick of dt seconds
func TimeScaledDamping(factor, dt, referenceRate float64) float64 {
	return 1 - math.Pow(1-factor, dt*referenceRate)
}
