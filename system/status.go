package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/parameter"
	"github.com/lixenwraith/fps-proto/status"
	"github.com/lixenwraith/fps-proto/vmath"
)

// StatusSystem publishes player state to the status registry for the HUD
type StatusSystem struct {
	world  *engine.World
	stores engine.ComponentStore

	// Cached metric pointers
	statX        *status.AtomicFloat
	statY        *status.AtomicFloat
	statZ        *status.AtomicFloat
	statYaw      *status.AtomicFloat
	statPitch    *status.AtomicFloat
	statSpeed    *status.AtomicFloat
	statVertical *status.AtomicFloat
	statGrounded *atomic.Bool
	statCaptured *atomic.Bool
	statPlayer   *atomic.Bool
}

// NewStatusSystem creates a status system
func NewStatusSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	return &StatusSystem{
		world:        world,
		stores:       engine.GetComponentStore(world),
		statX:        reg.Floats.Get("player.x"),
		statY:        reg.Floats.Get("player.y"),
		statZ:        reg.Floats.Get("player.z"),
		statYaw:      reg.Floats.Get("player.yaw_deg"),
		statPitch:    reg.Floats.Get("player.pitch_deg"),
		statSpeed:    reg.Floats.Get("player.speed"),
		statVertical: reg.Floats.Get("player.vy"),
		statGrounded: reg.Bools.Get("player.grounded"),
		statCaptured: reg.Bools.Get("cursor.captured"),
		statPlayer:   reg.Bools.Get("player.present"),
	}
}

func (s *StatusSystem) Name() string { return "status" }

// Priority returns the system's priority
func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

// Update snapshots the player after simulation
func (s *StatusSystem) Update(ctx *engine.TickContext) {
	s.statCaptured.Store(s.world.Resources.Cursor.Captured)

	e, ok := s.world.Query().
		With(s.stores.Player).
		With(s.stores.Transform).
		Single()
	s.statPlayer.Store(ok)
	if !ok {
		return
	}

	tr, _ := s.stores.Transform.Get(e)
	s.statX.Set(tr.Translation.X)
	s.statY.Set(tr.Translation.Y)
	s.statZ.Set(tr.Translation.Z)

	yaw, pitch, _ := tr.Rotation.EulerYXZ()
	s.statYaw.Set(vmath.RadToDeg(yaw))
	s.statPitch.Set(vmath.RadToDeg(pitch))

	vel, _ := s.stores.Velocity.Get(e)
	s.statSpeed.Set(math.Hypot(vel.Linear.X, vel.Linear.Z))
	s.statVertical.Set(vel.Linear.Y)

	rb, _ := s.stores.RigidBody.Get(e)
	s.statGrounded.Store(rb.Grounded)
}
