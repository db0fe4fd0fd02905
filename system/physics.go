package system

import (
	"github.com/lixenwraith/fps-proto/component"
	"github.com/lixenwraith/fps-proto/core"
	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/event"
	"github.com/lixenwraith/fps-proto/parameter"
	"github.com/lixenwraith/fps-proto/physics"
)

// PhysicsSystem steps every root rigid body with a collider.
// Translation, velocity and the grounded flag are written back; rotation is never touched.
type PhysicsSystem struct {
	world  *engine.World
	stores engine.ComponentStore

	// Reused between ticks
	bodies   []*physics.Body
	entities []core.Entity
	preVY    []float64
}

// NewPhysicsSystem creates a physics system
func NewPhysicsSystem(world *engine.World) engine.System {
	return &PhysicsSystem{
		world:  world,
		stores: engine.GetComponentStore(world),
	}
}

func (s *PhysicsSystem) Name() string { return "physics" }

// Priority returns the system's priority
func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

// Update integrates and resolves contacts for one tick
func (s *PhysicsSystem) Update(ctx *engine.TickContext) {
	entities := s.world.Query().
		With(s.stores.RigidBody).
		With(s.stores.Collider).
		With(s.stores.Transform).
		Execute()

	s.bodies = s.bodies[:0]
	s.entities = s.entities[:0]
	s.preVY = s.preVY[:0]
	for _, e := range entities {
		// Children are placed relative to their parent and do not simulate
		if s.stores.Parent.Has(e) {
			continue
		}
		rb, _ := s.stores.RigidBody.Get(e)
		col, _ := s.stores.Collider.Get(e)
		tr, _ := s.stores.Transform.Get(e)
		vel, _ := s.stores.Velocity.Get(e)

		b := &physics.Body{
			Position:    tr.Translation,
			Velocity:    vel.Linear,
			HalfExtents: col.Extents(),
			Grounded:    rb.Grounded,
		}
		if rb.Kind == component.BodyDynamic {
			b.InvMass = physics.InverseMass(rb.Mass)
		}
		s.bodies = append(s.bodies, b)
		s.entities = append(s.entities, e)
		s.preVY = append(s.preVY, b.Velocity.Y)
	}

	physics.Step(s.bodies, parameter.Gravity, ctx.DeltaSeconds, parameter.ContactSlop, parameter.GroundedTolerance)

	for i, e := range s.entities {
		b := s.bodies[i]
		if !b.Dynamic() {
			continue
		}

		tr, _ := s.stores.Transform.Get(e)
		tr.Translation = b.Position
		s.stores.Transform.Set(e, tr)

		if s.stores.Velocity.Has(e) {
			s.stores.Velocity.Set(e, component.VelocityComponent{Linear: b.Velocity})
		}

		rb, _ := s.stores.RigidBody.Get(e)
		landed := b.Grounded && !rb.Grounded
		rb.Grounded = b.Grounded
		s.stores.RigidBody.Set(e, rb)

		if landed && s.stores.Player.Has(e) {
			impact := s.preVY[i] + parameter.Gravity*ctx.DeltaSeconds
			ctx.PushEvent(event.EventPlayerGrounded, &event.LandingPayload{Entity: e, ImpactVelocityY: impact})
		}
	}
}
