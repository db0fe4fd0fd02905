package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/fps-proto/component"
	"github.com/lixenwraith/fps-proto/core"
	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/input"
	"github.com/lixenwraith/fps-proto/parameter"
	"github.com/lixenwraith/fps-proto/vmath"
)

const testDt = time.Second / 60

// spawnTestPlayer creates a bare player with the components the controllers read
func spawnTestPlayer(t *testing.T, world *engine.World) core.Entity {
	t.Helper()
	stores := engine.GetComponentStore(world)
	e := world.CreateEntity()
	stores.Player.Set(e, component.PlayerComponent{})
	stores.Transform.Set(e, component.NewTransform(0, 1, 0))
	stores.Sensitivity.Set(e, component.SensitivityComponent{
		Scale: vmath.Vec2F{X: parameter.DefaultSensitivityYaw, Y: parameter.DefaultSensitivityPitch},
	})
	stores.Speed.Set(e, component.SpeedComponent{Value: parameter.DefaultMoveSpeed})
	stores.Velocity.Set(e, component.VelocityComponent{})
	return e
}

// tick runs sys once with the given held keys, all treated as just pressed
func tick(world *engine.World, sys engine.System, delta vmath.Vec2F, keys ...input.KeyCode) {
	bi := input.NewButtonInput[input.KeyCode]()
	for _, k := range keys {
		bi.Press(k)
	}
	sys.Update(engine.NewTickContext(world, testDt, 1, input.SnapshotOf(bi, delta)))
}

// newPipeline returns a scheduler driving the given systems against live input state
func newPipeline(world *engine.World, systems ...engine.System) *engine.ClockScheduler {
	for _, s := range systems {
		world.AddSystem(s)
	}
	cs, _ := engine.NewClockScheduler(world, engine.NewMockTimeProvider(time.Unix(0, 0)), testDt, nil)
	return cs
}

func rotationOf(world *engine.World, e core.Entity) vmath.Quat {
	tr, _ := engine.GetStore[component.TransformComponent](world).Get(e)
	return tr.Rotation
}

func velocityOf(world *engine.World, e core.Entity) vmath.Vec3F {
	v, _ := engine.GetStore[component.VelocityComponent](world).Get(e)
	return v.Linear
}

func setVelocity(world *engine.World, e core.Entity, v vmath.Vec3F) {
	engine.GetStore[component.VelocityComponent](world).Set(e, component.VelocityComponent{Linear: v})
}

func setRotation(world *engine.World, e core.Entity, q vmath.Quat) {
	store := engine.GetStore[component.TransformComponent](world)
	tr, _ := store.Get(e)
	tr.Rotation = q
	store.Set(e, tr)
}
