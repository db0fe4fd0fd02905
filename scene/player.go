package scene

import (
	"github.com/lixenwraith/fps-proto/component"
	"github.com/lixenwraith/fps-proto/core"
	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/parameter"
	"github.com/lixenwraith/fps-proto/vmath"
)

// PlayerOptions overrides the tunable player values; zero fields take defaults
type PlayerOptions struct {
	Sensitivity vmath.Vec2F
	Speed       float64
}

func (o PlayerOptions) withDefaults() PlayerOptions {
	if o.Sensitivity.IsZero() {
		o.Sensitivity = vmath.Vec2F{X: parameter.DefaultSensitivityYaw, Y: parameter.DefaultSensitivityPitch}
	}
	if o.Speed == 0 {
		o.Speed = parameter.DefaultMoveSpeed
	}
	return o
}

// SpawnPlayer builds the player capsule with its world-model camera, view-model
// camera and arm in one composite insertion. Returns the player entity.
func SpawnPlayer(world *engine.World, opts PlayerOptions) core.Entity {
	opts = opts.withDefaults()
	stores := engine.GetComponentStore(world)

	player := world.NewEntity()
	engine.With(player, stores.Player, component.PlayerComponent{})
	engine.With(player, stores.Protection, component.ProtectionComponent{Mask: component.ProtectAll})
	engine.With(player, stores.Transform, component.NewTransform(parameter.PlayerSpawnX, parameter.PlayerSpawnY, parameter.PlayerSpawnZ))
	engine.With(player, stores.Sensitivity, component.SensitivityComponent{Scale: opts.Sensitivity})
	engine.With(player, stores.Speed, component.SpeedComponent{Value: opts.Speed})
	engine.With(player, stores.Velocity, component.VelocityComponent{})
	engine.With(player, stores.RigidBody, component.RigidBodyComponent{Kind: component.BodyDynamic, Mass: parameter.PlayerMass})
	engine.With(player, stores.Collider, component.CapsuleCollider(parameter.PlayerCapsuleRadius, parameter.PlayerCapsuleLength))
	engine.With(player, stores.LockedAxes, component.LockedAxesComponent{Rotation: true})

	// Renders the world on the default layer
	worldCamera := world.NewEntity()
	engine.With(worldCamera, stores.Transform, component.NewTransform(0, 0, 0))
	engine.With(worldCamera, stores.Camera, component.CameraComponent{FOV: vmath.DegToRad(parameter.WorldModelFOVDegrees)})
	engine.With(worldCamera, stores.WorldModelCamera, component.WorldModelCameraComponent{})

	// Draws on top with a narrower FOV, only the view-model layer
	viewCamera := world.NewEntity()
	engine.With(viewCamera, stores.Transform, component.NewTransform(0, 0, 0))
	engine.With(viewCamera, stores.Camera, component.CameraComponent{
		FOV:   vmath.DegToRad(parameter.ViewModelFOVDegrees),
		Order: parameter.ViewModelCameraOrder,
	})
	engine.With(viewCamera, stores.RenderLayers, component.Layers(parameter.ViewModelLayer))

	arm := world.NewEntity()
	engine.With(arm, stores.Transform, component.NewTransform(parameter.ArmOffsetX, parameter.ArmOffsetY, parameter.ArmOffsetZ))
	engine.With(arm, stores.Mesh, component.MeshComponent{
		Shape: component.MeshCuboid,
		Size:  vmath.Vec3F{X: parameter.ArmSizeX, Y: parameter.ArmSizeY, Z: parameter.ArmSizeZ},
		Color: parameter.ArmColor,
	})
	engine.With(arm, stores.RenderLayers, component.Layers(parameter.ViewModelLayer))
	engine.With(arm, stores.NotShadowCaster, component.NotShadowCasterComponent{})

	engine.WithChild(player, worldCamera)
	engine.WithChild(player, viewCamera)
	engine.WithChild(player, arm)
	return player.Build()
}
