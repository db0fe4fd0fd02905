// Package scene spawns the static level and the player bundle.
package scene

import (
	"github.com/lixenwraith/fps-proto/component"
	"github.com/lixenwraith/fps-proto/core"
	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/parameter"
	"github.com/lixenwraith/fps-proto/vmath"
)

// SpawnEnvironment creates the ground, the cube grid and the light.
// Returns the ground entity.
func SpawnEnvironment(world *engine.World) core.Entity {
	stores := engine.GetComponentStore(world)

	groundEB := world.NewEntity()
	engine.With(groundEB, stores.Transform, component.NewTransform(0, 0, 0))
	engine.With(groundEB, stores.RigidBody, component.RigidBodyComponent{Kind: component.BodyStatic})
	engine.With(groundEB, stores.Collider, component.CuboidCollider(parameter.GroundSize, parameter.GroundThickness, parameter.GroundSize))
	engine.With(groundEB, stores.Mesh, component.MeshComponent{
		Shape: component.MeshPlane,
		Size:  vmath.Vec3F{X: parameter.GroundSize, Z: parameter.GroundSize},
		Color: parameter.GroundColor,
	})
	ground := groundEB.Build()

	cubeMass := parameter.CubeDensity * parameter.CubeSize * parameter.CubeSize * parameter.CubeSize
	for x := parameter.CubeGridMin; x <= parameter.CubeGridMax; x++ {
		for z := parameter.CubeGridMin; z <= parameter.CubeGridMax; z++ {
			eb := world.NewEntity()
			engine.With(eb, stores.Transform, component.NewTransform(
				float64(x)*parameter.CubeSpacing,
				parameter.CubeRestHeight,
				float64(z)*parameter.CubeSpacing,
			))
			engine.With(eb, stores.RigidBody, component.RigidBodyComponent{Kind: component.BodyDynamic, Mass: cubeMass})
			engine.With(eb, stores.Velocity, component.VelocityComponent{})
			engine.With(eb, stores.Collider, component.CuboidCollider(parameter.CubeSize, parameter.CubeSize, parameter.CubeSize))
			engine.With(eb, stores.Mesh, component.MeshComponent{
				Shape: component.MeshCuboid,
				Size:  vmath.Vec3F{X: parameter.CubeSize, Y: parameter.CubeSize, Z: parameter.CubeSize},
				Color: parameter.CubeColor,
			})
			eb.Build()
		}
	}

	// Light is visible to both cameras
	light := world.NewEntity()
	engine.With(light, stores.Transform, component.NewTransform(parameter.LightX, parameter.LightY, parameter.LightZ))
	engine.With(light, stores.PointLight, component.PointLightComponent{Color: parameter.LightColor, Shadows: true})
	engine.With(light, stores.RenderLayers, component.Layers(0, parameter.ViewModelLayer))
	light.Build()

	return ground
}
