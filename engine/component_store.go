package engine

import (
	"github.com/lixenwraith/fps-proto/component"
)

// ComponentStore provides cached pointers to the typed component tables.
// Built once per system to skip the registry lookup on every tick.
type ComponentStore struct {
	// Player
	Player      *Store[component.PlayerComponent]
	Sensitivity *Store[component.SensitivityComponent]
	Speed       *Store[component.SpeedComponent]
	Protection  *Store[component.ProtectionComponent]

	// Spatial & physics
	Transform  *Store[component.TransformComponent]
	Velocity   *Store[component.VelocityComponent]
	RigidBody  *Store[component.RigidBodyComponent]
	Collider   *Store[component.ColliderComponent]
	LockedAxes *Store[component.LockedAxesComponent]

	// Presentation
	Camera           *Store[component.CameraComponent]
	WorldModelCamera *Store[component.WorldModelCameraComponent]
	RenderLayers     *Store[component.RenderLayersComponent]
	Mesh             *Store[component.MeshComponent]
	NotShadowCaster  *Store[component.NotShadowCasterComponent]
	PointLight       *Store[component.PointLightComponent]

	// Hierarchy
	Parent   *Store[component.ParentComponent]
	Children *Store[component.ChildrenComponent]
}

// GetComponentStore populates ComponentStore from world
func GetComponentStore(w *World) ComponentStore {
	return ComponentStore{
		Player:      GetStore[component.PlayerComponent](w),
		Sensitivity: GetStore[component.SensitivityComponent](w),
		Speed:       GetStore[component.SpeedComponent](w),
		Protection:  GetStore[component.ProtectionComponent](w),

		Transform:  GetStore[component.TransformComponent](w),
		Velocity:   GetStore[component.VelocityComponent](w),
		RigidBody:  GetStore[component.RigidBodyComponent](w),
		Collider:   GetStore[component.ColliderComponent](w),
		LockedAxes: GetStore[component.LockedAxesComponent](w),

		Camera:           GetStore[component.CameraComponent](w),
		WorldModelCamera: GetStore[component.WorldModelCameraComponent](w),
		RenderLayers:     GetStore[component.RenderLayersComponent](w),
		Mesh:             GetStore[component.MeshComponent](w),
		NotShadowCaster:  GetStore[component.NotShadowCasterComponent](w),
		PointLight:       GetStore[component.PointLightComponent](w),

		Parent:   GetStore[component.ParentComponent](w),
		Children: GetStore[component.ChildrenComponent](w),
	}
}
