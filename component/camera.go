package component

// CameraComponent is presentational: no simulation system mutates it
type CameraComponent struct {
	// FOV is the vertical field of view in radians
	FOV float64
	// Order sorts cameras; higher draws later (on top)
	Order int
}

// WorldModelCameraComponent tags the wide camera that renders the world
type WorldModelCameraComponent struct{}

// RenderLayersComponent is a bitmask of layers an entity belongs to (camera: layers it draws)
type RenderLayersComponent struct {
	Mask uint32
}

// Layers builds a mask from layer indices
func Layers(layers ...uint) RenderLayersComponent {
	var m uint32
	for _, l := range layers {
		m |= 1 << l
	}
	return RenderLayersComponent{Mask: m}
}

// Has reports layer membership
func (r RenderLayersComponent) Has(layer uint) bool {
	return r.Mask&(1<<layer) != 0
}

// Intersects reports whether two masks share a layer
func (r RenderLayersComponent) Intersects(o RenderLayersComponent) bool {
	return r.Mask&o.Mask != 0
}
