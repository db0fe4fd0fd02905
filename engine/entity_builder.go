package engine

import (
	"github.com/lixenwraith/fps-proto/component"
	"github.com/lixenwraith/fps-proto/core"
)

// EntityBuilder describes an entity and its children as one composite value.
// Nothing touches the world until Build, which allocates IDs and inserts the
// whole tree in one call.
//
// Example usage:
//
//	player := engine.WithChild(
//	    engine.With(world.NewEntity(), stores.Player, component.PlayerComponent{}),
//	    engine.With(world.NewEntity(), stores.Camera, component.CameraComponent{FOV: fov}),
//	).Build()
type EntityBuilder struct {
	world    *World
	inserts  []func(core.Entity)
	children []*EntityBuilder
	built    bool
}

// NewEntity starts describing a new entity
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{world: w}
}

// With adds a component of type T to the entity being built.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], c T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	eb.inserts = append(eb.inserts, func(e core.Entity) {
		store.Set(e, c)
	})
	return eb
}

// WithChild attaches child to the entity being built; the child is built with the parent.
// Panics if either builder was already built.
func WithChild(eb *EntityBuilder, child *EntityBuilder) *EntityBuilder {
	if eb.built || child.built {
		panic("entity already built - cannot attach children after Build()")
	}
	eb.children = append(eb.children, child)
	return eb
}

// Build commits the entity and its descendants, returning the root entity.
// Parent and children links are written for every attached child.
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		panic("entity already built")
	}
	eb.built = true

	w := eb.world
	e := w.CreateEntity()
	for _, insert := range eb.inserts {
		insert(e)
	}

	if len(eb.children) > 0 {
		parents := GetStore[component.ParentComponent](w)
		kids := make([]core.Entity, 0, len(eb.children))
		for _, child := range eb.children {
			ce := child.Build()
			parents.Set(ce, component.ParentComponent{Entity: e})
			kids = append(kids, ce)
		}
		GetStore[component.ChildrenComponent](w).Set(e, component.ChildrenComponent{Entities: kids})
	}
	return e
}
