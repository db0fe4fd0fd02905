package component

import "github.com/lixenwraith/fps-proto/core"

// ParentComponent links a child to its parent; child transforms are parent-relative
type ParentComponent struct {
	Entity core.Entity
}

// ChildrenComponent lists children in spawn order
type ChildrenComponent struct {
	Entities []core.Entity
}
