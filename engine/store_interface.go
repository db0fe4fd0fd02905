package engine

import "github.com/lixenwraith/fps-proto/core"

// AnyStore provides type-erased operations so World can manage every store
// uniformly (entity destruction, clearing) without knowing T
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// QueryableStore extends AnyStore with the iteration needed by QueryBuilder
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}
