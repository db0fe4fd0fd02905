package engine

import (
	"sort"

	"github.com/lixenwraith/fps-proto/core"
)

// QueryBuilder finds entities present in every listed store.
// Intersection starts from the smallest store.
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder.
//
// Example:
//
//	entities := world.Query().
//	    With(stores.Transform).
//	    With(stores.Velocity).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter.
// Panics if called after Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns entities in all stores, ordered as in the smallest store.
// Repeated calls return the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()
	for _, store := range qb.stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}

// Single returns the only entity matching the query.
// Zero or several matches report false: callers skip the tick.
func (qb *QueryBuilder) Single() (core.Entity, bool) {
	results := qb.Execute()
	if len(results) != 1 {
		return core.NoEntity, false
	}
	return results[0], true
}
