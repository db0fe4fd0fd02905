package engine

import (
	"reflect"
	"sort"
	"sync"

	"github.com/lixenwraith/fps-proto/component"
	"github.com/lixenwraith/fps-proto/core"
)

// World is the entity arena: stable identifiers plus one component table per type
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}
	stores       map[reflect.Type]QueryableStore
	storeOrder   []QueryableStore

	// Resources are singletons shared by systems
	Resources *Resource

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an empty world with default resources
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		stores:       make(map[reflect.Type]QueryableStore),
		Resources:    NewResource(),
	}
}

// GetStore returns the table for T, creating and registering it on first use.
// The pointer stays valid for the world's lifetime; systems cache it at construction.
func GetStore[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()

	w.mu.RLock()
	s, ok := w.stores[t]
	w.mu.RUnlock()
	if ok {
		return s.(*Store[T])
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	store := NewStore[T]()
	w.stores[t] = store
	w.storeOrder = append(w.storeOrder, store)
	return store
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Alive reports whether e was created and not destroyed
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// DestroyEntity removes e from every store; protected entities are kept.
// Returns false if nothing was destroyed.
func (w *World) DestroyEntity(e core.Entity) bool {
	if prot, ok := GetStore[component.ProtectionComponent](w).Get(e); ok {
		if prot.Mask.Has(component.ProtectFromDestroy) {
			return false
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.alive[e]; !ok {
		return false
	}
	delete(w.alive, e)
	for _, store := range w.storeOrder {
		store.Remove(e)
	}
	return true
}

// Clear removes all entities and components; IDs restart at 1
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	clear(w.alive)
	for _, store := range w.storeOrder {
		store.Clear()
	}
}

// AddSystem adds a system and keeps the pipeline sorted by priority.
// Equal priorities keep registration order.
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of the pipeline in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes fn while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// UpdateLocked runs every system once, in order; caller holds the update mutex
func (w *World) UpdateLocked(ctx *TickContext) {
	for _, system := range w.Systems() {
		system.Update(ctx)
	}
}
