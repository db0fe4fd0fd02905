package event

import (
	"sync"

	"github.com/lixenwraith/fps-proto/parameter"
)

// EventQueue buffers the events raised during one tick until the router drains them.
// Producers run under the world update lock, so a mutex never contends in practice.
// When full the oldest event is dropped.
type EventQueue struct {
	mu      sync.Mutex
	events  []GameEvent
	dropped uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Push appends ev, discarding the oldest event at capacity
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) >= parameter.EventQueueSize {
		copy(eq.events, eq.events[1:])
		eq.events = eq.events[:len(eq.events)-1]
		eq.dropped++
	}
	eq.events = append(eq.events, ev)
}

// Consume returns pending events in FIFO order and empties the queue; nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(eq.events))
	copy(out, eq.events)
	eq.events = eq.events[:0]
	return out
}

// Len returns the pending count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}

// Dropped returns how many events were discarded on overflow
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
