package engine

import (
	"time"

	"github.com/lixenwraith/fps-proto/event"
	"github.com/lixenwraith/fps-proto/input"
)

// System is one stage of the fixed-tick pipeline
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(ctx *TickContext)
}

// TickContext is passed explicitly to every system on every tick
type TickContext struct {
	World *World

	// Dt is the fixed tick interval; DeltaSeconds is the same value in seconds
	Dt           time.Duration
	DeltaSeconds float64

	Tick  uint64
	Input input.Snapshot
}

// NewTickContext builds a context for a single tick of length dt
func NewTickContext(w *World, dt time.Duration, tick uint64, in input.Snapshot) *TickContext {
	return &TickContext{
		World:        w,
		Dt:           dt,
		DeltaSeconds: dt.Seconds(),
		Tick:         tick,
		Input:        in,
	}
}

// PushEvent queues an event stamped with the current tick; dispatched after all systems ran
func (tc *TickContext) PushEvent(t event.EventType, payload any) {
	tc.World.Resources.Events.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Tick:    tc.Tick,
	})
}
