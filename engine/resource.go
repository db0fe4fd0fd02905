package engine

import (
	"time"

	"github.com/lixenwraith/fps-proto/event"
	"github.com/lixenwraith/fps-proto/input"
	"github.com/lixenwraith/fps-proto/status"
)

// Resource holds singleton state, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Input  *input.State
	Cursor *CursorResource
	Events *event.EventQueue

	// Telemetry
	Status *status.Registry

	// Bridged from services; nil when unavailable
	Audio *AudioResource
}

// NewResource creates the default resource set
func NewResource() *Resource {
	return &Resource{
		Time:   &TimeResource{},
		Input:  input.NewState(),
		Cursor: &CursorResource{Captured: true},
		Events: event.NewEventQueue(),
		Status: status.NewRegistry(),
	}
}

// TimeResource is updated by the ClockScheduler at the start of a tick
type TimeResource struct {
	// Now is the scheduler clock reading for this tick
	Now time.Time

	// DeltaTime is the fixed tick interval
	DeltaTime time.Duration

	// Tick is the index of the tick being run, starting at 1
	Tick uint64
}

// Update modifies fields in place; caller holds the world lock
func (tr *TimeResource) Update(now time.Time, dt time.Duration, tick uint64) {
	tr.Now = now
	tr.DeltaTime = dt
	tr.Tick = tick
}

// CursorResource tracks whether pointer motion drives the look controller
type CursorResource struct {
	Captured bool
}

// AudioPlayer is the minimal audio interface used by systems
type AudioPlayer interface {
	PlayJump() bool
	IsRunning() bool
}

// AudioResource wraps the audio player
type AudioResource struct {
	Player AudioPlayer
}
