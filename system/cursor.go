package system

import (
	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/event"
	"github.com/lixenwraith/fps-proto/input"
	"github.com/lixenwraith/fps-proto/parameter"
)

// CursorSystem toggles look capture on an Escape edge
type CursorSystem struct {
	world  *engine.World
	cursor *engine.CursorResource
}

// NewCursorSystem creates a cursor system bound to the world's cursor resource
func NewCursorSystem(world *engine.World) engine.System {
	return &CursorSystem{
		world:  world,
		cursor: world.Resources.Cursor,
	}
}

func (s *CursorSystem) Name() string { return "cursor" }

// Priority returns the system's priority
func (s *CursorSystem) Priority() int {
	return parameter.PriorityCursor
}

// Update flips capture once per Escape key-down
func (s *CursorSystem) Update(ctx *engine.TickContext) {
	if !ctx.Input.JustPressed(input.KeyEscape) {
		return
	}
	s.cursor.Captured = !s.cursor.Captured
	ctx.PushEvent(event.EventCursorToggled, &event.CursorPayload{Captured: s.cursor.Captured})
}
