package system

import (
	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/event"
)

// AudioHandler plays cues for simulation events.
// Registered on the scheduler's router; it has no per-tick work.
type AudioHandler struct {
	world *engine.World
}

// NewAudioHandler creates an audio handler; it is a no-op until Resources.Audio is set
func NewAudioHandler(world *engine.World) *AudioHandler {
	return &AudioHandler{world: world}
}

// EventTypes returns the event types AudioHandler handles
func (h *AudioHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerJumped,
	}
}

// HandleEvent processes jump events
func (h *AudioHandler) HandleEvent(w *engine.World, ev event.GameEvent) {
	audio := w.Resources.Audio
	if audio == nil || audio.Player == nil || !audio.Player.IsRunning() {
		return
	}
	if ev.Type == event.EventPlayerJumped {
		audio.Player.PlayJump()
	}
}
