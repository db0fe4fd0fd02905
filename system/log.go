package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/event"
)

// LogHandler writes every simulation event to the debug log
type LogHandler struct {
	logger *zap.Logger
}

// NewLogHandler creates a log handler; nil logger discards
func NewLogHandler(logger *zap.Logger) *LogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogHandler{logger: logger.Named("events")}
}

// EventTypes returns the event types LogHandler handles
func (h *LogHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerJumped,
		event.EventCursorToggled,
		event.EventPlayerGrounded,
	}
}

// HandleEvent logs the event with its payload fields
func (h *LogHandler) HandleEvent(w *engine.World, ev event.GameEvent) {
	fields := []zap.Field{
		zap.Stringer("type", ev.Type),
		zap.Uint64("tick", ev.Tick),
	}
	switch p := ev.Payload.(type) {
	case *event.JumpPayload:
		fields = append(fields, zap.Uint64("entity", uint64(p.Entity)), zap.Float64("vy", p.VelocityY))
	case *event.LandingPayload:
		fields = append(fields, zap.Uint64("entity", uint64(p.Entity)), zap.Float64("impact_vy", p.ImpactVelocityY))
	case *event.CursorPayload:
		fields = append(fields, zap.Bool("captured", p.Captured))
	}
	h.logger.Debug("event", fields...)
}
