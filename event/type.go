package event

import "github.com/lixenwraith/fps-proto/core"

// EventType represents the type of simulation event
type EventType int

const (
	// EventPlayerJumped fires on the tick a jump impulse is applied
	// Trigger: MovementSystem | Consumer: AudioHandler, LogHandler | Payload: *JumpPayload
	EventPlayerJumped EventType = iota

	// EventCursorToggled fires when look capture changes
	// Trigger: CursorSystem | Consumer: logging, frontend | Payload: *CursorPayload
	EventCursorToggled

	// EventPlayerGrounded fires when the player lands after being airborne
	// Trigger: PhysicsSystem | Consumer: LogHandler | Payload: *LandingPayload
	EventPlayerGrounded
)

var eventNames = map[EventType]string{
	EventPlayerJumped:   "player_jumped",
	EventCursorToggled:  "cursor_toggled",
	EventPlayerGrounded: "player_grounded",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is one queued event, stamped with the tick that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}

// JumpPayload carries the entity and its vertical velocity at the moment of the event
type JumpPayload struct {
	Entity    core.Entity
	VelocityY float64
}

// LandingPayload carries the entity and the vertical velocity it had when the contact stopped it
type LandingPayload struct {
	Entity          core.Entity
	ImpactVelocityY float64
}

// CursorPayload carries the new capture state
type CursorPayload struct {
	Captured bool
}
