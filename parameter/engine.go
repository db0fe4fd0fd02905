package parameter

import "time"

// Tick & Frame Timing
const (
	// DefaultTickRate is the fixed simulation rate in ticks per second
	DefaultTickRate = 60

	// FrameUpdateInterval is the HUD redraw interval (~30 FPS, terminal bound)
	FrameUpdateInterval = 33 * time.Millisecond

	// MaxTicksBehind is how far the scheduler may lag before dropping backlog
	MaxTicksBehind = 2
)

// Event Queue
const (
	// EventQueueSize is the number of undispatched events kept before the oldest is dropped
	EventQueueSize = 256
)
