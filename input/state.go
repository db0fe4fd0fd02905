package input

import "github.com/lixenwraith/fps-proto/vmath"

// State is the live input written by the frontend between ticks.
// It is not synchronized; callers hold the world update lock.
type State struct {
	Keys  *ButtonInput[KeyCode]
	Mouse MouseMotion
}

// NewState creates an empty State
func NewState() *State {
	return &State{
		Keys: NewButtonInput[KeyCode](),
	}
}

// Snapshot is the immutable per-tick view handed to systems
type Snapshot struct {
	keys       *ButtonInput[KeyCode]
	MouseDelta vmath.Vec2F
}

// Snapshot captures the current state
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		keys:       s.Keys.Clone(),
		MouseDelta: s.Mouse.Delta(),
	}
}

// EndTick consumes per-tick data: edges and accumulated motion
func (s *State) EndTick() {
	s.Keys.ClearEdges()
	s.Mouse.Reset()
}

// Pressed reports level state in the snapshot
func (sn Snapshot) Pressed(k KeyCode) bool {
	return sn.keys != nil && sn.keys.Pressed(k)
}

// JustPressed reports a released->pressed edge since the previous tick
func (sn Snapshot) JustPressed(k KeyCode) bool {
	return sn.keys != nil && sn.keys.JustPressed(k)
}

// SnapshotOf builds a snapshot directly; used by tests and scripted drivers
func SnapshotOf(keys *ButtonInput[KeyCode], delta vmath.Vec2F) Snapshot {
	if keys == nil {
		keys = NewButtonInput[KeyCode]()
	}
	return Snapshot{keys: keys.Clone(), MouseDelta: delta}
}
