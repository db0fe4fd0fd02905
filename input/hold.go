package input

import (
	"sort"
	"time"
)

// HoldTracker synthesizes key releases for backends that only report presses
// and auto-repeats (terminals). A fresh press is held for the initial window,
// which must outlast the OS delay before the first auto-repeat; once repeats
// arrive the shorter repeat window applies.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[KeyCode]holdState
}

type holdState struct {
	lastSeen  time.Time
	repeating bool
}

// NewHoldTracker creates a tracker; an initial window shorter than the repeat window is raised to it
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	if initial < repeat {
		initial = repeat
	}
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[KeyCode]holdState),
	}
}

// Observe records a press or repeat of k at now and applies it to keys.
// Returns true when this is a new press rather than a repeat.
func (h *HoldTracker) Observe(keys *ButtonInput[KeyCode], k KeyCode, now time.Time) bool {
	st, held := h.held[k]
	st.lastSeen = now
	st.repeating = held
	h.held[k] = st
	if !held {
		keys.Press(k)
	}
	return !held
}

// Expire releases keys whose window elapsed and returns them in key order
func (h *HoldTracker) Expire(keys *ButtonInput[KeyCode], now time.Time) []KeyCode {
	var released []KeyCode
	for k, st := range h.held {
		window := h.initial
		if st.repeating {
			window = h.repeat
		}
		if now.Sub(st.lastSeen) >= window {
			released = append(released, k)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	for _, k := range released {
		delete(h.held, k)
		keys.Release(k)
	}
	return released
}

// Reset releases everything immediately
func (h *HoldTracker) Reset(keys *ButtonInput[KeyCode]) {
	clear(h.held)
	keys.ReleaseAll()
}

// Held returns the number of keys currently held by the tracker
func (h *HoldTracker) Held() int {
	return len(h.held)
}
