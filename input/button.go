package input

// ButtonInput tracks level (pressed) and edge (just pressed / just released) state.
// Edges persist until ClearEdges, which the scheduler calls once per tick.
type ButtonInput[T comparable] struct {
	pressed      map[T]struct{}
	justPressed  map[T]struct{}
	justReleased map[T]struct{}
}

// NewButtonInput creates an empty ButtonInput
func NewButtonInput[T comparable]() *ButtonInput[T] {
	return &ButtonInput[T]{
		pressed:      make(map[T]struct{}),
		justPressed:  make(map[T]struct{}),
		justReleased: make(map[T]struct{}),
	}
}

// Press marks b held; only a released->pressed transition records an edge
func (bi *ButtonInput[T]) Press(b T) {
	if _, held := bi.pressed[b]; held {
		return
	}
	bi.pressed[b] = struct{}{}
	bi.justPressed[b] = struct{}{}
}

// Release clears b; only a pressed->released transition records an edge
func (bi *ButtonInput[T]) Release(b T) {
	if _, held := bi.pressed[b]; !held {
		return
	}
	delete(bi.pressed, b)
	bi.justReleased[b] = struct{}{}
}

// ReleaseAll releases every held button
func (bi *ButtonInput[T]) ReleaseAll() {
	for b := range bi.pressed {
		bi.Release(b)
	}
}

func (bi *ButtonInput[T]) Pressed(b T) bool {
	_, ok := bi.pressed[b]
	return ok
}

func (bi *ButtonInput[T]) JustPressed(b T) bool {
	_, ok := bi.justPressed[b]
	return ok
}

func (bi *ButtonInput[T]) JustReleased(b T) bool {
	_, ok := bi.justReleased[b]
	return ok
}

// AnyPressed reports whether any of bs is held
func (bi *ButtonInput[T]) AnyPressed(bs ...T) bool {
	for _, b := range bs {
		if bi.Pressed(b) {
			return true
		}
	}
	return false
}

// ClearEdges forgets just-pressed and just-released state, keeping held buttons
func (bi *ButtonInput[T]) ClearEdges() {
	clear(bi.justPressed)
	clear(bi.justReleased)
}

// Clone returns an independent copy
func (bi *ButtonInput[T]) Clone() *ButtonInput[T] {
	c := NewButtonInput[T]()
	for b := range bi.pressed {
		c.pressed[b] = struct{}{}
	}
	for b := range bi.justPressed {
		c.justPressed[b] = struct{}{}
	}
	for b := range bi.justReleased {
		c.justReleased[b] = struct{}{}
	}
	return c
}
