package input

import "github.com/lixenwraith/fps-proto/vmath"

// MouseMotion accumulates pointer movement between ticks
type MouseMotion struct {
	delta vmath.Vec2F
}

// Accumulate adds a raw motion sample (+X right, +Y down)
func (m *MouseMotion) Accumulate(dx, dy float64) {
	m.delta.X += dx
	m.delta.Y += dy
}

// Delta returns the motion accumulated since the last Reset; zero when idle
func (m *MouseMotion) Delta() vmath.Vec2F {
	return m.delta
}

func (m *MouseMotion) Reset() {
	m.delta = vmath.Vec2F{}
}
