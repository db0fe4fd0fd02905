// Package render draws the simulation to the terminal: a top-down minimap of the
// level and a HUD fed by the status registry.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fps-proto/component"
	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/parameter"
	"github.com/lixenwraith/fps-proto/status"
)

// Heading arrows clockwise from screen-up (world -Z)
var headingArrows = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	world  *engine.World
	stores engine.ComponentStore
	reg    *status.Registry

	width, height int
}

// NewTerminalRenderer creates a renderer for world on screen
func NewTerminalRenderer(screen tcell.Screen, world *engine.World) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		world:  world,
		stores: engine.GetComponentStore(world),
		reg:    world.Resources.Status,
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// RenderFrame draws one frame; caller holds the world update lock
func (r *TerminalRenderer) RenderFrame() {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawMinimap(defaultStyle)
	r.drawHUD(defaultStyle)

	r.screen.Show()
}

// minimap maps world XZ onto the cells above the HUD.
// Cells are roughly twice as tall as wide, so X uses two columns per row unit.
type minimap struct {
	originX, originY int
	scale            float64
	cols, rows       int
}

func (r *TerminalRenderer) layout() minimap {
	rows := r.height - parameter.HUDRows
	if rows < 1 {
		rows = 1
	}
	scale := math.Min(float64(r.width)/(parameter.GroundSize*2), float64(rows)/parameter.GroundSize)
	return minimap{
		originX: r.width / 2,
		originY: rows / 2,
		scale:   scale,
		cols:    r.width,
		rows:    rows,
	}
}

// cell returns the screen cell for world (x, z); ok is false outside the map area
func (m minimap) cell(x, z float64) (int, int, bool) {
	cx := m.originX + int(math.Round(x*m.scale*2))
	cy := m.originY + int(math.Round(z*m.scale))
	if cx < 0 || cx >= m.cols || cy < 0 || cy >= m.rows {
		return 0, 0, false
	}
	return cx, cy, true
}

func (r *TerminalRenderer) drawMinimap(defaultStyle tcell.Style) {
	m := r.layout()
	if m.scale <= 0 {
		return
	}

	// Meshes first: planes as a filled area, other shapes as a single glyph
	for _, e := range r.world.Query().With(r.stores.Mesh).With(r.stores.Transform).Execute() {
		if r.stores.Parent.Has(e) {
			continue // view-model parts are not on the map
		}
		mesh, _ := r.stores.Mesh.Get(e)
		tr, _ := r.stores.Transform.Get(e)
		style := defaultStyle.Foreground(meshColor(mesh.Color))

		if mesh.Shape == component.MeshPlane {
			r.fillArea(m, tr.Translation.X, tr.Translation.Z, mesh.Size.X/2, mesh.Size.Z/2, style)
			continue
		}
		if x, y, ok := m.cell(tr.Translation.X, tr.Translation.Z); ok {
			r.screen.SetContent(x, y, parameter.MinimapCubeChar, nil, style)
		}
	}

	for _, e := range r.world.Query().With(r.stores.PointLight).With(r.stores.Transform).Execute() {
		light, _ := r.stores.PointLight.Get(e)
		tr, _ := r.stores.Transform.Get(e)
		if x, y, ok := m.cell(tr.Translation.X, tr.Translation.Z); ok {
			r.screen.SetContent(x, y, parameter.MinimapLightChar, nil, defaultStyle.Foreground(meshColor(light.Color)))
		}
	}

	if e, ok := r.world.Query().With(r.stores.Player).With(r.stores.Transform).Single(); ok {
		tr, _ := r.stores.Transform.Get(e)
		if x, y, ok := m.cell(tr.Translation.X, tr.Translation.Z); ok {
			fwd := tr.Rotation.Forward()
			r.screen.SetContent(x, y, HeadingArrow(fwd.X, fwd.Z), nil, defaultStyle.Foreground(RgbPlayer).Bold(true))
		}
	}
}

func (r *TerminalRenderer) fillArea(m minimap, cx, cz, hx, hz float64, style tcell.Style) {
	x0, y0 := m.clampedCell(cx-hx, cz-hz)
	x1, y1 := m.clampedCell(cx+hx, cz+hz)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, parameter.MinimapGroundChar, nil, style)
		}
	}
}

func (m minimap) clampedCell(x, z float64) (int, int) {
	cx := m.originX + int(math.Round(x*m.scale*2))
	cy := m.originY + int(math.Round(z*m.scale))
	cx = max(0, min(cx, m.cols-1))
	cy = max(0, min(cy, m.rows-1))
	return cx, cy
}

// HeadingArrow picks the arrow for a horizontal facing; screen-up is world -Z
func HeadingArrow(fx, fz float64) rune {
	if fx == 0 && fz == 0 {
		return headingArrows[0]
	}
	angle := math.Atan2(fx, -fz) // clockwise from screen-up
	sector := int(math.Round(angle/(math.Pi/4))) & 7
	return headingArrows[sector]
}

func (r *TerminalRenderer) drawHUD(defaultStyle tcell.Style) {
	top := r.height - parameter.HUDRows
	if top < 0 {
		top = 0
	}
	label := defaultStyle.Foreground(RgbHUDLabel)
	text := defaultStyle.Foreground(RgbHUDText)
	warn := defaultStyle.Foreground(RgbHUDWarn)

	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, top, '─', nil, label)
	}

	if !r.reg.Bools.Get("player.present").Load() {
		r.drawText(1, top+1, "no player", warn)
		return
	}

	f := func(key string) float64 { return r.reg.Floats.Get(key).Get() }

	r.drawText(1, top+1, fmt.Sprintf("pos   %7.2f %7.2f %7.2f", f("player.x"), f("player.y"), f("player.z")), text)
	r.drawText(1, top+2, fmt.Sprintf("look  yaw %7.1f°  pitch %6.1f°", f("player.yaw_deg"), f("player.pitch_deg")), text)
	r.drawText(1, top+3, fmt.Sprintf("vel   speed %5.2f  vy %6.2f  mode %s",
		f("player.speed"), f("player.vy"), r.reg.Strings.Get("movement.mode").Load()), text)

	state := "airborne"
	if r.reg.Bools.Get("player.grounded").Load() {
		state = "grounded"
	}
	capture := "captured"
	captureStyle := text
	if !r.reg.Bools.Get("cursor.captured").Load() {
		capture = "released (Esc)"
		captureStyle = warn
	}
	x := r.drawText(1, top+4, state+"  look ", text)
	x = r.drawText(x, top+4, capture, captureStyle)
	r.drawText(x, top+4, fmt.Sprintf("  tick %d", r.reg.Ints.Get("engine.ticks").Load()), label)

	r.drawText(1, top+5, "WASD move  Space jump  mouse/arrows look  Esc capture  q quit", label)
}

// drawText writes s from (x, y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width || y >= r.height {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
