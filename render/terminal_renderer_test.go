package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/input"
	"github.com/lixenwraith/fps-proto/parameter"
	"github.com/lixenwraith/fps-proto/scene"
	"github.com/lixenwraith/fps-proto/system"
	"github.com/lixenwraith/fps-proto/vmath"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText returns the runes of row y as a string
func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) > 0 {
			sb.WriteRune(c.Runes[0])
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

func findRune(screen tcell.SimulationScreen, r rune) (int, int, bool) {
	cells, w, _ := screen.GetContents()
	for i, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == r {
			return i % w, i / w, true
		}
	}
	return 0, 0, false
}

func TestRenderFrameDrawsSceneAndHUD(t *testing.T) {
	screen := newTestScreen(t, 80, 30)
	world := engine.NewWorld()
	scene.SpawnEnvironment(world)
	scene.SpawnPlayer(world, scene.PlayerOptions{})

	status := system.NewStatusSystem(world)
	status.Update(engine.NewTickContext(world, parameter.FrameUpdateInterval, 1, input.Snapshot{}))

	r := NewTerminalRenderer(screen, world)
	world.RunSafe(r.RenderFrame)

	// Player at origin facing -Z is drawn at the map centre as an up arrow
	x, y, ok := findRune(screen, '↑')
	if !ok {
		t.Fatal("Player marker not drawn")
	}
	rows := 30 - parameter.HUDRows
	if x != 40 || y != rows/2 {
		t.Errorf("Player marker at (%d,%d), want (40,%d)", x, y, rows/2)
	}

	if _, _, ok := findRune(screen, parameter.MinimapCubeChar); !ok {
		t.Error("Cubes not drawn")
	}
	if _, _, ok := findRune(screen, parameter.MinimapLightChar); !ok {
		t.Error("Light not drawn")
	}

	hud := rowText(screen, rows+1)
	if !strings.Contains(hud, "pos") || !strings.Contains(hud, "1.00") {
		t.Errorf("HUD position row = %q", hud)
	}
	if line := rowText(screen, rows+4); !strings.Contains(line, "captured") {
		t.Errorf("HUD capture row = %q", line)
	}
}

func TestRenderFrameWithoutPlayer(t *testing.T) {
	screen := newTestScreen(t, 60, 20)
	world := engine.NewWorld()
	r := NewTerminalRenderer(screen, world)
	world.RunSafe(r.RenderFrame)

	if row := rowText(screen, 20-parameter.HUDRows+1); !strings.Contains(row, "no player") {
		t.Errorf("Expected placeholder, got %q", row)
	}
}

func TestHeadingArrow(t *testing.T) {
	tests := []struct {
		yawDeg float64
		want   rune
	}{
		{0, '↑'},
		{-90, '→'},
		{90, '←'},
		{180, '↓'},
		{-45, '↗'},
		{135, '↙'},
	}
	for _, tt := range tests {
		fwd := vmath.QuatFromEulerYXZ(vmath.DegToRad(tt.yawDeg), 0, 0).Forward()
		if got := HeadingArrow(fwd.X, fwd.Z); got != tt.want {
			t.Errorf("yaw %v: got %c, want %c", tt.yawDeg, got, tt.want)
		}
	}
}
