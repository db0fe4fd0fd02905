package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(15, 17, 26)
	RgbHUDText    = tcell.NewRGBColor(200, 200, 210)
	RgbHUDLabel   = tcell.NewRGBColor(120, 130, 150)
	RgbHUDWarn    = tcell.NewRGBColor(250, 180, 80)
	RgbPlayer     = tcell.NewRGBColor(255, 255, 255)
	RgbFallback   = tcell.NewRGBColor(180, 180, 180)
)

// meshColor resolves a "#rrggbb" mesh colour; unknown strings fall back to grey
func meshColor(hex string) tcell.Color {
	if c := tcell.GetColor(hex); c != tcell.ColorDefault {
		return c
	}
	return RgbFallback
}
