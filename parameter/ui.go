package parameter

import "time"

// Terminal Input
const (
	// DefaultInitialHoldWindow holds a fresh press past the OS delay before the first auto-repeat
	DefaultInitialHoldWindow = 750 * time.Millisecond

	// DefaultHoldWindow is how long a repeating key counts as held after its last repeat
	DefaultHoldWindow = 250 * time.Millisecond

	// DefaultMouseCellScale converts terminal cells to approximate pointer pixels
	DefaultMouseCellScale = 8.0

	// DefaultArrowLookStep is the pointer delta injected per arrow key press
	DefaultArrowLookStep = 40.0
)

// HUD
const (
	HUDRows = 6

	MinimapGroundChar = '·'
	MinimapCubeChar   = '■'
	MinimapLightChar  = '*'
)
