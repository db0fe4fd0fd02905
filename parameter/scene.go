package parameter

// Ground
const (
	GroundSize      = 20.0
	GroundThickness = 0.1
	GroundColor     = "#e1ed5f"
)

// Cube Grid
const (
	CubeGridMin    = -2
	CubeGridMax    = 2
	CubeSpacing    = 2.0
	CubeSize       = 1.0
	CubeRestHeight = 0.5
	CubeColor      = "#61cbe8"
)

// Light
const (
	LightX     = -2.0
	LightY     = 5.0
	LightZ     = -0.75
	LightColor = "#fda4af" // tailwind rose-300
)
