package parameter

// Physics Stand-in
const (
	// Gravity is the vertical acceleration applied to dynamic bodies
	Gravity = -9.81

	// ContactSlop is the penetration tolerated before push-out
	ContactSlop = 1e-4

	// GroundedTolerance is the upward normal threshold for counting a contact as ground
	GroundedTolerance = 0.5

	// CubeDensity converts cube volume to mass
	CubeDensity = 50.0
)
