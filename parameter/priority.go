package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityCursor   = 10
	PriorityLook     = 20 // Look before movement so basis vectors are current
	PriorityMovement = 30
	PriorityPhysics  = 40
	PriorityStatus   = 100 // After simulation, metrics snapshot for HUD
)
