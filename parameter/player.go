package parameter

import "math"

// Look
const (
	// DefaultSensitivityYaw scales horizontal pointer delta to yaw radians
	DefaultSensitivityYaw = 0.003

	// DefaultSensitivityPitch scales vertical pointer delta to pitch radians
	DefaultSensitivityPitch = 0.002

	// PitchLimit keeps the view off vertical so yaw never flips
	PitchLimit = math.Pi/2 - 0.01
)

// Movement
const (
	DefaultMoveSpeed = 5.0

	// JumpImpulse is the vertical velocity set on a jump edge
	JumpImpulse = 3.3

	// DampingFactor is the per-tick lerp weight toward zero horizontal velocity
	DampingFactor = 0.2

	// DampingReferenceRate is the tick rate at which time-scaled damping equals DampingFactor
	DampingReferenceRate = 60.0
)

// Player Body
const (
	PlayerSpawnX = 0.0
	PlayerSpawnY = 1.0
	PlayerSpawnZ = 0.0

	PlayerCapsuleRadius = 0.5
	PlayerCapsuleLength = 1.2
	PlayerMass          = 70.0
)

// Cameras & View Model
const (
	WorldModelFOVDegrees = 90.0
	ViewModelFOVDegrees  = 70.0
	ViewModelCameraOrder = 1

	// ViewModelLayer holds entities only the view-model camera draws
	ViewModelLayer = 1

	ArmOffsetX = 0.2
	ArmOffsetY = -0.1
	ArmOffsetZ = -0.25
	ArmSizeX   = 0.1
	ArmSizeY   = 0.1
	ArmSizeZ   = 0.5
	ArmColor   = "#99f6e4" // tailwind teal-200
)
