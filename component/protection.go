package component

// ProtectionFlags defines immunity to world operations
type ProtectionFlags uint8

const (
	// ProtectNone provides no immunity (default)
	ProtectNone ProtectionFlags = 0

	// ProtectFromDestroy makes World.DestroyEntity a no-op for the entity
	ProtectFromDestroy ProtectionFlags = 1 << iota

	// ProtectAll is used for the player, which lives for the process lifetime
	ProtectAll ProtectionFlags = 0xFF
)

// Has checks if a specific protection flag is set
func (p ProtectionFlags) Has(flag ProtectionFlags) bool {
	return p&flag != 0
}

// ProtectionComponent marks entities the world must not destroy
type ProtectionComponent struct {
	Mask ProtectionFlags
}
