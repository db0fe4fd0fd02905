// Package input holds device-independent input state: named physical keys with
// pressed/just-pressed semantics and accumulated pointer motion.
package input

// KeyCode names a physical key the simulation reads
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyEscape
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyW:       "W",
	KeyA:       "A",
	KeyS:       "S",
	KeyD:       "D",
	KeySpace:   "Space",
	KeyEscape:  "Escape",
}

func (k KeyCode) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return keyNames[KeyUnknown]
}
