package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quat is a unit rotation quaternion backed by mgl64
type Quat struct {
	q mgl64.Quat
}

// QuatIdentity is the zero rotation
var QuatIdentity = Quat{mgl64.QuatIdent()}

// QuatFromAxisAngle builds a rotation of angle radians about a unit axis
func QuatFromAxisAngle(axis Vec3F, angle float64) Quat {
	return Quat{mgl64.QuatRotate(angle, axis.mgl())}
}

// QuatFromEulerYXZ composes yaw (about Y), then pitch (about X), then roll (about Z):
// q = Ry(yaw) * Rx(pitch) * Rz(roll)
func QuatFromEulerYXZ(yaw, pitch, roll float64) Quat {
	return Quat{mgl64.AnglesToQuat(yaw, pitch, roll, mgl64.YXZ)}
}

// EulerYXZ extracts (yaw, pitch, roll) such that QuatFromEulerYXZ reproduces q.
// Pitch is in [-π/2, π/2]; yaw and roll in (-π, π]
func (q Quat) EulerYXZ() (yaw, pitch, roll float64) {
	w, x, y, z := q.q.W, q.q.V.X(), q.q.V.Y(), q.q.V.Z()

	// Rotation matrix entries needed for the YXZ decomposition
	m02 := 2 * (x*z + w*y)
	m22 := 1 - 2*(x*x+y*y)
	m12 := 2 * (y*z - w*x)
	m10 := 2 * (x*y + w*z)
	m11 := 1 - 2*(x*x+z*z)

	pitch = math.Asin(Clamp(-m12, -1, 1))
	yaw = math.Atan2(m02, m22)
	roll = math.Atan2(m10, m11)
	return yaw, pitch, roll
}

// QMul returns the Hamilton product a*b (apply b, then a)
func QMul(a, b Quat) Quat {
	return Quat{a.q.Mul(b.q)}
}

// QNormalize rescales q to unit length; a degenerate quaternion becomes identity
func QNormalize(q Quat) Quat {
	n := q.q.Len()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return QuatIdentity
	}
	return Quat{q.q.Normalize()}
}

// QRotate applies q to v
func QRotate(q Quat, v Vec3F) Vec3F {
	return v3fFromMgl(q.q.Rotate(v.mgl()))
}

// Forward is the rotated -Z axis
func (q Quat) Forward() Vec3F {
	return QRotate(q, V3FForward)
}

// Right is the rotated +X axis
func (q Quat) Right() Vec3F {
	return QRotate(q, V3FRight)
}

// Up is the rotated +Y axis
func (q Quat) Up() Vec3F {
	return QRotate(q, V3FUp)
}

// QApproxEqual treats q and -q as the same rotation
func QApproxEqual(a, b Quat, tol float64) bool {
	return math.Abs(math.Abs(a.q.Dot(b.q))-1) <= tol
}
