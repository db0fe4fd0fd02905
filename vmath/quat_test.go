package vmath

import (
	"math"
	"testing"
)

const testTol = 1e-9

func TestIdentityBasis(t *testing.T) {
	q := QuatIdentity
	if !V3FApproxEqual(q.Forward(), Vec3F{0, 0, -1}, testTol) {
		t.Errorf("forward = %+v, want -Z", q.Forward())
	}
	if !V3FApproxEqual(q.Right(), Vec3F{1, 0, 0}, testTol) {
		t.Errorf("right = %+v, want +X", q.Right())
	}
	if !V3FApproxEqual(q.Up(), Vec3F{0, 1, 0}, testTol) {
		t.Errorf("up = %+v, want +Y", q.Up())
	}
}

func TestEulerYXZRoundTrip(t *testing.T) {
	cases := []struct {
		name             string
		yaw, pitch, roll float64
	}{
		{"zero", 0, 0, 0},
		{"yaw only", 1.2, 0, 0},
		{"pitch only", 0, -0.7, 0},
		{"yaw pitch", -2.5, 1.1, 0},
		{"all three", 0.4, 0.3, 0.2},
		{"near vertical", 0.9, math.Pi/2 - 0.01, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := QuatFromEulerYXZ(tc.yaw, tc.pitch, tc.roll)
			y, p, r := q.EulerYXZ()
			if !ApproxEqual(y, tc.yaw, 1e-7) || !ApproxEqual(p, tc.pitch, 1e-7) || !ApproxEqual(r, tc.roll, 1e-7) {
				t.Errorf("got (%f, %f, %f), want (%f, %f, %f)", y, p, r, tc.yaw, tc.pitch, tc.roll)
			}
			if !QApproxEqual(q, QuatFromEulerYXZ(y, p, r), 1e-9) {
				t.Error("recomposed rotation differs")
			}
		})
	}
}

func TestPositivePitchLooksUp(t *testing.T) {
	q := QuatFromEulerYXZ(0, 0.5, 0)
	if f := q.Forward(); f.Y <= 0 {
		t.Errorf("forward.Y = %f, want > 0 for positive pitch", f.Y)
	}
}

func TestPositiveYawTurnsLeft(t *testing.T) {
	q := QuatFromEulerYXZ(math.Pi/2, 0, 0)
	if !V3FApproxEqual(q.Forward(), Vec3F{-1, 0, 0}, testTol) {
		t.Errorf("forward = %+v, want -X", q.Forward())
	}
}

func TestQNormalizeDegenerate(t *testing.T) {
	if got := QNormalize(Quat{}); got != QuatIdentity {
		t.Errorf("QNormalize(zero) = %+v, want identity", got)
	}
}

func TestEulerYXZMatchesAxisProduct(t *testing.T) {
	yaw, pitch, roll := 0.8, -0.4, 0.3
	want := QMul(QMul(
		QuatFromAxisAngle(V3FUp, yaw),
		QuatFromAxisAngle(V3FRight, pitch)),
		QuatFromAxisAngle(Vec3F{0, 0, 1}, roll))
	if got := QuatFromEulerYXZ(yaw, pitch, roll); !QApproxEqual(got, want, 1e-12) {
		t.Errorf("QuatFromEulerYXZ = %+v, want Ry*Rx*Rz %+v", got, want)
	}
}

func TestQRotateQuarterTurns(t *testing.T) {
	cases := []struct {
		name string
		q    Quat
		v    Vec3F
		want Vec3F
	}{
		{"yaw left", QuatFromAxisAngle(V3FUp, math.Pi/2), V3FForward, Vec3F{-1, 0, 0}},
		{"pitch up", QuatFromAxisAngle(V3FRight, math.Pi/2), V3FForward, Vec3F{0, 1, 0}},
		{"identity", QuatIdentity, Vec3F{1, 2, 3}, Vec3F{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := QRotate(tc.q, tc.v); !V3FApproxEqual(got, tc.want, testTol) {
				t.Errorf("QRotate = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestQNormalizeRescales(t *testing.T) {
	q := QuatFromEulerYXZ(0.3, 0.2, 0)
	scaled := Quat{q.q.Scale(3)}
	if got := QNormalize(scaled); !QApproxEqual(got, q, 1e-12) {
		t.Errorf("QNormalize(3q) = %+v, want %+v", got, q)
	}
}
