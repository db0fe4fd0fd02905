package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/fps-proto/component"
	"github.com/lixenwraith/fps-proto/engine"
	"github.com/lixenwraith/fps-proto/event"
	"github.com/lixenwraith/fps-proto/input"
	"github.com/lixenwraith/fps-proto/parameter"
	"github.com/lixenwraith/fps-proto/vmath"
)

func TestMovementForwardIdentity(t *testing.T) {
	world := engine.NewWorld()
	e := spawnTestPlayer(t, world)
	sys := NewMovementSystem(world, MovementOptions{})

	tick(world, sys, vmath.Vec2F{}, input.KeyW)

	v := velocityOf(world, e)
	if !vmath.ApproxEqual(math.Hypot(v.X, v.Z), 5.0, 1e-12) {
		t.Errorf("Horizontal speed = %v, want 5", math.Hypot(v.X, v.Z))
	}
	if !vmath.ApproxEqual(v.Z, -5.0, 1e-12) || !vmath.ApproxEqual(v.X, 0, 1e-12) {
		t.Errorf("Expected velocity along -Z, got %+v", v)
	}
}

func TestMovementKeyDirections(t *testing.T) {
	tests := []struct {
		name string
		keys []input.KeyCode
		want vmath.Vec3F
	}{
		{"W", []input.KeyCode{input.KeyW}, vmath.Vec3F{Z: -5}},
		{"S", []input.KeyCode{input.KeyS}, vmath.Vec3F{Z: 5}},
		{"A", []input.KeyCode{input.KeyA}, vmath.Vec3F{X: -5}},
		{"D", []input.KeyCode{input.KeyD}, vmath.Vec3F{X: 5}},
		{"W+D normalized", []input.KeyCode{input.KeyW, input.KeyD}, vmath.Vec3F{X: 5 / math.Sqrt2, Z: -5 / math.Sqrt2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := engine.NewWorld()
			e := spawnTestPlayer(t, world)
			tick(world, NewMovementSystem(world, MovementOptions{}), vmath.Vec2F{}, tt.keys...)
			if got := velocityOf(world, e); !vmath.V3FApproxEqual(got, tt.want, 1e-9) {
				t.Errorf("velocity = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMovementFollowsYaw(t *testing.T) {
	world := engine.NewWorld()
	e := spawnTestPlayer(t, world)
	// Quarter turn left: forward becomes -X
	setRotation(world, e, vmath.QuatFromEulerYXZ(math.Pi/2, 0, 0))

	tick(world, NewMovementSystem(world, MovementOptions{}), vmath.Vec2F{}, input.KeyW)

	if got := velocityOf(world, e); !vmath.V3FApproxEqual(got, vmath.Vec3F{X: -5}, 1e-9) {
		t.Errorf("velocity = %+v, want (-5, 0, 0)", got)
	}
}

func TestMovementPitchDoesNotSlowDown(t *testing.T) {
	world := engine.NewWorld()
	e := spawnTestPlayer(t, world)
	setRotation(world, e, vmath.QuatFromEulerYXZ(0, -1.2, 0))

	tick(world, NewMovementSystem(world, MovementOptions{}), vmath.Vec2F{}, input.KeyW)

	v := velocityOf(world, e)
	if !vmath.ApproxEqual(math.Hypot(v.X, v.Z), 5, 1e-9) {
		t.Errorf("Horizontal speed = %v, want 5 regardless of pitch", math.Hypot(v.X, v.Z))
	}
	if v.Y != 0 {
		t.Errorf("Vertical velocity must stay untouched, got %v", v.Y)
	}
}

func TestMovementOpposingKeysDamp(t *testing.T) {
	world := engine.NewWorld()
	e := spawnTestPlayer(t, world)
	setVelocity(world, e, vmath.Vec3F{X: 1, Y: -2, Z: 2})

	tick(world, NewMovementSystem(world, MovementOptions{}), vmath.Vec2F{}, input.KeyW, input.KeyS)

	want := vmath.Vec3F{X: 0.8, Y: -2, Z: 1.6}
	if got := velocityOf(world, e); !vmath.V3FApproxEqual(got, want, 1e-12) {
		t.Errorf("velocity = %+v, want damped %+v", got, want)
	}
}

func TestMovementGeometricDecay(t *testing.T) {
	world := engine.NewWorld()
	e := spawnTestPlayer(t, world)
	sys := NewMovementSystem(world, MovementOptions{})

	tick(world, sys, vmath.Vec2F{}, input.KeyW, input.KeyD)
	v0 := velocityOf(world, e)

	for n := 1; n <= 20; n++ {
		tick(world, sys, vmath.Vec2F{})
		got := velocityOf(world, e)
		scale := math.Pow(0.8, float64(n))
		if !vmath.ApproxEqual(got.X, v0.X*scale, 1e-12) || !vmath.ApproxEqual(got.Z, v0.Z*scale, 1e-12) {
			t.Fatalf("Tick %d: velocity = %+v, want %+v", n, got, vmath.V3FScale(v0, scale))
		}
	}
}

func TestMovementJumpEdgeOnce(t *testing.T) {
	world := engine.NewWorld()
	e := spawnTestPlayer(t, world)
	cs := newPipeline(world, NewMovementSystem(world, MovementOptions{}))

	world.RunSafe(func() { world.Resources.Input.Keys.Press(input.KeySpace) })
	cs.Step(1)
	if got := velocityOf(world, e).Y; got != 3.3 {
		t.Fatalf("Jump velocity = %v, want exactly 3.3", got)
	}

	// Held: no new impulse
	setVelocity(world, e, vmath.Vec3F{Y: -1})
	cs.Step(3)
	if got := velocityOf(world, e).Y; got != -1 {
		t.Errorf("Holding Space must not re-trigger, got vy=%v", got)
	}

	// Release and press again: a new edge
	world.RunSafe(func() {
		world.Resources.Input.Keys.Release(input.KeySpace)
		world.Resources.Input.Keys.Press(input.KeySpace)
	})
	cs.Step(1)
	if got := velocityOf(world, e).Y; got != 3.3 {
		t.Errorf("Second press should jump again, got vy=%v", got)
	}
}

func TestMovementJumpEmitsEvent(t *testing.T) {
	world := engine.NewWorld()
	e := spawnTestPlayer(t, world)

	tick(world, NewMovementSystem(world, MovementOptions{}), vmath.Vec2F{}, input.KeySpace)

	events := world.Resources.Events.Consume()
	if len(events) != 1 || events[0].Type != event.EventPlayerJumped {
		t.Fatalf("Expected one jump event, got %+v", events)
	}
	p, ok := events[0].Payload.(*event.JumpPayload)
	if !ok || p.Entity != e || p.VelocityY != parameter.JumpImpulse {
		t.Errorf("Unexpected payload %+v", events[0].Payload)
	}
}

func TestHorizontalBasisNearVertical(t *testing.T) {
	// At the pitch limit the horizontal forward is tiny but finite
	forward, right := HorizontalBasis(vmath.QuatFromEulerYXZ(0.7, parameter.PitchLimit, 0))
	if !forward.IsFinite() || !right.IsFinite() {
		t.Fatalf("Basis must be finite, got %+v %+v", forward, right)
	}
	if m := vmath.V3FMag(forward); m != 0 && !vmath.ApproxEqual(m, 1, 1e-9) {
		t.Errorf("Forward must be unit or zero, got magnitude %v", m)
	}

	// Exactly vertical: forward has no horizontal extent and contributes nothing
	forward, right = HorizontalBasis(vmath.QuatFromAxisAngle(vmath.V3FRight, math.Pi/2))
	if forward != vmath.V3FZero {
		t.Errorf("Vertical forward should flatten to zero, got %+v", forward)
	}
	if !vmath.V3FApproxEqual(right, vmath.V3FRight, 1e-12) {
		t.Errorf("Right should be unaffected, got %+v", right)
	}
}

func TestMovementAtPitchLimitKeepsFullSpeed(t *testing.T) {
	tests := []struct {
		name string
		yaw  float64
	}{
		{"facing -Z", 0},
		{"yawed left", 0.7},
		{"yawed behind", -2.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := engine.NewWorld()
			e := spawnTestPlayer(t, world)
			setRotation(world, e, vmath.QuatFromEulerYXZ(tt.yaw, parameter.PitchLimit, 0))

			tick(world, NewMovementSystem(world, MovementOptions{}), vmath.Vec2F{}, input.KeyW)

			// The flattened forward is short but still normalizes to a unit direction
			v := velocityOf(world, e)
			want := vmath.Vec3F{X: -math.Sin(tt.yaw) * 5, Z: -math.Cos(tt.yaw) * 5}
			if !vmath.V3FApproxEqual(v, want, 1e-9) {
				t.Errorf("velocity = %+v, want %+v", v, want)
			}
			if speed := math.Hypot(v.X, v.Z); !vmath.ApproxEqual(speed, 5, 1e-9) {
				t.Errorf("horizontal speed = %v, want 5", speed)
			}
		})
	}
}

func TestMovementExactlyVerticalDamps(t *testing.T) {
	world := engine.NewWorld()
	e := spawnTestPlayer(t, world)
	setRotation(world, e, vmath.QuatFromEulerYXZ(0, math.Pi/2, 0))
	setVelocity(world, e, vmath.Vec3F{X: 1, Z: 1})

	tick(world, NewMovementSystem(world, MovementOptions{}), vmath.Vec2F{}, input.KeyW)

	v := velocityOf(world, e)
	if !v.IsFinite() {
		t.Fatalf("Velocity must stay finite, got %+v", v)
	}
	if !vmath.V3FApproxEqual(v, vmath.Vec3F{X: 0.8, Z: 0.8}, 1e-12) {
		t.Errorf("No horizontal forward: expected damping, got %+v", v)
	}
}

func TestMovementKinematic(t *testing.T) {
	world := engine.NewWorld()
	e := spawnTestPlayer(t, world)
	sys := NewMovementSystem(world, MovementOptions{Mode: MovementKinematic})

	tick(world, sys, vmath.Vec2F{}, input.KeyW, input.KeySpace)

	tr, _ := engine.GetStore[component.TransformComponent](world).Get(e)
	want := vmath.Vec3F{Y: 1, Z: -5 * testDt.Seconds()}
	if !vmath.V3FApproxEqual(tr.Translation, want, 1e-12) {
		t.Errorf("translation = %+v, want %+v", tr.Translation, want)
	}
	if v := velocityOf(world, e); v != vmath.V3FZero {
		t.Errorf("Kinematic mode must not write velocity, got %+v", v)
	}
	if world.Resources.Events.Len() != 0 {
		t.Error("Kinematic mode ignores jump")
	}
}

func TestMovementMissingPlayerIsSkipped(t *testing.T) {
	world := engine.NewWorld()
	sys := NewMovementSystem(world, MovementOptions{})
	tick(world, sys, vmath.Vec2F{}, input.KeyW, input.KeySpace)

	// Two players: ambiguous, also skipped
	a := spawnTestPlayer(t, world)
	b := spawnTestPlayer(t, world)
	tick(world, sys, vmath.Vec2F{}, input.KeyW)
	if velocityOf(world, a) != vmath.V3FZero || velocityOf(world, b) != vmath.V3FZero {
		t.Error("No player should move when the player is ambiguous")
	}
}

func TestTimeScaledDamping(t *testing.T) {
	tests := []struct {
		dt   float64
		want float64
	}{
		{1.0 / 60, 0.2},
		{1.0 / 30, 0.36},
		{0, 0},
	}
	for _, tt := range tests {
		if got := TimeScaledDamping(0.2, tt.dt, 60); !vmath.ApproxEqual(got, tt.want, 1e-12) {
			t.Errorf("TimeScaledDamping(dt=%v) = %v, want %v", tt.dt, got, tt.want)
		}
	}

	// Two ticks at 60 Hz decay the same as one tick at 30 Hz
	v := Damp(Damp(vmath.Vec3F{X: 1}, TimeScaledDamping(0.2, 1.0/60, 60)), TimeScaledDamping(0.2, 1.0/60, 60))
	w := Damp(vmath.Vec3F{X: 1}, TimeScaledDamping(0.2, 1.0/30, 60))
	if !vmath.ApproxEqual(v.X, w.X, 1e-12) {
		t.Errorf("Rate independence broken: %v vs %v", v.X, w.X)
	}
}

func TestParseMovementMode(t *testing.T) {
	for _, s := range []string{"", "velocity", "kinematic"} {
		if _, ok := ParseMovementMode(s); !ok {
			t.Errorf("ParseMovementMode(%q) rejected", s)
		}
	}
	if _, ok := ParseMovementMode("fly"); ok {
		t.Error("Unknown mode should be rejected")
	}
}
