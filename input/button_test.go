package input

import "testing"

func TestButtonInputEdges(t *testing.T) {
	bi := NewButtonInput[KeyCode]()

	bi.Press(KeySpace)
	if !bi.Pressed(KeySpace) || !bi.JustPressed(KeySpace) {
		t.Fatal("first press should be held and just pressed")
	}

	bi.ClearEdges()
	bi.Press(KeySpace) // still held, no new edge
	if !bi.Pressed(KeySpace) {
		t.Error("key should remain held")
	}
	if bi.JustPressed(KeySpace) {
		t.Error("repeated press while held must not create an edge")
	}

	bi.Release(KeySpace)
	if bi.Pressed(KeySpace) || !bi.JustReleased(KeySpace) {
		t.Error("release should clear level and set released edge")
	}

	bi.ClearEdges()
	bi.Press(KeySpace)
	if !bi.JustPressed(KeySpace) {
		t.Error("press after release should be a new edge")
	}
}

func TestButtonInputReleaseUnheld(t *testing.T) {
	bi := NewButtonInput[KeyCode]()
	bi.Release(KeyW)
	if bi.JustReleased(KeyW) {
		t.Error("releasing an unheld key must not create an edge")
	}
}

func TestButtonInputCloneIndependent(t *testing.T) {
	bi := NewButtonInput[KeyCode]()
	bi.Press(KeyW)
	c := bi.Clone()
	bi.Release(KeyW)
	bi.ClearEdges()

	if !c.Pressed(KeyW) || !c.JustPressed(KeyW) {
		t.Error("clone should keep state captured at clone time")
	}
}

func TestStateSnapshotAndEndTick(t *testing.T) {
	s := NewState()
	s.Keys.Press(KeyD)
	s.Mouse.Accumulate(3, -2)
	s.Mouse.Accumulate(1, 1)

	snap := s.Snapshot()
	if !snap.Pressed(KeyD) || !snap.JustPressed(KeyD) {
		t.Error("snapshot should see D pressed this tick")
	}
	if snap.MouseDelta.X != 4 || snap.MouseDelta.Y != -1 {
		t.Errorf("delta = %+v, want (4,-1)", snap.MouseDelta)
	}

	s.EndTick()
	next := s.Snapshot()
	if !next.Pressed(KeyD) {
		t.Error("held key should survive EndTick")
	}
	if next.JustPressed(KeyD) {
		t.Error("edge should be consumed by EndTick")
	}
	if !next.MouseDelta.IsZero() {
		t.Errorf("delta should reset, got %+v", next.MouseDelta)
	}
}

func TestZeroSnapshot(t *testing.T) {
	var snap Snapshot
	if snap.Pressed(KeyW) || snap.JustPressed(KeySpace) {
		t.Error("zero snapshot should report nothing pressed")
	}
}
