package kinetic

import (
	"math"
	"testing"
)

func TestCursorFollowerConverges(t *testing.T) {
	f := NewCursorFollower()
	f.Update(Vec2{0, 0}, CursorDefault)
	if f.Position() != (Vec2{0, 0}) || f.Scale() != 1 {
		t.Fatalf("first update: %v scale %v", f.Position(), f.Scale())
	}

	target := Vec2{300, -120}
	f.Update(target, CursorGrab)
	if p := f.Position(); p == target {
		t.Error("follower should trail, not jump")
	}
	for i := 0; i < 120; i++ {
		f.Update(target, CursorGrab)
	}
	if p := f.Position(); math.Abs(p.X-target.X) > 0.5 || math.Abs(p.Y-target.Y) > 0.5 {
		t.Errorf("position = %v, want ~%v", p, target)
	}
	if math.Abs(f.Scale()-2) > 0.01 {
		t.Errorf("scale = %v, want ~2", f.Scale())
	}
	if f.Affordance() != CursorGrab {
		t.Errorf("affordance = %s", f.Affordance())
	}

	for i := 0; i < 120; i++ {
		f.Update(target, CursorDefault)
	}
	if math.Abs(f.Scale()-1) > 0.01 {
		t.Errorf("scale = %v, want ~1", f.Scale())
	}
}

func TestCursorFollowerReset(t *testing.T) {
	f := NewCursorFollower()
	f.Update(Vec2{10, 10}, CursorPointer)
	f.Update(Vec2{50, 50}, CursorPointer)
	f.reset()
	if f.Scale() != 1 || f.Position() != (Vec2{}) || f.Affordance() != CursorDefault {
		t.Errorf("reset left %v scale %v", f.Position(), f.Scale())
	}
	// Placed directly again after a reset.
	f.Update(Vec2{80, 90}, CursorDefault)
	if p := f.Position(); math.Abs(p.X-80) > 1e-9 || math.Abs(p.Y-90) > 1e-9 {
		t.Errorf("position after reset = %v", p)
	}
}
