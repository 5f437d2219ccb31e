package vroom

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenVecReachesTarget(t *testing.T) {
	v := Vec2{0, 10}
	g := TweenVec(&v, Vec2{100, -10}, 1, ease.Linear)

	g.Update(0.5)
	if !approxEqual(v.X, 50, 1e-3) || !approxEqual(v.Y, 0, 1e-3) {
		t.Errorf("halfway = %v, want {50 0}", v)
	}
	if g.Done {
		t.Error("Done before duration elapsed")
	}

	g.Update(0.6)
	if !approxEqual(v.X, 100, 1e-3) || !approxEqual(v.Y, -10, 1e-3) {
		t.Errorf("end = %v, want {100 -10}", v)
	}
	if !g.Done {
		t.Error("Done not set after duration")
	}
}

func TestTweenFloat(t *testing.T) {
	f := 1.0
	g := TweenFloat(&f, 0, 0.25, ease.Linear)
	for i := 0; i < 30 && !g.Done; i++ {
		g.Update(1.0 / 60)
	}
	if !g.Done {
		t.Fatal("tween never finished")
	}
	if !approxEqual(f, 0, 1e-3) {
		t.Errorf("f = %v, want 0", f)
	}

	// Further updates on a finished group are no-ops.
	f = 42
	g.Update(1)
	if f != 42 {
		t.Errorf("finished group wrote %v", f)
	}
}

func TestTweenBindToStopsOnDelete(t *testing.T) {
	reg := NewRegistry(DefaultMaxLayers)
	owner := reg.Register(&Entity{})

	v := Vec2{}
	g := TweenVec(&v, Vec2{10, 10}, 1, ease.Linear).BindTo(reg, owner)
	g.Update(0.1)
	if v.X == 0 {
		t.Fatal("bound tween did not advance while owner exists")
	}

	reg.Delete(owner)
	before := v
	g.Update(0.1)
	if !g.Done {
		t.Error("Done not set after owner deleted")
	}
	if v != before {
		t.Errorf("tween wrote %v after owner deleted", v)
	}
}
