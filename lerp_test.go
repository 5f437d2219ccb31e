package vroom

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	const step = 1.0 / 60
	tests := []struct {
		name          string
		value, target float64
		f             Factor
		want          float64
	}{
		{"instant returns full distance", 0, 100, Instant, 100},
		{"instant negative", 50, -50, Instant, -100},
		{"factor 0.5 at 60 tps", 0, 120, 0.5, 120 * 0.5 * (step * 10)},
		{"factor 1 at 60 tps", 0, 60, 1, 10},
		{"below threshold snaps", 10, 10.0005, 0.5, 0.0005},
		{"already there", 7, 7, 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(step, tt.value, tt.target, tt.f)
			if !approxEqual(got, tt.want, epsilon) {
				t.Errorf("Lerp(%v, %v, %v, %v) = %v, want %v", step, tt.value, tt.target, tt.f, got, tt.want)
			}
		})
	}
}

func TestLerpLinearInStep(t *testing.T) {
	a := Lerp(0.01, 0, 100, 0.3)
	b := Lerp(0.02, 0, 100, 0.3)
	if !approxEqual(b, 2*a, epsilon) {
		t.Errorf("doubling step should double the nudge: %v vs %v", a, b)
	}
}

func TestLerpConverges(t *testing.T) {
	const step = 1.0 / 60
	for _, f := range []Factor{0.05, 0.2, 0.5, 1} {
		v, target := 0.0, 250.0
		reached := false
		for i := 0; i < 100_000; i++ {
			v += Lerp(step, v, target, f)
			if v == target {
				reached = true
				break
			}
		}
		if !reached {
			t.Errorf("factor %v: value %v never reached target %v exactly", f, v, target)
		}
	}
}

func TestLerpSnapIsExact(t *testing.T) {
	v := 99.9995
	v += Lerp(1.0/60, v, 100, 0.1)
	if v != 100 {
		t.Errorf("v = %v, want exactly 100", v)
	}
	if math.Abs(Lerp(1.0/60, 100, 100, 0.1)) != 0 {
		t.Error("lerp at target should be zero")
	}
}

func TestLerpVec(t *testing.T) {
	got := LerpVec(1.0/60, Vec2{0, 10}, Vec2{60, 10}, 1)
	if !approxEqual(got.X, 10, epsilon) || got.Y != 0 {
		t.Errorf("LerpVec = %v, want {10 0}", got)
	}
}
