package vroom

import "math"

// Factor is an interpolation fraction. Instant (the zero value) snaps the
// whole remaining distance in one step.
type Factor float64

// Instant makes Lerp return the full remaining distance.
const Instant Factor = 0

// snapThreshold is the remaining distance below which Lerp stops nudging and
// closes the gap.
const snapThreshold = 0.001

// Lerp returns the amount to add to value this step to move it toward target.
//
// The nudge is (target-value) * f * (step*10): linear in step and calibrated
// so a step of 1/60 moves a sixth of f. It is not exponential smoothing.
// When f is Instant, or the remaining distance is below 0.001, the full
// remaining distance is returned so the value always converges.
func Lerp(step, value, target float64, f Factor) float64 {
	diff := target - value
	if f == Instant || math.Abs(diff) < snapThreshold {
		return diff
	}
	return diff * float64(f) * (step * 10)
}

// LerpVec applies Lerp independently to each axis.
func LerpVec(step float64, value, target Vec2, f Factor) Vec2 {
	return Vec2{
		X: Lerp(step, value.X, target.X, f),
		Y: Lerp(step, value.Y, target.Y, f),
	}
}
