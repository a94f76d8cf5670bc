package predictor

import (
	"math"
	"testing"
)

func TestAngularVelocityUniformSpacing(t *testing.T) {
	// Marks every p seconds should read exactly 1/p rotations per second.
	cases := []struct {
		times []float64
		want  float64
	}{
		{[]float64{0, 0.5, 1.0, 1.5}, 2.0},
		{[]float64{0, 0.25, 0.5}, 4.0},
		{[]float64{10, 11, 12, 13, 14}, 1.0},
	}
	for _, c := range cases {
		got := angularVelocity(c.times)
		if got != c.want {
			t.Errorf("angularVelocity(%v) = %v, want %v", c.times, got, c.want)
		}
	}
}

func TestAngularVelocityDegenerate(t *testing.T) {
	if got := angularVelocity(nil); got != 0 {
		t.Errorf("no marks should give 0 velocity, got %v", got)
	}
	if got := angularVelocity([]float64{1.0}); got != 0 {
		t.Errorf("single mark should give 0 velocity, got %v", got)
	}
	// Identical timestamps -> zero average period
	if got := angularVelocity([]float64{1.0, 1.0}); got != 0 {
		t.Errorf("zero period should give 0 velocity, got %v", got)
	}
	// Decreasing timestamps -> negative average period
	if got := angularVelocity([]float64{2.0, 1.0}); got != 0 {
		t.Errorf("negative period should give 0 velocity, got %v", got)
	}
}

func TestDecelerationConstantSpeed(t *testing.T) {
	// Evenly spaced marks mean constant velocity, so the fitted slope
	// (and hence the deceleration) should be zero.
	got := deceleration([]float64{0, 1, 2, 3})
	if math.Abs(got) > 1e-9 {
		t.Errorf("constant speed should give ~0 deceleration, got %v", got)
	}
}

func TestDecelerationSlowingRotation(t *testing.T) {
	// Widening gaps mean the rotation is slowing; the estimate must come
	// out positive.
	got := deceleration([]float64{0, 0.1, 0.25, 0.45})
	if got <= 0 {
		t.Errorf("slowing rotation should give positive deceleration, got %v", got)
	}
}

func TestDecelerationSpeedingUp(t *testing.T) {
	// Shrinking gaps mean the rotation is speeding up; the estimate is
	// negative here and gets floored later by the predictor.
	got := deceleration([]float64{0, 0.45, 0.7, 0.8})
	if got >= 0 {
		t.Errorf("accelerating rotation should give negative deceleration, got %v", got)
	}
}

func TestDecelerationDegenerate(t *testing.T) {
	if got := deceleration([]float64{0, 1}); got != 0 {
		t.Errorf("two marks should give 0 deceleration, got %v", got)
	}
	// Duplicate timestamps leave only one valid velocity sample.
	if got := deceleration([]float64{0, 0, 0, 1}); got != 0 {
		t.Errorf("single valid sample should give 0 deceleration, got %v", got)
	}
	// All gaps non-positive: no samples at all.
	if got := deceleration([]float64{3, 2, 1}); got != 0 {
		t.Errorf("no valid samples should give 0 deceleration, got %v", got)
	}
}
