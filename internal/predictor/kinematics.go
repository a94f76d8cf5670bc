package predictor

import "math"

// angularVelocity returns the average rotation frequency (rotations per
// second) implied by a sequence of mark timestamps. Fewer than two marks,
// or a non-positive average period, yields 0.
func angularVelocity(times []float64) float64 {
	if len(times) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(times); i++ {
		total += times[i] - times[i-1]
	}
	avgPeriod := total / float64(len(times)-1)
	if avgPeriod <= 0 {
		return 0
	}
	return 1 / avgPeriod
}

// deceleration estimates angular deceleration (rad/s^2) from mark
// timestamps. Each pair of consecutive marks with a positive gap gives an
// instantaneous velocity sample 2*pi/dt at the pair's midpoint time; a
// least-squares line is fitted through the samples and the negative of
// its slope is returned, so a slowing rotation reads as positive.
func deceleration(times []float64) float64 {
	if len(times) < 3 {
		return 0
	}

	var velocities, midpoints []float64
	for i := 1; i < len(times); i++ {
		dt := times[i] - times[i-1]
		if dt <= 0 {
			continue
		}
		velocities = append(velocities, 2*math.Pi/dt)
		midpoints = append(midpoints, (times[i]+times[i-1])/2)
	}

	if len(velocities) < 2 {
		return 0
	}

	n := float64(len(velocities))
	var sumX, sumY, sumXY, sumX2 float64
	for i, x := range midpoints {
		sumX += x
		sumY += velocities[i]
		sumXY += x * velocities[i]
		sumX2 += x * x
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0
	}

	slope := (n*sumXY - sumX*sumY) / denom
	return -slope
}
