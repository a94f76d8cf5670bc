package predictor

import (
	"errors"
	"math"
)

// Direction is the rotation sense of the wheel relative to the ball.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ErrInsufficientMarks is returned when a timing sequence is too short to
// estimate any motion.
var ErrInsufficientMarks = errors.New("not enough marks to compute prediction")

// PredictForDirection projects the ball's landing pocket for one wheel
// direction. Every degenerate intermediate value has a fixed fallback, so
// the result is always a member of WheelSequence; only the top-level
// ComputePredictions enforces the minimum-marks contract.
func PredictForDirection(wheelTimes, ballTimes []float64, dir Direction) int {
	wheelOmega := 2 * math.Pi * angularVelocity(wheelTimes)
	ballOmega := 2 * math.Pi * angularVelocity(ballTimes)
	wheelAlpha := deceleration(wheelTimes)
	ballAlpha := deceleration(ballTimes)

	if wheelAlpha <= 0 {
		wheelAlpha = DefaultWheelAlpha
	}
	if ballAlpha <= 0 {
		ballAlpha = DefaultBallAlpha
	}
	if wheelOmega <= 0 {
		wheelOmega = DefaultWheelOmega
	}
	if ballOmega <= 0 {
		ballOmega = DefaultBallOmega
	}

	// The ball leaves the outer track when it slows to the critical
	// velocity set by gravity and the track slope.
	criticalVelocitySquared := Gravity * math.Tan(TrackSlopeAngle) * 0.5

	tDrop := DefaultDropTime
	if ballOmega > math.Sqrt(criticalVelocitySquared) {
		tDrop = (ballOmega - math.Sqrt(criticalVelocitySquared)) / ballAlpha
	}
	if tDrop < 0 {
		tDrop = DefaultDropTime
	}
	if tDrop > MaxDropTime {
		tDrop = LongDropTime
	}

	thetaBall := ballOmega*tDrop - 0.5*ballAlpha*tDrop*tDrop
	thetaWheel := wheelOmega*tDrop - 0.5*wheelAlpha*tDrop*tDrop

	if math.IsNaN(thetaBall) || math.IsInf(thetaBall, 0) {
		thetaBall = 2 * math.Pi * 3
	}
	if math.IsNaN(thetaWheel) || math.IsInf(thetaWheel, 0) {
		thetaWheel = 2 * math.Pi * 2
	}

	var relativeAngle float64
	directionOffset := 0
	if dir == DirectionLeft {
		relativeAngle = (thetaBall + thetaWheel) / (2 * math.Pi)
		directionOffset = LeftDirectionOffset
	} else {
		relativeAngle = (thetaBall - thetaWheel) / (2 * math.Pi)
	}

	// Reduce before truncating: the angle can exceed the float's integer
	// range for very small mark gaps, and an out-of-range float-to-int
	// conversion would wrap negative.
	pocketOffset := int(math.Mod(math.Abs(relativeAngle)*float64(NumPockets), float64(NumPockets)))
	finalIndex := (pocketOffset + ScatterOffset + directionOffset) % NumPockets
	return WheelSequence[finalIndex]
}

// ComputePredictions runs the drop-point model once per wheel direction.
// It fails before any numeric work when either timing sequence has fewer
// than two marks.
func ComputePredictions(wheelTimes, ballTimes []float64) (left, right int, err error) {
	if len(wheelTimes) < 2 || len(ballTimes) < 2 {
		return 0, 0, ErrInsufficientMarks
	}
	left = PredictForDirection(wheelTimes, ballTimes, DirectionLeft)
	right = PredictForDirection(wheelTimes, ballTimes, DirectionRight)
	return left, right, nil
}
