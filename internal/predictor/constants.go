package predictor

// Physical constants for the drop-point model.
// These MUST match the constants in the browser-side tracker model exactly.

const (
	Gravity         = 9.81 // m/s^2
	TrackSlopeAngle = 0.02 // outer track slope, radians

	ScatterOffset       = 5  // empirical ball bounce/scatter correction, in pockets
	LeftDirectionOffset = 12 // extra pocket offset when the wheel spins left

	// Fallbacks applied when an estimate is degenerate or non-positive.
	DefaultWheelAlpha = 0.1 // rad/s^2
	DefaultBallAlpha  = 0.1 // rad/s^2
	DefaultWheelOmega = 1.0 // rad/s
	DefaultBallOmega  = 2.0 // rad/s

	DefaultDropTime = 3.0  // seconds
	MaxDropTime     = 10.0 // raw estimates above this are treated as runaway
	LongDropTime    = 5.0  // substitute for runaway estimates
)

// WheelSequence is the physical ordering of the 37 numbered pockets around
// a standard single-zero wheel, starting at the zero.
var WheelSequence = [37]int{
	0, 32, 15, 19, 4, 21, 2, 25, 17, 34, 6, 27, 13,
	36, 11, 30, 8, 23, 10, 5, 24, 16, 33, 1, 20,
	14, 31, 9, 22, 18, 29, 7, 28, 12, 35, 3, 26,
}

// NumPockets is the pocket count of a single-zero wheel.
const NumPockets = len(WheelSequence)
