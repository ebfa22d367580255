package collapse

import "math"

// AutoDuration returns a transition duration in milliseconds for moving
// across height pixels. It grows with the distance but flattens out, so
// tall content does not take forever to open.
//
// Zero, negative and non-finite heights return 0. Heights too large to
// express in milliseconds return math.MaxInt.
func AutoDuration(height float64) int {
	if !(height > 0) || math.IsInf(height, 0) {
		return 0
	}

	constant := height / 36
	duration := math.Round((4 + 15*math.Pow(constant, 0.25) + constant/5) * 10)

	// saturate instead of wrapping on int conversion
	if math.IsInf(duration, 1) || duration >= math.MaxInt {
		return math.MaxInt
	}

	return int(duration)
}
