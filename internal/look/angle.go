package look

import "math"

// NormalizeAngle folds an angle in degrees into (-180, 180].
func NormalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return deg
	}
	// Subtracting 360 from a very large float is a no-op, so bring it
	// near the range first.
	if math.Abs(deg) > 1e6 {
		deg = math.Mod(deg, 360)
	}
	for deg > 180 {
		deg -= 360
	}
	for deg <= -180 {
		deg += 360
	}
	return deg
}

// DeltaAngle returns the shortest signed rotation from a to b in degrees.
func DeltaAngle(a, b float64) float64 {
	return NormalizeAngle(b - a)
}
