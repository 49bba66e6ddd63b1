package pageflip

import "math"

// NormalizeAngle folds deg (degrees) into [-180, 180], keeping it congruent
// modulo 360. The value is first folded into [-360, 360] and then into
// [-180, 180]. Non-finite input yields NaN.
func NormalizeAngle(deg float64) float64 {
	if deg < -360 || deg > 360 {
		// Same result as repeatedly stepping by 360, without the loop cost
		// for large magnitudes. Mod keeps the sign of deg.
		deg = math.Mod(deg, 360)
	}
	if deg > 180 {
		deg -= 360
	} else if deg < -180 {
		deg += 360
	}
	return deg
}

// Clamp01 clamps v into [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
