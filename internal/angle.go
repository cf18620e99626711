package internal

import "math"

func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func RadiansToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Direction of a ray with angle incidence after bouncing off a surface with
// angle surface. All angles are in radians; the result is in [0, 2π).
func AngleReflect(incidence, surface float64) float64 {
	return NormalizeAngle(2*surface - incidence)
}

// Wrap an angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	// Mod of a value just below a multiple of 2π can round back up to 2π.
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
