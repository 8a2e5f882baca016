package mcg

import (
	"math"
)

// round rounds half-way cases towards positive infinity, so that coordinates snap identically
// regardless of sign.
func round(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

func sign[T int | int64 | float64](x T) int {
	if x < 0 {
		return -1
	} else if 0 < x {
		return 1
	}
	return 0
}

// acos clamps x to [-1,1] before taking the inverse cosine.
func acos(x float64) float64 {
	return math.Acos(math.Max(-1.0, math.Min(1.0, x)))
}

// inRange is true when x is in [lo,hi].
func inRange(x, lo, hi int64) bool {
	return lo <= x && x <= hi
}

// angleNorm returns the angle theta in the range [0,2PI).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	return theta
}
