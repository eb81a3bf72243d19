package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Pulse is the click feedback scale used by UI widgets: 1.3 right after a
// click, decaying back to 1.
func Pulse(elapsedSeconds float64) float64 {
	if elapsedSeconds < 0 {
		return 1
	}
	return 1.0 + 0.3*math.Exp(-elapsedSeconds*8)
}
