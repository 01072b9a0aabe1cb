package math

import "golang.org/x/exp/constraints"

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// clampMaxFirst caps f to high and then floors it to low, so low wins
// when the range is inverted.
func clampMaxFirst(f, low, high float32) float32 {
	if f > high {
		f = high
	}
	if f < low {
		f = low
	}
	return f
}
