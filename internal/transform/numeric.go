package transform

import (
	"math"

	"golang.org/x/exp/constraints"
)

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite[T constraints.Float](vs ...T) bool {
	for _, v := range vs {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Round maps a view coordinate to the nearest cell index.
func Round[T constraints.Float](v T) int {
	return int(math.Round(float64(v)))
}
