package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FindNearest returns the index of the element closest to value. Ties resolve
// to the lowest index. Returns -1 for an empty slice.
func FindNearest(values []float64, value float64) int {
	if len(values) == 0 {
		return -1
	}

	dist := make([]float64, len(values))
	for i, v := range values {
		dist[i] = math.Abs(v - value)
	}

	return floats.MinIdx(dist)
}
