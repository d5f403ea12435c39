package time

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DC returns the mean (DC offset) of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Moments returns the mean and population variance of the signal using
// Welford's online algorithm for numerical stability.
func Moments(signal []float64) (mean, variance float64) {
	n := len(signal)
	if n == 0 {
		return 0, 0
	}

	var m2 float64

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return mean, m2 / float64(n)
}

// PopStdDev returns the population standard deviation (divisor n).
func PopStdDev(signal []float64) float64 {
	_, variance := Moments(signal)
	return math.Sqrt(variance)
}

// PeakToPeak returns max(signal) - min(signal), or 0 for an empty signal.
func PeakToPeak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return floats.Max(signal) - floats.Min(signal)
}

// Median returns the middle value of the sorted signal. For an even number of
// samples it is the mean of the two middle values. Returns NaN when empty.
func Median(signal []float64) float64 {
	n := len(signal)
	if n == 0 {
		return math.NaN()
	}

	sorted := append([]float64(nil), signal...)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}
