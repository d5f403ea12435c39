package core

import (
	"math"
	"strconv"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// RoundTo rounds x to the given number of decimal places. The exact binary
// value is rounded, so a representable tie such as 10.25 goes to the even
// digit while 9.35, stored slightly below the tie, rounds down.
func RoundTo(x float64, decimals int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	if decimals < 0 {
		scale := math.Pow(10, float64(-decimals))
		return math.RoundToEven(x/scale) * scale
	}

	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', decimals, 64), 64)
	if err != nil {
		return x
	}

	return r
}

// TruncSamples converts a duration in seconds to a sample count,
// truncating toward zero.
func TruncSamples(seconds, sampleRate float64) int {
	return int(seconds * sampleRate)
}
