package peaks

import (
	"fmt"
	"math"
)

// Prominences returns the topographic prominence of each peak index.
//
// From a peak the search walks outward in both directions until it meets a
// strictly higher sample or the signal edge; the lowest sample on each side
// is that side's base. Prominence is the peak height minus the higher base.
func Prominences(signal []float64, indices []int) ([]float64, error) {
	out := make([]float64, len(indices))

	for n, peak := range indices {
		if peak < 0 || peak >= len(signal) {
			return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, peak, len(signal))
		}

		height := signal[peak]

		leftMin := height
		for i := peak; i >= 0 && signal[i] <= height; i-- {
			leftMin = math.Min(leftMin, signal[i])
		}

		rightMin := height
		for i := peak; i < len(signal) && signal[i] <= height; i++ {
			rightMin = math.Min(rightMin, signal[i])
		}

		out[n] = height - math.Max(leftMin, rightMin)
	}

	return out, nil
}
