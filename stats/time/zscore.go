package time

import (
	"math"

	"github.com/cwbudde/algo-toolbox/dsp/core"
)

// ZScore returns (x - mean) / std for every sample, where std is the
// population standard deviation. A constant signal returns ErrZeroVariance.
func ZScore(signal []float64) ([]float64, error) {
	if err := core.ValidateSignal(signal); err != nil {
		return nil, err
	}

	mean, variance := Moments(signal)

	std := math.Sqrt(variance)
	if std == 0 {
		return nil, ErrZeroVariance
	}

	out := make([]float64, len(signal))
	for i, x := range signal {
		out[i] = (x - mean) / std
	}

	return out, nil
}
