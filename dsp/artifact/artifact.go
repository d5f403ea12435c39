// Package artifact removes motion artifacts from raw photoplethysmography
// (PPG) recordings.
//
// A recording is treated as contaminated when its peak-to-peak range
// exceeds a threshold. Samples with a z-score above 1 are then pulled toward
// the median by the mean distance between the median and those samples:
//
//	offset = mean(median(x) - x[z > 1])
//	x[z > 1] = x[z > 1] + offset
package artifact

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-toolbox/dsp/core"
	timestats "github.com/cwbudde/algo-toolbox/stats/time"
)

const (
	// DefaultThreshold is the peak-to-peak range above which a recording is corrected.
	DefaultThreshold = 20000.0
	// OutlierZ is the z-score above which a sample is treated as an artifact.
	OutlierZ = 1.0
)

// ErrInvalidThreshold is returned for a negative or NaN range threshold.
var ErrInvalidThreshold = errors.New("artifact threshold must be >= 0")

// Option configures Remove.
type Option func(*config)

type config struct {
	threshold float64
}

// WithThreshold sets the peak-to-peak range that triggers correction.
func WithThreshold(thr float64) Option {
	return func(c *config) {
		c.threshold = thr
	}
}

// Remove returns a corrected copy of signal. If the peak-to-peak range does
// not exceed the threshold the copy is unmodified.
func Remove(signal []float64, opts ...Option) ([]float64, error) {
	if err := core.ValidateSignal(signal); err != nil {
		return nil, err
	}

	cfg := config{threshold: DefaultThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !(cfg.threshold >= 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, cfg.threshold)
	}

	out := append([]float64(nil), signal...)

	if math.Abs(timestats.PeakToPeak(signal)) <= cfg.threshold {
		return out, nil
	}

	flagged, err := Outliers(signal, OutlierZ)
	if err != nil {
		return nil, err
	}
	if len(flagged) == 0 {
		return out, nil
	}

	median := timestats.Median(signal)

	dist := make([]float64, len(flagged))
	for k, i := range flagged {
		dist[k] = median - signal[i]
	}
	offset := timestats.DC(dist)

	for _, i := range flagged {
		out[i] = signal[i] + offset
	}

	return out, nil
}

// Outliers returns the indices whose z-score is strictly greater than zLimit.
func Outliers(signal []float64, zLimit float64) ([]int, error) {
	z, err := timestats.ZScore(signal)
	if err != nil {
		return nil, err
	}

	var idx []int
	for i, v := range z {
		if v > zLimit {
			idx = append(idx, i)
		}
	}

	return idx, nil
}
