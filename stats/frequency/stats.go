// Package frequency computes shape descriptors of a magnitude spectrum.
//
// All functions take the frequency axis explicitly, so they work on the
// truncated single-sided spectra produced by spectrum.Fourier as well as on
// plain 0..Nyquist spectra.
package frequency

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-toolbox/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// DefaultRolloff is the energy fraction used by Describe for the rolloff.
const DefaultRolloff = 0.85

// ErrLengthMismatch is returned when freq and mag differ in length.
var ErrLengthMismatch = errors.New("frequency and magnitude length mismatch")

// Shape holds frequency-domain descriptors of a magnitude spectrum.
type Shape struct {
	Bins      int
	PeakFreq  float64 // Hz
	PeakMag   float64
	Energy    float64 // sum of squared magnitudes
	Centroid  float64 // Hz
	Spread    float64 // Hz
	Flatness  float64 // 0..1, DC bin excluded
	Rolloff   float64 // Hz below which DefaultRolloff of the energy lies
	Bandwidth float64 // 3 dB bandwidth around the peak, Hz
}

// Describe computes every descriptor of the spectrum (freq, mag).
// mag is linear, not dB.
func Describe(freq, mag []float64) (Shape, error) {
	if err := validate(freq, mag); err != nil {
		return Shape{}, err
	}

	peak := floats.MaxIdx(mag)
	s := Shape{
		Bins:     len(mag),
		PeakFreq: freq[peak],
		PeakMag:  mag[peak],
		Energy:   floats.Dot(mag, mag),
	}

	sum := floats.Sum(mag)
	s.Centroid = centroid(freq, mag, sum)
	s.Spread = spread(freq, mag, s.Centroid, sum)
	s.Flatness = Flatness(mag)
	s.Rolloff = rolloff(freq, mag, DefaultRolloff, s.Energy)
	s.Bandwidth = Bandwidth(freq, mag)

	return s, nil
}

// Dominant returns the strongest bin at or above minFreq. ok is false when
// no bin qualifies.
func Dominant(freq, mag []float64, minFreq float64) (f, m float64, ok bool) {
	if validate(freq, mag) != nil {
		return 0, 0, false
	}

	best := -1
	for i, fi := range freq {
		if fi < minFreq {
			continue
		}
		if best < 0 || mag[i] > mag[best] {
			best = i
		}
	}
	if best < 0 {
		return 0, 0, false
	}

	return freq[best], mag[best], true
}

// Centroid returns sum(f*|X|) / sum(|X|), or 0 for a silent spectrum.
func Centroid(freq, mag []float64) float64 {
	if validate(freq, mag) != nil {
		return 0
	}
	return centroid(freq, mag, floats.Sum(mag))
}

func centroid(freq, mag []float64, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	return floats.Dot(freq, mag) / sum
}

func spread(freq, mag []float64, cent, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	acc := 0.0
	for i, v := range mag {
		d := freq[i] - cent
		acc += d * d * v
	}
	return math.Sqrt(acc / sum)
}

// Flatness returns the spectral flatness (Wiener entropy) of mag[1:].
//
//	flatness = exp(mean(log|X|)) / mean(|X|)
//
// A zero bin makes the geometric mean, and so the flatness, zero.
func Flatness(mag []float64) float64 {
	if len(mag) < 2 {
		return 0
	}

	bins := mag[1:]
	mean := floats.Sum(bins) / float64(len(bins))
	if mean == 0 || floats.Min(bins) <= 0 {
		return 0
	}

	logSum := 0.0
	for _, v := range bins {
		logSum += math.Log(v)
	}

	return math.Exp(logSum/float64(len(bins))) / mean
}

// Rolloff returns the lowest frequency at which the cumulative energy reaches
// percent (0..1) of the total.
func Rolloff(freq, mag []float64, percent float64) float64 {
	if validate(freq, mag) != nil {
		return 0
	}
	return rolloff(freq, mag, percent, floats.Dot(mag, mag))
}

func rolloff(freq, mag []float64, percent, energy float64) float64 {
	if energy == 0 {
		return 0
	}
	threshold := percent * energy
	cum := 0.0
	for i, v := range mag {
		cum += v * v
		if cum >= threshold {
			return freq[i]
		}
	}
	return freq[len(freq)-1]
}

// Bandwidth returns the width between the -3 dB points around the peak,
// interpolating linearly between bins. Without a crossing on one side the
// outermost bin is used.
func Bandwidth(freq, mag []float64) float64 {
	if validate(freq, mag) != nil || len(mag) < 2 {
		return 0
	}

	peak := floats.MaxIdx(mag)
	if mag[peak] == 0 {
		return 0
	}
	threshold := mag[peak] / math.Sqrt2

	lower := freq[0]
	for i := peak; i >= 1; i-- {
		if mag[i-1] <= threshold && mag[i] > threshold {
			lower = crossing(freq[i-1], freq[i], mag[i-1], mag[i], threshold)
			break
		}
	}

	upper := freq[len(freq)-1]
	for i := peak; i < len(mag)-1; i++ {
		if mag[i+1] <= threshold && mag[i] > threshold {
			upper = crossing(freq[i], freq[i+1], mag[i], mag[i+1], threshold)
			break
		}
	}

	return math.Max(upper-lower, 0)
}

// crossing interpolates the frequency where the magnitude crosses threshold.
func crossing(f0, f1, m0, m1, threshold float64) float64 {
	if m1 == m0 {
		return (f0 + f1) / 2
	}
	t := (threshold - m0) / (m1 - m0)
	return f0 + t*(f1-f0)
}

func validate(freq, mag []float64) error {
	if err := core.ValidateSignal(mag); err != nil {
		return err
	}
	if len(freq) != len(mag) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(freq), len(mag))
	}
	return nil
}
