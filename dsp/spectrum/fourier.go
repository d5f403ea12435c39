package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-toolbox/dsp/core"
	"github.com/cwbudde/algo-toolbox/dsp/window"
)

// DefaultBinOffset is the number of bins kept beyond floor(L/2).
const DefaultBinOffset = 10

// Result is a single-sided magnitude spectrum. Freq and Magnitude have the
// same length.
type Result struct {
	Freq      []float64
	Magnitude []float64
}

// Option configures Fourier.
type Option func(*config)

type config struct {
	binOffset int
	renderer  Renderer
	taper     window.Type
	backend   Backend
}

// WithBinOffset sets how many bins beyond floor(L/2) are returned.
func WithBinOffset(k int) Option {
	return func(c *config) {
		c.binOffset = k
	}
}

// WithRenderer plots the computed spectrum through r.
func WithRenderer(r Renderer) Option {
	return func(c *config) {
		c.renderer = r
	}
}

// WithWindow tapers a copy of the signal with the periodic form of t before
// transforming it.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.taper = t
	}
}

// WithBackend forces a specific FFT implementation.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// BinCount returns the number of bins Fourier keeps for a signal of length n.
func BinCount(n, offset int) int {
	bins := n/2 + offset
	if bins > n {
		bins = n
	}
	if bins < 0 {
		bins = 0
	}
	return bins
}

// Fourier computes the single-sided magnitude spectrum of signal sampled at
// sampleRate. Bin k lies at k*sampleRate/L.
func Fourier(signal []float64, sampleRate float64, opts ...Option) (Result, error) {
	if err := core.ValidateSignal(signal); err != nil {
		return Result{}, err
	}
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return Result{}, err
	}

	cfg := config{
		binOffset: DefaultBinOffset,
		taper:     window.TypeRectangular,
		backend:   BackendAuto,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.binOffset < 0 {
		return Result{}, fmt.Errorf("spectrum bin offset must be >= 0: %d", cfg.binOffset)
	}

	input := signal
	if cfg.taper != window.TypeRectangular {
		input = append([]float64(nil), signal...)
		window.Apply(cfg.taper, input, window.WithPeriodic())
	}

	bins, err := Transform(input, cfg.backend)
	if err != nil {
		return Result{}, err
	}

	n := len(signal)
	count := BinCount(n, cfg.binOffset)

	mag := ScaledMagnitude(bins[:count], 1/float64(n))
	for k := 1; k < count-1; k++ {
		mag[k] *= 2
	}

	freq := make([]float64, count)
	for k := range freq {
		freq[k] = float64(k) * sampleRate / float64(n)
	}

	res := Result{Freq: freq, Magnitude: mag}

	if cfg.renderer != nil {
		if err := cfg.renderer(res.Freq, res.Magnitude, DefaultLabels); err != nil {
			return res, fmt.Errorf("spectrum: render: %w", err)
		}
	}

	return res, nil
}
