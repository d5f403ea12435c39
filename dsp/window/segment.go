package window

import (
	"github.com/cwbudde/algo-toolbox/dsp/core"
	"gonum.org/v1/gonum/mat"
)

// Segments is a matrix of equal-length signal windows. Windows[i] is the
// i-th column: the samples starting at i*HopSamples.
type Segments struct {
	WindowSamples int
	HopSamples    int
	Windows       [][]float64
}

// SegmentOption configures Segment.
type SegmentOption func(*segmentConfig)

type segmentConfig struct {
	taper Type
}

// WithTaper multiplies every extracted window by the given taper.
func WithTaper(t Type) SegmentOption {
	return func(c *segmentConfig) {
		c.taper = t
	}
}

// Segment slices signal into windows of winDuration seconds whose starts are
// hopDuration seconds apart. Both durations are converted to samples by
// truncating duration*sampleRate. The number of windows is
// (len(signal)-win)/hop using integer division; a signal shorter than one
// window yields zero windows.
func Segment(signal []float64, sampleRate, winDuration, hopDuration float64, opts ...SegmentOption) (Segments, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return Segments{}, err
	}

	win := core.TruncSamples(winDuration, sampleRate)
	hop := core.TruncSamples(hopDuration, sampleRate)

	return SegmentSamples(signal, win, hop, opts...)
}

// SegmentSamples is Segment with the window and hop already given in samples.
func SegmentSamples(signal []float64, win, hop int, opts ...SegmentOption) (Segments, error) {
	if err := validateSpan(win, hop); err != nil {
		return Segments{}, err
	}

	cfg := segmentConfig{taper: TypeRectangular}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	seg := Segments{WindowSamples: win, HopSamples: hop}

	count := (len(signal) - win) / hop
	if count <= 0 {
		return seg, nil
	}

	var coeffs []float64
	if cfg.taper != TypeRectangular {
		coeffs = Generate(cfg.taper, win)
	}

	seg.Windows = make([][]float64, count)
	for i := range seg.Windows {
		span := signal[i*hop : i*hop+win]
		if coeffs == nil {
			seg.Windows[i] = append([]float64(nil), span...)
			continue
		}

		col, err := ApplyCoefficients(span, coeffs)
		if err != nil {
			return Segments{}, err
		}
		seg.Windows[i] = col
	}

	return seg, nil
}

// Len returns the number of complete windows.
func (s Segments) Len() int { return len(s.Windows) }

// Dims returns the matrix shape as (rows, cols) = (WindowSamples, Len()).
func (s Segments) Dims() (rows, cols int) {
	return s.WindowSamples, len(s.Windows)
}

// OverlapSamples returns how many samples neighbouring windows share.
// It is negative when the hop is longer than the window.
func (s Segments) OverlapSamples() int {
	return s.WindowSamples - s.HopSamples
}

// Matrix returns the segments as a WindowSamples x Len() dense matrix, or nil
// when there are no complete windows.
func (s Segments) Matrix() *mat.Dense {
	if len(s.Windows) == 0 || s.WindowSamples == 0 {
		return nil
	}

	m := mat.NewDense(s.WindowSamples, len(s.Windows), nil)
	for i, col := range s.Windows {
		m.SetCol(i, col)
	}

	return m
}
