package spectrum

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Backend selects the FFT implementation used by Fourier.
type Backend int

const (
	// BackendAuto uses a planned transform for power-of-two lengths and
	// gonum for everything else.
	BackendAuto Backend = iota
	// BackendPlanned always uses the algo-fft planned transform.
	BackendPlanned
	// BackendGonum always uses gonum's FFTPACK transform.
	BackendGonum
)

// ErrUnsupportedLength is returned when the requested backend cannot
// transform a signal of the given length.
var ErrUnsupportedLength = errors.New("fft length not supported by backend")

// Transform returns the full complex DFT of a real signal, len(signal) bins.
func Transform(signal []float64, backend Backend) ([]complex128, error) {
	n := len(signal)
	if n == 0 {
		return nil, nil
	}

	switch backend {
	case BackendGonum:
		return gonumTransform(signal), nil
	case BackendPlanned:
		return plannedTransform(signal)
	default:
		if n >= 2 && isPowerOf2(n) {
			out, err := plannedTransform(signal)
			if !errors.Is(err, ErrUnsupportedLength) {
				return out, err
			}
		}
		return gonumTransform(signal), nil
	}
}

func plannedTransform(signal []float64) ([]complex128, error) {
	n := len(signal)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %v", ErrUnsupportedLength, n, err)
	}

	in := make([]complex128, n)
	for i, x := range signal {
		in[i] = complex(x, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	return out, nil
}

// gonumTransform computes the half spectrum with a real FFT and mirrors it
// using conjugate symmetry.
func gonumTransform(signal []float64) []complex128 {
	n := len(signal)

	half := fourier.NewFFT(n).Coefficients(nil, signal)

	out := make([]complex128, n)
	copy(out, half)
	for k := len(half); k < n; k++ {
		out[k] = cmplx.Conj(half[n-k])
	}

	return out
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
