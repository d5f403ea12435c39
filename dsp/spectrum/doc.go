// Package spectrum computes single-sided magnitude spectra of real signals.
//
// Fourier transforms a sample slice and returns the frequency axis together
// with |X[k]|/L, doubled for every bin except the first and the last one
// returned. The number of bins is floor(L/2) plus a fixed offset (10 by
// default, see WithBinOffset), capped at L.
//
// Power-of-two lengths are transformed with a planned algo-fft transform;
// all other lengths use gonum's FFTPACK port, so signals are never padded.
// Plotting is left to the caller through a Renderer callback.
package spectrum
