package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// SyntheticPPG generates a raw-sensor-like photoplethysmogram: a large
// positive baseline plus a pulse waveform at heartRateHz. Each beat is a
// narrow raised-cosine systolic peak followed by a smaller dicrotic bump.
func SyntheticPPG(sampleRate, heartRateHz, baseline, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		phase := math.Mod(float64(i)*heartRateHz/sampleRate, 1)
		out[i] = baseline + amplitude*(pulse(phase, 0.2, 0.15)+0.3*pulse(phase, 0.55, 0.1))
	}
	return out
}

// WithSpikes returns a copy of signal with height added at each index.
// Out-of-range indices are ignored.
func WithSpikes(signal []float64, indices []int, height float64) []float64 {
	out := append([]float64(nil), signal...)
	for _, idx := range indices {
		if idx >= 0 && idx < len(out) {
			out[idx] += height
		}
	}
	return out
}

// pulse is a raised-cosine bump of the given width centred at centre, over a
// unit phase interval.
func pulse(phase, centre, width float64) float64 {
	d := math.Abs(phase - centre)
	if d >= width/2 {
		return 0
	}
	return 0.5 * (1 + math.Cos(2*math.Pi*d/width))
}
