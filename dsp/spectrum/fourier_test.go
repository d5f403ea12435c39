package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-toolbox/dsp/core"
	"github.com/cwbudde/algo-toolbox/dsp/window"
	"github.com/cwbudde/algo-toolbox/internal/testutil"
)

func TestBinCount(t *testing.T) {
	tests := []struct {
		n, offset, want int
	}{
		{n: 1000, offset: 10, want: 510},
		{n: 1001, offset: 10, want: 510},
		{n: 101, offset: 10, want: 60},
		{n: 12, offset: 10, want: 12},
		{n: 5, offset: 10, want: 5},
		{n: 64, offset: 0, want: 32},
	}
	for _, tt := range tests {
		if got := BinCount(tt.n, tt.offset); got != tt.want {
			t.Errorf("BinCount(%d, %d) = %d, want %d", tt.n, tt.offset, got, tt.want)
		}
	}
}

func TestFourierSineAmplitude(t *testing.T) {
	tests := []struct {
		name      string
		fs        float64
		n         int
		freq      float64
		amplitude float64
	}{
		{name: "gonum length", fs: 1000, n: 1000, freq: 50, amplitude: 2},
		{name: "planned length", fs: 1024, n: 1024, freq: 64, amplitude: 0.75},
		{name: "odd length", fs: 999, n: 999, freq: 111, amplitude: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := testutil.DeterministicSine(tt.freq, tt.fs, tt.amplitude, tt.n)

			res, err := Fourier(signal, tt.fs)
			if err != nil {
				t.Fatalf("Fourier error: %v", err)
			}

			if len(res.Freq) != len(res.Magnitude) {
				t.Fatalf("length mismatch: freq=%d mag=%d", len(res.Freq), len(res.Magnitude))
			}
			if len(res.Freq) != BinCount(tt.n, DefaultBinOffset) {
				t.Fatalf("bins=%d want=%d", len(res.Freq), BinCount(tt.n, DefaultBinOffset))
			}

			k := int(math.Round(tt.freq * float64(tt.n) / tt.fs))
			if math.Abs(res.Freq[k]-tt.freq) > 1e-9 {
				t.Fatalf("Freq[%d]=%f want=%f", k, res.Freq[k], tt.freq)
			}
			if math.Abs(res.Magnitude[k]-tt.amplitude) > 1e-9 {
				t.Fatalf("Magnitude[%d]=%f want=%f", k, res.Magnitude[k], tt.amplitude)
			}

			for i, v := range res.Magnitude {
				if i != k && v > 1e-9 {
					t.Fatalf("leakage at bin %d: %g", i, v)
				}
			}
		})
	}
}

func TestFourierDCIsNotDoubled(t *testing.T) {
	res, err := Fourier(testutil.DC(3, 64), 64)
	if err != nil {
		t.Fatalf("Fourier error: %v", err)
	}
	if math.Abs(res.Magnitude[0]-3) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=3", res.Magnitude[0])
	}
}

func TestFourierEdgeBinsNotDoubled(t *testing.T) {
	// With L=5 every bin is kept; only bins 1..3 are doubled.
	signal := []float64{1, -2, 3, 0.5, 4}
	bins := naiveDFT(signal)

	res, err := Fourier(signal, 5)
	if err != nil {
		t.Fatalf("Fourier error: %v", err)
	}
	if len(res.Magnitude) != 5 {
		t.Fatalf("bins=%d want=5", len(res.Magnitude))
	}

	for k, c := range bins {
		want := math.Hypot(real(c), imag(c)) / 5
		if k > 0 && k < 4 {
			want *= 2
		}
		if math.Abs(res.Magnitude[k]-want) > 1e-12 {
			t.Fatalf("Magnitude[%d]=%f want=%f", k, res.Magnitude[k], want)
		}
		if math.Abs(res.Freq[k]-float64(k)) > 1e-12 {
			t.Fatalf("Freq[%d]=%f want=%d", k, res.Freq[k], k)
		}
	}
}

func TestFourierBinOffset(t *testing.T) {
	signal := testutil.DeterministicNoise(1, 1, 100)

	res, err := Fourier(signal, 100, WithBinOffset(0))
	if err != nil {
		t.Fatalf("Fourier error: %v", err)
	}
	if len(res.Magnitude) != 50 {
		t.Fatalf("bins=%d want=50", len(res.Magnitude))
	}

	if _, err := Fourier(signal, 100, WithBinOffset(-1)); err == nil {
		t.Fatal("expected error for negative bin offset")
	}
}

func TestFourierDoesNotMutateInput(t *testing.T) {
	signal := testutil.Ones(16)
	if _, err := Fourier(signal, 16, WithWindow(window.TypeHann)); err != nil {
		t.Fatalf("Fourier error: %v", err)
	}
	for i, v := range signal {
		if v != 1 {
			t.Fatalf("signal[%d]=%f mutated", i, v)
		}
	}
}

func TestFourierWindowIsPeriodic(t *testing.T) {
	// The periodic Hann window of length 16 averages to exactly 0.5; the
	// symmetric form would give 15/32.
	res, err := Fourier(testutil.Ones(16), 16, WithWindow(window.TypeHann), WithBinOffset(0))
	if err != nil {
		t.Fatalf("Fourier error: %v", err)
	}
	if math.Abs(res.Magnitude[0]-0.5) > 1e-12 {
		t.Fatalf("DC magnitude=%g want 0.5", res.Magnitude[0])
	}
}

func TestFourierWindowReducesLeakage(t *testing.T) {
	const fs = 1000.0
	// 52.5 Hz falls between bins and leaks without a taper.
	signal := testutil.DeterministicSine(52.5, fs, 1, 1000)

	rect, err := Fourier(signal, fs)
	if err != nil {
		t.Fatalf("Fourier error: %v", err)
	}
	hann, err := Fourier(signal, fs, WithWindow(window.TypeHann))
	if err != nil {
		t.Fatalf("Fourier error: %v", err)
	}

	far := 200
	if !(hann.Magnitude[far] < rect.Magnitude[far]) {
		t.Fatalf("expected less far leakage with hann: rect=%g hann=%g", rect.Magnitude[far], hann.Magnitude[far])
	}
}

func TestFourierRenderer(t *testing.T) {
	var (
		calls  int
		gotLen int
		labels PlotLabels
	)
	render := func(x, y []float64, l PlotLabels) error {
		calls++
		gotLen = len(x)
		if len(x) != len(y) {
			t.Fatalf("renderer got x=%d y=%d", len(x), len(y))
		}
		labels = l
		return nil
	}

	res, err := Fourier(testutil.Ones(32), 32, WithRenderer(render))
	if err != nil {
		t.Fatalf("Fourier error: %v", err)
	}
	if calls != 1 || gotLen != len(res.Freq) {
		t.Fatalf("renderer calls=%d len=%d", calls, gotLen)
	}
	if labels != DefaultLabels {
		t.Fatalf("labels=%+v want=%+v", labels, DefaultLabels)
	}

	boom := errors.New("boom")
	_, err = Fourier(testutil.Ones(32), 32, WithRenderer(func(_, _ []float64, _ PlotLabels) error { return boom }))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped renderer error, got %v", err)
	}
}

func TestFourierErrors(t *testing.T) {
	if _, err := Fourier(nil, 100); !errors.Is(err, core.ErrEmptySignal) {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}
	if _, err := Fourier([]float64{1}, 0); !errors.Is(err, core.ErrInvalidSampleRate) {
		t.Fatalf("expected ErrInvalidSampleRate, got %v", err)
	}
}
