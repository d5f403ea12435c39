package window

import (
	"math"
	"testing"
)

func TestGenerateKnownTypes(t *testing.T) {
	types := []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}

			// Symmetric windows mirror around the centre.
			for i := 0; i < len(w)/2; i++ {
				if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
					t.Fatalf("w[%d]=%f != w[%d]=%f", i, w[i], len(w)-1-i, w[len(w)-1-i])
				}
			}
		})
	}
}

func TestGenerateEndpoints(t *testing.T) {
	tests := []struct {
		typ      Type
		edge     float64
		centreOK func(float64) bool
	}{
		{TypeRectangular, 1, func(v float64) bool { return v == 1 }},
		{TypeHann, 0, func(v float64) bool { return math.Abs(v-1) < 1e-12 }},
		{TypeHamming, 0.08, func(v float64) bool { return math.Abs(v-1) < 1e-12 }},
		{TypeBlackman, 0, func(v float64) bool { return math.Abs(v-1) < 1e-12 }},
	}

	for _, tt := range tests {
		w := Generate(tt.typ, 9)
		if math.Abs(w[0]-tt.edge) > 1e-12 {
			t.Fatalf("%s: w[0]=%f want=%f", tt.typ, w[0], tt.edge)
		}
		if !tt.centreOK(w[4]) {
			t.Fatalf("%s: unexpected centre value %f", tt.typ, w[4])
		}
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())

	same := true
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected periodic and symmetric forms to differ")
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("expected nil for zero length, got %v", w)
	}
	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 0 {
		t.Fatalf("unexpected single-sample window: %v", w)
	}
}

func TestApply(t *testing.T) {
	buf := []float64{2, 2, 2, 2, 2}
	Apply(TypeHann, buf)

	want := Generate(TypeHann, 5)
	for i := range buf {
		if math.Abs(buf[i]-2*want[i]) > 1e-12 {
			t.Fatalf("buf[%d]=%f want=%f", i, buf[i], 2*want[i])
		}
	}

	rect := []float64{1, 2, 3}
	Apply(TypeRectangular, rect)
	if rect[0] != 1 || rect[1] != 2 || rect[2] != 3 {
		t.Fatalf("rectangular window must leave input unchanged: %v", rect)
	}
}

func TestApplyCoefficientsMismatch(t *testing.T) {
	if _, err := ApplyCoefficients([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestTypeString(t *testing.T) {
	if TypeBlackman.String() != "Blackman" {
		t.Fatalf("String()=%q", TypeBlackman.String())
	}
	if Type(99).String() != "Unknown" {
		t.Fatalf("String()=%q", Type(99).String())
	}
}
