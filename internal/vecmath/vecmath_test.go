package vecmath

import (
	"math"
	"testing"
)

func TestScaleBlock(t *testing.T) {
	src := []float64{1, -2, 3, 0.5}
	dst := make([]float64, len(src))
	ScaleBlock(dst, src, -2)

	want := []float64{-2, 4, -6, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestScaleBlockLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	ScaleBlock(make([]float64, 3), make([]float64, 4), 1)
}

func TestAddScaledBlock(t *testing.T) {
	dst := []float64{1, 1, 1}
	src := []float64{1, 2, 3}
	AddScaledBlock(dst, src, 0.5)

	want := []float64{1.5, 2, 2.5}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSum(t *testing.T) {
	if got := Sum(nil); got != 0 {
		t.Fatalf("Sum(nil) = %v, want 0", got)
	}

	x := []float64{0.5, 0.25, 0.125, -1}
	if got, want := Sum(x), -0.125; math.Abs(got-want) > 1e-15 {
		t.Fatalf("Sum = %v, want %v", got, want)
	}
}

func TestDotProduct(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	if got, want := DotProduct(a, b), 32.0; got != want {
		t.Fatalf("DotProduct = %v, want %v", got, want)
	}

	// Shorter slice wins.
	if got, want := DotProduct(a, b[:2]), 14.0; got != want {
		t.Fatalf("DotProduct short = %v, want %v", got, want)
	}
}
