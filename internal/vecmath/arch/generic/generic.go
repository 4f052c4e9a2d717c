// Package generic provides pure Go implementations of the vecmath kernels.
//
// These serve as the baseline fallback when no SIMD variants are registered
// or when ForceGeneric is enabled for testing.
package generic

// ScaleBlock multiplies each element by a scalar: dst[i] = src[i] * scale.
// Slices must have equal length. Panics if lengths differ.
func ScaleBlock(dst, src []float64, scale float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = src[i] * scale
	}
}

// AddScaledBlock accumulates a scaled block: dst[i] += src[i] * scale.
// Slices must have equal length. Panics if lengths differ.
func AddScaledBlock(dst, src []float64, scale float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] += src[i] * scale
	}
}

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	sum := 0.0
	for i := range x {
		sum += x[i]
	}
	return sum
}

// DotProduct returns the dot product of a and b: sum(a[i] * b[i]).
// The shorter length is used if the slices differ.
func DotProduct(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
