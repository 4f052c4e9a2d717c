// Package vecmath provides the dense-vector kernels used by the lattice,
// pole and statistics packages: block scaling, scaled accumulation and the
// reductions behind spectral sums and occupation numbers.
//
// Operations dispatch through a registry of implementation variants selected
// by detected CPU features. A pure Go fallback is always registered; tuned
// variants register themselves from architecture-specific packages.
package vecmath

import (
	"sync"

	"github.com/cwbudde/algo-gf/internal/cpu"
	"github.com/cwbudde/algo-gf/internal/vecmath/registry"

	// Generic implementations (pure Go fallback).
	_ "github.com/cwbudde/algo-gf/internal/vecmath/arch/generic"
)

var (
	implOnce sync.Once
	impl     *registry.OpEntry
)

func selected() *registry.OpEntry {
	implOnce.Do(func() {
		features := cpu.DetectFeatures()
		impl = registry.Global.Lookup(features)
		if impl == nil {
			panic("vecmath: no implementation registered")
		}
	})
	return impl
}

// ScaleBlock multiplies each element by a scalar: dst[i] = src[i] * scale.
// Slices must have equal length. Panics if lengths differ.
func ScaleBlock(dst, src []float64, scale float64) {
	e := selected()
	if e.ScaleBlock == nil {
		panic("vecmath: selected implementation missing scale operation")
	}
	e.ScaleBlock(dst, src, scale)
}

// AddScaledBlock accumulates a scaled block: dst[i] += src[i] * scale.
// Slices must have equal length. Panics if lengths differ.
func AddScaledBlock(dst, src []float64, scale float64) {
	e := selected()
	if e.AddScaledBlock == nil {
		panic("vecmath: selected implementation missing add-scaled operation")
	}
	e.AddScaledBlock(dst, src, scale)
}

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	e := selected()
	if e.Sum == nil {
		panic("vecmath: selected implementation missing sum operation")
	}
	return e.Sum(x)
}

// DotProduct returns the dot product of a and b: sum(a[i] * b[i]).
// The shorter length is used if the slices differ.
func DotProduct(a, b []float64) float64 {
	e := selected()
	if e.DotProduct == nil {
		panic("vecmath: selected implementation missing dot-product operation")
	}
	return e.DotProduct(a, b)
}
