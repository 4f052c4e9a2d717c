// Package pole evaluates Green's functions given by a finite pole
// representation G(z) = sum_j weights[j]/(z - poles[j]).
//
// Pole models are exactly solvable: their frequency and imaginary-time
// forms are closed expressions, which makes them the reference models for
// cross-checking transforms and frequency meshes.
package pole

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gf/internal/vecmath"
	"github.com/cwbudde/algo-gf/statistics"
)

// GfZ evaluates the pole Green's function at the complex frequency z.
// Panics if poles and weights differ in length.
func GfZ(z complex128, poles, weights []float64) complex128 {
	if len(poles) != len(weights) {
		panic("pole: poles and weights differ in length")
	}
	var sum complex128
	for j, p := range poles {
		sum += complex(weights[j], 0) / (z - complex(p, 0))
	}
	return sum
}

// GfZInto evaluates the pole Green's function at every frequency in z and
// writes the results to dst.
func GfZInto(dst, z []complex128, poles, weights []float64) error {
	if len(dst) != len(z) {
		return fmt.Errorf("pole: dst length %d does not match z length %d", len(dst), len(z))
	}
	if len(poles) != len(weights) {
		return fmt.Errorf("pole: got %d poles and %d weights", len(poles), len(weights))
	}

	for i, zi := range z {
		dst[i] = GfZ(zi, poles, weights)
	}

	return nil
}

// GfTau evaluates the imaginary-time Green's function on the grid tau.
// Every tau must lie in [0, beta].
//
// The exponentials are arranged so that only non-positive arguments are
// exponentiated; the evaluation stays finite for arbitrarily large
// beta*poles[j] of either sign.
func GfTau(tau []float64, poles, weights []float64, beta float64) ([]float64, error) {
	if len(poles) != len(weights) {
		return nil, fmt.Errorf("pole: got %d poles and %d weights", len(poles), len(weights))
	}
	if beta <= 0 {
		return nil, fmt.Errorf("pole: beta %g is not positive", beta)
	}
	for _, t := range tau {
		if t < 0 || t > beta {
			return nil, fmt.Errorf("pole: tau %g outside [0, %g]", t, beta)
		}
	}

	gf := make([]float64, len(tau))
	term := make([]float64, len(tau))
	for j, p := range poles {
		// -e^(-tau p) (1 - f(p)), rewritten per sign of p.
		if p >= 0 {
			occ := statistics.Fermi(-p, beta)
			for i, t := range tau {
				term[i] = math.Exp(-t*p) * occ
			}
		} else {
			occ := statistics.Fermi(p, beta)
			for i, t := range tau {
				term[i] = math.Exp((beta-t)*p) * occ
			}
		}
		vecmath.AddScaledBlock(gf, term, -weights[j])
	}

	return gf, nil
}

// Occupation returns the thermal occupation sum_j weights[j]*fermi(poles[j]).
// It equals -GfTau at tau = beta.
func Occupation(poles, weights []float64, beta float64) (float64, error) {
	if len(poles) != len(weights) {
		return 0, fmt.Errorf("pole: got %d poles and %d weights", len(poles), len(weights))
	}
	if beta <= 0 {
		return 0, fmt.Errorf("pole: beta %g is not positive", beta)
	}

	fermis := make([]float64, len(poles))
	for j, p := range poles {
		fermis[j] = statistics.Fermi(p, beta)
	}

	return vecmath.DotProduct(weights, fermis), nil
}
