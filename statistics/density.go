package statistics

import (
	"errors"
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	ivecmath "github.com/cwbudde/algo-gf/internal/vecmath"
)

// Density integrates the spectral density dos against the Fermi function on
// the energy grid eps with the trapezoidal rule:
//
//	n = Int dos(e) * fermi(e) de
//
// For a normalized density of states this is the occupation per lattice site
// and spin. The grid must be uniform and increasing, with at least two
// points.
func Density(eps, dos []float64, beta float64) (float64, error) {
	if len(eps) != len(dos) {
		return 0, fmt.Errorf("statistics: grid and density lengths differ: %d vs %d", len(eps), len(dos))
	}
	if len(eps) < 2 {
		return 0, errors.New("statistics: density grid needs at least two points")
	}
	h := eps[1] - eps[0]
	if h <= 0 {
		return 0, errors.New("statistics: energy grid must be increasing")
	}
	for i := 2; i < len(eps); i++ {
		if d := eps[i] - eps[i-1]; math.Abs(d-h) > 1e-8*h {
			return 0, fmt.Errorf("statistics: energy grid is not uniform at index %d", i)
		}
	}

	integrand := make([]float64, len(eps))
	for i, e := range eps {
		integrand[i] = Fermi(e, beta)
	}
	vecmath.MulBlockInPlace(integrand, dos)

	last := len(integrand) - 1
	inner := ivecmath.Sum(integrand[1:last])
	return h * (inner + 0.5*(integrand[0]+integrand[last])), nil
}
