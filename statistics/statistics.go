package statistics

import (
	"math"
	"math/cmplx"
)

// Fermi computes the Fermi-Dirac distribution 1/(exp(beta*eps) + 1).
//
// Only non-positive arguments are exponentiated, so the result stays finite
// and accurate for arbitrarily large |beta*eps|.
func Fermi(eps, beta float64) float64 {
	x := beta * eps
	if x > 0 {
		e := math.Exp(-x)
		return e / (1 + e)
	}
	return 1 / (1 + math.Exp(x))
}

// FermiC evaluates the Fermi function for a complex argument z. The branch
// is chosen by the sign of Re(beta*z) so the exponential never overflows.
func FermiC(z complex128, beta float64) complex128 {
	x := complex(beta, 0) * z
	if real(x) > 0 {
		e := cmplx.Exp(-x)
		return e / (1 + e)
	}
	return 1 / (cmplx.Exp(x) + 1)
}

// FermiD1 computes the derivative of the Fermi function with respect to eps,
// -beta*f*(1-f). It is non-positive everywhere and peaks at eps = 0.
func FermiD1(eps, beta float64) float64 {
	f := Fermi(eps, beta)
	return -beta * f * (1 - f)
}

// FermiInv returns the energy at which the occupation equals fermi, the
// inverse of Fermi in its energy argument. Occupations outside [0, 1] yield
// NaN; 0 and 1 map to +Inf and -Inf.
func FermiInv(fermi, beta float64) float64 {
	return -logit(fermi) / beta
}

// logit is the inverse of the standard logistic function. The log1p form
// keeps precision as p approaches 1.
func logit(p float64) float64 {
	if p < 0 || p > 1 {
		return math.NaN()
	}
	return math.Log(p) - math.Log1p(-p)
}

// Bose computes the Bose-Einstein distribution 1/(exp(beta*eps) - 1).
// The pole at eps = 0 evaluates to +Inf.
func Bose(eps, beta float64) float64 {
	x := beta * eps
	if x < 700 {
		return 1 / math.Expm1(x)
	}
	// Large positive arguments: evaluate via exp(-x) to avoid the
	// intermediate overflow of expm1(x).
	return -math.Exp(-x) / math.Expm1(-x)
}

// MatsubaraFrequencies returns the fermionic Matsubara frequencies
// i*pi*(2n+1)/beta for the given indices.
func MatsubaraFrequencies(n []int, beta float64) []complex128 {
	out := make([]complex128, len(n))
	c := math.Pi / beta
	for i, ni := range n {
		out[i] = complex(0, c*float64(2*ni+1))
	}
	return out
}

// MatsubaraFrequenciesB returns the bosonic Matsubara frequencies
// i*2*pi*n/beta for the given indices.
func MatsubaraFrequenciesB(n []int, beta float64) []complex128 {
	out := make([]complex128, len(n))
	c := 2 * math.Pi / beta
	for i, ni := range n {
		out[i] = complex(0, c*float64(ni))
	}
	return out
}
