package statistics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrPadeNoConvergence is returned when the eigeniteration underlying the
// Pade pole computation fails to converge.
var ErrPadeNoConvergence = errors.New("statistics: pade eigenproblem did not converge")

// PadeFrequencies computes the num positive poles izp and residues resids of
// the Ozaki continued-fraction representation of the Fermi function,
//
//	f(z) ~ 1/2 - Sum_j resids[j] * (1/(beta*z - beta*izp[j]) + 1/(beta*z + beta*izp[j]))
//
// The poles lie on the positive imaginary axis and are sorted by magnitude;
// low-order poles rapidly approach the fermionic Matsubara frequencies while
// the residues approach one.
//
// The poles are eigenvalues of the 2*num generalized problem A v = x B v
// with A = -diag(1, 3, ..., 4*num-1) and B holding 1/2 on the first off
// diagonals. Scaling both sides by |A|^(-1/2) turns the pencil into the
// symmetric tridiagonal problem M w = -(1/x) w with zero diagonal and off
// diagonals 1/(2*sqrt((2j+1)*(2j+3))), where w = |A|^(1/2) v. The w are
// orthonormal, which collapses the residue formula 0.25*v[0]*(V^-1)[0]*x^2
// to 0.25*w[0]^2*x^2. The spectrum is real and symmetric about zero; a
// violation reported by the returned error indicates a defective eigensolve
// rather than bad input.
func PadeFrequencies(num int, beta float64) (izp []complex128, resids []float64, err error) {
	if num < 1 {
		return nil, nil, fmt.Errorf("statistics: pade frequency count must be positive, got %d", num)
	}
	if beta <= 0 {
		return nil, nil, fmt.Errorf("statistics: inverse temperature must be positive, got %g", beta)
	}

	n := 2 * num
	band := make([]float64, 2*n)
	for i := 0; i < n-1; i++ {
		band[2*i+1] = 0.5 / math.Sqrt(float64((2*i+1)*(2*i+3)))
	}
	m := mat.NewSymBandDense(n, 1, band)

	var es mat.EigenSym
	if !es.Factorize(m, true) {
		return nil, nil, ErrPadeNoConvergence
	}
	eta := es.Values(nil)
	var w mat.Dense
	es.VectorsTo(&w)

	eig := make([]float64, n)
	res := make([]float64, n)
	for j := 0; j < n; j++ {
		if eta[j] == 0 {
			return nil, nil, fmt.Errorf("statistics: pade eigenvalue %d is infinite", j)
		}
		eig[j] = -1 / eta[j]
		w0 := w.At(0, j)
		res[j] = 0.25 * w0 * w0 * eig[j] * eig[j]
	}

	inds := make([]int, n)
	floats.Argsort(eig, inds)

	near := func(a, b float64) bool {
		return math.Abs(a-b) <= 1e-8+1e-5*math.Abs(b)
	}
	for j := 0; j < num; j++ {
		if !near(-eig[j], eig[n-1-j]) {
			return nil, nil, fmt.Errorf("statistics: pade poles are not negation symmetric: %g vs %g",
				eig[j], eig[n-1-j])
		}
		if !near(res[inds[j]], res[inds[n-1-j]]) {
			return nil, nil, fmt.Errorf("statistics: pade residues are not negation symmetric: %g vs %g",
				res[inds[j]], res[inds[n-1-j]])
		}
	}

	izp = make([]complex128, num)
	resids = make([]float64, num)
	for j := 0; j < num; j++ {
		k := num + j
		izp[j] = complex(0, eig[k]/beta)
		resids[j] = res[inds[k]]
	}
	return izp, resids, nil
}
