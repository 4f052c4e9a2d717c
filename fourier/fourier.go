// Package fourier transforms fermionic Green's functions between the
// imaginary-time and Matsubara-frequency representations.
//
// Imaginary-time data lives on the equidistant grid tau_l = l*beta/L for
// l = 0..L, Matsubara data on the fermionic frequencies
// iw_n = i*pi*(2n+1)/beta. The transforms work on the anti-periodic
// extension of the input to [0, 2*beta], so a grid of L+1 points maps to
// L/2 frequencies and back. All transforms truncate the slowly decaying
// 1/(iw) tail; the function comments state how to remove and restore it.
package fourier

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Tau2IwDFT computes the Matsubara Green's function from imaginary-time
// samples by the plain discrete Fourier transform.
//
// gfTau holds G(tau_l) on tau_l = l*beta/L for l = 0..L, so len(gfTau) is
// L+1 with L a power of two. The result holds G(iw_n) for n = 0..L/2-1.
// The 1/(iw) tail is truncated: for a Green's function with the standard
// unit jump, transform gfTau + 1/2 and add 1/(iw_n) to the result.
func Tau2IwDFT(gfTau []float64, beta float64) ([]complex128, error) {
	l, err := checkTauGrid(gfTau, beta)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(2 * l)
	if err != nil {
		return nil, fmt.Errorf("fourier: creating FFT plan: %w", err)
	}
	dft := make([]complex128, 2*l)
	if err := plan.Inverse(dft, antiperiodic(gfTau)); err != nil {
		return nil, fmt.Errorf("fourier: transforming: %w", err)
	}

	// Odd bins of the doubled range are the fermionic frequencies.
	gfIw := make([]complex128, l/2)
	for m := range gfIw {
		gfIw[m] = complex(-beta, 0) * dft[2*m+1]
	}

	return gfIw, nil
}

// Tau2IwLin computes the Matsubara Green's function as the exact Fourier
// integral of the piecewise-linear interpolant of the imaginary-time
// samples. Grid and tail conventions match Tau2IwDFT. Compared to the
// plain transform the interpolant suppresses the aliasing of high
// frequencies, which otherwise dominates the error towards the Nyquist
// frequency.
func Tau2IwLin(gfTau []float64, beta float64) ([]complex128, error) {
	l, err := checkTauGrid(gfTau, beta)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(2 * l)
	if err != nil {
		return nil, fmt.Errorf("fourier: creating FFT plan: %w", err)
	}
	ext := antiperiodic(gfTau)
	diff := make([]complex128, 2*l)
	for k := 0; k < 2*l-1; k++ {
		diff[k] = ext[k+1] - ext[k]
	}
	diff[2*l-1] = complex(gfTau[l], 0) - ext[2*l-1]

	dft := make([]complex128, 2*l)
	if err := plan.Inverse(dft, ext); err != nil {
		return nil, fmt.Errorf("fourier: transforming: %w", err)
	}
	ddft := make([]complex128, 2*l)
	if err := plan.Inverse(ddft, diff); err != nil {
		return nil, fmt.Errorf("fourier: transforming increments: %w", err)
	}

	gfIw := make([]complex128, l/2)
	for m := range gfIw {
		w1, w2 := linWeights(math.Pi * float64(2*m+1) / float64(l))
		gfIw[m] = complex(-beta, 0) * (w1*dft[2*m+1] + w2*ddft[2*m+1])
	}

	return gfIw, nil
}

// Iw2TauDFT computes imaginary-time samples from the Matsubara Green's
// function by the truncated frequency sum.
//
// gfIw holds G(iw_n) for n = 0..N-1 with N a power of two. The result
// holds G(tau_l) on tau_l = l*beta/(2N) for l = 0..2N and satisfies
// G(beta) = -G(0) by construction. The truncated 1/(iw) tail converges
// poorly in tau: transform gfIw - 1/(iw_n) and subtract 1/2 from the
// result.
func Iw2TauDFT(gfIw []complex128, beta float64) ([]float64, error) {
	if beta <= 0 {
		return nil, fmt.Errorf("fourier: beta %g is not positive", beta)
	}
	n := len(gfIw)
	if n < 1 || n&(n-1) != 0 {
		return nil, fmt.Errorf("fourier: need a power-of-two frequency count, got %d", n)
	}

	plan, err := algofft.NewPlan64(4 * n)
	if err != nil {
		return nil, fmt.Errorf("fourier: creating FFT plan: %w", err)
	}
	// Hermitian spectrum of the doubled range: odd positive bins carry
	// gfIw, their mirrors the conjugates, even bins stay empty.
	spectrum := make([]complex128, 4*n)
	for m, g := range gfIw {
		g /= complex(beta, 0)
		spectrum[2*m+1] = g
		spectrum[4*n-(2*m+1)] = cmplx.Conj(g)
	}
	out := make([]complex128, 4*n)
	if err := plan.Forward(out, spectrum); err != nil {
		return nil, fmt.Errorf("fourier: transforming: %w", err)
	}

	gfTau := make([]float64, 2*n+1)
	for k := range gfTau {
		gfTau[k] = real(out[k])
	}

	return gfTau, nil
}

// checkTauGrid validates a tau-sampled input and returns the interval
// count L.
func checkTauGrid(gfTau []float64, beta float64) (int, error) {
	if beta <= 0 {
		return 0, fmt.Errorf("fourier: beta %g is not positive", beta)
	}
	l := len(gfTau) - 1
	if l < 2 || l&(l-1) != 0 {
		return 0, fmt.Errorf("fourier: need 2^m+1 tau points with m >= 1, got %d", len(gfTau))
	}
	return l, nil
}

// antiperiodic returns the first 2L samples of gfTau extended
// anti-periodically from [0, beta] to [0, 2*beta]: -G on the first half,
// G on the second.
func antiperiodic(gfTau []float64) []complex128 {
	l := len(gfTau) - 1
	ext := make([]complex128, 2*l)
	for k := 0; k < l; k++ {
		ext[k] = complex(-gfTau[k], 0)
		ext[l+k] = complex(gfTau[k], 0)
	}
	return ext
}

// Taylor coefficients of (x*e^x - e^x + 1)/x^2 = sum_j (j+1)/(j+2)! x^j.
var w2Series = [...]float64{1.0 / 2, 1.0 / 3, 1.0 / 8, 1.0 / 30, 1.0 / 144, 1.0 / 840, 1.0 / 5760}

// linWeights returns the segment weights of the piecewise-linear Fourier
// integral, w1 = (e^x - 1)/x and w2 = (x*e^x - e^x + 1)/x^2 at x = i*theta.
// The closed w2 form cancels badly for small theta, where the series takes
// over.
func linWeights(theta float64) (w1, w2 complex128) {
	x := complex(0, theta)
	s, c := math.Sincos(theta / 2)
	em1 := complex(-2*s*s, 2*s*c) // e^(i*theta) - 1 without cancellation
	w1 = em1 / x
	if theta >= 0.03 {
		w2 = ((x-1)*em1 + x) / (x * x)
		return w1, w2
	}
	for j := len(w2Series) - 1; j >= 0; j-- {
		w2 = w2*x + complex(w2Series[j], 0)
	}
	return w1, w2
}
