// Package statistics provides thermal occupation functions and frequency
// grids for many-body Green's function calculations.
//
// # Occupation functions
//
// Fermi and Bose evaluate the Fermi-Dirac and Bose-Einstein distributions
// with overflow-safe branches: only non-positive arguments are exponentiated,
// so results stay accurate for |beta*eps| far beyond the float64 exponent
// range.
//
//	f := statistics.Fermi(eps, beta)
//	n := statistics.Bose(eps, beta)
//
// FermiInv maps an occupation back to its energy, and FermiD1 returns the
// energy derivative needed for susceptibility and compressibility integrals.
// FermiC extends the Fermi function to complex arguments, branching on the
// sign of the real part.
//
// # Matsubara frequencies
//
// MatsubaraFrequencies and MatsubaraFrequenciesB return the fermionic and
// bosonic imaginary frequencies i*pi*(2n+1)/beta and i*2*pi*n/beta for a set
// of indices.
//
// # Pade frequencies
//
// PadeFrequencies computes poles and residues of the continued-fraction
// representation of the Fermi function introduced by Ozaki (Phys. Rev. B 75,
// 035123, 2007). Sums over a few dozen Pade frequencies converge where
// thousands of plain Matsubara frequencies would be needed:
//
//	izp, resids, err := statistics.PadeFrequencies(50, beta)
//
// The poles come back sorted along the positive imaginary axis; the negative
// counterparts follow from symmetry.
//
// # Density integration
//
// Density integrates a spectral density against the Fermi function on a
// uniform energy grid, yielding the particle number per lattice site and
// spin.
package statistics
