// Package matrix provides eigendecomposition utilities for Green's
// functions in matrix form.
//
// In the limit of infinite coordination the self-energy becomes local and
// the inverse Green's function takes the form
//
//	G^-1(z)_ii = z - mu_i - t_ii - Sigma_i(z)
//	G^-1(z)_ij = t_ij  for i != j
//
// Computing G from G^-1 for many frequencies is cheapest through one
// eigendecomposition: G^-1 = rv diag(xi) rv^-1 implies
// G = rv diag(1/xi) rv^-1. A Decomposition bundles the three arrays and
// offers reconstruction with modified eigenvalues, so any scalar function
// of the matrix costs one decomposition plus cheap diagonal transforms.
//
// # Decomposition constructors
//
// DecomposeGfSym handles real symmetric banded matrices, where the
// eigenvectors are orthogonal and the inverse is a plain transpose.
// DecomposeHamiltonian handles Hermitian matrices with unitary
// eigenvectors. DecomposeGf handles general diagonalizable complex
// matrices and inverts the eigenvector matrix explicitly.
//
// The underlying LAPACK routines are real-valued, so complex inputs are
// solved through their 2Nx2N real embedding [[Re, -Im], [Im, Re]] and the
// eigenpairs are mapped back afterwards.
package matrix
