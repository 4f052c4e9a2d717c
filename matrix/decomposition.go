package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// mulCDense returns the product a*b, delegating to the cblas128 layer;
// mat.CDense carries no multiplication of its own.
func mulCDense(a, b *mat.CDense) *mat.CDense {
	ar, _ := a.Dims()
	_, bc := b.Dims()
	out := mat.NewCDense(ar, bc, nil)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.RawCMatrix(), b.RawCMatrix(), 0, out.RawCMatrix())
	return out
}

// Decomposition bundles an eigendecomposition: the right eigenvectors RV
// (as columns), the eigenvalues Xi, and the inverse RVInv of the
// eigenvector matrix. It reconstructs rv diag(xi) rv^-1 with the stored or
// caller-supplied eigenvalues.
//
// The triple is ordered (RV, Xi, RVInv); Unpack returns it in exactly that
// order. For symmetric inputs RVInv is the transpose of RV, for Hermitian
// inputs the conjugate transpose.
type Decomposition struct {
	RV    *mat.CDense
	Xi    []complex128
	RVInv *mat.CDense
}

// NewDecomposition validates the shapes of the triple and bundles it.
func NewDecomposition(rv *mat.CDense, xi []complex128, rvInv *mat.CDense) (*Decomposition, error) {
	n, c := rv.Dims()
	if n != c {
		return nil, fmt.Errorf("matrix: eigenvector matrix is %dx%d, want square", n, c)
	}
	if len(xi) != n {
		return nil, fmt.Errorf("matrix: got %d eigenvalues for %dx%d eigenvectors", len(xi), n, n)
	}
	ri, ci := rvInv.Dims()
	if ri != n || ci != n {
		return nil, fmt.Errorf("matrix: inverse eigenvector matrix is %dx%d, want %dx%d", ri, ci, n, n)
	}
	return &Decomposition{RV: rv, Xi: xi, RVInv: rvInv}, nil
}

// Unpack returns the stored triple in the fixed order rv, xi, rvInv.
func (d *Decomposition) Unpack() (rv *mat.CDense, xi []complex128, rvInv *mat.CDense) {
	return d.RV, d.Xi, d.RVInv
}

// Apply replaces every stored eigenvalue by f(eigenvalue). Combined with
// ReconstructFull this evaluates f of the decomposed matrix.
func (d *Decomposition) Apply(f func(complex128) complex128) {
	for i, x := range d.Xi {
		d.Xi[i] = f(x)
	}
}

// ReconstructFull returns rv diag(xi) rv^-1. A nil xi uses the stored
// eigenvalues.
func (d *Decomposition) ReconstructFull(xi []complex128) (*mat.CDense, error) {
	xi, err := d.effectiveXi(xi)
	if err != nil {
		return nil, err
	}

	n := len(xi)
	scaled := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			scaled.Set(i, j, d.RV.At(i, j)*xi[j])
		}
	}
	return mulCDense(scaled, d.RVInv), nil
}

// ReconstructDiag returns only the diagonal of rv diag(xi) rv^-1, skipping
// the full matrix product. A nil xi uses the stored eigenvalues.
func (d *Decomposition) ReconstructDiag(xi []complex128) ([]complex128, error) {
	xi, err := d.effectiveXi(xi)
	if err != nil {
		return nil, err
	}

	n := len(xi)
	diag := make([]complex128, n)
	for i := 0; i < n; i++ {
		var sum complex128
		for j := 0; j < n; j++ {
			sum += d.RV.At(i, j) * xi[j] * d.RVInv.At(j, i)
		}
		diag[i] = sum
	}
	return diag, nil
}

// ReconstructFullAll evaluates ReconstructFull for every eigenvalue set in
// xis, typically one set per frequency.
func (d *Decomposition) ReconstructFullAll(xis [][]complex128) ([]*mat.CDense, error) {
	out := make([]*mat.CDense, len(xis))
	for k, xi := range xis {
		m, err := d.ReconstructFull(xi)
		if err != nil {
			return nil, err
		}
		out[k] = m
	}
	return out, nil
}

// ReconstructDiagAll evaluates ReconstructDiag for every eigenvalue set in
// xis, typically one set per frequency.
func (d *Decomposition) ReconstructDiagAll(xis [][]complex128) ([][]complex128, error) {
	out := make([][]complex128, len(xis))
	for k, xi := range xis {
		diag, err := d.ReconstructDiag(xi)
		if err != nil {
			return nil, err
		}
		out[k] = diag
	}
	return out, nil
}

func (d *Decomposition) effectiveXi(xi []complex128) ([]complex128, error) {
	if xi == nil {
		return d.Xi, nil
	}
	if len(xi) != len(d.Xi) {
		return nil, fmt.Errorf("matrix: xi has length %d, want %d", len(xi), len(d.Xi))
	}
	return xi, nil
}

// ConstructGf builds the Green's function from the eigendecomposition of
// its inverse: rv diag(diagInv) rv^-1, where diagInv holds the reciprocal
// eigenvalues of G^-1.
func ConstructGf(rvInv *mat.CDense, diagInv []complex128, rv *mat.CDense) (*mat.CDense, error) {
	d, err := NewDecomposition(rv, diagInv, rvInv)
	if err != nil {
		return nil, err
	}
	return d.ReconstructFull(nil)
}
