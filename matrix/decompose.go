package matrix

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// dropTol decides when a candidate eigenvector is linearly dependent on the
// already accepted ones. Candidates start out with unit norm, so anything
// this small is numerical residue rather than a new direction.
const dropTol = 1e-6

// DecomposeGfSym decomposes a real symmetric banded inverse Green's
// function. Symmetric matrices diagonalize orthogonally, so the inverse of
// the eigenvector matrix is its transpose. The eigenvalues are returned in
// ascending order.
func DecomposeGfSym(gInv *mat.SymBandDense) (rvInv *mat.CDense, xi []complex128, rv *mat.CDense, err error) {
	var eig mat.EigenSym
	if !eig.Factorize(gInv, true) {
		return nil, nil, nil, errors.New("matrix: symmetric eigendecomposition did not converge")
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	n := gInv.SymmetricDim()
	xi = make([]complex128, n)
	for i, v := range vals {
		xi[i] = complex(v, 0)
	}
	rv = mat.NewCDense(n, n, nil)
	rvInv = mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := complex(vecs.At(i, j), 0)
			rv.Set(i, j, v)
			rvInv.Set(j, i, v)
		}
	}
	return rvInv, xi, rv, nil
}

// DecomposeHamiltonian decomposes a Hermitian matrix. The eigenvalues are
// real and returned in ascending order; the eigenvectors are unitary, so
// the inverse of the eigenvector matrix is its conjugate transpose.
//
// The matrix is diagonalized through its real symmetric embedding, which
// doubles every eigenvalue; one member of each pair is kept.
func DecomposeHamiltonian(h mat.CMatrix) (rvInv *mat.CDense, xi []complex128, rv *mat.CDense, err error) {
	n, c := h.Dims()
	if n != c {
		return nil, nil, nil, fmt.Errorf("matrix: hamiltonian is %dx%d, want square", n, c)
	}

	var eig mat.EigenSym
	if !eig.Factorize(embedHermitian(h), true) {
		return nil, nil, nil, errors.New("matrix: hermitian eigendecomposition did not converge")
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	var cols [][]complex128
	for k := 0; k < 2*n && len(cols) < n; k++ {
		cand := make([]complex128, n)
		for i := 0; i < n; i++ {
			cand[i] = complex(vecs.At(i, k), vecs.At(n+i, k))
		}
		// Eigenvectors of a Hermitian matrix are mutually orthogonal, so
		// projecting against every accepted vector both deduplicates the
		// doubled pairs and stabilizes degenerate clusters.
		for _, kept := range cols {
			caxpy(cand, kept, -cdot(kept, cand))
		}
		norm := cnorm(cand)
		if norm < dropTol {
			continue
		}
		cscale(cand, complex(1/norm, 0))
		cols = append(cols, cand)
		xi = append(xi, complex(vals[k], 0))
	}
	if len(cols) != n {
		return nil, nil, nil, fmt.Errorf("matrix: recovered %d of %d eigenvectors from the embedding", len(cols), n)
	}

	rv = colsToCDense(cols)
	rvInv = mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rvInv.Set(j, i, cmplx.Conj(cols[j][i]))
		}
	}
	return rvInv, xi, rv, nil
}

// DecomposeGf decomposes a general diagonalizable complex matrix. The
// inverse of the eigenvector matrix is computed explicitly; the eigenvalue
// order follows the underlying solver.
//
// The real embedding carries the spectra of both the matrix and its
// conjugate. Eigenvectors of the conjugate spectrum map to zero candidates
// and are discarded.
func DecomposeGf(gInv mat.CMatrix) (rvInv *mat.CDense, xi []complex128, rv *mat.CDense, err error) {
	n, c := gInv.Dims()
	if n != c {
		return nil, nil, nil, fmt.Errorf("matrix: matrix is %dx%d, want square", n, c)
	}

	var eig mat.Eigen
	if !eig.Factorize(embedComplex(gInv), mat.EigenRight) {
		return nil, nil, nil, errors.New("matrix: eigendecomposition did not converge")
	}
	vals := eig.Values(nil)
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	maxAbs := 0.0
	for _, v := range vals {
		if a := cmplx.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	clusterTol := 1e-8 * math.Max(1, maxAbs)

	var cols [][]complex128
	for k := 0; k < 2*n && len(cols) < n; k++ {
		cand := make([]complex128, n)
		for i := 0; i < n; i++ {
			cand[i] = vecs.At(i, k) + complex(0, 1)*vecs.At(n+i, k)
		}
		if cnorm(cand) < dropTol {
			continue
		}
		// Without normality only vectors of the same eigenvalue may be
		// projected out; eigenvectors of distinct eigenvalues need not be
		// orthogonal.
		for j, kept := range cols {
			if cmplx.Abs(vals[k]-xi[j]) > clusterTol {
				continue
			}
			caxpy(cand, kept, -cdot(kept, cand))
		}
		norm := cnorm(cand)
		if norm < dropTol {
			continue
		}
		cscale(cand, complex(1/norm, 0))
		cols = append(cols, cand)
		xi = append(xi, vals[k])
	}
	if len(cols) != n {
		return nil, nil, nil, fmt.Errorf("matrix: recovered %d of %d eigenvectors from the embedding", len(cols), n)
	}

	rv = colsToCDense(cols)
	rvInv, err = cinvert(rv)
	if err != nil {
		return nil, nil, nil, err
	}
	return rvInv, xi, rv, nil
}

// embedHermitian builds the real symmetric embedding [[Re, -Im], [Im, Re]]
// of a Hermitian matrix.
func embedHermitian(h mat.CMatrix) *mat.SymDense {
	n, _ := h.Dims()
	dim := 2 * n
	data := make([]float64, dim*dim)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := h.At(i, j)
			data[i*dim+j] = real(v)
			data[i*dim+n+j] = -imag(v)
			data[(n+i)*dim+j] = imag(v)
			data[(n+i)*dim+n+j] = real(v)
		}
	}
	return mat.NewSymDense(dim, data)
}

// embedComplex builds the real embedding [[Re, -Im], [Im, Re]] of a general
// complex matrix.
func embedComplex(a mat.CMatrix) *mat.Dense {
	n, _ := a.Dims()
	dim := 2 * n
	emb := mat.NewDense(dim, dim, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			emb.Set(i, j, real(v))
			emb.Set(i, n+j, -imag(v))
			emb.Set(n+i, j, imag(v))
			emb.Set(n+i, n+j, real(v))
		}
	}
	return emb
}

// cinvert inverts a complex matrix through its real embedding. An
// ill-conditioned but regular matrix is tolerated, mirroring the behavior
// of dense LAPACK inverses.
func cinvert(a *mat.CDense) (*mat.CDense, error) {
	n, _ := a.Dims()
	var inv mat.Dense
	if err := inv.Inverse(embedComplex(a)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("matrix: inverting eigenvector matrix: %w", err)
		}
	}
	out := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, complex(inv.At(i, j), inv.At(n+i, j)))
		}
	}
	return out, nil
}

func colsToCDense(cols [][]complex128) *mat.CDense {
	n := len(cols)
	out := mat.NewCDense(n, n, nil)
	for j, col := range cols {
		for i, v := range col {
			out.Set(i, j, v)
		}
	}
	return out
}

// cdot returns the Hermitian inner product conj(a).b.
func cdot(a, b []complex128) complex128 {
	var sum complex128
	for i := range a {
		sum += cmplx.Conj(a[i]) * b[i]
	}
	return sum
}

func cnorm(a []complex128) float64 {
	sum := 0.0
	for _, v := range a {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(sum)
}

// caxpy adds alpha*x to dst elementwise.
func caxpy(dst, x []complex128, alpha complex128) {
	for i := range dst {
		dst[i] += alpha * x[i]
	}
}

func cscale(a []complex128, alpha complex128) {
	for i := range a {
		a[i] *= alpha
	}
}
