package testutil

import (
	"math/cmplx"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RandomHermitian returns a reproducible n-by-n Hermitian matrix with
// entries of magnitude O(1).
func RandomHermitian(seed int64, n int) *mat.CDense {
	rng := rand.New(rand.NewSource(seed))
	h := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		h.Set(i, i, complex(rng.Float64()*2-1, 0))
		for j := i + 1; j < n; j++ {
			v := complex(rng.Float64()*2-1, rng.Float64()*2-1)
			h.Set(i, j, v)
			h.Set(j, i, cmplx.Conj(v))
		}
	}
	return h
}

// RandomCDense returns a reproducible n-by-n complex matrix with no imposed
// symmetry.
func RandomCDense(seed int64, n int) *mat.CDense {
	rng := rand.New(rand.NewSource(seed))
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, complex(rng.Float64()*2-1, rng.Float64()*2-1))
		}
	}
	return m
}

// RandomSymBand returns a reproducible n-by-n real symmetric matrix with
// bandwidth k, in banded storage.
func RandomSymBand(seed int64, n, k int) *mat.SymBandDense {
	rng := rand.New(rand.NewSource(seed))
	b := mat.NewSymBandDense(n, k, nil)
	for i := 0; i < n; i++ {
		for j := i; j <= i+k && j < n; j++ {
			b.SetSymBand(i, j, rng.Float64()*2-1)
		}
	}
	return b
}
