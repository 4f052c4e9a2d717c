package simplecubic

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-gf/internal/ellipticmath"
)

// GfZ evaluates the local Green's function at the complex frequency z.
//
// halfBandwidth is the half-bandwidth D of the spectrum, so the band covers
// [-D, D]. The retarded branch is returned: Im GfZ <= 0 for Im z > 0, and on
// the real axis GfZ is the limit from the upper half-plane for positive
// frequencies, continued as an odd function to negative ones.
func GfZ(z complex128, halfBandwidth float64) complex128 {
	dInv := 3 / halfBandwidth
	zn := complex(dInv, 0) * z
	zSqr := 1 / (zn * zn)
	xi := cmplx.Sqrt(1-cmplx.Sqrt(1-zSqr)) / cmplx.Sqrt(1+cmplx.Sqrt(1-9*zSqr))

	xi2 := xi * xi
	omXi := 1 - xi
	denomInv := 1 / (omXi * omXi * omXi * (1 + 3*xi))
	k2 := 16 * xi * xi2 * denomInv
	elliptic := complex(2/math.Pi, 0) * ellipticmath.EllipKM(k2)
	green := (1 - 9*xi2*xi2) * elliptic * elliptic * denomInv / zn

	return complex(dInv, 0) * green
}

// GfZInto evaluates the Green's function at every frequency in z and writes
// the results to dst.
func GfZInto(dst, z []complex128, halfBandwidth float64) error {
	if len(dst) != len(z) {
		return fmt.Errorf("simplecubic: dst length %d does not match z length %d", len(dst), len(z))
	}
	if halfBandwidth <= 0 {
		return fmt.Errorf("simplecubic: half-bandwidth %g is not positive", halfBandwidth)
	}

	for i, zi := range z {
		dst[i] = GfZ(zi, halfBandwidth)
	}

	return nil
}

// DOS computes the density of states -Im GfZ(eps+i0)/pi on the real
// frequency grid eps. The density of states is even in eps and vanishes
// outside [-D, D]. At eps = 0 the closed form of Joyce (Phil. Trans. R.
// Soc. A 273, 583 (1973), eq. 7.37) replaces the Green's-function limit,
// which is singular there.
func DOS(eps []float64, halfBandwidth float64) ([]float64, error) {
	dos := make([]float64, len(eps))
	if err := DOSInto(dos, eps, halfBandwidth); err != nil {
		return nil, err
	}
	return dos, nil
}

// DOSInto is like DOS but writes the result to dst.
func DOSInto(dst, eps []float64, halfBandwidth float64) error {
	if len(dst) != len(eps) {
		return fmt.Errorf("simplecubic: dst length %d does not match eps length %d", len(dst), len(eps))
	}
	if halfBandwidth <= 0 {
		return fmt.Errorf("simplecubic: half-bandwidth %g is not positive", halfBandwidth)
	}

	for i, e := range eps {
		dst[i] = dosPoint(math.Abs(e), halfBandwidth)
	}

	return nil
}

func dosPoint(eps, halfBandwidth float64) float64 {
	dInv := 3 / halfBandwidth
	if eps == 0 {
		km2 := 0.25 * (2 - math.Sqrt(3))
		kk, kp := ellipticmath.EllipK(math.Sqrt(km2), 1e-15)
		return dInv * (2 / (math.Pi * math.Pi)) * kk * kp / math.Pi
	}
	return -imag(GfZ(complex(eps, 0), halfBandwidth)) / math.Pi
}
