// Package rectangular implements the local Green's function of the 2D
// rectangular lattice with anisotropic nearest-neighbor hopping.
//
// The momentum integral reduces to a complete elliptic integral of the
// first kind (Morita and Horiguchi, J. Math. Phys. 12, 986 (1971)). The
// anisotropy enters as the ratio scale of the hoppings along the two axes;
// scale = 1 recovers the square lattice.
package rectangular

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-gf/internal/ellipticmath"
	"github.com/cwbudde/algo-gf/internal/vecmath"
)

// GfZ evaluates the local Green's function at the complex frequency z.
//
// halfBandwidth is the half-bandwidth D of the spectrum, so the band covers
// [-D, D]. scale is the hopping anisotropy t1/t2. The retarded branch is
// returned: Im GfZ <= 0 for Im z > 0, and on the real axis GfZ is the limit
// from the upper half-plane for positive frequencies, continued as an odd
// function to negative ones.
func GfZ(z complex128, halfBandwidth, scale float64) complex128 {
	d := halfBandwidth / (1 + scale)
	zn := z / complex(d, 0)
	sm1p2 := (scale - 1) * (scale - 1)
	k1 := complex(4*scale, 0) / (zn*zn - complex(sm1p2, 0))
	elliptic := ellipticmath.EllipKM(k1)
	zInv := 1 / zn
	k1sqrt := 1 / cmplx.Sqrt(1-complex(sm1p2, 0)*zInv*zInv)
	return complex(2/(math.Pi*d), 0) * zInv * k1sqrt * elliptic
}

// GfZInto evaluates the Green's function at every frequency in z and writes
// the results to dst.
func GfZInto(dst, z []complex128, halfBandwidth, scale float64) error {
	if len(dst) != len(z) {
		return fmt.Errorf("rectangular: dst length %d does not match z length %d", len(dst), len(z))
	}
	if halfBandwidth <= 0 {
		return fmt.Errorf("rectangular: half-bandwidth %g is not positive", halfBandwidth)
	}
	if scale <= 0 {
		return fmt.Errorf("rectangular: scale %g is not positive", scale)
	}

	for i, zi := range z {
		dst[i] = GfZ(zi, halfBandwidth, scale)
	}

	return nil
}

// DOS computes the density of states -Im GfZ(eps+i0)/pi on the real
// frequency grid eps. The density of states is even in eps, vanishes outside
// [-D, D], and diverges logarithmically at the van Hove energy
// D*(scale-1)/(scale+1) (at eps = 0 for the square lattice).
func DOS(eps []float64, halfBandwidth, scale float64) ([]float64, error) {
	if halfBandwidth <= 0 {
		return nil, fmt.Errorf("rectangular: half-bandwidth %g is not positive", halfBandwidth)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("rectangular: scale %g is not positive", scale)
	}

	dos := make([]float64, len(eps))
	for i, e := range eps {
		dos[i] = imagGfReal(math.Abs(e), halfBandwidth, scale)
	}
	vecmath.ScaleBlock(dos, dos, -1/math.Pi)

	return dos, nil
}

// imagGfReal returns Im GfZ(eps+i0) for eps >= 0. The generic formula
// divides by z, so the band center takes the analytic z -> 0 limit instead.
func imagGfReal(eps, halfBandwidth, scale float64) float64 {
	if eps > 0 {
		return imag(GfZ(complex(eps, 0), halfBandwidth, scale))
	}
	if scale == 1 {
		// The van Hove energy of the square lattice.
		return math.Inf(-1)
	}
	d := halfBandwidth / (1 + scale)
	sm1 := math.Abs(scale - 1)
	k := real(ellipticmath.EllipKM(complex(-4*scale/(sm1*sm1), 0)))
	return -2 * k / (math.Pi * d * sm1)
}
