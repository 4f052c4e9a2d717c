// Package square implements the local Green's function of the 2D square
// lattice, the isotropic special case of the rectangular lattice.
package square

import "github.com/cwbudde/algo-gf/lattice/rectangular"

// GfZ evaluates the local Green's function at the complex frequency z.
// halfBandwidth is the half-bandwidth D of the spectrum; it corresponds to
// a nearest-neighbor hopping of t = D/4.
func GfZ(z complex128, halfBandwidth float64) complex128 {
	return rectangular.GfZ(z, halfBandwidth, 1)
}

// GfZInto evaluates the Green's function at every frequency in z and writes
// the results to dst.
func GfZInto(dst, z []complex128, halfBandwidth float64) error {
	return rectangular.GfZInto(dst, z, halfBandwidth, 1)
}

// DOS computes the density of states -Im GfZ(eps+i0)/pi on the real
// frequency grid eps. It diverges logarithmically at eps = 0.
func DOS(eps []float64, halfBandwidth float64) ([]float64, error) {
	return rectangular.DOS(eps, halfBandwidth, 1)
}
