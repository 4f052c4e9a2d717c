// Package simplecubic implements the local Green's function of the 3D
// simple cubic lattice.
//
// The closed form follows Delves and Joyce, Ann. Phys. 291, 71 (2001),
// equations (1.24)-(1.26): a nested square-root substitution reduces the
// lattice integral to the square of a complete elliptic integral of the
// first kind. The half-bandwidth D corresponds to a nearest-neighbor
// hopping of t = D/6.
//
// The density of states has van Hove singularities at eps = +-D/3, where it
// is continuous but not differentiable. Close to these points float64
// evaluation loses accuracy to cancellation; GfZBig and DOSBig evaluate the
// same formula in arbitrary-precision arithmetic, one scalar at a time.
package simplecubic
