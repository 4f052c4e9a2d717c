package simplecubic

import (
	"math/big"

	"github.com/cwbudde/algo-gf/internal/ellipticmath"
	"github.com/cwbudde/algo-gf/mpc"
)

// GfZBig evaluates the Green's function in arbitrary-precision arithmetic.
// The computation runs at the precision of z plus guard bits and the result
// is rounded back to the precision of z. z must be nonzero.
func GfZBig(z *mpc.Complex, halfBandwidth float64) *mpc.Complex {
	prec := z.Prec()
	if prec == 0 {
		prec = 53
	}
	wp := prec + 32

	dInv := new(big.Float).SetPrec(wp).Quo(big.NewFloat(3), big.NewFloat(halfBandwidth))
	one := mpc.FromFloat64(1, 0, wp)
	three := mpc.FromFloat64(3, 0, wp)
	nine := mpc.FromFloat64(9, 0, wp)

	zn := z.Copy()
	zn.Real.SetPrec(wp)
	zn.Imag.SetPrec(wp)
	zn = zn.Scale(dInv)

	zSqr := zn.Mul(zn).Inv()
	xi := one.Sub(one.Sub(zSqr).Sqrt()).Sqrt().Div(
		one.Add(one.Sub(nine.Mul(zSqr)).Sqrt()).Sqrt())

	xi2 := xi.Mul(xi)
	omXi := one.Sub(xi)
	denom := omXi.Mul(omXi).Mul(omXi).Mul(one.Add(three.Mul(xi)))
	k2 := mpc.FromFloat64(16, 0, wp).Mul(xi).Mul(xi2).Div(denom)

	twoOverPi := new(big.Float).SetPrec(wp).Quo(big.NewFloat(2), mpc.Pi(wp))
	elliptic := ellipticmath.EllipKMBig(k2).Scale(twoOverPi)

	green := one.Sub(nine.Mul(xi2).Mul(xi2)).Mul(elliptic).Mul(elliptic).Div(denom).Div(zn)

	res := green.Scale(dInv)
	res.Real.SetPrec(prec)
	res.Imag.SetPrec(prec)
	return res
}

// DOSBig evaluates the density of states at a single real frequency in
// arbitrary-precision arithmetic, at the precision of eps. At eps = 0 it
// uses Joyce's closed form instead of the singular Green's-function limit.
func DOSBig(eps *big.Float, halfBandwidth float64) *big.Float {
	prec := eps.Prec()
	if prec == 0 {
		prec = 53
	}
	wp := prec + 32

	dInv := new(big.Float).SetPrec(wp).Quo(big.NewFloat(3), big.NewFloat(halfBandwidth))
	pi := mpc.Pi(wp)

	if eps.Sign() == 0 {
		km2 := new(big.Float).SetPrec(wp).Sqrt(big.NewFloat(3).SetPrec(wp))
		km2.Sub(big.NewFloat(2).SetPrec(wp), km2)
		km2.Quo(km2, big.NewFloat(4))
		kmc := new(big.Float).Sub(big.NewFloat(1).SetPrec(wp), km2)

		kk := ellipticmath.EllipKMBig(mpc.FromFloat(km2, new(big.Float).SetPrec(wp))).Real
		kp := ellipticmath.EllipKMBig(mpc.FromFloat(kmc, new(big.Float).SetPrec(wp))).Real

		res := new(big.Float).Mul(kk, kp)
		res.Mul(res, dInv)
		res.Mul(res, big.NewFloat(2))
		res.Quo(res, pi)
		res.Quo(res, pi)
		res.Quo(res, pi)
		return res.SetPrec(prec)
	}

	z := mpc.FromFloat(new(big.Float).Abs(eps), new(big.Float))
	z.Real.SetPrec(wp)
	z.Imag.SetPrec(wp)
	g := GfZBig(z, halfBandwidth)

	res := new(big.Float).SetPrec(prec).Quo(g.Imag, pi)
	return res.Neg(res)
}
