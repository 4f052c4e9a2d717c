package ellipticmath

import (
	"math"
	"math/big"
	"math/cmplx"

	"github.com/cwbudde/algo-gf/mpc"
)

// Landen computes the Landen sequence of descending moduli for k.
// If tol < 1 it is interpreted as a convergence threshold; otherwise
// it is interpreted as a fixed iteration count.
func Landen(k, tol float64) []float64 {
	var v []float64
	if k == 0 || k == 1.0 {
		return []float64{k}
	}
	if tol < 1 {
		for k > tol {
			t := k / (1.0 + math.Sqrt((1-k)*(1+k)))
			k = t * t
			v = append(v, k)
		}
	} else {
		M := int(tol)
		for i := 1; i <= M; i++ {
			t := k / (1.0 + math.Sqrt((1-k)*(1+k)))
			k = t * t
			v = append(v, k)
		}
	}

	return v
}

// LandenK computes K(k) from a precomputed Landen sequence using
// K(k) = (pi/2) * product(1 + v[i]).
func LandenK(v []float64) float64 {
	prod := 1.0
	for _, x := range v {
		prod *= 1.0 + x
	}
	return prod * math.Pi * 0.5
}

// EllipK computes the complete elliptic integral K(k) and K'(k).
func EllipK(k, tol float64) (float64, float64) {
	return EllipKReuse(k, tol, nil)
}

// EllipKReuse is like EllipK but accepts an optional precomputed Landen
// sequence for the K(k) half.
func EllipKReuse(k, tol float64, vk []float64) (float64, float64) {
	kmin := 1e-6
	kmax := math.Sqrt(1 - kmin*kmin)

	var K, Kp float64
	if k == 1.0 {
		K = math.Inf(1)
	} else if k > kmax {
		kp := math.Sqrt((1 - k) * (1 + k))
		L := -math.Log(kp / 4.0)
		K = L + (L-1)*kp*kp/4.0
	} else {
		if vk == nil {
			vk = Landen(k, tol)
		}
		K = LandenK(vk)
	}

	if k == 0.0 {
		Kp = math.Inf(1)
	} else if k < kmin {
		L := -math.Log(k / 4.0)
		Kp = L + (L-1.0)*k*k/4.0
	} else {
		kp := math.Sqrt((1 - k) * (1 + k))
		Kp = LandenK(Landen(kp, tol))
	}

	return K, Kp
}

// EllipKM computes the complete elliptic integral of the first kind K(m)
// for a complex parameter m = k*k, using the arithmetic-geometric mean
// K(m) = pi / (2*agm(1, sqrt(1-m))).
//
// Each AGM step picks the square-root branch satisfying |a-b| <= |a+b|,
// which keeps the iteration on the principal branch for every m off the
// cut [1, inf). Exactly on the cut, 1-m has a positive zero imaginary part
// whatever the zero sign of m, so the principal square root lands on the
// positive imaginary axis and the result equals the limit from Im m < 0.
func EllipKM(m complex128) complex128 {
	if m == 1 {
		return complex(math.Inf(1), 0)
	}
	a := complex(1, 0)
	b := cmplx.Sqrt(1 - m)
	for i := 0; i < 32; i++ {
		an := 0.5 * (a + b)
		bn := cmplx.Sqrt(a * b)
		if cmplx.Abs(an-bn) > cmplx.Abs(an+bn) {
			bn = -bn
		}
		a, b = an, bn
		if cmplx.Abs(a-b) <= 1e-15*cmplx.Abs(a) {
			break
		}
	}
	return complex(math.Pi, 0) / (2 * a)
}

// EllipKMBig is the arbitrary-precision counterpart of EllipKM. The AGM runs
// at the precision of m plus guard bits and the result is rounded back to the
// precision of m.
func EllipKMBig(m *mpc.Complex) *mpc.Complex {
	prec := m.Prec()
	if m.Imag.Sign() == 0 && m.Real.Cmp(big.NewFloat(1)) == 0 {
		return &mpc.Complex{
			Real: new(big.Float).SetInf(false),
			Imag: new(big.Float).SetPrec(prec),
		}
	}

	wp := prec + 32
	half := big.NewFloat(0.5).SetPrec(wp)
	one := mpc.FromFloat64(1, 0, wp)
	a := one
	b := one.Sub(m).Sqrt()

	eps := new(big.Float).SetMantExp(big.NewFloat(1), -int(wp)+4)
	for i := 0; i < 128; i++ {
		an := a.Add(b).Scale(half)
		bn := a.Mul(b).Sqrt()
		if an.Sub(bn).Abs().Cmp(an.Add(bn).Abs()) > 0 {
			bn = bn.Neg()
		}
		a, b = an, bn

		diff := a.Sub(b).Abs()
		bound := a.Abs()
		bound.Mul(bound, eps)
		if diff.Cmp(bound) <= 0 {
			break
		}
	}

	halfPi := mpc.Pi(wp)
	halfPi.Mul(halfPi, half)
	res := a.Inv().Scale(halfPi)
	res.Real.SetPrec(prec)
	res.Imag.SetPrec(prec)
	return res
}
