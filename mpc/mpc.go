// Package mpc implements complex arithmetic on arbitrary-precision
// floating-point numbers from math/big.
//
// A Complex holds a pair of big.Float values. All operations return newly
// allocated results and never modify their operands, so values can be shared
// freely across expressions. Result precision follows math/big conventions:
// each component is computed at the larger of the operand precisions.
//
// The package exists to back high-precision evaluations near branch points
// and band edges, where float64 cancellation destroys the last digits. It is
// not a general multiprecision library; only the operations needed for
// elliptic-integral and Green's-function evaluation are provided.
package mpc

import (
	"fmt"
	"math/big"
)

// Complex is an arbitrary-precision complex number. The zero value is not
// usable; construct values with New, FromFloat64, FromFloat or
// FromComplex128.
type Complex struct {
	Real *big.Float
	Imag *big.Float
}

// New returns 0+0i with both components at precision prec.
func New(prec uint) *Complex {
	return &Complex{
		Real: new(big.Float).SetPrec(prec),
		Imag: new(big.Float).SetPrec(prec),
	}
}

// FromFloat64 returns re+im*i at precision prec.
func FromFloat64(re, im float64, prec uint) *Complex {
	return &Complex{
		Real: big.NewFloat(re).SetPrec(prec),
		Imag: big.NewFloat(im).SetPrec(prec),
	}
}

// FromFloat returns re+im*i, copying both components.
func FromFloat(re, im *big.Float) *Complex {
	return &Complex{
		Real: new(big.Float).Copy(re),
		Imag: new(big.Float).Copy(im),
	}
}

// FromComplex128 returns z at precision prec.
func FromComplex128(z complex128, prec uint) *Complex {
	return FromFloat64(real(z), imag(z), prec)
}

// Copy returns an independent copy of z.
func (z *Complex) Copy() *Complex {
	return FromFloat(z.Real, z.Imag)
}

// Prec reports the larger of the component precisions.
func (z *Complex) Prec() uint {
	if p := z.Real.Prec(); p > z.Imag.Prec() {
		return p
	}
	return z.Imag.Prec()
}

// IsZero reports whether both components are zero (of either sign).
func (z *Complex) IsZero() bool {
	return z.Real.Sign() == 0 && z.Imag.Sign() == 0
}

// Add returns z+w.
func (z *Complex) Add(w *Complex) *Complex {
	return &Complex{
		Real: new(big.Float).Add(z.Real, w.Real),
		Imag: new(big.Float).Add(z.Imag, w.Imag),
	}
}

// Sub returns z-w.
func (z *Complex) Sub(w *Complex) *Complex {
	return &Complex{
		Real: new(big.Float).Sub(z.Real, w.Real),
		Imag: new(big.Float).Sub(z.Imag, w.Imag),
	}
}

// Mul returns z*w.
func (z *Complex) Mul(w *Complex) *Complex {
	ac := new(big.Float).Mul(z.Real, w.Real)
	bd := new(big.Float).Mul(z.Imag, w.Imag)
	ad := new(big.Float).Mul(z.Real, w.Imag)
	bc := new(big.Float).Mul(z.Imag, w.Real)
	return &Complex{
		Real: ac.Sub(ac, bd),
		Imag: ad.Add(ad, bc),
	}
}

// Div returns z/w. It panics if w is zero.
func (z *Complex) Div(w *Complex) *Complex {
	if w.IsZero() {
		panic("mpc: division by zero")
	}
	// z/w = z*conj(w) / |w|^2. The big.Float exponent range makes the
	// naive denominator safe; no Smith-style scaling is needed.
	den := absSq(w)
	num := z.Mul(w.Conj())
	return &Complex{
		Real: num.Real.Quo(num.Real, den),
		Imag: num.Imag.Quo(num.Imag, den),
	}
}

// Neg returns -z.
func (z *Complex) Neg() *Complex {
	return &Complex{
		Real: new(big.Float).Neg(z.Real),
		Imag: new(big.Float).Neg(z.Imag),
	}
}

// Conj returns the complex conjugate of z.
func (z *Complex) Conj() *Complex {
	return &Complex{
		Real: new(big.Float).Copy(z.Real),
		Imag: new(big.Float).Neg(z.Imag),
	}
}

// Inv returns 1/z. It panics if z is zero.
func (z *Complex) Inv() *Complex {
	if z.IsZero() {
		panic("mpc: inversion of zero")
	}
	den := absSq(z)
	c := z.Conj()
	return &Complex{
		Real: c.Real.Quo(c.Real, den),
		Imag: c.Imag.Quo(c.Imag, den),
	}
}

// Scale returns z*x for a real factor x.
func (z *Complex) Scale(x *big.Float) *Complex {
	return &Complex{
		Real: new(big.Float).Mul(z.Real, x),
		Imag: new(big.Float).Mul(z.Imag, x),
	}
}

// Abs returns |z|.
func (z *Complex) Abs() *big.Float {
	s := absSq(z)
	return s.Sqrt(s)
}

// absSq returns |z|^2.
func absSq(z *Complex) *big.Float {
	rr := new(big.Float).Mul(z.Real, z.Real)
	ii := new(big.Float).Mul(z.Imag, z.Imag)
	return rr.Add(rr, ii)
}

// Sqrt returns the principal square root of z, with the branch cut along the
// negative real axis. The sign of a zero imaginary part selects the side of
// the cut, so Sqrt(-1+0i) = i and Sqrt(-1-0i) = -i.
func (z *Complex) Sqrt() *Complex {
	a, b := z.Real, z.Imag
	if b.Sign() == 0 {
		if a.Sign() >= 0 {
			re := new(big.Float).Sqrt(a)
			return &Complex{Real: re, Imag: new(big.Float).Copy(b)}
		}
		t := new(big.Float).Neg(a)
		t.Sqrt(t)
		if b.Signbit() {
			t.Neg(t)
		}
		return &Complex{Real: new(big.Float).SetPrec(z.Prec()), Imag: t}
	}
	// t = sqrt((|z| + |Re z|)/2) avoids cancellation for every quadrant.
	r := z.Abs()
	absA := new(big.Float).Abs(a)
	t := r.Add(r, absA)
	t.Quo(t, big.NewFloat(2).SetPrec(t.Prec()))
	t.Sqrt(t)
	twoT := new(big.Float).Add(t, t)
	if a.Sign() >= 0 {
		im := new(big.Float).Quo(b, twoT)
		return &Complex{Real: t, Imag: im}
	}
	re := new(big.Float).Abs(b)
	re.Quo(re, twoT)
	if b.Signbit() {
		t.Neg(t)
	}
	return &Complex{Real: re, Imag: t}
}

// Complex128 returns the nearest complex128 value.
func (z *Complex) Complex128() complex128 {
	re, _ := z.Real.Float64()
	im, _ := z.Imag.Float64()
	return complex(re, im)
}

// String formats z as "(re+imi)" using the minimal digits that round-trip.
func (z *Complex) String() string {
	im := z.Imag.Text('g', -1)
	if z.Imag.Signbit() {
		return fmt.Sprintf("(%s%si)", z.Real.Text('g', -1), im)
	}
	return fmt.Sprintf("(%s+%si)", z.Real.Text('g', -1), im)
}
