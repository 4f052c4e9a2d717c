package mpc

import (
	"math/big"
	"sync"
)

var piCache struct {
	sync.Mutex
	byPrec map[uint]*big.Float
}

// Pi returns pi at precision prec. The returned value is a private copy and
// may be mutated by the caller.
func Pi(prec uint) *big.Float {
	piCache.Lock()
	cached, ok := piCache.byPrec[prec]
	piCache.Unlock()
	if ok {
		return new(big.Float).Copy(cached)
	}

	p := computePi(prec)

	piCache.Lock()
	if piCache.byPrec == nil {
		piCache.byPrec = make(map[uint]*big.Float)
	}
	piCache.byPrec[prec] = new(big.Float).Copy(p)
	piCache.Unlock()
	return p
}

// computePi runs the Gauss-Legendre AGM iteration, which doubles the number
// of correct digits per step. 32 guard bits absorb the rounding of the final
// division before the result is rounded to prec.
func computePi(prec uint) *big.Float {
	wp := prec + 32
	half := big.NewFloat(0.5).SetPrec(wp)

	a := big.NewFloat(1).SetPrec(wp)
	b := big.NewFloat(0.5).SetPrec(wp)
	b.Sqrt(b)
	t := big.NewFloat(0.25).SetPrec(wp)
	p := big.NewFloat(1).SetPrec(wp)

	eps := new(big.Float).SetMantExp(big.NewFloat(1), -int(wp)+2)
	diff := new(big.Float).SetPrec(wp)
	for i := 0; i < 64; i++ {
		an := new(big.Float).Add(a, b)
		an.Mul(an, half)
		b.Mul(a, b)
		b.Sqrt(b)
		diff.Sub(a, an)
		diff.Mul(diff, diff)
		diff.Mul(diff, p)
		t.Sub(t, diff)
		p.Add(p, p)
		a = an
		if diff.Sub(a, b).Abs(diff).Cmp(eps) <= 0 {
			break
		}
	}

	pi := new(big.Float).Add(a, b)
	pi.Mul(pi, pi)
	t.Add(t, t)
	t.Add(t, t)
	pi.Quo(pi, t)
	return pi.SetPrec(prec)
}
