package mpc

import (
	"math"
	"math/big"
	"math/cmplx"
	"testing"
)

func almostEqual(a, b complex128, eps float64) bool {
	return cmplx.Abs(a-b) <= eps*(1+cmplx.Abs(b))
}

var samples = []complex128{
	1, -1, 1i, -1i,
	0.5 + 0.25i, -3 + 4i, 2 - 7i, -0.125 - 0.625i,
	1e-8 + 1e8i, 12345.678 - 0.001i,
}

func TestArithmeticMatchesComplex128(t *testing.T) {
	const prec = 96
	const eps = 1e-14
	for _, x := range samples {
		for _, y := range samples {
			zx := FromComplex128(x, prec)
			zy := FromComplex128(y, prec)

			if got := zx.Add(zy).Complex128(); !almostEqual(got, x+y, eps) {
				t.Fatalf("Add(%v, %v): got %v, want %v", x, y, got, x+y)
			}
			if got := zx.Sub(zy).Complex128(); !almostEqual(got, x-y, eps) {
				t.Fatalf("Sub(%v, %v): got %v, want %v", x, y, got, x-y)
			}
			if got := zx.Mul(zy).Complex128(); !almostEqual(got, x*y, eps) {
				t.Fatalf("Mul(%v, %v): got %v, want %v", x, y, got, x*y)
			}
			if got := zx.Div(zy).Complex128(); !almostEqual(got, x/y, eps) {
				t.Fatalf("Div(%v, %v): got %v, want %v", x, y, got, x/y)
			}
		}
	}
}

func TestUnaryOps(t *testing.T) {
	const prec = 96
	for _, x := range samples {
		z := FromComplex128(x, prec)
		if got := z.Neg().Complex128(); got != -x {
			t.Fatalf("Neg(%v): got %v, want %v", x, got, -x)
		}
		if got := z.Conj().Complex128(); got != cmplx.Conj(x) {
			t.Fatalf("Conj(%v): got %v, want %v", x, got, cmplx.Conj(x))
		}
		if got := z.Inv().Mul(z).Complex128(); !almostEqual(got, 1, 1e-14) {
			t.Fatalf("Inv(%v)*z: got %v, want 1", x, got)
		}
		abs, _ := z.Abs().Float64()
		if want := cmplx.Abs(x); math.Abs(abs-want) > 1e-14*(1+want) {
			t.Fatalf("Abs(%v): got %v, want %v", x, abs, want)
		}
	}
}

func TestIsZero(t *testing.T) {
	if !New(64).IsZero() {
		t.Fatal("New: IsZero = false, want true")
	}
	if !FromFloat64(0, math.Copysign(0, -1), 64).IsZero() {
		t.Fatal("negative zero component: IsZero = false, want true")
	}
	if FromFloat64(1e-300, 0, 64).IsZero() {
		t.Fatal("tiny nonzero: IsZero = true, want false")
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic dividing by zero")
		}
	}()
	FromFloat64(1, 2, 64).Div(New(64))
}

func TestInvOfZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic inverting zero")
		}
	}()
	New(64).Inv()
}

func TestSqrtSquaresBack(t *testing.T) {
	const prec = 128
	for _, x := range samples {
		z := FromComplex128(x, prec)
		s := z.Sqrt()
		if re, _ := s.Real.Float64(); re < 0 {
			t.Fatalf("Sqrt(%v): non-principal branch, Re = %v", x, re)
		}
		if got := s.Mul(s).Complex128(); !almostEqual(got, x, 1e-14) {
			t.Fatalf("Sqrt(%v)^2: got %v, want %v", x, got, x)
		}
	}
}

func TestSqrtBranchCut(t *testing.T) {
	const prec = 64
	above := FromFloat64(-4, 0, prec)
	if got := above.Sqrt().Complex128(); !almostEqual(got, 2i, 1e-15) {
		t.Fatalf("Sqrt(-4+0i): got %v, want 2i", got)
	}
	below := FromFloat64(-4, 0, prec)
	below.Imag.Neg(below.Imag)
	if got := below.Sqrt().Complex128(); !almostEqual(got, -2i, 1e-15) {
		t.Fatalf("Sqrt(-4-0i): got %v, want -2i", got)
	}
}

func TestPrecPropagation(t *testing.T) {
	lo := FromFloat64(1.5, 0, 64)
	hi := FromFloat64(2.5, 0, 200)
	if got := lo.Mul(hi).Prec(); got != 200 {
		t.Fatalf("Prec after mixed Mul: got %d, want 200", got)
	}
	if got := New(80).Prec(); got != 80 {
		t.Fatalf("Prec of New(80): got %d, want 80", got)
	}
}

func TestPi(t *testing.T) {
	got, _ := Pi(53).Float64()
	if got != math.Pi {
		t.Fatalf("Pi(53): got %v, want %v", got, math.Pi)
	}

	const digits = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798214808651"
	want, ok := new(big.Float).SetPrec(400).SetString(digits)
	if !ok {
		t.Fatalf("failed to parse pi reference")
	}
	p := Pi(300)
	diff := new(big.Float).Sub(p, want)
	diff.Abs(diff)
	tol := new(big.Float).SetMantExp(big.NewFloat(1), -295)
	if diff.Cmp(tol) > 0 {
		t.Fatalf("Pi(300) differs from reference by %s", diff.Text('e', 3))
	}

	// Cached copies must be independent.
	q := Pi(300)
	q.SetFloat64(0)
	r := Pi(300)
	if r.Sign() == 0 {
		t.Fatalf("Pi cache returned aliased value")
	}
}
