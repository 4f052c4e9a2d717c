package fourier

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-gf/internal/testutil"
	"github.com/cwbudde/algo-gf/pole"
	"github.com/cwbudde/algo-gf/statistics"
)

// The reference model for all transform tests: a normalized four-pole
// Green's function, partially filled.
var (
	testPoles   = []float64{-0.7, -0.1, 0.3, 0.8}
	testWeights = []float64{0.1, 0.4, 0.3, 0.2}
)

// tauModel samples the model on tau_l = l*beta/intervals and shifts it by
// +1/2, removing the image of the 1/(iw) tail.
func tauModel(t testing.TB, beta float64, intervals int) []float64 {
	t.Helper()
	tau := testutil.Linspace(0, beta, intervals+1)
	gfTau, err := pole.GfTau(tau, testPoles, testWeights, beta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range gfTau {
		gfTau[i] += 0.5
	}
	return gfTau
}

// iwModel returns the first count Matsubara frequencies and the exact
// model values there.
func iwModel(t testing.TB, beta float64, count int) (iws, gfIw []complex128) {
	t.Helper()
	n := make([]int, count)
	for i := range n {
		n[i] = i
	}
	iws = statistics.MatsubaraFrequencies(n, beta)
	gfIw = make([]complex128, count)
	if err := pole.GfZInto(gfIw, iws, testPoles, testWeights); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return iws, gfIw
}

func transformErrors(t testing.TB, transform func([]float64, float64) ([]complex128, error)) []float64 {
	t.Helper()
	const (
		beta      = 50.0
		intervals = 2048
	)
	got, err := transform(tauModel(t, beta, intervals), beta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	iws, want := iwModel(t, beta, intervals/2)
	errs := make([]float64, len(got))
	for m := range got {
		errs[m] = cmplx.Abs(got[m] + 1/iws[m] - want[m])
	}
	return errs
}

func TestTau2IwDFTPoleModel(t *testing.T) {
	errs := transformErrors(t, Tau2IwDFT)
	for m, e := range errs {
		if e > 1e-3 {
			t.Fatalf("frequency %d: error %v exceeds 1e-3", m, e)
		}
	}
}

func TestTau2IwLinPoleModel(t *testing.T) {
	errs := transformErrors(t, Tau2IwLin)
	for m, e := range errs {
		if e > 1e-4 {
			t.Fatalf("frequency %d: error %v exceeds 1e-4", m, e)
		}
	}
}

// The linear interpolant suppresses aliasing, so towards the Nyquist
// frequency it must clearly beat the plain transform.
func TestTau2IwLinResolvesHighFrequencies(t *testing.T) {
	errsDFT := transformErrors(t, Tau2IwDFT)
	errsLin := transformErrors(t, Tau2IwLin)

	last := len(errsDFT) - 1
	if 2*errsLin[last] > errsDFT[last] {
		t.Fatalf("top frequency: linear error %v not below half the DFT error %v",
			errsLin[last], errsDFT[last])
	}
}

func TestIw2TauDFTPoleModel(t *testing.T) {
	const (
		beta  = 10.0
		count = 256
	)
	iws, gfIw := iwModel(t, beta, count)
	for m := range gfIw {
		gfIw[m] -= 1 / iws[m]
	}

	got, err := Iw2TauDFT(gfIw, beta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2*count+1 {
		t.Fatalf("got %d tau points, want %d", len(got), 2*count+1)
	}
	if d := math.Abs(got[0] + got[len(got)-1]); d > 1e-13 {
		t.Fatalf("G(0) = %v and G(beta) = %v are not antisymmetric", got[0], got[len(got)-1])
	}

	tau := testutil.Linspace(0, beta, 2*count+1)
	want, err := pole.GfTau(tau, testPoles, testWeights, beta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for k := range got {
		if d := math.Abs(got[k] - 0.5 - want[k]); d > 2e-3 {
			t.Fatalf("tau index %d: got %v, want %v (diff %v)", k, got[k]-0.5, want[k], d)
		}
	}
}

// Iw2TauDFT resums exactly the coefficients Tau2IwDFT extracts, so on the
// shifted (anti-periodically continuous) model the round trip is an
// identity up to rounding.
func TestRoundTrip(t *testing.T) {
	const (
		beta      = 10.0
		intervals = 64
	)
	shifted := tauModel(t, beta, intervals)

	gfIw, err := Tau2IwDFT(shifted, beta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := Iw2TauDFT(gfIw, beta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, back, shifted, 1e-12)
}

// The inversion identity is a property of the discrete transforms alone, so
// it must hold for rough data just as for smooth models.
func TestRoundTripNoise(t *testing.T) {
	const beta = 3.0
	gfTau := testutil.DeterministicNoise(5, 1, 33)
	// The frequency sum always satisfies G(beta) = -G(0); impose the same
	// boundary on the input so the full grids are comparable.
	gfTau[32] = -gfTau[0]

	gfIw, err := Tau2IwDFT(gfTau, beta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := Iw2TauDFT(gfIw, beta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, back, gfTau, 1e-13)
}

func TestLinWeightsSeriesCrossover(t *testing.T) {
	// Both branches must agree where they meet.
	for _, theta := range []float64{0.02, 0.029, 0.031, 0.05} {
		x := complex(0, theta)
		em1 := cmplx.Exp(x) - 1
		wantW1 := em1 / x
		wantW2 := ((x-1)*em1 + x) / (x * x)

		w1, w2 := linWeights(theta)
		if d := cmplx.Abs(w1 - wantW1); d > 1e-12 {
			t.Errorf("theta %v: w1 = %v, want %v", theta, w1, wantW1)
		}
		if d := cmplx.Abs(w2 - wantW2); d > 1e-10 {
			t.Errorf("theta %v: w2 = %v, want %v", theta, w2, wantW2)
		}
	}
}

func TestValidation(t *testing.T) {
	if _, err := Tau2IwDFT(make([]float64, 6), 1); err == nil {
		t.Fatal("expected error for non-power-of-two intervals")
	}
	if _, err := Tau2IwDFT(make([]float64, 2), 1); err == nil {
		t.Fatal("expected error for a single interval")
	}
	if _, err := Tau2IwDFT(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := Tau2IwDFT(make([]float64, 5), 0); err == nil {
		t.Fatal("expected error for zero beta")
	}
	if _, err := Tau2IwLin(make([]float64, 6), 1); err == nil {
		t.Fatal("expected error for non-power-of-two intervals")
	}
	if _, err := Iw2TauDFT(make([]complex128, 3), 1); err == nil {
		t.Fatal("expected error for non-power-of-two frequency count")
	}
	if _, err := Iw2TauDFT(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := Iw2TauDFT(make([]complex128, 4), -1); err == nil {
		t.Fatal("expected error for negative beta")
	}
}
