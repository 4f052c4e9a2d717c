package fourier

import "fmt"

func ExampleTau2IwDFT() {
	// Three tau points make one Matsubara frequency. The sampled function
	// already satisfies G(beta) = -G(0), so no tail shift is needed.
	gfTau := []float64{0.3, 0.1, -0.3}

	gfIw, err := Tau2IwDFT(gfTau, 2)
	if err != nil {
		panic(err)
	}
	fmt.Printf("(%.4f%+.4fi)\n", real(gfIw[0]), imag(gfIw[0]))
	// Output:
	// (0.3000+0.1000i)
}

func ExampleIw2TauDFT() {
	gfIw := []complex128{0.3 + 0.1i}

	gfTau, err := Iw2TauDFT(gfIw, 2)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f %.4f %.4f\n", gfTau[0], gfTau[1], gfTau[2])
	// Output:
	// 0.3000 0.1000 -0.3000
}
