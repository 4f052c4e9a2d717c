package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

func ExampleDecomposeHamiltonian() {
	h := mat.NewCDense(2, 2, []complex128{1, 0, 0, 3})

	rvInv, xi, rv, err := DecomposeHamiltonian(h)
	if err != nil {
		panic(err)
	}
	d, err := NewDecomposition(rv, xi, rvInv)
	if err != nil {
		panic(err)
	}

	// Resolvent (5 - h)^-1 evaluated on the eigenvalues.
	d.Apply(func(x complex128) complex128 { return 1 / (5 - x) })
	diag, err := d.ReconstructDiag(nil)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f %.4f\n", real(diag[0]), real(diag[1]))
	// Output:
	// 0.2500 0.5000
}
