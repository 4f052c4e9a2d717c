package square

import "fmt"

func ExampleGfZ() {
	g := GfZ(complex(0.5, 0), 1)
	fmt.Printf("%.4f\n", g)
	// Output:
	// (1.0732-1.3729i)
}

func ExampleDOS() {
	dos, err := DOS([]float64{0.5}, 1)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", dos[0])
	// Output:
	// 0.4370
}
