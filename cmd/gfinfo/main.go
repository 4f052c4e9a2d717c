// Command gfinfo prints Green's-function reference tables: Matsubara and
// Pade frequency meshes and lattice densities of states.
//
// Usage:
//
//	gfinfo [flags] <table>
//
// Tables:
//
//	matsubara  fermionic Matsubara frequencies
//	pade       Pade frequencies and residues
//	dos        lattice density of states and retarded Green's function
//
// Examples:
//
//	gfinfo -beta 10 -count 8 matsubara
//	gfinfo -beta 50 -num 16 pade
//	gfinfo -lattice sc -points 12 dos
//	gfinfo -lattice rectangular -scale 2 dos
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-gf/lattice/rectangular"
	"github.com/cwbudde/algo-gf/lattice/simplecubic"
	"github.com/cwbudde/algo-gf/lattice/square"
	"github.com/cwbudde/algo-gf/statistics"
)

func main() {
	beta := flag.Float64("beta", 10, "inverse temperature")
	count := flag.Int("count", 8, "number of Matsubara frequencies")
	num := flag.Int("num", 8, "number of Pade frequencies")
	lattice := flag.String("lattice", "square", "lattice type: square, rectangular or sc")
	scale := flag.Float64("scale", 2, "hopping anisotropy of the rectangular lattice")
	half := flag.Float64("half", 1, "half-bandwidth of the spectrum")
	points := flag.Int("points", 12, "number of energies in the dos table")
	eta := flag.Float64("eta", 1e-3, "offset from the real axis for the dos table")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gfinfo [flags] <table>\n\n")
		fmt.Fprintf(os.Stderr, "Prints Green's-function reference tables.\n")
		fmt.Fprintf(os.Stderr, "Tables: matsubara, pade, dos.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gfinfo -beta 10 -count 8 matsubara\n")
		fmt.Fprintf(os.Stderr, "  gfinfo -beta 50 -num 16 pade\n")
		fmt.Fprintf(os.Stderr, "  gfinfo -lattice sc -points 12 dos\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch flag.Arg(0) {
	case "matsubara":
		err = printMatsubara(*count, *beta)
	case "pade":
		err = printPade(*num, *beta)
	case "dos":
		err = printDOS(*lattice, *half, *scale, *points, *eta)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown table %q\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printMatsubara(count int, beta float64) error {
	if count < 1 {
		return fmt.Errorf("count %d is not positive", count)
	}
	n := make([]int, count)
	for i := range n {
		n[i] = i
	}
	iws := statistics.MatsubaraFrequencies(n, beta)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "n\tomega_n\n")
	fmt.Fprintf(tw, "-\t-------\n")
	for i, iw := range iws {
		fmt.Fprintf(tw, "%d\t%.6f\n", i, imag(iw))
	}
	return tw.Flush()
}

func printPade(num int, beta float64) error {
	izp, resids, err := statistics.PadeFrequencies(num, beta)
	if err != nil {
		return err
	}
	n := make([]int, num)
	for i := range n {
		n[i] = i
	}
	iws := statistics.MatsubaraFrequencies(n, beta)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "k\tomega_k\tresidue\tvs Matsubara\n")
	fmt.Fprintf(tw, "-\t-------\t-------\t------------\n")
	for k := range izp {
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.4f\n",
			k, imag(izp[k]), resids[k], imag(izp[k])/imag(iws[k]))
	}
	return tw.Flush()
}

func printDOS(lattice string, half, scale float64, points int, eta float64) error {
	if points < 1 {
		return fmt.Errorf("points %d is not positive", points)
	}
	if points%2 != 0 && lattice == "square" {
		fmt.Fprintln(os.Stderr, "warning: odd point counts sample the square-lattice van Hove energy eps = 0")
	}
	// Midpoint grid: stays inside the band, where the closed forms are
	// finite except at van Hove energies.
	eps := make([]float64, points)
	h := 2 * half / float64(points)
	for i := range eps {
		eps[i] = -half + (float64(i)+0.5)*h
	}
	z := make([]complex128, points)
	for i, e := range eps {
		z[i] = complex(e, eta)
	}

	var (
		dos []float64
		gf  = make([]complex128, points)
		err error
	)
	switch lattice {
	case "square":
		if dos, err = square.DOS(eps, half); err != nil {
			return err
		}
		err = square.GfZInto(gf, z, half)
	case "rectangular":
		if dos, err = rectangular.DOS(eps, half, scale); err != nil {
			return err
		}
		err = rectangular.GfZInto(gf, z, half, scale)
	case "sc":
		if dos, err = simplecubic.DOS(eps, half); err != nil {
			return err
		}
		err = simplecubic.GfZInto(gf, z, half)
	default:
		return fmt.Errorf("unknown lattice %q (square, rectangular or sc)", lattice)
	}
	if err != nil {
		return err
	}

	re := make([]float64, points)
	im := make([]float64, points)
	for i, g := range gf {
		re[i] = real(g)
		im[i] = imag(g)
	}
	mag := make([]float64, points)
	vecmath.Magnitude(mag, re, im)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "eps\tdos\tRe G\tIm G\t|G|\n")
	fmt.Fprintf(tw, "---\t---\t----\t----\t---\n")
	for i := range eps {
		fmt.Fprintf(tw, "%+.4f\t%.6f\t%+.6f\t%+.6f\t%.6f\n",
			eps[i], dos[i], re[i], im[i], mag[i])
	}
	return tw.Flush()
}
