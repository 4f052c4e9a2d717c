package simplecubic

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-gf/mpc"
)

func BenchmarkGfZ(b *testing.B) {
	z := make([]complex128, 1024)
	for i := range z {
		z[i] = complex(-1.2+2.4*float64(i)/1023, 1e-3)
	}
	dst := make([]complex128, len(z))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := GfZInto(dst, z, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGfZBig(b *testing.B) {
	for _, prec := range []uint{64, 256} {
		b.Run(fmt.Sprintf("prec=%d", prec), func(b *testing.B) {
			z := mpc.FromFloat64(1.0/3+1e-8, 1e-8, prec)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				GfZBig(z, 1)
			}
		})
	}
}

func BenchmarkDOS(b *testing.B) {
	eps := make([]float64, 512)
	for i := range eps {
		eps[i] = -1 + 2*float64(i)/511
	}
	dst := make([]float64, len(eps))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := DOSInto(dst, eps, 1); err != nil {
			b.Fatal(err)
		}
	}
}
