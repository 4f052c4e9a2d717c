package generic

import (
	"github.com/cwbudde/algo-gf/internal/cpu"
	"github.com/cwbudde/algo-gf/internal/vecmath/registry"
)

// init registers the generic (pure Go) implementations with the vecmath
// registry.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		ScaleBlock:     ScaleBlock,
		AddScaledBlock: AddScaledBlock,
		Sum:            Sum,
		DotProduct:     DotProduct,
	})
}
