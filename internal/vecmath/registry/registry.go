// Package registry provides the implementation registry for vecmath operations.
//
// The registry-based dispatch system allows multiple implementation variants
// (generic, AVX2, NEON, ...) to coexist. The best implementation for the
// current CPU is selected automatically at runtime.
//
// Architecture-specific implementations register themselves via init()
// functions, and the vecmath package uses the registry to select the best
// implementation at runtime based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-gf/internal/cpu"
)

// OpEntry represents a registered implementation variant for vecmath
// operations.
//
// Each entry contains typed function pointers for all supported operations at
// a specific SIMD level. Not all fields need to be populated; only implement
// the operations available at that level.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation
	// (e.g. "generic", "avx2").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this
	// implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible
	// implementations exist. Higher priority implementations are preferred.
	Priority int

	// ScaleBlock performs element-wise scaling: dst[i] = src[i] * scalar.
	ScaleBlock func(dst, src []float64, scalar float64)

	// AddScaledBlock accumulates a scaled block: dst[i] += src[i] * scalar.
	AddScaledBlock func(dst, src []float64, scalar float64)

	// Sum returns the sum of all elements in the slice.
	Sum func(x []float64) float64

	// DotProduct returns the dot product sum(a[i] * b[i]) over the shorter
	// of the two slices.
	DotProduct func(a, b []float64) float64
}

// OpRegistry manages the registration and lookup of vecmath implementation
// variants.
//
// Implementations register themselves via init() functions. At runtime,
// Lookup() selects the highest-priority implementation compatible with the
// current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by all vecmath operations.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// This function is typically called from init() functions in
// architecture-specific implementation packages. It is safe to call
// concurrently, but all registrations should complete before the first call
// to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU. If no
// compatible implementations are found, returns nil (which should never
// happen if a generic fallback is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort; the registry holds only a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
