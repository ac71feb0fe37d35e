// Package simdops provides the SIMD vector kernels used by batch basis
// evaluation.
//
// With Profile-Guided Optimization (Go 1.22+), function pointer calls in hot paths
// can be devirtualized and inlined, achieving near-zero overhead.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated float64 operations.
// Function pointers keep the call sites independent of the simd package
// so tests can substitute scalar reference implementations.
type Ops struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64
}

// Pre-instantiated operations.
// Package-level variables avoid repeated allocation.
var (
	ops64 = Ops{
		Scale: f64.Scale,
		Sum:   f64.Sum,
	}
	scalar64 = Ops{
		Scale: scaleScalar,
		Sum:   sumScalar,
	}
)

// Float64Ops returns the SIMD float64 operations.
func Float64Ops() *Ops {
	return &ops64
}

// ScalarOps returns pure Go reference implementations of the same kernels.
func ScalarOps() *Ops {
	return &scalar64
}

// For returns SIMD operations when enabled, the scalar reference otherwise.
func For(enableSIMD bool) *Ops {
	if enableSIMD {
		return Float64Ops()
	}
	return ScalarOps()
}

func scaleScalar(dst, a []float64, s float64) {
	for i, v := range a[:len(dst)] {
		dst[i] = v * s
	}
}

func sumScalar(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v
	}
	return sum
}
