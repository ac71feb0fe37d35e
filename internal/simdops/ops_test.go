package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScale_MatchesScalar tests that SIMD scaling is bit-identical to the
// scalar reference for power-of-two and irrational gains.
func TestScale_MatchesScalar(t *testing.T) {
	a := make([]float64, 37)
	for i := range a {
		a[i] = float64(i)*0.37 - 4.1
	}

	for _, s := range []float64{0.5, 2, 8, 1.4142135623730951} {
		want := make([]float64, len(a))
		got := make([]float64, len(a))
		ScalarOps().Scale(want, a, s)
		Float64Ops().Scale(got, a, s)
		assert.Equal(t, want, got, "s=%v", s)
	}
}

// TestScale_InPlace tests aliasing dst and a.
func TestScale_InPlace(t *testing.T) {
	for _, ops := range []*Ops{ScalarOps(), Float64Ops()} {
		a := []float64{1, 2, 3, 4, 5}
		ops.Scale(a, a, 2)
		assert.Equal(t, []float64{2, 4, 6, 8, 10}, a)
	}
}

// TestSum tests summation.
func TestSum(t *testing.T) {
	a := []float64{0.5, 0.25, 0.125, 0.125}
	assert.Equal(t, 1.0, ScalarOps().Sum(a))
	assert.InDelta(t, 1.0, Float64Ops().Sum(a), 1e-15)
	assert.Equal(t, 0.0, ScalarOps().Sum(nil))
}

// TestFor tests selection.
func TestFor(t *testing.T) {
	assert.Same(t, Float64Ops(), For(true))
	assert.Same(t, ScalarOps(), For(false))
}
