package bspline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-bspline-wavelets/internal/simdops"
)

// NewParallel creates a SIMD-enabled decomposer that splits batches across
// runtime.GOMAXPROCS(0) goroutines.
//
//	d, err := bspline.NewParallel(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	features, _ := d.Transform(samples)
func NewParallel(order int) (*Decomposer, error) {
	return New(&Config{Order: order, EnableSIMD: true, EnableParallel: true})
}

// DecomposeFloat32 is a convenience function for one-shot batch
// decomposition of float32 samples with the default registry. The result is
// row-major with FeatureLength values per sample.
//
// Evaluation runs in float64; only the input and output are float32.
func DecomposeFloat32(xs []float32, order int) ([]float32, error) {
	d, err := NewSimple(order)
	if err != nil {
		return nil, err
	}
	return d.TransformFloat32(xs)
}

// Rows copies a feature matrix into one slice per sample.
func Rows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range r {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}

// Normalize maps xs linearly onto [0, 1], the interval covered by the phi
// features. A constant signal maps to all zeros. Non-finite samples are
// rejected. The input is not modified.
func Normalize(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &InvalidInputError{Index: i, Value: v}
		}
	}

	lo, hi := floats.Min(xs), floats.Max(xs)
	out := make([]float64, len(xs))
	copy(out, xs)
	floats.AddConst(-lo, out)
	if span := hi - lo; span > 0 {
		simdops.Float64Ops().Scale(out, out, 1/span)
	} else {
		floats.Scale(0, out)
	}
	return out, nil
}

// MixToMono averages interleaved multi-channel samples into one channel.
func MixToMono(interleaved []float64, channels int) ([]float64, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: channels must be > 0, got %d", ErrInvalidConfig, channels)
	}
	if len(interleaved)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples is not a multiple of %d channels",
			ErrInvalidInput, len(interleaved), channels)
	}

	frames := len(interleaved) / channels
	sum := simdops.Float64Ops().Sum
	out := make([]float64, frames)
	for i := range frames {
		out[i] = sum(interleaved[i*channels:(i+1)*channels]) / float64(channels)
	}
	return out, nil
}

// Deinterleave splits interleaved samples into one slice per channel.
// Trailing samples that do not fill a frame are dropped.
func Deinterleave(interleaved []float64, channels int) [][]float64 {
	if channels <= 0 {
		return nil
	}
	frames := len(interleaved) / channels
	out := make([][]float64, channels)
	for ch := range channels {
		out[ch] = make([]float64, frames)
		for i := range frames {
			out[ch][i] = interleaved[i*channels+ch]
		}
	}
	return out
}
