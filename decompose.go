package bspline

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-bspline-wavelets/internal/mathutil"
	"github.com/tphakala/go-bspline-wavelets/internal/piecewise"
	"github.com/tphakala/go-bspline-wavelets/internal/simdops"
)

// Decompose expands one sample into its feature vector for order, using the
// default registry: phi_{0,k}(x) for every phi index, then psi_{j,k}(x) for
// every psi index.
func Decompose(x float64, order int) ([]float64, error) {
	def, err := GetBasis(order)
	if err != nil {
		return nil, err
	}
	return def.Decompose(x)
}

// DecomposeBatch expands every sample of xs for order, using the default
// registry. Row i of the result is Decompose(xs[i], order).
func DecomposeBatch(xs []float64, order int) (*mat.Dense, error) {
	def, err := GetBasis(order)
	if err != nil {
		return nil, err
	}
	return def.DecomposeBatch(xs)
}

// Decompose returns the feature vector of x.
func (d *Definition) Decompose(x float64) ([]float64, error) {
	dst := make([]float64, d.FeatureLength())
	if err := d.DecomposeInto(dst, x); err != nil {
		return nil, err
	}
	return dst, nil
}

// DecomposeInto writes the feature vector of x to dst, which must have
// length FeatureLength. dst is left untouched on error.
func (d *Definition) DecomposeInto(dst []float64, x float64) error {
	if len(dst) != d.FeatureLength() {
		return fmt.Errorf("bspline: dst length %d, want %d", len(dst), d.FeatureLength())
	}
	row := make([]float64, len(dst))
	if err := d.fillRows(simdops.Float64Ops(), row, []float64{x}, 0); err != nil {
		return err
	}
	copy(dst, row)
	return nil
}

// DecomposeBatch returns the feature matrix of xs: len(xs) rows and
// FeatureLength columns. The call fails as a whole if any sample is invalid.
func (d *Definition) DecomposeBatch(xs []float64) (*mat.Dense, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}
	data := make([]float64, len(xs)*d.FeatureLength())
	if err := d.fillRows(simdops.Float64Ops(), data, xs, 0); err != nil {
		return nil, err
	}
	return mat.NewDense(len(xs), d.FeatureLength(), data), nil
}

// fillRows writes the feature rows of xs into data, row-major with stride
// FeatureLength. offset is the position of xs[0] in the caller's batch and
// only affects error reporting.
//
// Evaluation runs column by column so each basis function is located and
// scaled over a contiguous slice.
func (d *Definition) fillRows(ops *simdops.Ops, data, xs []float64, offset int) error {
	n := len(xs)
	args := make([]float64, n)
	vals := make([]float64, n)
	stride := d.FeatureLength()

	col := 0
	for _, idx := range d.phiIdx {
		if err := fillColumn(ops, d.phi, idx, xs, args, vals, offset); err != nil {
			return err
		}
		scatter(data, vals, col, stride)
		col++
	}
	for _, idx := range d.psiIdx {
		if err := fillColumn(ops, d.psi, idx, xs, args, vals, offset); err != nil {
			return err
		}
		scatter(data, vals, col, stride)
		col++
	}
	return nil
}

// fillColumn computes vals[i] = 2^(j/2) * fn(2^j*xs[i] - k).
func fillColumn(ops *simdops.Ops, fn *piecewise.Function, idx ScaleShift, xs, args, vals []float64, offset int) error {
	ops.Scale(args, xs, mathutil.DyadicDilation(idx.J))
	shift := float64(idx.K)
	for i := range args {
		args[i] -= shift
	}

	if err := fn.EvalAll(vals, args); err != nil {
		var ie *piecewise.IndexError
		if errors.As(err, &ie) {
			return &InvalidInputError{Index: offset + ie.Index, Value: xs[ie.Index]}
		}
		return err
	}

	if idx.J != 0 {
		ops.Scale(vals, vals, mathutil.DyadicGain(idx.J))
	}
	return nil
}

func scatter(data, vals []float64, col, stride int) {
	for i, v := range vals {
		data[i*stride+col] = v
	}
}
