package bspline

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-bspline-wavelets/internal/simdops"
)

// Decomposer expands input signals into B-spline wavelet feature matrices
// for one configured order. It holds no mutable state and is safe for
// concurrent use.
type Decomposer struct {
	config Config
	def    *Definition
	ops    *simdops.Ops
}

// Info describes a decomposer.
type Info struct {
	// Order is the wavelet order.
	Order int

	// PhiLen and PsiLen are the scaling and wavelet feature counts.
	PhiLen int
	PsiLen int

	// FeatureLength is the number of columns per sample.
	FeatureLength int

	// PhiSupport and PsiSupport are the intervals outside which the
	// mother functions vanish.
	PhiSupport [2]float64
	PsiSupport [2]float64

	// Workers is the goroutine cap for batch evaluation (1 if sequential).
	Workers int

	// SIMDEnabled indicates if SIMD kernels are used.
	SIMDEnabled bool
}

// New creates a decomposer with the specified configuration.
// The order is resolved once, so an unsupported order fails here.
func New(config *Config) (*Decomposer, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	def, err := config.registry().Resolve(config.Order)
	if err != nil {
		return nil, err
	}

	return &Decomposer{
		config: *config,
		def:    def,
		ops:    simdops.For(config.EnableSIMD),
	}, nil
}

// NewSimple creates a sequential, SIMD-enabled decomposer for order using
// the default registry.
func NewSimple(order int) (*Decomposer, error) {
	return New(&Config{Order: order, EnableSIMD: true})
}

// Order returns the configured wavelet order.
func (d *Decomposer) Order() int { return d.def.Order() }

// Definition returns the resolved definition.
func (d *Decomposer) Definition() *Definition { return d.def }

// FeatureLength returns the number of columns per sample.
func (d *Decomposer) FeatureLength() int { return d.def.FeatureLength() }

// ColumnLabels names the feature columns in order.
func (d *Decomposer) ColumnLabels() []string { return d.def.ColumnLabels() }

// TransformVector returns the feature vector of one sample.
func (d *Decomposer) TransformVector(x float64) ([]float64, error) {
	row := make([]float64, d.def.FeatureLength())
	if err := d.def.fillRows(d.ops, row, []float64{x}, 0); err != nil {
		return nil, err
	}
	return row, nil
}

// Transform returns the feature matrix of xs, one row per sample.
// When EnableParallel is true in config, row ranges are evaluated
// concurrently. Otherwise, rows are evaluated sequentially.
func (d *Decomposer) Transform(xs []float64) (*mat.Dense, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}

	cols := d.def.FeatureLength()
	data := make([]float64, len(xs)*cols)

	chunks := d.chunkCount(len(xs))
	if chunks <= 1 {
		if err := d.def.fillRows(d.ops, data, xs, 0); err != nil {
			return nil, err
		}
		return mat.NewDense(len(xs), cols, data), nil
	}

	// Parallel processing: contiguous row ranges, disjoint output slices
	size := (len(xs) + chunks - 1) / chunks
	errs := make([]error, chunks)
	var wg sync.WaitGroup

	for c := range chunks {
		start := c * size
		end := min(start+size, len(xs))
		if start >= end {
			break
		}
		wg.Add(1)
		go func(chunk, start, end int) {
			defer wg.Done()
			errs[chunk] = d.def.fillRows(d.ops, data[start*cols:end*cols], xs[start:end], start)
		}(c, start, end)
	}

	wg.Wait()

	// Report the failure of the earliest chunk so the error does not depend
	// on scheduling.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return mat.NewDense(len(xs), cols, data), nil
}

// TransformFloat32 is like Transform but for float32 samples. It returns
// the matrix row-major in a flat slice of len(xs)*FeatureLength values.
// Evaluation runs in float64.
func (d *Decomposer) TransformFloat32(xs []float32) ([]float32, error) {
	xs64 := make([]float64, len(xs))
	for i, v := range xs {
		xs64[i] = float64(v)
	}

	m, err := d.Transform(xs64)
	if err != nil {
		return nil, err
	}

	raw := m.RawMatrix().Data
	out := make([]float32, len(raw))
	for i, v := range raw {
		out[i] = float32(v)
	}
	return out, nil
}

// chunkCount decides how many goroutines evaluate n rows.
func (d *Decomposer) chunkCount(n int) int {
	if !d.config.EnableParallel {
		return 1
	}
	return max(1, min(d.config.workers(), n/minRowsPerWorker))
}

// GetInfo returns information about the decomposer.
func (d *Decomposer) GetInfo() Info {
	info := Info{
		Order:         d.def.Order(),
		PhiLen:        d.def.PhiLen(),
		PsiLen:        d.def.PsiLen(),
		FeatureLength: d.def.FeatureLength(),
		Workers:       1,
		SIMDEnabled:   d.config.EnableSIMD,
	}
	info.PhiSupport[0], info.PhiSupport[1] = d.def.PhiSupport()
	info.PsiSupport[0], info.PsiSupport[1] = d.def.PsiSupport()
	if d.config.EnableParallel {
		info.Workers = d.config.workers()
	}
	return info
}
