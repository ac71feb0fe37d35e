package bspline

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-bspline-wavelets/internal/mathutil"
	"github.com/tphakala/go-bspline-wavelets/internal/piecewise"
)

// Segment is one polynomial branch of phi or psi, covering [Lo, Hi).
// Coefficients are highest degree first.
type Segment = piecewise.Segment

// Definition is the scaling function phi and wavelet psi of one order,
// together with the index lists that order's feature vector uses.
//
// A Definition is immutable and safe for concurrent use.
type Definition struct {
	order  int
	phi    *piecewise.Function
	psi    *piecewise.Function
	phiIdx []ScaleShift
	psiIdx []ScaleShift
}

// NewDefinition validates and assembles a definition for order.
//
// Both tables must partition the real line (see Segment). phi must vanish
// outside [0, order] and psi outside [0, 2*order-1], and no branch may exceed
// degree order-1. Failures wrap ErrInvalidDefinition (or ErrInvalidOrder).
func NewDefinition(order int, phi, psi []Segment) (*Definition, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}

	phiFn, err := piecewise.New(phi)
	if err != nil {
		return nil, fmt.Errorf("order %d phi: %w", order, err)
	}
	psiFn, err := piecewise.New(psi)
	if err != nil {
		return nil, fmt.Errorf("order %d psi: %w", order, err)
	}

	if err := checkShape("phi", order, phiFn, float64(order)); err != nil {
		return nil, err
	}
	if err := checkShape("psi", order, psiFn, float64(psiSupportFactor*order-1)); err != nil {
		return nil, err
	}

	phiIdx, err := PhiIndices(order)
	if err != nil {
		return nil, err
	}
	psiIdx, err := PsiIndices(order)
	if err != nil {
		return nil, err
	}

	return &Definition{
		order:  order,
		phi:    phiFn,
		psi:    psiFn,
		phiIdx: phiIdx,
		psiIdx: psiIdx,
	}, nil
}

// checkShape enforces the support and degree bounds of one table.
func checkShape(name string, order int, fn *piecewise.Function, supportEnd float64) error {
	if lo, hi := fn.Support(); lo < 0 || hi > supportEnd {
		return fmt.Errorf("%w: order %d %s support [%v, %v] exceeds [0, %v]",
			ErrInvalidDefinition, order, name, lo, hi, supportEnd)
	}
	if d := fn.MaxDegree(); d > order-1 {
		return fmt.Errorf("%w: order %d %s has degree %d, max %d",
			ErrInvalidDefinition, order, name, d, order-1)
	}
	return nil
}

// newBuiltinDefinition parses an exact rational table pair.
func newBuiltinDefinition(order int, spec orderSpec) (*Definition, error) {
	phi, err := spec.phi.segments()
	if err != nil {
		return nil, fmt.Errorf("%w: order %d phi: %w", ErrInvalidDefinition, order, err)
	}
	psi, err := spec.psi.segments()
	if err != nil {
		return nil, fmt.Errorf("%w: order %d psi: %w", ErrInvalidDefinition, order, err)
	}
	return NewDefinition(order, phi, psi)
}

// segments rounds an exact table to float64 segments.
func (t tableSpec) segments() ([]Segment, error) {
	out := make([]Segment, len(t))
	for i, s := range t {
		lo, err := mathutil.ParseBound(s.lo)
		if err != nil {
			return nil, err
		}
		hi, err := mathutil.ParseBound(s.hi)
		if err != nil {
			return nil, err
		}
		coeffs, err := mathutil.ParseRationals(s.coeffs)
		if err != nil {
			return nil, err
		}
		out[i] = Segment{Lo: lo, Hi: hi, Coeffs: mathutil.RatsToFloats(coeffs)}
	}
	return out, nil
}

// Order returns the wavelet order.
func (d *Definition) Order() int { return d.order }

// Phi evaluates the scaling function at x.
func (d *Definition) Phi(x float64) (float64, error) {
	return evalAt(d.phi, x, x)
}

// Psi evaluates the wavelet function at x.
func (d *Definition) Psi(x float64) (float64, error) {
	return evalAt(d.psi, x, x)
}

// PhiJK evaluates 2^(j/2) * phi(2^j*x - k).
func (d *Definition) PhiJK(x float64, j, k int) (float64, error) {
	y, err := evalAt(d.phi, mathutil.DyadicArgument(x, j, k), x)
	return mathutil.DyadicGain(j) * y, err
}

// PsiJK evaluates 2^(j/2) * psi(2^j*x - k).
func (d *Definition) PsiJK(x float64, j, k int) (float64, error) {
	y, err := evalAt(d.psi, mathutil.DyadicArgument(x, j, k), x)
	return mathutil.DyadicGain(j) * y, err
}

// evalAt evaluates fn at arg; input is the caller's sample, reported on error.
func evalAt(fn *piecewise.Function, arg, input float64) (float64, error) {
	y, err := fn.Eval(arg)
	if errors.Is(err, piecewise.ErrInvalidInput) {
		return y, &InvalidInputError{Value: input}
	}
	return y, err
}

// PhiIndices returns a copy of the scaling-function index list.
func (d *Definition) PhiIndices() []ScaleShift {
	return append([]ScaleShift(nil), d.phiIdx...)
}

// PsiIndices returns a copy of the wavelet index list.
func (d *Definition) PsiIndices() []ScaleShift {
	return append([]ScaleShift(nil), d.psiIdx...)
}

// PhiLen returns the number of scaling-function features.
func (d *Definition) PhiLen() int { return len(d.phiIdx) }

// PsiLen returns the number of wavelet features.
func (d *Definition) PsiLen() int { return len(d.psiIdx) }

// FeatureLength returns the width of one feature vector.
func (d *Definition) FeatureLength() int { return len(d.phiIdx) + len(d.psiIdx) }

// Repetition is FeatureLength: the number of regressor columns one input
// signal expands into.
func (d *Definition) Repetition() int { return d.FeatureLength() }

// PhiSegments returns a copy of the scaling-function table.
func (d *Definition) PhiSegments() []Segment { return d.phi.Segments() }

// PsiSegments returns a copy of the wavelet table.
func (d *Definition) PsiSegments() []Segment { return d.psi.Segments() }

// PhiSupport returns the interval outside which phi vanishes.
func (d *Definition) PhiSupport() (lo, hi float64) { return d.phi.Support() }

// PsiSupport returns the interval outside which psi vanishes.
func (d *Definition) PsiSupport() (lo, hi float64) { return d.psi.Support() }

// ColumnLabels names the feature vector entries in order, e.g. "phi[0,-2]"
// or "psi[3,7]".
func (d *Definition) ColumnLabels() []string {
	out := make([]string, 0, d.FeatureLength())
	for _, idx := range d.phiIdx {
		out = append(out, fmt.Sprintf(phiLabelFormat, idx.J, idx.K))
	}
	for _, idx := range d.psiIdx {
		out = append(out, fmt.Sprintf(psiLabelFormat, idx.J, idx.K))
	}
	return out
}
