// Package piecewise evaluates real functions defined as ordered tables of
// polynomial segments that partition the real line.
package piecewise

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tphakala/go-bspline-wavelets/internal/mathutil"
)

var (
	// ErrInvalidDefinition indicates a segment table that does not partition
	// the real line, or carries non-finite coefficients.
	ErrInvalidDefinition = errors.New("bspline: invalid piecewise definition")

	// ErrInvalidInput indicates an input that no segment can classify (NaN).
	ErrInvalidInput = errors.New("bspline: input matches no piecewise branch")
)

// Segment is one branch of a piecewise polynomial. It covers [Lo, Hi), except
// the last segment of a table which also contains Hi (= +Inf).
type Segment struct {
	Lo, Hi float64

	// Coeffs holds the polynomial coefficients, highest degree first.
	// A single zero coefficient is the constant zero branch.
	Coeffs []float64
}

// IsZero reports whether the segment's polynomial is identically zero.
func (s Segment) IsZero() bool {
	for _, c := range s.Coeffs {
		if c != 0 {
			return false
		}
	}
	return true
}

// Degree returns the degree of the segment's polynomial, ignoring leading
// zero coefficients. The zero polynomial has degree 0.
func (s Segment) Degree() int {
	for i, c := range s.Coeffs {
		if c != 0 {
			return len(s.Coeffs) - 1 - i
		}
	}
	return 0
}

// Function is an immutable, validated piecewise polynomial.
// It is safe for concurrent use.
type Function struct {
	segs []Segment
}

// New validates segs and returns the function they define.
// The slice and coefficient slices are copied.
//
// segs must be ordered, start at -Inf, end at +Inf, and be contiguous:
// segs[i].Hi == segs[i+1].Lo with every Lo < Hi.
func New(segs []Segment) (*Function, error) {
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrInvalidDefinition)
	}
	if !math.IsInf(segs[0].Lo, -1) {
		return nil, fmt.Errorf("%w: first segment starts at %v, not -Inf", ErrInvalidDefinition, segs[0].Lo)
	}
	last := len(segs) - 1
	if !math.IsInf(segs[last].Hi, 1) {
		return nil, fmt.Errorf("%w: last segment ends at %v, not +Inf", ErrInvalidDefinition, segs[last].Hi)
	}

	for i, s := range segs {
		if math.IsNaN(s.Lo) || math.IsNaN(s.Hi) {
			return nil, fmt.Errorf("%w: segment %d has a NaN bound", ErrInvalidDefinition, i)
		}
		if !(s.Lo < s.Hi) {
			return nil, fmt.Errorf("%w: segment %d is empty [%v, %v)", ErrInvalidDefinition, i, s.Lo, s.Hi)
		}
		if i < last && s.Hi != segs[i+1].Lo {
			if s.Hi < segs[i+1].Lo {
				return nil, fmt.Errorf("%w: gap between segment %d and %d at [%v, %v)",
					ErrInvalidDefinition, i, i+1, s.Hi, segs[i+1].Lo)
			}
			return nil, fmt.Errorf("%w: segments %d and %d overlap on [%v, %v)",
				ErrInvalidDefinition, i, i+1, segs[i+1].Lo, s.Hi)
		}
		if len(s.Coeffs) == 0 {
			return nil, fmt.Errorf("%w: segment %d has no coefficients", ErrInvalidDefinition, i)
		}
		for _, c := range s.Coeffs {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, fmt.Errorf("%w: segment %d has a non-finite coefficient", ErrInvalidDefinition, i)
			}
		}
		// Unbounded branches must be constant, otherwise the function blows up.
		if (math.IsInf(s.Lo, -1) || math.IsInf(s.Hi, 1)) && s.Degree() > 0 {
			return nil, fmt.Errorf("%w: unbounded segment %d is not constant", ErrInvalidDefinition, i)
		}
	}

	return &Function{segs: cloneSegments(segs)}, nil
}

// Locate returns the index of the unique segment containing x.
// It reports false for NaN, which no ordered comparison can place.
func (f *Function) Locate(x float64) (int, bool) {
	// First segment whose open upper bound lies above x.
	i := sort.Search(len(f.segs), func(i int) bool { return x < f.segs[i].Hi })
	if i == len(f.segs) {
		// Only +Inf (closed end of the last segment) or NaN get here.
		i = len(f.segs) - 1
	}
	if !(f.segs[i].Lo <= x) {
		return 0, false
	}
	return i, true
}

// Eval evaluates the function at x.
func (f *Function) Eval(x float64) (float64, error) {
	i, ok := f.Locate(x)
	if !ok {
		return math.NaN(), fmt.Errorf("%w: x=%v", ErrInvalidInput, x)
	}
	return f.evalSegment(i, x), nil
}

// EvalAll evaluates the function at every element of xs and writes the
// results to dst, which must have the same length. It stops at the first
// input that cannot be classified and reports its index.
func (f *Function) EvalAll(dst, xs []float64) error {
	if len(dst) != len(xs) {
		return fmt.Errorf("piecewise: dst length %d != input length %d", len(dst), len(xs))
	}
	for n, x := range xs {
		i, ok := f.Locate(x)
		if !ok {
			return &IndexError{Index: n, Value: x}
		}
		dst[n] = f.evalSegment(i, x)
	}
	return nil
}

// evalSegment evaluates segment i at x. Constant branches skip the
// multiplication so that ±Inf inputs map to the constant instead of NaN.
func (f *Function) evalSegment(i int, x float64) float64 {
	s := &f.segs[i]
	if len(s.Coeffs) == 1 {
		return s.Coeffs[0]
	}
	return mathutil.Horner(s.Coeffs, x)
}

// Support returns the smallest interval [lo, hi] outside of which every
// segment is the zero polynomial. An identically zero function returns (0, 0).
func (f *Function) Support() (lo, hi float64) {
	first, last := -1, -1
	for i, s := range f.segs {
		if !s.IsZero() {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0, 0
	}
	return f.segs[first].Lo, f.segs[last].Hi
}

// Breakpoints returns the finite segment bounds in ascending order.
func (f *Function) Breakpoints() []float64 {
	out := make([]float64, 0, len(f.segs)-1)
	for _, s := range f.segs[1:] {
		out = append(out, s.Lo)
	}
	return out
}

// MaxDegree returns the largest polynomial degree across all segments.
func (f *Function) MaxDegree() int {
	var d int
	for _, s := range f.segs {
		d = max(d, s.Degree())
	}
	return d
}

// Len returns the number of segments.
func (f *Function) Len() int {
	return len(f.segs)
}

// Segments returns a deep copy of the segment table.
func (f *Function) Segments() []Segment {
	return cloneSegments(f.segs)
}

func cloneSegments(segs []Segment) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = Segment{Lo: s.Lo, Hi: s.Hi, Coeffs: append([]float64(nil), s.Coeffs...)}
	}
	return out
}

// IndexError reports the position and value of an element that matched no
// segment during EvalAll. It unwraps to ErrInvalidInput.
type IndexError struct {
	Index int
	Value float64
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: element %d (x=%v)", ErrInvalidInput, e.Index, e.Value)
}

func (e *IndexError) Unwrap() error {
	return ErrInvalidInput
}
