// Package bspline provides B-spline wavelet basis functions of orders 1
// through 5 in pure Go, for expanding scalar samples into fixed-length
// feature vectors.
//
// Each order n defines a scaling function phi (the cardinal B-spline of order
// n, supported on [0, n]) and a wavelet function psi (supported on
// [0, 2n-1]). Both are stored as exact piecewise polynomials; order 1 is the
// Haar system. Features are dilated, translated and L2 normalised copies of
// the two mother functions:
//
//	phi_{j,k}(x) = 2^(j/2) * phi(2^j*x - k)
//	psi_{j,k}(x) = 2^(j/2) * psi(2^j*x - k)
//
// # Features
//
//   - Exact rational tables for orders 1-5, validated for partition and
//     continuity at construction time
//   - Deterministic index enumeration: n scaling functions at scale 0 and
//     wavelets at scales 0 through n
//   - Batch evaluation into a [gonum.org/v1/gonum/mat.Dense] feature matrix
//   - Optional SIMD acceleration via github.com/tphakala/simd
//   - Optional parallel batch evaluation with bit-exact results
//   - Registry of definitions, extensible with caller-supplied orders
//
// # Quick Start
//
// For one sample:
//
//	features, err := bspline.Decompose(0.3, 3) // 30 values
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For a batch with a reusable decomposer:
//
//	d, err := bspline.New(&bspline.Config{
//	    Order:          4,
//	    EnableSIMD:     true,
//	    EnableParallel: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err := d.Transform(samples) // len(samples) x 70
//
// # Feature Layout
//
// A feature vector holds the phi features followed by the psi features.
// The phi indices are (0, k) for k = -(n-1) .. 0, the integer translates
// of phi that do not vanish on [0, 1). The psi indices run scale-major: for
// j = 0 .. n, k = -2^(n-1)+1 .. 2^j-1. The vector length depends only on
// the order:
//
//	order  phi  psi  total
//	1      1    3    4
//	2      2    10   12
//	3      3    27   30
//	4      4    66   70
//	5      5    153  158
//
// [Definition.ColumnLabels] names every column, for example "psi[2,-1]".
//
// # Evaluation
//
// Segments are half-open [lo, hi), so a sample on a breakpoint is evaluated
// by the segment that starts there. Samples outside the support give 0,
// including ±Inf. NaN matches no segment and is rejected with an
// [InvalidInputError]; in a batch the whole call fails and the error carries
// the position of the first offending sample.
//
// # Errors
//
// Errors wrap sentinel values and can be tested with [errors.Is]:
//
//   - [ErrInvalidOrder]: order outside 1..[MaxOrder]
//   - [ErrUnsupportedOrder]: order valid but not registered
//   - [ErrInvalidDefinition]: malformed piecewise table
//   - [ErrInvalidInput]: sample not covered by any segment
//   - [ErrEmptyInput]: empty batch
//   - [ErrInvalidConfig]: bad [Config]
//
// # Custom Orders
//
// [DefaultRegistry] is shared and read-only. To add or replace an order,
// build a private registry:
//
//	r := bspline.NewRegistry()
//	def, err := bspline.NewDefinition(6, phiSegments, psiSegments)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := r.Register(def); err != nil {
//	    log.Fatal(err)
//	}
//	d, err := bspline.New(&bspline.Config{Order: 6, Registry: r})
//
// # Thread Safety
//
// [Definition], [Decomposer] and [DefaultRegistry] are immutable after
// construction and safe for concurrent use. [Registry.Register] on a private
// registry must not race with lookups on the same registry.
package bspline
