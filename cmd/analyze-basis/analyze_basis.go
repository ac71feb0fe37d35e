// Command analyze-basis prints the structure of the registered B-spline
// wavelet definitions and checks them numerically.
//
// Usage:
//
//	analyze-basis              # all orders
//	analyze-basis -order 3     # one order
//	analyze-basis -samples 9   # more sampled values per function
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	bspline "github.com/tphakala/go-bspline-wavelets"
	"github.com/tphakala/go-bspline-wavelets/internal/mathutil"
)

const (
	// Grid sizes
	defaultSamples    = 5     // Sampled values printed per function
	quadraturePoints  = 20001 // Trapezoidal grid for integrals
	unityGridPoints   = 1001  // Grid over [0, 1) for the partition-of-unity check
	unityGridEndpoint = 0.999

	// Display limits
	maxShiftsToShow = 8 // Shifts listed per scale before eliding
)

// continuityReport summarises the jumps of one function at its breakpoints.
type continuityReport struct {
	Breakpoints int
	MaxJump     float64
	At          float64
}

// basisReport holds the numeric checks for one order.
type basisReport struct {
	Info        bspline.Info
	Phi         continuityReport
	Psi         continuityReport
	PhiIntegral float64
	PsiIntegral float64
	UnityError  float64
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(argv []string, out io.Writer) error {
	fs := flag.NewFlagSet("analyze-basis", flag.ContinueOnError)
	order := fs.Int("order", 0, "Order to analyze (0 = all registered orders)")
	samples := fs.Int("samples", defaultSamples, "Sampled values per function")
	if err := fs.Parse(argv); err != nil {
		return err
	}
	if *samples < 2 {
		return fmt.Errorf("samples must be >= 2, got %d", *samples)
	}

	orders := bspline.SupportedOrders()
	if *order != 0 {
		orders = []int{*order}
	}

	for _, n := range orders {
		def, err := bspline.GetBasis(n)
		if err != nil {
			return err
		}
		report, err := analyze(def)
		if err != nil {
			return err
		}
		printReport(out, def, report, *samples)
	}
	return nil
}

// analyze runs the numeric checks for one definition.
func analyze(def *bspline.Definition) (*basisReport, error) {
	d, err := bspline.New(&bspline.Config{Order: def.Order(), EnableSIMD: true})
	if err != nil {
		return nil, err
	}

	r := &basisReport{
		Info: d.GetInfo(),
		Phi:  continuity(def.PhiSegments()),
		Psi:  continuity(def.PsiSegments()),
	}

	r.PhiIntegral, err = integral(def.Phi, r.Info.PhiSupport)
	if err != nil {
		return nil, err
	}
	r.PsiIntegral, err = integral(def.Psi, r.Info.PsiSupport)
	if err != nil {
		return nil, err
	}

	xs := floats.Span(make([]float64, unityGridPoints), 0, unityGridEndpoint)
	m, err := d.Transform(xs)
	if err != nil {
		return nil, err
	}
	for i := range xs {
		var sum float64
		for c := range def.PhiLen() {
			sum += m.At(i, c)
		}
		r.UnityError = max(r.UnityError, math.Abs(sum-1))
	}
	return r, nil
}

// continuity measures |left limit - value| at every finite breakpoint.
func continuity(segs []bspline.Segment) continuityReport {
	var rep continuityReport
	for i := 1; i < len(segs); i++ {
		b := segs[i].Lo
		left := mathutil.Horner(segs[i-1].Coeffs, b)
		right := mathutil.Horner(segs[i].Coeffs, b)
		rep.Breakpoints++
		if jump := math.Abs(left - right); jump > rep.MaxJump {
			rep.MaxJump = jump
			rep.At = b
		}
	}
	return rep
}

// integral integrates fn over support with the trapezoidal rule.
func integral(fn func(float64) (float64, error), support [2]float64) (float64, error) {
	xs := floats.Span(make([]float64, quadraturePoints), support[0], support[1])
	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, err := fn(x)
		if err != nil {
			return 0, err
		}
		ys[i] = y
	}
	return integrate.Trapezoidal(xs, ys), nil
}

func printReport(out io.Writer, def *bspline.Definition, r *basisReport, samples int) {
	info := r.Info
	fmt.Fprintf(out, "=== Order %d ===\n", info.Order)
	fmt.Fprintf(out, "Features: %d phi + %d psi = %d\n", info.PhiLen, info.PsiLen, info.FeatureLength)
	fmt.Fprintf(out, "Support: phi [%g, %g], psi [%g, %g]\n",
		info.PhiSupport[0], info.PhiSupport[1], info.PsiSupport[0], info.PsiSupport[1])

	fmt.Fprintf(out, "\nIndices:\n")
	fmt.Fprintf(out, "  phi j=0: %s\n", shifts(def.PhiIndices(), 0))
	for j := 0; j <= info.Order; j++ {
		fmt.Fprintf(out, "  psi j=%d: %s\n", j, shifts(def.PsiIndices(), j))
	}

	fmt.Fprintf(out, "\nSampled values:\n")
	printSamples(out, "phi", def.Phi, info.PhiSupport, samples)
	printSamples(out, "psi", def.Psi, info.PsiSupport, samples)

	fmt.Fprintf(out, "\nChecks:\n")
	fmt.Fprintf(out, "  phi continuity: max jump %.3e at x=%g over %d breakpoints\n",
		r.Phi.MaxJump, r.Phi.At, r.Phi.Breakpoints)
	fmt.Fprintf(out, "  psi continuity: max jump %.3e at x=%g over %d breakpoints\n",
		r.Psi.MaxJump, r.Psi.At, r.Psi.Breakpoints)
	fmt.Fprintf(out, "  integral of phi: %.10f\n", r.PhiIntegral)
	fmt.Fprintf(out, "  integral of psi: %.10f\n", r.PsiIntegral)
	fmt.Fprintf(out, "  partition of unity: max error %.3e\n\n", r.UnityError)
}

// shifts formats the k values of the indices at scale j.
func shifts(idx []bspline.ScaleShift, j int) string {
	var ks []int
	for _, s := range idx {
		if s.J == j {
			ks = append(ks, s.K)
		}
	}
	if len(ks) <= maxShiftsToShow {
		return fmt.Sprintf("k=%v", ks)
	}
	return fmt.Sprintf("k=%d..%d (%d shifts)", ks[0], ks[len(ks)-1], len(ks))
}

func printSamples(out io.Writer, name string, fn func(float64) (float64, error), support [2]float64, samples int) {
	for _, x := range floats.Span(make([]float64, samples), support[0], support[1]) {
		y, err := fn(x)
		if err != nil {
			fmt.Fprintf(out, "  %s(%g): error: %v\n", name, x, err)
			continue
		}
		fmt.Fprintf(out, "  %s(%g) = %.10f\n", name, x, y)
	}
}
