// Package mathutil provides the polynomial and dyadic arithmetic shared by the
// B-spline wavelet tables.
package mathutil

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Horner evaluates the polynomial with coefficients given highest degree
// first at x:
//
//	coeffs[0]*x^(n-1) + coeffs[1]*x^(n-2) + ... + coeffs[n-1]
//
// An empty coefficient slice is the zero polynomial.
func Horner(coeffs []float64, x float64) float64 {
	var y float64
	for _, c := range coeffs {
		y = y*x + c
	}
	return y
}

// HornerRat is Horner in exact rational arithmetic.
func HornerRat(coeffs []*big.Rat, x *big.Rat) *big.Rat {
	y := new(big.Rat)
	for _, c := range coeffs {
		y.Mul(y, x)
		y.Add(y, c)
	}
	return y
}

// IntegrateRat returns the exact integral of x^moment * p(x) over [lo, hi],
// where p has coefficients highest degree first.
func IntegrateRat(coeffs []*big.Rat, moment int, lo, hi *big.Rat) *big.Rat {
	sum := new(big.Rat)
	deg := len(coeffs) - 1
	for i, c := range coeffs {
		p := int64(deg - i + moment + 1)
		term := new(big.Rat).Sub(ratPow(hi, p), ratPow(lo, p))
		term.Mul(term, c)
		term.Quo(term, new(big.Rat).SetInt64(p))
		sum.Add(sum, term)
	}
	return sum
}

func ratPow(x *big.Rat, n int64) *big.Rat {
	r := big.NewRat(1, 1)
	for range n {
		r.Mul(r, x)
	}
	return r
}

// ParseRational parses an exact rational literal such as "-73/1244160",
// "3", or "0.5".
func ParseRational(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("mathutil: invalid rational literal %q", s)
	}
	return r, nil
}

// ParseRationals parses every literal in lits.
func ParseRationals(lits []string) ([]*big.Rat, error) {
	out := make([]*big.Rat, len(lits))
	for i, lit := range lits {
		r, err := ParseRational(lit)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// RatsToFloats rounds each rational to the nearest float64.
func RatsToFloats(rs []*big.Rat) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i], _ = r.Float64()
	}
	return out
}

// ParseBound parses a segment bound. "-inf" and "+inf" map to the
// corresponding infinities, anything else must be a rational literal.
func ParseBound(s string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case negInfLiteral:
		return math.Inf(-1), nil
	case posInfLiteral, infLiteral:
		return math.Inf(1), nil
	}
	r, err := ParseRational(s)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}
