package mathutil

import "math"

// DyadicGain returns the L2 normalisation 2^(j/2) of a function dilated to
// scale j. The exponent is real, so odd j gives a power of sqrt(2).
func DyadicGain(j int) float64 {
	return math.Pow(dyadicBase, float64(j)/halfDivisor)
}

// DyadicDilation returns 2^j.
func DyadicDilation(j int) float64 {
	return math.Ldexp(1, j)
}

// DyadicArgument maps x to the argument 2^j*x - k of a dilated, translated
// basis function.
func DyadicArgument(x float64, j, k int) float64 {
	return DyadicDilation(j)*x - float64(k)
}
