package mathutil

// Dyadic transform constants
const (
	dyadicBase  = 2.0 // Base of the dyadic scale ladder
	halfDivisor = 2.0 // Exponent divisor for the 2^(j/2) gain
)

// Bound literals accepted by ParseBound
const (
	negInfLiteral = "-inf"
	posInfLiteral = "+inf"
	infLiteral    = "inf"
)
