package bspline

// Order limits
const (
	minOrder = 1 // Smallest structurally valid order

	// MaxOrder is the largest order the index enumerator accepts. The psi
	// index count grows as (order+1)*2^(order-1); at 16 it is under a million.
	MaxOrder = 16
)

// Support geometry of an order-n definition
const (
	psiSupportFactor = 2 // psi support is [0, 2n-1], phi support is [0, n]
)

// Decomposer defaults
const (
	minRowsPerWorker = 64 // Below this many rows per goroutine, stay sequential
)

// Column label formats used by ColumnLabels
const (
	phiLabelFormat = "phi[%d,%d]"
	psiLabelFormat = "psi[%d,%d]"
)
