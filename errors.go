package bspline

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-bspline-wavelets/internal/piecewise"
)

// Common errors returned by the package. Match them with errors.Is; the typed
// errors below carry the offending value and unwrap to these sentinels.
var (
	// ErrUnsupportedOrder indicates an order with no registered definition.
	ErrUnsupportedOrder = errors.New("bspline: unsupported wavelet order")

	// ErrInvalidOrder indicates an order that is structurally invalid
	// (below 1 or above MaxOrder), regardless of registration.
	ErrInvalidOrder = errors.New("bspline: invalid wavelet order")

	// ErrInvalidDefinition indicates a phi/psi table that fails the partition
	// or support invariant. Such a definition is never registered.
	ErrInvalidDefinition = piecewise.ErrInvalidDefinition

	// ErrInvalidInput indicates an input sample no branch can classify (NaN).
	ErrInvalidInput = piecewise.ErrInvalidInput

	// ErrEmptyInput indicates a batch with no samples.
	ErrEmptyInput = errors.New("bspline: empty input")

	// ErrInvalidConfig indicates invalid decomposer configuration.
	ErrInvalidConfig = errors.New("bspline: invalid configuration")
)

// UnsupportedOrderError reports a valid order that has no registered
// definition.
type UnsupportedOrderError struct {
	Order int
}

func (e *UnsupportedOrderError) Error() string {
	return fmt.Sprintf("%v: order %d not implemented", ErrUnsupportedOrder, e.Order)
}

func (e *UnsupportedOrderError) Unwrap() error {
	return ErrUnsupportedOrder
}

// InvalidOrderError reports an order outside [1, MaxOrder].
type InvalidOrderError struct {
	Order int
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("%v: %d (must be in [1, %d])", ErrInvalidOrder, e.Order, MaxOrder)
}

func (e *InvalidOrderError) Unwrap() error {
	return ErrInvalidOrder
}

// InvalidInputError reports the first sample of a call that matched no
// branch. Index is the sample position within the batch (0 for scalars).
type InvalidInputError struct {
	Index int
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%v: sample %d (x=%v)", ErrInvalidInput, e.Index, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// checkOrder validates the structural range of an order.
func checkOrder(order int) error {
	if order < minOrder || order > MaxOrder {
		return &InvalidOrderError{Order: order}
	}
	return nil
}
