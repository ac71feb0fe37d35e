package bspline

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrRegistryFrozen is returned when registering into the shared default
// registry, which is read-only after construction.
var ErrRegistryFrozen = errors.New("bspline: registry is read-only")

// Registry maps wavelet orders to their definitions.
//
// Register every order before sharing a Registry between goroutines; after
// that Resolve is read-only and needs no locking.
type Registry struct {
	defs   map[int]*Definition
	frozen bool
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	r.frozen = true
	return r
})

// DefaultRegistry returns the shared, read-only registry of built-in orders.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// NewRegistry returns a registry seeded with the built-in orders.
// It panics if a built-in table is malformed, which is a programming error.
func NewRegistry() *Registry {
	r := &Registry{defs: make(map[int]*Definition, len(builtinTables))}
	for order, spec := range builtinTables {
		def, err := newBuiltinDefinition(order, spec)
		if err != nil {
			panic(fmt.Sprintf("bspline: built-in order %d: %v", order, err))
		}
		r.defs[order] = def
	}
	return r
}

// Register associates def with def.Order(). A later registration for the
// same order replaces the earlier one.
func (r *Registry) Register(def *Definition) error {
	if r.frozen {
		return ErrRegistryFrozen
	}
	if def == nil {
		return fmt.Errorf("%w: nil definition", ErrInvalidDefinition)
	}
	r.defs[def.Order()] = def
	return nil
}

// Resolve returns the definition registered for order.
func (r *Registry) Resolve(order int) (*Definition, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	def, ok := r.defs[order]
	if !ok {
		return nil, &UnsupportedOrderError{Order: order}
	}
	return def, nil
}

// Orders returns the registered orders in ascending order.
func (r *Registry) Orders() []int {
	out := make([]int, 0, len(r.defs))
	for order := range r.defs {
		out = append(out, order)
	}
	slices.Sort(out)
	return out
}

// GetBasis resolves order against the default registry.
func GetBasis(order int) (*Definition, error) {
	return DefaultRegistry().Resolve(order)
}

// SupportedOrders lists the orders of the default registry.
func SupportedOrders() []int {
	return DefaultRegistry().Orders()
}
