package bspline

import (
	"fmt"
	"runtime"
)

// Config holds decomposer configuration.
type Config struct {
	// Order selects the wavelet family. It must be registered in Registry.
	Order int

	// Registry resolves Order. Nil means DefaultRegistry().
	Registry *Registry

	// EnableSIMD allows the use of SIMD kernels for dilation and gain.
	// Set to false to force the pure Go implementation. Results are
	// identical either way.
	EnableSIMD bool

	// EnableParallel splits batch rows across goroutines.
	// Rows are assembled in input order, so the output does not depend on
	// scheduling.
	EnableParallel bool

	// Workers caps the number of goroutines used when EnableParallel is set.
	// Set to 0 to use runtime.GOMAXPROCS(0).
	Workers int
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := checkOrder(c.Order); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0", ErrInvalidConfig)
	}

	return nil
}

// registry returns the configured registry or the default one.
func (c *Config) registry() *Registry {
	if c.Registry != nil {
		return c.Registry
	}
	return DefaultRegistry()
}

// workers returns the effective goroutine cap.
func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
