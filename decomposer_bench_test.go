package bspline

import (
	"fmt"
	"testing"
)

// BenchmarkTransformSequential benchmarks sequential batch evaluation.
func BenchmarkTransformSequential(b *testing.B) {
	benchmarkTransform(b, false)
}

// BenchmarkTransformParallel benchmarks parallel batch evaluation.
func BenchmarkTransformParallel(b *testing.B) {
	benchmarkTransform(b, true)
}

func benchmarkTransform(b *testing.B, parallel bool) {
	b.Helper()

	const (
		order      = 4
		numSamples = 44100 // 1 second of audio
	)

	config := &Config{
		Order:          order,
		EnableSIMD:     true,
		EnableParallel: parallel,
	}

	d, err := New(config)
	if err != nil {
		b.Fatalf("Failed to create decomposer: %v", err)
	}

	input := make([]float64, numSamples)
	for i := range numSamples {
		input[i] = float64(i) / float64(numSamples) // Simple ramp
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := d.Transform(input); err != nil {
			b.Fatalf("Transform failed: %v", err)
		}
	}
}

// BenchmarkTransformOrders benchmarks parallel evaluation for every order.
func BenchmarkTransformOrders(b *testing.B) {
	const numSamples = 8192

	input := sineInput(numSamples)

	for _, order := range SupportedOrders() {
		b.Run(fmt.Sprintf("Order%d", order), func(b *testing.B) {
			d, err := New(&Config{Order: order, EnableSIMD: true, EnableParallel: true})
			if err != nil {
				b.Fatalf("Failed to create decomposer: %v", err)
			}

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := d.Transform(input); err != nil {
					b.Fatalf("Transform failed: %v", err)
				}
			}
		})
	}
}
