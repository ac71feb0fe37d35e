package bspline

import (
	"errors"
	"math"
	"testing"
)

// TestNewParallel verifies the parallel convenience constructor.
func TestNewParallel(t *testing.T) {
	d, err := NewParallel(3)
	if err != nil {
		t.Fatalf("NewParallel failed: %v", err)
	}
	info := d.GetInfo()
	if info.Workers < 1 || !info.SIMDEnabled {
		t.Errorf("unexpected info: %+v", info)
	}

	if _, err := NewParallel(9); !errors.Is(err, ErrUnsupportedOrder) {
		t.Errorf("NewParallel(9) = %v, want ErrUnsupportedOrder", err)
	}
}

// TestDecomposeFloat32 verifies float32 results track the float64 path.
func TestDecomposeFloat32(t *testing.T) {
	const numSamples = 64

	input := make([]float32, numSamples)
	input64 := make([]float64, numSamples)
	for i := range input {
		input[i] = float32(i) / numSamples
		input64[i] = float64(input[i])
	}

	out, err := DecomposeFloat32(input, 2)
	if err != nil {
		t.Fatalf("DecomposeFloat32 failed: %v", err)
	}
	want, err := DecomposeBatch(input64, 2)
	if err != nil {
		t.Fatal(err)
	}

	rows := Rows(want)
	cols := len(rows[0])
	if len(out) != numSamples*cols {
		t.Fatalf("len = %d, want %d", len(out), numSamples*cols)
	}
	for i, row := range rows {
		for c, v := range row {
			if math.Abs(float64(out[i*cols+c])-v) > 1e-6 {
				t.Errorf("sample %d col %d: float32=%v float64=%v", i, c, out[i*cols+c], v)
			}
		}
	}
}

// TestNormalize verifies min-max scaling onto [0, 1].
func TestNormalize(t *testing.T) {
	input := []float64{-2, 0, 2, 6}
	out, err := Normalize(input)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	want := []float64{0, 0.25, 0.5, 1}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-15 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
	if input[0] != -2 {
		t.Error("Normalize modified its input")
	}

	flat, err := Normalize([]float64{3, 3, 3})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range flat {
		if v != 0 {
			t.Errorf("constant signal: out[%d] = %v, want 0", i, v)
		}
	}
}

// TestNormalize_Errors verifies rejection of empty and non-finite input.
func TestNormalize_Errors(t *testing.T) {
	if _, err := Normalize(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Normalize(nil) = %v, want ErrEmptyInput", err)
	}

	_, err := Normalize([]float64{0, 1, math.Inf(1)})
	var iie *InvalidInputError
	if !errors.As(err, &iie) || iie.Index != 2 {
		t.Errorf("Normalize(+Inf) = %v, want InvalidInputError at 2", err)
	}
}

// TestMixToMono verifies channel averaging.
func TestMixToMono(t *testing.T) {
	interleaved := []float64{1, 3, -1, 1, 0.5, 0.5}
	mono, err := MixToMono(interleaved, 2)
	if err != nil {
		t.Fatalf("MixToMono failed: %v", err)
	}
	want := []float64{2, 0, 0.5}
	for i := range want {
		if mono[i] != want[i] {
			t.Errorf("mono[%d] = %v, want %v", i, mono[i], want[i])
		}
	}

	if _, err := MixToMono(interleaved, 4); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ragged input = %v, want ErrInvalidInput", err)
	}
	if _, err := MixToMono(interleaved, 0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero channels = %v, want ErrInvalidConfig", err)
	}
}

// TestDeinterleave verifies channel splitting.
func TestDeinterleave(t *testing.T) {
	const numSamples = 100

	interleaved := make([]float64, 0, numSamples*2)
	for i := range numSamples {
		interleaved = append(interleaved, float64(i), float64(i+1000))
	}

	chans := Deinterleave(interleaved, 2)
	if len(chans) != 2 || len(chans[0]) != numSamples || len(chans[1]) != numSamples {
		t.Fatalf("unexpected shape: %d channels", len(chans))
	}
	for i := range numSamples {
		if chans[0][i] != float64(i) {
			t.Errorf("left[%d] = %v, want %v", i, chans[0][i], float64(i))
		}
		if chans[1][i] != float64(i+1000) {
			t.Errorf("right[%d] = %v, want %v", i, chans[1][i], float64(i+1000))
		}
	}

	if Deinterleave(interleaved, 0) != nil {
		t.Error("Deinterleave with zero channels should return nil")
	}
}
