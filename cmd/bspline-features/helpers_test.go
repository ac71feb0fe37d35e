package main

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	bspline "github.com/tphakala/go-bspline-wavelets"
)

// writeTestWAV encodes interleaved 16-bit samples into a temporary file.
func writeTestWAV(t *testing.T, channels int, data []int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, 44100, 16, channels, 1)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{SampleRate: 44100, NumChannels: channels},
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
	return path
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		path, format, want string
	}{
		{"a.wav", "auto", formatWAV},
		{"a.WAV", "", formatWAV},
		{"a.csv", "auto", formatCSV},
		{"a.txt", "auto", formatCSV},
		{"a.txt", "WAV", formatWAV},
		{"a.wav", "csv", formatCSV},
	}
	for _, tt := range tests {
		got, err := resolveFormat(tt.path, tt.format)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %s", tt.path, tt.format)
	}

	_, err := resolveFormat("a.wav", "flac")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown input format")
}

func TestReadSamples_FileNotFound(t *testing.T) {
	_, err := readSamples("/nonexistent/file.wav", defaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestReadSamples_InvalidWAV(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.wav")
	require.NoError(t, os.WriteFile(invalidFile, []byte("not a wav file"), 0o644))

	_, err := readSamples(invalidFile, defaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestReadSamples_EmptyCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("value\n"), 0o644))

	_, err := readSamples(path, defaultOptions())
	assert.ErrorIs(t, err, bspline.ErrEmptyInput)
}

func TestReadWAV_Mono(t *testing.T) {
	path := writeTestWAV(t, 1, []int{0, 16384, -16384, 32767})
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	src, err := readWAV(f, path, 0)
	require.NoError(t, err)
	assert.Equal(t, 44100, src.sampleRate)
	assert.Equal(t, 1, src.channels)
	assert.Equal(t, 16, src.bitDepth)
	assert.InDeltaSlice(t, []float64{0, 16384.0 / maxInt16, -16384.0 / maxInt16, 1}, src.samples, 1e-12)
}

func TestReadWAV_StereoChannels(t *testing.T) {
	// Interleaved L/R frames
	data := []int{1000, -1000, 2000, 0, 3000, 3000}
	path := writeTestWAV(t, 2, data)

	tests := []struct {
		name    string
		channel int
		want    []float64
	}{
		{"left", 0, []float64{1000, 2000, 3000}},
		{"right", 1, []float64{-1000, 0, 3000}},
		{"mix", mixChannels, []float64{0, 1000, 3000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := os.Open(path)
			require.NoError(t, err)
			defer func() { _ = f.Close() }()

			src, err := readWAV(f, path, tt.channel)
			require.NoError(t, err)
			require.Len(t, src.samples, 3)
			for i, v := range tt.want {
				assert.InDelta(t, v/maxInt16, src.samples[i], 1e-12)
			}
		})
	}
}

func TestReadWAV_ChannelOutOfRange(t *testing.T) {
	path := writeTestWAV(t, 2, []int{1, 2})
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	_, err = readWAV(f, path, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestReadCSV(t *testing.T) {
	input := "value,comment\n# skipped\n0.25,a\n\n 1e-3 ,b\n-2\n"
	got, err := readCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 1e-3, -2}, got)
}

func TestReadCSV_BadValue(t *testing.T) {
	_, err := readCSV(strings.NewReader("1\n2\nthree\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CSV line 3")
}

func TestScaleSamples(t *testing.T) {
	got, err := scaleSamples([]float64{-1, 0, 3}, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.5, 2}, got, 1e-15)

	_, err = scaleSamples(nil, 1)
	assert.ErrorIs(t, err, bspline.ErrEmptyInput)
}

func TestOffsetError(t *testing.T) {
	err := offsetError(&bspline.InvalidInputError{Index: 3, Value: math.NaN()}, 4096)
	var iie *bspline.InvalidInputError
	require.ErrorAs(t, err, &iie)
	assert.Equal(t, 4099, iie.Index)

	assert.Equal(t, bspline.ErrEmptyInput, offsetError(bspline.ErrEmptyInput, 10))
}

func TestFeatureWriter(t *testing.T) {
	var buf bytes.Buffer
	w := newFeatureWriter(&buf)
	require.NoError(t, w.WriteHeader([]string{"a", "b"}))
	require.NoError(t, w.WriteMatrix(mat.NewDense(2, 2, []float64{1, 0.5, -0.25, 1e-20})))
	require.NoError(t, w.Flush())

	assert.Equal(t, "a,b\n1,0.5\n-0.25,1e-20\n", buf.String())
}

func TestProgressTracker_VerboseMode(t *testing.T) {
	tracker := newProgressTracker(1000, true)
	require.NotNil(t, tracker)

	tracker.reportIfNeeded(150)
	assert.Equal(t, 15, tracker.lastProgress)

	// Below the next threshold
	tracker.reportIfNeeded(200)
	assert.Equal(t, 15, tracker.lastProgress)
}

func TestProgressTracker_NonVerboseMode(t *testing.T) {
	tracker := newProgressTracker(1000, false)
	tracker.reportIfNeeded(500)
	assert.Equal(t, 0, tracker.lastProgress)
}

func TestProgressTracker_ZeroSamples(t *testing.T) {
	tracker := newProgressTracker(0, true)
	tracker.reportIfNeeded(100)
	assert.Equal(t, 0, tracker.lastProgress)
}
