package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/mat"

	bspline "github.com/tphakala/go-bspline-wavelets"
)

const (
	// Samples per channel read from the WAV decoder per call
	wavReadFrames = 65536

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// Input formats
	formatAuto = "auto"
	formatWAV  = "wav"
	formatCSV  = "csv"

	// Float formatting for CSV output: shortest representation that round-trips
	floatFormat    = 'g'
	floatPrecision = -1
	floatBits      = 64
)

// sampleSource holds decoded samples and, for WAV input, the source format.
type sampleSource struct {
	samples    []float64
	sampleRate int
	channels   int
	bitDepth   int
}

// resolveFormat maps "auto" to a concrete format using the file extension.
func resolveFormat(path, format string) (string, error) {
	switch strings.ToLower(format) {
	case formatWAV:
		return formatWAV, nil
	case formatCSV:
		return formatCSV, nil
	case formatAuto, "":
		if strings.EqualFold(filepath.Ext(path), ".wav") {
			return formatWAV, nil
		}
		return formatCSV, nil
	default:
		return "", fmt.Errorf("unknown input format %q (want auto, wav or csv)", format)
	}
}

// readSamples reads the input file in the configured format.
func readSamples(path string, opts options) (*sampleSource, error) {
	format, err := resolveFormat(path, opts.InputFormat)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var src *sampleSource
	if format == formatWAV {
		src, err = readWAV(f, path, opts.Channel)
	} else {
		var samples []float64
		samples, err = readCSV(f)
		src = &sampleSource{samples: samples}
	}
	if err != nil {
		return nil, err
	}

	if len(src.samples) == 0 {
		return nil, fmt.Errorf("%s: %w", path, bspline.ErrEmptyInput)
	}
	return src, nil
}

// readWAV decodes PCM samples into [-1, 1]. channel selects one channel;
// mixChannels averages all of them.
func readWAV(r io.ReadSeeker, name string, channel int) (*sampleSource, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", name)
	}

	format := decoder.Format()
	channels := format.NumChannels
	bitDepth := int(decoder.BitDepth)
	if channels <= 0 {
		return nil, fmt.Errorf("invalid WAV file: %s has no channels", name)
	}
	if channel != mixChannels && (channel < 0 || channel >= channels) {
		return nil, fmt.Errorf("channel %d out of range: file has %d channels", channel, channels)
	}

	buf := &audio.IntBuffer{
		Data:   make([]int, wavReadFrames*channels),
		Format: format,
	}
	invMaxVal := 1.0 / getMaxValue(bitDepth)

	var interleaved []float64
	for {
		n, err := decoder.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}
		for _, v := range buf.Data[:n] {
			interleaved = append(interleaved, float64(v)*invMaxVal)
		}
	}

	src := &sampleSource{
		sampleRate: format.SampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}

	// Drop a trailing partial frame from a truncated file.
	interleaved = interleaved[:len(interleaved)-len(interleaved)%channels]

	var err error
	switch {
	case channels == 1:
		src.samples = interleaved
	case channel == mixChannels:
		src.samples, err = bspline.MixToMono(interleaved, channels)
	default:
		src.samples = bspline.Deinterleave(interleaved, channels)[channel]
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// readCSV reads the first column of every record. Blank lines are skipped
// and a non-numeric first record is treated as a header.
func readCSV(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var samples []float64
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		field := strings.TrimSpace(record[0])
		if field == "" {
			continue
		}

		v, err := strconv.ParseFloat(field, floatBits)
		if err != nil {
			if len(samples) == 0 && line == 1 {
				continue
			}
			row, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("CSV line %d: %w", row, err)
		}
		samples = append(samples, v)
	}
	return samples, nil
}

// scaleSamples min-max scales samples into [0, scale].
func scaleSamples(samples []float64, scale float64) ([]float64, error) {
	out, err := bspline.Normalize(samples)
	if err != nil {
		return nil, err
	}
	if scale != 1 {
		f64.Scale(out, out, scale)
	}
	return out, nil
}

// offsetError shifts the sample index of an InvalidInputError from a block
// to the whole input.
func offsetError(err error, offset int) error {
	var iie *bspline.InvalidInputError
	if errors.As(err, &iie) {
		return &bspline.InvalidInputError{Index: iie.Index + offset, Value: iie.Value}
	}
	return err
}

// featureWriter writes feature matrices as CSV.
type featureWriter struct {
	w      *csv.Writer
	record []string
}

func newFeatureWriter(w io.Writer) *featureWriter {
	return &featureWriter{w: csv.NewWriter(w)}
}

// WriteHeader writes the column labels.
func (fw *featureWriter) WriteHeader(labels []string) error {
	fw.record = make([]string, len(labels))
	return fw.w.Write(labels)
}

// WriteMatrix writes one CSV record per matrix row.
func (fw *featureWriter) WriteMatrix(m mat.Matrix) error {
	rows, cols := m.Dims()
	if len(fw.record) != cols {
		fw.record = make([]string, cols)
	}
	for i := range rows {
		for j := range cols {
			fw.record[j] = strconv.FormatFloat(m.At(i, j), floatFormat, floatPrecision, floatBits)
		}
		if err := fw.w.Write(fw.record); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered records and reports any write error.
func (fw *featureWriter) Flush() error {
	fw.w.Flush()
	return fw.w.Error()
}

// progressTracker handles progress reporting.
type progressTracker struct {
	total        int
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(total int, verbose bool) *progressTracker {
	return &progressTracker{
		total:   total,
		verbose: verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(current int) {
	if !p.verbose || p.total == 0 {
		return
	}

	progress := int(float64(current) / float64(p.total) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}
