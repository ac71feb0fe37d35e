// Command bspline-features expands a signal into B-spline wavelet features.
//
// Usage:
//
//	bspline-features -order 3 input.wav features.csv
//	bspline-features -order 5 -normalize=false samples.csv features.csv
//	bspline-features -config job.yaml input.wav -          # CSV to stdout
//
// Samples are read from a WAV file (first channel, a chosen channel, or the
// mean of all channels) or from a one-column CSV. By default they are
// min-max scaled into [0, scale] before decomposition. The output CSV has
// one row per sample and a header row of column labels.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	bspline "github.com/tphakala/go-bspline-wavelets"
)

const (
	// Rows decomposed per block; bounds the size of the feature matrix held
	// in memory at once.
	blockSize = 4096

	// CLI defaults
	defaultOrder    = 3
	defaultScale    = 1.0
	minRequiredArgs = 2
	stdoutPath      = "-"

	// Channel selection
	mixChannels = -1 // Average all channels

	// Progress reporting
	progressInterval = 10 // Print progress every N%
	percentScale     = 100
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(argv []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("bspline-features", flag.ContinueOnError)
	opts := defaultOptions()
	fs.IntVar(&opts.Order, "order", opts.Order, "Wavelet order (1-5)")
	fs.StringVar(&opts.InputFormat, "input-format", opts.InputFormat, "Input format: auto, wav, csv")
	fs.IntVar(&opts.Channel, "channel", opts.Channel, "WAV channel to use (-1 averages all channels)")
	fs.BoolVar(&opts.Normalize, "normalize", opts.Normalize, "Min-max scale samples into [0, scale]")
	fs.Float64Var(&opts.Scale, "scale", opts.Scale, "Upper bound of the normalised range")
	fs.BoolVar(&opts.Parallel, "parallel", opts.Parallel, "Decompose blocks with several goroutines")
	fs.IntVar(&opts.Workers, "workers", opts.Workers, "Goroutine cap for -parallel (0 = GOMAXPROCS)")
	configPath := fs.String("config", "", "YAML job file; explicitly set flags take precedence")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(argv); err != nil {
		return err
	}

	args := fs.Args()
	if len(args) < minRequiredArgs {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: bspline-features [options] input.{wav,csv} output.csv\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  bspline-features -order 3 tone.wav tone.csv       # 30 features per sample\n")
		fmt.Fprintf(out, "  bspline-features -channel -1 stereo.wav mono.csv  # Average channels\n")
		fmt.Fprintf(out, "  bspline-features -config job.yaml in.csv -        # Write to stdout\n")
		return fmt.Errorf("insufficient arguments")
	}

	if *configPath != "" {
		job, err := loadJobConfig(*configPath)
		if err != nil {
			return err
		}
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		job.apply(&opts, set)
	}

	if err := opts.validate(); err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := args[1]

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Order: %d", opts.Order)
		if opts.Normalize {
			log.Printf("Normalize: [0, %g]", opts.Scale)
		} else {
			log.Printf("Normalize: disabled")
		}
		if opts.Parallel {
			log.Printf("Parallel: enabled")
		} else {
			log.Printf("Parallel: disabled (sequential processing)")
		}
	}

	start := time.Now()
	stats, err := extractFeatures(inputPath, outputPath, stdout, opts, *verbose)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	// Summary goes to stderr when the features go to stdout
	summary := stdout
	if outputPath == stdoutPath {
		summary = os.Stderr
	}
	fmt.Fprintf(summary, "Decomposed %s -> %s\n", filepath.Base(inputPath), outputPath)
	fmt.Fprintf(summary, "  %d samples x %d features (order %d)\n", stats.samples, stats.features, opts.Order)
	if stats.sampleRate > 0 {
		fmt.Fprintf(summary, "  Source: %d Hz, %d channels, %d-bit\n", stats.sampleRate, stats.channels, stats.bitDepth)
	}
	fmt.Fprintf(summary, "  Duration: %.2fs\n", elapsed.Seconds())

	return nil
}

type featureStats struct {
	samples    int
	features   int
	sampleRate int
	channels   int
	bitDepth   int
}

// extractFeatures reads, scales, decomposes and writes one input file.
func extractFeatures(inputPath, outputPath string, stdout io.Writer, opts options, verbose bool) (stats *featureStats, err error) {
	// 1. Read samples
	src, err := readSamples(inputPath, opts)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("Read %d samples", len(src.samples))
	}

	// 2. Scale into the decomposition range
	samples := src.samples
	if opts.Normalize {
		samples, err = scaleSamples(samples, opts.Scale)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize samples: %w", err)
		}
	}

	// 3. Create decomposer
	d, err := bspline.New(&bspline.Config{
		Order:          opts.Order,
		EnableSIMD:     true,
		EnableParallel: opts.Parallel,
		Workers:        opts.Workers,
	})
	if err != nil {
		return nil, err
	}

	// 4. Create output writer
	var w io.Writer = stdout
	if outputPath != stdoutPath {
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file: %w", err)
		}
		// Capture close errors on the success path
		defer func() {
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}()
		w = f
	}
	out := newFeatureWriter(w)
	if err := out.WriteHeader(d.ColumnLabels()); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	// 5. Decompose and write block by block
	progress := newProgressTracker(len(samples), verbose)
	for start := 0; start < len(samples); start += blockSize {
		end := min(start+blockSize, len(samples))
		m, err := d.Transform(samples[start:end])
		if err != nil {
			return nil, offsetError(err, start)
		}
		if err := out.WriteMatrix(m); err != nil {
			return nil, fmt.Errorf("failed to write features: %w", err)
		}
		progress.reportIfNeeded(end)
	}
	if err := out.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write features: %w", err)
	}

	return &featureStats{
		samples:    len(samples),
		features:   d.FeatureLength(),
		sampleRate: src.sampleRate,
		channels:   src.channels,
		bitDepth:   src.bitDepth,
	}, nil
}
