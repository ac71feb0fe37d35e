package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	bspline "github.com/tphakala/go-bspline-wavelets"
)

// options holds the effective settings of one run.
type options struct {
	Order       int
	InputFormat string
	Channel     int
	Normalize   bool
	Scale       float64
	Parallel    bool
	Workers     int
}

func defaultOptions() options {
	return options{
		Order:       defaultOrder,
		InputFormat: formatAuto,
		Channel:     0,
		Normalize:   true,
		Scale:       defaultScale,
		Parallel:    true,
	}
}

// validate checks settings that the library does not see.
func (o *options) validate() error {
	if err := (&bspline.Config{Order: o.Order, Workers: o.Workers}).Validate(); err != nil {
		return err
	}
	if o.Normalize && !(o.Scale > 0) {
		return fmt.Errorf("%w: scale must be > 0, got %v", bspline.ErrInvalidConfig, o.Scale)
	}
	if o.Channel < mixChannels {
		return fmt.Errorf("%w: channel must be >= %d, got %d", bspline.ErrInvalidConfig, mixChannels, o.Channel)
	}
	return nil
}

// jobConfig is the YAML job file. Absent keys leave the flag value alone.
//
//	order: 4
//	input_format: wav
//	channel: -1
//	normalize: true
//	scale: 1.0
//	parallel: true
//	workers: 4
type jobConfig struct {
	Order       *int     `yaml:"order"`
	InputFormat *string  `yaml:"input_format"`
	Channel     *int     `yaml:"channel"`
	Normalize   *bool    `yaml:"normalize"`
	Scale       *float64 `yaml:"scale"`
	Parallel    *bool    `yaml:"parallel"`
	Workers     *int     `yaml:"workers"`
}

// loadJobConfig reads and parses a YAML job file.
func loadJobConfig(path string) (*jobConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var job jobConfig
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &job, nil
}

// apply copies the file's values into opts, except for flags named in set,
// which were given explicitly on the command line.
func (j *jobConfig) apply(opts *options, set map[string]bool) {
	if j.Order != nil && !set["order"] {
		opts.Order = *j.Order
	}
	if j.InputFormat != nil && !set["input-format"] {
		opts.InputFormat = *j.InputFormat
	}
	if j.Channel != nil && !set["channel"] {
		opts.Channel = *j.Channel
	}
	if j.Normalize != nil && !set["normalize"] {
		opts.Normalize = *j.Normalize
	}
	if j.Scale != nil && !set["scale"] {
		opts.Scale = *j.Scale
	}
	if j.Parallel != nil && !set["parallel"] {
		opts.Parallel = *j.Parallel
	}
	if j.Workers != nil && !set["workers"] {
		opts.Workers = *j.Workers
	}
}
