// Package config loads aggregation settings and input data from YAML files.
//
// A settings file mirrors the aggregate options:
//
//	method: fixed-length-segments   # or between-confluences, drainage-basins, explicit-locations
//	segment_length: 300             # map units; omitted = ten cells
//	locations: [12, 48]             # explicit-locations only
//	aggregation: mean               # reduce.ByName: mean, median, min, max, std, p90, nanmean, ...
//	split: true
//	workers: 4
//	on_basin_error: fail-fast       # or mark-missing
//
// Network and value files are described in data.go.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rivernet/aggregate"
	"github.com/katalvlaran/rivernet/dispatch"
	"github.com/katalvlaran/rivernet/reduce"
	"github.com/katalvlaran/rivernet/segment"
)

// ErrConfig wraps every failure to read, parse or interpret a file.
var ErrConfig = errors.New("config: invalid configuration")

// Config holds aggregation settings.
type Config struct {
	Method        string  `yaml:"method,omitempty"`
	Split         bool    `yaml:"split,omitempty"`
	Locations     []int   `yaml:"locations,omitempty"`
	SegmentLength float64 `yaml:"segment_length,omitempty"`
	Aggregation   string  `yaml:"aggregation,omitempty"`
	Workers       int     `yaml:"workers,omitempty"`
	OnBasinError  string  `yaml:"on_basin_error,omitempty"`
}

// Load reads and parses a settings file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrConfig, path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes settings from YAML. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := decodeStrict(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options converts the settings into aggregate options. Zero-valued fields
// keep the aggregate defaults.
//
// Errors:
//   - ErrConfig wrapping segment.ErrInvalidPolicy or reduce.ErrUnknownReducer
//     for unknown names, or naming a bad on_basin_error value.
func (c *Config) Options() ([]aggregate.Option, error) {
	method, err := segment.ParsePolicy(c.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: method: %w", ErrConfig, err)
	}
	opts := []aggregate.Option{
		aggregate.WithMethod(method),
		aggregate.WithSplit(c.Split),
	}
	if len(c.Locations) > 0 {
		opts = append(opts, aggregate.WithLocations(c.Locations...))
	}
	if c.SegmentLength != 0 {
		opts = append(opts, aggregate.WithSegmentLength(c.SegmentLength))
	}
	if c.Aggregation != "" {
		f, err := reduce.ByName(c.Aggregation)
		if err != nil {
			return nil, fmt.Errorf("%w: aggregation: %w", ErrConfig, err)
		}
		opts = append(opts, aggregate.WithReducer(f))
	}
	if c.Workers != 0 {
		opts = append(opts, aggregate.WithWorkers(c.Workers))
	}
	if c.OnBasinError != "" {
		p, err := parseErrorPolicy(c.OnBasinError)
		if err != nil {
			return nil, err
		}
		opts = append(opts, aggregate.WithErrorPolicy(p))
	}
	return opts, nil
}

func parseErrorPolicy(name string) (dispatch.ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case dispatch.FailFast.String():
		return dispatch.FailFast, nil
	case dispatch.MarkMissing.String():
		return dispatch.MarkMissing, nil
	}
	return 0, fmt.Errorf("%w: on_basin_error %q (want %s or %s)",
		ErrConfig, name, dispatch.FailFast, dispatch.MarkMissing)
}

// decodeStrict unmarshals one YAML document into v, rejecting unknown keys.
// An empty document leaves v untouched.
func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: parsing: %v", ErrConfig, err)
	}
	return nil
}
