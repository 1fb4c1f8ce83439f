// SPDX-License-Identifier: MIT
// Package: rivernet/aggregate
//
// options.go — functional options and re-exported sentinel errors.

package aggregate

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/rivernet/attribute"
	"github.com/katalvlaran/rivernet/dispatch"
	"github.com/katalvlaran/rivernet/reduce"
	"github.com/katalvlaran/rivernet/remap"
	"github.com/katalvlaran/rivernet/segment"
)

// Re-exported sentinels so callers need to import only this package.
var (
	ErrInvalidPolicy     = segment.ErrInvalidPolicy
	ErrIncompatibleInput = attribute.ErrIncompatibleInput
	ErrInvalidParameter  = segment.ErrInvalidParameter
	ErrInvalidLocation   = segment.ErrInvalidLocation
	ErrRemapConsistency  = remap.ErrRemapConsistency
)

// Option configures Aggregate and Segments.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	// Method is the segmentation policy (default segment.FixedLength).
	Method segment.Policy

	// Split runs every drainage basin as an independent task.
	Split bool

	// Locations are the cut nodes for segment.ExplicitLocations, which
	// requires at least one. Other methods ignore them with a warning.
	Locations []int

	// SegmentLength is the fixed segment length; 0 means ten cells.
	SegmentLength float64

	// Reducer reduces each group; nil means reduce.Mean.
	Reducer reduce.Reducer

	// Workers bounds basin concurrency in split mode.
	Workers int

	// OnError is the per-basin failure policy in split mode.
	OnError dispatch.ErrorPolicy

	// Logger receives debug records and split-mode failures.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns the configuration used when no option is given.
func DefaultOptions() Options {
	return Options{
		Method:  segment.DefaultPolicy,
		Reducer: reduce.Mean,
		Workers: runtime.GOMAXPROCS(0),
		OnError: dispatch.FailFast,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// keep records the first option error only.
func (o *Options) keep(err error) {
	if o.err == nil {
		o.err = err
	}
}

// WithMethod selects the segmentation policy.
func WithMethod(p segment.Policy) Option {
	return func(o *Options) {
		if !p.Valid() {
			o.keep(fmt.Errorf("%w: %q", ErrInvalidPolicy, string(p)))
			return
		}
		o.Method = p
	}
}

// WithSplit toggles per-basin parallel processing.
func WithSplit(split bool) Option {
	return func(o *Options) { o.Split = split }
}

// WithLocations appends explicit cut locations.
func WithLocations(nodes ...int) Option {
	return func(o *Options) { o.Locations = append(o.Locations, nodes...) }
}

// WithSegmentLength sets the fixed segment length in map units.
// L must be positive and finite.
func WithSegmentLength(L float64) Option {
	return func(o *Options) {
		if !(L > 0) || math.IsInf(L, 0) {
			o.keep(fmt.Errorf("%w: segment length must be positive and finite (%g)", ErrInvalidParameter, L))
			return
		}
		o.SegmentLength = L
	}
}

// WithReducer sets the group reduction; nil restores reduce.Mean.
func WithReducer(f reduce.Reducer) Option {
	return func(o *Options) {
		if f == nil {
			f = reduce.Mean
		}
		o.Reducer = f
	}
}

// WithWorkers bounds the number of basins processed concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.keep(fmt.Errorf("%w: workers must be >= 1 (%d)", ErrInvalidParameter, n))
			return
		}
		o.Workers = n
	}
}

// WithErrorPolicy sets the split-mode basin failure policy.
func WithErrorPolicy(p dispatch.ErrorPolicy) Option {
	return func(o *Options) {
		if p != dispatch.FailFast && p != dispatch.MarkMissing {
			o.keep(fmt.Errorf("%w: unknown basin error policy %d", ErrInvalidParameter, int(p)))
			return
		}
		o.OnError = p
	}
}

// WithLogger installs a logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.err
}

// segmentOptions translates the aggregation options for segment.Segment.
func (o Options) segmentOptions(locations []int) []segment.Option {
	var out []segment.Option
	if o.SegmentLength > 0 {
		out = append(out, segment.WithLength(o.SegmentLength))
	}
	if o.Method == segment.ExplicitLocations {
		out = append(out, segment.WithLocations(locations...))
	}
	return out
}
