// SPDX-License-Identifier: MIT
// Package: rivernet/dispatch
//
// types.go — tasks, options and sentinel errors.

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/rivernet/network"
)

var (
	// ErrNilTask is returned when Run receives a nil Task.
	ErrNilTask = errors.New("dispatch: task is nil")

	// ErrValuesLength indicates an input array whose length is not the node count.
	ErrValuesLength = errors.New("dispatch: values length does not match network")

	// ErrTaskPanic indicates that a task panicked; it is handled like any task error.
	ErrTaskPanic = errors.New("dispatch: task panicked")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dispatch: invalid option supplied")
)

// Basin is one drainage basin re-indexed as a standalone network.
type Basin struct {
	// Index is the basin's position in the slice returned by Basins.
	Index int

	// Network is the basin sub-network; node k is Origin[k] in the whole network.
	Network *network.Network

	// Origin maps basin node indices to whole-network indices (ascending).
	Origin []int
}

// Task computes one value per basin node from the basin's input values
// (values[k] belongs to basin node k). It must return len(values) results.
type Task func(ctx context.Context, b Basin, values []float64) ([]float64, error)

// ErrorPolicy decides what a failing basin does to the whole run.
type ErrorPolicy int

const (
	// FailFast aborts the run on the first basin error.
	FailFast ErrorPolicy = iota

	// MarkMissing fills a failing basin with NaN and continues.
	MarkMissing
)

// String implements fmt.Stringer.
func (p ErrorPolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case MarkMissing:
		return "mark-missing"
	}
	return fmt.Sprintf("ErrorPolicy(%d)", int(p))
}

// Option configures Run.
type Option func(*Options)

// Options holds the resolved Run configuration.
type Options struct {
	// Workers bounds the number of basins processed at once.
	Workers int

	// OnError selects the failure policy.
	OnError ErrorPolicy

	// Logger receives per-run and per-failure records.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns GOMAXPROCS workers, FailFast and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		OnError: FailFast,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers bounds concurrency; n must be >= 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithErrorPolicy selects FailFast or MarkMissing.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(o *Options) {
		if p != FailFast && p != MarkMissing {
			o.err = fmt.Errorf("%w: unknown error policy %d", ErrOptionViolation, int(p))
			return
		}
		o.OnError = p
	}
}

// WithLogger installs a logger; nil keeps the current one.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
