// SPDX-License-Identifier: MIT
// Package: rivernet/dispatch
//
// dispatch.go — basin decomposition and the errgroup fan-out/fan-in.

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rivernet/components"
	"github.com/katalvlaran/rivernet/network"
	"github.com/katalvlaran/rivernet/remap"
)

// Basins splits net into its weakly connected components, ordered by their
// lowest node index.
// Complexity: O(N).
func Basins(net *network.Network) ([]Basin, error) {
	groups := components.Label(net).Groups()
	basins := make([]Basin, len(groups))
	for k, members := range groups {
		sub, err := net.Subnetwork(members)
		if err != nil {
			return nil, fmt.Errorf("dispatch: basin %d: %w", k, err)
		}
		basins[k] = Basin{Index: k, Network: sub, Origin: members}
	}
	return basins, nil
}

// Run executes task on every basin of net and merges the per-basin results
// into one array indexed like values.
//
// Errors:
//   - ErrNilTask, ErrValuesLength, ErrOptionViolation for bad arguments.
//   - The first task error (wrapped with the basin index) under FailFast.
//   - ctx.Err() if the context is cancelled before all basins finish.
//   - remap.ErrRemapConsistency if a task returns the wrong number of values.
//
// On error no output is returned.
//
// Complexity: O(N) plus the task cost, spread over Workers goroutines.
func Run(ctx context.Context, net *network.Network, values []float64, task Task, opts ...Option) ([]float64, error) {
	if task == nil {
		return nil, ErrNilTask
	}
	if net == nil || len(values) != net.Len() {
		n := 0
		if net != nil {
			n = net.Len()
		}
		return nil, fmt.Errorf("%w: %d values for %d nodes", ErrValuesLength, len(values), n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	basins, err := Basins(net)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("dispatch: start", "basins", len(basins), "nodes", net.Len(),
		"workers", o.Workers, "policy", o.OnError.String())

	out := make([]float64, len(values))
	for i := range out {
		out[i] = math.NaN()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for _, b := range basins {
		b := b
		g.Go(func() error {
			return runBasin(gctx, b, values, out, task, o)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	// a cancelled parent may have stopped tasks that then reported nothing
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	o.Logger.Debug("dispatch: done", "basins", len(basins))
	return out, nil
}

// runBasin gathers the basin's input, runs the task and scatters the result.
// It writes only out[b.Origin[k]].
func runBasin(ctx context.Context, b Basin, values, out []float64, task Task, o Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	local := make([]float64, len(b.Origin))
	for k, g := range b.Origin {
		local[k] = values[g]
	}

	res, err := safeCall(ctx, task, b, local)
	if err != nil {
		if o.OnError == MarkMissing && ctx.Err() == nil && !isContextErr(err) {
			o.Logger.Warn("dispatch: basin failed, marked missing",
				"basin", b.Index, "nodes", len(b.Origin), "error", err)
			return nil
		}
		return fmt.Errorf("dispatch: basin %d: %w", b.Index, err)
	}

	if err = remap.Into(out, res, b.Origin); err != nil {
		return fmt.Errorf("dispatch: basin %d: %w", b.Index, err)
	}
	return nil
}

// safeCall converts a task panic into ErrTaskPanic.
func safeCall(ctx context.Context, task Task, b Basin, local []float64) (res []float64, err error) {
	defer func() {
		if e := recover(); e != nil {
			res, err = nil, fmt.Errorf("%w: %v", ErrTaskPanic, e)
		}
	}()
	return task(ctx, b, local)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
