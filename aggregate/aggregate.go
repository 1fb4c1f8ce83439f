// SPDX-License-Identifier: MIT
// Package: rivernet/aggregate
//
// aggregate.go — Aggregate, Segments and the per-network pipeline.

package aggregate

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/rivernet/attribute"
	"github.com/katalvlaran/rivernet/components"
	"github.com/katalvlaran/rivernet/dispatch"
	"github.com/katalvlaran/rivernet/network"
	"github.com/katalvlaran/rivernet/reduce"
	"github.com/katalvlaran/rivernet/remap"
	"github.com/katalvlaran/rivernet/segment"
)

// Aggregate binds src to net, segments the network and returns one value per
// node: the reduction of the node's group. Groups with no contributing values
// yield NaN.
//
// The input network and source are never modified. On error no output is
// returned.
//
// Complexity: O(N + Σ reducer cost), with split mode spreading basins over
// the configured workers.
func Aggregate(ctx context.Context, net *network.Network, src attribute.Source, opts ...Option) ([]float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if net == nil {
		return nil, fmt.Errorf("%w: network is nil", ErrInvalidParameter)
	}
	if err = checkLocations(net, o); err != nil {
		return nil, err
	}
	values, err := attribute.Bind(net, src)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if !o.Split {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		return aggregateNetwork(net, values, o, o.Locations)
	}

	task := func(ctx context.Context, b dispatch.Basin, local []float64) ([]float64, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return aggregateNetwork(b.Network, local, o, localLocations(b, o))
	}
	return dispatch.Run(ctx, net, values, task,
		dispatch.WithWorkers(o.Workers),
		dispatch.WithErrorPolicy(o.OnError),
		dispatch.WithLogger(o.Logger),
	)
}

// Segments returns the grouping Aggregate would use, indexed by original
// node. WithSplit, WithReducer and the worker options do not affect it.
func Segments(net *network.Network, opts ...Option) (components.Labels, error) {
	o, err := resolve(opts)
	if err != nil {
		return components.Labels{}, err
	}
	if net == nil {
		return components.Labels{}, fmt.Errorf("%w: network is nil", ErrInvalidParameter)
	}
	if err = checkLocations(net, o); err != nil {
		return components.Labels{}, err
	}

	cut, err := segment.Segment(net, o.Method, o.segmentOptions(o.Locations)...)
	if err != nil {
		return components.Labels{}, err
	}
	labels := components.Label(cut.Network)
	ids, err := remap.ToOriginal(labels.IDs, cut.Origin, net.Len())
	if err != nil {
		return components.Labels{}, err
	}
	return components.Labels{IDs: ids, K: labels.K}, nil
}

// aggregateNetwork runs the serial pipeline on one network whose values are
// already bound.
func aggregateNetwork(net *network.Network, values []float64, o Options, locations []int) ([]float64, error) {
	method := o.Method
	if method == segment.ExplicitLocations && len(locations) == 0 {
		// a basin holding none of the locations stays whole
		method = segment.DrainageBasins
	}
	cut, err := segment.Segment(net, method, o.segmentOptions(locations)...)
	if err != nil {
		return nil, err
	}

	labels := components.Label(cut.Network)
	cutValues := make([]float64, len(cut.Origin))
	for i, g := range cut.Origin {
		cutValues[i] = values[g]
	}

	res, err := reduce.ByLabel(cutValues, labels, o.Reducer)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %s: %w", o.Method, err)
	}
	o.Logger.Debug("aggregate: reduced", "method", o.Method.String(), "nodes", net.Len(), "groups", labels.K)

	return remap.ToOriginal(res.Values, cut.Origin, net.Len())
}

// checkLocations validates explicit locations against the whole network so
// that a bad location fails before any work is dispatched. Locations given
// with another method are ignored with a warning.
func checkLocations(net *network.Network, o Options) error {
	if o.Method != segment.ExplicitLocations {
		if len(o.Locations) > 0 {
			o.Logger.Warn("aggregate: locations ignored", "method", o.Method.String(), "locations", len(o.Locations))
		}
		return nil
	}
	if len(o.Locations) == 0 {
		return fmt.Errorf("%w: %s requires at least one location", ErrInvalidParameter, o.Method)
	}
	for _, k := range o.Locations {
		if k < 0 || k >= net.Len() {
			return fmt.Errorf("%w: node %d with %d nodes", ErrInvalidLocation, k, net.Len())
		}
	}
	return nil
}

// localLocations translates the global locations that fall inside basin b to
// basin-local indices. b.Origin is ascending.
func localLocations(b dispatch.Basin, o Options) []int {
	if o.Method != segment.ExplicitLocations {
		return nil
	}
	var out []int
	for _, g := range o.Locations {
		k := sort.SearchInts(b.Origin, g)
		if k < len(b.Origin) && b.Origin[k] == g {
			out = append(out, k)
		}
	}
	return out
}
