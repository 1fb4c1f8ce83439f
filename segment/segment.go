// SPDX-License-Identifier: MIT
// Package: rivernet/segment
//
// segment.go — Segment and the per-policy cut placement.

package segment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rivernet/network"
)

// Segment cuts net according to policy.
//
// Errors:
//   - ErrInvalidPolicy if policy is not one of the defined constants.
//   - ErrInvalidParameter for a bad WithLength (reported for every policy, a
//     malformed option is never silently dropped) or a nil network.
//   - ErrInvalidParameter for ExplicitLocations without any location.
//   - ErrInvalidLocation for ExplicitLocations with a node outside 0..N-1.
//
// Complexity: O(N + len(locations)).
func Segment(net *network.Network, policy Policy, opts ...Option) (*Cut, error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPolicy, string(policy))
	}
	if net == nil {
		return nil, fmt.Errorf("%w: network is nil", ErrInvalidParameter)
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var detach []int
	switch policy {
	case DrainageBasins:
		return &Cut{Network: net, Origin: identity(net.Len()), Policy: policy}, nil
	case BetweenConfluences:
		detach = confluenceCuts(net)
	case FixedLength:
		L := o.Length
		if L == 0 {
			L = DefaultLengthCells * net.CellSize()
		}
		detach = lengthCuts(net, L)
	case ExplicitLocations:
		if len(o.Locations) == 0 {
			return nil, fmt.Errorf("%w: %s requires at least one location", ErrInvalidParameter, policy)
		}
		for _, k := range o.Locations {
			if k < 0 || k >= net.Len() {
				return nil, fmt.Errorf("%w: node %d with %d nodes", ErrInvalidLocation, k, net.Len())
			}
		}
		detach = o.Locations
	}

	cut, err := net.Detach(detach)
	if err != nil {
		return nil, fmt.Errorf("segment: %s: %w", policy, err)
	}

	return &Cut{Network: cut, Origin: identity(net.Len()), Policy: policy}, nil
}

// confluenceCuts returns every node that drains into a confluence.
func confluenceCuts(net *network.Network) []int {
	var out []int
	for i := 0; i < net.Len(); i++ {
		if j := net.Next(i); j != network.None && net.IsConfluence(j) {
			out = append(out, i)
		}
	}
	return out
}

// lengthCuts returns the confluence cuts plus, inside each reach, every node
// whose piece index differs from its successor's.
func lengthCuts(net *network.Network, L float64) []int {
	out := confluenceCuts(net)
	for _, reach := range net.Reaches() {
		// reach[0] is the downstream end, at distance 0
		d := 0.0
		piece := 0
		for k := 1; k < len(reach); k++ {
			u := reach[k]
			d += net.LinkLength(u)
			p := int(math.Floor(d/L + lengthEps))
			if p != piece {
				out = append(out, u)
				piece = p
			}
		}
	}
	return out
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
