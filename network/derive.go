// SPDX-License-Identifier: MIT
// Package: rivernet/network
//
// derive.go — networks derived from an existing one.

package network

import "fmt"

// Detach returns a copy of n in which every listed node loses its successor
// link and becomes an outlet. Node indices are unchanged; duplicates in nodes
// are harmless. Positions, cell size and grid are shared with n.
//
// Errors:
//   - ErrNodeIndex if any listed node is outside 0..N-1.
//
// Complexity: O(N + len(nodes)).
func (n *Network) Detach(nodes []int) (*Network, error) {
	size := len(n.next)
	next := make([]int, size)
	copy(next, n.next)
	for _, k := range nodes {
		if k < 0 || k >= size {
			return nil, fmt.Errorf("%w: detach %d with %d nodes", ErrNodeIndex, k, size)
		}
		next[k] = None
	}
	prev, err := predecessors(next)
	if err != nil {
		return nil, err
	}

	return &Network{
		next:     next,
		prev:     prev,
		xs:       n.xs,
		ys:       n.ys,
		cellSize: n.cellSize,
		grid:     n.grid,
		hasGrid:  n.hasGrid,
	}, nil
}

// Subnetwork returns the network induced by nodes, re-indexed so that local
// node k corresponds to nodes[k]. Links leaving the subset are dropped, which
// turns their sources into outlets. Positions, cell size and grid carry over.
//
// Errors:
//   - ErrNodeIndex if a node is out of range or listed twice.
//
// Complexity: O(N).
func (n *Network) Subnetwork(nodes []int) (*Network, error) {
	size := len(n.next)
	local := make([]int, size)
	for i := range local {
		local[i] = None
	}
	for k, g := range nodes {
		if g < 0 || g >= size {
			return nil, fmt.Errorf("%w: subnetwork node %d with %d nodes", ErrNodeIndex, g, size)
		}
		if local[g] != None {
			return nil, fmt.Errorf("%w: subnetwork node %d listed twice", ErrNodeIndex, g)
		}
		local[g] = k
	}

	next := make([]int, len(nodes))
	for k, g := range nodes {
		next[k] = None
		if j := n.next[g]; j != None {
			next[k] = local[j]
		}
	}

	var xs, ys []float64
	if n.xs != nil {
		xs = make([]float64, len(nodes))
		ys = make([]float64, len(nodes))
		for k, g := range nodes {
			xs[k], ys[k] = n.xs[g], n.ys[g]
		}
	}

	prev, err := predecessors(next)
	if err != nil {
		return nil, err
	}

	return &Network{
		next:     next,
		prev:     prev,
		xs:       xs,
		ys:       ys,
		cellSize: n.cellSize,
		grid:     n.grid,
		hasGrid:  n.hasGrid,
	}, nil
}
