// SPDX-License-Identifier: MIT
// Package: rivernet/network
//
// network.go — construction and O(1) accessors.

package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rivernet/raster"
)

// New builds a Network from a successor array: next[i] is the downstream
// neighbour of node i, or None for an outlet. The slice is copied.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ErrNodeIndex if any successor is out of range or points at itself.
//   - ErrPositions if positions are attached with the wrong length.
//   - ErrCycle if successor links form a cycle.
//
// Complexity: O(N) time and memory.
func New(next []int, opts ...Option) (*Network, error) {
	o := options{cellSize: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.cellSizeSet && o.hasGrid {
		o.cellSize = o.grid.CellSize
	}

	n := len(next)
	if o.xs != nil || o.ys != nil {
		if len(o.xs) != n || len(o.ys) != n {
			return nil, fmt.Errorf("%w: %d x, %d y for %d nodes", ErrPositions, len(o.xs), len(o.ys), n)
		}
	}

	nx := make([]int, n)
	copy(nx, next)

	prev, err := predecessors(nx)
	if err != nil {
		return nil, err
	}
	if err = checkAcyclic(nx); err != nil {
		return nil, err
	}

	return &Network{
		next:     nx,
		prev:     prev,
		xs:       o.xs,
		ys:       o.ys,
		cellSize: o.cellSize,
		grid:     o.grid,
		hasGrid:  o.hasGrid,
	}, nil
}

// predecessors validates successor indices and inverts them.
// Because i ascends, every predecessor list is sorted.
func predecessors(next []int) ([][]int, error) {
	n := len(next)
	counts := make([]int, n)
	for i, j := range next {
		if j == None {
			continue
		}
		if j < 0 || j >= n || j == i {
			return nil, fmt.Errorf("%w: next[%d] = %d with %d nodes", ErrNodeIndex, i, j, n)
		}
		counts[j]++
	}

	// one backing array for all lists
	flat := make([]int, 0, n)
	prev := make([][]int, n)
	off := 0
	for i, c := range counts {
		prev[i] = flat[off : off : off+c]
		off += c
	}
	for i, j := range next {
		if j != None {
			prev[j] = append(prev[j], i)
		}
	}

	return prev, nil
}

// checkAcyclic colours successor chains; out-degree is at most one, so a
// chain that re-enters a gray node is a cycle.
func checkAcyclic(next []int) error {
	state := make([]uint8, len(next))
	chain := make([]int, 0, 16)
	for s := range next {
		if state[s] != white {
			continue
		}
		chain = chain[:0]
		u := s
		for u != None && state[u] == white {
			state[u] = gray
			chain = append(chain, u)
			u = next[u]
		}
		if u != None && state[u] == gray {
			return fmt.Errorf("%w: through node %d", ErrCycle, u)
		}
		for _, v := range chain {
			state[v] = black
		}
	}

	return nil
}

// Len returns the number of nodes.
func (n *Network) Len() int { return len(n.next) }

// Next returns the successor of node i, or None for an outlet.
func (n *Network) Next(i int) int { return n.next[i] }

// Prev returns the predecessors of node i in ascending order.
// The returned slice is shared and must not be modified.
func (n *Network) Prev(i int) []int { return n.prev[i] }

// IsOutlet reports whether node i has no successor.
func (n *Network) IsOutlet(i int) bool { return n.next[i] == None }

// IsHead reports whether node i has no predecessors (a channel head).
func (n *Network) IsHead(i int) bool { return len(n.prev[i]) == 0 }

// IsConfluence reports whether node i has two or more predecessors.
func (n *Network) IsConfluence(i int) bool { return len(n.prev[i]) >= 2 }

// CellSize returns the cell spacing.
func (n *Network) CellSize() float64 { return n.cellSize }

// Grid returns the raster embedding, if any.
func (n *Network) Grid() (raster.Reference, bool) { return n.grid, n.hasGrid }

// HasPositions reports whether planar positions are attached.
func (n *Network) HasPositions() bool { return n.xs != nil }

// Position returns the planar position of node i; ok is false when the
// network carries no positions.
func (n *Network) Position(i int) (x, y float64, ok bool) {
	if n.xs == nil {
		return math.NaN(), math.NaN(), false
	}
	return n.xs[i], n.ys[i], true
}

// NumLinks returns the number of successor links.
// Complexity: O(N).
func (n *Network) NumLinks() int {
	links := 0
	for _, j := range n.next {
		if j != None {
			links++
		}
	}
	return links
}

// LinkLength returns the flow distance from node i to its successor:
// the Euclidean distance between positions when attached, otherwise the
// cell size. Outlets have length 0.
// Complexity: O(1).
func (n *Network) LinkLength(i int) float64 {
	j := n.next[i]
	if j == None {
		return 0
	}
	if n.xs == nil {
		return n.cellSize
	}
	return math.Hypot(n.xs[j]-n.xs[i], n.ys[j]-n.ys[i])
}
