// SPDX-License-Identifier: MIT
// Package: rivernet/network
//
// topology.go — structural queries over the forest.

package network

// Outlets returns the nodes without a successor, ascending.
// Complexity: O(N).
func (n *Network) Outlets() []int {
	var out []int
	for i, j := range n.next {
		if j == None {
			out = append(out, i)
		}
	}
	return out
}

// Heads returns the nodes without predecessors, ascending.
// Complexity: O(N).
func (n *Network) Heads() []int {
	var out []int
	for i := range n.prev {
		if len(n.prev[i]) == 0 {
			out = append(out, i)
		}
	}
	return out
}

// Confluences returns the nodes with two or more predecessors, ascending.
// Complexity: O(N).
func (n *Network) Confluences() []int {
	var out []int
	for i := range n.prev {
		if len(n.prev[i]) >= 2 {
			out = append(out, i)
		}
	}
	return out
}

// TopoOrder returns all nodes ordered so that every node precedes its
// successor (heads first, outlets last). Ties are broken by ascending index.
// Complexity: O(N).
func (n *Network) TopoOrder() []int {
	size := len(n.next)
	pending := make([]int, size)
	order := make([]int, 0, size)
	for i := range n.prev {
		pending[i] = len(n.prev[i])
		if pending[i] == 0 {
			order = append(order, i)
		}
	}
	// order doubles as the FIFO queue
	for qi := 0; qi < len(order); qi++ {
		j := n.next[order[qi]]
		if j == None {
			continue
		}
		pending[j]--
		if pending[j] == 0 {
			order = append(order, j)
		}
	}

	return order
}

// FlowDistance returns, for every node, the flow distance along successor
// links to its outlet (0 at outlets).
// Complexity: O(N).
func (n *Network) FlowDistance() []float64 {
	order := n.TopoOrder()
	dist := make([]float64, len(n.next))
	// walk downstream-to-upstream so the successor is always resolved first
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		if j := n.next[i]; j != None {
			dist[i] = dist[j] + n.LinkLength(i)
		}
	}

	return dist
}

// Reaches partitions the nodes into maximal unbranched chains. A reach ends
// downstream at an outlet or at the last node before a confluence, and ends
// upstream at a channel head or at a confluence (which belongs to the reach
// it feeds). Each reach is listed downstream-to-upstream; reaches are ordered
// by their downstream node.
// Complexity: O(N).
func (n *Network) Reaches() [][]int {
	var reaches [][]int
	for b, j := range n.next {
		if j != None && len(n.prev[j]) < 2 {
			continue
		}
		reach := []int{b}
		for u := b; len(n.prev[u]) == 1; {
			u = n.prev[u][0]
			reach = append(reach, u)
		}
		reaches = append(reaches, reach)
	}

	return reaches
}
