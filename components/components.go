// Package components labels the weakly connected components of a river
// network: two nodes share a label iff they are joined by a chain of
// successor/predecessor links.
//
// Labels are numbered 1..K in discovery order, scanning seeds by ascending
// node index and expanding each component breadth-first. Numbering is
// therefore deterministic for a fixed network, but a label value carries no
// meaning beyond equality.
//
// Complexity:
//
//   - Label:  O(N + E) time, O(N) memory.
//   - Groups: O(N).
//   - Sizes:  O(N).
package components

import "github.com/katalvlaran/rivernet/network"

// Labels is the result of Label.
type Labels struct {
	// IDs[i] is the component of node i, in 1..K.
	IDs []int

	// K is the number of components.
	K int
}

// Label computes the weakly connected components of net.
// A nil network yields empty labels.
func Label(net *network.Network) Labels {
	if net == nil {
		return Labels{}
	}
	n := net.Len()
	ids := make([]int, n)
	queue := make([]int, 0, n)
	k := 0

	for s := 0; s < n; s++ {
		if ids[s] != 0 {
			continue
		}
		k++
		ids[s] = k
		queue = append(queue[:0], s)

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			if v := net.Next(u); v != network.None && ids[v] == 0 {
				ids[v] = k
				queue = append(queue, v)
			}
			for _, v := range net.Prev(u) {
				if ids[v] == 0 {
					ids[v] = k
					queue = append(queue, v)
				}
			}
		}
	}

	return Labels{IDs: ids, K: k}
}

// Groups returns the members of each component: Groups()[l-1] lists the
// nodes labelled l in ascending order.
func (l Labels) Groups() [][]int {
	sizes := l.Sizes()
	groups := make([][]int, l.K)
	for g := range groups {
		groups[g] = make([]int, 0, sizes[g])
	}
	for i, id := range l.IDs {
		groups[id-1] = append(groups[id-1], i)
	}
	return groups
}

// Sizes returns the member count of each component, indexed by label-1.
func (l Labels) Sizes() []int {
	sizes := make([]int, l.K)
	for _, id := range l.IDs {
		sizes[id-1]++
	}
	return sizes
}

// Same reports whether nodes u and v share a component.
func (l Labels) Same(u, v int) bool { return l.IDs[u] == l.IDs[v] }
