// SPDX-License-Identifier: MIT
// Package: rivernet/builder
//
// impl_reach.go — Reach(n) and Junction(arms, down).
//
// Index layout (deterministic):
//   - Reach: nodes are appended outlet first, then upstream one by one, so
//     the outlet has the lowest index of the basin and node k drains to k-1.
//   - Junction: the downstream reach is appended first (outlet → confluence),
//     then each arm in order, nearest-to-confluence node first.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rivernet/network"
)

const (
	methodReach    = "Reach"
	methodJunction = "Junction"
	minReachNodes  = 1
	minJunctionArm = 2
)

// Reach returns a Constructor that appends an unbranched chain of n nodes.
func Reach(n int) Constructor {
	return func(a *Assembly, _ builderConfig) error {
		if n < minReachNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodReach, n, minReachNodes, ErrTooFewNodes)
		}
		appendChain(a, network.None, n)
		return nil
	}
}

// Junction returns a Constructor that appends a downstream reach of `down`
// nodes whose most upstream node is a confluence fed by one tributary per
// entry of arms (arms[k] nodes each).
func Junction(arms []int, down int) Constructor {
	return func(a *Assembly, _ builderConfig) error {
		if len(arms) < minJunctionArm {
			return fmt.Errorf("%s: %d arms < min=%d: %w", methodJunction, len(arms), minJunctionArm, ErrTooFewNodes)
		}
		if down < minReachNodes {
			return fmt.Errorf("%s: down=%d < min=%d: %w", methodJunction, down, minReachNodes, ErrTooFewNodes)
		}
		for k, m := range arms {
			if m < minReachNodes {
				return fmt.Errorf("%s: arm %d has %d nodes: %w", methodJunction, k, m, ErrTooFewNodes)
			}
		}

		confluence := appendChain(a, network.None, down)
		for _, m := range arms {
			appendChain(a, confluence, m)
		}
		return nil
	}
}

// appendChain appends n nodes draining into `to`, nearest first, and returns
// the index of the most upstream one.
func appendChain(a *Assembly, to, n int) int {
	for i := 0; i < n; i++ {
		to = a.add(to)
	}
	return to
}
