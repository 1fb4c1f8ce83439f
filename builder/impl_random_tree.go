// SPDX-License-Identifier: MIT
// Package: rivernet/builder
//
// impl_random_tree.go — RandomTree(n).
//
// Node k of the basin (k ≥ 1) drains to a node drawn uniformly from the k
// nodes appended before it, so confluences appear with roughly the frequency
// of a random recursive tree. Deterministic for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rivernet/network"
)

const (
	methodRandomTree = "RandomTree"
	minRandomTree    = 1
)

// RandomTree returns a Constructor that appends a random tree of n nodes
// whose outlet is its first node. Requires cfg.rng.
func RandomTree(n int) Constructor {
	return func(a *Assembly, cfg builderConfig) error {
		if n < minRandomTree {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minRandomTree, ErrTooFewNodes)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}
		base := a.add(network.None)
		for k := 1; k < n; k++ {
			a.add(base + cfg.rng.Intn(k))
		}
		return nil
	}
}
