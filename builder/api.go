// SPDX-License-Identifier: MIT
// Package: rivernet/builder
//
// api.go — the Build orchestrator and the assembly under construction.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rivernet/network"
)

// Constructor appends nodes and successor links to an Assembly.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(a *Assembly, cfg builderConfig) error

// Assembly is the successor array being built. Constructors only append.
type Assembly struct {
	next []int
}

// add appends one node flowing into `to` (network.None for an outlet) and
// returns its index.
func (a *Assembly) add(to int) int {
	a.next = append(a.next, to)
	return len(a.next) - 1
}

// Len returns the number of nodes assembled so far.
func (a *Assembly) Len() int { return len(a.next) }

// Build resolves options, applies constructors in order and validates the
// result with network.New. Constructor errors are wrapped as "Build: %w".
//
// Complexity: O(N) plus the cost of each constructor.
func Build(bopts []BuilderOption, cons ...Constructor) (*network.Network, error) {
	cfg := newBuilderConfig(bopts...)
	a := &Assembly{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(a, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	net, err := network.New(a.next, network.WithCellSize(cfg.cellSize))
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %v", ErrConstructFailed, err)
	}

	return net, nil
}
