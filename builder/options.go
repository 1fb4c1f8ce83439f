// SPDX-License-Identifier: MIT
// Package: rivernet/builder
//
// options.go — functional options and the resolved builder configuration.
//
// Option constructors validate and panic on meaningless inputs;
// constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	cellSize float64
	rng      *rand.Rand
}

const defaultCellSize = 1.0

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{cellSize: defaultCellSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCellSize sets the cell spacing of the built network. Panics if cs <= 0.
func WithCellSize(cs float64) BuilderOption {
	if !(cs > 0) {
		panic("builder: WithCellSize(cs<=0)")
	}
	return func(c *builderConfig) { c.cellSize = cs }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new seeded RNG; use it in tests to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
