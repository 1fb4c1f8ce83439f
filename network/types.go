// SPDX-License-Identifier: MIT
// Package: rivernet/network
//
// types.go — Network, options and sentinel errors.

package network

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rivernet/raster"
)

// None marks the absence of a successor (the node is an outlet).
const None = -1

// Node visitation states for cycle detection.
const (
	white = iota // not visited
	gray         // on the current successor chain
	black        // chain proven to reach an outlet
)

// Sentinel errors for network construction and derivation.
var (
	// ErrNodeIndex indicates a node or successor index outside 0..N-1,
	// a self-link, or a duplicated index where a set is expected.
	ErrNodeIndex = errors.New("network: node index out of range")

	// ErrCycle indicates that following successor links never reaches an outlet.
	ErrCycle = errors.New("network: successor links form a cycle")

	// ErrPositions indicates position slices of the wrong length.
	ErrPositions = errors.New("network: positions do not match node count")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("network: invalid option supplied")
)

// Option configures a Network at construction time.
// Invalid values are recorded and surfaced by New as ErrOptionViolation.
type Option func(*options)

type options struct {
	xs, ys      []float64
	cellSize    float64
	cellSizeSet bool
	grid        raster.Reference
	hasGrid     bool
	err         error
}

// WithPositions attaches planar node positions. Both slices must have one
// entry per node; they are copied.
func WithPositions(xs, ys []float64) Option {
	return func(o *options) {
		o.xs = append([]float64(nil), xs...)
		o.ys = append([]float64(nil), ys...)
	}
}

// WithCellSize sets the cell spacing (> 0). When omitted the spacing of the
// grid set by WithGrid is used, or 1.
func WithCellSize(cs float64) Option {
	return func(o *options) {
		if cs <= 0 || math.IsNaN(cs) || math.IsInf(cs, 0) {
			o.err = fmt.Errorf("%w: cell size must be positive and finite (%g)", ErrOptionViolation, cs)
			return
		}
		o.cellSize = cs
		o.cellSizeSet = true
	}
}

// WithGrid records the raster the network was derived from. Rasters sampled
// onto the network must be aligned with it.
func WithGrid(ref raster.Reference) Option {
	return func(o *options) {
		if !ref.Valid() {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, raster.ErrEmptyGrid)
			return
		}
		o.grid = ref
		o.hasGrid = true
	}
}

// Network is an immutable river network addressed by node index.
//
// next[i] is the successor of node i or None; prev[i] lists its predecessors
// in ascending index order. xs/ys are nil when no positions were attached.
type Network struct {
	next     []int
	prev     [][]int
	xs, ys   []float64
	cellSize float64
	grid     raster.Reference
	hasGrid  bool
}
