// Package attribute binds per-node input data to a river network: either an
// array that is already node-aligned, or a raster sampled at node positions.
//
// Both inputs implement Source. Bind always returns a fresh slice; the
// caller's array or raster is never aliased.
//
// Errors:
//
//   - ErrIncompatibleInput: nil source or network, array length different
//     from the node count, raster not aligned with the network's grid, or a
//     network without the positions needed to sample.
package attribute

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rivernet/network"
	"github.com/katalvlaran/rivernet/raster"
)

// ErrIncompatibleInput indicates that the input cannot be aligned with the network.
var ErrIncompatibleInput = errors.New("attribute: input incompatible with network")

// Source yields one value per node of a network.
type Source interface {
	NodeValues(net *network.Network) ([]float64, error)
}

// Values is a node attribute array already ordered by node index.
type Values []float64

// NodeValues returns a copy of v after checking its length.
func (v Values) NodeValues(net *network.Network) ([]float64, error) {
	if len(v) != net.Len() {
		return nil, fmt.Errorf("%w: %d values for %d nodes", ErrIncompatibleInput, len(v), net.Len())
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out, nil
}

// Raster samples a grid at node positions. It is a Source only through this
// adapter so the raster package stays independent of networks.
type Raster struct {
	Grid *raster.Grid
}

// NodeValues samples r.Grid at every node after checking alignment with the
// network's grid.
func (r Raster) NodeValues(net *network.Network) ([]float64, error) {
	if r.Grid == nil {
		return nil, fmt.Errorf("%w: raster is nil", ErrIncompatibleInput)
	}
	ref, ok := net.Grid()
	if !ok {
		return nil, fmt.Errorf("%w: network has no grid reference", ErrIncompatibleInput)
	}
	if !ref.Aligned(r.Grid.Reference) {
		return nil, fmt.Errorf("%w: raster %s %d×%d@%g not aligned with network grid %s %d×%d@%g",
			ErrIncompatibleInput,
			r.Grid.CRS, r.Grid.Rows, r.Grid.Cols, r.Grid.CellSize,
			ref.CRS, ref.Rows, ref.Cols, ref.CellSize)
	}
	if !net.HasPositions() {
		return nil, fmt.Errorf("%w: network has no node positions", ErrIncompatibleInput)
	}

	out := make([]float64, net.Len())
	for i := range out {
		x, y, _ := net.Position(i)
		v, inside := r.Grid.ValueAt(x, y)
		if !inside {
			return nil, fmt.Errorf("%w: node %d at (%g, %g) outside raster", ErrIncompatibleInput, i, x, y)
		}
		out[i] = v
	}
	return out, nil
}

// Bind resolves src into a node attribute array for net.
//
// Complexity: O(N).
func Bind(net *network.Network, src Source) ([]float64, error) {
	if net == nil {
		return nil, fmt.Errorf("%w: network is nil", ErrIncompatibleInput)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: source is nil", ErrIncompatibleInput)
	}
	return src.NodeValues(net)
}
