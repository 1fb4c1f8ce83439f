// SPDX-License-Identifier: MIT
// Package: rivernet/raster
//
// raster.go — construction and O(1) cell lookups.

package raster

import (
	"fmt"
	"math"
)

// New constructs a Grid over ref from row-major data.
// The data slice is copied so later mutation by the caller is not observed.
// NoData defaults to NaN; set Grid.NoData after construction to change it.
//
// Errors:
//   - ErrEmptyGrid if ref is not Valid.
//   - ErrShape if len(data) != ref.Rows*ref.Cols.
//
// Complexity: O(Rows·Cols) time and memory.
func New(ref Reference, data []float64) (*Grid, error) {
	if !ref.Valid() {
		return nil, ErrEmptyGrid
	}
	if len(data) != ref.Rows*ref.Cols {
		return nil, fmt.Errorf("%w: got %d values for %d×%d", ErrShape, len(data), ref.Rows, ref.Cols)
	}
	cells := make([]float64, len(data))
	copy(cells, data)

	return &Grid{Reference: ref, NoData: math.NaN(), data: cells}, nil
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (r Reference) InBounds(row, col int) bool {
	return row >= 0 && row < r.Rows && col >= 0 && col < r.Cols
}

// Index maps (row, col) to a row-major index: row*Cols + col.
// Complexity: O(1).
func (r Reference) Index(row, col int) int {
	return row*r.Cols + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (r Reference) Coordinate(idx int) (row, col int) {
	return idx / r.Cols, idx % r.Cols
}

// CellAt returns the cell containing the planar point (x, y).
// ok is false when the point falls outside the grid.
// Complexity: O(1).
func (r Reference) CellAt(x, y float64) (row, col int, ok bool) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	fc := math.Floor((x - r.X0) / r.CellSize)
	fr := math.Floor((r.Y0 - y) / r.CellSize)
	if fc < 0 || fr < 0 || fc >= float64(r.Cols) || fr >= float64(r.Rows) {
		return 0, 0, false
	}

	return int(fr), int(fc), true
}

// CellCenter returns the planar coordinates of the centre of (row, col).
// Complexity: O(1).
func (r Reference) CellCenter(row, col int) (x, y float64) {
	x = r.X0 + (float64(col)+0.5)*r.CellSize
	y = r.Y0 - (float64(row)+0.5)*r.CellSize
	return x, y
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Value returns the value stored at (row, col). NoData cells come back as NaN.
//
// Errors:
//   - ErrOutOfBounds if (row, col) is outside the grid.
//
// Complexity: O(1).
func (g *Grid) Value(row, col int) (float64, error) {
	if !g.InBounds(row, col) {
		return math.NaN(), fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfBounds, row, col, g.Rows, g.Cols)
	}
	v := g.data[g.Index(row, col)]
	if v == g.NoData {
		return math.NaN(), nil
	}

	return v, nil
}

// ValueAt samples the grid at the planar point (x, y).
// ok is false when the point falls outside the grid.
// Complexity: O(1).
func (g *Grid) ValueAt(x, y float64) (v float64, ok bool) {
	row, col, ok := g.CellAt(x, y)
	if !ok {
		return math.NaN(), false
	}
	v, _ = g.Value(row, col)

	return v, true
}
