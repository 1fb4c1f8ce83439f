// SPDX-License-Identifier: MIT
// Package: rivernet/raster
//
// types.go — sentinel errors and the Reference/Grid types.

package raster

import (
	"errors"
	"math"
)

var (
	// ErrEmptyGrid indicates a reference with no rows, no columns or a non-positive cell size.
	ErrEmptyGrid = errors.New("raster: grid must have at least one row, one column and a positive cell size")

	// ErrShape indicates that the data slice does not hold exactly Rows·Cols values.
	ErrShape = errors.New("raster: data length does not match grid shape")

	// ErrOutOfBounds indicates a row/col pair outside the grid.
	ErrOutOfBounds = errors.New("raster: cell out of bounds")
)

// alignTol is the relative tolerance used when comparing origins and cell sizes.
const alignTol = 1e-9

// Reference is the spatial embedding of a grid.
type Reference struct {
	// X0, Y0 are the coordinates of the upper-left corner of cell (0,0).
	X0, Y0 float64

	// CellSize is the side length of a (square) cell.
	CellSize float64

	// Rows and Cols give the grid shape.
	Rows, Cols int

	// CRS labels the coordinate reference system, e.g. "EPSG:32611".
	// Two references with different labels are never aligned.
	CRS string
}

// Grid is a row-major raster of float64 values.
type Grid struct {
	Reference

	// NoData marks missing cells. NaN values are always treated as missing.
	NoData float64

	data []float64
}

// Valid reports whether the reference has a usable shape and cell size.
// Complexity: O(1).
func (r Reference) Valid() bool {
	return r.Rows > 0 && r.Cols > 0 && r.CellSize > 0 &&
		!math.IsInf(r.CellSize, 0) && !math.IsNaN(r.CellSize)
}

// Aligned reports whether r and o describe exactly the same cells: equal CRS
// label, equal shape, and origin/cell size equal within a relative tolerance.
// Complexity: O(1).
func (r Reference) Aligned(o Reference) bool {
	if r.CRS != o.CRS || r.Rows != o.Rows || r.Cols != o.Cols {
		return false
	}
	tol := alignTol * math.Max(1, math.Max(math.Abs(r.CellSize), math.Abs(o.CellSize)))
	if math.Abs(r.CellSize-o.CellSize) > tol {
		return false
	}
	// origin tolerance scales with |X0|+|Y0| (or the cell size, if larger),
	// so projected coordinates in the millions keep a relative 1e-9 slack
	otol := alignTol * math.Max(1, math.Max(math.Abs(r.X0)+math.Abs(r.Y0), r.CellSize))
	return math.Abs(r.X0-o.X0) <= otol && math.Abs(r.Y0-o.Y0) <= otol
}
