// Package raster describes georeferenced, row-major grids of float64 cells
// and the lookups needed to sample them at river-network node positions.
//
// What:
//
//   - Reference: the spatial embedding of a grid (upper-left origin, square
//     cell size, rows, cols and a coordinate reference system label).
//   - Grid: a Reference plus one value per cell and a NoData marker.
//   - Aligned: checks that two references describe the same cells, which is
//     the precondition for sampling a raster onto a network derived from
//     another raster.
//
// Conventions:
//
//   - Row 0 is the northern edge; y decreases with increasing row.
//   - Cell (row, col) covers [X0+col·cs, X0+(col+1)·cs) × (Y0-(row+1)·cs, Y0-row·cs].
//   - Cells are addressed row-major: idx = row·Cols + col.
//
// Complexity:
//
//   - CellAt, Index, Coordinate, Value: O(1).
//   - New: O(Rows·Cols) for the defensive copy.
//
// Errors:
//
//   - ErrEmptyGrid:   zero rows or columns, or non-positive cell size.
//   - ErrShape:       data length does not equal Rows·Cols.
//   - ErrOutOfBounds: a row/col pair outside the grid.
package raster
