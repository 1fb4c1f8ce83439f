package raster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rivernet/raster"
)

// ref3x4 is a 3-row, 4-col grid with 10 m cells whose upper-left corner is (100, 200).
var ref3x4 = raster.Reference{X0: 100, Y0: 200, CellSize: 10, Rows: 3, Cols: 4, CRS: "EPSG:32611"}

func TestNew_Errors(t *testing.T) {
	_, err := raster.New(raster.Reference{Rows: 0, Cols: 2, CellSize: 1}, nil)
	assert.ErrorIs(t, err, raster.ErrEmptyGrid)

	_, err = raster.New(raster.Reference{Rows: 2, Cols: 2, CellSize: -1}, make([]float64, 4))
	assert.ErrorIs(t, err, raster.ErrEmptyGrid)

	_, err = raster.New(ref3x4, make([]float64, 11))
	assert.ErrorIs(t, err, raster.ErrShape)
}

func TestNew_CopiesData(t *testing.T) {
	data := make([]float64, 12)
	g, err := raster.New(ref3x4, data)
	require.NoError(t, err)

	data[0] = 42
	v, err := g.Value(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 12, g.Len())
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	for idx := 0; idx < ref3x4.Rows*ref3x4.Cols; idx++ {
		row, col := ref3x4.Coordinate(idx)
		assert.True(t, ref3x4.InBounds(row, col))
		assert.Equal(t, idx, ref3x4.Index(row, col))
	}
	assert.False(t, ref3x4.InBounds(3, 0))
	assert.False(t, ref3x4.InBounds(0, -1))
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		row, col int
		ok       bool
	}{
		{"upper-left corner", 100, 200, 0, 0, true},
		{"centre of (1,2)", 125, 185, 1, 2, true},
		{"last cell", 139.9, 170.1, 2, 3, true},
		{"west of grid", 99.9, 195, 0, 0, false},
		{"south of grid", 105, 170, 0, 0, false},
		{"NaN", math.NaN(), 180, 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row, col, ok := ref3x4.CellAt(tc.x, tc.y)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.row, row)
				assert.Equal(t, tc.col, col)
			}
		})
	}
}

func TestCellCenterIsInsideCell(t *testing.T) {
	x, y := ref3x4.CellCenter(2, 1)
	assert.InDelta(t, 115.0, x, 1e-12)
	assert.InDelta(t, 175.0, y, 1e-12)
	row, col, ok := ref3x4.CellAt(x, y)
	require.True(t, ok)
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)
}

func TestValueAndNoData(t *testing.T) {
	data := []float64{
		1, 2, 3, 4,
		5, -9999, 7, 8,
		9, 10, 11, 12,
	}
	g, err := raster.New(ref3x4, data)
	require.NoError(t, err)
	g.NoData = -9999

	v, err := g.Value(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 12.0, v)

	v, err = g.Value(1, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	_, err = g.Value(3, 0)
	assert.ErrorIs(t, err, raster.ErrOutOfBounds)

	v, ok := g.ValueAt(ref3x4.CellCenter(1, 2))
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	_, ok = g.ValueAt(0, 0)
	assert.False(t, ok)
}

func TestAligned(t *testing.T) {
	same := ref3x4
	assert.True(t, ref3x4.Aligned(same))

	nudged := ref3x4
	nudged.X0 += 1e-12
	assert.True(t, ref3x4.Aligned(nudged), "sub-tolerance origin shift")

	shifted := ref3x4
	shifted.X0 += 5
	assert.False(t, ref3x4.Aligned(shifted))

	otherCRS := ref3x4
	otherCRS.CRS = "EPSG:4326"
	assert.False(t, ref3x4.Aligned(otherCRS))

	coarser := ref3x4
	coarser.CellSize = 20
	assert.False(t, ref3x4.Aligned(coarser))

	taller := ref3x4
	taller.Rows = 4
	assert.False(t, ref3x4.Aligned(taller))
}

// Swiss LV95 origins: the slack grows with the coordinates, not the cell size.
func TestAligned_ProjectedOrigin(t *testing.T) {
	lv95 := raster.Reference{X0: 2600000, Y0: 1200000, CellSize: 2, Rows: 10, Cols: 10, CRS: "EPSG:2056"}

	nudged := lv95
	nudged.X0 += 1e-3 // below 1e-9 × 3.8e6
	assert.True(t, lv95.Aligned(nudged))

	shifted := lv95
	shifted.Y0 += 0.01
	assert.False(t, lv95.Aligned(shifted))
}
