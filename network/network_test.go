package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rivernet/network"
	"github.com/katalvlaran/rivernet/raster"
)

// yNet is a small confluence:
//
//	3 → 2 ┐
//	      1 → 0 (outlet)
//	5 → 4 ┘
//
// plus an isolated outlet 6.
var yNet = []int{-1, 0, 1, 2, 1, 4, -1}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		next []int
		opts []network.Option
		want error
	}{
		{"successor out of range", []int{-1, 5}, nil, network.ErrNodeIndex},
		{"negative successor", []int{-1, -2}, nil, network.ErrNodeIndex},
		{"self link", []int{0}, nil, network.ErrNodeIndex},
		{"two cycle", []int{1, 0}, nil, network.ErrCycle},
		{"cycle behind a tail", []int{1, 2, 3, 1}, nil, network.ErrCycle},
		{"short positions", []int{-1, 0}, []network.Option{network.WithPositions([]float64{0}, []float64{0})}, network.ErrPositions},
		{"zero cell size", []int{-1}, []network.Option{network.WithCellSize(0)}, network.ErrOptionViolation},
		{"NaN cell size", []int{-1}, []network.Option{network.WithCellSize(math.NaN())}, network.ErrOptionViolation},
		{"empty grid", []int{-1}, []network.Option{network.WithGrid(raster.Reference{})}, network.ErrOptionViolation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.New(tc.next, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_EmptyNetwork(t *testing.T) {
	net, err := network.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, net.Len())
	assert.Empty(t, net.Reaches())
	assert.Empty(t, net.TopoOrder())
}

func TestNew_CopiesInput(t *testing.T) {
	next := []int{-1, 0}
	net, err := network.New(next)
	require.NoError(t, err)
	next[1] = -1
	assert.Equal(t, 0, net.Next(1))
}

func TestAccessors(t *testing.T) {
	net, err := network.New(yNet)
	require.NoError(t, err)

	assert.Equal(t, 7, net.Len())
	assert.Equal(t, 5, net.NumLinks())
	assert.Equal(t, []int{0, 6}, net.Outlets())
	assert.Equal(t, []int{3, 5, 6}, net.Heads())
	assert.Equal(t, []int{1}, net.Confluences())
	assert.Equal(t, []int{2, 4}, net.Prev(1))
	assert.True(t, net.IsConfluence(1))
	assert.True(t, net.IsOutlet(6))
	assert.True(t, net.IsHead(6))
	assert.Equal(t, 1.0, net.CellSize())

	_, _, ok := net.Position(0)
	assert.False(t, ok)
	assert.False(t, net.HasPositions())
	_, ok = net.Grid()
	assert.False(t, ok)
}

func TestGridSetsDefaultCellSize(t *testing.T) {
	ref := raster.Reference{X0: 0, Y0: 100, CellSize: 25, Rows: 4, Cols: 4}
	net, err := network.New([]int{-1}, network.WithGrid(ref))
	require.NoError(t, err)
	assert.Equal(t, 25.0, net.CellSize())
	got, ok := net.Grid()
	assert.True(t, ok)
	assert.Equal(t, ref, got)

	net, err = network.New([]int{-1}, network.WithGrid(ref), network.WithCellSize(5))
	require.NoError(t, err)
	assert.Equal(t, 5.0, net.CellSize(), "explicit cell size wins")
}

func TestLinkLengthAndFlowDistance(t *testing.T) {
	// 2 → 1 → 0 with a diagonal step between 2 and 1
	xs := []float64{0, 10, 20}
	ys := []float64{0, 0, 10}
	net, err := network.New([]int{-1, 0, 1}, network.WithPositions(xs, ys), network.WithCellSize(10))
	require.NoError(t, err)

	assert.Equal(t, 0.0, net.LinkLength(0))
	assert.InDelta(t, 10.0, net.LinkLength(1), 1e-12)
	assert.InDelta(t, 10*math.Sqrt2, net.LinkLength(2), 1e-12)

	d := net.FlowDistance()
	assert.InDeltaSlice(t, []float64{0, 10, 10 + 10*math.Sqrt2}, d, 1e-12)

	// without positions every link is one cell
	plain, err := network.New(yNet, network.WithCellSize(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6, 4, 6, 0}, plain.FlowDistance())
}

func TestTopoOrder(t *testing.T) {
	net, err := network.New(yNet)
	require.NoError(t, err)

	order := net.TopoOrder()
	require.Len(t, order, net.Len())
	pos := make(map[int]int, len(order))
	for k, v := range order {
		pos[v] = k
	}
	for i := 0; i < net.Len(); i++ {
		if j := net.Next(i); j != network.None {
			assert.Less(t, pos[i], pos[j], "node %d must precede its successor %d", i, j)
		}
	}
}

func TestReaches(t *testing.T) {
	net, err := network.New(yNet)
	require.NoError(t, err)

	reaches := net.Reaches()
	assert.Equal(t, [][]int{
		{0, 1}, // downstream reach, ends at the confluence
		{2, 3}, // left tributary
		{4, 5}, // right tributary
		{6},    // isolated outlet
	}, reaches)

	seen := make(map[int]int)
	for _, r := range reaches {
		for _, v := range r {
			seen[v]++
		}
	}
	assert.Len(t, seen, net.Len())
	for v, c := range seen {
		assert.Equal(t, 1, c, "node %d in %d reaches", v, c)
	}
}

func TestDetach(t *testing.T) {
	net, err := network.New(yNet)
	require.NoError(t, err)

	cut, err := net.Detach([]int{2, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 6}, cut.Outlets())
	assert.Empty(t, cut.Prev(1))
	assert.Equal(t, 1, net.Next(2), "receiver untouched")

	_, err = net.Detach([]int{7})
	assert.ErrorIs(t, err, network.ErrNodeIndex)
}

func TestSubnetwork(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5, 6}
	ys := make([]float64, 7)
	net, err := network.New(yNet, network.WithPositions(xs, ys), network.WithCellSize(3))
	require.NoError(t, err)

	sub, err := net.Subnetwork([]int{5, 4, 1})
	require.NoError(t, err)
	assert.Equal(t, 3, sub.Len())
	assert.Equal(t, 1, sub.Next(0))
	assert.Equal(t, 2, sub.Next(1))
	assert.Equal(t, network.None, sub.Next(2), "link to excluded node 0 is dropped")
	assert.Equal(t, 3.0, sub.CellSize())
	x, _, ok := sub.Position(1)
	assert.True(t, ok)
	assert.Equal(t, 4.0, x)

	_, err = net.Subnetwork([]int{1, 1})
	assert.ErrorIs(t, err, network.ErrNodeIndex)
	_, err = net.Subnetwork([]int{-1})
	assert.ErrorIs(t, err, network.ErrNodeIndex)
}
