package dispatch_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rivernet/builder"
	"github.com/katalvlaran/rivernet/dispatch"
	"github.com/katalvlaran/rivernet/network"
	"github.com/katalvlaran/rivernet/remap"
)

// threeBasins is a 4-node reach, a 3-node reach and a single node.
func threeBasins(t *testing.T) *network.Network {
	t.Helper()
	net, err := builder.Build(nil, builder.Reach(4), builder.Reach(3), builder.Reach(1))
	require.NoError(t, err)
	return net
}

// double multiplies every basin value by two.
func double(_ context.Context, _ dispatch.Basin, values []float64) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = 2 * v
	}
	return out, nil
}

func TestBasins(t *testing.T) {
	net := threeBasins(t)
	basins, err := dispatch.Basins(net)
	require.NoError(t, err)
	require.Len(t, basins, 3)

	assert.Equal(t, []int{0, 1, 2, 3}, basins[0].Origin)
	assert.Equal(t, []int{4, 5, 6}, basins[1].Origin)
	assert.Equal(t, []int{7}, basins[2].Origin)
	for k, b := range basins {
		assert.Equal(t, k, b.Index)
		assert.Equal(t, len(b.Origin), b.Network.Len())
		assert.Equal(t, []int{0}, b.Network.Outlets())
	}
}

func TestRun_MergesByOrigin(t *testing.T) {
	net := threeBasins(t)
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	for _, w := range []int{1, 2, 8} {
		out, err := dispatch.Run(context.Background(), net, values, double, dispatch.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 4, 6, 8, 10, 12, 14, 16}, out, "workers=%d", w)
	}
	// the input is never written
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, values)
}

func TestRun_TaskSeesLocalIndexing(t *testing.T) {
	net := threeBasins(t)
	values := []float64{10, 11, 12, 13, 20, 21, 22, 30}

	// each node gets its basin-local index
	local := func(_ context.Context, b dispatch.Basin, vals []float64) ([]float64, error) {
		out := make([]float64, len(vals))
		for k := range vals {
			if b.Network.Len() != len(vals) {
				return nil, errors.New("size mismatch")
			}
			out[k] = float64(k)
		}
		return out, nil
	}
	out, err := dispatch.Run(context.Background(), net, values, local)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 0, 1, 2, 0}, out)
}

func TestRun_ArgumentErrors(t *testing.T) {
	net := threeBasins(t)
	ctx := context.Background()

	_, err := dispatch.Run(ctx, net, make([]float64, 8), nil)
	assert.ErrorIs(t, err, dispatch.ErrNilTask)

	_, err = dispatch.Run(ctx, net, make([]float64, 7), double)
	assert.ErrorIs(t, err, dispatch.ErrValuesLength)

	_, err = dispatch.Run(ctx, nil, nil, double)
	assert.ErrorIs(t, err, dispatch.ErrValuesLength)

	_, err = dispatch.Run(ctx, net, make([]float64, 8), double, dispatch.WithWorkers(0))
	assert.ErrorIs(t, err, dispatch.ErrOptionViolation)

	_, err = dispatch.Run(ctx, net, make([]float64, 8), double, dispatch.WithErrorPolicy(dispatch.ErrorPolicy(7)))
	assert.ErrorIs(t, err, dispatch.ErrOptionViolation)
}

var errBasin = errors.New("basin failed")

// failSecond fails on the basin that starts at original node 4.
func failSecond(ctx context.Context, b dispatch.Basin, values []float64) ([]float64, error) {
	if b.Origin[0] == 4 {
		return nil, errBasin
	}
	return double(ctx, b, values)
}

func TestRun_FailFast(t *testing.T) {
	net := threeBasins(t)
	out, err := dispatch.Run(context.Background(), net, make([]float64, 8), failSecond)
	assert.ErrorIs(t, err, errBasin)
	assert.Nil(t, out)
}

func TestRun_MarkMissing(t *testing.T) {
	net := threeBasins(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	values := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	out, err := dispatch.Run(context.Background(), net, values, failSecond,
		dispatch.WithErrorPolicy(dispatch.MarkMissing), dispatch.WithLogger(logger), dispatch.WithWorkers(1))
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 2, 2, 2}, out[:4])
	for _, v := range out[4:7] {
		assert.True(t, math.IsNaN(v))
	}
	assert.Equal(t, 2.0, out[7])
	assert.Contains(t, buf.String(), "marked missing")
	assert.Contains(t, buf.String(), "basin=1")
}

func TestRun_PanicIsTaskError(t *testing.T) {
	net := threeBasins(t)
	boom := func(context.Context, dispatch.Basin, []float64) ([]float64, error) { panic("boom") }

	_, err := dispatch.Run(context.Background(), net, make([]float64, 8), boom)
	assert.ErrorIs(t, err, dispatch.ErrTaskPanic)

	out, err := dispatch.Run(context.Background(), net, make([]float64, 8), boom,
		dispatch.WithErrorPolicy(dispatch.MarkMissing))
	require.NoError(t, err)
	for _, v := range out {
		assert.True(t, math.IsNaN(v))
	}
}

// A task returning the wrong number of values is a remapping defect and is
// never masked by MarkMissing.
func TestRun_ShortResultIsConsistencyError(t *testing.T) {
	net := threeBasins(t)
	short := func(_ context.Context, _ dispatch.Basin, values []float64) ([]float64, error) {
		return values[:len(values)-1], nil
	}
	_, err := dispatch.Run(context.Background(), net, make([]float64, 8), short,
		dispatch.WithErrorPolicy(dispatch.MarkMissing))
	assert.ErrorIs(t, err, remap.ErrRemapConsistency)
}

func TestRun_Cancelled(t *testing.T) {
	net := threeBasins(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	count := func(ctx context.Context, b dispatch.Basin, values []float64) ([]float64, error) {
		calls.Add(1)
		return double(ctx, b, values)
	}
	out, err := dispatch.Run(ctx, net, make([]float64, 8), count, dispatch.WithErrorPolicy(dispatch.MarkMissing))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
	assert.Zero(t, calls.Load())
}

func TestErrorPolicy_String(t *testing.T) {
	assert.Equal(t, "fail-fast", dispatch.FailFast.String())
	assert.Equal(t, "mark-missing", dispatch.MarkMissing.String())
	assert.Equal(t, "ErrorPolicy(9)", dispatch.ErrorPolicy(9).String())
}

func BenchmarkRun(b *testing.B) {
	cons := make([]builder.Constructor, 64)
	for i := range cons {
		cons[i] = builder.RandomTree(500)
	}
	net, err := builder.Build([]builder.BuilderOption{builder.WithSeed(1)}, cons...)
	if err != nil {
		b.Fatal(err)
	}
	values := make([]float64, net.Len())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dispatch.Run(context.Background(), net, values, double); err != nil {
			b.Fatal(err)
		}
	}
}
