package expansion_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mrfgrid/energy"
	"github.com/katalvlaran/mrfgrid/gridgraph"
)

// linearTable returns V(a,b) = w·|a−b|, a metric, so no move is ever truncated.
func linearTable(t testing.TB, w float64) *energy.Table {
	t.Helper()
	tbl, err := energy.NewTableFunc(func(a, b uint8) float64 {
		d := float64(a) - float64(b)
		if d < 0 {
			d = -d
		}
		return w * d
	})
	require.NoError(t, err)
	return tbl
}

// cauchyTable returns the log-based table for (L, S).
func cauchyTable(t testing.TB, l, s float64) *energy.Table {
	t.Helper()
	tbl, err := energy.NewTable(energy.Params{L: l, S: s})
	require.NoError(t, err)
	return tbl
}

// randomImage builds a w×h image with intensities drawn from a few clusters
// plus noise, so that expansion moves have something to do.
func randomImage(t testing.TB, r *rand.Rand, w, h int) *gridgraph.Image {
	t.Helper()
	centres := []int{20, 90, 160, 230}
	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
		for x := range grid[y] {
			v := centres[(x/2+y/2)%len(centres)] + r.Intn(41) - 20
			grid[y][x] = min(max(v, 0), 255)
		}
	}
	im, err := gridgraph.NewImage(grid)
	require.NoError(t, err)
	return im
}

// moved applies a binary move to a copy of lab.
func moved(lab *gridgraph.Labeling, alpha uint8, switched []bool) *gridgraph.Labeling {
	out := lab.Clone()
	for i, s := range switched {
		if s {
			out.Set(i, alpha)
		}
	}
	return out
}
