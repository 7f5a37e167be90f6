package flow_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mrfgrid/flow"
)

// randomGraph builds n nodes with random terminals and a random set of arcs.
func randomGraph(r *rand.Rand, n int) *flow.Graph {
	g := flow.NewGraph(n, n*n)
	for i := 0; i < n; i++ {
		_ = g.AddTerminal(i, float64(r.Intn(10)), float64(r.Intn(10)))
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && r.Float64() < 0.4 {
				_ = g.AddArc(u, v, r.Float64()*8)
			}
		}
	}
	return g
}

// gridGraph builds a w×h 4-connected graph with random capacities.
func gridGraph(r *rand.Rand, w, h int) *flow.Graph {
	g := flow.NewGraph(w*h, 4*w*h)
	for i := 0; i < w*h; i++ {
		_ = g.AddTerminal(i, r.Float64()*100, r.Float64()*100)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := y*w + x
			if x+1 < w {
				_ = g.AddArc(p, p+1, r.Float64()*30)
				_ = g.AddArc(p+1, p, r.Float64()*30)
			}
			if y+1 < h {
				_ = g.AddArc(p, p+w, r.Float64()*30)
				_ = g.AddArc(p+w, p, r.Float64()*30)
			}
		}
	}
	return g
}

// bruteForce enumerates all 2^n partitions and returns the cheapest cut.
func bruteForce(g *flow.Graph) float64 {
	n := g.Len()
	best := math.Inf(1)
	side := make([]bool, n)
	for mask := 0; mask < 1<<n; mask++ {
		for i := range side {
			side[i] = mask&(1<<i) != 0
		}
		best = math.Min(best, g.CutValue(side))
	}
	return best
}
