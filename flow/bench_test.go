package flow_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mrfgrid/flow"
)

// BenchmarkMinCut measures both algorithms on a random 64×64 grid graph.
func BenchmarkMinCut(b *testing.B) {
	g := gridGraph(rand.New(rand.NewSource(42)), 64, 64)
	for _, algo := range []flow.Algorithm{flow.AlgorithmDinic, flow.AlgorithmEdmondsKarp} {
		b.Run(algo.String(), func(b *testing.B) {
			o := flow.DefaultOptions()
			o.Algorithm = algo
			for i := 0; i < b.N; i++ {
				if _, err := flow.MinCut(g, o); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
