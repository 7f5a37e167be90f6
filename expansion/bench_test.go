package expansion_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mrfgrid/expansion"
	"github.com/katalvlaran/mrfgrid/gridgraph"
)

// BenchmarkBuildSubgraph measures the reparameterisation of a 64×64 move.
func BenchmarkBuildSubgraph(b *testing.B) {
	tbl := cauchyTable(b, 10, 5)
	im := randomImage(b, rand.New(rand.NewSource(1)), 64, 64)
	lab := gridgraph.NewLabeling(im)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := expansion.BuildSubgraph(im, lab, uint8(i), tbl, expansion.PolicyTruncate, 1e-9); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkStep measures one build → cut → apply move on a 32×32 image.
func BenchmarkStep(b *testing.B) {
	tbl := cauchyTable(b, 10, 5)
	im := randomImage(b, rand.New(rand.NewSource(2)), 32, 32)
	s, err := expansion.NewSolver(im, tbl, expansion.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Step(uint8(i)); err != nil {
			b.Fatal(err)
		}
	}
}
