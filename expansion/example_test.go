package expansion_test

import (
	"fmt"

	"github.com/katalvlaran/mrfgrid/energy"
	"github.com/katalvlaran/mrfgrid/expansion"
	"github.com/katalvlaran/mrfgrid/gridgraph"
)

// ExampleRestore starts a lone pixel far from its observation; with no
// neighbours the expansion moves it straight back.
func ExampleRestore() {
	im, _ := gridgraph.NewImage([][]int{{50}})
	start, _ := gridgraph.LabelingFrom([][]int{{0}})

	res, err := expansion.Restore(im, energy.Params{L: 10, S: 5},
		expansion.WithInitial(start), expansion.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Labeling.Rows(), res.Energy, res.Stable)
	// Output:
	// [[50]] 0 false
}

// ExampleBuildSubgraph shows a pair whose log penalty is not submodular for
// the proposed label: the non-terminal arc is truncated to zero.
func ExampleBuildSubgraph() {
	im, _ := gridgraph.NewImage([][]int{{0, 2}})
	t, _ := energy.NewTable(energy.Params{L: 10, S: 5})

	sg, _ := expansion.BuildSubgraph(im, gridgraph.NewLabeling(im), 1, t, expansion.PolicyTruncate, 1e-9)
	fmt.Println(len(sg.Graph.Arcs), sg.Graph.Arcs[0].Cap, sg.Truncated)
	// Output:
	// 1 0 1
}
