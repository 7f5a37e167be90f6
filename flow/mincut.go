// SPDX-License-Identifier: MIT

package flow

import "fmt"

// MinCut returns a minimum s–t cut of g.
//
// Steps:
//  1. Normalize options (default Ctx and Epsilon).
//  2. Validate g: shape, node indices, no capacity below -Epsilon.
//  3. Build the residual network and run the selected max-flow routine.
//  4. Mark the nodes reachable from the source in the final residual.
//
// The returned Cut.Value equals the max flow. Nodes with no terminal and no
// arcs stay on the sink side.
func MinCut(g *Graph, opts FlowOptions) (*Cut, error) {
	opts.normalize()
	if err := g.Validate(opts.Epsilon); err != nil {
		return nil, err
	}

	r := buildResidual(g, opts.Epsilon)

	var (
		value float64
		err   error
	)
	switch opts.Algorithm {
	case AlgorithmDinic:
		value, err = dinic(opts.Ctx, r, opts.Epsilon)
	case AlgorithmEdmondsKarp:
		value, err = edmondsKarp(opts.Ctx, r, opts.Epsilon)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, opts.Algorithm)
	}
	if err != nil {
		return nil, err
	}

	return &Cut{SourceSide: r.reachable(opts.Epsilon), Value: value}, nil
}
