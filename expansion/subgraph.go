// SPDX-License-Identifier: MIT

package expansion

import (
	"fmt"

	"github.com/katalvlaran/mrfgrid/energy"
	"github.com/katalvlaran/mrfgrid/flow"
	"github.com/katalvlaran/mrfgrid/gridgraph"
)

// Subgraph is the capacitated two-terminal graph of one expansion move.
// Node i is pixel i. Sink side keeps the current label, source side
// switches to Alpha:
//
//	Graph.Source[i] is paid when pixel i keeps its label,
//	Graph.Sink[i]   is paid when pixel i switches to Alpha,
//	arc q→p         is paid when q switches and p keeps.
//
// For any move x, Offset + Graph.CutValue(x) is the energy of the moved
// labeling (an upper bound of it for truncated pairs, exact for x = keep-all).
type Subgraph struct {
	Alpha     uint8
	Shape     gridgraph.Shape
	Graph     *flow.Graph
	Offset    float64
	Truncated int
}

// EdgeCapacity returns the raw non-terminal capacity of the pair (p,q)
// with current labels k and kq under move alpha:
//
//	V(k,α) + V(α,kq) − V(k,kq) − V(α,α)
func EdgeCapacity(t *energy.Table, k, kq, alpha uint8) float64 {
	return t.At(k, alpha) + t.At(alpha, kq) - t.At(k, kq) - t.At(alpha, alpha)
}

// BuildSubgraph reparameterises the binary move "keep or switch to alpha"
// against the current labeling into terminal and non-terminal capacities.
//
// Steps:
//  1. Data terms: keep[p] = D(k_p, I_p), swap[p] = D(α, I_p).
//  2. For each neighbour pair (p,q) with A=V(k_p,k_q), B=V(k_p,α), C=V(α,k_q), D=V(α,α):
//     a. W = B + C − A − D; if W < −eps apply policy (truncate or fail).
//     b. charge C−A to p switching and D−C to q switching,
//     c. add arc q→p with capacity W, fold A into Offset.
//  3. Subtract min(keep[p], swap[p]) from both terminals of every pixel.
//
// Complexity: O(W×H) time and memory.
func BuildSubgraph(im *gridgraph.Image, lab *gridgraph.Labeling, alpha uint8, t *energy.Table, policy Policy, eps float64) (*Subgraph, error) {
	if im == nil || lab == nil || t == nil {
		return nil, ErrNilInput
	}
	if err := im.Shape.Check(lab.Shape); err != nil {
		return nil, err
	}

	edges := im.Edges()
	n := im.Len()
	sg := &Subgraph{
		Alpha: alpha,
		Shape: im.Shape,
		Graph: flow.NewGraph(n, len(edges)),
	}
	keep, swap := sg.Graph.Source, sg.Graph.Sink

	for p := 0; p < n; p++ {
		obs := im.Value(p)
		keep[p] = energy.Data(lab.Label(p), obs)
		swap[p] = energy.Data(alpha, obs)
	}

	// charge adds c·x_p where x_p = 1 means switching.
	charge := func(p int, c float64) {
		if c >= 0 {
			swap[p] += c
			return
		}
		keep[p] -= c
		sg.Offset += c
	}

	for _, e := range edges {
		kp, kq := lab.Label(e.P), lab.Label(e.Q)
		a := t.At(kp, kq)
		c := t.At(alpha, kq)
		d := t.At(alpha, alpha)
		w := EdgeCapacity(t, kp, kq, alpha)
		if w < 0 {
			if w < -eps {
				if policy == PolicyStrict {
					return nil, fmt.Errorf("%w: pixels %d,%d labels %d,%d alpha %d capacity %g",
						ErrNotSubmodular, e.P, e.Q, kp, kq, alpha, w)
				}
				sg.Truncated++
			}
			w = 0
		}
		sg.Offset += a
		charge(e.P, c-a)
		charge(e.Q, d-c)
		// q switching while p keeps pays W
		sg.Graph.Arcs = append(sg.Graph.Arcs, flow.Arc{From: e.Q, To: e.P, Cap: w})
	}

	for p := 0; p < n; p++ {
		m := min(keep[p], swap[p])
		keep[p] -= m
		swap[p] -= m
		sg.Offset += m
	}
	return sg, nil
}

// Energy evaluates the represented binary energy for a move, where
// switch[i] means pixel i takes Alpha.
func (sg *Subgraph) Energy(switched []bool) float64 {
	return sg.Offset + sg.Graph.CutValue(switched)
}
