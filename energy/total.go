// SPDX-License-Identifier: MIT

package energy

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mrfgrid/gridgraph"
)

// Breakdown splits a labeling's energy into its data and smoothness parts.
type Breakdown struct {
	Data       float64
	Smoothness float64
}

// Total returns Data + Smoothness.
func (b Breakdown) Total() float64 {
	return b.Data + b.Smoothness
}

// Evaluate computes the energy of lab against the observed im.
// Every 4-neighbour edge is counted once.
// Returns gridgraph.ErrShapeMismatch if the grids differ in shape.
// Complexity: O(W×H).
func Evaluate(im *gridgraph.Image, lab *gridgraph.Labeling, t *Table) (Breakdown, error) {
	if err := im.Shape.Check(lab.Shape); err != nil {
		return Breakdown{}, err
	}
	data := make([]float64, im.Len())
	for i := range data {
		data[i] = Data(lab.Label(i), im.Value(i))
	}
	edges := im.Edges()
	smooth := make([]float64, len(edges))
	for i, e := range edges {
		smooth[i] = t.At(lab.Label(e.P), lab.Label(e.Q))
	}
	return Breakdown{Data: floats.Sum(data), Smoothness: floats.Sum(smooth)}, nil
}

// Total is shorthand for Evaluate(...).Total().
func Total(im *gridgraph.Image, lab *gridgraph.Labeling, t *Table) (float64, error) {
	b, err := Evaluate(im, lab, t)
	if err != nil {
		return 0, err
	}
	return b.Total(), nil
}
