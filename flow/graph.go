// SPDX-License-Identifier: MIT

package flow

import "fmt"

// Graph is a two-terminal capacitated graph over nodes 0..n-1.
type Graph struct {
	Source []float64
	Sink   []float64
	Arcs   []Arc
}

// NewGraph allocates a Graph with n nodes, zero terminal capacities and
// room for arcHint non-terminal arcs.
func NewGraph(n, arcHint int) *Graph {
	return &Graph{
		Source: make([]float64, n),
		Sink:   make([]float64, n),
		Arcs:   make([]Arc, 0, arcHint),
	}
}

// Len returns the number of ordinary nodes.
func (g *Graph) Len() int {
	return len(g.Source)
}

// AddTerminal adds capacities to node u's source and sink arcs.
func (g *Graph) AddTerminal(u int, source, sink float64) error {
	if u < 0 || u >= g.Len() {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, u)
	}
	g.Source[u] += source
	g.Sink[u] += sink
	return nil
}

// AddArc appends the directed arc u→v. Self-loops are accepted and ignored
// by the solvers since they can never be cut.
func (g *Graph) AddArc(u, v int, c float64) error {
	if u < 0 || u >= g.Len() {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, u)
	}
	if v < 0 || v >= g.Len() {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, v)
	}
	g.Arcs = append(g.Arcs, Arc{From: u, To: v, Cap: c})
	return nil
}

// Validate checks shape and sign of every capacity. Values in
// [-eps, 0) are tolerated as rounding noise.
func (g *Graph) Validate(eps float64) error {
	if len(g.Sink) != len(g.Source) {
		return fmt.Errorf("%w: %d source vs %d sink terminals", ErrNodeOutOfRange, len(g.Source), len(g.Sink))
	}
	for i := range g.Source {
		if g.Source[i] < -eps {
			return EdgeError{From: Source, To: i, Cap: g.Source[i]}
		}
		if g.Sink[i] < -eps {
			return EdgeError{From: i, To: Sink, Cap: g.Sink[i]}
		}
	}
	n := g.Len()
	for _, a := range g.Arcs {
		if a.From < 0 || a.From >= n || a.To < 0 || a.To >= n {
			return fmt.Errorf("%w: arc %d→%d", ErrNodeOutOfRange, a.From, a.To)
		}
		if a.Cap < -eps {
			return EdgeError{From: a.From, To: a.To, Cap: a.Cap}
		}
	}
	return nil
}

// CutValue evaluates the capacity of an arbitrary partition, where
// sourceSide[i] places node i with the source. Used to check solver output.
func (g *Graph) CutValue(sourceSide []bool) float64 {
	var v float64
	for i, s := range sourceSide {
		if s {
			v += g.Sink[i]
		} else {
			v += g.Source[i]
		}
	}
	for _, a := range g.Arcs {
		if sourceSide[a.From] && !sourceSide[a.To] {
			v += a.Cap
		}
	}
	return v
}
