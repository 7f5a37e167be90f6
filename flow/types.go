// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"errors"
	"fmt"
)

// Source and Sink are pseudo node IDs used when reporting terminal arcs.
const (
	Source = -2
	Sink   = -1
)

var (
	// ErrNodeOutOfRange is returned when an arc or terminal references a node
	// index outside [0, n).
	ErrNodeOutOfRange = errors.New("flow: node index out of range")

	// ErrUnknownAlgorithm is returned for an unrecognised Algorithm value.
	ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")
)

// EdgeError is returned when an arc has a negative capacity.
// From or To is Source/Sink for terminal arcs.
type EdgeError struct {
	From, To int
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on arc %s→%s: %g", nodeName(e.From), nodeName(e.To), e.Cap)
}

func nodeName(id int) string {
	switch id {
	case Source:
		return "source"
	case Sink:
		return "sink"
	}
	return fmt.Sprintf("%d", id)
}

// Algorithm selects the max-flow routine behind MinCut.
type Algorithm int

const (
	// AlgorithmDinic uses level graphs and blocking flows.
	AlgorithmDinic Algorithm = iota
	// AlgorithmEdmondsKarp uses BFS shortest augmenting paths.
	AlgorithmEdmondsKarp
)

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmDinic:
		return "dinic"
	case AlgorithmEdmondsKarp:
		return "edmonds-karp"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "dinic" / "edmonds-karp" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "", "dinic":
		return AlgorithmDinic, nil
	case "edmonds-karp", "edmondskarp", "ek":
		return AlgorithmEdmondsKarp, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// FlowOptions configures MinCut.
//   - Ctx: cancellation, checked once per phase (default Background).
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - Algorithm: max-flow routine (default AlgorithmDinic).
type FlowOptions struct {
	Ctx       context.Context
	Epsilon   float64
	Algorithm Algorithm
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:       context.Background(),
		Epsilon:   1e-9,
		Algorithm: AlgorithmDinic,
	}
}

// normalize fills zero-valued fields with defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
}

// Arc is a directed non-terminal arc.
type Arc struct {
	From, To int
	Cap      float64
}

// Cut is the result of MinCut.
type Cut struct {
	// SourceSide[i] reports whether node i lies on the source side.
	SourceSide []bool
	// Value is the total capacity of the cut (equal to the max flow).
	Value float64
}
