// SPDX-License-Identifier: MIT

package expansion

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mrfgrid/flow"
	"github.com/katalvlaran/mrfgrid/gridgraph"
)

// Sentinel errors for alpha-expansion.
var (
	// ErrNilInput is returned when the image or table is nil.
	ErrNilInput = errors.New("expansion: image and table must be non-nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("expansion: invalid option supplied")

	// ErrNotSubmodular is returned under PolicyStrict when a neighbour pair
	// yields a negative non-terminal capacity.
	ErrNotSubmodular = errors.New("expansion: pairwise term is not submodular for this move")

	// ErrOracleResult is returned when the oracle's cut does not cover every pixel.
	ErrOracleResult = errors.New("expansion: oracle returned a malformed cut")
)

// Oracle solves one binary subproblem. flow.MinCut satisfies it.
type Oracle func(g *flow.Graph, opts flow.FlowOptions) (*flow.Cut, error)

// Policy decides what happens to a negative non-terminal capacity.
type Policy int

const (
	// PolicyTruncate raises the offending pairwise entry so the capacity is zero.
	PolicyTruncate Policy = iota
	// PolicyStrict aborts the step with ErrNotSubmodular.
	PolicyStrict
)

func (p Policy) String() string {
	switch p {
	case PolicyTruncate:
		return "truncate"
	case PolicyStrict:
		return "strict"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps "truncate" / "strict" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "truncate":
		return PolicyTruncate, nil
	case "strict":
		return PolicyStrict, nil
	}
	return 0, fmt.Errorf("%w: unknown policy %q", ErrOptionViolation, s)
}

// State is the position of the scheduler.
type State int

const (
	// StatePassStart: label pool refilled, nothing drawn yet.
	StatePassStart State = iota
	// StateLabelSelected: an alpha was drawn and removed from the pool.
	StateLabelSelected
	// StateCutApplied: the cut for the current alpha was applied.
	StateCutApplied
	// StatePassesExhausted: the configured passes are done.
	StatePassesExhausted
)

func (s State) String() string {
	switch s {
	case StatePassStart:
		return "PassStart"
	case StateLabelSelected:
		return "LabelSelected"
	case StateCutApplied:
		return "CutApplied"
	case StatePassesExhausted:
		return "PassesExhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// StepStats describes one alpha-expansion move.
type StepStats struct {
	Pass      int
	Alpha     uint8
	Changed   int     // pixels relabelled to Alpha
	Truncated int     // neighbour pairs truncated to zero capacity
	CutValue  float64 // min-cut value reported by the oracle
}

// PassStats describes one full cycle over the label pool.
type PassStats struct {
	Index        int
	Proposed     []uint8 // alphas in the order they were drawn
	Changed      int
	Truncated    int
	EnergyBefore float64
	EnergyAfter  float64
}

// Result is the outcome of Solver.Run.
type Result struct {
	Labeling *gridgraph.Labeling
	Passes   int
	Energy   float64
	// Stable is true when the last pass changed no pixel.
	Stable  bool
	History []PassStats
}
