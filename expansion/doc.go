// SPDX-License-Identifier: MIT

// Package expansion restores a corrupted grid image by alpha-expansion:
// a multi-label MRF energy (see package energy) is minimised through a
// sequence of binary "keep the current label or switch to alpha" moves,
// each solved exactly as a minimum s–t cut (see package flow).
//
// A Solver owns two distinct buffers: the immutable observed Image and
// the mutable Labeling, initialised from the observation. One pass draws
// every one of the 256 labels exactly once, in an order shuffled afresh
// from a re-seedable source. For each drawn alpha the Solver
//
//  1. builds the per-pixel Subgraph against the current Labeling,
//  2. asks the Oracle for a minimum cut,
//  3. relabels every source-side pixel to alpha,
//
// and only then draws the next label. Passes repeat a fixed number of times
// (WithPasses), optionally stopping early once a whole pass changes nothing
// (WithStopWhenStable).
//
// Scheduler states:
//
//	PassStart → LabelSelected → CutApplied → LabelSelected … → PassStart | PassesExhausted
//
// # Submodularity
//
// Every neighbour pair contributes the non-terminal arc capacity
//
//	W = V(k_p, α) + V(α, k_q) − V(k_p, k_q) − V(α, α)
//
// which must be non-negative for the cut to be exact. Robust smoothness
// terms are not metrics, so W can dip below zero when α lies between two
// close labels. PolicyTruncate (default) raises V(k_p, α) just enough to
// make W zero; the current labeling keeps its exact energy, so no move can
// increase the energy. PolicyStrict instead aborts the step with
// ErrNotSubmodular before the oracle runs.
//
// Errors:
//
//	ErrNilInput        - nil image or table.
//	ErrOptionViolation - an Option received an invalid value.
//	ErrNotSubmodular   - negative arc capacity under PolicyStrict.
//	ErrOracleResult    - the oracle returned a cut of the wrong size.
//	gridgraph.ErrShapeMismatch - initial labeling and image disagree.
package expansion
