// SPDX-License-Identifier: MIT

// Package energy defines the pairwise Markov Random Field energy that the
// restoration minimises over a 4-connected grid.
//
//	E(f) = Σ_p D(f_p, I_p) + Σ_{(p,q)} V(f_p, f_q)
//
// The data term D is the squared intensity difference between a label and
// the observed pixel. The smoothness term V is the robust (Cauchy-like)
// penalty
//
//	V(a, b) = L · ln(1 + (a−b)² / (2·S²))
//
// with scale L > 0 and spread S > 0.
//
// V is tabulated once into a 256×256 Table which is immutable afterwards and
// is passed explicitly to every consumer. Custom pairwise functions may be
// tabulated with NewTableFunc; the table is validated to be symmetric,
// zero on the diagonal, non-negative and non-decreasing in |a−b|.
//
// Errors:
//
//	ErrInvalidParams   - L or S is not a positive finite number.
//	ErrNotSymmetric    - V(a,b) != V(b,a).
//	ErrNonZeroDiagonal - V(a,a) != 0.
//	ErrNegativeCost    - V(a,b) < 0.
//	ErrNotMonotone     - V decreases as |a−b| grows.
package energy
