// SPDX-License-Identifier: MIT

package energy

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// levels is the label alphabet size.
const levels = 256

// Table is the precomputed 256×256 pairwise cost matrix. It is read-only
// after construction and safe for concurrent readers.
type Table struct {
	cost [levels * levels]float64
	max  float64
}

// NewTable validates p and tabulates the Cauchy smoothness term.
// Complexity: O(256²) time, 512 KiB memory.
func NewTable(p Params) (*Table, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return NewTableFunc(Cauchy(p))
}

// NewTableFunc tabulates an arbitrary pairwise function and checks that it
// is usable for alpha-expansion: symmetric, zero diagonal, non-negative and
// non-decreasing in |a−b| along every row.
func NewTableFunc(fn PairwiseFunc) (*Table, error) {
	t := &Table{}
	for a := 0; a < levels; a++ {
		for b := 0; b < levels; b++ {
			t.cost[a*levels+b] = fn(uint8(a), uint8(b))
		}
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	t.max = floats.Max(t.cost[:])
	return t, nil
}

// validate enforces the table invariants row by row.
func (t *Table) validate() error {
	for a := 0; a < levels; a++ {
		if c := t.cost[a*levels+a]; c != 0 {
			return fmt.Errorf("%w: V(%d,%d)=%g", ErrNonZeroDiagonal, a, a, c)
		}
		for b := 0; b < levels; b++ {
			c := t.cost[a*levels+b]
			if c < 0 {
				return fmt.Errorf("%w: V(%d,%d)=%g", ErrNegativeCost, a, b, c)
			}
			if c != t.cost[b*levels+a] {
				return fmt.Errorf("%w: V(%d,%d)=%g, V(%d,%d)=%g", ErrNotSymmetric, a, b, c, b, a, t.cost[b*levels+a])
			}
		}
		// moving away from the diagonal in either direction never gets cheaper
		for b := a + 1; b < levels; b++ {
			if t.cost[a*levels+b] < t.cost[a*levels+b-1] {
				return fmt.Errorf("%w: V(%d,%d) < V(%d,%d)", ErrNotMonotone, a, b, a, b-1)
			}
		}
		for b := a - 1; b >= 0; b-- {
			if t.cost[a*levels+b] < t.cost[a*levels+b+1] {
				return fmt.Errorf("%w: V(%d,%d) < V(%d,%d)", ErrNotMonotone, a, b, a, b+1)
			}
		}
	}
	return nil
}

// At returns V(a, b).
func (t *Table) At(a, b uint8) float64 {
	return t.cost[int(a)*levels+int(b)]
}

// Max returns the largest entry of the table.
func (t *Table) Max() float64 {
	return t.max
}
