// SPDX-License-Identifier: MIT

package energy

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for energy construction.
var (
	// ErrInvalidParams indicates a non-positive or non-finite L or S.
	ErrInvalidParams = errors.New("energy: L and S must be positive and finite")

	// ErrNotSymmetric indicates a pairwise function with V(a,b) != V(b,a).
	ErrNotSymmetric = errors.New("energy: pairwise cost is not symmetric")

	// ErrNonZeroDiagonal indicates V(a,a) != 0.
	ErrNonZeroDiagonal = errors.New("energy: pairwise cost is non-zero on equal labels")

	// ErrNegativeCost indicates a negative pairwise cost.
	ErrNegativeCost = errors.New("energy: pairwise cost is negative")

	// ErrNotMonotone indicates V decreasing in label distance.
	ErrNotMonotone = errors.New("energy: pairwise cost is not monotone in label distance")
)

// Params holds the smoothness scale L and spread S.
type Params struct {
	L float64 `yaml:"l"`
	S float64 `yaml:"s"`
}

// Validate returns ErrInvalidParams unless both L and S are positive and finite.
func (p Params) Validate() error {
	if !(p.L > 0) || math.IsInf(p.L, 0) {
		return fmt.Errorf("%w: L=%g", ErrInvalidParams, p.L)
	}
	if !(p.S > 0) || math.IsInf(p.S, 0) {
		return fmt.Errorf("%w: S=%g", ErrInvalidParams, p.S)
	}
	return nil
}

// PairwiseFunc returns the smoothness cost of two neighbouring labels.
type PairwiseFunc func(a, b uint8) float64

// Data is the squared difference between a label and an observed intensity.
func Data(label, observed uint8) float64 {
	d := float64(label) - float64(observed)
	return d * d
}

// Smoothness evaluates L·ln(1 + (a−b)²/(2·S²)) directly, without a table.
func Smoothness(p Params, a, b uint8) float64 {
	d := float64(a) - float64(b)
	return p.L * math.Log1p(d*d/(2*p.S*p.S))
}

// Cauchy returns the PairwiseFunc for p.
func Cauchy(p Params) PairwiseFunc {
	return func(a, b uint8) float64 { return Smoothness(p, a, b) }
}
