// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrValueOutOfRange indicates an intensity or label outside 0..255.
	ErrValueOutOfRange = errors.New("gridgraph: value out of range 0..255")
	// ErrShapeMismatch indicates two grids with different dimensions.
	ErrShapeMismatch = errors.New("gridgraph: grid shapes differ")
)

// Levels is the number of distinct intensities and labels (0..255).
const Levels = 256

// offsets4 lists the orthogonal neighbour offsets: left, up, right, down.
var offsets4 = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Pair is an undirected neighbour edge between two row-major pixel indices.
// P always precedes Q in row-major order.
type Pair struct {
	P, Q int
}
