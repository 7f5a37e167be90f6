// SPDX-License-Identifier: MIT

package gridgraph

import "fmt"

// Shape holds grid dimensions and the index arithmetic shared by Image
// and Labeling.
type Shape struct {
	Width, Height int
}

// Len returns the number of pixels.
func (s Shape) Len() int {
	return s.Width * s.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (s Shape) InBounds(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (s Shape) Index(x, y int) int {
	return y*s.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (s Shape) Coordinate(idx int) (x, y int) {
	return idx % s.Width, idx / s.Width
}

// Neighbors appends the row-major indices of the orthogonal neighbours of idx
// to dst and returns the extended slice. Order is left, up, right, down;
// missing neighbours on the border are skipped.
func (s Shape) Neighbors(dst []int, idx int) []int {
	x, y := s.Coordinate(idx)
	for _, d := range offsets4 {
		nx, ny := x+d[0], y+d[1]
		if s.InBounds(nx, ny) {
			dst = append(dst, s.Index(nx, ny))
		}
	}
	return dst
}

// EdgeCount returns the number of undirected 4-neighbour pairs.
func (s Shape) EdgeCount() int {
	if s.Width == 0 || s.Height == 0 {
		return 0
	}
	return (s.Width-1)*s.Height + s.Width*(s.Height-1)
}

// Edges returns every undirected 4-neighbour pair exactly once, in row-major
// order of P, right neighbour before down neighbour.
// Complexity: O(W×H) time and memory.
func (s Shape) Edges() []Pair {
	pairs := make([]Pair, 0, s.EdgeCount())
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			p := s.Index(x, y)
			if x+1 < s.Width {
				pairs = append(pairs, Pair{P: p, Q: p + 1})
			}
			if y+1 < s.Height {
				pairs = append(pairs, Pair{P: p, Q: p + s.Width})
			}
		}
	}
	return pairs
}

// Check returns ErrShapeMismatch (wrapped with both shapes) unless s == o.
func (s Shape) Check(o Shape) error {
	if s != o {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, s.Width, s.Height, o.Width, o.Height)
	}
	return nil
}

// shapeOf validates a rectangular [][]int and returns its Shape.
func shapeOf(values [][]int) (Shape, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return Shape{}, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return Shape{}, ErrNonRectangular
		}
	}
	return Shape{Width: w, Height: h}, nil
}

// pack copies a validated [][]int into a flat row-major uint8 buffer.
func pack(s Shape, values [][]int) ([]uint8, error) {
	buf := make([]uint8, s.Len())
	for y, row := range values {
		for x, v := range row {
			if v < 0 || v >= Levels {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrValueOutOfRange, v, x, y)
			}
			buf[s.Index(x, y)] = uint8(v)
		}
	}
	return buf, nil
}
