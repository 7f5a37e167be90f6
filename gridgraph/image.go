// SPDX-License-Identifier: MIT

package gridgraph

import (
	"image"
	"image/color"
)

// Image is an immutable grid of observed 8-bit intensities.
type Image struct {
	Shape
	pix []uint8
}

// NewImage constructs an Image from a non-empty, rectangular 2D slice of
// intensities in 0..255. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrValueOutOfRange.
// Algorithmic complexity: O(W×H) time and memory.
func NewImage(values [][]int) (*Image, error) {
	s, err := shapeOf(values)
	if err != nil {
		return nil, err
	}
	pix, err := pack(s, values)
	if err != nil {
		return nil, err
	}
	return &Image{Shape: s, pix: pix}, nil
}

// FromGray copies an *image.Gray into an Image.
func FromGray(g *image.Gray) (*Image, error) {
	b := g.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrEmptyGrid
	}
	s := Shape{Width: b.Dx(), Height: b.Dy()}
	pix := make([]uint8, s.Len())
	for y := 0; y < s.Height; y++ {
		off := g.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pix[y*s.Width:(y+1)*s.Width], g.Pix[off:off+s.Width])
	}
	return &Image{Shape: s, pix: pix}, nil
}

// At returns the intensity at (x,y).
func (im *Image) At(x, y int) uint8 {
	return im.pix[im.Index(x, y)]
}

// Value returns the intensity at row-major index idx.
func (im *Image) Value(idx int) uint8 {
	return im.pix[idx]
}

// Rows returns a fresh [][]int copy of the intensities.
func (im *Image) Rows() [][]int {
	return rows(im.Shape, im.pix)
}

// Gray renders the intensities as an *image.Gray.
func (im *Image) Gray() *image.Gray {
	return gray(im.Shape, im.pix)
}

func rows(s Shape, buf []uint8) [][]int {
	out := make([][]int, s.Height)
	for y := range out {
		out[y] = make([]int, s.Width)
		for x := range out[y] {
			out[y][x] = int(buf[s.Index(x, y)])
		}
	}
	return out
}

func gray(s Shape, buf []uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, s.Width, s.Height))
	for idx, v := range buf {
		x, y := s.Coordinate(idx)
		g.SetGray(x, y, color.Gray{Y: v})
	}
	return g
}
