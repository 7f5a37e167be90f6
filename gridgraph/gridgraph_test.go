package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/mrfgrid/gridgraph"
)

//----------------------------------------------------------------------------//
// NewImage and Shape Tests
//----------------------------------------------------------------------------//

// TestNewImage_Errors verifies that NewImage rejects empty, ragged or out-of-range inputs.
func TestNewImage_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
		{"Negative", [][]int{{1, -1}}, gridgraph.ErrValueOutOfRange},
		{"TooBright", [][]int{{256}}, gridgraph.ErrValueOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewImage(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewImage(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewImage_DeepCopy checks that mutating the input after construction
// does not leak into the Image.
func TestNewImage_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 2, 3}, {4, 5, 6}}
	im, err := gridgraph.NewImage(grid)
	if err != nil {
		t.Fatalf("NewImage error: %v", err)
	}
	grid[0][0] = 200
	if got := im.At(0, 0); got != 1 {
		t.Errorf("At(0,0) = %d; want 1", got)
	}
	if im.Width != 3 || im.Height != 2 {
		t.Errorf("shape = %dx%d; want 3x2", im.Width, im.Height)
	}
	if got := im.At(2, 1); got != 6 {
		t.Errorf("At(2,1) = %d; want 6", got)
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	s := gridgraph.Shape{Width: 3, Height: 2}
	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !s.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if s.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestIndexCoordinateRoundTrip walks every cell of a 4×3 grid.
func TestIndexCoordinateRoundTrip(t *testing.T) {
	s := gridgraph.Shape{Width: 4, Height: 3}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			gx, gy := s.Coordinate(s.Index(x, y))
			if gx != x || gy != y {
				t.Errorf("Coordinate(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Neighbourhood Tests
//----------------------------------------------------------------------------//

// TestNeighbors checks corner, border and interior pixels of a 3×3 grid.
//
//	0 1 2
//	3 4 5
//	6 7 8
func TestNeighbors(t *testing.T) {
	s := gridgraph.Shape{Width: 3, Height: 3}
	cases := []struct {
		idx  int
		want []int
	}{
		{0, []int{1, 3}},
		{1, []int{0, 2, 4}},
		{4, []int{3, 1, 5, 7}},
		{8, []int{7, 5}},
	}
	for _, tc := range cases {
		got := s.Neighbors(nil, tc.idx)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Neighbors(%d) = %v; want %v", tc.idx, got, tc.want)
		}
	}
}

// TestEdges_CountAndUniqueness verifies each undirected pair appears once.
func TestEdges_CountAndUniqueness(t *testing.T) {
	shapes := []gridgraph.Shape{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {4, 3}}
	for _, s := range shapes {
		edges := s.Edges()
		if len(edges) != s.EdgeCount() {
			t.Errorf("%v: len(Edges) = %d; want %d", s, len(edges), s.EdgeCount())
		}
		seen := make(map[gridgraph.Pair]bool)
		for _, e := range edges {
			if e.P >= e.Q {
				t.Errorf("%v: pair %v not ordered", s, e)
			}
			if seen[e] {
				t.Errorf("%v: duplicate pair %v", s, e)
			}
			seen[e] = true
		}
	}
	if n := (gridgraph.Shape{Width: 1, Height: 1}).EdgeCount(); n != 0 {
		t.Errorf("1x1 EdgeCount = %d; want 0", n)
	}
}

//----------------------------------------------------------------------------//
// Labeling Tests
//----------------------------------------------------------------------------//

// TestLabeling_Independent ensures the Labeling never aliases the Image.
func TestLabeling_Independent(t *testing.T) {
	im, _ := gridgraph.NewImage([][]int{{10, 20}, {30, 40}})
	lab := gridgraph.NewLabeling(im)
	lab.Set(0, 99)
	if im.Value(0) != 10 {
		t.Errorf("image mutated through labeling: %d", im.Value(0))
	}
	if lab.Label(0) != 99 {
		t.Errorf("Label(0) = %d; want 99", lab.Label(0))
	}

	clone := lab.Clone()
	clone.Set(1, 0)
	if lab.Diff(clone) != 1 {
		t.Errorf("Diff = %d; want 1", lab.Diff(clone))
	}
	if lab.Equal(clone) {
		t.Error("Equal = true after mutation")
	}
}

// TestLabeling_ShapeMismatch covers Check and Diff across shapes.
func TestLabeling_ShapeMismatch(t *testing.T) {
	a, _ := gridgraph.LabelingFrom([][]int{{1, 2}})
	b, _ := gridgraph.LabelingFrom([][]int{{1}, {2}})
	if err := a.Shape.Check(b.Shape); !errors.Is(err, gridgraph.ErrShapeMismatch) {
		t.Errorf("Check error = %v; want ErrShapeMismatch", err)
	}
	if a.Diff(b) != 2 {
		t.Errorf("Diff across shapes = %d; want 2", a.Diff(b))
	}
}

// TestRegions groups equal labels into 4-connected components.
//
//	5 5 7
//	5 7 7
//	9 9 7
func TestRegions(t *testing.T) {
	lab, err := gridgraph.LabelingFrom([][]int{
		{5, 5, 7},
		{5, 7, 7},
		{9, 9, 7},
	})
	if err != nil {
		t.Fatalf("LabelingFrom error: %v", err)
	}
	comps := lab.Regions()
	if len(comps) != 3 {
		t.Fatalf("got %d regions; want 3", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1]), len(comps[2])}
	if !reflect.DeepEqual(sizes, []int{3, 4, 2}) {
		t.Errorf("region sizes = %v; want [3 4 2]", sizes)
	}
}

// TestGrayRoundTrip converts to image.Gray and back.
func TestGrayRoundTrip(t *testing.T) {
	im, _ := gridgraph.NewImage([][]int{{0, 128, 255}, {1, 2, 3}})
	back, err := gridgraph.FromGray(im.Gray())
	if err != nil {
		t.Fatalf("FromGray error: %v", err)
	}
	if !reflect.DeepEqual(back.Rows(), im.Rows()) {
		t.Errorf("round trip = %v; want %v", back.Rows(), im.Rows())
	}
}
