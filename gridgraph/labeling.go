// SPDX-License-Identifier: MIT

package gridgraph

// Labeling is the mutable grid of labels under optimisation. It never
// shares its buffer with the Image it was initialised from.
type Labeling struct {
	Shape
	labels []uint8
}

// NewLabeling returns a Labeling initialised to the observed intensities.
func NewLabeling(im *Image) *Labeling {
	labels := make([]uint8, len(im.pix))
	copy(labels, im.pix)
	return &Labeling{Shape: im.Shape, labels: labels}
}

// LabelingFrom builds a Labeling from a rectangular [][]int of labels.
func LabelingFrom(values [][]int) (*Labeling, error) {
	s, err := shapeOf(values)
	if err != nil {
		return nil, err
	}
	labels, err := pack(s, values)
	if err != nil {
		return nil, err
	}
	return &Labeling{Shape: s, labels: labels}, nil
}

// At returns the label at (x,y).
func (l *Labeling) At(x, y int) uint8 {
	return l.labels[l.Index(x, y)]
}

// Label returns the label at row-major index idx.
func (l *Labeling) Label(idx int) uint8 {
	return l.labels[idx]
}

// Set assigns label to row-major index idx.
func (l *Labeling) Set(idx int, label uint8) {
	l.labels[idx] = label
}

// Clone returns a deep copy.
func (l *Labeling) Clone() *Labeling {
	labels := make([]uint8, len(l.labels))
	copy(labels, l.labels)
	return &Labeling{Shape: l.Shape, labels: labels}
}

// Equal reports whether both labelings have the same shape and labels.
func (l *Labeling) Equal(o *Labeling) bool {
	return l.Diff(o) == 0
}

// Diff counts pixels whose labels differ. Labelings of different shapes
// differ everywhere.
func (l *Labeling) Diff(o *Labeling) int {
	if l.Shape != o.Shape {
		return max(l.Len(), o.Len())
	}
	n := 0
	for i, v := range l.labels {
		if o.labels[i] != v {
			n++
		}
	}
	return n
}

// Rows returns a fresh [][]int copy of the labels.
func (l *Labeling) Rows() [][]int {
	return rows(l.Shape, l.labels)
}

// ToImage freezes the current labels into a new immutable Image.
func (l *Labeling) ToImage() *Image {
	pix := make([]uint8, len(l.labels))
	copy(pix, l.labels)
	return &Image{Shape: l.Shape, pix: pix}
}
