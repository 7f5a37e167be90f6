// SPDX-License-Identifier: MIT

package expansion

import (
	"math/rand"

	"github.com/katalvlaran/mrfgrid/gridgraph"
)

// LabelPool hands out every label exactly once per pass, in an order
// shuffled afresh by Reset.
type LabelPool struct {
	rng   *rand.Rand
	order []uint8
	next  int
}

// NewLabelPool returns an exhausted pool; call Reset before drawing.
func NewLabelPool(r *rand.Rand) *LabelPool {
	return &LabelPool{rng: r, order: make([]uint8, gridgraph.Levels), next: gridgraph.Levels}
}

// Reset refills the pool with all labels in a new random order.
func (p *LabelPool) Reset() {
	for i, v := range p.rng.Perm(gridgraph.Levels) {
		p.order[i] = uint8(v)
	}
	p.next = 0
}

// Next draws the next label without replacement. ok is false once the
// pool is empty.
func (p *LabelPool) Next() (alpha uint8, ok bool) {
	if p.next >= len(p.order) {
		return 0, false
	}
	alpha = p.order[p.next]
	p.next++
	return alpha, true
}

// Remaining returns how many labels are left in this pass.
func (p *LabelPool) Remaining() int {
	return len(p.order) - p.next
}
