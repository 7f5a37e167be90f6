// SPDX-License-Identifier: MIT

package gridgraph

// Regions finds all 4-connected components of equal label.
// Returns a slice of components; each component is a slice of row-major
// indices in BFS order, components ordered by their first pixel.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (l *Labeling) Regions() [][]int {
	seen := make([]bool, l.Len())
	var comps [][]int
	nbrs := make([]int, 0, 4)

	for i0 := range l.labels {
		if seen[i0] {
			continue
		}
		want := l.labels[i0]
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			nbrs = l.Neighbors(nbrs[:0], u)
			for _, v := range nbrs {
				if !seen[v] && l.labels[v] == want {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
