// SPDX-License-Identifier: MIT

package flow

// residual is an index-based residual network. Arcs are stored in pairs:
// arc e and its reverse e^1. Node n is the source, n+1 the sink.
type residual struct {
	nodes int
	s, t  int
	head  []int // head[u] = first arc out of u, or -1
	next  []int // next[e] = next arc out of the same tail, or -1
	to    []int
	cap   []float64
}

// buildResidual translates g into a residual network, dropping every
// capacity ≤ eps. g must already be validated.
//
// Steps:
//  1. Allocate n+2 node heads (O(V)).
//  2. For each node add source→i and i→sink when positive (O(V)).
//  3. For each non-loop arc add u→v with a zero-capacity reverse (O(E)).
//
// Complexity:
//
//	Time:   O(V + E).
//	Memory: O(V + E).
func buildResidual(g *Graph, eps float64) *residual {
	n := g.Len()
	r := &residual{
		nodes: n + 2,
		s:     n,
		t:     n + 1,
		head:  make([]int, n+2),
	}
	for i := range r.head {
		r.head[i] = -1
	}
	hint := 2 * (2*n + len(g.Arcs))
	r.next = make([]int, 0, hint)
	r.to = make([]int, 0, hint)
	r.cap = make([]float64, 0, hint)

	for i := 0; i < n; i++ {
		if g.Source[i] > eps {
			r.addArc(r.s, i, g.Source[i])
		}
		if g.Sink[i] > eps {
			r.addArc(i, r.t, g.Sink[i])
		}
	}
	for _, a := range g.Arcs {
		if a.From == a.To || a.Cap <= eps {
			continue
		}
		r.addArc(a.From, a.To, a.Cap)
	}
	return r
}

// addArc inserts u→v with capacity c and its zero-capacity reverse.
func (r *residual) addArc(u, v int, c float64) {
	r.push(u, v, c)
	r.push(v, u, 0)
}

func (r *residual) push(u, v int, c float64) {
	e := len(r.to)
	r.to = append(r.to, v)
	r.cap = append(r.cap, c)
	r.next = append(r.next, r.head[u])
	r.head[u] = e
}

// reachable marks every node reachable from the source through arcs with
// residual capacity > eps. Only ordinary nodes are returned.
func (r *residual) reachable(eps float64) []bool {
	seen := make([]bool, r.nodes)
	queue := make([]int, 0, r.nodes)
	queue = append(queue, r.s)
	seen[r.s] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for e := r.head[u]; e >= 0; e = r.next[e] {
			v := r.to[e]
			if !seen[v] && r.cap[e] > eps {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return seen[:r.nodes-2]
}
