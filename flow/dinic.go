// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"math"
)

// dinic computes the maximum flow on r in place using Dinic's algorithm.
//
// Steps:
//  1. Repeat until the sink is unreachable:
//     a. Check for cancellation (O(1)).
//     b. BFS from the source to assign levels over arcs with capacity > eps (O(V + E)).
//     c. If the sink has no level, stop.
//     d. Reset per-node arc iterators and push blocking flow by DFS.
//
// Complexity:
//
//	Time:   O(V²·E) in general; near-linear phases on grid graphs.
//	Memory: O(V) for level and iterator slices plus recursion depth.
func dinic(ctx context.Context, r *residual, eps float64) (float64, error) {
	level := make([]int, r.nodes)
	iter := make([]int, r.nodes)
	queue := make([]int, 0, r.nodes)
	var maxFlow float64

	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}

		// BFS to compute levels
		for i := range level {
			level[i] = -1
		}
		level[r.s] = 0
		queue = append(queue[:0], r.s)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for e := r.head[u]; e >= 0; e = r.next[e] {
				v := r.to[e]
				if r.cap[e] > eps && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[r.t] < 0 {
			return maxFlow, nil
		}

		copy(iter, r.head)
		for {
			pushed := r.dinicPush(level, iter, r.s, math.Inf(1), eps)
			if pushed <= eps {
				break
			}
			maxFlow += pushed
		}
	}
}

// dinicPush recursively pushes flow along the level graph from u and
// returns the amount that reached the sink.
func (r *residual) dinicPush(level, iter []int, u int, available, eps float64) float64 {
	if u == r.t {
		return available
	}
	for ; iter[u] >= 0; iter[u] = r.next[iter[u]] {
		e := iter[u]
		v := r.to[e]
		if r.cap[e] <= eps || level[v] != level[u]+1 {
			continue
		}
		send := math.Min(available, r.cap[e])
		pushed := r.dinicPush(level, iter, v, send, eps)
		if pushed > 0 {
			r.cap[e] -= pushed
			r.cap[e^1] += pushed
			return pushed
		}
	}
	return 0
}
