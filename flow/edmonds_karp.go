// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"math"
)

// edmondsKarp computes the maximum flow on r in place by repeatedly
// augmenting along BFS-shortest paths.
//
// Steps:
//  1. Check for cancellation.
//  2. BFS from the source recording the arc used to reach every node.
//  3. If the sink was not reached, stop.
//  4. Walk back from the sink to find the bottleneck, then augment.
//
// Complexity: O(V·E²)
// Memory:     O(V)
func edmondsKarp(ctx context.Context, r *residual, eps float64) (float64, error) {
	via := make([]int, r.nodes)
	queue := make([]int, 0, r.nodes)
	var maxFlow float64

	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}

		for i := range via {
			via[i] = -1
		}
		queue = append(queue[:0], r.s)
		found := false
		for qi := 0; qi < len(queue) && !found; qi++ {
			u := queue[qi]
			for e := r.head[u]; e >= 0; e = r.next[e] {
				v := r.to[e]
				if v == r.s || via[v] >= 0 || r.cap[e] <= eps {
					continue
				}
				via[v] = e
				if v == r.t {
					found = true
					break
				}
				queue = append(queue, v)
			}
		}
		if !found {
			return maxFlow, nil
		}

		bottleneck := math.Inf(1)
		for v := r.t; v != r.s; v = r.to[via[v]^1] {
			bottleneck = math.Min(bottleneck, r.cap[via[v]])
		}
		for v := r.t; v != r.s; v = r.to[via[v]^1] {
			e := via[v]
			r.cap[e] -= bottleneck
			r.cap[e^1] += bottleneck
		}
		maxFlow += bottleneck
	}
}
