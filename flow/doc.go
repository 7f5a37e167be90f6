// SPDX-License-Identifier: MIT

// Package flow implements an exact s–t minimum-cut oracle for capacitated
// graphs whose nodes are dense integer indices (typically pixels).
//
// A Graph has n ordinary nodes plus two implicit terminals. Each node i
// carries a pair of terminal capacities:
//
//	Source[i] : capacity of the arc source→i (paid when i ends on the sink side)
//	Sink[i]   : capacity of the arc i→sink   (paid when i ends on the source side)
//
// and Arcs lists directed non-terminal arcs u→v with non-negative capacity
// (paid when u is on the source side and v on the sink side).
//
// MinCut computes a maximum flow and returns the minimum cut it certifies.
// The source side is the set of nodes still reachable from the source in the
// residual network; it is the smallest of all minimum source sets, so ties
// always resolve toward the sink.
//
// The algorithms offered are:
//
//   - Dinic (default)
//
//   - Method: BFS level graph + blocking flow via DFS.
//
//   - Time:   O(V²·E) worst case; close to linear on image grids.
//
//   - Edmonds–Karp
//
//   - Method: BFS for shortest augmenting paths.
//
//   - Time:   O(V·E²).
//
// Both share one index-based residual network (O(V + E) memory) and agree
// on the cut value up to Epsilon.
//
// # Errors
//
//	EdgeError           - a negative capacity (beyond Epsilon) is present.
//	ErrNodeOutOfRange   - an arc or terminal references a missing node.
//	ErrUnknownAlgorithm - FlowOptions.Algorithm is not recognised.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is cancelled.
package flow
