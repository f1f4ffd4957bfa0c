// Package bfs provides breadth-first search over a core.Graph.
//
// BFS explores vertices in increasing hop count from a start vertex and
// records the visit order and hop depth of every reached vertex. Edge weights
// are ignored: one edge is one hop.
//
// Distances returns the same depths as a slice indexed by core vertex Index,
// which is the form the cycle engine uses to prune extensions that cannot
// return to their start in the hops left: run on core.Graph.Reverse, it gives
// for every participant the fewest moves needed to reach the target.
//
// Options:
//   - WithContext     : cancellation, checked once per dequeued vertex
//   - WithMaxDepth    : stop expanding beyond a hop count (0 = unlimited)
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
