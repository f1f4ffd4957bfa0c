// Package core provides the thread-safe, in-memory directed graph that backs the
// exchange matcher: every vertex is a participant and every edge is one desire
// slot pointing at a participant currently posted where the slot wants to go.
//
// The Graph G = (V,E) supports:
//
//   - Directed edges only ("wants to move to the location of").
//   - Weighted edges (WithWeighted); the matcher stores the desire rank (1..3).
//   - Parallel edges (WithMultiEdges); two desire slots naming the same place
//     yield two edges between the same participants.
//   - No self-loops; a participant never swaps with themself.
//   - Edge labels (WithEdgeLabel); the destination exactly as it was declared.
//   - Constant-time edge existence via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Monotonic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Determinism:
//
//   - Vertices() returns IDs in insertion order; Index(id) exposes that position.
//   - Edges() and Neighbors() return edges in insertion order.
//   - NeighborIDs() returns unique successors ordered by vertex Index.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Complexity:
//
//   - AddVertex, AddEdge, HasEdge: O(1) amortized.
//   - Neighbors: O(d log d); NeighborIDs: O(d + k log k).
//   - Reverse: O(V + E).
package core
