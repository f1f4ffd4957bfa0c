// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() returns outgoing edges in insertion order.
//   - NeighborIDs() returns unique successors ordered by vertex Index.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns all outgoing edges of id.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert read lock and muEdgeAdj read lock (in that order).
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Collect edges from adjacencyList[id] and sort by insertion sequence.
//
// Returned edges are live catalog pointers; treat them as read-only.
//
// Complexity: O(d log d) for d outgoing edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.IsNil() {
				continue
			}
			out = append(out, e)
		}
	}
	sortBySeq(out)

	return out, nil
}

// NeighborIDs returns the unique successors of id ordered by vertex Index.
// Parallel edges collapse into a single successor.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(k log k) for k unique successors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacencyList[id]))
	for to, edgeSet := range g.adjacencyList[id] {
		if len(edgeSet) > 0 {
			out = append(out, to)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return g.vertices[out[i]].Index < g.vertices[out[j]].Index
	})

	return out, nil
}

// ensureVertexBucket creates the top-level adjacency map for id.
// Must be called ONLY under muEdgeAdj write lock.
func ensureVertexBucket(g *Graph, id string) {
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjacency creates the nested bucket from→to.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	ensureVertexBucket(g, from)
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
