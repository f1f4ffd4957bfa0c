// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new directed edge from→to with the given weight.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex (vertices created on demand keep insertion order).
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Generate eid atomically, build Edge, apply opts.
//  5. Store in g.edges and link adjacency.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 4) Build the edge
	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{ID: formatEdgeID(seq), From: from, To: to, Weight: weight, seq: seq}
	for _, opt := range opts {
		opt(e)
	}

	// 5) Store and link adjacency
	g.edges[e.ID] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][e.ID] = struct{}{}

	return e.ID, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns the number of edges, counting parallel edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// formatEdgeID renders "e<seq>" without fmt.
func formatEdgeID(seq uint64) string {
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}

// sortBySeq orders edges by creation sequence.
func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
