// File: view.go
// Role: Non-mutating graph views (reversal).
// Determinism:
//   - Preserves vertex IDs, vertex insertion order, edge IDs and edge order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// Reverse returns a new Graph with every edge flipped (To→From). Edge IDs,
// weights and labels are preserved, as are vertex IDs and insertion order, so
// Index values match the source graph.
//
// Complexity: O(V + E).
func (g *Graph) Reverse() *Graph {
	out := NewGraph(g.options()...)

	// Copy vertices in insertion order.
	g.muVert.RLock()
	for _, id := range g.order {
		v := g.vertices[id]
		out.vertices[id] = &Vertex{ID: v.ID, Index: len(out.order), Label: v.Label}
		out.order = append(out.order, id)
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	// Copy edges; IDs and sequence are preserved.
	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		ne := *e
		ne.From, ne.To = e.To, e.From
		out.edges[eid] = &ne
		ensureAdjacency(out, ne.From, ne.To)
		out.adjacencyList[ne.From][ne.To][eid] = struct{}{}
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
