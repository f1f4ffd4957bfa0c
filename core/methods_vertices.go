// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj.
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, allocate the Vertex
//     with the next insertion Index and apply opts.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Adding an existing vertex is a no-op: options are ignored and Index is kept.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}

	v := &Vertex{ID: id, Index: len(g.order)}
	for _, opt := range opts {
		opt(v)
	}
	g.vertices[id] = v
	g.order = append(g.order, id)

	g.muEdgeAdj.Lock()
	ensureVertexBucket(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// Index returns the insertion position of the vertex and whether it exists.
// Complexity: O(1).
func (g *Graph) Index(id string) (int, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return -1, false
	}

	return v.Index, true
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a fresh copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}
