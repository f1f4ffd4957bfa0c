package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a participant in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Index is the insertion position of the vertex, starting at 0.
	Index int

	// Label is a free-form display value (for example the participant name).
	Label string
}

// Edge represents one directed "wants" relation From→To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost attached to the edge; the matcher stores the desire rank.
	Weight int64

	// Label carries the destination as declared by the source participant.
	Label string

	// seq is the numeric part of ID; used for insertion ordering.
	seq uint64
}

// IsNil reports whether the receiver is nil; safe on typed-nil values.
func (e *Edge) IsNil() bool { return e == nil }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// VertexOption configures a vertex when it is first added.
type VertexOption func(*Vertex)

// WithVertexLabel sets the display label of a new vertex.
func WithVertexLabel(label string) VertexOption {
	return func(v *Vertex) { v.Label = label }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeLabel attaches a label to the new edge.
func WithEdgeLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// Graph is the directed in-memory graph.
//
// muVert protects vertices and order; muEdgeAdj protects edges and adjacencyList.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	order      []string           // vertex IDs in insertion order
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to][edgeID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty directed Graph.
// By default the Graph is unweighted and without multi-edges. Self-loops are
// never allowed.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// options reconstructs the construction flags; caller holds no locks.
func (g *Graph) options() []GraphOption {
	var opts []GraphOption
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}

	return opts
}
