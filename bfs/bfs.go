package bfs

import (
	"fmt"

	"github.com/logindomarcio/permuta-magis-v3/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	head  int
	res   *Result
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}
	w.enqueue(startID, 0)

	return w.res, w.loop()
}

// Distances returns, indexed by vertex Index, the hop count from startID to
// every vertex of g, or -1 for vertices not reached (including those beyond
// WithMaxDepth).
//
// Complexity: O(V + E).
func Distances(g *core.Graph, startID string, opts ...Option) ([]int, error) {
	res, err := BFS(g, startID, opts...)
	if err != nil {
		return nil, err
	}
	dist := make([]int, g.VertexCount())
	for i := range dist {
		dist[i] = -1
	}
	for id, d := range res.Depth {
		if idx, ok := g.Index(id); ok {
			dist[idx] = d
		}
	}

	return dist, nil
}

// enqueue records id at depth d and appends it to the queue.
func (w *walker) enqueue(id string, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.id)
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues every unseen successor of item.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, item.depth+1)
		}
	}

	return nil
}
