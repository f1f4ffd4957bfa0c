package cycle

import (
	"fmt"
	"strconv"

	"github.com/logindomarcio/permuta-magis-v3/core"
	"github.com/logindomarcio/permuta-magis-v3/preference"
)

// VertexID returns the graph vertex identifier of a record.
func VertexID(r preference.Record) string { return strconv.Itoa(r.ID) }

// BuildGraph materializes the wants relation of repo as a directed multigraph.
//
// Steps:
//  1. Add one vertex per record in repository order (vertex Index == repository index).
//  2. For every record, for every desire slot in rank order, add one edge to each
//     record posted at that destination (row order), weighted by the slot rank and
//     labelled with the destination as declared.
//
// Self-edges are never added: a participant wanting their own location is not an exchange.
//
// Complexity: O(n·d·m).
func BuildGraph(repo *preference.Repository) (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())

	records := repo.All()
	// 1) vertices first, so that insertion order is repository order
	for _, r := range records {
		if err := g.AddVertex(VertexID(r), core.WithVertexLabel(r.Name)); err != nil {
			return nil, fmt.Errorf("cycle: BuildGraph: %w", err)
		}
	}

	// 2) one edge per (desire slot, posted record)
	for i, r := range records {
		from := VertexID(r)
		for _, d := range r.Desires {
			for _, j := range repo.IndexesAt(d.Location) {
				if j == i {
					continue
				}
				to := VertexID(records[j])
				if _, err := g.AddEdge(from, to, int64(d.Rank), core.WithEdgeLabel(d.Location)); err != nil {
					return nil, fmt.Errorf("cycle: BuildGraph: edge %s→%s: %w", from, to, err)
				}
			}
		}
	}

	return g, nil
}
