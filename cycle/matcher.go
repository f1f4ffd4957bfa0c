package cycle

import (
	"fmt"

	"github.com/logindomarcio/permuta-magis-v3/core"
	"github.com/logindomarcio/permuta-magis-v3/preference"
)

// hop is one outgoing desire slot of a participant: it reaches the record at
// index `to` through the declared destination `label` with the given rank.
type hop struct {
	to    int
	rank  int
	label string
}

// Matcher answers cycle queries against one repository snapshot.
// It is immutable after NewMatcher and safe for concurrent queries.
type Matcher struct {
	repo    *preference.Repository
	records []preference.Record
	graph   *core.Graph
	reverse *core.Graph // graph with every edge flipped, for back distances

	succ [][]int // unique successors per record, ascending index
	hops [][]hop // desire slots per record, rank order then row order
	best []map[string]int
}

// NewMatcher builds the wants graph of repo and the lookup tables used by the
// searches. A nil repository yields a Matcher that finds nothing.
//
// Complexity: O(n·d·m + E log E).
func NewMatcher(repo *preference.Repository) (*Matcher, error) {
	g, err := BuildGraph(repo)
	if err != nil {
		return nil, err
	}
	m := &Matcher{
		repo:    repo,
		records: repo.All(),
		graph:   g,
		reverse: g.Reverse(),
	}
	n := len(m.records)
	m.succ = make([][]int, n)
	m.hops = make([][]hop, n)
	m.best = make([]map[string]int, n)

	for i, r := range m.records {
		id := VertexID(r)

		ids, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("cycle: NewMatcher: %w", err)
		}
		m.succ[i] = make([]int, 0, len(ids))
		for _, to := range ids {
			idx, _ := g.Index(to)
			m.succ[i] = append(m.succ[i], idx)
		}

		edges, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("cycle: NewMatcher: %w", err)
		}
		m.hops[i] = make([]hop, 0, len(edges))
		for _, e := range edges {
			idx, _ := g.Index(e.To)
			m.hops[i] = append(m.hops[i], hop{to: idx, rank: int(e.Weight), label: e.Label})
		}

		m.best[i] = make(map[string]int, len(r.Desires))
		for _, d := range r.Desires {
			if _, seen := m.best[i][d.Key()]; !seen {
				m.best[i][d.Key()] = d.Rank
			}
		}
	}

	return m, nil
}

// Graph returns the wants graph backing the matcher.
// Treat it as read-only.
func (m *Matcher) Graph() *core.Graph { return m.graph }

// Repository returns the snapshot the matcher was built from.
func (m *Matcher) Repository() *preference.Repository { return m.repo }

// rankTo returns the best rank with which record i desires the location key.
func (m *Matcher) rankTo(i int, key string) (int, bool) {
	r, ok := m.best[i][key]
	return r, ok
}

// FindAll enumerates every cycle of length k in repo. See Matcher.FindAll.
func FindAll(repo *preference.Repository, k int, opts ...Option) ([]Cycle, error) {
	if !ValidLength(k) {
		return nil, invalidLength(k)
	}
	m, err := NewMatcher(repo)
	if err != nil {
		return nil, err
	}

	return m.FindAll(k, opts...)
}

// FindFor enumerates the cycles of length k anchored at anchorLocation with the
// caller-supplied desires. See Matcher.FindFor.
func FindFor(repo *preference.Repository, anchorLocation string, desires []string, k int, opts ...Option) ([]Cycle, error) {
	if !ValidLength(k) {
		return nil, invalidLength(k)
	}
	m, err := NewMatcher(repo)
	if err != nil {
		return nil, err
	}

	return m.FindFor(anchorLocation, desires, k, opts...)
}
