package cycle

// FindAll enumerates every cycle of length k among the matcher's records.
//
// Implementation:
//   - Stage 1: Validate k (ErrInvalidLength).
//   - Stage 2: For every start index p0 in ascending order, extend the path through
//     unique successors in ascending order, accepting only indexes greater than p0.
//     This keeps exactly the rotation that starts at the lowest index, so rotations
//     are never emitted twice and a swap (A,B) is emitted once as A<B.
//   - Stage 3: Prune successors whose back distance to p0 (a BFS over the
//     reversed graph, capped at k-1 hops) exceeds the hops still available.
//   - Stage 4: At depth k, accept the path when its last participant desires the
//     location of p0.
//
// Each Leg's Destination is the next participant's current location and Rank is
// the best slot naming it.
//
// Returns nil, nil when no cycle exists.
//
// Complexity: O(n·s^(k-1)) candidate checks, O(1) each.
func (m *Matcher) FindAll(k int, opts ...Option) ([]Cycle, error) {
	if !ValidLength(k) {
		return nil, invalidLength(k)
	}
	s := newSearch(m, k, opts)

	for p0 := range m.records {
		if err := s.opts.Ctx.Err(); err != nil {
			return nil, wrap("FindAll", err)
		}
		if len(m.succ[p0]) == 0 {
			continue
		}
		if err := s.aimAt(p0); err != nil {
			return nil, wrap("FindAll", err)
		}
		s.path = append(s.path[:0], p0)
		if err := s.extendGlobal(); err != nil {
			return nil, wrap("FindAll", err)
		}
	}

	return s.out, nil
}

// extendGlobal grows s.path by one canonical successor, or closes it at depth k.
func (s *search) extendGlobal() error {
	p0 := s.path[0]
	last := s.path[len(s.path)-1]

	if len(s.path) == s.k {
		if _, ok := s.m.rankTo(last, s.record(p0).LocationKey()); !ok {
			return nil
		}
		return s.emitGlobal()
	}

	for _, next := range s.m.succ[last] {
		// canonical rotation: every later position has a higher index than p0
		if next <= p0 || s.inPath(next) || s.hopeless(next) {
			continue
		}
		if err := s.tick(); err != nil {
			return err
		}
		s.path = append(s.path, next)
		err := s.extendGlobal()
		s.path = s.path[:len(s.path)-1]
		if err != nil {
			return err
		}
	}

	return nil
}

// emitGlobal converts the closed path into legs.
func (s *search) emitGlobal() error {
	legs := s.legs[:0]
	for i, idx := range s.path {
		next := s.record(s.path[(i+1)%s.k])
		rank, _ := s.m.rankTo(idx, next.LocationKey())
		legs = append(legs, Leg{
			Participant: s.record(idx),
			Destination: next.CurrentLocation,
			Rank:        rank,
		})
	}
	s.legs = legs[:0]

	return s.emit(legs)
}
