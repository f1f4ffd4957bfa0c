package cycle

import (
	"errors"
	"fmt"

	"github.com/logindomarcio/permuta-magis-v3/bfs"
	"github.com/logindomarcio/permuta-magis-v3/preference"
)

// cancelCheckEvery is how many candidates are examined between context checks.
const cancelCheckEvery = 256

// search carries the mutable state of one query. It is never shared.
type search struct {
	m        *Matcher
	opts     Options
	k        int
	path     []int // repository indexes of the partial cycle
	legs     []Leg // legs decided so far (anchored mode)
	back     []int // hops from each record to the current start, -1 if too far
	out      []Cycle
	examined int
}

func newSearch(m *Matcher, k int, opts []Option) *search {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &search{
		m:    m,
		opts: o,
		k:    k,
		path: make([]int, 0, k),
		legs: make([]Leg, 0, k),
	}
}

// tick accounts for one examined candidate and enforces budget and cancellation.
func (s *search) tick() error {
	s.examined++
	if s.opts.MaxCandidates > 0 && s.examined > s.opts.MaxCandidates {
		return fmt.Errorf("%w: more than %d candidates", ErrBudgetExceeded, s.opts.MaxCandidates)
	}
	if s.examined%cancelCheckEvery == 0 {
		return s.opts.Ctx.Err()
	}

	return nil
}

// wrap names the query op in err. Errors built on this package's sentinels
// already say "cycle:" and pass through unchanged.
func wrap(op string, err error) error {
	if errors.Is(err, ErrBudgetExceeded) {
		return err
	}

	return fmt.Errorf("cycle: %s: %w", op, err)
}

// aimAt computes back distances towards the record at index target. Only
// distances below k matter, so the walk stops at depth k-1.
func (s *search) aimAt(target int) error {
	back, err := bfs.Distances(s.m.reverse, VertexID(s.record(target)),
		bfs.WithMaxDepth(s.k-1), bfs.WithContext(s.opts.Ctx))
	if err != nil {
		return fmt.Errorf("back distances: %w", err)
	}
	s.back = back

	return nil
}

// hopeless reports whether next, appended to the current path, can no longer
// close a cycle of length k: it needs more moves home than are left.
func (s *search) hopeless(next int) bool {
	d := s.back[next]
	return d < 0 || d > s.k-len(s.path)
}

// inPath reports whether repository index i is already part of the partial cycle.
// Paths hold at most four entries, so a scan beats a set.
func (s *search) inPath(i int) bool {
	for _, p := range s.path {
		if p == i {
			return true
		}
	}

	return false
}

// record returns the participant at repository index i.
func (s *search) record(i int) preference.Record { return s.m.records[i] }

// emit copies legs into a new Cycle, runs the hook and stores the result.
func (s *search) emit(legs []Leg) error {
	c := Cycle{Legs: append([]Leg(nil), legs...)}
	if s.opts.OnCycle != nil {
		if err := s.opts.OnCycle(c); err != nil {
			return err
		}
	}
	s.out = append(s.out, c)

	return nil
}
