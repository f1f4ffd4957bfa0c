package cycle

import (
	"strings"

	"github.com/logindomarcio/permuta-magis-v3/normalize"
)

// FindFor enumerates the cycles of length k that start at the participant(s)
// posted at anchorLocation, using desires as that participant's wish list
// instead of whatever the repository stores for them.
//
// Implementation:
//   - Stage 1: Validate k (ErrInvalidLength); resolve anchors with FindByLocation.
//     No anchor, or no non-blank desire, means no cycles.
//   - Stage 2: First hop: for every desire (rank = position+1), every record posted
//     there other than the anchor, in row order.
//   - Stage 3: Middle hops follow the previous participant's desire slots (rank
//     order, then row order). Each slot is a separate branch, so one person reached
//     through two slots produces two cycles with different destinations.
//   - Stage 4: Candidates that cannot get back to the anchor within the hops
//     left are skipped (see FindAll).
//   - Stage 5: At depth k, the last participant must desire the anchor location.
//
// All participants in a cycle are distinct records. When several records share
// the anchor location, each of them is tried as position 0, in row order.
//
// Returns nil, nil when nothing matches.
//
// Complexity: O(|anchors|·|desires|·m·s^(k-2)).
func (m *Matcher) FindFor(anchorLocation string, desires []string, k int, opts ...Option) ([]Cycle, error) {
	if !ValidLength(k) {
		return nil, invalidLength(k)
	}
	anchorKey := normalize.String(anchorLocation)
	if anchorKey == "" {
		return nil, nil
	}
	anchors := m.repo.IndexesAt(anchorLocation)
	if len(anchors) == 0 {
		return nil, nil
	}

	s := newSearch(m, k, opts)
	for _, a := range anchors {
		if err := s.opts.Ctx.Err(); err != nil {
			return nil, wrap("FindFor", err)
		}
		if err := s.aimAt(a); err != nil {
			return nil, wrap("FindFor", err)
		}
		if err := s.firstHop(a, anchorKey, desires); err != nil {
			return nil, wrap("FindFor", err)
		}
	}

	return s.out, nil
}

// firstHop expands the anchor a through the caller-supplied desires.
func (s *search) firstHop(a int, anchorKey string, desires []string) error {
	for slot, d := range desires {
		d = strings.TrimSpace(d)
		if normalize.String(d) == "" {
			continue
		}
		for _, b := range s.m.repo.IndexesAt(d) {
			s.path = append(s.path[:0], a)
			if b == a || s.hopeless(b) {
				continue
			}
			if err := s.tick(); err != nil {
				return err
			}
			s.path = append(s.path, b)
			s.legs = append(s.legs[:0], Leg{Participant: s.record(a), Destination: d, Rank: slot + 1})
			if err := s.extendAnchored(anchorKey); err != nil {
				return err
			}
		}
	}

	return nil
}

// extendAnchored follows desire slots from the last participant, or closes the
// cycle back to the anchor at depth k.
func (s *search) extendAnchored(anchorKey string) error {
	last := s.path[len(s.path)-1]

	if len(s.path) == s.k {
		rank, ok := s.m.rankTo(last, anchorKey)
		if !ok {
			return nil
		}
		closing := Leg{
			Participant: s.record(last),
			Destination: s.record(s.path[0]).CurrentLocation,
			Rank:        rank,
		}
		legs := append(s.legs, closing)
		err := s.emit(legs)
		s.legs = legs[:len(legs)-1]

		return err
	}

	for _, h := range s.m.hops[last] {
		if s.inPath(h.to) || s.hopeless(h.to) {
			continue
		}
		if err := s.tick(); err != nil {
			return err
		}
		s.path = append(s.path, h.to)
		s.legs = append(s.legs, Leg{Participant: s.record(last), Destination: h.label, Rank: h.rank})
		err := s.extendAnchored(anchorKey)
		s.path = s.path[:len(s.path)-1]
		s.legs = s.legs[:len(s.legs)-1]
		if err != nil {
			return err
		}
	}

	return nil
}
