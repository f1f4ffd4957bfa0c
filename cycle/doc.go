// Package cycle implements the exchange matcher: it enumerates closed relocation
// cycles of length 2 (direct swap), 3 (triangulation) and 4 (quadrangulation)
// over the "wants to move to the location of" relation of a preference.Repository.
//
// What:
//
//   - FindAll: global enumeration. Every valid cycle is emitted exactly once, in
//     its canonical rotation (the one starting at the lowest repository index);
//     a direct swap is emitted once with the lower-index participant first.
//   - FindFor: anchored enumeration on behalf of one participant, identified by
//     location, whose desired destinations are supplied by the caller. The anchor
//     is always position 0 and different desire slots reaching the same people
//     are reported separately.
//   - Matcher: caches the wants graph of one repository snapshot for repeated
//     queries; safe for concurrent use.
//
// Matching rules:
//
//   - Participant i reaches participant j iff the normalized current location
//     of j is one of the normalized desires of i (both directions are required
//     for a swap).
//   - No participant appears twice in a cycle.
//   - Locations are compared with normalize.String, so "TJSP", " tjsp" and
//     "Tjsp" are the same place.
//
// Errors:
//
//   - ErrInvalidLength   k is not 2, 3 or 4 (a caller bug).
//   - ErrBudgetExceeded  WithMaxCandidates limit reached.
//   - context errors     WithContext cancelled, wrapped.
//   - hook errors        returned by WithOnCycle, wrapped.
//
// A nil or empty repository, an unknown anchor or an empty desire list are
// normal outcomes and yield no cycles and no error.
//
// Complexity:
//
//   - Graph construction: O(n·d·m) for n records, d ≤ 3 desires and m records per location.
//   - FindAll: O(n·s^(k-1)) candidate checks for average out-degree s; worst case O(n^k).
//   - FindFor: O(|anchors|·|desires|·m·s^(k-2)).
//   - Both run a depth-capped bfs.Distances per start on the reversed graph and
//     skip every candidate that cannot get back within the hops left.
package cycle
