// Package normalize canonicalizes free-text location tokens so that values typed
// by hand into a spreadsheet compare equal regardless of case, accents or
// surrounding whitespace.
//
// What:
//
//   - String: Unicode canonical decomposition (NFD), removal of every combining
//     mark (category Mn), trimming of leading/trailing whitespace and lowercasing.
//   - Value: the same canonical form for loosely typed input; anything that is
//     not textual (nil, numbers, structs) normalizes to the empty string.
//   - Equal: comparison of two strings under the canonical form.
//
// Guarantees:
//
//   - Idempotent: String(String(s)) == String(s) for every s.
//   - Locale-independent for Latin diacritics ("São Paulo" → "sao paulo").
//   - Never fails and never panics.
//
// Complexity:
//
//   - String: Time O(len(s)), Memory O(len(s)).
package normalize
