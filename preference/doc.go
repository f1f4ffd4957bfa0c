// Package preference turns loosely typed tabular rows (a spreadsheet export, a
// YAML list, a database table) into validated, immutable participant records and
// serves read-only lookups over them.
//
// What:
//
//   - Row: header → cell mapping as delivered by an ingestion source.
//   - Record: one participant with a current location, up to three ranked
//     desired destinations, an optional tier and an optional contact.
//   - Repository: records in input row order plus an index from normalized
//     location to the participants posted there.
//
// Rows without a name or a current location are dropped at load time; they are
// counted (Dropped) but never reported as errors. Header names are matched
// after normalization, so "Entrância", "ENTRANCIA" and "Tier" address the same
// column.
//
// A Repository is never mutated after New returns; reloading data means
// building a new Repository and swapping the reference.
package preference
