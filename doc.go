// Package permuta finds relocation exchange cycles: groups of participants
// (judges posted at state courts) who can all move at once because each one
// wants the court of the next.
//
// The module is organized as small packages, bottom-up:
//
//	normalize/    accent-, case- and blank-insensitive comparison of free text
//	preference/   validated participant records and the read-only Repository
//	core/         thread-safe directed multigraph used for the "wants" relation
//	bfs/          hop distances used to prune the cycle search
//	cycle/        the matching engine: global and anchored 2-, 3- and 4-cycles
//	render/       positional flat records and JSON/YAML/CSV/table output
//	geo/          court coordinates and GeoJSON routes for cycles
//	ingest/       CSV/YAML/SQLite sources and an atomically swapped snapshot Store
//	cmd/permuta   command-line front end
//
// Quick start:
//
//	repo := preference.New([]preference.Row{
//		{"Nome": "Ana", "Origem": "TJSP", "Destino 1": "TJRJ"},
//		{"Nome": "Bia", "Origem": "TJRJ", "Destino 1": "TJSP"},
//	})
//	swaps, err := cycle.FindAll(repo, 2)
//
// A cycle is reported once, in the rotation that starts at the participant
// appearing first in the source. Anchored searches (cycle.FindFor) start from a
// given court with an explicit wish list and keep one result per matching wish.
package permuta
