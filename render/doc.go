// Package render turns cycles into the flat, positional records consumed by
// presentation layers and writes them in several formats.
//
// A cycle of length k flattens to keys suffixed with the position:
//
//	ParticipantName@0, CurrentLocation@0, ChosenDestination@0, Tier@0, Rank@0,
//	ParticipantName@1, ...
//
// Encode writes a batch of cycles as JSON, YAML, CSV or an aligned text table.
// Cycles of different lengths may be mixed; CSV then uses the widest header and
// leaves missing positions blank.
package render
