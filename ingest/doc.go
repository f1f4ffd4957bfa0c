// Package ingest loads participant rows from files and keeps the current
// repository snapshot.
//
// Sources read a whole dataset per call: CSV sheet exports, YAML lists and
// SQLite tables are supported, selected by Open from an explicit format or the
// file extension. A Store turns rows into an immutable snapshot (repository plus
// prebuilt matcher) and swaps it atomically on Reload, so in-flight queries keep
// the snapshot they started with. Watch and WatchFile drive Reload from a ticker
// or from file-system events.
package ingest
