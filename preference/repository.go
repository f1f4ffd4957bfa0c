package preference

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/logindomarcio/permuta-magis-v3/normalize"
)

// Repository is an immutable, read-only view over validated participant records.
// A nil *Repository behaves as an empty one. Safe for concurrent readers.
type Repository struct {
	records    []Record
	byLocation map[string][]int // normalized location → indexes into records
	locations  []string         // distinct locations, first-seen order
	dropped    int
}

// New validates rows and builds a Repository.
//
// Steps:
//  1. Resolve each row's headers to fields (aliases, accent/case-insensitive).
//  2. Trim every value; blank cells become "no value".
//  3. Drop rows with no Name or no CurrentLocation (counted in Dropped).
//  4. Normalize the location and every desire once, and index by location.
//
// New never fails: malformed rows are data, not errors.
//
// Complexity: O(R·C) for R rows with C cells.
func New(rows []Row) *Repository {
	repo := &Repository{
		records:    make([]Record, 0, len(rows)),
		byLocation: make(map[string][]int),
	}
	for pos, row := range rows {
		rec, ok := parseRow(pos, row)
		if !ok {
			repo.dropped++
			continue
		}
		idx := len(repo.records)
		repo.records = append(repo.records, rec)
		if _, seen := repo.byLocation[rec.locKey]; !seen {
			repo.locations = append(repo.locations, rec.CurrentLocation)
		}
		repo.byLocation[rec.locKey] = append(repo.byLocation[rec.locKey], idx)
	}

	return repo
}

// parseRow turns a row into a Record; ok is false for malformed rows.
func parseRow(pos int, row Row) (Record, bool) {
	headers := make([]string, 0, len(row))
	for h := range row {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	var cells [FieldContact + 1]string
	for _, header := range headers {
		f := FieldOf(header)
		if f == FieldUnknown {
			continue
		}
		value := strings.TrimSpace(row[header])
		if value == "" || cells[f] != "" {
			// first non-blank spelling of a column wins, headers in byte order
			continue
		}
		cells[f] = value
	}

	rec := Record{
		ID:              pos,
		Name:            cells[FieldName],
		CurrentLocation: cells[FieldCurrentLocation],
		Tier:            cells[FieldTier],
		Contact:         cells[FieldContact],
		locKey:          normalize.String(cells[FieldCurrentLocation]),
	}
	if rec.Name == "" || rec.locKey == "" {
		return Record{}, false
	}

	for slot, f := range []Field{FieldDesired1, FieldDesired2, FieldDesired3} {
		key := normalize.String(cells[f])
		if key == "" {
			continue
		}
		rec.Desires = append(rec.Desires, Desire{Location: cells[f], Rank: slot + 1, key: key})
	}
	rec.Key = uuid.NewSHA1(keyNamespace, []byte(normalize.String(rec.Name)+"\x00"+rec.locKey))

	return rec, true
}

// All returns every record in input row order. The slice is a copy.
// Complexity: O(n).
func (r *Repository) All() []Record {
	if r == nil {
		return nil
	}
	out := make([]Record, len(r.records))
	copy(out, r.records)

	return out
}

// Len returns the number of valid records.
func (r *Repository) Len() int {
	if r == nil {
		return 0
	}

	return len(r.records)
}

// At returns the record at repository index i (0-based, row order among valid records).
func (r *Repository) At(i int) (Record, bool) {
	if r == nil || i < 0 || i >= len(r.records) {
		return Record{}, false
	}

	return r.records[i], true
}

// Dropped returns how many input rows were discarded as malformed.
func (r *Repository) Dropped() int {
	if r == nil {
		return 0
	}

	return r.dropped
}

// FindByLocation returns every record whose normalized current location equals
// the normalized loc, in row order. Zero, one or many records may match.
// Complexity: O(m) for m matches.
func (r *Repository) FindByLocation(loc string) []Record {
	idx := r.IndexesAt(loc)
	if len(idx) == 0 {
		return nil
	}
	out := make([]Record, len(idx))
	for i, j := range idx {
		out[i] = r.records[j]
	}

	return out
}

// IndexesAt returns the repository indexes of the records posted at loc, in
// row order. The slice is a copy.
func (r *Repository) IndexesAt(loc string) []int {
	if r == nil {
		return nil
	}
	idx := r.byLocation[normalize.String(loc)]
	if len(idx) == 0 {
		return nil
	}

	return append([]int(nil), idx...)
}

// Locations returns the distinct current locations in first-seen order, as
// declared by the first participant posted there.
func (r *Repository) Locations() []string {
	if r == nil {
		return nil
	}

	return append([]string(nil), r.locations...)
}

// FindByKey returns the record carrying key.
// Complexity: O(n).
func (r *Repository) FindByKey(key uuid.UUID) (Record, bool) {
	if r == nil {
		return Record{}, false
	}
	for _, rec := range r.records {
		if rec.Key == key {
			return rec, true
		}
	}

	return Record{}, false
}
