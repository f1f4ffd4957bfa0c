package preference

import (
	"errors"

	"github.com/google/uuid"

	"github.com/logindomarcio/permuta-magis-v3/normalize"
)

// MaxDesires is the number of ranked destination slots per participant.
const MaxDesires = 3

// ErrMissingColumn indicates a tabular header lacks a required column
// (Name or CurrentLocation).
var ErrMissingColumn = errors.New("preference: required column missing")

// keyNamespace scopes the name-based record keys.
var keyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:permuta:participant"))

// Field is a recognized column of the preference table.
type Field int

const (
	// FieldUnknown marks a column the repository ignores.
	FieldUnknown Field = iota
	FieldName
	FieldCurrentLocation
	FieldDesired1
	FieldDesired2
	FieldDesired3
	FieldTier
	FieldContact
)

// String returns the canonical (English) column name.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldCurrentLocation:
		return "CurrentLocation"
	case FieldDesired1:
		return "Desired1"
	case FieldDesired2:
		return "Desired2"
	case FieldDesired3:
		return "Desired3"
	case FieldTier:
		return "Tier"
	case FieldContact:
		return "Contact"
	default:
		return "Unknown"
	}
}

// aliases maps normalized header spellings to fields.
var aliases = map[string]Field{
	"name":             FieldName,
	"nome":             FieldName,
	"currentlocation":  FieldCurrentLocation,
	"current location": FieldCurrentLocation,
	"origem":           FieldCurrentLocation,
	"desired1":         FieldDesired1,
	"desired 1":        FieldDesired1,
	"destino 1":        FieldDesired1,
	"destino1":         FieldDesired1,
	"desired2":         FieldDesired2,
	"desired 2":        FieldDesired2,
	"destino 2":        FieldDesired2,
	"destino2":         FieldDesired2,
	"desired3":         FieldDesired3,
	"desired 3":        FieldDesired3,
	"destino 3":        FieldDesired3,
	"destino3":         FieldDesired3,
	"tier":             FieldTier,
	"entrancia":        FieldTier,
	"contact":          FieldContact,
	"e-mail":           FieldContact,
	"email":            FieldContact,
}

// FieldOf resolves a header to a Field; unknown headers map to FieldUnknown.
func FieldOf(header string) Field {
	return aliases[normalize.String(header)]
}

// ParseHeader resolves every header of a tabular source.
// It fails with ErrMissingColumn when Name or CurrentLocation is absent.
func ParseHeader(header []string) ([]Field, error) {
	fields := make([]Field, len(header))
	var hasName, hasLoc bool
	for i, h := range header {
		fields[i] = FieldOf(h)
		switch fields[i] {
		case FieldName:
			hasName = true
		case FieldCurrentLocation:
			hasLoc = true
		}
	}
	if !hasName {
		return nil, &ColumnError{Field: FieldName}
	}
	if !hasLoc {
		return nil, &ColumnError{Field: FieldCurrentLocation}
	}

	return fields, nil
}

// ColumnError names the missing column; it matches ErrMissingColumn with errors.Is.
type ColumnError struct {
	Field Field
}

func (e *ColumnError) Error() string {
	return "preference: required column missing: " + e.Field.String()
}

// Is reports whether target is ErrMissingColumn.
func (e *ColumnError) Is(target error) bool { return target == ErrMissingColumn }

// Row is one tabular row: header → cell. A missing key and a blank cell both
// mean "no value".
type Row map[string]string

// Desire is one ranked destination slot.
type Desire struct {
	// Location is the destination as declared (trimmed).
	Location string

	// Rank is the original slot number, 1 = most preferred.
	Rank int

	key string
}

// Key returns the normalized destination.
func (d Desire) Key() string { return d.key }

// Record is a validated participant. Records are values; the repository hands
// out copies and never changes them.
type Record struct {
	// ID is the source row position (0-based, counting dropped rows).
	ID int

	// Key is a deterministic identifier derived from the normalized name and
	// location; it survives reloads that reorder rows.
	Key uuid.UUID

	Name            string
	CurrentLocation string

	// Tier ("Entrância") is carried through to results, never matched on.
	Tier string

	// Contact is carried for collaborators; matching ignores it.
	Contact string

	// Desires lists present slots in rank order.
	Desires []Desire

	locKey string
}

// LocationKey returns the normalized current location.
func (r Record) LocationKey() string { return r.locKey }

// Wants reports whether loc (in any spelling) is one of the record's desires,
// returning the best (lowest) rank that names it.
func (r Record) Wants(loc string) (rank int, ok bool) {
	key := normalize.String(loc)
	if key == "" {
		return 0, false
	}
	for _, d := range r.Desires {
		if d.key == key {
			return d.Rank, true
		}
	}

	return 0, false
}

// DesiredLocations returns the declared destinations in rank order.
func (r Record) DesiredLocations() []string {
	out := make([]string, len(r.Desires))
	for i, d := range r.Desires {
		out[i] = d.Location
	}

	return out
}
