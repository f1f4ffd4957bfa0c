package ingest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/logindomarcio/permuta-magis-v3/preference"
)

// Sentinel errors.
var (
	// ErrNoSource is returned by Open when no path is configured.
	ErrNoSource = errors.New("ingest: no source configured")

	// ErrUnsupportedFormat is returned by Open for an unknown format or extension.
	ErrUnsupportedFormat = errors.New("ingest: unsupported source format")

	// ErrInvalidTable is returned when a SQLite table name is not a plain identifier.
	ErrInvalidTable = errors.New("ingest: invalid table name")

	// ErrBadInterval is returned by Watch for a non-positive interval.
	ErrBadInterval = errors.New("ingest: watch interval must be positive")
)

// Supported formats.
const (
	FormatCSV    = "csv"
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"
)

// DefaultTable is the SQLite table read when none is configured.
const DefaultTable = "participants"

// Source yields the raw rows of a participant dataset.
type Source interface {
	// Name describes the source for logs, e.g. "csv:/data/sheet.csv".
	Name() string

	// Rows reads the whole dataset.
	Rows(ctx context.Context) ([]preference.Row, error)
}

// Spec selects and configures a Source.
type Spec struct {
	Path   string
	Format string // csv, yaml or sqlite; inferred from Path when empty
	Table  string // sqlite only; DefaultTable when empty
}

// Open builds the Source described by spec.
func Open(spec Spec) (Source, error) {
	if strings.TrimSpace(spec.Path) == "" {
		return nil, ErrNoSource
	}
	format, err := formatOf(spec)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV:
		return &CSVSource{Path: spec.Path}, nil
	case FormatYAML:
		return &YAMLSource{Path: spec.Path}, nil
	default:
		table := spec.Table
		if table == "" {
			table = DefaultTable
		}
		if !validTable(table) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
		}
		return &SQLiteSource{Path: spec.Path, Table: table}, nil
	}
}

// formatOf resolves the explicit format, or the file extension when unset.
func formatOf(spec Spec) (string, error) {
	f := strings.ToLower(strings.TrimSpace(spec.Format))
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(spec.Path)), ".")
	}
	switch f {
	case "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "sqlite", "sqlite3", "db":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
