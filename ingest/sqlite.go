package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"

	_ "github.com/mattn/go-sqlite3"

	"github.com/logindomarcio/permuta-magis-v3/preference"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validTable(name string) bool { return tableName.MatchString(name) }

// SQLiteSource reads every row of one table; column names are the headers and
// NULL cells count as absent.
type SQLiteSource struct {
	Path  string
	Table string
}

// Name implements Source.
func (s *SQLiteSource) Name() string { return "sqlite:" + s.Path + "#" + s.Table }

// Rows implements Source. The database is opened read-only for the duration
// of the call.
func (s *SQLiteSource) Rows(ctx context.Context) ([]preference.Row, error) {
	if !validTable(s.Table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, s.Table)
	}
	dsn, err := readOnlyDSN(s.Path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", s.Path, err)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", s.Path, err)
	}
	defer db.Close()

	rows, err := ReadTable(ctx, db, s.Table)
	if err != nil {
		return nil, fmt.Errorf("ingest: %s: %w", s.Name(), err)
	}

	return rows, nil
}

// readOnlyDSN turns path into a read-only SQLite URI. The path is made absolute
// and percent-encoded, so '?', '#' and '%' in file names survive.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}

	return u.String(), nil
}

// ReadTable reads all rows of table from db. table must be a plain identifier.
func ReadTable(ctx context.Context, db *sql.DB, table string) ([]preference.Row, error) {
	if !validTable(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	// identifier validated above; placeholders cannot bind table names
	rs, err := db.QueryContext(ctx, `SELECT * FROM "`+table+`"`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rs.Close()

	cols, err := rs.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	if _, err := preference.ParseHeader(cols); err != nil {
		return nil, err
	}

	cells := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range cells {
		dest[i] = &cells[i]
	}

	var out []preference.Row
	for rs.Next() {
		if err := rs.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		row := make(preference.Row, len(cols))
		for i, c := range cols {
			if cells[i].Valid {
				row[c] = cells[i].String
			}
		}
		out = append(out, row)
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return out, nil
}
