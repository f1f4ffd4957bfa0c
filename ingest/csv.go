package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logindomarcio/permuta-magis-v3/preference"
)

// CSVSource reads a sheet export: one header row, then one row per participant.
// Short rows are allowed; missing trailing cells count as blank.
type CSVSource struct {
	Path  string
	Comma rune // field delimiter; ',' when zero
}

// Name implements Source.
func (s *CSVSource) Name() string { return "csv:" + s.Path }

// Rows implements Source.
func (s *CSVSource) Rows(ctx context.Context) ([]preference.Row, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", s.Path, err)
	}
	defer f.Close()

	rows, err := ReadCSV(ctx, f, s.Comma)
	if err != nil {
		return nil, fmt.Errorf("ingest: %s: %w", s.Path, err)
	}

	return rows, nil
}

// ReadCSV parses CSV from r. The header must name the Name and CurrentLocation
// columns in any supported spelling.
func ReadCSV(ctx context.Context, r io.Reader, comma rune) ([]preference.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	if comma != 0 {
		cr.Comma = comma
	}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if _, err := preference.ParseHeader(header); err != nil {
		return nil, err
	}

	var rows []preference.Row
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		row := make(preference.Row, len(header))
		for i, h := range header {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
