package render

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/logindomarcio/permuta-magis-v3/cycle"
)

// Positional field names.
const (
	KeyParticipantName   = "ParticipantName"
	KeyCurrentLocation   = "CurrentLocation"
	KeyChosenDestination = "ChosenDestination"
	KeyTier              = "Tier"
	KeyRank              = "Rank"
)

// fields lists the per-position fields in column order.
var fields = []string{KeyParticipantName, KeyCurrentLocation, KeyChosenDestination, KeyTier, KeyRank}

// ErrUnknownFormat is returned for an output format Encode does not support.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

// ParseFormat resolves a user-supplied format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Flat is one cycle as a positional key → value mapping.
type Flat map[string]string

// Key returns the positional key of field at position i, e.g. "ParticipantName@2".
func Key(field string, i int) string { return field + "@" + strconv.Itoa(i) }

// Flatten converts a cycle into its positional mapping.
// Complexity: O(k).
func Flatten(c cycle.Cycle) Flat {
	out := make(Flat, len(c.Legs)*len(fields))
	for i, l := range c.Legs {
		out[Key(KeyParticipantName, i)] = l.Participant.Name
		out[Key(KeyCurrentLocation, i)] = l.Participant.CurrentLocation
		out[Key(KeyChosenDestination, i)] = l.Destination
		out[Key(KeyTier, i)] = l.Participant.Tier
		out[Key(KeyRank, i)] = strconv.Itoa(l.Rank)
	}

	return out
}

// Columns returns the stable column order for cycles of length k.
func Columns(k int) []string {
	if k <= 0 {
		return nil
	}
	cols := make([]string, 0, k*len(fields))
	for i := 0; i < k; i++ {
		for _, f := range fields {
			cols = append(cols, Key(f, i))
		}
	}

	return cols
}

// Encode writes cycles to w in the given format. An empty batch is still a
// valid document: "[]" for JSON and YAML, a header-less empty CSV, and a
// one-line notice for the table.
func Encode(w io.Writer, format Format, cycles []cycle.Cycle) error {
	var err error
	switch format {
	case FormatJSON:
		err = encodeJSON(w, cycles)
	case FormatYAML:
		err = encodeYAML(w, cycles)
	case FormatCSV:
		err = encodeCSV(w, cycles)
	case FormatTable:
		err = encodeTable(w, cycles)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("render: Encode(%s): %w", format, err)
	}

	return nil
}

func flattenAll(cycles []cycle.Cycle) []Flat {
	out := make([]Flat, len(cycles))
	for i, c := range cycles {
		out[i] = Flatten(c)
	}

	return out
}

func encodeJSON(w io.Writer, cycles []cycle.Cycle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(flattenAll(cycles))
}

func encodeYAML(w io.Writer, cycles []cycle.Cycle) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(flattenAll(cycles)); err != nil {
		return err
	}

	return enc.Close()
}

func encodeCSV(w io.Writer, cycles []cycle.Cycle) error {
	if len(cycles) == 0 {
		return nil
	}
	width := 0
	for _, c := range cycles {
		if c.Len() > width {
			width = c.Len()
		}
	}
	cols := Columns(width)

	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return err
	}
	record := make([]string, len(cols))
	for _, c := range cycles {
		flat := Flatten(c)
		for i, col := range cols {
			record[i] = flat[col]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func encodeTable(w io.Writer, cycles []cycle.Cycle) error {
	if len(cycles) == 0 {
		_, err := fmt.Fprintln(w, "no cycles found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPOS\tNAME\tFROM\tTO\tOPTION\tTIER")
	for n, c := range cycles {
		for i, l := range c.Legs {
			fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%d\t%s\n",
				n+1, i, l.Participant.Name, l.Participant.CurrentLocation, l.Destination, l.Rank, l.Participant.Tier)
		}
	}

	return tw.Flush()
}
