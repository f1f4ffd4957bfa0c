package ingest_test

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logindomarcio/permuta-magis-v3/ingest"
	"github.com/logindomarcio/permuta-magis-v3/preference"
)

const sheet = "\ufeffNome,Origem,Destino 1,Destino 2,Destino 3,Entrância,E-mail\n" +
	"Ana,TJSP,TJRJ,,TJMG,Final,ana@tj.jus.br\n" +
	"Bia,TJRJ,TJSP\n" +
	",TJBA,TJSP,,,,\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// TestReadCSV covers BOM stripping, short rows and blank cells.
func TestReadCSV(t *testing.T) {
	rows, err := ingest.ReadCSV(context.Background(), strings.NewReader(sheet), 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Ana", rows[0]["Nome"])
	assert.Equal(t, "TJMG", rows[0]["Destino 3"])
	_, present := rows[1]["Destino 2"]
	assert.False(t, present, "short rows leave trailing cells absent")

	repo := preference.New(rows)
	assert.Equal(t, 2, repo.Len())
	assert.Equal(t, 1, repo.Dropped())
}

// TestReadCSV_Header rejects sheets without the required columns.
func TestReadCSV_Header(t *testing.T) {
	_, err := ingest.ReadCSV(context.Background(), strings.NewReader("Nome,Destino 1\nAna,TJRJ\n"), 0)
	assert.ErrorIs(t, err, preference.ErrMissingColumn)

	rows, err := ingest.ReadCSV(context.Background(), strings.NewReader(""), 0)
	assert.NoError(t, err)
	assert.Nil(t, rows)

	rows, err = ingest.ReadCSV(context.Background(), strings.NewReader("Name;CurrentLocation\nAna;TJSP\n"), ';')
	require.NoError(t, err)
	assert.Equal(t, "TJSP", rows[0]["CurrentLocation"])
}

// TestParseYAML accepts a bare list or a participants key.
func TestParseYAML(t *testing.T) {
	doc := `
participants:
  - Nome: Ana
    Origem: TJSP
    Destino 1: TJRJ
    Destino 2: ~
    Entrância: 2
  - Name: Bia
    CurrentLocation: TJRJ
    Desired1: TJSP
    Extra: [a, b]
`
	rows, err := ingest.ParseYAML([]byte(doc))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, preference.Row{"Nome": "Ana", "Origem": "TJSP", "Destino 1": "TJRJ", "Entrância": "2"}, rows[0])
	assert.NotContains(t, rows[1], "Extra")

	rows, err = ingest.ParseYAML([]byte("- {Nome: Caio, Origem: TJMG}\n"))
	require.NoError(t, err)
	assert.Equal(t, "TJMG", rows[0]["Origem"])

	rows, err = ingest.ParseYAML(nil)
	assert.NoError(t, err)
	assert.Nil(t, rows)

	_, err = ingest.ParseYAML([]byte("other: 1\n"))
	assert.Error(t, err)
	_, err = ingest.ParseYAML([]byte("- just a string\n"))
	assert.Error(t, err)
}

func seedSQLite(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "permuta.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE participants (
		Nome TEXT, Origem TEXT, "Destino 1" TEXT, "Destino 2" TEXT, "Destino 3" TEXT, Entrancia TEXT
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO participants VALUES
		('Ana', 'TJSP', 'TJRJ', NULL, NULL, 'Final'),
		('Bia', 'TJRJ', 'TJSP', 'TJMG', NULL, NULL)`)
	require.NoError(t, err)

	return path
}

// TestSQLiteSource reads a table, mapping NULL to absent cells.
func TestSQLiteSource(t *testing.T) {
	src := &ingest.SQLiteSource{Path: seedSQLite(t), Table: "participants"}
	rows, err := src.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, preference.Row{"Nome": "Ana", "Origem": "TJSP", "Destino 1": "TJRJ", "Entrancia": "Final"}, rows[0])
	assert.Equal(t, "TJMG", rows[1]["Destino 2"])

	bad := &ingest.SQLiteSource{Path: src.Path, Table: "participants; DROP TABLE x"}
	_, err = bad.Rows(context.Background())
	assert.ErrorIs(t, err, ingest.ErrInvalidTable)

	missing := &ingest.SQLiteSource{Path: src.Path, Table: "nope"}
	_, err = missing.Rows(context.Background())
	assert.Error(t, err)
}

// TestSQLiteSource_ReservedCharsInPath opens databases whose path would
// otherwise be cut at '?' or '#'.
func TestSQLiteSource_ReservedCharsInPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "export ?v=2 #1 100%")
	require.NoError(t, os.Mkdir(dir, 0o755))
	path := filepath.Join(dir, "permuta.db")
	require.NoError(t, os.Rename(seedSQLite(t), path))

	rows, err := (&ingest.SQLiteSource{Path: path, Table: "participants"}).Rows(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

// TestOpen picks the source by format or extension.
func TestOpen(t *testing.T) {
	cases := []struct {
		spec ingest.Spec
		want string
	}{
		{ingest.Spec{Path: "data/sheet.CSV"}, "csv:data/sheet.CSV"},
		{ingest.Spec{Path: "data/people.yml"}, "yaml:data/people.yml"},
		{ingest.Spec{Path: "data/export", Format: "yaml"}, "yaml:data/export"},
		{ingest.Spec{Path: "data/p.db"}, "sqlite:data/p.db#participants"},
		{ingest.Spec{Path: "data/p.sqlite", Table: "judges"}, "sqlite:data/p.sqlite#judges"},
	}
	for _, tc := range cases {
		src, err := ingest.Open(tc.spec)
		require.NoError(t, err, tc.spec.Path)
		assert.Equal(t, tc.want, src.Name())
	}

	_, err := ingest.Open(ingest.Spec{})
	assert.ErrorIs(t, err, ingest.ErrNoSource)
	_, err = ingest.Open(ingest.Spec{Path: "data/p.xlsx"})
	assert.ErrorIs(t, err, ingest.ErrUnsupportedFormat)
	_, err = ingest.Open(ingest.Spec{Path: "p.db", Table: "1bad"})
	assert.ErrorIs(t, err, ingest.ErrInvalidTable)
}

// TestStore_Reload publishes a new snapshot and keeps the old one on failure.
func TestStore_Reload(t *testing.T) {
	path := writeFile(t, "sheet.csv", sheet)
	var logs bytes.Buffer
	store := ingest.NewStore(&ingest.CSVSource{Path: path}, slog.New(slog.NewTextHandler(&logs, nil)))
	assert.Nil(t, store.Current())

	first, err := store.Reload(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, store.Current())
	assert.Equal(t, 2, first.Repo.Len())
	assert.NotNil(t, first.Matcher)
	assert.Contains(t, logs.String(), "participants=2")

	require.NoError(t, os.WriteFile(path, []byte(sheet+"Caio,TJMG,TJSP\n"), 0o644))
	second, err := store.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, second.Repo.Len())
	assert.Equal(t, 2, first.Repo.Len(), "published snapshots never change")

	require.NoError(t, os.Remove(path))
	_, err = store.Reload(context.Background())
	assert.Error(t, err)
	assert.Same(t, second, store.Current())
}

// TestStore_OnReload hands every new snapshot to the registered callback.
func TestStore_OnReload(t *testing.T) {
	path := writeFile(t, "sheet.csv", sheet)
	store := ingest.NewStore(&ingest.CSVSource{Path: path}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	var swaps []int
	store.OnReload(func(snap *ingest.Snapshot) {
		got, err := snap.Matcher.FindAll(2)
		require.NoError(t, err)
		swaps = append(swaps, len(got))
	})

	_, err := store.Reload(context.Background())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(sheet+"Caio,TJMG,TJSP\n"), 0o644))
	_, err = store.Reload(context.Background())
	require.NoError(t, err)

	// a failed reload publishes nothing
	require.NoError(t, os.Remove(path))
	_, err = store.Reload(context.Background())
	require.Error(t, err)
	assert.Equal(t, []int{1, 2}, swaps)

	store.OnReload(nil)
	require.NoError(t, os.WriteFile(path, []byte(sheet), 0o644))
	_, err = store.Reload(context.Background())
	require.NoError(t, err)
	assert.Len(t, swaps, 2)
}

// TestStore_Watch reloads on the ticker until cancelled.
func TestStore_Watch(t *testing.T) {
	path := writeFile(t, "sheet.csv", sheet)
	store := ingest.NewStore(&ingest.CSVSource{Path: path}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	assert.ErrorIs(t, store.Watch(context.Background(), 0), ingest.ErrBadInterval)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx, 10*time.Millisecond) }()

	require.Eventually(t, func() bool { return store.Current() != nil }, 2*time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

// TestStore_WatchFile reloads after the watched file is rewritten.
func TestStore_WatchFile(t *testing.T) {
	path := writeFile(t, "sheet.csv", sheet)
	store := ingest.NewStore(&ingest.CSVSource{Path: path}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = store.WatchFile(ctx, path, 20*time.Millisecond) }()

	require.Eventually(t, func() bool {
		// rewrite until the watcher is up and has reloaded
		_ = os.WriteFile(path, []byte(sheet+"Caio,TJMG,TJSP\n"), 0o644)
		return store.Current().Repo.Len() == 3
	}, 5*time.Second, 50*time.Millisecond)
}
