package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/logindomarcio/permuta-magis-v3/cycle"
	"github.com/logindomarcio/permuta-magis-v3/ingest"
	"github.com/logindomarcio/permuta-magis-v3/render"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	warnColor    = color.New(color.FgYellow)
	countColor   = color.New(color.FgGreen)
)

// kindOf names a cycle length the way users talk about it.
func kindOf(k int) string {
	switch k {
	case 2:
		return "Direct swaps"
	case 3:
		return "Triangles"
	default:
		return fmt.Sprintf("%d-way cycles", k)
	}
}

func printSummary(w io.Writer, snap *ingest.Snapshot) {
	fmt.Fprintf(w, "%s participants from %s, loaded %s",
		countColor.Sprint(humanize.Comma(int64(snap.Repo.Len()))), snap.Source, humanize.Time(snap.LoadedAt))
	if d := snap.Repo.Dropped(); d > 0 {
		fmt.Fprint(w, warnColor.Sprintf(" (%d incomplete rows skipped)", d))
	}
	fmt.Fprintln(w)
}

// searchLengths runs query once per length, concurrently, and returns the
// results in the order of lengths. The first failure cancels the others.
func searchLengths(ctx context.Context, lengths []int, query func(ctx context.Context, k int) ([]cycle.Cycle, error)) ([][]cycle.Cycle, error) {
	out := make([][]cycle.Cycle, len(lengths))
	g, gctx := errgroup.WithContext(ctx)
	for i, k := range lengths {
		g.Go(func() error {
			cycles, err := query(gctx, k)
			if err != nil {
				return fmt.Errorf("length %d: %w", k, err)
			}
			out[i] = cycles
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// emitGroups writes one section per length for tables, or a single batch for
// machine-readable formats.
func emitGroups(w io.Writer, format render.Format, snap *ingest.Snapshot, lengths []int, groups [][]cycle.Cycle) error {
	if format != render.FormatTable {
		var batch []cycle.Cycle
		for _, g := range groups {
			batch = append(batch, g...)
		}
		return render.Encode(w, format, batch)
	}

	printSummary(w, snap)
	for i, k := range lengths {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingColor.Sprintf("%s (k=%d): %s found", kindOf(k), k, humanize.Comma(int64(len(groups[i])))))
		if err := render.Encode(w, format, groups[i]); err != nil {
			return err
		}
	}

	return nil
}
