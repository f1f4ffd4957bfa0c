package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logindomarcio/permuta-magis-v3/cycle"
	"github.com/logindomarcio/permuta-magis-v3/geo"
)

// MapCmd returns the map command
func MapCmd(s *Session) *cobra.Command {
	var (
		length   int
		all      bool
		location string
		wants    []string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Export cycles as GeoJSON routes between courts",
		Long: `Write every cycle as a closed GeoJSON LineString through the participants'
courts. With --location, only the cycles found for that court are drawn,
towards the --want destinations or, without them, the wishes stored for the
first participant posted there. Cycles through courts without known
coordinates are skipped with a warning.`,
		Example: `  permuta map --all --out cycles.geojson
  permuta map -l TJSP -w TJRJ -k 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			lengths, err := s.lengths(length, all)
			if err != nil {
				return err
			}
			if location != "" {
				if wants, err = wishesFor(snap, location, wants); err != nil {
					return err
				}
			}

			ctx, cancel := s.queryContext(cmd.Context())
			defer cancel()
			groups, err := searchLengths(ctx, lengths, func(ctx context.Context, k int) ([]cycle.Cycle, error) {
				if location != "" {
					return snap.Matcher.FindFor(location, wants, k, s.queryOptions(ctx)...)
				}
				return snap.Matcher.FindAll(k, s.queryOptions(ctx)...)
			})
			if err != nil {
				return err
			}
			var batch []cycle.Cycle
			for _, g := range groups {
				batch = append(batch, g...)
			}

			fc := geo.Default().FeatureCollection(batch, s.logger)
			data, err := fc.MarshalJSON()
			if err != nil {
				return fmt.Errorf("encode geojson: %w", err)
			}
			if out == "" || out == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %d routes written to %s\n", countColor.Sprint("✓"), len(fc.Features), out)

			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "k", 0, "cycle length, 2 to 4 (default match.length)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "map every length from 2 to 4")
	cmd.Flags().StringVarP(&location, "location", "l", "", "only cycles for someone posted at this court")
	cmd.Flags().StringSliceVarP(&wants, "want", "w", nil, "acceptable destination for --location, repeatable")
	cmd.Flags().StringVar(&out, "out", "-", "output file, - for stdout")

	return cmd
}
