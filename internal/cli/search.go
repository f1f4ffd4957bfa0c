package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/logindomarcio/permuta-magis-v3/cycle"
)

// SearchCmd returns the search command
func SearchCmd(s *Session) *cobra.Command {
	var (
		location string
		wants    []string
		length   int
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find the cycles that would move someone posted at a given court",
		Long: `Search on behalf of one participant. --location is their current court and
each --want is an acceptable destination, most preferred first.

Without --want, the wishes stored for the first participant posted at
--location are used.`,
		Example: `  permuta search -l TJSP -w TJRJ -w TJMG
  permuta search -l TJSP --all -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			wants, err = wishesFor(snap, location, wants)
			if err != nil {
				return err
			}
			lengths, err := s.lengths(length, all)
			if err != nil {
				return err
			}
			format, err := s.outputFormat()
			if err != nil {
				return err
			}

			ctx, cancel := s.queryContext(cmd.Context())
			defer cancel()
			groups, err := searchLengths(ctx, lengths, func(ctx context.Context, k int) ([]cycle.Cycle, error) {
				return snap.Matcher.FindFor(location, wants, k, s.queryOptions(ctx)...)
			})
			if err != nil {
				return err
			}

			return emitGroups(cmd.OutOrStdout(), format, snap, lengths, groups)
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "current court of the person searching (required)")
	cmd.Flags().StringSliceVarP(&wants, "want", "w", nil, "acceptable destination, repeatable, best first")
	cmd.Flags().IntVarP(&length, "length", "k", 0, "cycle length, 2 to 4 (default match.length)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "search every length from 2 to 4")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}
