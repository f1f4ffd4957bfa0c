package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/logindomarcio/permuta-magis-v3/cycle"
)

// CyclesCmd returns the cycles command
func CyclesCmd(s *Session) *cobra.Command {
	var (
		length int
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "List every exchange cycle in the dataset",
		Long: `List every group of participants who can all move at once: each one goes to
the court of the next, and the last goes to the court of the first.

Length 2 lists direct swaps, 3 triangles and 4 four-way cycles. Each cycle is
shown once, starting with the participant who appears first in the source.`,
		Example: `  permuta cycles -s sheet.csv
  permuta cycles -s sheet.csv --length 3 -o csv
  permuta cycles --all`,
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
			format, err := s.outputFormat()
			if err != nil {
				return err
			}

			ctx, cancel := s.queryContext(cmd.Context())
			defer cancel()
			groups, err := searchLengths(ctx, lengths, func(ctx context.Context, k int) ([]cycle.Cycle, error) {
				return snap.Matcher.FindAll(k, s.queryOptions(ctx)...)
			})
			if err != nil {
				return err
			}

			return emitGroups(cmd.OutOrStdout(), format, snap, lengths, groups)
		},
	}

	cmd.Flags().IntVarP(&length, "length", "k", 0, "cycle length, 2 to 4 (default match.length)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "search every length from 2 to 4")

	return cmd
}
