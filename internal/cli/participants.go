package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/logindomarcio/permuta-magis-v3/preference"
)

// ParticipantsCmd returns the participants command
func ParticipantsCmd(s *Session) *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "participants",
		Short: "List the participants loaded from the source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			records := snap.Repo.All()
			if location != "" {
				records = snap.Repo.FindByLocation(location)
			}
			printSummary(out, snap)
			fmt.Fprintln(out)
			if len(records) == 0 {
				fmt.Fprintln(out, "No participants found")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ROW\tNAME\tCOURT\tWANTS\tTIER")
			fmt.Fprintln(w, "---\t----\t-----\t-----\t----")
			for _, r := range records {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID+1, r.Name, r.CurrentLocation, wishList(r), dash(r.Tier))
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "only participants posted at this court")

	return cmd
}

func wishList(r preference.Record) string {
	if len(r.Desires) == 0 {
		return "-"
	}
	parts := make([]string, len(r.Desires))
	for i, d := range r.Desires {
		parts[i] = fmt.Sprintf("%d:%s", d.Rank, d.Location)
	}

	return strings.Join(parts, " ")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
