package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/logindomarcio/permuta-magis-v3/cycle"
	"github.com/logindomarcio/permuta-magis-v3/ingest"
)

// WatchCmd returns the watch command
func WatchCmd(s *Session) *cobra.Command {
	var (
		interval time.Duration
		files    bool
		length   int
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep reloading the source and report the cycle count of every snapshot",
		Long: `Reload the participants source until interrupted, either every --interval
(default source.refresh) or whenever the file changes (--files, or
source.watch in the config). After the first load and every successful reload
the number of cycles per length is printed. A failed reload keeps the previous
dataset.`,
		Example: `  permuta watch -s sheet.csv -i 5m --all
  permuta watch -s sheet.csv --files -k 3`,
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
			onFiles := files || s.cfg.Source.Watch
			if interval == 0 {
				interval = s.cfg.Source.Refresh
			}
			if !onFiles && interval <= 0 {
				return fmt.Errorf("no reload interval: pass --interval or set source.refresh")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := cmd.OutOrStdout()
			s.reportCounts(ctx, w, snap, lengths)
			s.store.OnReload(func(snap *ingest.Snapshot) {
				fmt.Fprintln(w)
				s.reportCounts(ctx, w, snap, lengths)
			})
			defer s.store.OnReload(nil)

			if onFiles {
				s.logger.Info("watching source for changes", slog.String("path", s.cfg.Source.Path))
				return ignoreCanceled(s.store.WatchFile(ctx, s.cfg.Source.Path, 0))
			}
			s.logger.Info("reloading periodically", slog.Duration("interval", interval))

			return ignoreCanceled(s.store.Watch(ctx, interval))
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", 0, "reload period (default source.refresh)")
	cmd.Flags().BoolVar(&files, "files", false, "reload on file changes instead of a timer")
	cmd.Flags().IntVarP(&length, "length", "k", 0, "cycle length to count, 2 to 4 (default match.length)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "count every length from 2 to 4")

	return cmd
}

// reportCounts prints the dataset summary and how many cycles of each length
// snap holds. A failed count is reported inline; watching goes on.
func (s *Session) reportCounts(ctx context.Context, w io.Writer, snap *ingest.Snapshot, lengths []int) {
	qctx, cancel := s.queryContext(ctx)
	defer cancel()
	groups, err := searchLengths(qctx, lengths, func(ctx context.Context, k int) ([]cycle.Cycle, error) {
		return snap.Matcher.FindAll(k, s.queryOptions(ctx)...)
	})

	printSummary(w, snap)
	if err != nil {
		fmt.Fprintln(w, warnColor.Sprintf("cycle count failed: %v", err))
		return
	}
	for i, k := range lengths {
		fmt.Fprintln(w, headingColor.Sprintf("%s (k=%d): %s found", kindOf(k), k, humanize.Comma(int64(len(groups[i])))))
	}
}

// ignoreCanceled treats a cancelled context as a normal shutdown.
func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
