package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/logindomarcio/permuta-magis-v3/cycle"
	"github.com/logindomarcio/permuta-magis-v3/ingest"
	"github.com/logindomarcio/permuta-magis-v3/internal/app"
	"github.com/logindomarcio/permuta-magis-v3/internal/config"
	"github.com/logindomarcio/permuta-magis-v3/render"
)

// Session carries the persistent flags and, once loaded, the configuration,
// logger and dataset shared by every command of one invocation.
type Session struct {
	ConfigPath string
	SourcePath string
	Format     string
	NoColor    bool

	cfg    *config.Config
	logger *slog.Logger
	store  *ingest.Store
}

// NewSession returns an unloaded Session.
func NewSession() *Session { return &Session{} }

// Bind registers the persistent flags on root.
func (s *Session) Bind(root *cobra.Command) {
	f := root.PersistentFlags()
	f.StringVarP(&s.ConfigPath, "config", "c", "", "config file (default $PERMUTA_CONFIG or "+config.DefaultPath+")")
	f.StringVarP(&s.SourcePath, "source", "s", "", "participants file (.csv, .yaml, .db); overrides source.path")
	f.StringVarP(&s.Format, "output", "o", "", "output format: table, json, yaml or csv")
	f.BoolVar(&s.NoColor, "no-color", false, "disable coloured output")
}

// load reads the configuration, installs the logger and loads the dataset.
// Later calls return the current snapshot.
func (s *Session) load(ctx context.Context) (*ingest.Snapshot, error) {
	if s.store != nil {
		if snap := s.store.Current(); snap != nil {
			return snap, nil
		}
	}

	cfg, err := config.Load(s.ConfigPath)
	if err != nil {
		return nil, err
	}
	if s.SourcePath != "" {
		cfg.Source.Path = s.SourcePath
		cfg.Source.Format = ""
	}
	if s.Format != "" {
		cfg.Output.Format = s.Format
	}
	if s.NoColor || cfg.Output.NoColor {
		color.NoColor = true
	}
	s.cfg = cfg
	s.logger = app.NewLogger(cfg.Log)

	src, err := ingest.Open(ingest.Spec{Path: cfg.Source.Path, Format: cfg.Source.Format, Table: cfg.Source.Table})
	if errors.Is(err, ingest.ErrNoSource) {
		return nil, fmt.Errorf("no participants source: pass --source or set source.path")
	}
	if err != nil {
		return nil, err
	}
	s.store = ingest.NewStore(src, s.logger)

	return s.store.Reload(ctx)
}

// outputFormat resolves the effective output format.
func (s *Session) outputFormat() (render.Format, error) {
	return render.ParseFormat(s.cfg.Output.Format)
}

// lengths resolves --length/--all into the cycle lengths to search.
func (s *Session) lengths(k int, all bool) ([]int, error) {
	if all {
		return []int{2, 3, 4}, nil
	}
	if k == 0 {
		k = s.cfg.Match.Length
	}
	if !cycle.ValidLength(k) {
		return nil, fmt.Errorf("--length %d: %w", k, cycle.ErrInvalidLength)
	}

	return []int{k}, nil
}

// wishesFor returns wants, or when it is empty the wishes stored for the first
// participant posted at location.
func wishesFor(snap *ingest.Snapshot, location string, wants []string) ([]string, error) {
	if len(wants) > 0 {
		return wants, nil
	}
	posted := snap.Repo.FindByLocation(location)
	if len(posted) == 0 {
		return nil, fmt.Errorf("nobody is posted at %q; pass --want to search anyway", location)
	}

	return posted[0].DesiredLocations(), nil
}

// queryContext applies match.timeout to ctx.
func (s *Session) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Match.Timeout > 0 {
		return context.WithTimeout(ctx, s.cfg.Match.Timeout)
	}

	return context.WithCancel(ctx)
}

// queryOptions builds the search options for ctx.
func (s *Session) queryOptions(ctx context.Context) []cycle.Option {
	return []cycle.Option{
		cycle.WithContext(ctx),
		cycle.WithMaxCandidates(s.cfg.Match.MaxCandidates),
	}
}
