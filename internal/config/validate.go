package config

import (
	"fmt"
	"strings"

	"github.com/logindomarcio/permuta-magis-v3/cycle"
	"github.com/logindomarcio/permuta-magis-v3/render"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Source.validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Match.validate(); err != nil {
		return fmt.Errorf("match: %w", err)
	}
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	return nil
}

func (s *SourceConfig) validate() error {
	switch strings.ToLower(s.Format) {
	case "", "csv", "yaml", "yml", "sqlite", "sqlite3", "db":
	default:
		return fmt.Errorf("format must be csv, yaml or sqlite (got %q)", s.Format)
	}
	if s.Refresh < 0 {
		return fmt.Errorf("refresh must be >= 0 (got %s)", s.Refresh)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be debug, info, warn or error (got %q)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json (got %q)", l.Format)
	}

	return nil
}

func (m *MatchConfig) validate() error {
	if !cycle.ValidLength(m.Length) {
		return fmt.Errorf("length must be between %d and %d (got %d)", cycle.MinLength, cycle.MaxLength, m.Length)
	}
	if m.MaxCandidates < 0 {
		return fmt.Errorf("max_candidates must be >= 0 (got %d)", m.MaxCandidates)
	}
	if m.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %s)", m.Timeout)
	}

	return nil
}
