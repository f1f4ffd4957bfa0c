package config

import "time"

// Config is the root application configuration.
type Config struct {
	Source SourceConfig `yaml:"source"`
	Log    LogConfig    `yaml:"log"`
	Match  MatchConfig  `yaml:"match"`
	Output OutputConfig `yaml:"output"`
}

// SourceConfig selects the participant dataset.
type SourceConfig struct {
	Path    string        `yaml:"path"    env:"PERMUTA_SOURCE_PATH"`
	Format  string        `yaml:"format"  env:"PERMUTA_SOURCE_FORMAT"`
	Table   string        `yaml:"table"   env:"PERMUTA_SOURCE_TABLE"   env-default:"participants"`
	Refresh time.Duration `yaml:"refresh" env:"PERMUTA_SOURCE_REFRESH" env-default:"0s"`
	Watch   bool          `yaml:"watch"   env:"PERMUTA_SOURCE_WATCH"   env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"PERMUTA_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"PERMUTA_LOG_FORMAT" env-default:"text"`
}

// MatchConfig bounds cycle searches.
type MatchConfig struct {
	Length        int           `yaml:"length"         env:"PERMUTA_MATCH_LENGTH"         env-default:"2"`
	MaxCandidates int           `yaml:"max_candidates" env:"PERMUTA_MATCH_MAX_CANDIDATES" env-default:"0"`
	Timeout       time.Duration `yaml:"timeout"        env:"PERMUTA_MATCH_TIMEOUT"        env-default:"30s"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format  string `yaml:"format"   env:"PERMUTA_OUTPUT_FORMAT"   env-default:"table"`
	NoColor bool   `yaml:"no_color" env:"PERMUTA_OUTPUT_NO_COLOR" env-default:"false"`
}
