package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logindomarcio/permuta-magis-v3/internal/config"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "info", Format: "JSON"})
	logger.Info("dataset loaded", slog.Int("participants", 3))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), "JSON handler should produce valid JSON")
	assert.Equal(t, "dataset loaded", m["msg"])
	assert.EqualValues(t, 3, m["participants"])
}

func TestNewLogger_TextFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "warn", Format: "text"})
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "level=WARN"), out)
}

func TestNewLogger_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger := NewLogger(config.LogConfig{Level: "debug", Format: "text"})
	assert.Same(t, logger, slog.Default())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug, " WARN ": slog.LevelWarn, "error": slog.LevelError,
		"info": slog.LevelInfo, "": slog.LevelInfo, "verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestBuildVersion(t *testing.T) {
	prev := Commit
	t.Cleanup(func() { Commit = prev })

	Commit = "0123456789abcdef"
	assert.Equal(t, "dev (commit: 0123456, built: unknown)", BuildVersion())
}
