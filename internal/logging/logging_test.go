package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"unknown", slog.LevelWarn},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromString(tt.input))
		})
	}
}

func TestSetup_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(Config{Level: "info", Output: &buf})

	logger.Info("scan finished", slog.Int("matches", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scan finished", entry["msg"])
	assert.EqualValues(t, 3, entry["matches"])
}

func TestSetup_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(Config{Level: "warn", Output: &buf})

	logger.Debug("dropped")
	logger.Info("dropped too")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestSetup_InstallsDefault(t *testing.T) {
	var buf bytes.Buffer
	Setup(Config{Level: "info", Output: &buf})

	slog.Info("through the default logger")
	assert.Contains(t, buf.String(), "through the default logger")
}

func TestConfigs(t *testing.T) {
	assert.Equal(t, "warn", DefaultConfig().Level)
	assert.Equal(t, "debug", VerboseConfig().Level)
}
