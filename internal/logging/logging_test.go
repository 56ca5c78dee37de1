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
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "warn", "json")
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", "domain", "length")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "length", rec["domain"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug", "")
	require.NoError(t, err)

	log.Debug("hello", "n", 1)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=hello n=1")
}

func TestNewErrors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "info", "xml")
	assert.ErrorContains(t, err, "invalid format")

	_, err = New(&bytes.Buffer{}, "loud", "json")
	assert.ErrorContains(t, err, "invalid level")
}
