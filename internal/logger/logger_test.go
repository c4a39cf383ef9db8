package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, "info", "json").With("template", "MIT")
	log.Debug("hidden")
	log.Info("template loaded", "tokens", 12)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "template loaded", record["msg"])
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "MIT", record["template"])
	assert.EqualValues(t, 12, record["tokens"])
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, "error", "text")
	child := log.With("k", "v")

	child.Warn("dropped")
	assert.Empty(t, buf.String())

	log.SetLevel("debug")
	child.Debug("kept")
	assert.Contains(t, buf.String(), "msg=kept")
	assert.Contains(t, buf.String(), "k=v")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error("discarded", "err", "x")
	})
}
