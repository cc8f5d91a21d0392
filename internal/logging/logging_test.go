package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "info", "json"))

	logger.Debug("hidden")
	logger.Info("quiz started", "page", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "quiz started", rec["msg"])
	assert.EqualValues(t, 1, rec["page"])
}

func TestNewHandler_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "debug", "text"))
	logger.Debug("answer recorded", "outcome", "accepted")

	assert.Contains(t, buf.String(), "msg=\"answer recorded\"")
	assert.Contains(t, buf.String(), "outcome=accepted")
}

func TestOpen_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "capy.log")

	logger, closeFn, err := Open(path, "info", "text")
	require.NoError(t, err)
	logger.Info("help offered")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "help offered")
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	logger, closeFn, err := Open("", "info", "text")
	require.NoError(t, err)
	logger.Info("nowhere")
	assert.NoError(t, closeFn())
}
