package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf, Format: FormatJSON, Level: slog.LevelInfo})
	l.Info("boards loaded", "count", 3)

	assert.Contains(t, buf.String(), `"msg":"boards loaded"`)
	assert.Contains(t, buf.String(), `"count":3`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf, Level: slog.LevelWarn})
	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf, Format: FormatPretty, Level: slog.LevelDebug})
	l.WithGroup("api").With("op", "get_boards").Debug("request", "status", 200)

	line := buf.String()
	assert.Contains(t, line, " DBG request")
	assert.Contains(t, line, "api.op=get_boards")
	assert.Contains(t, line, "api.status=200")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf})
	l.WithError(errors.New("boom")).Error("save failed")
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "photoboard.log")
	l, err := OpenFile(path, Config{Level: slog.LevelInfo})
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestOpenFile_EmptyPathDiscards(t *testing.T) {
	l, err := OpenFile("", Config{})
	require.NoError(t, err)
	l.Info("nowhere")
	assert.NoError(t, l.Close())
}
