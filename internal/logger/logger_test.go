package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/muliwe/go-sign-classifier/internal/classifier"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, "results.jsonl", cfg.FileName)
	assert.False(t, cfg.Stdout)
}

func TestConfigFromPath(t *testing.T) {
	cfg := ConfigFromPath(filepath.Join("var", "run", "out.jsonl"))

	assert.Equal(t, filepath.Join("var", "run"), cfg.LogDir)
	assert.Equal(t, "out.jsonl", cfg.FileName)
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	l, err := New(Config{LogDir: dir, FileName: "test.jsonl"})
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	assert.Equal(t, filepath.Join(dir, "test.jsonl"), l.LogPath())
	_, err = os.Stat(l.LogPath())
	assert.NoError(t, err)
}

func TestRecord_WritesJSONLines(t *testing.T) {
	tmpDir := t.TempDir()

	l, err := New(Config{LogDir: tmpDir, FileName: "test.jsonl"})
	require.NoError(t, err)

	for _, n := range []int{-5, 0, 7} {
		require.NoError(t, l.Record("run-1", classifier.Evaluate(n)))
	}
	require.NoError(t, l.Close())

	f, err := os.Open(filepath.Join(tmpDir, "test.jsonl"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, entries, 3)

	assert.Equal(t, "negative", entries[0]["classification"])
	assert.Equal(t, "zero", entries[1]["classification"])
	assert.Equal(t, "positive", entries[2]["classification"])
	for _, e := range entries {
		assert.Equal(t, "run-1", e["run_id"])
		assert.NotEmpty(t, e["timestamp"])
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)

	require.NoError(t, l.Record("abc", classifier.Evaluate(-1)))
	assert.Contains(t, buf.String(), `"message":"The number is negative"`)
	assert.Empty(t, l.LogPath())
	assert.NoError(t, l.Close())
}

func TestNewConsole(t *testing.T) {
	log, err := NewConsole("debug", false)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = NewConsole("warn", false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNewConsole_Quiet(t *testing.T) {
	log, err := NewConsole("not-a-level", true)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewConsole_InvalidLevel(t *testing.T) {
	_, err := NewConsole("loud", false)
	assert.ErrorContains(t, err, "invalid log level")
}
