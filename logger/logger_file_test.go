package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAppend_RawMessagesInOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogToConsole = false
	cfg.LogToFile = true
	cfg.LogFile = filepath.Join(t.TempDir(), "app.log")
	l := New(cfg)

	for _, msg := range []string{"first", "second", "third"} {
		require.NoError(t, l.Info(msg))
	}

	content, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	// Raw messages only: no timestamp, no level tag, call order preserved.
	assert.Equal(t, "first\nsecond\nthird\n", string(content))
}

func TestFileAppend_CreatesFileOnFirstUse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogToConsole = false
	cfg.LogToFile = true
	cfg.LogFile = filepath.Join(t.TempDir(), "fresh.log")
	l := New(cfg)

	_, statErr := os.Stat(cfg.LogFile)
	require.True(t, os.IsNotExist(statErr))

	require.NoError(t, l.Info("hello"))

	content, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(content))
}

func TestFileAppend_NeverTruncatesAcrossLoggers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.log")

	cfg := DefaultConfig()
	cfg.LogToConsole = false
	cfg.LogToFile = true
	cfg.LogFile = path

	require.NoError(t, New(cfg).Info("first run"))
	require.NoError(t, New(cfg).Info("second run"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first run\nsecond run\n", string(content))
}

func TestFileSink_WrittenRegardlessOfConsole(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseConsoleColors = false
	cfg.LogToFile = true
	cfg.LogFile = filepath.Join(t.TempDir(), "both.log")
	l, buf := newTestLogger(cfg)

	require.NoError(t, l.Warn("watch out"))

	assert.Contains(t, buf.String(), "[WARN] watch out")
	content, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Equal(t, "watch out\n", string(content), "file receives the raw message, not the formatted line")
}

func TestFileAppend_MissingDirectoryPropagates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogToConsole = false
	cfg.LogToFile = true
	cfg.LogFile = filepath.Join(t.TempDir(), "missing", "app.log")
	l := New(cfg)

	err := l.Info("doomed")
	require.Error(t, err)

	var pathErr *os.PathError
	assert.ErrorAs(t, err, &pathErr, "the raw open error must reach the caller")
}

func TestFileAppend_EmptyMessage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogToConsole = false
	cfg.LogToFile = true
	cfg.LogFile = filepath.Join(t.TempDir(), "empty.log")
	l := New(cfg)

	require.NoError(t, l.Info(""))

	content, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Equal(t, "\n", string(content))
}
