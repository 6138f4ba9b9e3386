package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWithoutPathDiscards(t *testing.T) {
	log, closeFn, err := New("", slog.LevelDebug)
	require.NoError(t, err)
	log.Info("nothing to see")
	assert.NoError(t, closeFn())
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tada.log")
	log, closeFn, err := New(path, slog.LevelInfo)
	require.NoError(t, err)

	log.Debug("filtered")
	log.Info("item added", "title", "Buy milk")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"item added"`)
	assert.Contains(t, string(b), `"title":"Buy milk"`)
	assert.NotContains(t, string(b), "filtered")
}
