package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, w *Watcher, timeout time.Duration) (string, bool) {
	t.Helper()
	select {
	case path, ok := <-w.Events:
		return path, ok
	case <-time.After(timeout):
		return "", false
	}
}

func TestWatcherReportsMapFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "arena.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: [\"SX\"]\n"), 0o644))

	got, ok := waitEvent(t, w, 2*time.Second)
	require.True(t, ok, "expected an event for the map file")
	assert.True(t, SameFile(path, got))
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	_, ok := waitEvent(t, w, 300*time.Millisecond)
	assert.False(t, ok, "expected no event for a non-map file")
}

func TestWatcherDebounce(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWithDebounce(time.Hour, dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "arena.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	_, ok := waitEvent(t, w, 2*time.Second)
	require.True(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("{ }"), 0o644))
	_, ok = waitEvent(t, w, 300*time.Millisecond)
	assert.False(t, ok, "expected second write inside the window to be dropped")
}

func TestWatcherCloseIdempotent(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NotPanics(t, func() { _ = w.Close() })

	_, ok := <-w.Events
	assert.False(t, ok, "expected Events to be closed")
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestSameFile(t *testing.T) {
	assert.True(t, SameFile("resources/a.json", "resources/../resources/a.json"))
	assert.False(t, SameFile("resources/a.json", "resources/b.json"))
}
