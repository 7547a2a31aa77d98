package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: scene\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// Unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	select {
	case got := <-w.Reloads():
		t.Fatalf("unexpected reload for %s", got)
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(path, []byte("type: scene\nnodes: []\n"), 0o644))
	select {
	case got := <-w.Reloads():
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, filepath.Clean(got))
	case <-time.After(2 * time.Second):
		t.Fatal("no reload after write")
	}
}
