package scene

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/acid/engine/core"
)

func TestWatcherReloadsScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[objects]]\nradius = 1.0\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	require.Equal(t, abs, w.Path())

	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o644))

	select {
	case s := <-w.Scenes():
		require.Len(t, s.Objects, 3)
		require.Equal(t, abs, s.Path)
	case err := <-w.Errors():
		t.Fatalf("unexpected reload error: %s", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the scene to reload")
	}
}

func TestWatcherIgnoresEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	select {
	case s := <-w.Scenes():
		t.Fatalf("empty file published a scene with %d objects", len(s.Objects))
	case err := <-w.Errors():
		t.Fatalf("unexpected reload error: %s", err)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(path, []byte("[[objects]]\nradius = 2.0\n"), 0o644))
	select {
	case s := <-w.Scenes():
		require.Len(t, s.Objects, 1)
	case err := <-w.Errors():
		t.Fatalf("unexpected reload error: %s", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the scene to reload")
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.ErrorIs(t, w.Close(), core.ErrWatcherClosed)

	_, ok := <-w.Scenes()
	require.False(t, ok)
	_, ok = <-w.Errors()
	require.False(t, ok)
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "scene.toml"))
	require.Error(t, err)
}

func TestWatcherSkipsUnchangedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, changed, err := w.reload()
	require.NoError(t, err)
	require.False(t, changed)

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	_, changed, err = w.reload()
	require.NoError(t, err)
	require.False(t, changed)

	require.NoError(t, os.WriteFile(path, []byte("[[objects]]\nradius = 3.0\n"), 0o644))
	s, changed, err := w.reload()
	require.NoError(t, err)
	require.True(t, changed)
	require.Len(t, s.Objects, 1)
}
