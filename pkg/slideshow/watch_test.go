package slideshow

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"new photo", fsnotify.Event{Name: "/p/a.jpg", Op: fsnotify.Create}, true},
		{"removed photo", fsnotify.Event{Name: "/p/a.png", Op: fsnotify.Remove}, true},
		{"rewritten photo", fsnotify.Event{Name: "/p/a.bmp", Op: fsnotify.Write}, true},
		{"chmod only", fsnotify.Event{Name: "/p/a.jpg", Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "/p/a.txt", Op: fsnotify.Create}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.event))
		})
	}
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestFolderWatcher(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	changed := make(chan struct{}, 8)
	fw, err := NewFolderWatcher(first, func() { changed <- struct{}{} })
	require.NoError(t, err)
	defer fw.Close()

	writePNG(t, filepath.Join(first, "a.png"), solid(4, 4, red))
	waitFor(t, changed)

	require.NoError(t, fw.Watch(second))
	writePNG(t, filepath.Join(second, "b.png"), solid(4, 4, blue))
	waitFor(t, changed)
}

func TestRescanPhotos(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), solid(4, 4, red))
	writePNG(t, filepath.Join(dir, "c.png"), solid(4, 4, red))

	photos, err := LoadPhotoSet(dir)
	require.NoError(t, err)
	photos.Next()
	c := NewCompositor(photos, nil, false, 0)

	writePNG(t, filepath.Join(dir, "b.png"), solid(4, 4, blue))
	require.NoError(t, c.RescanPhotos())

	assert.Equal(t, 3, photos.Len())
	cur, ok := photos.Current()
	require.True(t, ok)
	assert.Equal(t, "c.png", filepath.Base(cur), "current photo keeps its place")
}

func TestRefreshCurrentRemoved(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), solid(4, 4, red))
	writePNG(t, filepath.Join(dir, "b.png"), solid(4, 4, red))

	photos, err := LoadPhotoSet(dir)
	require.NoError(t, err)
	photos.Next()

	require.NoError(t, os.Remove(filepath.Join(dir, "b.png")))
	require.NoError(t, photos.Refresh())
	assert.Equal(t, 1, photos.Len())
	assert.Equal(t, 0, photos.Index())
}
