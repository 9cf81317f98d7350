package main

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesPreviews(t *testing.T) {
	frames := t.TempDir()
	photos := t.TempDir()
	out := filepath.Join(t.TempDir(), "previews")

	f := imaging.New(100, 100, color.NRGBA{0, 0, 255, 255})
	for y := 20; y < 80; y++ {
		for x := 20; x < 80; x++ {
			f.Set(x, y, color.NRGBA{})
		}
	}
	require.NoError(t, imaging.Save(f, filepath.Join(frames, "blue.png")))
	require.NoError(t, imaging.Save(imaging.New(50, 50, color.NRGBA{255, 0, 0, 255}), filepath.Join(photos, "red.png")))

	require.NoError(t, run(frames, photos, out, 200, 200))

	img, err := imaging.Open(filepath.Join(out, "blue_preview.png"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())
}

func TestRunWithoutFrames(t *testing.T) {
	assert.NoError(t, run(t.TempDir(), t.TempDir(), "", 200, 200))
}
