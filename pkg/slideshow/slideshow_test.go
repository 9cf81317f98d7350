package slideshow

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/dixieflatline76/PictureFrame/pkg/frame"
	"github.com/dixieflatline76/PictureFrame/pkg/picture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{255, 0, 0, 255}
	blue = color.NRGBA{0, 0, 255, 255}
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// frameWithHole is an opaque blue frame with a transparent rectangle cut out.
func frameWithHole(w, h int, hole image.Rectangle) *image.NRGBA {
	img := solid(w, h, blue)
	draw.Draw(img, hole, image.Transparent, image.Point{}, draw.Src)
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func pixel(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestLoadPhotoSet(t *testing.T) {
	t.Run("SortedByPath", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.png"), nil, 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), nil, 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

		s, err := LoadPhotoSet(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.jpg"), filepath.Join(dir, "b.png")}, s.Paths())
		assert.Equal(t, 0, s.Index())
		assert.Equal(t, dir, s.Dir())
	})

	t.Run("CreatesMissingFolder", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "Pictures", "PictureFrame")
		s, err := LoadPhotoSet(dir)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
		assert.DirExists(t, dir)

		_, ok := s.Current()
		assert.False(t, ok)
	})
}

func TestPhotoSetNext(t *testing.T) {
	t.Run("Cycles", func(t *testing.T) {
		s := &PhotoSet{paths: []string{"a", "b", "c"}}
		for i := 0; i < s.Len(); i++ {
			s.Next()
		}
		assert.Equal(t, 0, s.Index())

		s.Next()
		cur, ok := s.Current()
		assert.True(t, ok)
		assert.Equal(t, "b", cur)
	})

	t.Run("EmptyIsNoop", func(t *testing.T) {
		s := &PhotoSet{}
		assert.NotPanics(t, s.Next)
		assert.Equal(t, 0, s.Index())
	})

	t.Run("ReloadResetsIndex", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "x.png"), nil, 0644))
		s := &PhotoSet{paths: []string{"a", "b"}, index: 1}
		require.NoError(t, s.Reload(dir))
		assert.Equal(t, 0, s.Index())
		assert.Equal(t, 1, s.Len())
	})
}

func newCompositor(t *testing.T, photos, frames string, useCustom bool) *Compositor {
	t.Helper()
	ps, err := LoadPhotoSet(photos)
	require.NoError(t, err)
	fs, err := frame.LoadSet(frames)
	require.NoError(t, err)
	return NewCompositor(ps, fs, useCustom, picture.CropCenter)
}

func TestRenderProcedural(t *testing.T) {
	photos := t.TempDir()
	writePNG(t, filepath.Join(photos, "a.png"), solid(120, 80, red))

	c := newCompositor(t, photos, filepath.Join(t.TempDir(), "Frames"), true)
	assert.False(t, c.HasFrames())
	assert.False(t, c.UseCustomFrame(), "no frames means no custom frame mode")

	for _, size := range []image.Point{{300, 200}, {240, 180}, {520, 380}, {50, 30}, {1, 1}} {
		img := c.Render(size.X, size.Y)
		assert.Equal(t, image.Rect(0, 0, size.X, size.Y), img.Bounds(), "size %v", size)
	}

	img := c.Render(300, 200)
	assert.Equal(t, red, pixel(img, 150, 100), "photo fills the well")
	assert.Zero(t, pixel(img, 1, 1).A, "outer margin stays transparent")
	assert.Equal(t, uint8(255), pixel(img, 15, 100).A, "wooden frame")
}

func TestRenderSmallKeepsPhotoInsideMatte(t *testing.T) {
	photos := t.TempDir()
	writePNG(t, filepath.Join(photos, "a.png"), solid(120, 80, red))

	c := newCompositor(t, photos, filepath.Join(t.TempDir(), "Frames"), true)
	img := c.Render(80, 80)

	assert.NotEqual(t, red, pixel(img, 35, 40), "bevel area")
	for y := 0; y < 80; y++ {
		for x := 0; x < 80; x++ {
			require.NotEqual(t, red, pixel(img, x, y), "no photo at %d,%d when the well has collapsed", x, y)
		}
	}
}

func TestRenderCustomFrame(t *testing.T) {
	photos, frames := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(photos, "a.png"), solid(50, 50, red))
	writePNG(t, filepath.Join(frames, "f.png"), frameWithHole(100, 100, image.Rect(20, 20, 80, 80)))

	c := newCompositor(t, photos, frames, true)
	require.True(t, c.UseCustomFrame())

	img := c.Render(200, 200)
	assert.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())
	assert.Equal(t, red, pixel(img, 100, 100), "photo shows through the opening")
	assert.Equal(t, blue, pixel(img, 10, 10), "frame drawn over the photo")

	t.Run("Letterboxed", func(t *testing.T) {
		img := c.Render(400, 200)
		assert.Equal(t, image.Rect(0, 0, 400, 200), img.Bounds())
		assert.Zero(t, pixel(img, 10, 100).A, "area beside the fitted frame is empty")
		assert.Equal(t, red, pixel(img, 200, 100))
	})

	t.Run("Disabled", func(t *testing.T) {
		c.SetUseCustomFrame(false)
		defer c.SetUseCustomFrame(true)
		img := c.Render(200, 200)
		assert.Zero(t, pixel(img, 1, 1).A, "procedural margin")
	})
}

func TestRenderBrokenFrameFallsBack(t *testing.T) {
	photos, frames := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(photos, "a.png"), solid(50, 50, red))
	require.NoError(t, os.WriteFile(filepath.Join(frames, "broken.png"), []byte("not a png"), 0644))

	c := newCompositor(t, photos, frames, true)
	require.True(t, c.UseCustomFrame())

	img := c.Render(300, 200)
	assert.Zero(t, pixel(img, 1, 1).A, "procedural margin instead of white frame fill")
	assert.Equal(t, red, pixel(img, 150, 100))
}

func TestRenderBrokenPhoto(t *testing.T) {
	photos := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(photos, "a.jpg"), []byte("garbage"), 0644))

	c := newCompositor(t, photos, filepath.Join(t.TempDir(), "none"), false)
	img := c.Render(300, 200)
	assert.Equal(t, color.NRGBA{0x11, 0x11, 0x11, 0xff}, pixel(img, 150, 100), "empty photo well")
}

func TestDecodeFailureIsRemembered(t *testing.T) {
	ps := &PhotoSet{paths: []string{"a.png", "b.png"}}
	c := NewCompositor(ps, nil, false, picture.CropCenter)

	calls := map[string]int{}
	c.load = func(path string) (image.Image, error) {
		calls[path]++
		if path == "a.png" {
			return nil, errors.New("boom")
		}
		return solid(10, 10, red), nil
	}

	c.Render(100, 100)
	c.Render(120, 100)
	c.NextPhoto()
	c.Render(100, 100)
	c.Render(130, 100)

	assert.Equal(t, 1, calls["a.png"])
	assert.Equal(t, 1, calls["b.png"])
}

func TestRenderReusesResult(t *testing.T) {
	ps := &PhotoSet{paths: []string{"a.png", "b.png"}}
	c := NewCompositor(ps, nil, false, picture.CropCenter)
	c.load = func(string) (image.Image, error) { return solid(10, 10, red), nil }

	first := c.Render(100, 100)
	assert.Same(t, first, c.Render(100, 100))

	c.NextPhoto()
	assert.NotSame(t, first, c.Render(100, 100))
}

func TestSetPhotoFolder(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(first, "a.png"), solid(10, 10, red))
	writePNG(t, filepath.Join(first, "b.png"), solid(10, 10, red))
	writePNG(t, filepath.Join(second, "z.png"), solid(10, 10, blue))

	c := newCompositor(t, first, filepath.Join(t.TempDir(), "none"), false)
	c.NextPhoto()
	assert.Equal(t, 1, c.Photos().Index())

	require.NoError(t, c.SetPhotoFolder(second))
	assert.Equal(t, 0, c.Photos().Index())
	assert.Equal(t, []string{filepath.Join(second, "z.png")}, c.Photos().Paths())
	assert.Equal(t, blue, pixel(c.Render(300, 200), 150, 100))
}

func TestNextFrameAndEmptySets(t *testing.T) {
	c := NewCompositor(&PhotoSet{}, nil, true, picture.CropCenter)
	assert.NotPanics(t, c.NextPhoto)
	assert.NotPanics(t, c.NextFrame)
	assert.False(t, c.UseCustomFrame())

	c.SetUseCustomFrame(true)
	assert.False(t, c.UseCustomFrame())

	img := c.Render(300, 200)
	assert.Equal(t, image.Rect(0, 0, 300, 200), img.Bounds())
	assert.Zero(t, c.Render(0, 10).Bounds().Dx())
}
