package picture

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func createTestImage(width, height int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.jpg", "c.jpeg", "d.bmp", "notes.txt", "e.PNG", "f.gif"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0755))

	paths, err := Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.jpeg"),
		filepath.Join(dir, "d.bmp"),
	}, paths)

	t.Run("MissingDir", func(t *testing.T) {
		_, err := Scan(filepath.Join(dir, "missing"))
		assert.Error(t, err)
	})

	t.Run("EmptyDir", func(t *testing.T) {
		paths, err := Scan(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, paths)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "red.png")
	writePNG(t, pngPath, createTestImage(40, 30, color.NRGBA{255, 0, 0, 255}))

	bmpPath := filepath.Join(dir, "blue.bmp")
	f, err := os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, createTestImage(12, 8, color.NRGBA{0, 0, 255, 255})))
	require.NoError(t, f.Close())

	corrupt := filepath.Join(dir, "broken.jpg")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a jpeg"), 0644))

	img, err := Load(pngPath)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())

	img, err = Load(bmpPath)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	_, err = Load(corrupt)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		dstW, dstH   int
		wantW, wantH int
	}{
		{"Wider", 400, 200, 300, 300, 300, 150},
		{"Taller", 200, 400, 300, 300, 150, 300},
		{"Upscale", 50, 25, 500, 500, 500, 250},
		{"Exact", 520, 380, 520, 380, 520, 380},
		{"Empty", 0, 10, 100, 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitSize(tt.srcW, tt.srcH, tt.dstW, tt.dstH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestCover(t *testing.T) {
	// Left half red, right half green, so centre cropping is observable.
	src := createTestImage(200, 100, color.NRGBA{255, 0, 0, 255})
	draw.Draw(src, image.Rect(100, 0, 200, 100), &image.Uniform{color.NRGBA{0, 255, 0, 255}}, image.Point{}, draw.Src)

	sizes := []struct {
		name string
		w, h int
	}{
		{"SmallerSameAspect", 100, 50},
		{"LargerSameAspect", 400, 200},
		{"Taller", 60, 120},
		{"Wider", 300, 40},
		{"Square", 77, 77},
	}

	for _, mode := range []CropMode{CropCenter, CropSmart} {
		for _, s := range sizes {
			t.Run(s.name, func(t *testing.T) {
				out := Cover(src, s.w, s.h, mode)
				assert.Equal(t, s.w, out.Bounds().Dx())
				assert.Equal(t, s.h, out.Bounds().Dy())

				// No letterboxing: every corner carries opaque image content.
				for _, p := range []image.Point{{0, 0}, {s.w - 1, 0}, {0, s.h - 1}, {s.w - 1, s.h - 1}} {
					_, _, _, a := out.At(p.X, p.Y).RGBA()
					assert.Equal(t, uint32(0xffff), a, "corner %v is transparent", p)
				}
			})
		}
	}

	t.Run("CentreCropKeepsMiddle", func(t *testing.T) {
		out := Cover(src, 50, 100, CropCenter)
		left := color.NRGBAModel.Convert(out.At(5, 50)).(color.NRGBA)
		right := color.NRGBAModel.Convert(out.At(45, 50)).(color.NRGBA)
		assert.Greater(t, left.R, uint8(200))
		assert.Greater(t, right.G, uint8(200))
	})

	t.Run("ZeroSize", func(t *testing.T) {
		out := Cover(src, 0, 10, CropCenter)
		assert.True(t, out.Bounds().Empty())
	})
}

func TestParseCropMode(t *testing.T) {
	assert.Equal(t, CropSmart, ParseCropMode("smart"))
	assert.Equal(t, CropCenter, ParseCropMode("center"))
	assert.Equal(t, CropCenter, ParseCropMode(""))
}

func TestResizer(t *testing.T) {
	r := &resizer{resampler: imaging.Box}
	out := r.Resize(createTestImage(10, 10, color.White), 4, 3)
	assert.Equal(t, image.Rect(0, 0, 4, 3), out.Bounds())
}

func TestIsPhoto(t *testing.T) {
	assert.True(t, IsPhoto("a.jpg"))
	assert.True(t, IsPhoto("b.bmp"))
	assert.False(t, IsPhoto("c.JPG"))
	assert.False(t, IsPhoto("notes.txt"))
	assert.False(t, IsPhoto("jpg"))
}
