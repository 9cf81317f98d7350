// Package frame finds the photo opening inside decorative frame images and
// keeps the ordered set of frames available to the slideshow.
package frame

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/PictureFrame/pkg/picture"
)

// transparentBelow is the alpha value under which a pixel counts as part of
// the opening. Anti-aliased frame edges sit just below 255 and stay frame.
const transparentBelow = 250

// Aperture is the photo-receiving rectangle of a frame, expressed as ratios of
// the frame image's width and height.
type Aperture struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// FallbackAperture is a centred opening covering 60% of each dimension.
var FallbackAperture = Aperture{Left: 0.2, Top: 0.2, Width: 0.6, Height: 0.6}

func (a Aperture) String() string {
	return fmt.Sprintf("aperture(l=%.3f t=%.3f w=%.3f h=%.3f)", a.Left, a.Top, a.Width, a.Height)
}

// Clamp returns a copy with every ratio in [0,1], Left+Width <= 1 and
// Top+Height <= 1.
func (a Aperture) Clamp() Aperture {
	clamp01 := func(v float64) float64 {
		if math.IsNaN(v) {
			return 0
		}
		return math.Max(0, math.Min(1, v))
	}
	a.Left = clamp01(a.Left)
	a.Top = clamp01(a.Top)
	a.Width = math.Min(clamp01(a.Width), 1-a.Left)
	a.Height = math.Min(clamp01(a.Height), 1-a.Top)
	return a
}

// Rect projects the aperture onto bounds, truncating to whole pixels, and
// clamps the result to bounds.
func (a Aperture) Rect(bounds image.Rectangle) image.Rectangle {
	c := a.Clamp()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	// The epsilon keeps ratios produced by Detect from truncating one pixel
	// short after the round trip through floating point.
	trunc := func(v float64) int { return int(v + 1e-9) }

	x0 := bounds.Min.X + trunc(w*c.Left)
	y0 := bounds.Min.Y + trunc(h*c.Top)
	r := image.Rect(x0, y0, x0+trunc(w*c.Width), y0+trunc(h*c.Height))
	return r.Intersect(bounds)
}

// Detect locates the opening of a frame image by scanning its alpha channel.
//
// Rows and columns where more than half of the pixels are transparent are
// collected, and the opening spans from the first to the last of them. This
// handles a single rectangular cut-out. Frames with several openings or
// irregular shapes produce their bounding box, and that is what existing frame
// assets are tuned against.
func Detect(img image.Image) Aperture {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return FallbackAperture
	}

	src := imaging.Clone(img)

	rowCounts := make([]int, height)
	colCounts := make([]int, width)
	transparent, visible := 0, 0

	for y := 0; y < height; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+width*4]
		for x := 0; x < width; x++ {
			alpha := row[x*4+3]
			if alpha != 0 {
				visible++
			}
			if alpha < transparentBelow {
				transparent++
				rowCounts[y]++
				colCounts[x]++
			}
		}
	}

	// Fully opaque: nothing to cut out. Fully clear: no frame to speak of.
	if transparent == 0 || visible == 0 {
		return FallbackAperture
	}

	top, bottom := majoritySpan(rowCounts, width, height)
	left, right := majoritySpan(colCounts, height, width)

	return Aperture{
		Left:   float64(left) / float64(width),
		Top:    float64(top) / float64(height),
		Width:  float64(right-left) / float64(width),
		Height: float64(bottom-top) / float64(height),
	}
}

// majoritySpan returns the first and last index whose count exceeds half of
// lineLen. When none does it returns 0 and total.
func majoritySpan(counts []int, lineLen, total int) (int, int) {
	first, last := -1, -1
	for i, n := range counts {
		if n*2 > lineLen {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0, total
	}
	return first, last
}

// DetectFile decodes the frame at path and runs Detect on it. On a decode
// error it returns FallbackAperture together with the error; callers log it
// and carry on with the fallback.
func DetectFile(path string) (Aperture, error) {
	img, err := picture.Load(path)
	if err != nil {
		return FallbackAperture, err
	}
	return Detect(img), nil
}
