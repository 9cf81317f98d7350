// Package paint draws the anti-aliased shapes used by the procedural frame.
//
// All coordinates are in pixels of the destination image, whose bounds are
// expected to start at the origin.
package paint

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Stop is one colour stop of a linear gradient. Offset runs from 0 to 1.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// hex parses "#RRGGBB" into an opaque colour. Malformed input yields black.
func hex(s string) color.NRGBA {
	c := color.NRGBA{A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c
	}
	nib := func(b byte) uint8 {
		switch {
		case b >= '0' && b <= '9':
			return b - '0'
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10
		}
		return 0
	}
	c.R = nib(s[1])<<4 | nib(s[2])
	c.G = nib(s[3])<<4 | nib(s[4])
	c.B = nib(s[5])<<4 | nib(s[6])
	return c
}

// LinearGradient returns a colour function that interpolates stops along the
// line from p0 to p1. Points beyond either end take the end colour.
func LinearGradient(p0, p1 image.Point, stops []Stop) rasterx.ColorFunc {
	dx, dy := float64(p1.X-p0.X), float64(p1.Y-p0.Y)
	lenSq := dx*dx + dy*dy

	return func(x, y int) color.Color {
		t := 0.0
		if lenSq > 0 {
			t = ((float64(x-p0.X))*dx + (float64(y-p0.Y))*dy) / lenSq
		}
		return gradientAt(stops, math.Max(0, math.Min(1, t)))
	}
}

func gradientAt(stops []Stop, t float64) color.Color {
	if len(stops) == 0 {
		return color.Transparent
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		f := (t - a.Offset) / span
		lerp := func(u, v uint8) uint8 { return uint8(math.Round(float64(u) + (float64(v)-float64(u))*f)) }
		return color.NRGBA{
			R: lerp(a.Color.R, b.Color.R),
			G: lerp(a.Color.G, b.Color.G),
			B: lerp(a.Color.B, b.Color.B),
			A: lerp(a.Color.A, b.Color.A),
		}
	}
	return stops[len(stops)-1].Color
}

// FillRoundRect fills r with rounded corners of the given radius. src is a
// color.Color or a rasterx.ColorFunc.
func FillRoundRect(dst draw.Image, r image.Rectangle, radius float64, src interface{}) {
	if r.Empty() {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(src)
	addRoundRect(r, radius, filler)
	filler.Draw()
}

// StrokeRoundRect outlines r with a line of the given width.
func StrokeRoundRect(dst draw.Image, r image.Rectangle, radius, width float64, c color.Color) {
	if r.Empty() {
		return
	}
	stroker := newStroker(dst, width, c)
	addRoundRect(r, radius, stroker)
	stroker.Draw()
}

// StrokeLine draws a straight line with flat ends.
func StrokeLine(dst draw.Image, from, to image.Point, width float64, c color.Color) {
	stroker := newStroker(dst, width, c)
	stroker.Start(rasterx.ToFixedP(float64(from.X), float64(from.Y)))
	stroker.Line(rasterx.ToFixedP(float64(to.X), float64(to.Y)))
	stroker.Stop(false)
	stroker.Draw()
}

// RoundRectMask returns an alpha mask the size of bounds that is opaque inside
// the rounded rectangle r.
func RoundRectMask(bounds, r image.Rectangle, radius float64) *image.Alpha {
	mask := image.NewAlpha(bounds)
	FillRoundRect(mask, r, radius, color.Opaque)
	return mask
}

// Shadow paints a rounded rectangle of colour c, softened by a Gaussian blur,
// over dst.
func Shadow(dst draw.Image, r image.Rectangle, radius float64, c color.Color, blurRadius float64) {
	layer := image.NewRGBA(dst.Bounds())
	FillRoundRect(layer, r, radius, c)

	var soft image.Image = layer
	if blurRadius > 0 {
		soft = blur.Gaussian(layer, blurRadius)
	}
	draw.Draw(dst, dst.Bounds(), soft, dst.Bounds().Min, draw.Over)
}

func newStroker(dst draw.Image, width float64, c color.Color) *rasterx.Stroker {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	stroker := rasterx.NewStroker(w, h, scanner)
	stroker.SetStroke(
		fixed.Int26_6(width*64),
		fixed.Int26_6(4*64),
		rasterx.ButtCap, nil,
		rasterx.RoundGap,
		rasterx.Round,
	)
	stroker.SetColor(c)
	return stroker
}

func addRoundRect(r image.Rectangle, radius float64, p rasterx.Adder) {
	rasterx.AddRoundRect(
		float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y),
		radius, radius, 0,
		rasterx.RoundGap, p,
	)
}
