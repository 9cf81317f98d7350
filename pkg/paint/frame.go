package paint

import (
	"image"
	"image/color"
)

// Procedural frame geometry, in pixels regardless of widget size.
const (
	OuterMargin = 10
	BevelInset  = 16
	MatteInset  = 10
	PhotoInset  = 10

	OuterRadius = 20
	BevelRadius = 14
	MatteRadius = 10
	PhotoRadius = 8

	shadowDX   = 6
	shadowDY   = 8
	shadowBlur = 4
	bevelWidth = 2
)

var (
	shadowColor = color.NRGBA{0, 0, 0, 120}
	bevelColor  = color.NRGBA{255, 255, 255, 80}
	matteColor  = hex("#F2EFE6")
	wellColor   = hex("#111111")

	woodStops = []Stop{
		{Offset: 0.0, Color: hex("#7A4B2A")},
		{Offset: 0.35, Color: hex("#B07A46")},
		{Offset: 1.0, Color: hex("#6A3F22")},
	}
)

// Layout is the set of nested rectangles making up the procedural frame.
type Layout struct {
	Outer image.Rectangle
	Bevel image.Rectangle
	Matte image.Rectangle
	Photo image.Rectangle
}

// NewLayout computes the procedural frame rectangles for a w x h canvas.
// Rectangles that collapse on a small canvas come back empty.
func NewLayout(w, h int) Layout {
	outer := inset(image.Rect(0, 0, w, h), OuterMargin)
	bevel := inset(outer, BevelInset)
	matte := inset(bevel, MatteInset)
	return Layout{
		Outer: outer,
		Bevel: bevel,
		Matte: matte,
		Photo: inset(matte, PhotoInset),
	}
}

func inset(r image.Rectangle, n int) image.Rectangle {
	// image.Rect would swap inverted corners, so build the rectangle as is.
	out := image.Rectangle{
		Min: image.Pt(r.Min.X+n, r.Min.Y+n),
		Max: image.Pt(r.Max.X-n, r.Max.Y-n),
	}
	if out.Dx() <= 0 || out.Dy() <= 0 {
		return image.Rectangle{}
	}
	return out
}

// ProceduralFrame paints, back to front, the drop shadow, the wooden outer
// frame, the bevel line, the matte and the dark photo well. The photo itself
// goes on top using PhotoMask.
func ProceduralFrame(dst *image.RGBA, l Layout) {
	if l.Outer.Empty() {
		return
	}
	Shadow(dst, l.Outer.Add(image.Pt(shadowDX, shadowDY)), OuterRadius, shadowColor, shadowBlur)
	FillRoundRect(dst, l.Outer, OuterRadius, LinearGradient(l.Outer.Min, l.Outer.Max, woodStops))
	StrokeRoundRect(dst, l.Bevel, BevelRadius, bevelWidth, bevelColor)
	FillRoundRect(dst, l.Matte, MatteRadius, matteColor)
	FillRoundRect(dst, l.Photo, PhotoRadius, wellColor)
}

// PhotoMask returns the clip mask for the photo well of l on a canvas with
// the given bounds.
func PhotoMask(bounds image.Rectangle, l Layout) *image.Alpha {
	return RoundRectMask(bounds, l.Photo, PhotoRadius)
}

// Grip draws the three diagonal resize lines in the bottom-right corner.
func Grip(dst *image.RGBA) {
	b := dst.Bounds()
	const size, margin, step = 18, 10, 6
	box := image.Rect(b.Max.X-margin-size, b.Max.Y-margin-size, b.Max.X-margin, b.Max.Y-margin)
	if !box.In(b) {
		return
	}

	bottomLeft := image.Pt(box.Min.X, box.Max.Y-1)
	topRight := image.Pt(box.Max.X-1, box.Min.Y)
	c := color.NRGBA{255, 255, 255, 120}
	for i := 0; i < 3; i++ {
		StrokeLine(dst, bottomLeft.Add(image.Pt(i*step, 0)), topRight.Add(image.Pt(0, i*step)), 2, c)
	}
}
