package picture

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/PictureFrame/util/log"
	"github.com/muesli/smartcrop"
)

// CropMode selects how Cover picks the visible part of an oversized image.
type CropMode int

const (
	// CropCenter keeps the middle of the image.
	CropCenter CropMode = iota
	// CropSmart lets a content-aware analyzer choose the crop.
	CropSmart
)

// ParseCropMode maps a config value onto a CropMode. Unknown values fall back
// to CropCenter.
func ParseCropMode(s string) CropMode {
	if s == "smart" {
		return CropSmart
	}
	return CropCenter
}

// Cover scales img so it covers a w x h box and crops the excess. The result is
// always exactly w x h, there is no letterboxing.
func Cover(img image.Image, w, h int, mode CropMode) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	if mode == CropSmart {
		if out, ok := smartCover(img, w, h); ok {
			return out
		}
	}
	return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
}

func smartCover(img image.Image, w, h int) (*image.NRGBA, bool) {
	r := &resizer{resampler: imaging.Lanczos}
	analyzer := smartcrop.NewAnalyzer(r)

	crop, err := analyzer.FindBestCrop(img, w, h)
	crop = crop.Intersect(img.Bounds())
	if err != nil || crop.Empty() {
		log.Printf("Smart crop failed, using centre crop: %v", err)
		return nil, false
	}

	// The analyzer only guarantees the aspect ratio approximately, resize to
	// the exact box.
	return imaging.Resize(imaging.Crop(img, crop), w, h, imaging.Lanczos), true
}

// resizer implements the smartcrop.Resizer interface.
type resizer struct {
	resampler imaging.ResampleFilter
}

// Resize scales img to width x height.
func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}
