// Package picture holds the image I/O and scaling helpers shared by the frame
// detector and the slideshow compositor.
package picture

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"path/filepath"
	"slices"

	"github.com/disintegration/imaging"
	"github.com/karrick/godirwalk"
	_ "golang.org/x/image/bmp" // Register BMP decoder
)

// Extensions lists the file suffixes picked up by Scan. Matching is case
// sensitive.
var Extensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// IsPhoto reports whether name has one of the Extensions.
func IsPhoto(name string) bool {
	return slices.Contains(Extensions, filepath.Ext(name))
}

// Scan returns the image files directly inside dir, sorted by full path.
func Scan(dir string) ([]string, error) {
	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var paths []string
	for _, de := range dirents {
		if !de.IsRegular() {
			continue
		}
		if !IsPhoto(de.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, de.Name()))
	}
	slices.Sort(paths)
	return paths, nil
}

// Load decodes the image at path, applying any EXIF orientation.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decoding %s: empty image", path)
	}
	return img, nil
}

// FitSize scales srcW x srcH to the largest size that fits inside dstW x dstH
// while keeping the aspect ratio. Unlike imaging.Fit it also scales up.
func FitSize(srcW, srcH, dstW, dstH int) (int, int) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return 0, 0
	}

	// Compare dstW/srcW against dstH/srcH without floating point.
	if dstW*srcH <= dstH*srcW {
		h := (srcH*dstW + srcW/2) / srcW
		return dstW, max(h, 1)
	}
	w := (srcW*dstH + srcH/2) / srcH
	return max(w, 1), dstH
}
