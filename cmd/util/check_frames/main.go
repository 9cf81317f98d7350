// check_frames prints the photo area detected in every frame image and can
// render a preview of each frame around a photo.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/PictureFrame/config"
	"github.com/dixieflatline76/PictureFrame/pkg/frame"
	"github.com/dixieflatline76/PictureFrame/pkg/picture"
	"github.com/dixieflatline76/PictureFrame/pkg/slideshow"
)

func main() {
	def := config.Default()
	framesDir := flag.String("frames", def.FramesDir, "folder with frame images")
	photoDir := flag.String("photos", def.PhotoDir, "folder with photos used for previews")
	out := flag.String("out", "", "write a preview PNG per frame to this folder")
	width := flag.Int("w", def.Width, "preview width")
	height := flag.Int("h", def.Height, "preview height")
	flag.Parse()

	if err := run(*framesDir, *photoDir, *out, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "check_frames: %v\n", err)
		os.Exit(1)
	}
}

func run(framesDir, photoDir, out string, w, h int) error {
	frames, err := frame.LoadSet(framesDir)
	if err != nil {
		return err
	}
	if frames.Len() == 0 {
		fmt.Printf("No frame images in %s\n", framesDir)
		return nil
	}

	for _, p := range frames.Paths() {
		fmt.Printf("%-40s %v\n", filepath.Base(p), frames.Aperture(p))
	}
	if out == "" {
		return nil
	}

	photos, err := slideshow.LoadPhotoSet(photoDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		return err
	}

	comp := slideshow.NewCompositor(photos, frames, true, picture.CropCenter)
	for i, n := 0, frames.Len(); i < n; i++ {
		path, _ := frames.Current()
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + "_preview.png"
		dst := filepath.Join(out, name)
		if err := imaging.Save(comp.Render(w, h), dst); err != nil {
			return fmt.Errorf("saving %s: %w", dst, err)
		}
		fmt.Printf("Wrote %s\n", dst)
		comp.NextFrame()
	}
	return nil
}
