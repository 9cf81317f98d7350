package slideshow

import (
	"image"
	"image/draw"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/PictureFrame/pkg/frame"
	"github.com/dixieflatline76/PictureFrame/pkg/paint"
	"github.com/dixieflatline76/PictureFrame/pkg/picture"
	"github.com/dixieflatline76/PictureFrame/util/log"
)

// maxDecoded bounds how many decoded images are kept at once. The oldest entry
// is dropped first.
const maxDecoded = 16

// renderKey identifies everything a rendered image depends on.
type renderKey struct {
	w, h      int
	photo     string
	frame     string
	useCustom bool
	mode      picture.CropMode
}

// Compositor renders the current photo inside either the current frame image
// or the procedural wooden frame.
type Compositor struct {
	mu sync.Mutex

	photos    *PhotoSet
	frames    *frame.Set
	useCustom bool
	cropMode  picture.CropMode

	decoded map[string]image.Image
	order   []string
	failed  map[string]struct{}
	load    func(path string) (image.Image, error)

	lastKey renderKey
	last    *image.RGBA
}

// NewCompositor wires a photo set and a frame set together. Custom frames are
// only used when requested and at least one frame is available.
func NewCompositor(photos *PhotoSet, frames *frame.Set, useCustom bool, mode picture.CropMode) *Compositor {
	if frames == nil {
		frames = frame.NewSet(nil)
	}
	return &Compositor{
		photos:    photos,
		frames:    frames,
		useCustom: useCustom && frames.Len() > 0,
		cropMode:  mode,
		decoded:   make(map[string]image.Image),
		failed:    make(map[string]struct{}),
		load:      picture.Load,
	}
}

// Photos returns the photo set.
func (c *Compositor) Photos() *PhotoSet {
	return c.photos
}

// Frames returns the frame set.
func (c *Compositor) Frames() *frame.Set {
	return c.frames
}

// HasFrames reports whether any frame image was found.
func (c *Compositor) HasFrames() bool {
	return c.frames.Len() > 0
}

// UseCustomFrame reports whether frame images are used instead of the
// procedural frame.
func (c *Compositor) UseCustomFrame() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.useCustom
}

// SetUseCustomFrame switches between frame images and the procedural frame.
// It stays off while there are no frames.
func (c *Compositor) SetUseCustomFrame(use bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.useCustom = use && c.frames.Len() > 0
}

// NextPhoto advances to the next photo.
func (c *Compositor) NextPhoto() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.photos.Next()
}

// NextFrame advances to the next frame image.
func (c *Compositor) NextFrame() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames.Next()
}

// SetPhotoFolder rescans the photos from dir and starts again from the first
// one. Previously decoded images are forgotten.
func (c *Compositor) SetPhotoFolder(dir string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.photos.Reload(dir); err != nil {
		return err
	}
	c.forget()
	log.Printf("Loaded %d photo(s) from %s", c.photos.Len(), dir)
	return nil
}

// RescanPhotos picks up photos added to or removed from the current folder.
// Decoded images are forgotten so rewritten files are read again.
func (c *Compositor) RescanPhotos() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.photos.Refresh(); err != nil {
		return err
	}
	c.forget()
	log.Debugf("Rescanned %s: %d photo(s)", c.photos.Dir(), c.photos.Len())
	return nil
}

func (c *Compositor) forget() {
	c.decoded = make(map[string]image.Image)
	c.order = nil
	c.failed = make(map[string]struct{})
	c.last = nil
}

// Render composes the current photo and frame into a new w x h image. The
// result is shared with later calls for the same inputs and must not be
// modified.
func (c *Compositor) Render(w, h int) *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()

	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}

	key := renderKey{w: w, h: h, useCustom: c.useCustom, mode: c.cropMode}
	key.photo, _ = c.photos.Current()
	if c.useCustom {
		key.frame, _ = c.frames.Current()
	}
	if c.last != nil && c.lastKey == key {
		return c.last
	}

	var photo image.Image
	if key.photo != "" {
		photo, _ = c.decode(key.photo)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if !c.useCustom || !c.renderCustom(dst, key.frame, photo) {
		c.renderProcedural(dst, photo)
	}
	paint.Grip(dst)

	c.lastKey, c.last = key, dst
	return dst
}

// renderCustom draws photo behind the frame image at path. It reports false,
// leaving dst untouched, when the frame cannot be used.
func (c *Compositor) renderCustom(dst *image.RGBA, path string, photo image.Image) bool {
	if path == "" {
		return false
	}
	fr, ok := c.decode(path)
	if !ok {
		return false
	}

	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	fw, fh := picture.FitSize(fr.Bounds().Dx(), fr.Bounds().Dy(), w, h)
	if fw == 0 || fh == 0 {
		return false
	}
	scaled := imaging.Resize(fr, fw, fh, imaging.Lanczos)

	fx, fy := (w-fw)/2, (h-fh)/2
	frameRect := image.Rect(fx, fy, fx+fw, fy+fh)
	draw.Draw(dst, frameRect, image.White, image.Point{}, draw.Src)

	if photo != nil {
		hole := c.frames.Aperture(path).Rect(frameRect)
		if !hole.Empty() {
			cover := picture.Cover(photo, hole.Dx(), hole.Dy(), c.cropMode)
			draw.Draw(dst, hole, cover, image.Point{}, draw.Over)
		}
	}

	draw.Draw(dst, frameRect, scaled, image.Point{}, draw.Over)
	return true
}

func (c *Compositor) renderProcedural(dst *image.RGBA, photo image.Image) {
	l := paint.NewLayout(dst.Bounds().Dx(), dst.Bounds().Dy())
	paint.ProceduralFrame(dst, l)
	if photo == nil || l.Photo.Empty() {
		return
	}
	cover := picture.Cover(photo, l.Photo.Dx(), l.Photo.Dy(), c.cropMode)
	draw.DrawMask(dst, l.Photo, cover, image.Point{}, paint.PhotoMask(dst.Bounds(), l), l.Photo.Min, draw.Over)
}

// decode returns the decoded image at path. Decode failures are logged once
// and remembered so the file is not read again.
func (c *Compositor) decode(path string) (image.Image, bool) {
	if img, ok := c.decoded[path]; ok {
		return img, true
	}
	if _, bad := c.failed[path]; bad {
		return nil, false
	}

	img, err := c.load(path)
	if err != nil {
		log.Printf("Error loading image %s: %v", path, err)
		c.failed[path] = struct{}{}
		return nil, false
	}

	if len(c.order) >= maxDecoded {
		delete(c.decoded, c.order[0])
		c.order = c.order[1:]
	}
	c.decoded[path] = img
	c.order = append(c.order, path)
	return img, true
}
