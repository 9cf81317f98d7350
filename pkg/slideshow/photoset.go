// Package slideshow cycles through a folder of photos and renders the current
// one inside a decorative frame.
package slideshow

import (
	"fmt"
	"os"
	"slices"

	"github.com/dixieflatline76/PictureFrame/pkg/picture"
)

// PhotoSet is the ordered list of photos in one folder and the position of
// the photo on display.
type PhotoSet struct {
	dir   string
	paths []string
	index int
}

// LoadPhotoSet scans dir for photos, creating the folder first if it does not
// exist yet.
func LoadPhotoSet(dir string) (*PhotoSet, error) {
	s := &PhotoSet{}
	if err := s.Reload(dir); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the contents of the set with the photos in dir and resets
// the position to the first one. On error the set is left unchanged.
func (s *PhotoSet) Reload(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating photo folder: %w", err)
	}
	paths, err := picture.Scan(dir)
	if err != nil {
		return err
	}
	s.dir = dir
	s.paths = paths
	s.index = 0
	return nil
}

// Refresh rescans the current folder. The photo on display keeps its place
// when it still exists; otherwise the position is kept within range.
func (s *PhotoSet) Refresh() error {
	paths, err := picture.Scan(s.dir)
	if err != nil {
		return err
	}
	cur, ok := s.Current()
	s.paths = paths
	if i := slices.Index(paths, cur); ok && i >= 0 {
		s.index = i
	} else if s.index >= len(paths) {
		s.index = 0
	}
	return nil
}

// Dir returns the folder the set was loaded from.
func (s *PhotoSet) Dir() string {
	return s.dir
}

// Len returns the number of photos.
func (s *PhotoSet) Len() int {
	return len(s.paths)
}

// Index returns the current position.
func (s *PhotoSet) Index() int {
	return s.index
}

// Paths returns a copy of the photo paths in display order.
func (s *PhotoSet) Paths() []string {
	return append([]string(nil), s.paths...)
}

// Current returns the photo on display, or false when the folder is empty.
func (s *PhotoSet) Current() (string, bool) {
	if len(s.paths) == 0 {
		return "", false
	}
	return s.paths[s.index], true
}

// Next moves to the following photo, wrapping at the end.
func (s *PhotoSet) Next() {
	if len(s.paths) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.paths)
}
