package frame

import (
	"errors"
	"io/fs"
	"runtime"
	"sync"

	"github.com/dixieflatline76/PictureFrame/pkg/picture"
	"github.com/dixieflatline76/PictureFrame/util/log"
	"golang.org/x/sync/errgroup"
)

// Set is the ordered list of frame images with a current position and the
// apertures computed for them. The aperture cache lives as long as the Set.
type Set struct {
	paths []string
	index int

	mu        sync.Mutex
	apertures map[string]Aperture
	detect    func(path string) (Aperture, error)
}

// NewSet builds a Set over paths without touching the file system.
func NewSet(paths []string) *Set {
	return &Set{
		paths:     paths,
		apertures: make(map[string]Aperture, len(paths)),
		detect:    DetectFile,
	}
}

// LoadSet scans dir for frame images and computes every aperture before
// returning. A missing directory gives an empty set.
func LoadSet(dir string) (*Set, error) {
	paths, err := picture.Scan(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("No frames folder at %s, custom frames disabled", dir)
			return NewSet(nil), nil
		}
		return nil, err
	}

	s := NewSet(paths)
	s.precompute()
	log.Printf("Loaded %d frame(s) from %s", len(paths), dir)
	return s, nil
}

// precompute fills the cache for every frame using a bounded worker pool.
func (s *Set) precompute() {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, p := range s.paths {
		p := p
		g.Go(func() error {
			s.Aperture(p)
			return nil
		})
	}
	_ = g.Wait() // workers never fail, detection errors become the fallback
}

// Len returns the number of frames.
func (s *Set) Len() int {
	return len(s.paths)
}

// Index returns the current position.
func (s *Set) Index() int {
	return s.index
}

// Paths returns a copy of the frame paths in order.
func (s *Set) Paths() []string {
	return append([]string(nil), s.paths...)
}

// Current returns the path of the current frame, or false on an empty set.
func (s *Set) Current() (string, bool) {
	if len(s.paths) == 0 {
		return "", false
	}
	return s.paths[s.index], true
}

// Next advances to the following frame, wrapping at the end. It does nothing
// on an empty set.
func (s *Set) Next() {
	if len(s.paths) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.paths)
	s.Aperture(s.paths[s.index])
}

// Aperture returns the cached aperture for path, detecting and caching it on
// a miss.
func (s *Set) Aperture(path string) Aperture {
	s.mu.Lock()
	a, ok := s.apertures[path]
	s.mu.Unlock()
	if ok {
		return a
	}

	a, err := s.detect(path)
	if err != nil {
		log.Printf("Error calculating frame area for %s: %v", path, err)
	}

	s.mu.Lock()
	s.apertures[path] = a
	s.mu.Unlock()
	return a
}

// Cached reports whether path already has an aperture.
func (s *Set) Cached(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.apertures[path]
	return ok
}
