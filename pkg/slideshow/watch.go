package slideshow

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dixieflatline76/PictureFrame/pkg/picture"
	"github.com/dixieflatline76/PictureFrame/util/log"
	"github.com/fsnotify/fsnotify"
)

// settleDelay groups the burst of events a file copy produces into one
// notification.
const settleDelay = 500 * time.Millisecond

// FolderWatcher calls a function when photos appear in, change in, or leave
// the watched folder.
type FolderWatcher struct {
	w        *fsnotify.Watcher
	onChange func()

	mu    sync.Mutex
	dir   string
	timer *time.Timer

	done chan struct{}
}

// NewFolderWatcher starts watching dir. onChange runs on its own goroutine.
func NewFolderWatcher(dir string, onChange func()) (*FolderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("new watcher: %w", err)
	}
	fw := &FolderWatcher{w: w, onChange: onChange, done: make(chan struct{})}
	if err := fw.Watch(dir); err != nil {
		w.Close()
		return nil, err
	}
	go fw.loop()
	return fw, nil
}

// Watch switches to dir.
func (fw *FolderWatcher) Watch(dir string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if dir == fw.dir {
		return nil
	}
	if err := fw.w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	if fw.dir != "" {
		if err := fw.w.Remove(fw.dir); err != nil {
			log.Debugf("Stop watching %s: %v", fw.dir, err)
		}
	}
	fw.dir = dir
	return nil
}

// Close stops watching. Pending notifications are dropped.
func (fw *FolderWatcher) Close() error {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()
	close(fw.done)
	return fw.w.Close()
}

func (fw *FolderWatcher) loop() {
	for {
		select {
		case event, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if relevant(event) {
				fw.schedule()
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			log.Printf("Photo folder watch error: %v", err)
		case <-fw.done:
			return
		}
	}
}

func (fw *FolderWatcher) schedule() {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.timer != nil {
		fw.timer.Reset(settleDelay)
		return
	}
	fw.timer = time.AfterFunc(settleDelay, func() {
		select {
		case <-fw.done:
		default:
			fw.onChange()
		}
	})
}

// relevant reports whether event touches a photo file.
func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return picture.IsPhoto(filepath.Base(event.Name))
}
