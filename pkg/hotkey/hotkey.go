// Package hotkey binds the global keyboard shortcuts of the picture frame.
package hotkey

import (
	"sync"
	"time"

	"github.com/dixieflatline76/PictureFrame/util/log"
	"golang.design/x/hotkey"
)

// Actions holds the callbacks run by the shortcuts. Nil actions are not
// registered. Callbacks run on a listener goroutine.
type Actions struct {
	NextPicture        func()
	NextFrame          func()
	ToggleClickThrough func()
}

type binding struct {
	name   string
	key    hotkey.Key
	action func()
}

// bindings maps every non-nil action to its Ctrl+Alt shortcut.
func bindings(a Actions) []binding {
	all := []binding{
		{"Next Picture", keyRight, a.NextPicture},
		{"Next Frame", keyUp, a.NextFrame},
		{"Toggle Click-Through", keyDown, a.ToggleClickThrough},
	}
	var out []binding
	for _, b := range all {
		if b.action != nil {
			out = append(out, b)
		}
	}
	return out
}

// StartListeners registers the shortcuts and starts listening for them:
//
//	Ctrl + Alt + Right  next picture
//	Ctrl + Alt + Up     next frame
//	Ctrl + Alt + Down   toggle click-through
//
// Registration failures are logged and skipped. The returned function
// unregisters everything that was registered.
func StartListeners(a Actions) (stop func()) {
	if !supported {
		log.Print("Global hotkeys are not supported on this platform")
		return func() {}
	}

	done := make(chan struct{})
	var registered []*hotkey.Hotkey

	for _, b := range bindings(a) {
		hk := hotkey.New([]hotkey.Modifier{modCtrl, modAlt}, b.key)
		if err := hk.Register(); err != nil {
			log.Printf("Failed to register hotkey %s: %v", b.name, err)
			continue
		}
		log.Printf("Registered hotkey: %s", b.name)
		registered = append(registered, hk)

		go func(hk *hotkey.Hotkey, b binding) {
			for {
				select {
				case <-done:
					return
				case <-hk.Keydown():
					log.Debugf("Hotkey pressed: %s", b.name)
					b.action()
					// Holding the keys repeats keydown events quickly.
					time.Sleep(200 * time.Millisecond)
				}
			}
		}(hk, b)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			for _, hk := range registered {
				if err := hk.Unregister(); err != nil {
					log.Printf("Failed to unregister hotkey: %v", err)
				}
			}
		})
	}
}
