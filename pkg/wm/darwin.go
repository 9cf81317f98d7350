//go:build darwin

package wm

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation -framework AppKit

#import <AppKit/AppKit.h>
#include <stdint.h>

// NSApplicationActivationPolicyAccessory has no Dock icon and no menu bar.
const long Accessory = 1;

void setActivationPolicy(long policy) {
    [NSApp setActivationPolicy:policy];
    [NSApp activateIgnoringOtherApps:YES];
}

void setIgnoresMouse(uintptr_t w, int on) {
    [(NSWindow *)w setIgnoresMouseEvents:(on ? YES : NO)];
}

void setLevel(uintptr_t w, int level) {
    NSInteger l = NSNormalWindowLevel;
    if (level > 0) {
        l = NSFloatingWindowLevel;
    } else if (level < 0) {
        l = CGWindowLevelForKey(kCGDesktopIconWindowLevelKey) - 1;
    }
    [(NSWindow *)w setLevel:l];
}

void setStationary(uintptr_t w, int on) {
    NSWindowCollectionBehavior b = NSWindowCollectionBehaviorDefault;
    if (on) {
        b = NSWindowCollectionBehaviorCanJoinAllSpaces | NSWindowCollectionBehaviorStationary;
    }
    [(NSWindow *)w setCollectionBehavior:b];
}

// Cocoa puts the origin bottom-left of the main screen; these flip to top-left.
void topLeft(uintptr_t w, int *x, int *y) {
    NSRect f = [(NSWindow *)w frame];
    NSRect s = [[[NSScreen screens] objectAtIndex:0] frame];
    *x = (int)f.origin.x;
    *y = (int)(s.size.height - (f.origin.y + f.size.height));
}

void moveTopLeft(uintptr_t w, int x, int y) {
    NSRect s = [[[NSScreen screens] objectAtIndex:0] frame];
    [(NSWindow *)w setFrameTopLeftPoint:NSMakePoint(x, s.size.height - y)];
}
*/
import "C"

import "errors"

const (
	levelDesktop  = -1
	levelNormal   = 0
	levelFloating = 1
)

// cocoa drives an NSWindow. Coordinates are screen points from the top-left
// of the main display.
type cocoa struct {
	win      C.uintptr_t
	topmost  bool
	attached bool
}

// New manages the NSWindow at the given address.
func New(handle uintptr) (Manager, error) {
	if handle == 0 {
		return nil, errors.New("no NSWindow")
	}
	return &cocoa{win: C.uintptr_t(handle)}, nil
}

func (m *cocoa) SetClickThrough(on bool) error {
	C.setIgnoresMouse(m.win, boolInt(on))
	return nil
}

// SetToolWindow removes the Dock icon by turning the app into an accessory.
func (m *cocoa) SetToolWindow() error {
	C.setActivationPolicy(C.Accessory)
	return nil
}

func (m *cocoa) AttachToDesktopLayer(on bool) error {
	m.attached = on
	C.setStationary(m.win, boolInt(on))
	m.applyLevel()
	return nil
}

func (m *cocoa) SetTopmost(on bool) error {
	m.topmost = on
	m.applyLevel()
	return nil
}

func (m *cocoa) Position() (int, int, error) {
	var x, y C.int
	C.topLeft(m.win, &x, &y)
	return int(x), int(y), nil
}

func (m *cocoa) Move(x, y int) error {
	C.moveTopLeft(m.win, C.int(x), C.int(y))
	return nil
}

func (m *cocoa) applyLevel() {
	switch {
	case m.attached:
		C.setLevel(m.win, levelDesktop)
	case m.topmost:
		C.setLevel(m.win, levelFloating)
	default:
		C.setLevel(m.win, levelNormal)
	}
}

func boolInt(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
