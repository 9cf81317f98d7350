// Package wm talks to the platform window manager for the window behaviour the
// GUI toolkit does not expose: click-through, tool window styling, desktop
// layer attachment, always-on-top and positioning.
package wm

import "errors"

// ErrUnsupported is returned when the running window system lacks a feature.
var ErrUnsupported = errors.New("not supported by this window system")

// Manager applies window manager state to one top-level window. Coordinates
// are physical pixels.
type Manager interface {
	// SetClickThrough lets mouse input pass through the window to whatever is
	// beneath it.
	SetClickThrough(on bool) error
	// SetToolWindow keeps the window out of the taskbar and task switcher.
	SetToolWindow() error
	// AttachToDesktopLayer pins the window behind normal windows, on the
	// desktop itself where the platform allows it.
	AttachToDesktopLayer(on bool) error
	SetTopmost(on bool) error
	Position() (x, y int, err error)
	Move(x, y int) error
}

// Nop is the Manager used where no window manager integration exists. Every
// call succeeds without effect.
type Nop struct{}

func (Nop) SetClickThrough(bool) error      { return nil }
func (Nop) SetToolWindow() error            { return nil }
func (Nop) AttachToDesktopLayer(bool) error { return nil }
func (Nop) SetTopmost(bool) error           { return nil }
func (Nop) Position() (int, int, error)     { return 0, 0, nil }
func (Nop) Move(int, int) error             { return nil }
