package ui

// gripZone is the size in window units of the bottom-right square where a
// drag resizes instead of moves.
const gripZone = 40

// Context menu copy.
const (
	menuNextPicture    = "Next picture"
	menuSetFolder      = "Set pictures folder..."
	menuNextFrame      = "Next frame"
	menuUseCustomFrame = "Use custom frame"
	menuAlwaysOnTop    = "Always on top"
	menuLockPosition   = "Lock position"
	menuClickThrough   = "Click-through (poster mode)"
	menuAttachDesktop  = "Attach to desktop layer"
	menuExit           = "Exit"
)
