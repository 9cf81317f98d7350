//go:build linux

package hotkey

import "golang.design/x/hotkey"

const (
	supported = true

	modCtrl = hotkey.ModCtrl
	modAlt  = hotkey.Mod1 // Alt on standard X11 keymaps

	keyRight = hotkey.KeyRight
	keyUp    = hotkey.KeyUp
	keyDown  = hotkey.KeyDown
)
