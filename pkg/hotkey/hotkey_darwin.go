//go:build darwin

package hotkey

import "golang.design/x/hotkey"

const (
	supported = true

	modCtrl = hotkey.ModCtrl
	modAlt  = hotkey.ModOption

	keyRight = hotkey.KeyRight
	keyUp    = hotkey.KeyUp
	keyDown  = hotkey.KeyDown
)
