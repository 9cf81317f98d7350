//go:build !darwin && !windows && !linux

package hotkey

import "golang.design/x/hotkey"

const (
	supported = false

	modCtrl = hotkey.Modifier(0) // Dummy for default
	modAlt  = hotkey.Modifier(0)

	keyRight = hotkey.Key(0)
	keyUp    = hotkey.Key(0)
	keyDown  = hotkey.Key(0)
)
