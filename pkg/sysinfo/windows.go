//go:build windows

package sysinfo

import "golang.org/x/sys/windows"

var procGetSystemMetrics = windows.NewLazySystemDLL("user32.dll").NewProc("GetSystemMetrics")

const (
	SM_CXSCREEN = 0
	SM_CYSCREEN = 1
)

// GetScreenDimensions returns the primary monitor size in pixels.
func GetScreenDimensions() (int, int, error) {
	w, _, _ := procGetSystemMetrics.Call(SM_CXSCREEN)
	h, _, _ := procGetSystemMetrics.Call(SM_CYSCREEN)
	// GetSystemMetrics reports failure as 0 without setting the last error.
	if w == 0 || h == 0 {
		return 0, 0, ErrNoScreen
	}
	return int(w), int(h), nil
}
