//go:build !linux && !windows && !darwin

package sysinfo

// GetScreenDimensions is not available on this platform.
func GetScreenDimensions() (int, int, error) {
	return 0, 0, ErrNoScreen
}
