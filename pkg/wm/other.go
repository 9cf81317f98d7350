//go:build !windows && !linux && !darwin

package wm

// New returns a Nop manager; this platform has no integration.
func New(handle uintptr) (Manager, error) {
	return Nop{}, nil
}
