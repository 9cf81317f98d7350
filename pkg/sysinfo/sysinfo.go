// Package sysinfo reads properties of the display the widget runs on.
package sysinfo

import "errors"

// ErrNoScreen is returned when no screen size can be determined.
var ErrNoScreen = errors.New("screen size unavailable")
