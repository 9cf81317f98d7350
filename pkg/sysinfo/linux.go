//go:build linux

package sysinfo

import (
	"fmt"

	"github.com/BurntSushi/xgbutil"
)

// GetScreenDimensions returns the size of the default X screen in pixels.
func GetScreenDimensions() (int, int, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return 0, 0, fmt.Errorf("connecting to X server: %w", err)
	}
	defer xu.Conn().Close()

	s := xu.Screen()
	if s.WidthInPixels == 0 || s.HeightInPixels == 0 {
		return 0, 0, ErrNoScreen
	}
	return int(s.WidthInPixels), int(s.HeightInPixels), nil
}
