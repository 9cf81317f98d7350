package ui

import (
	"fmt"

	"github.com/dixieflatline76/PictureFrame/config"
)

// WidgetState is the user-facing state of the picture frame window. Width and
// Height are in window units; X and Y are screen coordinates as reported by
// the window manager.
type WidgetState struct {
	Locked            bool
	Topmost           bool
	ClickThrough      bool
	AttachedToDesktop bool
	UseCustomFrame    bool

	X, Y          int
	Width, Height int
}

// StateFromConfig builds the initial state from the start-up configuration.
func StateFromConfig(cfg *config.Config) WidgetState {
	return WidgetState{
		Locked:            cfg.Locked,
		Topmost:           cfg.Topmost,
		ClickThrough:      cfg.ClickThrough,
		AttachedToDesktop: cfg.AttachToDesktop,
		UseCustomFrame:    cfg.UseCustomFrame,
		Width:             cfg.Width,
		Height:            cfg.Height,
	}
}

// FitScreen shrinks the window, keeping its aspect ratio, so it is no larger
// than the screen of sw by sh. It never goes below the minimum size.
func (s WidgetState) FitScreen(sw, sh int) WidgetState {
	if sw <= 0 || sh <= 0 || (s.Width <= sw && s.Height <= sh) {
		return s
	}
	scale := min(float64(sw)/float64(s.Width), float64(sh)/float64(s.Height))
	s.Width = max(config.MinWidth, int(float64(s.Width)*scale))
	s.Height = max(config.MinHeight, int(float64(s.Height)*scale))
	return s
}

func (s WidgetState) String() string {
	return fmt.Sprintf("state(%dx%d at %d,%d locked=%t topmost=%t click-through=%t attached=%t custom=%t)",
		s.Width, s.Height, s.X, s.Y, s.Locked, s.Topmost, s.ClickThrough, s.AttachedToDesktop, s.UseCustomFrame)
}
