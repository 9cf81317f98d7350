package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"github.com/dixieflatline76/PictureFrame/config"
	"github.com/dixieflatline76/PictureFrame/pkg/slideshow"
	"github.com/dixieflatline76/PictureFrame/pkg/wm"
	"github.com/dixieflatline76/PictureFrame/util/log"
)

// Controller owns the widget state and applies every change to the
// compositor and the window manager. It must only be used from the UI thread.
type Controller struct {
	state WidgetState
	comp  *slideshow.Compositor
	wm    wm.Manager
	scale float32

	// OnChange is called after anything that affects rendering or the menu.
	OnChange func()
	// OnResize is called with the new window size in window units.
	OnResize func(w, h int)

	drag *dragState
}

type dragState struct {
	resize bool
	// Window position in screen coordinates for a move, or window size in
	// window units for a resize, at the start of the drag.
	startX, startY int
	// Pointer travel since the start, in window units.
	dx, dy float32
	// How far the window itself moved on the previous step, in window units.
	// Pointer positions are window relative and shrink by that much.
	lastX, lastY float32
}

// NewController starts from st with a no-op window manager until SetManager
// is called.
func NewController(comp *slideshow.Compositor, st WidgetState) *Controller {
	comp.SetUseCustomFrame(st.UseCustomFrame)
	st.UseCustomFrame = comp.UseCustomFrame()
	return &Controller{
		state: st,
		comp:  comp,
		wm:    wm.Nop{},
		scale: 1,
	}
}

// State returns a copy of the current state.
func (c *Controller) State() WidgetState {
	return c.state
}

// Compositor returns the compositor rendering the widget.
func (c *Controller) Compositor() *slideshow.Compositor {
	return c.comp
}

// SetManager replaces the window manager. Call Apply afterwards to push the
// current state to it.
func (c *Controller) SetManager(m wm.Manager) {
	c.wm = m
}

// SetScale sets the number of screen coordinates per window unit.
func (c *Controller) SetScale(s float32) {
	if s > 0 {
		c.scale = s
	}
}

// Apply pushes the whole state to the window manager, as needed once the
// native window exists.
func (c *Controller) Apply() {
	c.check("tool window", c.wm.SetToolWindow())
	if c.state.AttachedToDesktop {
		c.check("attach to desktop", c.wm.AttachToDesktopLayer(true))
	} else {
		c.check("topmost", c.wm.SetTopmost(c.state.Topmost))
	}
	if c.state.ClickThrough {
		c.check("click-through", c.wm.SetClickThrough(true))
	}
	if x, y, err := c.wm.Position(); err == nil {
		c.state.X, c.state.Y = x, y
	}
	log.Debugf("Applied %v", c.state)
}

// NextPhoto shows the next photo.
func (c *Controller) NextPhoto() {
	c.comp.NextPhoto()
	c.changed()
}

// NextFrame shows the next frame image.
func (c *Controller) NextFrame() {
	c.comp.NextFrame()
	c.changed()
}

// SetPhotoFolder switches the slideshow to the photos in dir.
func (c *Controller) SetPhotoFolder(dir string) error {
	if err := c.comp.SetPhotoFolder(dir); err != nil {
		return err
	}
	c.changed()
	return nil
}

// RescanPhotos picks up changes to the current pictures folder.
func (c *Controller) RescanPhotos() {
	if err := c.comp.RescanPhotos(); err != nil {
		log.Printf("Failed to rescan pictures folder: %v", err)
		return
	}
	c.changed()
}

// SetUseCustomFrame switches between frame images and the procedural frame.
func (c *Controller) SetUseCustomFrame(use bool) {
	c.comp.SetUseCustomFrame(use)
	c.state.UseCustomFrame = c.comp.UseCustomFrame()
	c.changed()
}

// SetLocked stops or allows moving and resizing.
func (c *Controller) SetLocked(locked bool) {
	c.state.Locked = locked
	if locked {
		c.drag = nil
	}
	c.changed()
}

// SetTopmost keeps the window above others. While attached to the desktop the
// choice is remembered and applied on detach.
func (c *Controller) SetTopmost(on bool) {
	c.state.Topmost = on
	if !c.state.AttachedToDesktop {
		c.check("topmost", c.wm.SetTopmost(on))
	}
	c.changed()
}

// SetClickThrough lets the mouse pass through the window.
func (c *Controller) SetClickThrough(on bool) {
	c.state.ClickThrough = on
	if on {
		c.drag = nil
	}
	c.check("click-through", c.wm.SetClickThrough(on))
	c.changed()
}

// ToggleClickThrough flips click-through.
func (c *Controller) ToggleClickThrough() {
	c.SetClickThrough(!c.state.ClickThrough)
}

// SetAttachedToDesktop moves the window onto or off the desktop layer.
func (c *Controller) SetAttachedToDesktop(on bool) {
	c.state.AttachedToDesktop = on
	c.check("attach to desktop", c.wm.AttachToDesktopLayer(on))
	if !on && c.state.Topmost {
		c.check("topmost", c.wm.SetTopmost(true))
	}
	if x, y, err := c.wm.Position(); err == nil {
		c.state.X, c.state.Y = x, y
	}
	c.changed()
}

// BeginDrag starts a move, or a resize when pos (in window units) is inside
// the bottom-right grip zone. It does nothing while locked or click-through.
func (c *Controller) BeginDrag(pos fyne.Position) {
	if !c.canDrag() {
		return
	}

	d := &dragState{}
	if pos.X > float32(c.state.Width-gripZone) && pos.Y > float32(c.state.Height-gripZone) {
		d.resize = true
		d.startX, d.startY = c.state.Width, c.state.Height
	} else {
		x, y, err := c.wm.Position()
		if err != nil {
			log.Printf("Window manager: reading position failed: %v", err)
			x, y = c.state.X, c.state.Y
		}
		d.startX, d.startY = x, y
	}
	c.drag = d
}

// DragBy continues the drag with a pointer step in window units.
func (c *Controller) DragBy(dx, dy float32) {
	d := c.drag
	if d == nil || !c.canDrag() {
		return
	}

	if d.resize {
		d.dx += dx
		d.dy += dy
		w := max(config.MinWidth, d.startX+round(d.dx))
		h := max(config.MinHeight, d.startY+round(d.dy))
		if w == c.state.Width && h == c.state.Height {
			return
		}
		c.state.Width, c.state.Height = w, h
		if c.OnResize != nil {
			c.OnResize(w, h)
		}
		return
	}

	stepX, stepY := dx+d.lastX, dy+d.lastY
	d.dx += stepX
	d.dy += stepY
	x := d.startX + round(d.dx*c.scale)
	y := d.startY + round(d.dy*c.scale)
	if err := c.wm.Move(x, y); err != nil {
		log.Printf("Window manager: move failed: %v", err)
		d.lastX, d.lastY = 0, 0
		return
	}
	c.state.X, c.state.Y = x, y

	if _, nop := c.wm.(wm.Nop); nop {
		d.lastX, d.lastY = 0, 0
	} else {
		d.lastX, d.lastY = stepX, stepY
	}
}

// EndDrag finishes the current drag.
func (c *Controller) EndDrag() {
	c.drag = nil
}

// Resized records a window size change made outside of a grip drag.
func (c *Controller) Resized(w, h int) {
	c.state.Width, c.state.Height = w, h
}

func (c *Controller) canDrag() bool {
	return !c.state.Locked && !c.state.ClickThrough
}

func (c *Controller) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

// check logs a window manager failure. The state keeps the user's choice.
func (c *Controller) check(what string, err error) {
	if err != nil {
		log.Printf("Window manager: %s failed: %v", what, err)
	}
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
