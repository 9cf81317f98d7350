//go:build linux

package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/dixieflatline76/PictureFrame/util/log"
)

// x11 drives an X11 window through EWMH hints and the SHAPE extension.
type x11 struct {
	xu    *xgbutil.XUtil
	win   xproto.Window
	shape bool
}

// New connects to the X server and manages the window with the given XID.
func New(handle uintptr) (Manager, error) {
	if handle == 0 {
		return nil, fmt.Errorf("no X11 window")
	}
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connecting to X server: %w", err)
	}

	m := &x11{xu: xu, win: xproto.Window(handle)}
	if err := shape.Init(xu.Conn()); err != nil {
		log.Printf("SHAPE extension unavailable, click-through disabled: %v", err)
	} else {
		m.shape = true
	}
	return m, nil
}

// SetClickThrough empties the input region of the window, or resets it to
// the default, using the SHAPE extension.
func (m *x11) SetClickThrough(on bool) error {
	if !m.shape {
		return fmt.Errorf("click-through: %w", ErrUnsupported)
	}

	var err error
	if on {
		err = shape.RectanglesChecked(m.xu.Conn(), shape.SoSet, shape.SkInput,
			xproto.ClipOrderingUnsorted, m.win, 0, 0, nil).Check()
	} else {
		err = shape.MaskChecked(m.xu.Conn(), shape.SoSet, shape.SkInput,
			m.win, 0, 0, xproto.PixmapNone).Check()
	}
	if err != nil {
		return fmt.Errorf("setting input shape: %w", err)
	}
	return nil
}

func (m *x11) SetToolWindow() error {
	return m.states(ewmh.StateAdd, "_NET_WM_STATE_SKIP_TASKBAR", "_NET_WM_STATE_SKIP_PAGER")
}

// AttachToDesktopLayer keeps the window below all others and on every
// workspace. X11 has no desktop window to reparent into.
func (m *x11) AttachToDesktopLayer(on bool) error {
	if on {
		if err := m.states(ewmh.StateRemove, "_NET_WM_STATE_ABOVE"); err != nil {
			return err
		}
		return m.states(ewmh.StateAdd, "_NET_WM_STATE_BELOW", "_NET_WM_STATE_STICKY")
	}
	return m.states(ewmh.StateRemove, "_NET_WM_STATE_BELOW", "_NET_WM_STATE_STICKY")
}

func (m *x11) SetTopmost(on bool) error {
	if on {
		return m.states(ewmh.StateAdd, "_NET_WM_STATE_ABOVE")
	}
	return m.states(ewmh.StateRemove, "_NET_WM_STATE_ABOVE")
}

func (m *x11) Position() (int, int, error) {
	geom, err := xwindow.New(m.xu, m.win).DecorGeometry()
	if err != nil {
		return 0, 0, fmt.Errorf("reading window geometry: %w", err)
	}
	return geom.X(), geom.Y(), nil
}

// Move asks the window manager to move the window. When the request is
// refused the window is moved directly, but the move is reported as failed
// since it cannot be confirmed.
func (m *x11) Move(x, y int) error {
	return moveWindow(
		func() error { return ewmh.MoveWindow(m.xu, m.win, x, y) },
		func() { xwindow.New(m.xu, m.win).Move(x, y) },
	)
}

func moveWindow(request func() error, direct func()) error {
	if err := request(); err != nil {
		direct()
		return fmt.Errorf("window manager refused move, moved directly: %w", err)
	}
	return nil
}

// Close drops the X connection.
func (m *x11) Close() error {
	m.xu.Conn().Close()
	return nil
}

func (m *x11) states(action int, atoms ...string) error {
	for _, atom := range atoms {
		if err := ewmh.WmStateReq(m.xu, m.win, action, atom); err != nil {
			return fmt.Errorf("requesting %s: %w", atom, err)
		}
	}
	return nil
}
