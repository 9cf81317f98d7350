//go:build windows

package wm

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	WS_EX_TRANSPARENT = 0x00000020
	WS_EX_TOOLWINDOW  = 0x00000080
	WS_EX_APPWINDOW   = 0x00040000
	WS_EX_LAYERED     = 0x00080000

	SWP_NOSIZE       = 0x0001
	SWP_NOMOVE       = 0x0002
	SWP_NOZORDER     = 0x0004
	SWP_NOACTIVATE   = 0x0010
	SWP_FRAMECHANGED = 0x0020

	LWA_ALPHA   = 0x2
	SMTO_NORMAL = 0x0

	// Undocumented Progman message that spawns the WorkerW behind the desktop
	// icons.
	WM_SPAWN_WORKER = 0x052C
)

var (
	// Negative indices go through a variable so they convert to uintptr.
	gwlExStyle = -20

	hwndTopmost   = ^uintptr(0) // (HWND)-1
	hwndNoTopmost = ^uintptr(1) // (HWND)-2
)

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	procGetWindowLongPtrW          = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procGetWindowRect              = user32.NewProc("GetWindowRect")
	procScreenToClient             = user32.NewProc("ScreenToClient")
	procFindWindowW                = user32.NewProc("FindWindowW")
	procFindWindowExW              = user32.NewProc("FindWindowExW")
	procSendMessageTimeoutW        = user32.NewProc("SendMessageTimeoutW")
	procSetParent                  = user32.NewProc("SetParent")
)

// win32 drives a top-level window through user32.
type win32 struct {
	hwnd   uintptr
	parent uintptr // WorkerW while attached to the desktop
}

// New manages the window with the given HWND.
func New(handle uintptr) (Manager, error) {
	if handle == 0 {
		return nil, errors.New("no window handle")
	}
	return &win32{hwnd: handle}, nil
}

// SetClickThrough toggles WS_EX_TRANSPARENT on a layered window so clicks
// fall through to the windows below.
func (w *win32) SetClickThrough(on bool) error {
	if on {
		if err := w.updateExStyle(WS_EX_LAYERED|WS_EX_TRANSPARENT, 0); err != nil {
			return err
		}
	} else if err := w.updateExStyle(WS_EX_LAYERED, WS_EX_TRANSPARENT); err != nil {
		return err
	}

	// A layered window stays invisible until its attributes are set.
	ret, _, err := procSetLayeredWindowAttributes.Call(w.hwnd, 0, 255, LWA_ALPHA)
	if ret == 0 {
		return fmt.Errorf("SetLayeredWindowAttributes: %w", err)
	}
	return nil
}

func (w *win32) SetToolWindow() error {
	if err := w.updateExStyle(WS_EX_TOOLWINDOW, WS_EX_APPWINDOW); err != nil {
		return err
	}
	return w.setPos(0, 0, 0, SWP_NOMOVE|SWP_NOSIZE|SWP_NOZORDER|SWP_NOACTIVATE|SWP_FRAMECHANGED)
}

// AttachToDesktopLayer reparents the window into the WorkerW that sits
// between the wallpaper and the desktop icons, or back to the desktop root.
func (w *win32) AttachToDesktopLayer(on bool) error {
	if !on {
		procSetParent.Call(w.hwnd, 0)
		w.parent = 0
		return nil
	}

	workerW, err := findWorkerW()
	if err != nil {
		return err
	}
	// Position() reports screen coordinates; keep them across the reparent.
	x, y, posErr := w.Position()
	if ret, _, err := procSetParent.Call(w.hwnd, workerW); ret == 0 {
		return fmt.Errorf("SetParent: %w", err)
	}
	w.parent = workerW
	if posErr == nil {
		return w.Move(x, y)
	}
	return nil
}

func (w *win32) SetTopmost(on bool) error {
	after := hwndNoTopmost
	if on {
		after = hwndTopmost
	}
	return w.setPos(after, 0, 0, SWP_NOMOVE|SWP_NOSIZE|SWP_NOACTIVATE)
}

// Position returns the top-left corner of the window in screen coordinates.
func (w *win32) Position() (int, int, error) {
	var r windows.Rect
	if ret, _, err := procGetWindowRect.Call(w.hwnd, uintptr(unsafe.Pointer(&r))); ret == 0 {
		return 0, 0, fmt.Errorf("GetWindowRect: %w", err)
	}
	return int(r.Left), int(r.Top), nil
}

// Move places the top-left corner of the window at screen coordinates x, y.
func (w *win32) Move(x, y int) error {
	if w.parent != 0 {
		p := struct{ X, Y int32 }{int32(x), int32(y)}
		procScreenToClient.Call(w.parent, uintptr(unsafe.Pointer(&p)))
		x, y = int(p.X), int(p.Y)
	}
	return w.setPos(0, x, y, SWP_NOSIZE|SWP_NOZORDER|SWP_NOACTIVATE)
}

func (w *win32) setPos(after uintptr, x, y int, flags uintptr) error {
	ret, _, err := procSetWindowPos.Call(w.hwnd, after, uintptr(x), uintptr(y), 0, 0, flags)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos: %w", err)
	}
	return nil
}

func (w *win32) updateExStyle(set, clear uintptr) error {
	style, _, _ := procGetWindowLongPtrW.Call(w.hwnd, uintptr(gwlExStyle))
	next := style&^clear | set
	if next == style {
		return nil
	}
	// SetWindowLongPtr returns the previous value, which may legitimately be 0,
	// so only a non-zero last error means failure.
	ret, _, err := procSetWindowLongPtrW.Call(w.hwnd, uintptr(gwlExStyle), next)
	if ret == 0 {
		if errno, ok := err.(windows.Errno); ok && errno != 0 {
			return fmt.Errorf("SetWindowLongPtr: %w", err)
		}
	}
	return nil
}

var (
	enumOnce     sync.Once
	enumCallback uintptr
	enumMu       sync.Mutex
	enumWorkerW  uintptr
)

// findWorkerW asks Progman to create the desktop WorkerW and returns it.
func findWorkerW() (uintptr, error) {
	progman := findWindowEx(0, 0, "Progman")
	if progman == 0 {
		return 0, errors.New("Progman window not found")
	}
	var result uintptr
	procSendMessageTimeoutW.Call(progman, WM_SPAWN_WORKER, 0, 0, SMTO_NORMAL, 1000, uintptr(unsafe.Pointer(&result)))

	enumOnce.Do(func() {
		enumCallback = windows.NewCallback(func(top windows.HWND, _ uintptr) uintptr {
			if findWindowEx(uintptr(top), 0, "SHELLDLL_DefView") != 0 {
				// The WorkerW we want is the next top-level sibling.
				enumWorkerW = findWindowEx(0, uintptr(top), "WorkerW")
			}
			return 1
		})
	})

	enumMu.Lock()
	defer enumMu.Unlock()
	enumWorkerW = 0
	if err := windows.EnumWindows(enumCallback, nil); err != nil {
		return 0, fmt.Errorf("EnumWindows: %w", err)
	}
	if enumWorkerW != 0 {
		return enumWorkerW, nil
	}

	// Newer shells host the WorkerW as a child of Progman instead.
	if child := findWindowEx(progman, 0, "WorkerW"); child != 0 {
		return child, nil
	}
	return 0, errors.New("desktop WorkerW not found")
}

func findWindowEx(parent, after uintptr, class string) uintptr {
	name, err := windows.UTF16PtrFromString(class)
	if err != nil {
		return 0
	}
	if parent == 0 && after == 0 {
		ret, _, _ := procFindWindowW.Call(uintptr(unsafe.Pointer(name)), 0)
		return ret
	}
	ret, _, _ := procFindWindowExW.Call(parent, after, uintptr(unsafe.Pointer(name)), 0)
	return ret
}
