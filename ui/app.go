package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/PictureFrame/asset"
	"github.com/dixieflatline76/PictureFrame/config"
	"github.com/dixieflatline76/PictureFrame/pkg/frame"
	"github.com/dixieflatline76/PictureFrame/pkg/hotkey"
	"github.com/dixieflatline76/PictureFrame/pkg/picture"
	"github.com/dixieflatline76/PictureFrame/pkg/slideshow"
	"github.com/dixieflatline76/PictureFrame/pkg/sysinfo"
	"github.com/dixieflatline76/PictureFrame/pkg/wm"
	"github.com/dixieflatline76/PictureFrame/util/log"
)

// FrameApp represents the application
type FrameApp struct {
	app      fyne.App
	win      fyne.Window
	view     *frameView
	assetMgr *asset.Manager
	cfg      *config.Config
	ctrl     *Controller
	wm       wm.Manager
	watcher  *slideshow.FolderWatcher

	done        chan struct{}
	stopOnce    sync.Once
	stopHotkeys func()
}

var (
	instance *FrameApp // Singleton instance of the application
	initErr  error
	once     sync.Once // Ensures the singleton is created only once
)

// GetInstance returns the singleton instance of the application, building it
// from cfg on the first call.
func GetInstance(cfg *config.Config) (*FrameApp, error) {
	once.Do(func() {
		instance, initErr = newFrameApp(cfg)
	})
	return instance, initErr
}

func newFrameApp(cfg *config.Config) (*FrameApp, error) {
	photos, err := slideshow.LoadPhotoSet(cfg.PhotoDir)
	if err != nil {
		return nil, fmt.Errorf("loading photos: %w", err)
	}
	log.Printf("Loaded %d photo(s) from %s", photos.Len(), cfg.PhotoDir)

	frames, err := frame.LoadSet(cfg.FramesDir)
	if err != nil {
		return nil, fmt.Errorf("loading frames: %w", err)
	}

	comp := slideshow.NewCompositor(photos, frames, cfg.UseCustomFrame, picture.ParseCropMode(cfg.CropMode))

	st := StateFromConfig(cfg)
	if sw, sh, err := sysinfo.GetScreenDimensions(); err == nil {
		st = st.FitScreen(sw, sh)
	} else {
		log.Debugf("Screen size unknown: %v", err)
	}

	return &FrameApp{
		app:      app.NewWithID(config.AppName),
		assetMgr: asset.NewManager(),
		cfg:      cfg,
		ctrl:     NewController(comp, st),
		wm:       wm.Nop{},
		done:     make(chan struct{}),
	}, nil
}

// Run shows the picture frame and blocks until the application quits.
func (fa *FrameApp) Run() {
	if drv, ok := fa.app.Driver().(desktop.Driver); ok {
		fa.win = drv.CreateSplashWindow()
	} else {
		log.Println("Frameless windows not supported, using a normal window")
		fa.win = fa.app.NewWindow(config.AppName)
	}
	fa.win.SetPadded(false)

	if icon, err := fa.assetMgr.GetIcon(asset.AppIcon); err == nil {
		fa.app.SetIcon(icon)
	}

	fa.view = newFrameView(fa.ctrl, fa.showMenu)
	fa.win.SetContent(fa.view)

	st := fa.ctrl.State()
	fa.win.Resize(fyne.NewSize(float32(st.Width), float32(st.Height)))

	fa.ctrl.OnChange = fa.refresh
	fa.ctrl.OnResize = func(w, h int) {
		fa.win.Resize(fyne.NewSize(float32(w), float32(h)))
	}
	fa.setTrayMenu()

	fa.app.Lifecycle().SetOnStarted(fa.started)
	fa.app.Lifecycle().SetOnStopped(fa.stop)
	fa.win.ShowAndRun()
}

// started hooks up everything that needs the native window.
func (fa *FrameApp) started() {
	fa.ctrl.SetScale(fa.win.Canvas().Scale())

	if nw, ok := fa.win.(driver.NativeWindow); ok {
		nw.RunNative(func(ctx any) {
			m, err := newManager(ctx)
			if err != nil {
				log.Printf("Window manager integration unavailable: %v", err)
				return
			}
			fa.wm = m
		})
	}
	fa.ctrl.SetManager(fa.wm)
	fa.ctrl.Apply()

	go fa.runTimer()

	w, err := slideshow.NewFolderWatcher(fa.ctrl.Compositor().Photos().Dir(), func() {
		fyne.Do(fa.ctrl.RescanPhotos)
	})
	if err != nil {
		log.Printf("Not watching pictures folder: %v", err)
	} else {
		fa.watcher = w
	}

	if fa.cfg.Hotkeys {
		fa.stopHotkeys = hotkey.StartListeners(hotkey.Actions{
			NextPicture:        func() { fyne.Do(fa.ctrl.NextPhoto) },
			NextFrame:          func() { fyne.Do(fa.ctrl.NextFrame) },
			ToggleClickThrough: func() { fyne.Do(fa.ctrl.ToggleClickThrough) },
		})
	}
}

// newManager picks the window manager backend for a native window context.
func newManager(ctx any) (wm.Manager, error) {
	switch c := ctx.(type) {
	case driver.WindowsWindowContext:
		return wm.New(c.HWND)
	case *driver.WindowsWindowContext:
		return wm.New(c.HWND)
	case driver.X11WindowContext:
		return wm.New(c.WindowHandle)
	case *driver.X11WindowContext:
		return wm.New(c.WindowHandle)
	case driver.MacWindowContext:
		return wm.New(c.NSWindow)
	case *driver.MacWindowContext:
		return wm.New(c.NSWindow)
	}
	return nil, fmt.Errorf("unsupported window context %T", ctx)
}

// runTimer advances the slideshow every configured interval until stop.
func (fa *FrameApp) runTimer() {
	ticker := time.NewTicker(fa.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fyne.Do(fa.ctrl.NextPhoto)
		case <-fa.done:
			return
		}
	}
}

func (fa *FrameApp) refresh() {
	fa.view.Refresh()
	fa.setTrayMenu()
}

func (fa *FrameApp) showMenu(e *fyne.PointEvent) {
	menu := newMenu(fa.ctrl, fa.chooseFolder, fa.quit)
	widget.ShowPopUpMenuAtPosition(menu, fa.win.Canvas(), e.AbsolutePosition)
}

// setTrayMenu mirrors the context menu in the system tray, which stays
// reachable while the window ignores the mouse.
func (fa *FrameApp) setTrayMenu() {
	desk, ok := fa.app.(desktop.App)
	if !ok {
		return
	}
	desk.SetSystemTrayMenu(newMenu(fa.ctrl, fa.chooseFolder, fa.quit))
	if icon, err := fa.assetMgr.GetIcon(asset.AppIcon); err == nil {
		desk.SetSystemTrayIcon(icon)
	}
}

func (fa *FrameApp) chooseFolder() {
	pickFolder(fa.app, fa.ctrl.Compositor().Photos().Dir(), func(dir string) {
		if err := fa.ctrl.SetPhotoFolder(dir); err != nil {
			log.Printf("Failed to open pictures folder %s: %v", dir, err)
			return
		}
		if fa.watcher != nil {
			if err := fa.watcher.Watch(dir); err != nil {
				log.Printf("Not watching pictures folder: %v", err)
			}
		}
	})
}

func (fa *FrameApp) quit() {
	fa.app.Quit()
}

func (fa *FrameApp) stop() {
	fa.stopOnce.Do(func() {
		close(fa.done)
		if fa.stopHotkeys != nil {
			fa.stopHotkeys()
		}
		if fa.watcher != nil {
			fa.watcher.Close()
		}
		if c, ok := fa.wm.(io.Closer); ok {
			if err := c.Close(); err != nil {
				log.Printf("Failed to close window manager connection: %v", err)
			}
		}
	})
}
