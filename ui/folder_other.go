//go:build !windows

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/dixieflatline76/PictureFrame/util/log"
)

// pickFolder shows a folder dialog in its own window, since the frame window
// is usually too small to host it, and calls done with the chosen folder.
func pickFolder(a fyne.App, start string, done func(dir string)) {
	w := a.NewWindow(menuSetFolder)
	w.Resize(fyne.NewSize(720, 480))

	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			log.Printf("Folder dialog failed: %v", err)
			return
		}
		if uri == nil {
			return
		}
		done(uri.Path())
	}, w)

	if start != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.SetOnClosed(w.Close)
	d.Resize(fyne.NewSize(700, 460))

	w.Show()
	d.Show()
}
