//go:build windows

package ui

import (
	"errors"
	"runtime"

	"fyne.io/fyne/v2"
	"github.com/dixieflatline76/PictureFrame/util/log"
	"github.com/harry1453/go-common-file-dialog/cfd"
)

// pickFolder shows the native folder picker starting at start and calls done
// on the UI thread with the chosen folder. Nothing is called on cancel.
func pickFolder(_ fyne.App, start string, done func(dir string)) {
	go func() {
		// The dialog is a COM object bound to the thread that created it.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		dlg, err := cfd.NewSelectFolderDialog(cfd.DialogConfig{
			Title:  menuSetFolder,
			Role:   "PictureFrameFolder",
			Folder: start,
		})
		if err != nil {
			log.Printf("Failed to create folder dialog: %v", err)
			return
		}
		defer dlg.Release()

		if err := dlg.Show(); err != nil {
			if !errors.Is(err, cfd.ErrorCancelled) {
				log.Printf("Folder dialog failed: %v", err)
			}
			return
		}
		dir, err := dlg.GetResult()
		if err != nil {
			if !errors.Is(err, cfd.ErrorCancelled) {
				log.Printf("Folder dialog failed: %v", err)
			}
			return
		}
		fyne.Do(func() { done(dir) })
	}()
}
