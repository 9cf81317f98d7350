package ui

import (
	"fyne.io/fyne/v2"
	"github.com/dixieflatline76/PictureFrame/config"
)

// newMenu builds the context menu from the controller's current state. The
// frame entries only appear when frame images were found.
func newMenu(c *Controller, chooseFolder, exit func()) *fyne.Menu {
	st := c.State()

	items := []*fyne.MenuItem{
		fyne.NewMenuItem(menuNextPicture, c.NextPhoto),
		fyne.NewMenuItem(menuSetFolder, chooseFolder),
		fyne.NewMenuItemSeparator(),
	}

	if c.Compositor().HasFrames() {
		items = append(items,
			fyne.NewMenuItem(menuNextFrame, c.NextFrame),
			checkedItem(menuUseCustomFrame, st.UseCustomFrame, c.SetUseCustomFrame),
			fyne.NewMenuItemSeparator(),
		)
	}

	exitItem := fyne.NewMenuItem(menuExit, exit)
	exitItem.IsQuit = true

	items = append(items,
		checkedItem(menuAlwaysOnTop, st.Topmost, c.SetTopmost),
		checkedItem(menuLockPosition, st.Locked, c.SetLocked),
		checkedItem(menuClickThrough, st.ClickThrough, c.SetClickThrough),
		checkedItem(menuAttachDesktop, st.AttachedToDesktop, c.SetAttachedToDesktop),
		fyne.NewMenuItemSeparator(),
		exitItem,
	)

	return fyne.NewMenu(config.AppName, items...)
}

// checkedItem is a toggle entry that calls set with the flipped value.
func checkedItem(label string, checked bool, set func(bool)) *fyne.MenuItem {
	mi := fyne.NewMenuItem(label, func() { set(!checked) })
	mi.Checked = checked
	return mi
}
