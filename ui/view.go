package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// frameView shows the composed picture and turns pointer input into
// controller calls.
type frameView struct {
	widget.BaseWidget

	ctrl     *Controller
	raster   *canvas.Raster
	dragging bool

	onMenu func(*fyne.PointEvent)
}

var (
	_ fyne.Draggable         = (*frameView)(nil)
	_ fyne.SecondaryTappable = (*frameView)(nil)
)

func newFrameView(ctrl *Controller, onMenu func(*fyne.PointEvent)) *frameView {
	v := &frameView{ctrl: ctrl, onMenu: onMenu}
	v.raster = canvas.NewRaster(func(w, h int) image.Image {
		return ctrl.Compositor().Render(w, h)
	})
	v.ExtendBaseWidget(v)
	return v
}

func (v *frameView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

func (v *frameView) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

// Dragged starts a drag on the first event, at the position the pointer was
// pressed.
func (v *frameView) Dragged(e *fyne.DragEvent) {
	if !v.dragging {
		v.dragging = true
		v.ctrl.BeginDrag(e.Position.Subtract(e.Dragged))
	}
	v.ctrl.DragBy(e.Dragged.DX, e.Dragged.DY)
}

func (v *frameView) DragEnd() {
	v.dragging = false
	v.ctrl.EndDrag()
}

func (v *frameView) TappedSecondary(e *fyne.PointEvent) {
	if v.onMenu != nil {
		v.onMenu(e)
	}
}
