package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"gonum.org/v1/plot/vg"
)

// viewer owns one window per diagram. All windows draw from the same
// Diagrams, so a click in one highlights the point everywhere.
type viewer struct {
	app     fyne.App
	d       *Diagrams
	talk    bool
	w, h    vg.Length
	windows []*diagramWindow
}

type diagramWindow struct {
	v       *viewer
	k       int
	window  fyne.Window
	img     *canvas.Image
	overlay *pickOverlay
	status  *widget.Label
	raster  *Raster
}

func newViewer(a fyne.App, d *Diagrams, talk bool, w, h vg.Length) *viewer {
	v := &viewer{app: a, d: d, talk: talk, w: w, h: h}
	for k := range d.Views {
		v.windows = append(v.windows, v.newDiagramWindow(k))
	}
	d.Selection.OnChange(v.redraw)
	v.redraw()
	return v
}

func (v *viewer) newDiagramWindow(k int) *diagramWindow {
	view := v.d.Views[k]
	dw := &diagramWindow{v: v, k: k}
	dw.window = v.app.NewWindow(fmt.Sprintf("%s vs %s", view.YLabel, view.XLabel))

	dw.img = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	dw.img.FillMode = canvas.ImageFillContain
	dw.img.SetMinSize(fyne.NewSize(float32(pixels(v.w)), float32(pixels(v.h))))
	dw.overlay = newPickOverlay(dw.picked)
	dw.status = widget.NewLabel("")

	buttons := container.NewHBox(
		widget.NewButton("Snapshot", dw.snapshot),
		widget.NewButton("Clear", v.d.Selection.Clear),
	)
	// In talkative mode feedback is printed on every click instead.
	if !v.talk {
		buttons.Add(widget.NewButton("Feedback", v.d.Feedback))
	}
	buttons.Add(dw.status)

	dw.window.SetContent(container.NewBorder(nil, buttons, nil, nil,
		container.NewStack(dw.img, dw.overlay)))
	return dw
}

// Run shows every window and blocks until the last one is closed.
func (v *viewer) Run() {
	for _, dw := range v.windows {
		dw.window.Show()
	}
	v.app.Run()
}

func (v *viewer) redraw() {
	for _, dw := range v.windows {
		dw.redraw()
	}
}

func (dw *diagramWindow) redraw() {
	p, err := dw.v.d.Plot(dw.k)
	if err != nil {
		dialog.ShowError(err, dw.window)
		return
	}
	dw.raster = Rasterize(p, dw.v.d.Views[dw.k], dw.v.w, dw.v.h)
	dw.img.Image = dw.raster.Image
	dw.img.Refresh()
	dw.status.SetText(fmt.Sprintf("%d highlighted", dw.v.d.Selection.Len()))
}

// picked handles a tap at pos on an overlay of the given size.
func (dw *diagramWindow) picked(pos fyne.Position, size fyne.Size) {
	if dw.raster == nil {
		return
	}
	b := dw.raster.Image.Bounds()
	x, y, ok := imagePoint(pos, size, float32(b.Dx()), float32(b.Dy()))
	if !ok {
		return
	}
	rows := dw.raster.Hit(float64(x), float64(y))
	if len(rows) == 0 {
		return
	}
	dw.v.d.Selection.Toggle(rows...)
	if dw.v.talk {
		dw.v.d.Feedback()
	}
}

func (dw *diagramWindow) snapshot() {
	p, err := dw.v.d.Plot(dw.k)
	if err != nil {
		dialog.ShowError(err, dw.window)
		return
	}
	paths, err := dw.v.d.Session.Snapshot(p, dw.k, dw.v.w, dw.v.h)
	if err != nil {
		dialog.ShowError(err, dw.window)
		return
	}
	dialog.ShowInformation("Snapshot", "Saved\n"+strings.Join(paths, "\n"), dw.window)
}

// containRect returns where an imgW x imgH image lands inside a view of
// viewW x viewH when scaled to fit without cropping.
func containRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, scale float32) {
	if imgW <= 0 || imgH <= 0 {
		return 0, 0, 1
	}
	scale = viewW / imgW
	if sy := viewH / imgH; sy < scale {
		scale = sy
	}
	drawX = (viewW - imgW*scale) / 2
	drawY = (viewH - imgH*scale) / 2
	return drawX, drawY, scale
}

// imagePoint maps a position on the overlay to image pixels. ok is false
// when pos falls in the letterbox around the image.
func imagePoint(pos fyne.Position, view fyne.Size, imgW, imgH float32) (x, y float32, ok bool) {
	drawX, drawY, scale := containRect(imgW, imgH, view.Width, view.Height)
	if scale <= 0 {
		return 0, 0, false
	}
	x = (pos.X - drawX) / scale
	y = (pos.Y - drawY) / scale
	if x < 0 || y < 0 || x > imgW || y > imgH {
		return 0, 0, false
	}
	return x, y, true
}

// pickOverlay is a transparent widget over a diagram image that reports taps.
type pickOverlay struct {
	widget.BaseWidget
	onTap func(fyne.Position, fyne.Size)
}

func newPickOverlay(onTap func(fyne.Position, fyne.Size)) *pickOverlay {
	o := &pickOverlay{onTap: onTap}
	o.ExtendBaseWidget(o)
	return o
}

func (o *pickOverlay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (o *pickOverlay) Tapped(ev *fyne.PointEvent) {
	if o.onTap != nil {
		o.onTap(ev.Position, o.Size())
	}
}

var _ fyne.Tappable = (*pickOverlay)(nil)
