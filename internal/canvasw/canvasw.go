// Package canvasw hosts the editor in a Fyne window. The drawing
// surfaces stay raster images owned by the render package; this
// package composites them into one on-screen canvas, forwards pointer
// events to the editor and builds the control panel around it.
package canvasw

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"graphed/internal/editor"
	"graphed/internal/geom"
	"graphed/internal/render"
)

// Canvas is the drawing area widget. It displays the settled surface
// with the interaction surface composited on top and translates Fyne
// pointer events into editor calls.
type Canvas struct {
	widget.BaseWidget

	ed       *editor.Editor
	settled  *render.ImageSurface
	interact *render.ImageSurface
	raster   *fynecanvas.Raster

	// Last pointer position, reused when the pointer leaves the
	// widget (MouseOut carries no position).
	lastPointer geom.Point
}

// NewCanvas builds the drawing area over the editor's two surfaces.
// Surface flushes refresh the raster, so each interaction step shows
// as one visual update.
func NewCanvas(ed *editor.Editor, settled, interact *render.ImageSurface) *Canvas {
	c := &Canvas{ed: ed, settled: settled, interact: interact}
	c.raster = fynecanvas.NewRaster(c.draw)
	c.raster.ScaleMode = fynecanvas.ImageScalePixels
	size := settled.Size()
	c.raster.SetMinSize(fyne.NewSize(float32(size.W), float32(size.H)))
	settled.SetOnFlush(c.raster.Refresh)
	interact.SetOnFlush(c.raster.Refresh)
	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget.
func (c *Canvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

// MinSize pins the widget to the surface dimensions.
func (c *Canvas) MinSize() fyne.Size {
	return c.raster.MinSize()
}

// draw composites the two surfaces. The settled surface carries the
// background; the interaction surface is transparent outside the
// dragged neighborhood.
func (c *Canvas) draw(w, h int) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), c.settled.Image(), image.Point{}, draw.Over)
	draw.Draw(out, out.Bounds(), c.interact.Image(), image.Point{}, draw.Over)
	return out
}

func pointOf(ev *desktop.MouseEvent) geom.Point {
	return geom.Point{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}
}

// MouseDown implements desktop.Mouseable.
func (c *Canvas) MouseDown(ev *desktop.MouseEvent) {
	p := pointOf(ev)
	c.lastPointer = p
	c.ed.MouseDown(p)
	c.raster.Refresh()
}

// MouseUp implements desktop.Mouseable.
func (c *Canvas) MouseUp(ev *desktop.MouseEvent) {
	p := pointOf(ev)
	c.lastPointer = p
	c.ed.MouseUp(p)
	c.raster.Refresh()
}

// MouseMoved implements desktop.Hoverable.
func (c *Canvas) MouseMoved(ev *desktop.MouseEvent) {
	p := pointOf(ev)
	c.lastPointer = p
	c.ed.MouseMove(p)
}

// MouseIn implements desktop.Hoverable.
func (c *Canvas) MouseIn(*desktop.MouseEvent) {}

// MouseOut releases any drag or pan in flight.
func (c *Canvas) MouseOut() {
	c.ed.MouseLeave(c.lastPointer)
	c.raster.Refresh()
}

// Scrolled zooms with the mouse wheel.
func (c *Canvas) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		c.ed.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		c.ed.ZoomOut()
	}
}

// labelSink routes editor messages to the window's status and caption
// labels.
type labelSink struct {
	status  *widget.Label
	caption *widget.Label
}

func (s *labelSink) Status(text string)  { s.status.SetText(text) }
func (s *labelSink) Caption(text string) { s.caption.SetText(text) }

// teeSink fans a message out to several sinks.
type teeSink []editor.StatusSink

func (t teeSink) Status(text string) {
	for _, s := range t {
		s.Status(text)
	}
}

func (t teeSink) Caption(text string) {
	for _, s := range t {
		s.Caption(text)
	}
}

// NewSink combines the window labels with any extra sinks, typically
// the console one.
func NewSink(status, caption *widget.Label, extra ...editor.StatusSink) editor.StatusSink {
	sinks := teeSink{&labelSink{status: status, caption: caption}}
	return append(sinks, extra...)
}

// BuildContent assembles the editor window content: the drawing area
// in the center, the control panel on the left and the status bar at
// the bottom. status and caption must be the labels the editor's sink
// writes to.
func BuildContent(ed *editor.Editor, canvas *Canvas, status, caption *widget.Label) fyne.CanvasObject {
	tools := widget.NewRadioGroup(editor.ToolNames(), func(choice string) {
		t, err := editor.ParseTool(choice)
		if err != nil {
			return
		}
		ed.SetTool(t)
	})
	tools.SetSelected(ed.Tool().String())

	layouts := widget.NewSelect(ed.LayoutChoices(), ed.ApplyLayoutChoice)
	layouts.PlaceHolder = "layout"

	colorEntry := widget.NewEntry()
	colorEntry.SetText(ed.CurrentColor())
	colorEntry.SetPlaceHolder("#rrggbb")
	colorEntry.OnSubmitted = ed.PickColor

	radiusEntry := widget.NewEntry()
	radiusEntry.SetText(strconv.FormatFloat(ed.CurrentRadius(), 'f', -1, 64))
	radiusEntry.OnSubmitted = func(text string) {
		r, err := strconv.ParseFloat(text, 64)
		if err != nil || r <= 0 {
			status.SetText(fmt.Sprintf("Invalid radius %q", text))
			return
		}
		ed.PickRadius(r)
	}

	labelsCheck := widget.NewCheck("Show labels", ed.SetShowLabels)
	labelsCheck.SetChecked(ed.Renderer().ShowLabels())

	panel := container.NewVBox(
		widget.NewLabel("Tool"),
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Layout"),
		layouts,
		widget.NewSeparator(),
		widget.NewButton("Zoom in", ed.ZoomIn),
		widget.NewButton("Zoom out", ed.ZoomOut),
		widget.NewButton("Zoom to fit", ed.ZoomToFit),
		widget.NewSeparator(),
		widget.NewLabel("Vertex color"),
		colorEntry,
		widget.NewLabel("Vertex radius"),
		radiusEntry,
		labelsCheck,
		widget.NewSeparator(),
		widget.NewButton("Clear drawing", ed.ClearDrawing),
		widget.NewButton("Export PNG", func() {
			const path = "graph.png"
			if err := ed.ExportPNG(path); err != nil {
				status.SetText(fmt.Sprintf("Export failed: %v", err))
				return
			}
			status.SetText("Exported " + path)
		}),
	)

	statusBar := container.NewVBox(caption, status)
	return container.NewBorder(nil, statusBar, panel, nil, canvas)
}
