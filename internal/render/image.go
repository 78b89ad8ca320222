package render

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"graphed/internal/geom"
)

// labelFontSize matches the 20px sans labels of the drawing.
const labelFontSize = 20

var labelFace font.Face

func init() {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic("render: parsing embedded font: " + err.Error())
	}
	labelFace = truetype.NewFace(f, &truetype.Options{Size: labelFontSize})
}

// ImageSurface is a Surface backed by a gg raster context. A surface
// with an empty background color clears to transparent, which is what
// the interaction layer composites with.
type ImageSurface struct {
	ctx        *gg.Context
	w, h       int
	background string
	onFlush    func()
	holdDepth  int
}

// NewImageSurface creates a raster surface. background is a "#rrggbb"
// color, or empty for a transparent surface.
func NewImageSurface(w, h int, background string) *ImageSurface {
	s := &ImageSurface{
		ctx:        gg.NewContext(w, h),
		w:          w,
		h:          h,
		background: background,
	}
	s.ctx.SetFontFace(labelFace)
	s.Clear()
	return s
}

// SetOnFlush registers the hook run after each Flush; the GUI host
// uses it to refresh the on-screen raster once per interaction step.
func (s *ImageSurface) SetOnFlush(fn func()) {
	s.onFlush = fn
}

// Size returns the surface dimensions.
func (s *ImageSurface) Size() geom.Size {
	return geom.Size{W: float64(s.w), H: float64(s.h)}
}

// Clear wipes the surface to its background color, or to transparent
// when none is set.
func (s *ImageSurface) Clear() {
	if s.background == "" {
		s.ctx.SetRGBA(0, 0, 0, 0)
	} else {
		s.ctx.SetHexColor(s.background)
	}
	s.ctx.Clear()
}

// FillCircle paints a filled disc.
func (s *ImageSurface) FillCircle(c geom.Circle, color string) {
	s.ctx.SetHexColor(color)
	s.ctx.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
	s.ctx.Fill()
}

// StrokeCircle paints a circle outline, dashed when dash is non-nil.
func (s *ImageSurface) StrokeCircle(c geom.Circle, color string, width float64, dash []float64) {
	s.ctx.SetHexColor(color)
	s.ctx.SetLineWidth(width)
	s.ctx.SetDash(dash...)
	s.ctx.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
	s.ctx.Stroke()
	s.ctx.SetDash()
}

// Line paints a straight segment, dashed when dash is non-nil.
func (s *ImageSurface) Line(seg geom.Segment, color string, width float64, dash []float64) {
	s.ctx.SetHexColor(color)
	s.ctx.SetLineWidth(width)
	s.ctx.SetDash(dash...)
	s.ctx.DrawLine(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y)
	s.ctx.Stroke()
	s.ctx.SetDash()
}

// FillPolygon paints a filled polygon through the given points.
func (s *ImageSurface) FillPolygon(pts []geom.Point, color string) {
	if len(pts) < 3 {
		return
	}
	s.ctx.SetHexColor(color)
	s.ctx.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.ctx.LineTo(p.X, p.Y)
	}
	s.ctx.ClosePath()
	s.ctx.Fill()
}

// Text draws a string centered at p.
func (s *ImageSurface) Text(text string, p geom.Point, color string) {
	s.ctx.SetHexColor(color)
	s.ctx.DrawStringAnchored(text, p.X, p.Y, 0.5, 0.5)
}

// Hold marks the start of one logical interaction step. Holds nest:
// only the outermost Flush presents.
func (s *ImageSurface) Hold() {
	s.holdDepth++
}

// Flush ends the step and presents it through the flush hook once
// the outermost hold is released.
func (s *ImageSurface) Flush() {
	if s.holdDepth > 0 {
		s.holdDepth--
	}
	if s.holdDepth == 0 && s.onFlush != nil {
		s.onFlush()
	}
}

// Image returns the backing raster.
func (s *ImageSurface) Image() image.Image {
	return s.ctx.Image()
}

// SavePNG writes the surface to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	return s.ctx.SavePNG(path)
}
