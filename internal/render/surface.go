// Package render draws the graph onto two raster surfaces: a settled
// surface holding the committed drawing and an interaction surface
// used while a vertex is dragged. The redraw policy repaints only
// what an interaction touched; full-canvas repaints happen only on
// layout, zoom and structural changes.
package render

import (
	"image"

	"graphed/internal/geom"
)

// Surface is a drawing target. Colors are "#rrggbb" strings. All
// draw calls between Hold and Flush belong to one logical interaction
// step; implementations present them as a single visual update.
type Surface interface {
	Size() geom.Size
	// Clear wipes the surface to its background (transparent for the
	// interaction layer).
	Clear()

	FillCircle(c geom.Circle, color string)
	StrokeCircle(c geom.Circle, color string, width float64, dash []float64)
	Line(s geom.Segment, color string, width float64, dash []float64)
	FillPolygon(pts []geom.Point, color string)
	// Text draws s centered at p.
	Text(s string, p geom.Point, color string)

	Hold()
	Flush()

	Image() image.Image
	SavePNG(path string) error
}
