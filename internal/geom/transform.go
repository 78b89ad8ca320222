package geom

import (
	"gonum.org/v1/gonum/mat"
)

// fitMargin is the extra pixel padding kept between vertex shapes and
// the canvas border when fitting the drawing.
const fitMargin = 5

// minRange is the floor applied to a bounding-box range before
// dividing by it, so a single vertex or a colinear row of vertices
// does not produce a zero scale factor.
const minRange = 0.1

// Transform maps logical graph coordinates to canvas pixels. It is a
// 3x3 homogeneous matrix (scale and translation) with the y-flip baked
// in at construction, since canvas y grows downward. Every zoom, pan
// and fit operation composes onto the matrix; it is never replaced
// except by Reset.
type Transform struct {
	m *mat.Dense
}

// NewTransform returns the initial transform: identity with a y-flip.
func NewTransform() *Transform {
	t := &Transform{}
	t.Reset()
	return t
}

// Reset restores the initial y-flip transform. Used when the drawing
// is cleared.
func (t *Transform) Reset() {
	t.m = mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, -1, 0,
		0, 0, 1,
	})
}

// ToScreen maps a logical position to canvas pixels. The result is
// not clamped to the canvas bounds.
func (t *Transform) ToScreen(p Point) Point {
	return Point{
		X: t.m.At(0, 0)*p.X + t.m.At(0, 1)*p.Y + t.m.At(0, 2),
		Y: t.m.At(1, 0)*p.X + t.m.At(1, 1)*p.Y + t.m.At(1, 2),
	}
}

// ToLogical maps a canvas pixel back to a logical position. The
// transform only ever composes non-degenerate scales and translations,
// so a singular matrix here is a bug, not a recoverable condition.
func (t *Transform) ToLogical(p Point) Point {
	var inv mat.Dense
	if err := inv.Inverse(t.m); err != nil {
		panic("geom: view transform is singular: " + err.Error())
	}
	return Point{
		X: inv.At(0, 0)*p.X + inv.At(0, 1)*p.Y + inv.At(0, 2),
		Y: inv.At(1, 0)*p.X + inv.At(1, 1)*p.Y + inv.At(1, 2),
	}
}

// compose sets t to a*t.
func (t *Transform) compose(a *mat.Dense) {
	var out mat.Dense
	out.Mul(a, t.m)
	t.m = &out
}

// NormalizeToFit composes a scale and translation so that the given
// screen-space vertex shapes fit centered within the canvas while
// preserving the aspect ratio. The shapes are the vertex circles as
// currently projected by t; a fixed margin is kept on all sides. An
// empty shape list is a no-op, and degenerate bounding boxes (single
// vertex, colinear vertices) are clamped so no division by zero
// occurs.
func (t *Transform) NormalizeToFit(shapes []Circle, canvas Size) {
	if len(shapes) == 0 {
		return
	}

	// Extrema of the vertex centers and of the full shapes.
	xMin, xMax := shapes[0].Center.X, shapes[0].Center.X
	yMin, yMax := shapes[0].Center.Y, shapes[0].Center.Y
	sxMin, sxMax := shapes[0].Center.X-shapes[0].Radius, shapes[0].Center.X+shapes[0].Radius
	syMin, syMax := shapes[0].Center.Y-shapes[0].Radius, shapes[0].Center.Y+shapes[0].Radius
	for _, s := range shapes[1:] {
		xMin = min(xMin, s.Center.X)
		xMax = max(xMax, s.Center.X)
		yMin = min(yMin, s.Center.Y)
		yMax = max(yMax, s.Center.Y)
		sxMin = min(sxMin, s.Center.X-s.Radius)
		sxMax = max(sxMax, s.Center.X+s.Radius)
		syMin = min(syMin, s.Center.Y-s.Radius)
		syMax = max(syMax, s.Center.Y+s.Radius)
	}

	xRange := max(xMax-xMin, minRange)
	yRange := max(yMax-yMin, minRange)

	// The margins leave room for the vertex shapes themselves plus a
	// few extra pixels so the drawing does not touch the border.
	marginLeft := xMin - sxMin + fitMargin
	marginRight := sxMax - xMax + fitMargin
	marginTop := syMax - yMax + fitMargin
	marginBottom := yMin - syMin + fitMargin

	targetW := canvas.W - (marginLeft + marginRight)
	targetH := canvas.H - (marginTop + marginBottom)

	// The limiting axis decides the factor so proportions are kept;
	// the leftover space on the other axis centers the drawing.
	factor := min(targetW/xRange, targetH/yRange)
	xShift := marginLeft + (targetW-xRange*factor)/2
	yShift := marginBottom + (targetH-yRange*factor)/2

	toOrigin := mat.NewDense(3, 3, []float64{
		1, 0, -xMin,
		0, 1, -yMin,
		0, 0, 1,
	})
	scale := mat.NewDense(3, 3, []float64{
		factor, 0, 0,
		0, factor, 0,
		0, 0, 1,
	})
	center := mat.NewDense(3, 3, []float64{
		1, 0, xShift,
		0, 1, yShift,
		0, 0, 1,
	})

	t.compose(toOrigin)
	t.compose(scale)
	t.compose(center)
}

// ScaleAroundCenter composes a scale about the canvas center. The
// zoom buttons use ratios 1.5 and 2/3.
func (t *Transform) ScaleAroundCenter(ratio float64, canvas Size) {
	xShift := canvas.W * (1 - ratio) / 2
	yShift := canvas.H * (1 - ratio) / 2
	t.compose(mat.NewDense(3, 3, []float64{
		ratio, 0, xShift,
		0, ratio, yShift,
		0, 0, 1,
	}))
}

// Translate composes a pure translation, used while panning the
// canvas background.
func (t *Transform) Translate(d Point) {
	t.compose(mat.NewDense(3, 3, []float64{
		1, 0, d.X,
		0, 1, d.Y,
		0, 0, 1,
	}))
}
