package render

import (
	"fmt"
	"math"

	"graphed/internal/geom"
	"graphed/internal/graphstore"
	"graphed/internal/selection"
)

const (
	vertexBorderWidth = 2
	edgeWidth         = 3
	highlightWidth    = 2
)

// selectionDash is the dash pattern for focus rings and selected
// edges.
var selectionDash = []float64{4, 4}

// Config carries the renderer's drawing constants.
type Config struct {
	// Background is the settled surface color, also used to erase
	// stale paint without a full repaint.
	Background string
	// Arrow tip geometry for directed edges: the length taken on the
	// edge and half the spread between the two barbs.
	ArrowTipWidth  float64
	ArrowTipHeight float64
	ShowLabels     bool
}

// Renderer paints the graph onto the settled and interaction
// surfaces. It owns the redraw policy: structural changes repaint the
// whole settled surface, drags repaint only the dragged vertex and
// its neighborhood on the interaction surface.
type Renderer struct {
	graph  graphstore.Graph
	view   *geom.Transform
	styles *Styles
	sel    *selection.Model

	settled  Surface
	interact Surface
	cfg      Config
}

// New creates a renderer over the two surfaces.
func New(g graphstore.Graph, view *geom.Transform, styles *Styles, sel *selection.Model, settled, interact Surface, cfg Config) *Renderer {
	return &Renderer{
		graph:    g,
		view:     view,
		styles:   styles,
		sel:      sel,
		settled:  settled,
		interact: interact,
		cfg:      cfg,
	}
}

// Settled returns the persistent drawing surface.
func (r *Renderer) Settled() Surface { return r.settled }

// Interact returns the transient interaction surface.
func (r *Renderer) Interact() Surface { return r.interact }

// SetShowLabels toggles vertex label drawing.
func (r *Renderer) SetShowLabels(show bool) { r.cfg.ShowLabels = show }

// ShowLabels reports whether vertex labels are drawn.
func (r *Renderer) ShowLabels() bool { return r.cfg.ShowLabels }

// VertexShape returns the screen-space circle of v. A vertex without
// a stored position cannot be drawn or hit-tested; that is a bug in
// the caller, not a drawing condition.
func (r *Renderer) VertexShape(v string) geom.Circle {
	p, ok := r.graph.Position(v)
	if !ok {
		panic(fmt.Sprintf("render: vertex %q has no position", v))
	}
	return geom.Circle{Center: r.view.ToScreen(p), Radius: r.styles.Radius(v)}
}

// EdgeSegment returns the screen-space segment of e, running between
// the endpoint centers.
func (r *Renderer) EdgeSegment(e graphstore.Edge) geom.Segment {
	return geom.Segment{
		A: r.VertexShape(e.U).Center,
		B: r.VertexShape(e.V).Center,
	}
}

// DrawVertex paints v on s: filled disc, border, and the label when
// labels are on. colorOverride replaces the stored fill color (the
// drag preview paints gray). With highlight set, a selected vertex
// also gets its dashed focus ring.
func (r *Renderer) DrawVertex(v string, s Surface, colorOverride string, highlight bool) {
	shape := r.VertexShape(v)
	fill := colorOverride
	if fill == "" {
		fill = r.styles.VertexColor(v)
	}
	s.FillCircle(shape, fill)
	s.StrokeCircle(shape, "#000000", vertexBorderWidth, nil)
	if r.cfg.ShowLabels {
		s.Text(v, shape.Center, "#000000")
	}
	if highlight && r.sel.IsVertexSelected(v) {
		r.highlightVertex(v, s)
	}
}

// highlightVertex draws the focus ring: a solid dark circle with a
// white dashed circle on top, visible on any fill color.
func (r *Renderer) highlightVertex(v string, s Surface) {
	shape := r.VertexShape(v)
	s.StrokeCircle(shape, "#000000", highlightWidth, nil)
	s.StrokeCircle(shape, "#ffffff", highlightWidth, selectionDash)
}

// EdgeOpts alters a single DrawEdge call.
type EdgeOpts struct {
	// EndpointsAlso repaints the two incident vertices afterwards:
	// edges run between shape centers, so they are drawn under the
	// vertices and the borders must be restored.
	EndpointsAlso bool
	// ClearFirst erases the segment in the background color before
	// painting, to drop a stale selection dash without a full
	// repaint.
	ClearFirst bool
}

// DrawEdge paints e on s as a straight segment, dashed when the edge
// is selected, with an arrow tip at the destination when the graph is
// directed.
func (r *Renderer) DrawEdge(e graphstore.Edge, s Surface, opts EdgeOpts) {
	seg := r.EdgeSegment(e)
	canonical := e.Canonical(r.graph.Directed())

	if opts.ClearFirst {
		s.Line(seg, r.cfg.Background, edgeWidth+2, nil)
	}

	color := r.styles.EdgeColor(canonical)
	var dash []float64
	if r.sel.IsEdgeSelected(canonical) {
		dash = selectionDash
	}
	s.Line(seg, color, edgeWidth, dash)

	if r.graph.Directed() {
		r.drawArrowTip(e, s, color)
	}

	if opts.EndpointsAlso {
		r.DrawVertex(e.U, s, "", true)
		r.DrawVertex(e.V, s, "", true)
	}
}

// drawArrowTip paints the triangle at the destination end of e,
// rotated to the edge direction and placed where the edge meets the
// destination shape. When the endpoint shapes overlap there is no
// room for a sane arrow, so it is skipped.
func (r *Renderer) drawArrowTip(e graphstore.Edge, s Surface, color string) {
	from := r.VertexShape(e.U)
	to := r.VertexShape(e.V)

	distMin := from.Radius + to.Radius
	if math.Abs(from.Center.X-to.Center.X) <= distMin &&
		math.Abs(from.Center.Y-to.Center.Y) <= distMin {
		return
	}

	// Local frame: origin at the tip, +x pointing back along the
	// edge toward the source.
	aw, ah := r.cfg.ArrowTipWidth, r.cfg.ArrowTipHeight
	local := []geom.Point{{X: 0, Y: 0}, {X: aw, Y: ah}, {X: 0.75 * aw, Y: 0}, {X: aw, Y: -ah}}

	angle := math.Atan2(from.Center.Y-to.Center.Y, from.Center.X-to.Center.X)
	cos, sin := math.Cos(angle), math.Sin(angle)
	tip := geom.Point{
		X: to.Center.X + cos*to.Radius,
		Y: to.Center.Y + sin*to.Radius,
	}

	world := make([]geom.Point, len(local))
	for i, p := range local {
		world[i] = geom.Point{
			X: tip.X + cos*p.X - sin*p.Y,
			Y: tip.Y + sin*p.X + cos*p.Y,
		}
	}
	s.FillPolygon(world, color)
}

// DrawFullGraph clears the settled surface and repaints everything.
// The order is an invariant: edges first, then vertices, then the
// focus rings of the selected vertices, so highlights are never
// occluded.
func (r *Renderer) DrawFullGraph() {
	s := r.settled
	s.Hold()
	defer s.Flush()

	s.Clear()
	for _, e := range r.graph.Edges() {
		r.DrawEdge(e, s, EdgeOpts{})
	}
	for _, v := range r.graph.Vertices() {
		r.DrawVertex(v, s, "", false)
	}
	for _, v := range r.graph.Vertices() {
		if r.sel.IsVertexSelected(v) {
			r.highlightVertex(v, s)
		}
	}
}

// RedrawVertexAndNeighbors repaints only the neighborhood of v: its
// incident edges, the neighboring vertices (incident edges end at
// their centers, so their shapes must be restored), and v itself.
// This is the targeted invalidation path used on every drag tick.
// colorOverride recolors only the vertex; the edges keep their own
// colors.
func (r *Renderer) RedrawVertexAndNeighbors(v string, s Surface, colorOverride string, highlight bool) {
	s.Hold()
	defer s.Flush()

	for _, e := range r.graph.IncidentEdges(v) {
		r.DrawEdge(e, s, EdgeOpts{})
	}
	for _, u := range r.graph.Neighbors(v) {
		r.DrawVertex(u, s, "", false)
	}
	r.DrawVertex(v, s, colorOverride, false)
	if highlight && r.sel.IsVertexSelected(v) {
		r.highlightVertex(v, s)
	}
}

// DrawAllExcept repaints the settled surface without v and its
// incident edges. Used at drag start: the dragged neighborhood then
// lives on the interaction surface until the drop.
func (r *Renderer) DrawAllExcept(v string) {
	s := r.settled
	s.Hold()
	defer s.Flush()

	s.Clear()
	for _, e := range r.graph.Edges() {
		if e.Incident(v) {
			continue
		}
		r.DrawEdge(e, s, EdgeOpts{})
	}
	for _, u := range r.graph.Vertices() {
		if u == v {
			continue
		}
		r.DrawVertex(u, s, "", false)
	}
	for _, u := range r.graph.Vertices() {
		if u != v && r.sel.IsVertexSelected(u) {
			r.highlightVertex(u, s)
		}
	}
}

// ClearInteraction wipes the interaction surface.
func (r *Renderer) ClearInteraction() {
	r.interact.Hold()
	r.interact.Clear()
	r.interact.Flush()
}
