// Package editor composes the view transform, hit testing, selection
// and rendering into the graph editor facade. All pointer events and
// control callbacks enter here; all graph mutations leave here.
package editor

import (
	"fmt"
	"math/rand"

	"graphed/internal/config"
	"graphed/internal/geom"
	"graphed/internal/graphstore"
	"graphed/internal/hittest"
	"graphed/internal/render"
	"graphed/internal/selection"
)

const (
	zoomInRatio  = 1.5
	zoomOutRatio = 2.0 / 3.0
	dragColor    = "#808080"
)

// StatusSink receives the editor's user-facing messages: the
// transient status line and the graph caption. The console sink in
// internal/ui and the GUI labels both implement it.
type StatusSink interface {
	Status(text string)
	Caption(text string)
}

type nopSink struct{}

func (nopSink) Status(string)  {}
func (nopSink) Caption(string) {}

// Editor is the graph editor facade. It owns the view transform, the
// selection, the per-element styles and the gesture state; the graph
// itself is an injected collaborator. Not safe for concurrent use:
// the host delivers events one at a time.
type Editor struct {
	graph  graphstore.Graph
	view   *geom.Transform
	styles *render.Styles
	sel    *selection.Model
	rend   *render.Renderer
	cfg    *config.Drawing
	status StatusSink

	tool   Tool
	canvas geom.Size

	// Pixel where the current press started; drives the
	// click-vs-drag decision on release.
	pressPixel geom.Point

	// Logical position of the dragged vertex at drag start, restored
	// when the release turns out to be a click.
	dragOrigin geom.Point

	// Multi-click gesture state, exactly one of which may be active,
	// and only while its tool is.
	walkTail *string
	clique   []string
	star     *starGesture

	// Values of the shared color picker and radius box. Selecting a
	// vertex promotes its style here so new vertices and box edits
	// follow it.
	currentColor  string
	currentRadius float64
}

type starGesture struct {
	center string
	leaf   string
}

// New builds an editor over the given graph and surfaces. The graph
// must be simple: loops or parallel edges break the (u,v) keyed
// selection and color maps, so they are rejected up front. Vertices
// without stored positions get a random layout. A nil status sink
// discards messages.
func New(g graphstore.Graph, cfg *config.Drawing, settled, interact render.Surface, status StatusSink) (*Editor, error) {
	if err := checkSimple(g); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if status == nil {
		status = nopSink{}
	}

	e := &Editor{
		graph:         g,
		view:          geom.NewTransform(),
		styles:        render.NewStyles(cfg.Vertex.Radius, cfg.Edge.Color),
		sel:           selection.New(),
		cfg:           cfg,
		status:        status,
		tool:          ToolSelectMove,
		canvas:        settled.Size(),
		currentColor:  cfg.Vertex.Color,
		currentRadius: cfg.Vertex.Radius,
	}
	e.rend = render.New(g, e.view, e.styles, e.sel, settled, interact, render.Config{
		Background:     cfg.Canvas.Background,
		ArrowTipWidth:  cfg.Edge.ArrowTipWidth,
		ArrowTipHeight: cfg.Edge.ArrowTipHeight,
		ShowLabels:     cfg.Vertex.ShowLabels,
	})

	for _, v := range g.Vertices() {
		e.styles.VertexColors[v] = e.newVertexColor()
	}

	needLayout := false
	for _, v := range g.Vertices() {
		if _, ok := g.Position(v); !ok {
			needLayout = true
			break
		}
	}
	if needLayout {
		if err := g.ApplyLayout(graphstore.LayoutRandom, graphstore.LayoutOptions{}); err != nil {
			return nil, fmt.Errorf("initial layout: %w", err)
		}
	}
	e.ZoomToFit()
	e.updateCaption()
	return e, nil
}

// checkSimple rejects graphs with loops or parallel edges.
func checkSimple(g graphstore.Graph) error {
	seen := make(map[graphstore.Edge]bool)
	for _, edge := range g.Edges() {
		if edge.U == edge.V {
			return fmt.Errorf("cannot edit a graph with loops (vertex %s)", edge.U)
		}
		c := edge.Canonical(g.Directed())
		if seen[c] {
			return fmt.Errorf("cannot edit a graph with parallel edges (%s, %s)", c.U, c.V)
		}
		seen[c] = true
	}
	return nil
}

// newVertexColor returns the configured default color, or a random
// one when none is configured.
func (e *Editor) newVertexColor() string {
	if e.currentColor != "" {
		return e.currentColor
	}
	return fmt.Sprintf("#%06x", rand.Intn(0x1000000))
}

// Graph returns the underlying graph collaborator.
func (e *Editor) Graph() graphstore.Graph { return e.graph }

// Renderer exposes the renderer, mainly for the GUI host to reach
// the surfaces.
func (e *Editor) Renderer() *render.Renderer { return e.rend }

// Selection exposes the selection model.
func (e *Editor) Selection() *selection.Model { return e.sel }

// CurrentColor returns the shared color picker value.
func (e *Editor) CurrentColor() string { return e.currentColor }

// CurrentRadius returns the shared radius box value.
func (e *Editor) CurrentRadius() float64 { return e.currentRadius }

// vertexShapes builds the screen-space hit testing snapshot.
func (e *Editor) vertexShapes() []hittest.VertexShape {
	vertices := e.graph.Vertices()
	shapes := make([]hittest.VertexShape, 0, len(vertices))
	for _, v := range vertices {
		shapes = append(shapes, hittest.VertexShape{ID: v, Shape: e.rend.VertexShape(v)})
	}
	return shapes
}

// edgeSegments builds the screen-space edge snapshot.
func (e *Editor) edgeSegments() []hittest.EdgeSegment {
	edges := e.graph.Edges()
	segments := make([]hittest.EdgeSegment, 0, len(edges))
	for _, edge := range edges {
		segments = append(segments, hittest.EdgeSegment{Edge: edge, Segment: e.rend.EdgeSegment(edge)})
	}
	return segments
}

// AddVertexAt creates a vertex at the given pixel, assigns its style
// and draws it. An empty name lets the graph generate one; the
// chosen name is returned.
func (e *Editor) AddVertexAt(p geom.Point, name string) (string, error) {
	v, err := e.graph.AddVertex(name)
	if err != nil {
		return "", err
	}
	e.graph.SetPosition(v, e.view.ToLogical(p))
	e.styles.VertexColors[v] = e.newVertexColor()
	e.styles.VertexRadii[v] = e.currentRadius

	settled := e.rend.Settled()
	settled.Hold()
	e.rend.DrawVertex(v, settled, "", false)
	settled.Flush()
	e.updateCaption()
	return v, nil
}

// AddEdge adds an edge with the default edge color and repaints.
func (e *Editor) AddEdge(u, v string) error {
	if err := e.graph.AddEdge(u, v); err != nil {
		return err
	}
	e.styles.EdgeColors[graphstore.Edge{U: u, V: v}.Canonical(e.graph.Directed())] = e.cfg.Edge.Color
	e.updateCaption()
	return nil
}

// DeleteVertex removes a vertex, its incident edges and all state
// keyed on them, then repaints.
func (e *Editor) DeleteVertex(v string) error {
	incident := e.graph.IncidentEdges(v)
	if err := e.graph.DeleteVertex(v); err != nil {
		return err
	}
	for _, edge := range incident {
		c := edge.Canonical(e.graph.Directed())
		e.styles.DropEdge(c)
		e.sel.DropEdge(c)
	}
	e.styles.DropVertex(v)
	e.sel.DropVertex(v)
	e.rend.DrawFullGraph()
	e.updateCaption()
	return nil
}

// DeleteEdge removes an edge and its style, then repaints.
func (e *Editor) DeleteEdge(edge graphstore.Edge) error {
	if err := e.graph.DeleteEdge(edge.U, edge.V); err != nil {
		return err
	}
	c := edge.Canonical(e.graph.Directed())
	e.styles.DropEdge(c)
	e.sel.DropEdge(c)
	e.rend.DrawFullGraph()
	e.updateCaption()
	return nil
}

// SetVertexColor recolors a vertex and repaints it in place.
func (e *Editor) SetVertexColor(v, color string) {
	e.styles.VertexColors[v] = color
	settled := e.rend.Settled()
	settled.Hold()
	e.rend.DrawVertex(v, settled, "", true)
	settled.Flush()
}

// SetVertexRadius resizes a vertex. Growing only needs the vertex
// neighborhood repainted; shrinking leaves stale paint outside the
// new shape, so it forces a full repaint.
func (e *Editor) SetVertexRadius(v string, radius float64) {
	old := e.styles.Radius(v)
	e.styles.VertexRadii[v] = radius
	if radius < old {
		e.rend.DrawFullGraph()
	} else {
		e.rend.RedrawVertexAndNeighbors(v, e.rend.Settled(), "", true)
	}
}

// PickColor is the color picker callback: it adopts the color as the
// default for new vertices and recolors the selected ones.
func (e *Editor) PickColor(color string) {
	e.currentColor = color
	for _, v := range e.sel.Vertices() {
		e.SetVertexColor(v, color)
	}
}

// PickRadius is the radius box callback: it adopts the radius as the
// default for new vertices and resizes the selected ones.
func (e *Editor) PickRadius(radius float64) {
	e.currentRadius = radius
	for _, v := range e.sel.Vertices() {
		e.SetVertexRadius(v, radius)
	}
}

// SetShowLabels toggles vertex labels and repaints.
func (e *Editor) SetShowLabels(show bool) {
	e.rend.SetShowLabels(show)
	e.rend.DrawFullGraph()
}

// ZoomIn scales the view up around the canvas center.
func (e *Editor) ZoomIn() {
	e.view.ScaleAroundCenter(zoomInRatio, e.canvas)
	e.rend.DrawFullGraph()
}

// ZoomOut scales the view down around the canvas center.
func (e *Editor) ZoomOut() {
	e.view.ScaleAroundCenter(zoomOutRatio, e.canvas)
	e.rend.DrawFullGraph()
}

// ZoomToFit recenters and rescales so every vertex shape is visible.
func (e *Editor) ZoomToFit() {
	shapes := make([]geom.Circle, 0, e.graph.Order())
	for _, v := range e.graph.Vertices() {
		shapes = append(shapes, e.rend.VertexShape(v))
	}
	e.view.NormalizeToFit(shapes, e.canvas)
	e.rend.DrawFullGraph()
}

// ClearDrawing deletes every vertex, resets the view transform and
// drops all selection and gesture state.
func (e *Editor) ClearDrawing() {
	for _, v := range e.graph.Vertices() {
		_ = e.graph.DeleteVertex(v)
	}
	e.styles = render.NewStyles(e.cfg.Vertex.Radius, e.cfg.Edge.Color)
	e.sel.ClearVertices()
	e.sel.ClearEdges()
	e.sel.EndDrag()
	e.sel.EndPan()
	e.clearGestures()
	e.view.Reset()
	e.rend = render.New(e.graph, e.view, e.styles, e.sel, e.rend.Settled(), e.rend.Interact(), render.Config{
		Background:     e.cfg.Canvas.Background,
		ArrowTipWidth:  e.cfg.Edge.ArrowTipWidth,
		ArrowTipHeight: e.cfg.Edge.ArrowTipHeight,
		ShowLabels:     e.rend.ShowLabels(),
	})
	e.rend.DrawFullGraph()
	e.rend.ClearInteraction()
	e.status.Status("Cleared drawing.")
	e.updateCaption()
}

// ExportPNG writes the settled surface to a PNG file.
func (e *Editor) ExportPNG(path string) error {
	return e.rend.Settled().SavePNG(path)
}

// LayoutChoices returns the layout selector entries, in display
// order.
func (e *Editor) LayoutChoices() []string {
	return []string{
		"random",
		"spring",
		"circular",
		"planar",
		"forest (root up)",
		"forest (root down)",
		"directed acyclic",
	}
}

// ApplyLayoutChoice maps a layout selector entry to the collaborator
// call. A rejection is reported on the status line and changes
// nothing; on success the view is re-fit and the graph repainted.
// Any in-progress gesture is abandoned first.
func (e *Editor) ApplyLayoutChoice(choice string) {
	e.clearGestures()

	kind := graphstore.Layout(choice)
	var opts graphstore.LayoutOptions
	switch choice {
	case "forest (root up)":
		kind = graphstore.LayoutForest
		opts.RootUp = true
	case "forest (root down)":
		kind = graphstore.LayoutForest
	case "directed acyclic":
		kind = graphstore.LayoutAcyclic
	}
	if kind == graphstore.LayoutForest {
		if selected := e.sel.Vertices(); len(selected) == 1 {
			opts.Root = selected[0]
		}
	}

	e.status.Status("Updating layout, please wait...")
	if err := e.graph.ApplyLayout(kind, opts); err != nil {
		e.status.Status(err.Error())
		return
	}
	e.ZoomToFit()
	e.status.Status("Done updating layout.")
}

// updateCaption refreshes the graph caption.
func (e *Editor) updateCaption() {
	e.status.Caption(fmt.Sprintf("Graph on %d vertices and %d edges.",
		e.graph.Order(), e.graph.Size()))
}
