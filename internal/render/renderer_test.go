package render

import (
	"fmt"
	"image"
	"strings"
	"testing"

	"graphed/internal/geom"
	"graphed/internal/graphstore"
	"graphed/internal/selection"
)

// recordSurface logs draw calls so tests can assert on ordering and
// parameters without rasterizing.
type recordSurface struct {
	ops []string
}

func (r *recordSurface) Size() geom.Size { return geom.Size{W: 600, H: 400} }
func (r *recordSurface) Clear()          { r.ops = append(r.ops, "clear") }

func (r *recordSurface) FillCircle(c geom.Circle, color string) {
	r.ops = append(r.ops, fmt.Sprintf("fillcircle %.0f,%.0f %s", c.Center.X, c.Center.Y, color))
}

func (r *recordSurface) StrokeCircle(c geom.Circle, color string, width float64, dash []float64) {
	kind := "solid"
	if dash != nil {
		kind = "dash"
	}
	r.ops = append(r.ops, fmt.Sprintf("strokecircle %.0f,%.0f %s %s", c.Center.X, c.Center.Y, color, kind))
}

func (r *recordSurface) Line(s geom.Segment, color string, width float64, dash []float64) {
	kind := "solid"
	if dash != nil {
		kind = "dash"
	}
	r.ops = append(r.ops, fmt.Sprintf("line %.0f,%.0f-%.0f,%.0f %s %s", s.A.X, s.A.Y, s.B.X, s.B.Y, color, kind))
}

func (r *recordSurface) FillPolygon(pts []geom.Point, color string) {
	r.ops = append(r.ops, fmt.Sprintf("polygon %d %s", len(pts), color))
}

func (r *recordSurface) Text(s string, p geom.Point, color string) {
	r.ops = append(r.ops, "text "+s)
}

func (r *recordSurface) Hold()                   { r.ops = append(r.ops, "hold") }
func (r *recordSurface) Flush()                  { r.ops = append(r.ops, "flush") }
func (r *recordSurface) Image() image.Image      { return nil }
func (r *recordSurface) SavePNG(_ string) error  { return nil }
func (r *recordSurface) has(op string) bool      { return r.indexOf(op) >= 0 }
func (r *recordSurface) indexOf(prefix string) int {
	for i, op := range r.ops {
		if strings.HasPrefix(op, prefix) {
			return i
		}
	}
	return -1
}

func newTestRenderer(directed bool) (*Renderer, *graphstore.Memory, *selection.Model, *recordSurface, *recordSurface) {
	g := graphstore.NewMemory(directed)
	view := geom.NewTransform()
	styles := NewStyles(20, "#000000")
	sel := selection.New()
	settled := &recordSurface{}
	interact := &recordSurface{}
	r := New(g, view, styles, sel, settled, interact, Config{
		Background:     "#ffffff",
		ArrowTipWidth:  15,
		ArrowTipHeight: 8,
		ShowLabels:     true,
	})
	return r, g, sel, settled, interact
}

// place adds a vertex at a logical position whose screen position is
// the same x and negated y (the fresh transform is a pure y-flip).
func place(g *graphstore.Memory, name string, x, y float64) {
	g.AddVertex(name)
	g.SetPosition(name, geom.Point{X: x, Y: -y})
}

func TestDrawFullGraphOrder(t *testing.T) {
	r, g, sel, settled, _ := newTestRenderer(false)
	place(g, "a", 100, 100)
	place(g, "b", 300, 100)
	g.AddEdge("a", "b")
	sel.ToggleVertex("a")

	r.DrawFullGraph()

	clear := settled.indexOf("clear")
	edge := settled.indexOf("line")
	vertex := settled.indexOf("fillcircle")
	ring := settled.indexOf("strokecircle 100,100 #ffffff dash")
	if clear < 0 || edge < 0 || vertex < 0 || ring < 0 {
		t.Fatalf("missing ops: %v", settled.ops)
	}
	if !(clear < edge && edge < vertex && vertex < ring) {
		t.Errorf("wrong order: clear=%d edge=%d vertex=%d ring=%d", clear, edge, vertex, ring)
	}
	if settled.ops[0] != "hold" || settled.ops[len(settled.ops)-1] != "flush" {
		t.Errorf("full repaint not batched: %v", settled.ops)
	}
}

func TestDrawEdgeSelectedDashes(t *testing.T) {
	r, g, sel, settled, _ := newTestRenderer(false)
	place(g, "a", 0, 0)
	place(g, "b", 100, 0)
	g.AddEdge("a", "b")
	sel.ToggleEdge(graphstore.Edge{U: "a", V: "b"})

	r.DrawEdge(graphstore.Edge{U: "a", V: "b"}, settled, EdgeOpts{})
	if !settled.has("line 0,0-100,0 #000000 dash") {
		t.Errorf("selected edge not dashed: %v", settled.ops)
	}
}

func TestDrawEdgeClearFirst(t *testing.T) {
	r, g, _, settled, _ := newTestRenderer(false)
	place(g, "a", 0, 0)
	place(g, "b", 100, 0)
	g.AddEdge("a", "b")

	r.DrawEdge(graphstore.Edge{U: "a", V: "b"}, settled, EdgeOpts{ClearFirst: true})

	erase := settled.indexOf("line 0,0-100,0 #ffffff solid")
	paint := settled.indexOf("line 0,0-100,0 #000000 solid")
	if erase < 0 || paint < 0 || erase > paint {
		t.Errorf("expected background erase before paint: %v", settled.ops)
	}
}

func TestDrawEdgeEndpointsAlso(t *testing.T) {
	r, g, _, settled, _ := newTestRenderer(false)
	place(g, "a", 0, 0)
	place(g, "b", 100, 0)
	g.AddEdge("a", "b")

	r.DrawEdge(graphstore.Edge{U: "a", V: "b"}, settled, EdgeOpts{EndpointsAlso: true})

	line := settled.indexOf("line")
	va := settled.indexOf("fillcircle 0,0")
	vb := settled.indexOf("fillcircle 100,0")
	if va < 0 || vb < 0 {
		t.Fatalf("endpoints not repainted: %v", settled.ops)
	}
	if line > va || line > vb {
		t.Error("endpoints must be painted after the edge")
	}
}

func TestArrowTipDrawnForDirected(t *testing.T) {
	r, g, _, settled, _ := newTestRenderer(true)
	place(g, "a", 0, 0)
	place(g, "b", 200, 0)
	g.AddEdge("a", "b")

	r.DrawEdge(graphstore.Edge{U: "a", V: "b"}, settled, EdgeOpts{})
	if !settled.has("polygon 4") {
		t.Errorf("no arrow tip for a directed edge: %v", settled.ops)
	}
}

func TestArrowTipSkippedOnOverlap(t *testing.T) {
	r, g, _, settled, _ := newTestRenderer(true)
	// Radii of 20 each: centers 30px apart overlap.
	place(g, "a", 0, 0)
	place(g, "b", 30, 0)
	g.AddEdge("a", "b")

	r.DrawEdge(graphstore.Edge{U: "a", V: "b"}, settled, EdgeOpts{})
	if settled.has("polygon") {
		t.Errorf("arrow tip drawn for overlapping shapes: %v", settled.ops)
	}
}

func TestLabelToggle(t *testing.T) {
	r, g, _, settled, _ := newTestRenderer(false)
	place(g, "a", 0, 0)

	r.DrawVertex("a", settled, "", false)
	if !settled.has("text a") {
		t.Errorf("label missing with labels on: %v", settled.ops)
	}

	r.SetShowLabels(false)
	other := &recordSurface{}
	r.DrawVertex("a", other, "", false)
	if other.has("text") {
		t.Errorf("label drawn with labels off: %v", other.ops)
	}
}

func TestRedrawVertexAndNeighbors(t *testing.T) {
	r, g, _, _, interact := newTestRenderer(false)
	place(g, "a", 0, 0)
	place(g, "b", 100, 0)
	place(g, "c", 200, 0)
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	r.RedrawVertexAndNeighbors("b", interact, "#808080", false)

	if n := len(interact.ops); n == 0 {
		t.Fatal("nothing drawn")
	}
	// Two incident edges, two neighbors, then b itself in gray.
	if got := strings.Join(interact.ops, "\n"); !strings.Contains(got, "fillcircle 100,0 #808080") {
		t.Errorf("dragged vertex not painted with the override color:\n%s", got)
	}
	edge := interact.indexOf("line")
	self := interact.indexOf("fillcircle 100,0 #808080")
	if edge > self {
		t.Error("incident edges must be painted before the vertex")
	}
	// The override recolors the vertex only; edges keep their own
	// color.
	if interact.indexOf("line 0,0-100,0 #808080") >= 0 || interact.indexOf("line 100,0-200,0 #808080") >= 0 {
		t.Errorf("incident edge painted with the vertex override color: %v", interact.ops)
	}
	if !interact.has("line 0,0-100,0 #000000") || !interact.has("line 100,0-200,0 #000000") {
		t.Errorf("incident edges not painted in their own color: %v", interact.ops)
	}
}

func TestDrawAllExceptSkipsDraggedNeighborhood(t *testing.T) {
	r, g, _, settled, _ := newTestRenderer(false)
	place(g, "a", 0, 0)
	place(g, "b", 100, 0)
	place(g, "c", 200, 0)
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("a", "c")

	r.DrawAllExcept("b")

	if settled.has("fillcircle 100,0") {
		t.Errorf("dragged vertex painted on the settled surface: %v", settled.ops)
	}
	if settled.indexOf("line 0,0-100,0") >= 0 || settled.indexOf("line 100,0-200,0") >= 0 {
		t.Errorf("incident edge painted on the settled surface: %v", settled.ops)
	}
	if !settled.has("line 0,0-200,0") {
		t.Errorf("unrelated edge missing: %v", settled.ops)
	}
}

func TestMissingPositionPanics(t *testing.T) {
	r, g, _, settled, _ := newTestRenderer(false)
	g.AddVertex("a") // no position set

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a vertex without a position")
		}
	}()
	r.DrawVertex("a", settled, "", false)
}
