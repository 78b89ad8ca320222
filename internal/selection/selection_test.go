package selection

import (
	"testing"

	"graphed/internal/geom"
	"graphed/internal/graphstore"
)

func TestToggleVertex(t *testing.T) {
	m := New()

	if !m.ToggleVertex("a") {
		t.Error("first toggle should select")
	}
	if !m.IsVertexSelected("a") {
		t.Error("vertex not selected after toggle")
	}
	if m.ToggleVertex("a") {
		t.Error("second toggle should deselect")
	}
	if m.IsVertexSelected("a") {
		t.Error("vertex still selected after second toggle")
	}
}

func TestToggleEdge(t *testing.T) {
	m := New()
	e := graphstore.Edge{U: "a", V: "b"}

	if !m.ToggleEdge(e) {
		t.Error("first toggle should select")
	}
	if !m.IsEdgeSelected(e) {
		t.Error("edge not selected after toggle")
	}
	m.ToggleEdge(e)
	if m.IsEdgeSelected(e) {
		t.Error("edge still selected after second toggle")
	}
}

func TestClear(t *testing.T) {
	m := New()
	m.ToggleVertex("a")
	m.ToggleVertex("b")
	m.ToggleEdge(graphstore.Edge{U: "a", V: "b"})

	m.ClearVertices()
	m.ClearEdges()
	if len(m.Vertices()) != 0 || len(m.Edges()) != 0 {
		t.Error("clear left selection behind")
	}
}

func TestDragAndPanExclusive(t *testing.T) {
	m := New()

	m.StartDrag("a")
	if _, ok := m.Dragged(); !ok {
		t.Fatal("drag not recorded")
	}

	m.StartPan(geom.Point{X: 5, Y: 5})
	if _, ok := m.Dragged(); ok {
		t.Error("drag should be released when a pan starts")
	}
	if _, ok := m.PanAnchor(); !ok {
		t.Fatal("pan not recorded")
	}

	m.StartDrag("b")
	if _, ok := m.PanAnchor(); ok {
		t.Error("pan should be released when a drag starts")
	}
}

func TestDropVertexReleasesDrag(t *testing.T) {
	m := New()
	m.ToggleVertex("a")
	m.StartDrag("a")

	m.DropVertex("a")
	if m.IsVertexSelected("a") {
		t.Error("deleted vertex still selected")
	}
	if _, ok := m.Dragged(); ok {
		t.Error("deleted vertex still dragged")
	}
}

func TestMovePanAnchor(t *testing.T) {
	m := New()
	m.MovePanAnchor(geom.Point{X: 9, Y: 9}) // no pan in progress: ignored
	if _, ok := m.PanAnchor(); ok {
		t.Fatal("anchor set without a pan")
	}

	m.StartPan(geom.Point{X: 1, Y: 1})
	m.MovePanAnchor(geom.Point{X: 9, Y: 9})
	p, _ := m.PanAnchor()
	if p.X != 9 || p.Y != 9 {
		t.Errorf("anchor not advanced: %v", p)
	}
}
