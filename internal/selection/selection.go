// Package selection tracks which vertices and edges are selected,
// which vertex is being dragged, and where a canvas pan started.
package selection

import (
	"graphed/internal/geom"
	"graphed/internal/graphstore"
)

// Model holds the selection state for one editor instance. Dragging
// and panning are mutually exclusive: starting one releases the
// other.
type Model struct {
	vertices map[string]bool
	edges    map[graphstore.Edge]bool

	dragged   string
	dragging  bool
	panAnchor geom.Point
	panning   bool
}

// New returns an empty selection.
func New() *Model {
	return &Model{
		vertices: make(map[string]bool),
		edges:    make(map[graphstore.Edge]bool),
	}
}

// ToggleVertex flips the selection state of v and reports whether it
// is now selected.
func (m *Model) ToggleVertex(v string) bool {
	if m.vertices[v] {
		delete(m.vertices, v)
		return false
	}
	m.vertices[v] = true
	return true
}

// ToggleEdge flips the selection state of e (in canonical form) and
// reports whether it is now selected.
func (m *Model) ToggleEdge(e graphstore.Edge) bool {
	if m.edges[e] {
		delete(m.edges, e)
		return false
	}
	m.edges[e] = true
	return true
}

// IsVertexSelected reports whether v is selected.
func (m *Model) IsVertexSelected(v string) bool {
	return m.vertices[v]
}

// IsEdgeSelected reports whether e is selected.
func (m *Model) IsEdgeSelected(e graphstore.Edge) bool {
	return m.edges[e]
}

// Vertices returns the selected vertices, in no particular order.
func (m *Model) Vertices() []string {
	out := make([]string, 0, len(m.vertices))
	for v := range m.vertices {
		out = append(out, v)
	}
	return out
}

// Edges returns the selected edges, in no particular order.
func (m *Model) Edges() []graphstore.Edge {
	out := make([]graphstore.Edge, 0, len(m.edges))
	for e := range m.edges {
		out = append(out, e)
	}
	return out
}

// ClearVertices empties the vertex selection.
func (m *Model) ClearVertices() {
	m.vertices = make(map[string]bool)
}

// ClearEdges empties the edge selection.
func (m *Model) ClearEdges() {
	m.edges = make(map[graphstore.Edge]bool)
}

// DropVertex removes v from the selection without toggling, used when
// the vertex is deleted from the graph.
func (m *Model) DropVertex(v string) {
	delete(m.vertices, v)
	if m.dragging && m.dragged == v {
		m.dragging = false
		m.dragged = ""
	}
}

// DropEdge removes e from the selection without toggling.
func (m *Model) DropEdge(e graphstore.Edge) {
	delete(m.edges, e)
}

// StartDrag records v as the dragged vertex and releases any pan.
func (m *Model) StartDrag(v string) {
	m.dragged = v
	m.dragging = true
	m.panning = false
}

// Dragged returns the vertex being dragged, if any.
func (m *Model) Dragged() (string, bool) {
	return m.dragged, m.dragging
}

// EndDrag releases the dragged vertex.
func (m *Model) EndDrag() {
	m.dragged = ""
	m.dragging = false
}

// StartPan records the pixel where a canvas pan began and releases
// any drag.
func (m *Model) StartPan(p geom.Point) {
	m.panAnchor = p
	m.panning = true
	m.dragging = false
	m.dragged = ""
}

// PanAnchor returns the pan starting pixel, if a pan is in progress.
func (m *Model) PanAnchor() (geom.Point, bool) {
	return m.panAnchor, m.panning
}

// MovePanAnchor advances the anchor after a pan step has been
// applied.
func (m *Model) MovePanAnchor(p geom.Point) {
	if m.panning {
		m.panAnchor = p
	}
}

// EndPan releases the pan anchor.
func (m *Model) EndPan() {
	m.panning = false
}
