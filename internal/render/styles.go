package render

import "graphed/internal/graphstore"

// Styles holds the per-element drawing attributes. Colors and radii
// are created when their vertex or edge is created and dropped when
// it is deleted; lookups fall back to the defaults so a style map is
// never required to be complete.
type Styles struct {
	VertexColors map[string]string
	VertexRadii  map[string]float64
	EdgeColors   map[graphstore.Edge]string

	DefaultRadius    float64
	DefaultEdgeColor string
}

// NewStyles returns empty style maps with the given defaults.
func NewStyles(defaultRadius float64, defaultEdgeColor string) *Styles {
	return &Styles{
		VertexColors:     make(map[string]string),
		VertexRadii:      make(map[string]float64),
		EdgeColors:       make(map[graphstore.Edge]string),
		DefaultRadius:    defaultRadius,
		DefaultEdgeColor: defaultEdgeColor,
	}
}

// Radius returns the radius of v.
func (s *Styles) Radius(v string) float64 {
	if r, ok := s.VertexRadii[v]; ok {
		return r
	}
	return s.DefaultRadius
}

// VertexColor returns the fill color of v.
func (s *Styles) VertexColor(v string) string {
	if c, ok := s.VertexColors[v]; ok {
		return c
	}
	return "#ffffff"
}

// EdgeColor returns the color of e (canonical form).
func (s *Styles) EdgeColor(e graphstore.Edge) string {
	if c, ok := s.EdgeColors[e]; ok {
		return c
	}
	return s.DefaultEdgeColor
}

// DropVertex removes the stored style of a deleted vertex.
func (s *Styles) DropVertex(v string) {
	delete(s.VertexColors, v)
	delete(s.VertexRadii, v)
}

// DropEdge removes the stored style of a deleted edge.
func (s *Styles) DropEdge(e graphstore.Edge) {
	delete(s.EdgeColors, e)
}
