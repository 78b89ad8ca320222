// Package graphstore defines the graph collaborator the editor draws
// and mutates, plus an in-memory reference implementation. The editor
// never inspects vertex names: they are opaque identifiers owned by
// the graph.
package graphstore

import "graphed/internal/geom"

// Edge is a pair of vertex identifiers. For undirected graphs the
// order carries no meaning and Canonical collapses both orientations
// to one representative.
type Edge struct {
	U string
	V string
}

// Canonical returns the representative form of the edge: unchanged
// for directed graphs, endpoints sorted for undirected ones. Maps
// keyed by edges (colors, selection) always use the canonical form.
func (e Edge) Canonical(directed bool) Edge {
	if directed || e.U <= e.V {
		return e
	}
	return Edge{U: e.V, V: e.U}
}

// Incident reports whether v is an endpoint of the edge.
func (e Edge) Incident(v string) bool {
	return e.U == v || e.V == v
}

// Layout identifies a layout algorithm by name.
type Layout string

const (
	LayoutRandom   Layout = "random"
	LayoutSpring   Layout = "spring"
	LayoutCircular Layout = "circular"
	LayoutPlanar   Layout = "planar"
	LayoutForest   Layout = "forest"
	LayoutAcyclic  Layout = "acyclic"
)

// LayoutOptions carries the per-layout knobs. Root is only honored by
// the forest layout; when empty each tree is rooted at its smallest
// vertex name.
type LayoutOptions struct {
	Root   string
	RootUp bool
}

// Graph is the external collaborator acted on by the editor. All
// operations are synchronous and in-memory. Layout may reject a
// request (planar on a non-planar graph, forest on a graph with a
// cycle, acyclic on an undirected graph): the returned error carries
// the user-facing explanation and the positions are left untouched.
type Graph interface {
	// AddVertex adds a vertex. An empty name asks the graph to
	// generate a fresh identifier, which is returned either way.
	AddVertex(name string) (string, error)
	// DeleteVertex removes a vertex and all its incident edges.
	DeleteVertex(name string) error
	// AddEdge adds an edge, creating missing endpoints. Loops are
	// rejected; adding an edge that already exists changes nothing.
	AddEdge(u, v string) error
	DeleteEdge(u, v string) error

	HasVertex(v string) bool
	HasEdge(u, v string) bool
	Vertices() []string
	Edges() []Edge
	// Neighbors returns all vertices adjacent to v, ignoring edge
	// direction.
	Neighbors(v string) []string
	// IncidentEdges returns all edges with v as an endpoint, ignoring
	// direction.
	IncidentEdges(v string) []Edge
	Order() int
	Size() int
	Directed() bool

	// Position returns the stored position of v, if any. The graph
	// owns the position store; the editor reads and writes through
	// these two calls only.
	Position(v string) (geom.Point, bool)
	SetPosition(v string, p geom.Point)

	// ApplyLayout computes and stores fresh positions for every
	// vertex using the named algorithm.
	ApplyLayout(kind Layout, opts LayoutOptions) error
}
