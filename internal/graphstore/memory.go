package graphstore

import (
	"fmt"
	"sort"
	"strconv"

	"graphed/internal/geom"
)

// Memory is the reference Graph implementation: a simple adjacency-map
// graph with a position store. It never allows loops or parallel
// edges, which the editor's selection and coloring maps rely on.
type Memory struct {
	directed bool
	out      map[string]map[string]bool
	in       map[string]map[string]bool // only populated when directed
	pos      map[string]geom.Point
}

// NewMemory returns an empty graph.
func NewMemory(directed bool) *Memory {
	return &Memory{
		directed: directed,
		out:      make(map[string]map[string]bool),
		in:       make(map[string]map[string]bool),
		pos:      make(map[string]geom.Point),
	}
}

// AddVertex adds a vertex. With an empty name the smallest unused
// non-negative integer (as a string) is assigned, matching the usual
// convention of graph libraries.
func (g *Memory) AddVertex(name string) (string, error) {
	if name == "" {
		for i := 0; ; i++ {
			candidate := strconv.Itoa(i)
			if _, ok := g.out[candidate]; !ok {
				name = candidate
				break
			}
		}
	} else if _, ok := g.out[name]; ok {
		return "", fmt.Errorf("vertex already exists: %s", name)
	}
	g.out[name] = make(map[string]bool)
	if g.directed {
		g.in[name] = make(map[string]bool)
	}
	return name, nil
}

// DeleteVertex removes a vertex, its incident edges and its position.
func (g *Memory) DeleteVertex(name string) error {
	if _, ok := g.out[name]; !ok {
		return fmt.Errorf("no such vertex: %s", name)
	}
	for u := range g.out[name] {
		if g.directed {
			delete(g.in[u], name)
		} else {
			delete(g.out[u], name)
		}
	}
	if g.directed {
		for u := range g.in[name] {
			delete(g.out[u], name)
		}
		delete(g.in, name)
	}
	delete(g.out, name)
	delete(g.pos, name)
	return nil
}

// AddEdge adds an edge, creating endpoints that do not exist yet.
// Loops are rejected; adding an edge that already exists is a no-op.
func (g *Memory) AddEdge(u, v string) error {
	if u == v {
		return fmt.Errorf("loops are not allowed")
	}
	for _, w := range []string{u, v} {
		if _, ok := g.out[w]; !ok {
			if _, err := g.AddVertex(w); err != nil {
				return err
			}
		}
	}
	g.out[u][v] = true
	if g.directed {
		g.in[v][u] = true
	} else {
		g.out[v][u] = true
	}
	return nil
}

// DeleteEdge removes an edge. For undirected graphs either endpoint
// order works.
func (g *Memory) DeleteEdge(u, v string) error {
	if !g.HasEdge(u, v) {
		return fmt.Errorf("no such edge: (%s, %s)", u, v)
	}
	if !g.directed && !g.out[u][v] {
		u, v = v, u
	}
	delete(g.out[u], v)
	if g.directed {
		delete(g.in[v], u)
	} else {
		delete(g.out[v], u)
	}
	return nil
}

// HasVertex reports whether the vertex exists.
func (g *Memory) HasVertex(v string) bool {
	_, ok := g.out[v]
	return ok
}

// HasEdge reports whether the edge exists. Undirected graphs ignore
// the endpoint order.
func (g *Memory) HasEdge(u, v string) bool {
	if _, ok := g.out[u]; !ok {
		return false
	}
	if g.out[u][v] {
		return true
	}
	return !g.directed && g.out[v] != nil && g.out[v][u]
}

// Vertices returns the vertex names in sorted order.
func (g *Memory) Vertices() []string {
	names := make([]string, 0, len(g.out))
	for v := range g.out {
		names = append(names, v)
	}
	sort.Strings(names)
	return names
}

// Edges returns every edge once, in canonical form, sorted.
func (g *Memory) Edges() []Edge {
	var edges []Edge
	for u, nbrs := range g.out {
		for v := range nbrs {
			e := Edge{u, v}.Canonical(g.directed)
			if g.directed || e.U == u {
				edges = append(edges, e)
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	return edges
}

// Neighbors returns all vertices adjacent to v regardless of edge
// direction, sorted.
func (g *Memory) Neighbors(v string) []string {
	seen := make(map[string]bool)
	for u := range g.out[v] {
		seen[u] = true
	}
	if g.directed {
		for u := range g.in[v] {
			seen[u] = true
		}
	}
	names := make([]string, 0, len(seen))
	for u := range seen {
		names = append(names, u)
	}
	sort.Strings(names)
	return names
}

// IncidentEdges returns every edge touching v, ignoring direction.
func (g *Memory) IncidentEdges(v string) []Edge {
	var edges []Edge
	for u := range g.out[v] {
		edges = append(edges, Edge{v, u}.Canonical(g.directed))
	}
	if g.directed {
		for u := range g.in[v] {
			edges = append(edges, Edge{u, v})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	return edges
}

// Order returns the number of vertices.
func (g *Memory) Order() int {
	return len(g.out)
}

// Size returns the number of edges.
func (g *Memory) Size() int {
	n := 0
	for _, nbrs := range g.out {
		n += len(nbrs)
	}
	if !g.directed {
		n /= 2
	}
	return n
}

// Directed reports whether the graph is directed.
func (g *Memory) Directed() bool {
	return g.directed
}

// Position returns the stored position of v, if any.
func (g *Memory) Position(v string) (geom.Point, bool) {
	p, ok := g.pos[v]
	return p, ok
}

// SetPosition stores the position of v.
func (g *Memory) SetPosition(v string, p geom.Point) {
	g.pos[v] = p
}
