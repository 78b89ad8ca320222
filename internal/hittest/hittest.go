// Package hittest resolves pixel coordinates to graph elements. It
// works on screen-space snapshots built by the editor from the graph
// positions and the current view transform, and never mutates
// anything.
package hittest

import (
	"graphed/internal/geom"
	"graphed/internal/graphstore"
)

// VertexShape is a vertex as it appears on the canvas.
type VertexShape struct {
	ID    string
	Shape geom.Circle
}

// EdgeSegment is an edge as it appears on the canvas.
type EdgeSegment struct {
	Edge    graphstore.Edge
	Segment geom.Segment
}

// VertexAt returns the vertex whose shape covers p. When several
// shapes overlap the point, the one whose center is closest wins, so
// overlap resolution is deterministic.
func VertexAt(p geom.Point, shapes []VertexShape) (string, bool) {
	best := ""
	bestDist := 0.0
	found := false
	for _, s := range shapes {
		if !s.Shape.Contains(p) {
			continue
		}
		d := p.Dist(s.Shape.Center)
		if !found || d < bestDist {
			best = s.ID
			bestDist = d
			found = true
		}
	}
	return best, found
}

// EdgeAt returns the edge running within slack pixels of p. A
// bounding-box pre-filter discards most segments before the exact
// point-to-segment distance is computed; among the survivors the
// closest one wins.
func EdgeAt(p geom.Point, segments []EdgeSegment, slack float64) (graphstore.Edge, bool) {
	var best graphstore.Edge
	bestDist := slack
	found := false
	for _, s := range segments {
		if !s.Segment.InBox(p, slack) {
			continue
		}
		d := s.Segment.DistTo(p)
		if d < bestDist {
			best = s.Edge
			bestDist = d
			found = true
		}
	}
	return best, found
}
