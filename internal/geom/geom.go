// Package geom holds the 2D value types and the affine view transform
// shared by the drawing code.
package geom

import "math"

// Point is a 2D coordinate, either logical (graph space) or pixel
// (canvas space) depending on context.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Size is a width/height pair in pixels.
type Size struct {
	W float64
	H float64
}

// Circle is a vertex shape in screen space.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies within the circle's bounding box,
// which is how vertex shapes are hit-tested.
func (c Circle) Contains(p Point) bool {
	return math.Abs(p.X-c.Center.X) < c.Radius && math.Abs(p.Y-c.Center.Y) < c.Radius
}

// Segment is a straight edge between two screen positions.
type Segment struct {
	A Point
	B Point
}

// DistTo returns the distance from p to the closest point of the
// segment. The projection is clamped to the endpoints so points past
// either end measure to that end rather than to the infinite line.
func (s Segment) DistTo(p Point) float64 {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Dist(s.A)
	}
	t := ((p.X-s.A.X)*dx + (p.Y-s.A.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	foot := Point{s.A.X + t*dx, s.A.Y + t*dy}
	return p.Dist(foot)
}

// InBox reports whether p lies within the segment's bounding box
// expanded by slack pixels on every side.
func (s Segment) InBox(p Point, slack float64) bool {
	xMin := math.Min(s.A.X, s.B.X) - slack
	xMax := math.Max(s.A.X, s.B.X) + slack
	yMin := math.Min(s.A.Y, s.B.Y) - slack
	yMax := math.Max(s.A.Y, s.B.Y) + slack
	return p.X >= xMin && p.X <= xMax && p.Y >= yMin && p.Y <= yMax
}
