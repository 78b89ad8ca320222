package geom

import (
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tr := NewTransform()
	tr.NormalizeToFit([]Circle{
		{Center: Point{10, 20}, Radius: 20},
		{Center: Point{-300, 150}, Radius: 20},
	}, Size{600, 400})
	tr.ScaleAroundCenter(1.5, Size{600, 400})
	tr.Translate(Point{33, -7})

	clicks := []Point{{0, 0}, {100, 100}, {599, 399}, {250, 13}}
	for _, click := range clicks {
		logical := tr.ToLogical(click)
		back := tr.ToScreen(logical)
		if math.Abs(back.X-click.X) > 1 || math.Abs(back.Y-click.Y) > 1 {
			t.Errorf("round trip of %v gave %v", click, back)
		}
	}
}

func TestToScreenFlipsY(t *testing.T) {
	tr := NewTransform()
	p := tr.ToScreen(Point{3, 5})
	if p.X != 3 || p.Y != -5 {
		t.Errorf("expected (3,-5), got %v", p)
	}
}

func TestNormalizeToFitContainment(t *testing.T) {
	canvas := Size{600, 400}
	logical := []Point{{-42, 17}, {300, 300}, {12, -800}, {0.5, 0.5}}
	radius := 20.0

	tr := NewTransform()
	var shapes []Circle
	for _, p := range logical {
		shapes = append(shapes, Circle{Center: tr.ToScreen(p), Radius: radius})
	}
	tr.NormalizeToFit(shapes, canvas)

	for _, p := range logical {
		s := tr.ToScreen(p)
		if s.X-radius < 0 || s.X+radius > canvas.W ||
			s.Y-radius < 0 || s.Y+radius > canvas.H {
			t.Errorf("shape at %v not contained after fit (screen %v)", p, s)
		}
	}
}

func TestNormalizeToFitSingleVertex(t *testing.T) {
	tr := NewTransform()
	shapes := []Circle{{Center: Point{100, 100}, Radius: 20}}
	tr.NormalizeToFit(shapes, Size{600, 400})

	s := tr.ToScreen(tr.ToLogical(Point{100, 100}))
	if math.IsNaN(s.X) || math.IsInf(s.X, 0) {
		t.Fatalf("degenerate range produced %v", s)
	}
}

func TestNormalizeToFitEmpty(t *testing.T) {
	tr := NewTransform()
	before := tr.ToScreen(Point{7, 7})
	tr.NormalizeToFit(nil, Size{600, 400})
	after := tr.ToScreen(Point{7, 7})
	if before != after {
		t.Errorf("empty fit changed the transform: %v -> %v", before, after)
	}
}

func TestScaleAroundCenterKeepsCenter(t *testing.T) {
	canvas := Size{600, 400}
	tr := NewTransform()
	center := tr.ToLogical(Point{300, 200})

	tr.ScaleAroundCenter(1.5, canvas)
	after := tr.ToScreen(center)
	if math.Abs(after.X-300) > 1e-9 || math.Abs(after.Y-200) > 1e-9 {
		t.Errorf("canvas center moved to %v", after)
	}

	// Zooming out with the inverse ratio restores distances.
	tr.ScaleAroundCenter(2.0/3.0, canvas)
	p := tr.ToScreen(Point{10, 10})
	if math.Abs(p.X-10) > 1e-9 || math.Abs(p.Y+10) > 1e-9 {
		t.Errorf("zoom in then out did not restore the transform: %v", p)
	}
}

func TestTranslate(t *testing.T) {
	tr := NewTransform()
	tr.Translate(Point{15, -4})
	p := tr.ToScreen(Point{0, 0})
	if p.X != 15 || p.Y != -4 {
		t.Errorf("expected (15,-4), got %v", p)
	}
}

func TestSegmentDistTo(t *testing.T) {
	s := Segment{A: Point{0, 0}, B: Point{100, 0}}

	if d := s.DistTo(Point{50, 8}); math.Abs(d-8) > 1e-9 {
		t.Errorf("perpendicular distance: expected 8, got %f", d)
	}
	// Past the end, the distance is to the endpoint.
	if d := s.DistTo(Point{110, 0}); math.Abs(d-10) > 1e-9 {
		t.Errorf("endpoint distance: expected 10, got %f", d)
	}
	// Zero-length segment.
	z := Segment{A: Point{5, 5}, B: Point{5, 5}}
	if d := z.DistTo(Point{8, 9}); math.Abs(d-5) > 1e-9 {
		t.Errorf("degenerate segment: expected 5, got %f", d)
	}
}

func TestSegmentInBox(t *testing.T) {
	s := Segment{A: Point{10, 10}, B: Point{100, 50}}
	if !s.InBox(Point{55, 30}, 10) {
		t.Error("point inside box rejected")
	}
	if s.InBox(Point{150, 30}, 10) {
		t.Error("point far outside box accepted")
	}
	if !s.InBox(Point{105, 55}, 10) {
		t.Error("point within slack rejected")
	}
}
