package graphstore

import (
	"math"
	"strings"
	"testing"
)

func path(n int) *Memory {
	g := NewMemory(false)
	prev := ""
	for i := 0; i < n; i++ {
		v, _ := g.AddVertex("")
		if prev != "" {
			g.AddEdge(prev, v)
		}
		prev = v
	}
	return g
}

func TestRandomLayoutAssignsAll(t *testing.T) {
	g := path(5)
	if err := g.ApplyLayout(LayoutRandom, LayoutOptions{}); err != nil {
		t.Fatalf("random layout failed: %v", err)
	}
	for _, v := range g.Vertices() {
		if _, ok := g.Position(v); !ok {
			t.Errorf("vertex %s has no position", v)
		}
	}
}

func TestCircularLayout(t *testing.T) {
	g := path(6)
	if err := g.ApplyLayout(LayoutCircular, LayoutOptions{}); err != nil {
		t.Fatalf("circular layout failed: %v", err)
	}
	for _, v := range g.Vertices() {
		p, _ := g.Position(v)
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-1) > 1e-9 {
			t.Errorf("vertex %s not on the unit circle: radius %f", v, r)
		}
	}
}

func TestSpringLayoutSeparatesVertices(t *testing.T) {
	g := path(4)
	if err := g.ApplyLayout(LayoutSpring, LayoutOptions{}); err != nil {
		t.Fatalf("spring layout failed: %v", err)
	}
	names := g.Vertices()
	for i, v := range names {
		pv, _ := g.Position(v)
		for _, u := range names[i+1:] {
			pu, _ := g.Position(u)
			if pv.Dist(pu) < 1e-3 {
				t.Errorf("vertices %s and %s collapsed to the same point", v, u)
			}
		}
	}
}

func TestPlanarLayoutRejectsDenseGraph(t *testing.T) {
	// K5 violates the Euler bound.
	g := NewMemory(false)
	names := []string{"a", "b", "c", "d", "e"}
	for i, u := range names {
		for _, v := range names[i+1:] {
			g.AddEdge(u, v)
		}
	}
	err := g.ApplyLayout(LayoutPlanar, LayoutOptions{})
	if err == nil {
		t.Fatal("expected rejection for K5")
	}
	if !strings.Contains(err.Error(), "not planar") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestPlanarLayoutAcceptsPath(t *testing.T) {
	g := path(4)
	if err := g.ApplyLayout(LayoutPlanar, LayoutOptions{}); err != nil {
		t.Fatalf("planar layout rejected a path: %v", err)
	}
}

func TestForestLayoutRejectsCycle(t *testing.T) {
	g := NewMemory(false)
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")
	if err := g.ApplyLayout(LayoutForest, LayoutOptions{}); err == nil {
		t.Fatal("expected rejection for a cycle")
	}
}

func TestForestLayoutRejectsDirected(t *testing.T) {
	g := NewMemory(true)
	g.AddEdge("a", "b")
	if err := g.ApplyLayout(LayoutForest, LayoutOptions{}); err == nil {
		t.Fatal("expected rejection for a directed graph")
	}
}

func TestForestLayoutOrientation(t *testing.T) {
	g := NewMemory(false)
	g.AddEdge("r", "a")
	g.AddEdge("r", "b")

	if err := g.ApplyLayout(LayoutForest, LayoutOptions{Root: "r"}); err != nil {
		t.Fatalf("forest layout failed: %v", err)
	}
	root, _ := g.Position("r")
	leaf, _ := g.Position("a")
	if leaf.Y >= root.Y {
		t.Errorf("root-down: expected leaves below the root, root %v leaf %v", root, leaf)
	}

	if err := g.ApplyLayout(LayoutForest, LayoutOptions{Root: "r", RootUp: true}); err != nil {
		t.Fatalf("forest layout failed: %v", err)
	}
	root, _ = g.Position("r")
	leaf, _ = g.Position("a")
	if leaf.Y <= root.Y {
		t.Errorf("root-up: expected leaves above the root, root %v leaf %v", root, leaf)
	}
}

func TestAcyclicLayoutRejectsUndirected(t *testing.T) {
	g := path(3)
	if err := g.ApplyLayout(LayoutAcyclic, LayoutOptions{}); err == nil {
		t.Fatal("expected rejection for an undirected graph")
	}
}

func TestAcyclicLayoutRejectsCycle(t *testing.T) {
	g := NewMemory(true)
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")
	if err := g.ApplyLayout(LayoutAcyclic, LayoutOptions{}); err == nil {
		t.Fatal("expected rejection for a directed cycle")
	}
}

func TestAcyclicLayoutLayers(t *testing.T) {
	g := NewMemory(true)
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("a", "c")

	if err := g.ApplyLayout(LayoutAcyclic, LayoutOptions{}); err != nil {
		t.Fatalf("acyclic layout failed: %v", err)
	}
	pa, _ := g.Position("a")
	pb, _ := g.Position("b")
	pc, _ := g.Position("c")
	if !(pa.Y > pb.Y && pb.Y > pc.Y) {
		t.Errorf("expected layers a above b above c, got a=%v b=%v c=%v", pa, pb, pc)
	}
}

func TestUnknownLayout(t *testing.T) {
	g := path(2)
	if err := g.ApplyLayout("mystery", LayoutOptions{}); err == nil {
		t.Fatal("expected error for unknown layout")
	}
}
