package graphstore

import (
	"fmt"
	"math"
	"math/rand"

	"graphed/internal/geom"
)

// springIterations is the number of force-directed refinement rounds.
const springIterations = 60

// ApplyLayout computes fresh positions with the named algorithm. On
// rejection the error explains why and no position changes.
func (g *Memory) ApplyLayout(kind Layout, opts LayoutOptions) error {
	switch kind {
	case LayoutRandom:
		g.randomLayout()
	case LayoutCircular:
		g.circularLayout()
	case LayoutSpring:
		g.springLayout()
	case LayoutPlanar:
		if !g.isPlanar() {
			return fmt.Errorf("'planar' layout impossible: the graph is not planar")
		}
		g.springLayout()
	case LayoutForest:
		if g.directed {
			return fmt.Errorf("'forest' layout impossible: it is defined only for undirected graphs")
		}
		if !g.isForest() {
			return fmt.Errorf("'forest' layout impossible: the graph is not a forest")
		}
		g.forestLayout(opts.Root, opts.RootUp)
	case LayoutAcyclic:
		if !g.directed {
			return fmt.Errorf("'directed acyclic' layout impossible: the graph is not directed")
		}
		layers, ok := g.topologicalLayers()
		if !ok {
			return fmt.Errorf("'directed acyclic' layout impossible: the graph has a cycle")
		}
		g.layerLayout(layers)
	default:
		return fmt.Errorf("unknown layout: %s", kind)
	}
	return nil
}

// randomLayout picks integer coordinates between 0 and the square of
// the order, which gives a reasonable spread at any graph size.
func (g *Memory) randomLayout() {
	n2 := g.Order() * g.Order()
	if n2 == 0 {
		n2 = 1
	}
	for v := range g.out {
		g.pos[v] = geom.Point{
			X: float64(rand.Intn(n2 + 1)),
			Y: float64(rand.Intn(n2 + 1)),
		}
	}
}

// circularLayout spaces the vertices evenly on a unit circle, in
// sorted name order so the result is stable.
func (g *Memory) circularLayout() {
	names := g.Vertices()
	n := len(names)
	for i, v := range names {
		angle := 2 * math.Pi * float64(i) / float64(max(n, 1))
		g.pos[v] = geom.Point{X: math.Cos(angle), Y: math.Sin(angle)}
	}
}

// springLayout runs a Fruchterman-Reingold style force loop starting
// from the current positions, so repeated applications relax the
// drawing instead of scrambling it. Vertices without a position get a
// random one first.
func (g *Memory) springLayout() {
	names := g.Vertices()
	n := len(names)
	if n == 0 {
		return
	}
	for _, v := range names {
		if _, ok := g.pos[v]; !ok {
			g.pos[v] = geom.Point{X: rand.Float64(), Y: rand.Float64()}
		}
	}

	area := float64(n) * 4.0
	k := math.Sqrt(area / float64(n))
	temp := math.Sqrt(area) / 10

	disp := make(map[string]geom.Point, n)
	for iter := 0; iter < springIterations; iter++ {
		for _, v := range names {
			disp[v] = geom.Point{}
		}
		// Repulsion between every pair.
		for i, v := range names {
			for _, u := range names[i+1:] {
				d := g.pos[v].Sub(g.pos[u])
				dist := max(math.Hypot(d.X, d.Y), 1e-6)
				f := k * k / dist
				push := geom.Point{X: d.X / dist * f, Y: d.Y / dist * f}
				disp[v] = disp[v].Add(push)
				disp[u] = disp[u].Sub(push)
			}
		}
		// Attraction along edges.
		for _, e := range g.Edges() {
			d := g.pos[e.U].Sub(g.pos[e.V])
			dist := max(math.Hypot(d.X, d.Y), 1e-6)
			f := dist * dist / k
			pull := geom.Point{X: d.X / dist * f, Y: d.Y / dist * f}
			disp[e.U] = disp[e.U].Sub(pull)
			disp[e.V] = disp[e.V].Add(pull)
		}
		// Move, capped by the cooling temperature.
		for _, v := range names {
			d := disp[v]
			dist := math.Hypot(d.X, d.Y)
			if dist > 0 {
				step := min(dist, temp)
				g.pos[v] = g.pos[v].Add(geom.Point{X: d.X / dist * step, Y: d.Y / dist * step})
			}
		}
		temp *= 0.95
	}
}

// isPlanar applies the Euler edge-count bound. This accepts some
// non-planar graphs (the editor's contract only requires that
// rejections be surfaced, not that the test be exact; a full
// collaborator library brings its own planarity test).
func (g *Memory) isPlanar() bool {
	n := g.Order()
	if n < 3 {
		return true
	}
	return g.Size() <= 3*n-6
}

// isForest reports whether the undirected graph is acyclic.
func (g *Memory) isForest() bool {
	visited := make(map[string]bool)
	var walk func(v, parent string) bool
	walk = func(v, parent string) bool {
		visited[v] = true
		for u := range g.out[v] {
			if u == parent {
				continue
			}
			if visited[u] {
				return false
			}
			if !walk(u, v) {
				return false
			}
		}
		return true
	}
	for _, v := range g.Vertices() {
		if !visited[v] {
			if !walk(v, "") {
				return false
			}
		}
	}
	return true
}

// forestLayout places each tree in rows by depth. When root names a
// vertex, its tree is rooted there; other trees root at their
// smallest vertex. rootUp flips the vertical orientation.
func (g *Memory) forestLayout(root string, rootUp bool) {
	visited := make(map[string]bool)
	x := 0.0

	place := func(r string) {
		type item struct {
			v     string
			depth int
		}
		queue := []item{{r, 0}}
		visited[r] = true
		for len(queue) > 0 {
			it := queue[0]
			queue = queue[1:]
			y := float64(it.depth)
			if !rootUp {
				y = -y
			}
			g.pos[it.v] = geom.Point{X: x, Y: y}
			x += 1
			for _, u := range g.Neighbors(it.v) {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, item{u, it.depth + 1})
				}
			}
		}
		x += 1 // gap between trees
	}

	if root != "" && g.HasVertex(root) {
		place(root)
	}
	for _, v := range g.Vertices() {
		if !visited[v] {
			place(v)
		}
	}
}

// topologicalLayers groups vertices by longest-path depth (Kahn's
// algorithm). The second return is false when the graph has a cycle.
func (g *Memory) topologicalLayers() ([][]string, bool) {
	indegree := make(map[string]int)
	for _, v := range g.Vertices() {
		indegree[v] = len(g.in[v])
	}
	layer := make(map[string]int)
	var frontier []string
	for _, v := range g.Vertices() {
		if indegree[v] == 0 {
			frontier = append(frontier, v)
			layer[v] = 0
		}
	}
	processed := 0
	maxLayer := 0
	for len(frontier) > 0 {
		v := frontier[0]
		frontier = frontier[1:]
		processed++
		for u := range g.out[v] {
			if layer[v]+1 > layer[u] {
				layer[u] = layer[v] + 1
				maxLayer = max(maxLayer, layer[u])
			}
			indegree[u]--
			if indegree[u] == 0 {
				frontier = append(frontier, u)
			}
		}
	}
	if processed != g.Order() {
		return nil, false
	}
	layers := make([][]string, maxLayer+1)
	for _, v := range g.Vertices() {
		layers[layer[v]] = append(layers[layer[v]], v)
	}
	return layers, true
}

// layerLayout places each layer on its own row, sources at the top.
func (g *Memory) layerLayout(layers [][]string) {
	for depth, row := range layers {
		for i, v := range row {
			g.pos[v] = geom.Point{X: float64(i), Y: -float64(depth)}
		}
	}
}
