package editor

import (
	"fmt"
	"math"

	"graphed/internal/geom"
	"graphed/internal/hittest"
	"graphed/internal/render"
)

// Tool is the active interaction mode. Exactly one tool is active at
// a time; switching drops all selection and gesture state.
type Tool int

const (
	ToolSelectMove Tool = iota
	ToolAddVertexEdge
	ToolDelete
	ToolAddWalk
	ToolAddClique
	ToolAddStar
)

var toolNames = map[Tool]string{
	ToolSelectMove:    "select / move",
	ToolAddVertexEdge: "add vertex or edge",
	ToolDelete:        "delete vertex or edge",
	ToolAddWalk:       "add walk",
	ToolAddClique:     "add clique",
	ToolAddStar:       "add star",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// ParseTool maps a tool selector label back to its Tool.
func ParseTool(name string) (Tool, error) {
	for t, n := range toolNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tool: %s", name)
}

// ToolNames returns the selector labels in display order.
func ToolNames() []string {
	return []string{
		toolNames[ToolSelectMove],
		toolNames[ToolAddVertexEdge],
		toolNames[ToolDelete],
		toolNames[ToolAddWalk],
		toolNames[ToolAddClique],
		toolNames[ToolAddStar],
	}
}

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// SetTool switches the active tool. No selection or in-progress
// gesture survives the switch.
func (e *Editor) SetTool(t Tool) {
	hadState := len(e.sel.Vertices()) > 0 || len(e.sel.Edges()) > 0 || e.gestureActive()
	e.tool = t
	e.sel.ClearVertices()
	e.sel.ClearEdges()
	e.sel.EndDrag()
	e.sel.EndPan()
	e.clearGestures()
	if hadState {
		e.rend.DrawFullGraph()
		e.rend.ClearInteraction()
	}
}

func (e *Editor) gestureActive() bool {
	return e.walkTail != nil || e.clique != nil || e.star != nil
}

func (e *Editor) clearGestures() {
	e.walkTail = nil
	e.clique = nil
	e.star = nil
}

// MouseDown dispatches a pointer press to the active tool. The hit
// test runs once here; tools receive the resolved vertex.
func (e *Editor) MouseDown(p geom.Point) {
	e.pressPixel = p
	v, onVertex := hittest.VertexAt(p, e.vertexShapes())

	switch e.tool {
	case ToolSelectMove:
		e.downSelectMove(p, v, onVertex)
	case ToolAddVertexEdge:
		e.downAddVertexEdge(p, v, onVertex)
	case ToolDelete:
		e.downDelete(p, v, onVertex)
	case ToolAddWalk:
		e.downAddWalk(p, v, onVertex)
	case ToolAddClique:
		e.downAddClique(p, v, onVertex)
	case ToolAddStar:
		e.downAddStar(p, v, onVertex)
	}
}

// MouseMove tracks a drag or a pan; other tools ignore movement.
func (e *Editor) MouseMove(p geom.Point) {
	if v, ok := e.sel.Dragged(); ok {
		e.graph.SetPosition(v, e.view.ToLogical(p))
		interact := e.rend.Interact()
		interact.Hold()
		interact.Clear()
		e.rend.RedrawVertexAndNeighbors(v, interact, dragColor, false)
		interact.Flush()
		return
	}
	if anchor, ok := e.sel.PanAnchor(); ok {
		e.view.Translate(p.Sub(anchor))
		e.sel.MovePanAnchor(p)
		e.rend.DrawFullGraph()
	}
}

// MouseUp resolves the press: a displacement below the click
// threshold in both axes is a click, anything larger commits the drag
// or pan.
func (e *Editor) MouseUp(p geom.Point) {
	if v, ok := e.sel.Dragged(); ok {
		if e.isClick(p) {
			// The vertex barely moved: the user meant to toggle its
			// selection, not reposition it.
			e.graph.SetPosition(v, e.dragOrigin)
			e.toggleVertexSelection(v)
		} else {
			e.status.Status("Done dragging vertex.")
		}
		e.sel.EndDrag()
		// Full repaint before the interaction surface clears, so the
		// vertex never vanishes for a frame.
		e.rend.DrawFullGraph()
		e.rend.ClearInteraction()
		return
	}
	if _, ok := e.sel.PanAnchor(); ok {
		e.sel.EndPan()
		if e.isClick(p) {
			// A click on empty canvas deselects everything.
			e.sel.ClearVertices()
			e.sel.ClearEdges()
			e.status.Status("Selection cleared.")
			e.rend.DrawFullGraph()
		}
	}
}

// MouseLeave releases any drag or pan, exactly like a pointer up, so
// nothing stays grabbed when the pointer exits the canvas.
func (e *Editor) MouseLeave(p geom.Point) {
	e.MouseUp(p)
}

func (e *Editor) isClick(p geom.Point) bool {
	return math.Abs(p.X-e.pressPixel.X) < e.cfg.Interaction.ClickThreshold &&
		math.Abs(p.Y-e.pressPixel.Y) < e.cfg.Interaction.ClickThreshold
}

// toggleVertexSelection flips v's selection; selecting promotes its
// style into the shared picker values.
func (e *Editor) toggleVertexSelection(v string) {
	if e.sel.ToggleVertex(v) {
		e.currentColor = e.styles.VertexColor(v)
		e.currentRadius = e.styles.Radius(v)
		e.status.Status("Selected vertex " + v)
	} else {
		e.status.Status("Unselected vertex " + v)
	}
}

// downSelectMove starts a drag on a vertex, toggles edge selection on
// an edge, or starts a pan on empty canvas.
func (e *Editor) downSelectMove(p geom.Point, v string, onVertex bool) {
	if onVertex {
		if pos, ok := e.graph.Position(v); ok {
			e.dragOrigin = pos
		}
		e.sel.StartDrag(v)
		e.status.Status("Clicked on vertex " + v)
		// The dragged neighborhood moves to the interaction surface;
		// the settled surface keeps everything else.
		e.rend.DrawAllExcept(v)
		interact := e.rend.Interact()
		interact.Hold()
		interact.Clear()
		e.rend.RedrawVertexAndNeighbors(v, interact, dragColor, false)
		interact.Flush()
		return
	}
	if edge, ok := hittest.EdgeAt(p, e.edgeSegments(), e.cfg.Interaction.EdgeHitSlack); ok {
		c := edge.Canonical(e.graph.Directed())
		if e.sel.ToggleEdge(c) {
			e.status.Status(fmt.Sprintf("Selected edge (%s, %s)", c.U, c.V))
		} else {
			e.status.Status(fmt.Sprintf("Unselected edge (%s, %s)", c.U, c.V))
		}
		settled := e.rend.Settled()
		settled.Hold()
		e.rend.DrawEdge(c, settled, render.EdgeOpts{ClearFirst: true, EndpointsAlso: true})
		settled.Flush()
		return
	}
	e.sel.StartPan(p)
}

// downAddVertexEdge implements the add tool: a click on empty canvas
// creates a vertex, a click on a vertex selects it, a second click on
// another vertex links them. The tool keeps at most one vertex
// selected; more than one here is a bug.
func (e *Editor) downAddVertexEdge(p geom.Point, v string, onVertex bool) {
	selected := e.sel.Vertices()
	if len(selected) > 1 {
		panic(fmt.Sprintf("editor: %d vertices selected under the add tool", len(selected)))
	}

	if onVertex {
		if len(selected) == 1 {
			if selected[0] == v {
				e.toggleVertexSelection(v) // deselect
				e.rend.DrawFullGraph()
				return
			}
			if err := e.AddEdge(selected[0], v); err != nil {
				e.status.Status(err.Error())
				return
			}
			e.status.Status(fmt.Sprintf("Added edge from %s to %s", selected[0], v))
			e.sel.ClearVertices()
			e.rend.DrawFullGraph()
			return
		}
		e.toggleVertexSelection(v)
		e.rend.DrawFullGraph()
		return
	}

	if len(selected) == 1 {
		// A click on the background with a selection drops it.
		e.sel.ClearVertices()
		e.rend.DrawFullGraph()
		return
	}
	if _, err := e.AddVertexAt(p, ""); err != nil {
		e.status.Status(err.Error())
	}
}

// downDelete deletes the clicked vertex, or failing that the clicked
// edge. The vertex hit test runs first and wins.
func (e *Editor) downDelete(p geom.Point, v string, onVertex bool) {
	if onVertex {
		if err := e.DeleteVertex(v); err != nil {
			e.status.Status(err.Error())
		}
		return
	}
	if edge, ok := hittest.EdgeAt(p, e.edgeSegments(), e.cfg.Interaction.EdgeHitSlack); ok {
		if err := e.DeleteEdge(edge); err != nil {
			e.status.Status(err.Error())
		}
	}
}

// resolveOrCreate returns the clicked vertex, creating one at the
// click position when the canvas was empty there. The walk, clique
// and star tools all start from this.
func (e *Editor) resolveOrCreate(p geom.Point, v string, onVertex bool) (string, bool) {
	if onVertex {
		return v, true
	}
	created, err := e.AddVertexAt(p, "")
	if err != nil {
		e.status.Status(err.Error())
		return "", false
	}
	return created, true
}

// downAddWalk grows a walk: each click links the previous vertex to
// the clicked one; clicking the current tail ends the gesture.
func (e *Editor) downAddWalk(p geom.Point, clicked string, onVertex bool) {
	v, ok := e.resolveOrCreate(p, clicked, onVertex)
	if !ok {
		return
	}

	if e.walkTail == nil {
		e.status.Status("Constructing a walk - click on the last vertex when you are done.")
		e.walkTail = &v
		e.selectOnly(v)
		e.rend.DrawFullGraph()
		return
	}
	if *e.walkTail == v {
		e.status.Status("Done constructing walk")
		e.walkTail = nil
		e.rend.DrawFullGraph()
		return
	}
	if err := e.AddEdge(*e.walkTail, v); err != nil {
		e.status.Status(err.Error())
		return
	}
	e.selectOnly(v)
	e.walkTail = &v
	// The previous tail is now a neighbor of v, so the targeted
	// repaint also clears its focus ring.
	e.rend.RedrawVertexAndNeighbors(v, e.rend.Settled(), "", true)
}

// downAddClique grows a clique: each new vertex is linked to every
// vertex already in the gesture; clicking a member ends it.
func (e *Editor) downAddClique(p geom.Point, clicked string, onVertex bool) {
	v, ok := e.resolveOrCreate(p, clicked, onVertex)
	if !ok {
		return
	}

	if e.clique == nil {
		e.clique = []string{v}
		e.status.Status("Constructing a clique - click on a member vertex when you are done.")
		return
	}
	for _, member := range e.clique {
		if member == v {
			e.status.Status("Done constructing clique")
			e.clique = nil
			return
		}
	}
	for _, member := range e.clique {
		if err := e.AddEdge(v, member); err != nil {
			e.status.Status(err.Error())
			return
		}
	}
	e.clique = append(e.clique, v)
	e.rend.DrawFullGraph()
}

// downAddStar grows a star: the first click fixes the center, each
// following click links center to leaf; clicking the center or the
// current leaf ends the gesture.
func (e *Editor) downAddStar(p geom.Point, clicked string, onVertex bool) {
	v, ok := e.resolveOrCreate(p, clicked, onVertex)
	if !ok {
		return
	}

	if e.star == nil {
		e.star = &starGesture{center: v, leaf: v}
		e.selectOnly(v)
		e.rend.DrawFullGraph()
		e.status.Status("Star with center " + v + ": click on the leaves")
		return
	}
	if v == e.star.center || v == e.star.leaf {
		e.status.Status("Done drawing star")
		e.star = nil
		e.sel.ClearVertices()
		e.rend.DrawFullGraph()
		return
	}
	if err := e.AddEdge(e.star.center, v); err != nil {
		e.status.Status(err.Error())
		return
	}
	e.star.leaf = v
	e.rend.RedrawVertexAndNeighbors(v, e.rend.Settled(), "", true)
	e.status.Status("Star with center " + e.star.center + ": click on the leaves")
}

// selectOnly makes v the only selected vertex.
func (e *Editor) selectOnly(v string) {
	e.sel.ClearVertices()
	e.sel.ToggleVertex(v)
	e.currentColor = e.styles.VertexColor(v)
	e.currentRadius = e.styles.Radius(v)
}
