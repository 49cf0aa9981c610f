package figure

import "fmt"

// NodeID is the index of a node in its model.
type NodeID int

// Location is the position of an anchor on the bounding box of its node.
type Location int

// Anchor locations.
const (
	AtCenter Location = iota
	AtN
	AtNE
	AtE
	AtSE
	AtS
	AtSW
	AtW
	AtNW
)

func (l Location) String() string {
	if l == AtCenter {
		return "C"
	} else if AtN <= l && l <= AtNW {
		return Direction(l - AtN).String()
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

// ParseLocation parses the name as returned by Location.String.
func ParseLocation(s string) (Location, error) {
	if s == "C" {
		return AtCenter, nil
	}
	d, err := ParseDirection(s)
	if err != nil {
		return 0, err
	}
	return AtN + Location(d), nil
}

// Point returns the position of the location on the rectangle.
func (l Location) Point(r Rect) Point {
	if l == AtCenter {
		return r.Center()
	}
	return Direction(l - AtN).point(r)
}

// Anchor is a named connection slot on a node. Node refers back to the owning node by index and does
// not own it.
type Anchor struct {
	Name     string
	Location Location
	Node     NodeID
}

// AnchorRef identifies an anchor by its node and its index in the node's anchor list.
type AnchorRef struct {
	Node  NodeID
	Index int
}

// NodeFigure is the figure of a node that edges connect to.
type NodeFigure interface {
	Contains(x, y float64) bool
	// ConnectionPoint returns the point on the figure's boundary nearest to p.
	ConnectionPoint(p Point) Point
	Center() Point
}

// Model gives access to the anchors and figures of nodes.
type Model interface {
	Anchors(NodeID) []Anchor
	NodeFigure(NodeID) NodeFigure
}

// End is one of both ends of an edge.
type End int

// Edge ends.
const (
	StartEnd End = iota
	EndEnd
)

func (e End) opposite() End {
	return 1 - e
}

func (e End) String() string {
	if e == StartEnd {
		return "start"
	}
	return "end"
}

// Anchor returns the anchor the end is bound to.
func (g *EdgeGeometry) Anchor(end End) (AnchorRef, bool) {
	ref := g.binding(end)
	if ref == nil {
		return AnchorRef{}, false
	}
	return *ref, true
}

func (g *EdgeGeometry) binding(end End) *AnchorRef {
	if end == StartEnd {
		return g.start
	}
	return g.end
}

func (g *EdgeGeometry) setBinding(end End, ref *AnchorRef) {
	if end == StartEnd {
		g.start = ref
	} else {
		g.end = ref
	}
}

// Connect binds an end to an anchor and moves both bound ends onto the boundaries of their nodes.
func (g *EdgeGeometry) Connect(m Model, end End, ref AnchorRef) {
	g.setBinding(end, &ref)
	g.Sync(m, end)
	if g.binding(end.opposite()) != nil {
		g.Sync(m, end.opposite())
	}
}

// Disconnect unbinds an end, the control point keeps its position.
func (g *EdgeGeometry) Disconnect(end End) {
	g.setBinding(end, nil)
}

// SyncStart moves the start point onto the boundary of the node it is bound to.
func (g *EdgeGeometry) SyncStart(m Model) bool {
	return g.Sync(m, StartEnd)
}

// SyncEnd moves the end point onto the boundary of the node it is bound to.
func (g *EdgeGeometry) SyncEnd(m Model) bool {
	return g.Sync(m, EndEnd)
}

// SyncAll moves all bound ends onto the boundaries of their nodes.
func (g *EdgeGeometry) SyncAll(m Model) {
	g.Sync(m, StartEnd)
	g.Sync(m, EndEnd)
}

// Sync moves the end onto the boundary of the node it is bound to. The end is placed at the connection
// point of the first control point, scanning from that end inwards, that lies outside the node's
// figure. If all points lie inside, the center of the opposite node is used, or else the opposite
// end point. It returns false if the end is not bound or the anchor cannot be resolved.
func (g *EdgeGeometry) Sync(m Model, end End) bool {
	fig := resolve(m, g.binding(end))
	if fig == nil {
		return false
	}

	ps := g.Points.ps
	n := len(ps)
	found := false
	var candidate Point
	for k := 0; k < n; k++ {
		i := k
		if end == EndEnd {
			i = n - 1 - k
		}
		if !fig.Contains(ps[i].X, ps[i].Y) {
			candidate = ps[i]
			found = true
			break
		}
	}
	if !found {
		if other := resolve(m, g.binding(end.opposite())); other != nil {
			candidate = other.Center()
			Logger.Debug("anchor: all points inside node, using opposite node center", "end", end)
		} else if end == StartEnd {
			candidate = ps[n-1]
			Logger.Debug("anchor: all points inside node, using opposite end point", "end", end)
		} else {
			candidate = ps[0]
			Logger.Debug("anchor: all points inside node, using opposite end point", "end", end)
		}
	}

	q := fig.ConnectionPoint(candidate)
	if end == StartEnd {
		g.Points.Set(0, q.X, q.Y)
	} else {
		g.Points.Set(n-1, q.X, q.Y)
	}
	return true
}

// resolve returns the figure of the node owning the referenced anchor.
func resolve(m Model, ref *AnchorRef) NodeFigure {
	if m == nil || ref == nil {
		return nil
	}
	anchors := m.Anchors(ref.Node)
	if ref.Index < 0 || len(anchors) <= ref.Index {
		return nil
	}
	return m.NodeFigure(anchors[ref.Index].Node)
}
