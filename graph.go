package figure

// Graph is an arena of nodes with their anchors, and of the edges connected to them. Anchors and edges
// refer to nodes by their index so that the graph holds the only reference to a node.
type Graph struct {
	nodes []graphNode
	edges []*EdgeGeometry
}

type graphNode struct {
	figure  NodeFigure
	anchors []Anchor
}

type modelBinder interface {
	bind(*Graph, NodeID)
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode adds a node with the given figure. Blocks are bound to the graph so that moving or resizing
// them resynchronizes the connected edges.
func (g *Graph) AddNode(fig NodeFigure) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, graphNode{figure: fig})
	if b, ok := fig.(modelBinder); ok {
		b.bind(g, id)
	}
	return id
}

func (g *Graph) valid(id NodeID) bool {
	return 0 <= id && int(id) < len(g.nodes) && g.nodes[id].figure != nil
}

// AddAnchor adds an anchor to the node and returns a reference to it. It panics for an unknown node.
func (g *Graph) AddAnchor(id NodeID, name string, loc Location) AnchorRef {
	if !g.valid(id) {
		panic("unknown node")
	}
	n := &g.nodes[id]
	n.anchors = append(n.anchors, Anchor{
		Name:     name,
		Location: loc,
		Node:     id,
	})
	return AnchorRef{id, len(n.anchors) - 1}
}

// Anchors returns the anchors of the node, or nil for an unknown or removed node.
func (g *Graph) Anchors(id NodeID) []Anchor {
	if !g.valid(id) {
		return nil
	}
	return g.nodes[id].anchors
}

// NodeFigure returns the figure of the node, or nil for an unknown or removed node.
func (g *Graph) NodeFigure(id NodeID) NodeFigure {
	if !g.valid(id) {
		return nil
	}
	return g.nodes[id].figure
}

// Anchor returns the referenced anchor.
func (g *Graph) Anchor(ref AnchorRef) (Anchor, bool) {
	anchors := g.Anchors(ref.Node)
	if ref.Index < 0 || len(anchors) <= ref.Index {
		return Anchor{}, false
	}
	return anchors[ref.Index], true
}

// Edges returns the number of edges that have been connected to the graph.
func (g *Graph) Edges() int {
	return len(g.edges)
}

// Connect binds the end of the edge to the anchor and moves the end points onto the node boundaries.
func (g *Graph) Connect(e *EdgeGeometry, end End, ref AnchorRef) {
	g.track(e)
	e.Connect(g, end, ref)
}

// Disconnect unbinds the end of the edge. The edge is forgotten once both ends are unbound.
func (g *Graph) Disconnect(e *EdgeGeometry, end End) {
	e.Disconnect(end)
	if e.start == nil && e.end == nil {
		g.untrack(e)
	}
}

// NodeChanged resynchronizes all edges connected to the node after its figure moved or changed
// shape.
func (g *Graph) NodeChanged(id NodeID) {
	for _, e := range g.edges {
		if e.start != nil && e.start.Node == id {
			e.Sync(g, StartEnd)
			if e.end != nil && e.end.Node != id {
				e.Sync(g, EndEnd)
			}
		}
		if e.end != nil && e.end.Node == id {
			e.Sync(g, EndEnd)
		}
	}
}

// RemoveNode removes the node and disconnects all edge ends bound to it. Node indices of other nodes
// remain valid.
func (g *Graph) RemoveNode(id NodeID) {
	if !g.valid(id) {
		return
	}
	for _, e := range append([]*EdgeGeometry{}, g.edges...) {
		if e.start != nil && e.start.Node == id {
			g.Disconnect(e, StartEnd)
		}
		if e.end != nil && e.end.Node == id {
			g.Disconnect(e, EndEnd)
		}
	}
	if b, ok := g.nodes[id].figure.(modelBinder); ok {
		b.bind(nil, 0)
	}
	g.nodes[id] = graphNode{}
}

func (g *Graph) track(e *EdgeGeometry) {
	for _, f := range g.edges {
		if f == e {
			return
		}
	}
	g.edges = append(g.edges, e)
}

func (g *Graph) untrack(e *EdgeGeometry) {
	for i, f := range g.edges {
		if f == e {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			return
		}
	}
}
