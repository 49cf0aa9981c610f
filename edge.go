package figure

// line is the shared part of edges and polylines.
type line struct {
	base
	EdgeGeometry

	model        Model
	translateAll bool
}

func newLine(x0, y0, x1, y1 float64) line {
	return line{
		base:         newBase(),
		EdgeGeometry: newEdgeGeometry(x0, y0, x1, y1, MaxPoints),
	}
}

// Geometry returns the control points, drawing method and anchor bindings.
func (l *line) Geometry() *EdgeGeometry {
	return &l.EdgeGeometry
}

// Paint draws the path of the figure, the interior is painted for closed figures.
func (l *line) Paint(s Surface) {
	p := l.Path().Path
	draw(s, l.id, p, p.Bounds(), drawStyle{outline: true, interior: l.closed})
}

// InsertPoint inserts a control point, see ControlPoints.Insert.
func (l *line) InsertPoint(i int, x, y float64) bool {
	if l.locked {
		return false
	}
	return l.Points.Insert(i, x, y)
}

// RemovePoint removes a control point, see ControlPoints.Remove.
func (l *line) RemovePoint(i int) bool {
	if l.locked {
		return false
	}
	return l.Points.Remove(i)
}

// MovePoint moves the control point at index i to (x,y).
func (l *line) MovePoint(i int, x, y float64) bool {
	if l.locked {
		return false
	}
	l.Points.Set(i, x, y)
	l.SyncAll(l.model)
	return true
}

// Move translates the figure. For edges the end points stay with their anchors.
func (l *line) Move(dx, dy float64) bool {
	if l.locked {
		return false
	}
	if l.translateAll {
		l.Points.TranslateAll(dx, dy)
	} else {
		l.Points.TranslateInterior(dx, dy)
	}
	l.SyncAll(l.model)
	return true
}

func (l *line) capture() *shadowPart {
	ps := l.Points.Points()
	return &shadowPart{
		fig:          l,
		origin:       ps,
		points:       append([]Point{}, ps...),
		method:       l.method,
		closed:       l.closed,
		translateAll: l.translateAll,
		moved:        -1,
	}
}

func (l *line) commit(part *shadowPart) {
	if !l.Points.Replace(part.points) {
		Logger.Warn("shadow: preview has invalid number of points", "figure", l.id, "points", len(part.points))
		return
	}
	if 0 <= part.moved && l.Points.Flatten(part.moved) {
		Logger.Debug("shadow: flattened dragged point", "figure", l.id, "index", part.moved)
	}
	l.SyncAll(l.model)
}

// Edge is a line figure connecting two nodes. Its end points are owned by the anchors they are
// connected to.
type Edge struct {
	line
}

// NewEdge returns an edge from (x0,y0) to (x1,y1) drawn with straight segments.
func NewEdge(x0, y0, x1, y1 float64) *Edge {
	return &Edge{newLine(x0, y0, x1, y1)}
}

// Model returns the graph the edge is connected to, or nil.
func (e *Edge) Model() Model {
	return e.model
}

// Connect binds the end of the edge to an anchor of the graph.
func (e *Edge) Connect(g *Graph, end End, ref AnchorRef) {
	e.model = g
	g.Connect(&e.EdgeGeometry, end, ref)
}

// Disconnect unbinds the end of the edge.
func (e *Edge) Disconnect(end End) {
	if g, ok := e.model.(*Graph); ok {
		g.Disconnect(&e.EdgeGeometry, end)
	} else {
		e.EdgeGeometry.Disconnect(end)
	}
	if e.start == nil && e.end == nil {
		e.model = nil
	}
}
