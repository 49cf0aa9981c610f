package figure

// EdgeGeometry is the shape of a line figure: its control points, the drawing method, whether it is
// closed, and the anchors its ends are bound to. The path built from it is cached.
type EdgeGeometry struct {
	Points *ControlPoints

	method DrawingMethod
	closed bool
	start  *AnchorRef
	end    *AnchorRef
	cache  PathCache
}

func newEdgeGeometry(x0, y0, x1, y1 float64, max int) EdgeGeometry {
	return EdgeGeometry{
		Points: NewControlPoints(x0, y0, x1, y1, max),
	}
}

// Method returns the drawing method.
func (g *EdgeGeometry) Method() DrawingMethod {
	return g.method
}

// SetMethod sets the drawing method. It panics for an unknown drawing method.
func (g *EdgeGeometry) SetMethod(method DrawingMethod) {
	if method != Segments && method != CubicSpline && method != QuadraticSpline {
		panic("unknown drawing method " + method.String())
	}
	g.method = method
	g.cache.Invalidate()
}

// Closed returns true if the figure is a closed polygon.
func (g *EdgeGeometry) Closed() bool {
	return g.closed
}

// SetClosed sets whether the figure is a closed polygon.
func (g *EdgeGeometry) SetClosed(closed bool) {
	g.closed = closed
	g.cache.Invalidate()
}

// Path returns the (cached) path with its end tangents.
func (g *EdgeGeometry) Path() CachedPath {
	return g.cache.Get(g.Points, g.method, g.closed)
}

// Bounds returns the bounding box of the path.
func (g *EdgeGeometry) Bounds() Rect {
	return g.Path().Path.Bounds()
}

// numSegments returns the number of control segments, ie. pairs of consecutive control points.
func (g *EdgeGeometry) numSegments() int {
	if g.closed {
		return g.Points.Len()
	}
	return g.Points.Len() - 1
}

// lineSegment is a linear piece of the figure's outline belonging to control segment seg.
type lineSegment struct {
	a, b Point
	seg  int
}

// lineSegments returns the outline as linear pieces. For straight segments these are the pairs of
// consecutive control points, splines are flattened with the given tolerance.
func (g *EdgeGeometry) lineSegments(tolerance float64) []lineSegment {
	ps := g.Points.ps
	if g.method == Segments {
		segs := make([]lineSegment, 0, len(ps))
		for i := 0; i+1 < len(ps); i++ {
			segs = append(segs, lineSegment{ps[i], ps[i+1], i})
		}
		if g.closed {
			segs = append(segs, lineSegment{ps[len(ps)-1], ps[0], len(ps) - 1})
		}
		return segs
	}

	n := g.numSegments()
	per := g.method.cmdsPerSegment()
	fs := g.Path().Path.flatten(tolerance)
	segs := make([]lineSegment, 0, len(fs))
	for k := 1; k < len(fs); k++ {
		if fs[k].cmd == -1 {
			continue
		}
		seg := fs[k].cmd / per
		if n <= seg {
			seg = n - 1 // zero-length close
		}
		segs = append(segs, lineSegment{fs[k-1].p, fs[k].p, seg})
	}
	return segs
}
