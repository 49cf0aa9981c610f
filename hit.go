package figure

import "math"

// HitControlPoint returns the index of the first control point within distance eps of (x,y), or -1.
func (g *EdgeGeometry) HitControlPoint(x, y, eps float64) int {
	p := Point{x, y}
	for i, q := range g.Points.ps {
		if p.Distance(q) <= eps {
			return i
		}
	}
	return -1
}

// HitSegment returns the index of the first control segment within distance eps of (x,y), or -1.
// Segment i runs from control point i to i+1, for closed figures the last segment runs back to the
// first point. Splines are tested on their flattened curve. Unlike NearestSegmentTo this returns
// the first match in index order, not the closest.
func (g *EdgeGeometry) HitSegment(x, y, eps float64) int {
	p := Point{x, y}
	for _, s := range g.lineSegments(HitFlatness) {
		if distanceToSegment(p, s.a, s.b) <= eps {
			return s.seg
		}
	}
	return -1
}

// NearestSegmentTo returns the index of the control segment closest to (x,y), or -1 if no segment
// has a finite distance.
func (g *EdgeGeometry) NearestSegmentTo(x, y float64) int {
	p := Point{x, y}
	best, bestDist := -1, math.Inf(1)
	for _, s := range g.lineSegments(HitFlatness) {
		d := distanceToSegment(p, s.a, s.b)
		if !finite(d) {
			continue
		}
		if best == -1 || d < bestDist {
			best, bestDist = s.seg, d
		}
	}
	return best
}

// NearestPointTo returns the point on the outline closest to (x,y). It returns false if no point has
// a finite distance.
func (g *EdgeGeometry) NearestPointTo(x, y float64) (Point, bool) {
	p := Point{x, y}
	found := false
	best, bestDist := Point{}, math.Inf(1)
	for _, s := range g.lineSegments(HitFlatness) {
		q := closestOnSegment(p, s.a, s.b)
		d := p.Distance(q)
		if !finite(d) {
			continue
		}
		if !found || d < bestDist {
			best, bestDist = q, d
			found = true
		}
	}
	return best, found
}

// NearestControlPointTo returns the index of the control point closest to (x,y), or -1 if no point
// has a finite distance.
func (g *EdgeGeometry) NearestControlPointTo(x, y float64) int {
	p := Point{x, y}
	best, bestDist := -1, math.Inf(1)
	for i, q := range g.Points.ps {
		d := p.Distance(q)
		if !finite(d) {
			continue
		}
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Contains returns true if (x,y) lies in the interior of a closed figure using the nonzero fill rule.
// Open figures have no interior.
func (g *EdgeGeometry) Contains(x, y float64) bool {
	if !g.closed {
		return false
	}
	return fillCount(g.outline(), x, y) != 0
}

// outline returns the flattened outline coordinates.
func (g *EdgeGeometry) outline() []Point {
	if g.method == Segments {
		return g.Points.ps
	}
	return g.Path().Path.Flatten(Tolerance).Coords()
}

// Intersects returns true if the outline of the figure crosses or touches the path q, or when one
// of both is closed and encloses the other.
func (g *EdgeGeometry) Intersects(q *Path) bool {
	p := g.Path().Path
	if p.Empty() || q.Empty() || !p.Bounds().Overlaps(q.Bounds()) {
		return false
	}

	qsegs := q.Flatten(Tolerance).Segments()
	for _, s := range g.lineSegments(Tolerance) {
		for _, t := range qsegs {
			if intersectsSegments(s.a, s.b, t.Start, t.End) {
				return true
			}
		}
	}

	// no crossings, so either shape is completely inside the other or they are disjoint
	if start := q.StartPos(); g.Contains(start.X, start.Y) {
		return true
	}
	if q.Closed() {
		start := g.Points.First()
		return fillCount(q.Flatten(Tolerance).Coords(), start.X, start.Y) != 0
	}
	return false
}

// IntersectsRect returns true if the figure intersects the rectangle, such as a pointer area.
func (g *EdgeGeometry) IntersectsRect(r Rect) bool {
	return g.Intersects(r.ToPath())
}
