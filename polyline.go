package figure

import "math"

// Polyline is a free-form line figure. All of its control points move with the figure, and when closed
// it can serve as the figure of a node.
type Polyline struct {
	line
}

// NewPolyline returns a polyline from (x0,y0) to (x1,y1) drawn with straight segments.
func NewPolyline(x0, y0, x1, y1 float64) *Polyline {
	l := newLine(x0, y0, x1, y1)
	l.translateAll = true
	return &Polyline{l}
}

// PolylineFromPath returns a polyline through the coordinates of the path flattened by Tolerance. It
// returns nil if the path has fewer than two coordinates.
func PolylineFromPath(p *Path) *Polyline {
	coords := p.Flatten(Tolerance).Coords()
	closed := p.Closed()
	if closed && 2 < len(coords) && coords[0].Equals(coords[len(coords)-1]) {
		coords = coords[:len(coords)-1]
	}
	if len(coords) < 2 {
		return nil
	}
	pl := NewPolyline(coords[0].X, coords[0].Y, coords[1].X, coords[1].Y)
	if len(coords) > pl.Points.Max() {
		coords = coords[:pl.Points.Max()]
	}
	pl.Points.Replace(coords)
	pl.SetClosed(closed)
	return pl
}

// Area returns the area enclosed by the polygon of the control points, or zero when open.
func (p *Polyline) Area() float64 {
	if !p.closed {
		return 0.0
	}
	return math.Abs(signedArea(p.outline()))
}

// Center returns the centroid of the enclosed area. For open or degenerate polylines it returns the
// center of the bounds.
func (p *Polyline) Center() Point {
	coords := p.outline()
	a := signedArea(coords)
	if !p.closed || equal(a, 0.0) {
		return p.Bounds().Center()
	}

	c := Point{}
	for i := range coords {
		j := (i + 1) % len(coords)
		f := coords[i].PerpDot(coords[j])
		c = c.Add(coords[i].Add(coords[j]).Mul(f))
	}
	return c.Div(6.0 * a)
}

// ConnectionPoint returns the point on the outline nearest to p.
func (p *Polyline) ConnectionPoint(q Point) Point {
	if r, ok := p.NearestPointTo(q.X, q.Y); ok {
		return r
	}
	return q
}

func signedArea(coords []Point) float64 {
	a := 0.0
	for i := range coords {
		a += coords[i].PerpDot(coords[(i+1)%len(coords)])
	}
	return a / 2.0
}
