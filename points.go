package figure

import (
	"math"

	"github.com/samber/lo"
)

// MinPoints is the minimum number of control points of a line figure.
const MinPoints = 2

// ControlPoints is the ordered list of control points that defines the shape of a line figure. It
// always holds at least two points. Every mutation increments the version, which invalidates the
// paths that were built from an earlier version.
type ControlPoints struct {
	ps      []Point
	max     int
	version uint64
}

// NewControlPoints returns a sequence with the two points (x0,y0) and (x1,y1). A maximum of zero or
// less means the number of points is unbounded.
func NewControlPoints(x0, y0, x1, y1 float64, max int) *ControlPoints {
	if max <= 0 {
		max = math.MaxInt
	} else if max < MinPoints {
		max = MinPoints
	}
	return &ControlPoints{
		ps:  []Point{{x0, y0}, {x1, y1}},
		max: max,
	}
}

// Len returns the number of control points.
func (cp *ControlPoints) Len() int {
	return len(cp.ps)
}

// Max returns the maximum number of control points.
func (cp *ControlPoints) Max() int {
	return cp.max
}

// Version returns a counter that changes on every mutation.
func (cp *ControlPoints) Version() uint64 {
	return cp.version
}

// Points returns a copy of the control points.
func (cp *ControlPoints) Points() []Point {
	return append([]Point{}, cp.ps...)
}

// First returns the first control point.
func (cp *ControlPoints) First() Point {
	return cp.ps[0]
}

// Last returns the last control point.
func (cp *ControlPoints) Last() Point {
	return cp.ps[len(cp.ps)-1]
}

func (cp *ControlPoints) checkIndex(i int) {
	if i < 0 || len(cp.ps) <= i {
		panic("control point index out of range")
	}
}

// Get returns the control point at index i. It panics if i is out of range.
func (cp *ControlPoints) Get(i int) Point {
	cp.checkIndex(i)
	return cp.ps[i]
}

// Set moves the control point at index i to (x,y). It panics if i is out of range.
func (cp *ControlPoints) Set(i int, x, y float64) {
	cp.checkIndex(i)
	cp.ps[i] = Point{x, y}
	cp.version++
}

// Insert inserts the point (x,y) at index i, which is clamped to [0,Len]. It returns false and leaves
// the points unchanged when the maximum number of points has been reached.
func (cp *ControlPoints) Insert(i int, x, y float64) bool {
	if cp.max <= len(cp.ps) {
		return false
	}
	i = lo.Clamp(i, 0, len(cp.ps))
	cp.ps = append(cp.ps, Point{})
	copy(cp.ps[i+1:], cp.ps[i:])
	cp.ps[i] = Point{x, y}
	cp.version++
	return true
}

// Remove removes the control point at index i. It returns false and leaves the points unchanged when
// only two points remain. It panics if i is out of range.
func (cp *ControlPoints) Remove(i int) bool {
	if len(cp.ps) <= MinPoints {
		return false
	}
	cp.checkIndex(i)
	cp.ps = append(cp.ps[:i], cp.ps[i+1:]...)
	cp.version++
	return true
}

// TranslateInterior moves all points except the first and last by (dx,dy). The end points of an edge
// are owned by its anchors.
func (cp *ControlPoints) TranslateInterior(dx, dy float64) {
	for i := 1; i < len(cp.ps)-1; i++ {
		cp.ps[i].X += dx
		cp.ps[i].Y += dy
	}
	cp.version++
}

// TranslateAll moves all points by (dx,dy).
func (cp *ControlPoints) TranslateAll(dx, dy float64) {
	for i := range cp.ps {
		cp.ps[i].X += dx
		cp.ps[i].Y += dy
	}
	cp.version++
}

// Replace sets all points at once, the number of points is bounded by the minimum and maximum. It
// returns false and leaves the points unchanged otherwise.
func (cp *ControlPoints) Replace(ps []Point) bool {
	if len(ps) < MinPoints || cp.max < len(ps) {
		return false
	}
	cp.ps = append(cp.ps[:0], ps...)
	cp.version++
	return true
}
