package figure

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Epsilon is the tolerance used for float equality of coordinates.
var Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// finite returns true if f is neither NaN nor infinite.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Div divides x and y by f.
func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the Euclidean distance between P and Q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Norm normalized OP to be of certain length.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle with its origin at (X,Y) and a width W and height H.
type Rect struct {
	X, Y, W, H float64
}

// RectFromPoints returns the smallest rectangle enclosing all points.
func RectFromPoints(ps ...Point) Rect {
	if len(ps) == 0 {
		return Rect{}
	}
	x0, y0, x1, y1 := ps[0].X, ps[0].Y, ps[0].X, ps[0].Y
	for _, p := range ps[1:] {
		x0 = math.Min(x0, p.X)
		y0 = math.Min(y0, p.Y)
		x1 = math.Max(x1, p.X)
		y1 = math.Max(y1, p.Y)
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() Point {
	return Point{r.X, r.Y}
}

// Max returns the corner with the largest coordinates.
func (r Rect) Max() Point {
	return Point{r.X + r.W, r.Y + r.H}
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{r.X + r.W/2.0, r.Y + r.H/2.0}
}

// Move translates the rectangle.
func (r Rect) Move(p Point) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

// Add returns the union of both rectangles.
func (r Rect) Add(q Rect) Rect {
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Contains returns true if (x,y) lies inside or on the boundary of the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return r.X <= x && x <= r.X+r.W && r.Y <= y && y <= r.Y+r.H
}

// Overlaps returns true if both rectangles share at least one point.
func (r Rect) Overlaps(q Rect) bool {
	return r.bound().Intersects(q.bound())
}

// Equals returns true if both rectangles are equal with tolerance Epsilon.
func (r Rect) Equals(q Rect) bool {
	return equal(r.X, q.X) && equal(r.Y, q.Y) && equal(r.W, q.W) && equal(r.H, q.H)
}

func (r Rect) bound() orb.Bound {
	return orb.Bound{Min: orb.Point{r.X, r.Y}, Max: orb.Point{r.X + r.W, r.Y + r.H}}
}

// ToPath returns a closed rectangular path.
func (r Rect) ToPath() *Path {
	p := &Path{}
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.X+r.W, r.Y)
	p.LineTo(r.X+r.W, r.Y+r.H)
	p.LineTo(r.X, r.Y+r.H)
	p.Close()
	return p
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.X+r.W, r.Y+r.H)
}
