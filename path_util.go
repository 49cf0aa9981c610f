package figure

import (
	"math"

	"github.com/paulmach/orb/planar"
)

// Tolerance is the maximum deviation from the curve used when flattening Béziers for lengths and
// containment tests.
var Tolerance = 0.01

// maxSubdivisions limits the recursion depth of Bézier flattening, which guards against NaN
// coordinates that never become flat.
const maxSubdivisions = 16

// distanceToSegment returns the distance from p to the line segment AB.
func distanceToSegment(p, a, b Point) float64 {
	return planar.DistanceFromSegment(a.orb(), b.orb(), p.orb())
}

// closestOnSegment returns the point on segment AB closest to p.
func closestOnSegment(p, a, b Point) Point {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0.0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / l2
	if t <= 0.0 {
		return a
	} else if 1.0 <= t {
		return b
	}
	return a.Add(ab.Mul(t))
}

// flattenQuadraticBezier returns the points after P0 that approximate the quadratic Bézier by lines.
func flattenQuadraticBezier(p0, p1, p2 Point, tolerance float64) []Point {
	ps := []Point{}
	return flattenQuadraticBezierRec(ps, p0, p1, p2, tolerance, 0)
}

func flattenQuadraticBezierRec(ps []Point, p0, p1, p2 Point, tolerance float64, depth int) []Point {
	if maxSubdivisions <= depth || !(tolerance < distanceToSegment(p1, p0, p2)) {
		return append(ps, p2)
	}
	q0 := p0.Interpolate(p1, 0.5)
	q1 := p1.Interpolate(p2, 0.5)
	q2 := q0.Interpolate(q1, 0.5)
	ps = flattenQuadraticBezierRec(ps, p0, q0, q2, tolerance, depth+1)
	return flattenQuadraticBezierRec(ps, q2, q1, p2, tolerance, depth+1)
}

// flattenCubicBezier returns the points after P0 that approximate the cubic Bézier by lines.
func flattenCubicBezier(p0, p1, p2, p3 Point, tolerance float64) []Point {
	ps := []Point{}
	return flattenCubicBezierRec(ps, p0, p1, p2, p3, tolerance, 0)
}

func flattenCubicBezierRec(ps []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	dist := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if maxSubdivisions <= depth || !(tolerance < dist) {
		return append(ps, p3)
	}

	// split at t=0.5 using De Casteljau
	q0 := p0.Interpolate(p1, 0.5)
	q1 := p1.Interpolate(p2, 0.5)
	q2 := p2.Interpolate(p3, 0.5)
	r0 := q0.Interpolate(q1, 0.5)
	r1 := q1.Interpolate(q2, 0.5)
	s := r0.Interpolate(r1, 0.5)
	ps = flattenCubicBezierRec(ps, p0, q0, r0, s, tolerance, depth+1)
	return flattenCubicBezierRec(ps, s, r1, q2, p3, tolerance, depth+1)
}

////////////////////////////////////////////////////////////////

// intersectsSegments returns true if the line segments AB and CD share at least one point.
func intersectsSegments(a, b, c, d Point) bool {
	ab, cd := b.Sub(a), d.Sub(c)
	denom := ab.PerpDot(cd)
	ac := c.Sub(a)
	if equal(denom, 0.0) {
		// parallel, intersect only when collinear and overlapping
		if !equal(ab.PerpDot(ac), 0.0) || !equal(cd.PerpDot(ac), 0.0) {
			return false
		}
		return onSegment(c, a, b) || onSegment(d, a, b) || onSegment(a, c, d) || onSegment(b, c, d)
	}
	t := ac.PerpDot(cd) / denom
	u := ac.PerpDot(ab) / denom
	return -Epsilon <= t && t <= 1.0+Epsilon && -Epsilon <= u && u <= 1.0+Epsilon
}

// onSegment returns true if the collinear point p lies within the extent of AB.
func onSegment(p, a, b Point) bool {
	return math.Min(a.X, b.X)-Epsilon <= p.X && p.X <= math.Max(a.X, b.X)+Epsilon &&
		math.Min(a.Y, b.Y)-Epsilon <= p.Y && p.Y <= math.Max(a.Y, b.Y)+Epsilon
}

// fillCount returns the number of times the test point is enclosed by the closed polygon of coordinates.
// Counter clockwise enclosures are counted positively and clockwise enclosures negatively.
func fillCount(coords []Point, x, y float64) int {
	if len(coords) < 2 {
		return 0
	}
	test := Point{x, y}
	count := 0
	prevCoord := coords[len(coords)-1]
	for _, coord := range coords {
		// see https://wrf.ecse.rpi.edu//Research/Short_Notes/pnpoly.html
		if (test.Y < coord.Y) != (test.Y < prevCoord.Y) &&
			test.X < (prevCoord.X-coord.X)*(test.Y-coord.Y)/(prevCoord.Y-coord.Y)+coord.X {
			if prevCoord.Y < coord.Y {
				count--
			} else {
				count++
			}
		}
		prevCoord = coord
	}
	return count
}
