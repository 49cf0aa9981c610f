package figure

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod is returned when a drawing method name cannot be parsed.
var ErrUnknownMethod = errors.New("unknown drawing method")

// DrawingMethod selects how control points are turned into a path.
type DrawingMethod int

// Drawing methods.
const (
	Segments DrawingMethod = iota
	CubicSpline
	QuadraticSpline
)

func (m DrawingMethod) String() string {
	switch m {
	case Segments:
		return "segments"
	case CubicSpline:
		return "cubicSpline"
	case QuadraticSpline:
		return "quadraticSpline"
	}
	return fmt.Sprintf("DrawingMethod(%d)", int(m))
}

// ParseDrawingMethod parses the name as returned by DrawingMethod.String.
func ParseDrawingMethod(s string) (DrawingMethod, error) {
	switch s {
	case "segments":
		return Segments, nil
	case "cubicSpline":
		return CubicSpline, nil
	case "quadraticSpline":
		return QuadraticSpline, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// cmdsPerSegment is the number of path commands Build emits per control segment.
func (m DrawingMethod) cmdsPerSegment() int {
	if m == QuadraticSpline {
		return 2
	}
	return 1
}

// Build converts control points into a path using the drawing method. It also returns the tangent
// at the start and at the end of the path. For Segments the tangents are unit vectors, for splines
// they are the derivatives of the first and last Bézier. If closed is set, the path is closed with an
// explicit closing segment. Fewer than two points result in an empty path.
// Build panics for an unknown drawing method.
func Build(ps []Point, method DrawingMethod, closed bool) (*Path, Point, Point) {
	if method != Segments && method != CubicSpline && method != QuadraticSpline {
		panic("unknown drawing method " + method.String())
	}
	if len(ps) < 2 {
		return &Path{}, Point{}, Point{}
	}

	switch method {
	case CubicSpline:
		return buildCubicSpline(ps, closed)
	case QuadraticSpline:
		return buildQuadraticSpline(ps, closed)
	}
	return buildSegments(ps, closed)
}

func buildSegments(ps []Point, closed bool) (*Path, Point, Point) {
	p := &Path{}
	p.MoveTo(ps[0].X, ps[0].Y)
	for _, q := range ps[1:] {
		p.LineTo(q.X, q.Y)
	}

	start := ps[1].Sub(ps[0]).Norm(1.0)
	end := ps[len(ps)-1].Sub(ps[len(ps)-2]).Norm(1.0)
	if closed {
		p.Close()
		end = ps[0].Sub(ps[len(ps)-1]).Norm(1.0)
	}
	return p, start, end
}
