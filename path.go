package figure

import (
	"math"
	"strconv"
	"strings"
)

// PathCmd is a path drawing command.
type PathCmd int

// Path drawing commands.
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	QuadToCmd
	CubeToCmd
	CloseCmd
)

// cmdLen returns the number of coordinates a command carries.
func cmdLen(cmd PathCmd) int {
	switch cmd {
	case MoveToCmd, LineToCmd:
		return 2
	case QuadToCmd:
		return 4
	case CubeToCmd:
		return 6
	}
	return 0
}

// Path is a sequence of drawing commands with their coordinates. A path built from control points
// has a single subpath that starts with a MoveTo and optionally ends with a Close.
type Path struct {
	cmds []PathCmd
	d    []float64
	x0   float64
	y0   float64
}

// Empty returns true if the path has no drawing commands besides MoveTo.
func (p *Path) Empty() bool {
	for _, cmd := range p.cmds {
		if cmd != MoveToCmd {
			return false
		}
	}
	return true
}

// Closed returns true if the path ends with a Close command.
func (p *Path) Closed() bool {
	return 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == CloseCmd
}

// Len returns the number of commands.
func (p *Path) Len() int {
	return len(p.cmds)
}

// Copy returns a deep copy of the path.
func (p *Path) Copy() *Path {
	q := &Path{x0: p.x0, y0: p.y0}
	q.cmds = append([]PathCmd{}, p.cmds...)
	q.d = append([]float64{}, p.d...)
	return q
}

// Equals returns true if P and Q have the same commands and coordinates within tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if len(p.cmds) != len(q.cmds) || len(p.d) != len(q.d) {
		return false
	}
	for i := range p.cmds {
		if p.cmds[i] != q.cmds[i] {
			return false
		}
	}
	for i := range p.d {
		if !equal(p.d[i], q.d[i]) {
			return false
		}
	}
	return true
}

// StartPos returns the start point of the path.
func (p *Path) StartPos() Point {
	return Point{p.x0, p.y0}
}

// Pos returns the current position of the path.
func (p *Path) Pos() Point {
	if 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == CloseCmd {
		return Point{p.x0, p.y0}
	}
	if 1 < len(p.d) {
		return Point{p.d[len(p.d)-2], p.d[len(p.d)-1]}
	}
	return Point{}
}

// Translate translates the path by (x,y) in-place.
func (p *Path) Translate(x, y float64) *Path {
	for i := 0; i < len(p.d); i += 2 {
		p.d[i+0] += x
		p.d[i+1] += y
	}
	p.x0 += x
	p.y0 += y
	return p
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
	p.x0, p.y0 = x, y
	return p
}

// LineTo adds a linear segment to (x,y).
func (p *Path) LineTo(x, y float64) *Path {
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
	return p
}

// QuadTo adds a quadratic Bézier to (x,y) with control point (cpx,cpy).
func (p *Path) QuadTo(cpx, cpy, x, y float64) *Path {
	p.cmds = append(p.cmds, QuadToCmd)
	p.d = append(p.d, cpx, cpy, x, y)
	return p
}

// CubeTo adds a cubic Bézier to (x,y) with control points (cpx1,cpy1) and (cpx2,cpy2).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) *Path {
	p.cmds = append(p.cmds, CubeToCmd)
	p.d = append(p.d, cpx1, cpy1, cpx2, cpy2, x, y)
	return p
}

// Close closes the subpath with a straight line back to its start.
func (p *Path) Close() *Path {
	p.cmds = append(p.cmds, CloseCmd)
	return p
}

////////////////////////////////////////////////////////////////

// Segment is a single drawing command of a path together with its start position. Close segments
// are reported as linear segments back to the subpath start.
type Segment struct {
	Cmd   PathCmd
	Start Point
	CP1   Point
	CP2   Point
	End   Point
}

// Segments returns all drawing commands except MoveTo as segments. The returned slice is indexed by
// drawing command, ie. the first segment follows the initial MoveTo.
func (p *Path) Segments() []Segment {
	segs := []Segment{}
	start, pos := Point{}, Point{}
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			pos = Point{p.d[i], p.d[i+1]}
			start = pos
		case LineToCmd:
			end := Point{p.d[i], p.d[i+1]}
			segs = append(segs, Segment{Cmd: LineToCmd, Start: pos, End: end})
			pos = end
		case QuadToCmd:
			cp := Point{p.d[i], p.d[i+1]}
			end := Point{p.d[i+2], p.d[i+3]}
			segs = append(segs, Segment{Cmd: QuadToCmd, Start: pos, CP1: cp, End: end})
			pos = end
		case CubeToCmd:
			cp1 := Point{p.d[i], p.d[i+1]}
			cp2 := Point{p.d[i+2], p.d[i+3]}
			end := Point{p.d[i+4], p.d[i+5]}
			segs = append(segs, Segment{Cmd: CubeToCmd, Start: pos, CP1: cp1, CP2: cp2, End: end})
			pos = end
		case CloseCmd:
			segs = append(segs, Segment{Cmd: CloseCmd, Start: pos, End: start})
			pos = start
		}
		i += cmdLen(cmd)
	}
	return segs
}

// Coords returns the start and end points of all drawing commands, ie. the on-curve points.
func (p *Path) Coords() []Point {
	coords := []Point{}
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case CloseCmd:
			coords = append(coords, Point{p.x0, p.y0})
		default:
			n := cmdLen(cmd)
			coords = append(coords, Point{p.d[i+n-2], p.d[i+n-1]})
		}
		i += cmdLen(cmd)
	}
	return coords
}

// Bounds returns the bounding box of all coordinates including Bézier control points. Since a
// Bézier lies within the convex hull of its control points this is a (possibly loose) bound of the path.
func (p *Path) Bounds() Rect {
	if len(p.d) < 2 {
		return Rect{}
	}
	x0, y0, x1, y1 := p.d[0], p.d[1], p.d[0], p.d[1]
	for i := 2; i < len(p.d); i += 2 {
		x0 = math.Min(x0, p.d[i])
		y0 = math.Min(y0, p.d[i+1])
		x1 = math.Max(x1, p.d[i])
		y1 = math.Max(y1, p.d[i+1])
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Length returns the length of the path. Linear segments are exact, Béziers are approximated by
// flattening with the given tolerance.
func (p *Path) Length() float64 {
	length := 0.0
	for _, seg := range p.Flatten(Tolerance).Segments() {
		length += seg.Start.Distance(seg.End)
	}
	return length
}

// Flatten returns a copy of the path with all Béziers replaced by linear segments that deviate at
// most tolerance from the curve.
func (p *Path) Flatten(tolerance float64) *Path {
	q := &Path{}
	for _, f := range p.flatten(tolerance) {
		if f.cmd == -1 {
			q.MoveTo(f.p.X, f.p.Y)
		} else if f.close {
			q.Close()
		} else {
			q.LineTo(f.p.X, f.p.Y)
		}
	}
	return q
}

type flatPoint struct {
	p     Point
	cmd   int // index into Segments, -1 for MoveTo
	close bool
}

// flatten returns the flattened on-curve points of the path, each annotated with the index of the
// segment it was produced by.
func (p *Path) flatten(tolerance float64) []flatPoint {
	fs := []flatPoint{}
	seg := 0
	i := 0
	pos := Point{}
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			pos = Point{p.d[i], p.d[i+1]}
			fs = append(fs, flatPoint{pos, -1, false})
		case LineToCmd:
			pos = Point{p.d[i], p.d[i+1]}
			fs = append(fs, flatPoint{pos, seg, false})
		case QuadToCmd:
			cp, end := Point{p.d[i], p.d[i+1]}, Point{p.d[i+2], p.d[i+3]}
			for _, q := range flattenQuadraticBezier(pos, cp, end, tolerance) {
				fs = append(fs, flatPoint{q, seg, false})
			}
			pos = end
		case CubeToCmd:
			cp1, cp2, end := Point{p.d[i], p.d[i+1]}, Point{p.d[i+2], p.d[i+3]}, Point{p.d[i+4], p.d[i+5]}
			for _, q := range flattenCubicBezier(pos, cp1, cp2, end, tolerance) {
				fs = append(fs, flatPoint{q, seg, false})
			}
			pos = end
		case CloseCmd:
			pos = Point{p.x0, p.y0}
			fs = append(fs, flatPoint{pos, seg, true})
		}
		if cmd != MoveToCmd {
			seg++
		}
		i += cmdLen(cmd)
	}
	return fs
}

////////////////////////////////////////////////////////////////

func ftos(f float64) string {
	return strconv.FormatFloat(f, 'g', 5, 64)
}

// String returns the path as SVG path data.
func (p *Path) String() string {
	sb := strings.Builder{}
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			sb.WriteString("M" + ftos(p.d[i]) + " " + ftos(p.d[i+1]))
		case LineToCmd:
			sb.WriteString("L" + ftos(p.d[i]) + " " + ftos(p.d[i+1]))
		case QuadToCmd:
			sb.WriteString("Q" + ftos(p.d[i]) + " " + ftos(p.d[i+1]) + " " + ftos(p.d[i+2]) + " " + ftos(p.d[i+3]))
		case CubeToCmd:
			sb.WriteString("C" + ftos(p.d[i]) + " " + ftos(p.d[i+1]) + " " + ftos(p.d[i+2]) + " " + ftos(p.d[i+3]) + " " + ftos(p.d[i+4]) + " " + ftos(p.d[i+5]))
		case CloseCmd:
			sb.WriteString("z")
		}
		i += cmdLen(cmd)
	}
	return sb.String()
}
