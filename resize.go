package figure

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned when a resize direction name cannot be parsed.
var ErrUnknownDirection = errors.New("unknown resize direction")

// Direction is a compass direction in which a block can be resized.
type Direction int

// Resize directions in the order they are tested.
const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

var directionNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if N <= d && d <= NW {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses a compass direction such as "NE", case insensitive.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// point returns the corner or edge midpoint of the rectangle the direction points at.
func (d Direction) point(r Rect) Point {
	x0, y0 := r.X, r.Y
	xm, ym := r.X+r.W/2.0, r.Y+r.H/2.0
	x1, y1 := r.X+r.W, r.Y+r.H
	switch d {
	case N:
		return Point{xm, y0}
	case NE:
		return Point{x1, y0}
	case E:
		return Point{x1, ym}
	case SE:
		return Point{x1, y1}
	case S:
		return Point{xm, y1}
	case SW:
		return Point{x0, y1}
	case W:
		return Point{x0, ym}
	case NW:
		return Point{x0, y0}
	}
	panic("unknown resize direction " + d.String())
}

// Handle returns the size by size square centered on the corner or edge midpoint of r.
func (d Direction) Handle(r Rect, size float64) Rect {
	p := d.point(r)
	return Rect{p.X - size/2.0, p.Y - size/2.0, size, size}
}

// Apply moves the edges of r that the direction points at by (dx,dy). Screen coordinates are used, so
// north is at the smallest y. The width and height are not clamped and may become negative.
func (d Direction) Apply(r Rect, dx, dy float64) Rect {
	switch d {
	case N:
		r.Y += dy
		r.H -= dy
	case NE:
		r.Y += dy
		r.H -= dy
		r.W += dx
	case E:
		r.W += dx
	case SE:
		r.W += dx
		r.H += dy
	case S:
		r.H += dy
	case SW:
		r.X += dx
		r.W -= dx
		r.H += dy
	case W:
		r.X += dx
		r.W -= dx
	case NW:
		r.X += dx
		r.W -= dx
		r.Y += dy
		r.H -= dy
	default:
		panic("unknown resize direction " + d.String())
	}
	return r
}

// Directions is a set of resize directions. The empty set means not resizable.
type Directions uint8

// AllDirections contains all eight directions.
const AllDirections Directions = 0xFF

// DirectionsOf returns the set of the given directions.
func DirectionsOf(ds ...Direction) Directions {
	var s Directions
	for _, d := range ds {
		s |= 1 << uint(d)
	}
	return s
}

// Has returns true if the set contains d.
func (s Directions) Has(d Direction) bool {
	return N <= d && d <= NW && s&(1<<uint(d)) != 0
}

// Empty returns true if the set is empty.
func (s Directions) Empty() bool {
	return s == 0
}

// List returns the directions in the set in declared order.
func (s Directions) List() []Direction {
	ds := []Direction{}
	for d := N; d <= NW; d++ {
		if s.Has(d) {
			ds = append(ds, d)
		}
	}
	return ds
}

func (s Directions) String() string {
	names := []string{}
	for _, d := range s.List() {
		names = append(names, d.String())
	}
	return strings.Join(names, ",")
}

// ParseDirections parses a comma separated list of directions as returned by Directions.String.
func ParseDirections(str string) (Directions, error) {
	var s Directions
	for _, name := range strings.Split(str, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		d, err := ParseDirection(name)
		if err != nil {
			return 0, err
		}
		s |= DirectionsOf(d)
	}
	return s, nil
}

// FindDirection returns the first allowed direction whose handle contains p. Handles do not overlap
// when size is smaller than half of the smallest side of r.
func FindDirection(p Point, r Rect, size float64, allowed Directions) (Direction, bool) {
	for d := N; d <= NW; d++ {
		if allowed.Has(d) && d.Handle(r, size).Contains(p.X, p.Y) {
			return d, true
		}
	}
	return 0, false
}

// FindDirectionArea returns the first allowed direction whose handle overlaps the pointer area.
func FindDirectionArea(area Rect, r Rect, size float64, allowed Directions) (Direction, bool) {
	for d := N; d <= NW; d++ {
		if allowed.Has(d) && d.Handle(r, size).Overlaps(area) {
			return d, true
		}
	}
	return 0, false
}
