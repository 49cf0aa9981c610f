package figure

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrDegenerate is returned when decoded control points are too few to form a line figure.
var ErrDegenerate = errors.New("degenerate control points")

// Property keys.
const (
	KeyPoints           = "points"
	KeyDrawingMethod    = "drawingMethod"
	KeyClosed           = "closed"
	KeyBounds           = "bounds"
	KeyResizeDirections = "resizeDirections"
	KeyLocked           = "locked"
)

var coordRegexp = regexp.MustCompile(`\(([0-9+-.eE]+)\|([0-9+-.eE]+)\)`)

// FormatCoords encodes points as (x|y)(x|y)... using the shortest representation that parses back
// to the same number.
func FormatCoords(ps []Point) string {
	sb := strings.Builder{}
	for _, p := range ps {
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		sb.WriteByte('|')
		sb.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		sb.WriteByte(')')
	}
	return sb.String()
}

// ParseCoords decodes points as encoded by FormatCoords. Fragments that do not form a valid number
// pair are skipped, it returns the number of skipped fragments.
func ParseCoords(s string) ([]Point, int) {
	ps := []Point{}
	skipped := 0
	for _, m := range coordRegexp.FindAllStringSubmatch(s, -1) {
		x, okX := parseNumber(m[1])
		y, okY := parseNumber(m[2])
		if !okX || !okY {
			Logger.Warn("properties: skipping malformed coordinate", "fragment", m[0])
			skipped++
			continue
		}
		ps = append(ps, Point{x, y})
	}
	return ps, skipped
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// EdgeProperties are the persisted properties of a line figure.
type EdgeProperties struct {
	Points []Point
	Method DrawingMethod
	Closed bool
	Locked bool
}

// Marshal encodes the properties into a flat map.
func (p EdgeProperties) Marshal() map[string]string {
	return map[string]string{
		KeyPoints:        FormatCoords(p.Points),
		KeyDrawingMethod: p.Method.String(),
		KeyClosed:        strconv.FormatBool(p.Closed),
		KeyLocked:        strconv.FormatBool(p.Locked),
	}
}

// UnmarshalEdgeProperties decodes properties from a flat map. Missing keys keep their zero value.
// Malformed coordinates are skipped, and when fewer than two points remain the partially decoded
// properties are returned together with an error wrapping ErrDegenerate.
func UnmarshalEdgeProperties(m map[string]string) (EdgeProperties, error) {
	p := EdgeProperties{}
	if s, ok := m[KeyDrawingMethod]; ok {
		method, err := ParseDrawingMethod(s)
		if err != nil {
			return p, fmt.Errorf("%s: %w", KeyDrawingMethod, err)
		}
		p.Method = method
	}
	var err error
	if p.Closed, err = parseBool(m, KeyClosed); err != nil {
		return p, err
	}
	if p.Locked, err = parseBool(m, KeyLocked); err != nil {
		return p, err
	}

	var skipped int
	p.Points, skipped = ParseCoords(m[KeyPoints])
	if len(p.Points) < MinPoints {
		return p, fmt.Errorf("%s: %d points, %d skipped: %w", KeyPoints, len(p.Points), skipped, ErrDegenerate)
	}
	return p, nil
}

func parseBool(m map[string]string, key string) (bool, error) {
	s, ok := m[key]
	if !ok {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

// BlockProperties are the persisted properties of a block.
type BlockProperties struct {
	Bounds     Rect
	Directions Directions
	Locked     bool
}

// Marshal encodes the properties into a flat map. The bounds are encoded as their minimum and
// maximum corner.
func (p BlockProperties) Marshal() map[string]string {
	return map[string]string{
		KeyBounds:           FormatCoords([]Point{p.Bounds.Min(), p.Bounds.Max()}),
		KeyResizeDirections: p.Directions.String(),
		KeyLocked:           strconv.FormatBool(p.Locked),
	}
}

// UnmarshalBlockProperties decodes properties from a flat map. Missing resize directions mean the
// block is resizable in all directions.
func UnmarshalBlockProperties(m map[string]string) (BlockProperties, error) {
	p := BlockProperties{Directions: AllDirections}
	ps, _ := ParseCoords(m[KeyBounds])
	if len(ps) != 2 {
		return p, fmt.Errorf("%s: expected two corners, got %d: %w", KeyBounds, len(ps), ErrDegenerate)
	}
	p.Bounds = RectFromPoints(ps...)

	if s, ok := m[KeyResizeDirections]; ok {
		dirs, err := ParseDirections(s)
		if err != nil {
			return p, fmt.Errorf("%s: %w", KeyResizeDirections, err)
		}
		p.Directions = dirs
	}
	var err error
	if p.Locked, err = parseBool(m, KeyLocked); err != nil {
		return p, err
	}
	return p, nil
}

// Properties returns the persisted properties of the figure.
func (l *line) Properties() EdgeProperties {
	return EdgeProperties{
		Points: l.Points.Points(),
		Method: l.method,
		Closed: l.closed,
		Locked: l.locked,
	}
}

// SetProperties replaces the geometry of the figure. The control points are left unchanged when
// there are too few or too many of them, in which case an error is returned.
func (l *line) SetProperties(p EdgeProperties) error {
	l.SetMethod(p.Method)
	l.SetClosed(p.Closed)
	l.locked = p.Locked
	if !l.Points.Replace(p.Points) {
		return fmt.Errorf("%s: %d points: %w", KeyPoints, len(p.Points), ErrDegenerate)
	}
	l.SyncAll(l.model)
	return nil
}

// Properties returns the persisted properties of the block.
func (b *Block) Properties() BlockProperties {
	return BlockProperties{
		Bounds:     b.Rect,
		Directions: b.Directions,
		Locked:     b.locked,
	}
}

// SetProperties replaces the geometry of the block.
func (b *Block) SetProperties(p BlockProperties) {
	b.Directions = p.Directions
	b.locked = p.Locked
	b.SetBounds(p.Bounds)
}
