package figure

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestFormatCoords(t *testing.T) {
	test.String(t, FormatCoords([]Point{{1, 2}, {-0.5, 1e21}}), "(1|2)(-0.5|1e+21)")
	test.String(t, FormatCoords(nil), "")
}

func TestParseCoords(t *testing.T) {
	var tts = []struct {
		s       string
		ps      []Point
		skipped int
	}{
		{"(1|2)(3|4)", []Point{{1, 2}, {3, 4}}, 0},
		{"(1|2)(a|3)(1.2.3|4)(5|6)", []Point{{1, 2}, {5, 6}}, 1},
		{"(-1.5|+2e3)", []Point{{-1.5, 2000}}, 0},
		{"( 1|2)", []Point{}, 0},
		{"(1|-)", []Point{}, 1},
		{"(1,5|2)(3|4)", []Point{{3, 4}}, 1},
		{"(1e400|2)", []Point{}, 1},
		{"", []Point{}, 0},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			ps, skipped := ParseCoords(tt.s)
			test.T(t, ps, tt.ps)
			test.T(t, skipped, tt.skipped)
		})
	}
}

func TestCoordsRoundTrip(t *testing.T) {
	ps := []Point{
		{0, math.Copysign(0, -1)},
		{1.0 / 4.0, -123456.789},
		{1e21, 1e-7},
		{-3, 42.125},
		{0.1 + 0.2, 123.45678901234567},
		{1.0 / 3.0, -2.0 / 3.0},
		{5e-324, -math.SmallestNonzeroFloat64},
		{math.MaxFloat64, -math.MaxFloat64},
		{2.2250738585072014e-308, 1e23},
	}
	qs, skipped := ParseCoords(FormatCoords(ps))
	test.T(t, skipped, 0)
	test.T(t, len(qs), len(ps))
	for i := range ps {
		test.T(t, math.Float64bits(qs[i].X), math.Float64bits(ps[i].X), ps[i])
		test.T(t, math.Float64bits(qs[i].Y), math.Float64bits(ps[i].Y), ps[i])
	}
}

func TestEdgeProperties(t *testing.T) {
	p := EdgeProperties{
		Points: []Point{{0, 0}, {5, 5}, {10, 0}},
		Method: QuadraticSpline,
		Closed: true,
	}
	m := p.Marshal()
	test.String(t, m[KeyPoints], "(0|0)(5|5)(10|0)")
	test.String(t, m[KeyDrawingMethod], "quadraticSpline")
	test.String(t, m[KeyClosed], "true")
	test.String(t, m[KeyLocked], "false")

	q, err := UnmarshalEdgeProperties(m)
	test.Error(t, err)
	test.T(t, q, p)
}

func TestUnmarshalEdgeProperties(t *testing.T) {
	p, err := UnmarshalEdgeProperties(map[string]string{KeyPoints: "(1|2)(x|3)"})
	test.That(t, errors.Is(err, ErrDegenerate))
	test.T(t, p.Points, []Point{{1, 2}})

	p, err = UnmarshalEdgeProperties(map[string]string{KeyPoints: "(1|2)(3|4)"})
	test.Error(t, err)
	test.T(t, p.Method, Segments)
	test.That(t, !p.Closed && !p.Locked)

	_, err = UnmarshalEdgeProperties(map[string]string{KeyPoints: "(1|2)(3|4)", KeyDrawingMethod: "arc"})
	test.That(t, errors.Is(err, ErrUnknownMethod))

	_, err = UnmarshalEdgeProperties(map[string]string{KeyPoints: "(1|2)(3|4)", KeyClosed: "maybe"})
	test.That(t, err != nil)
}

func TestBlockProperties(t *testing.T) {
	p := BlockProperties{
		Bounds:     Rect{10, 20, 30, 40},
		Directions: DirectionsOf(E, S, SE),
		Locked:     true,
	}
	m := p.Marshal()
	test.String(t, m[KeyBounds], "(10|20)(40|60)")
	test.String(t, m[KeyResizeDirections], "E,SE,S")

	q, err := UnmarshalBlockProperties(m)
	test.Error(t, err)
	test.T(t, q, p)

	q, err = UnmarshalBlockProperties(map[string]string{KeyBounds: "(40|60)(10|20)"})
	test.Error(t, err)
	test.T(t, q.Bounds, Rect{10, 20, 30, 40})
	test.T(t, q.Directions, AllDirections)

	_, err = UnmarshalBlockProperties(map[string]string{KeyBounds: "(40|60)"})
	test.That(t, errors.Is(err, ErrDegenerate))
	_, err = UnmarshalBlockProperties(map[string]string{KeyBounds: "(0|0)(1|1)", KeyResizeDirections: "X"})
	test.That(t, errors.Is(err, ErrUnknownDirection))
}

func TestFigureProperties(t *testing.T) {
	e := edge(Point{0, 0}, Point{5, 5}, Point{10, 0})
	e.SetMethod(CubicSpline)
	p := e.Properties()

	f := NewEdge(0, 0, 1, 1)
	test.Error(t, f.SetProperties(p))
	test.T(t, f.Properties(), p)
	test.T(t, f.Path().Path.String(), e.Path().Path.String())

	err := f.SetProperties(EdgeProperties{Points: []Point{{1, 1}}})
	test.That(t, errors.Is(err, ErrDegenerate))
	test.T(t, f.Points.Len(), 3)

	b := NewBlock(Rect{})
	b.SetProperties(BlockProperties{Bounds: Rect{1, 2, 3, 4}, Directions: DirectionsOf(N), Locked: true})
	test.T(t, b.Properties(), BlockProperties{Bounds: Rect{1, 2, 3, 4}, Directions: DirectionsOf(N), Locked: true})
	test.That(t, b.Locked())
}
