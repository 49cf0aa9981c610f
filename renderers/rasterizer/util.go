package rasterizer

import (
	"github.com/tdewolff/figure"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

type fixedPoint = fixed.Point26_6

func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64.0)
}

func toFixedPoint(p figure.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

func fromFixed(p fixed.Point26_6) (float32, float32) {
	return float32(p.X) / 64.0, float32(p.Y) / 64.0
}

// vectorAdder adds path commands to a vector.Rasterizer.
type vectorAdder struct {
	ras *vector.Rasterizer
}

func (a vectorAdder) Start(p fixed.Point26_6) {
	a.ras.MoveTo(fromFixed(p))
}

func (a vectorAdder) Line(p fixed.Point26_6) {
	a.ras.LineTo(fromFixed(p))
}

func (a vectorAdder) QuadBezier(b, c fixed.Point26_6) {
	bx, by := fromFixed(b)
	cx, cy := fromFixed(c)
	a.ras.QuadTo(bx, by, cx, cy)
}

func (a vectorAdder) CubeBezier(b, c, d fixed.Point26_6) {
	bx, by := fromFixed(b)
	cx, cy := fromFixed(c)
	dx, dy := fromFixed(d)
	a.ras.CubeTo(bx, by, cx, cy, dx, dy)
}

func (a vectorAdder) Stop(closed bool) {
	a.ras.ClosePath()
}
