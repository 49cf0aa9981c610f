package figure

import (
	"sync"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathCache(t *testing.T) {
	cp := NewControlPoints(0, 0, 10, 0, 0)
	c := PathCache{}
	test.That(t, !c.Valid(cp, Segments, false))

	a := c.Get(cp, Segments, false)
	test.That(t, c.Valid(cp, Segments, false))
	test.T(t, a.Path.String(), "M0 0L10 0")
	test.That(t, c.Get(cp, Segments, false).Path == a.Path, "cached path is reused")

	// any change to the key rebuilds
	test.That(t, !c.Valid(cp, Segments, true))
	b := c.Get(cp, Segments, true)
	test.That(t, b.Path != a.Path)
	test.T(t, b.Path.String(), "M0 0L10 0z")

	test.That(t, !c.Valid(cp, CubicSpline, true))
	c.Get(cp, CubicSpline, true)

	cp.Set(1, 20, 0)
	test.That(t, !c.Valid(cp, CubicSpline, true))
	test.T(t, c.Get(cp, Segments, false).Path.String(), "M0 0L20 0")

	c.Invalidate()
	test.That(t, !c.Valid(cp, Segments, false))
	c.Get(cp, Segments, false)
	c.Drop()
	test.That(t, !c.Valid(cp, Segments, false))
	test.T(t, c.Get(cp, Segments, false).Path.String(), "M0 0L20 0")
}

func TestEdgeGeometryCache(t *testing.T) {
	g := geometry(Segments, false, Point{0, 0}, Point{10, 0}, Point{10, 10})
	p := g.Path().Path
	test.That(t, g.Path().Path == p)

	g.SetMethod(QuadraticSpline)
	test.That(t, g.Path().Path != p)
	test.T(t, g.Method(), QuadraticSpline)

	g.SetClosed(true)
	test.That(t, g.Path().Path.Closed())
	test.That(t, g.Closed())

	mustPanic(t, func() { g.SetMethod(DrawingMethod(-1)) })
}

func TestPathCacheConcurrent(t *testing.T) {
	cp := NewControlPoints(0, 0, 10, 0, 0)
	cp.Insert(1, 5, 5)
	c := PathCache{}
	want := c.Get(cp, CubicSpline, false).Path.String()

	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(closed bool) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Get(cp, CubicSpline, closed)
			}
		}(i%2 == 0)
	}
	wg.Wait()
	test.T(t, c.Get(cp, CubicSpline, false).Path.String(), want)
}
