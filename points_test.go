package figure

import (
	"testing"

	"github.com/tdewolff/test"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			test.Fail(t, "expected panic")
		}
	}()
	f()
}

func TestControlPoints(t *testing.T) {
	cp := NewControlPoints(0, 0, 10, 0, 4)
	test.T(t, cp.Len(), 2)
	test.T(t, cp.Max(), 4)
	test.T(t, cp.First(), Point{0, 0})
	test.T(t, cp.Last(), Point{10, 0})

	v := cp.Version()
	test.That(t, cp.Insert(1, 5, 5))
	test.That(t, v < cp.Version())
	test.T(t, cp.Points(), []Point{{0, 0}, {5, 5}, {10, 0}})

	// clamped index
	test.That(t, cp.Insert(99, 20, 0))
	test.T(t, cp.Points(), []Point{{0, 0}, {5, 5}, {10, 0}, {20, 0}})

	v = cp.Version()
	test.That(t, !cp.Insert(0, -1, -1), "maximum reached")
	test.T(t, cp.Version(), v)
	test.T(t, cp.Len(), 4)

	cp.Set(3, 15, 0)
	test.T(t, cp.Get(3), Point{15, 0})

	test.That(t, cp.Remove(1))
	test.That(t, cp.Remove(1))
	test.T(t, cp.Points(), []Point{{0, 0}, {15, 0}})

	v = cp.Version()
	test.That(t, !cp.Remove(0), "minimum reached")
	test.T(t, cp.Version(), v)
}

func TestControlPointsPointsCopy(t *testing.T) {
	cp := NewControlPoints(0, 0, 1, 1, 0)
	ps := cp.Points()
	ps[0] = Point{7, 7}
	test.T(t, cp.First(), Point{0, 0})
	test.T(t, cp.Max() > 1000, true)
}

func TestControlPointsTranslate(t *testing.T) {
	cp := NewControlPoints(0, 0, 10, 0, 0)
	cp.Insert(1, 5, 5)
	cp.TranslateInterior(1, 2)
	test.T(t, cp.Points(), []Point{{0, 0}, {6, 7}, {10, 0}})
	cp.TranslateAll(-1, -1)
	test.T(t, cp.Points(), []Point{{-1, -1}, {5, 6}, {9, -1}})
}

func TestControlPointsReplace(t *testing.T) {
	cp := NewControlPoints(0, 0, 10, 0, 3)
	test.That(t, !cp.Replace([]Point{{1, 1}}))
	test.That(t, !cp.Replace([]Point{{1, 1}, {2, 2}, {3, 3}, {4, 4}}))
	test.T(t, cp.Points(), []Point{{0, 0}, {10, 0}})

	ps := []Point{{1, 1}, {2, 2}, {3, 3}}
	test.That(t, cp.Replace(ps))
	ps[0] = Point{}
	test.T(t, cp.First(), Point{1, 1})
}

func TestControlPointsPanics(t *testing.T) {
	cp := NewControlPoints(0, 0, 10, 0, 0)
	cp.Insert(1, 5, 5)
	mustPanic(t, func() { cp.Get(3) })
	mustPanic(t, func() { cp.Get(-1) })
	mustPanic(t, func() { cp.Set(3, 0, 0) })
	mustPanic(t, func() { cp.Remove(5) })
}
