package figure

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestFlattenable(t *testing.T) {
	var tts = []struct {
		ps []Point
		i  int
		ok bool
	}{
		{[]Point{{0, 0}, {5, 0}, {10, 0}}, 1, true},
		{[]Point{{0, 0}, {5, 0.001}, {10, 0}}, 1, true},
		{[]Point{{0, 0}, {5, 1}, {10, 0}}, 1, false},
		{[]Point{{0, 0}, {5, 5}, {10, 0}}, 1, false},
		{[]Point{{0, 0}, {0, 0}, {10, 0}}, 1, true},
		{[]Point{{0, 0}, {10, 0}, {10, 0}}, 1, true},
		{[]Point{{0, 0}, {10, 0}, {5, 0}}, 1, true}, // reversal
		{[]Point{{0, 0}, {5, 0}, {10, 0}}, 0, false},
		{[]Point{{0, 0}, {5, 0}, {10, 0}}, 2, false},
		{[]Point{{0, 0}, {5, 0}, {10, 0}}, 7, false},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.ps, tt.i), func(t *testing.T) {
			cp := NewControlPoints(0, 0, 0, 0, 0)
			cp.Replace(tt.ps)
			test.T(t, cp.Flattenable(tt.i), tt.ok)
		})
	}
}

func TestFlatten(t *testing.T) {
	cp := NewControlPoints(0, 0, 0, 0, 0)
	cp.Replace([]Point{{0, 0}, {5, 5}, {10, 10}, {10, 0}})
	test.That(t, !cp.Flatten(2))
	test.That(t, cp.Flatten(1))
	test.T(t, cp.Points(), []Point{{0, 0}, {10, 10}, {10, 0}})
}

func TestFlattenAll(t *testing.T) {
	var tts = []struct {
		ps      []Point
		removed int
		result  []Point
	}{
		{[]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 3}}, 2, []Point{{0, 0}, {3, 0}, {3, 3}}},
		{[]Point{{0, 0}, {5, 5}, {10, 0}}, 0, []Point{{0, 0}, {5, 5}, {10, 0}}},
		{[]Point{{1, 1}, {1, 1}, {1, 1}}, 1, []Point{{1, 1}, {1, 1}}},
		{[]Point{{0, 0}, {0, 0}}, 0, []Point{{0, 0}, {0, 0}}},
		{[]Point{{0, 0}, {2, 0}, {2, 0}, {4, 0}, {4, 4}, {4, 8}, {0, 8}}, 3, []Point{{0, 0}, {4, 0}, {4, 8}, {0, 8}}},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.ps), func(t *testing.T) {
			cp := NewControlPoints(0, 0, 0, 0, 0)
			cp.Replace(tt.ps)
			test.T(t, cp.FlattenAll(), tt.removed)
			test.T(t, cp.Points(), tt.result)

			// converged
			test.T(t, cp.FlattenAll(), 0)
			for i := 0; i < cp.Len(); i++ {
				test.That(t, !cp.Flattenable(i), i)
			}
		})
	}
}

func TestFlattenPrecision(t *testing.T) {
	defer func(prec float64) { CollinearPrecision = prec }(CollinearPrecision)

	cp := NewControlPoints(0, 0, 0, 0, 0)
	cp.Replace([]Point{{0, 0}, {5, 1}, {10, 0}})
	test.That(t, !cp.Flattenable(1))

	CollinearPrecision = 0.1
	test.That(t, cp.Flattenable(1))
}
