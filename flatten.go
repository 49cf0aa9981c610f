package figure

import "math"

// Flattenable returns true if the interior control point at index i does not contribute to the shape,
// ie. it coincides with a neighbour or is collinear with both neighbours within CollinearPrecision.
// The first and last points are never flattenable.
func (cp *ControlPoints) Flattenable(i int) bool {
	if i <= 0 || len(cp.ps)-1 <= i {
		return false
	}
	v1 := cp.ps[i-1].Sub(cp.ps[i])
	v2 := cp.ps[i+1].Sub(cp.ps[i])
	l1 := v1.Dot(v1)
	l2 := v2.Dot(v2)
	if l1 == 0.0 || l2 == 0.0 {
		return true
	}
	return math.Abs(1.0-math.Abs(v1.Dot(v2))/math.Sqrt(l1*l2)) <= CollinearPrecision
}

// Flatten removes the control point at index i when it is flattenable and returns whether it was
// removed.
func (cp *ControlPoints) Flatten(i int) bool {
	if !cp.Flattenable(i) {
		return false
	}
	return cp.Remove(i)
}

// FlattenAll removes flattenable control points until none remain and returns the number of
// removed points.
func (cp *ControlPoints) FlattenAll() int {
	n := 0
	for i := 1; i < len(cp.ps)-1; {
		if cp.Flatten(i) {
			n++
			if 1 < i {
				i-- // the previous point has a new neighbour
			}
			continue
		}
		i++
	}
	return n
}
