package figure

import "sync"

// shadowPart is the detached state of one figure in a shadow.
type shadowPart struct {
	fig Shadowable

	// line figures
	origin       []Point
	points       []Point
	method       DrawingMethod
	closed       bool
	translateAll bool
	moved        int // index of the single dragged point, or -1

	// blocks
	isRect bool
	rect0  Rect
	rect   Rect
	dirs   Directions
}

// Shadow is a live preview of a gesture on one or more figures. It holds copies of their geometry
// that are changed during the gesture, the figures themselves are only changed by Commit.
type Shadow struct {
	mu       sync.Mutex
	parts    []*shadowPart
	released bool
}

// NewShadow captures the geometry of the primary figure and the others. Locked figures are skipped,
// it returns nil when the primary figure is locked. A figure's previous live shadow is released.
func NewShadow(primary Shadowable, others ...Shadowable) *Shadow {
	if primary.Locked() {
		return nil
	}
	s := &Shadow{}
	for _, fig := range append([]Shadowable{primary}, others...) {
		if fig.Locked() {
			continue
		}
		dup := false
		for _, part := range s.parts {
			if part.fig == fig {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		part := fig.capture()
		part.fig = fig
		s.parts = append(s.parts, part)
	}
	for _, part := range s.parts {
		if prev := part.fig.preview().attach(s); prev != nil {
			Logger.Debug("shadow: replacing live preview", "figure", part.fig.ID())
			prev.Release()
		}
	}
	return s
}

func (s *Shadow) primary() *shadowPart {
	return s.parts[0]
}

// Len returns the number of captured figures.
func (s *Shadow) Len() int {
	return len(s.parts)
}

// Primary returns the figure the gesture acts upon.
func (s *Shadow) Primary() Shadowable {
	return s.primary().fig
}

// Released returns true after the shadow has been released.
func (s *Shadow) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

// MoveControlPoint moves control point i of the primary figure to its captured position plus (dx,dy).
// It returns false if the primary figure is not a line figure. It panics if i is out of range.
func (s *Shadow) MoveControlPoint(i int, dx, dy float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	part := s.primary()
	if part.isRect {
		return false
	}
	if i < 0 || len(part.points) <= i {
		panic("control point index out of range")
	}
	part.points[i] = part.origin[i].Add(Point{dx, dy})
	part.moved = i
	return true
}

// MoveTo moves all figures to their captured position plus (dx,dy). The end points of edges are not
// moved.
func (s *Shadow) MoveTo(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := Point{dx, dy}
	for _, part := range s.parts {
		if part.isRect {
			part.rect = part.rect0.Move(d)
			continue
		}
		i0, i1 := 1, len(part.points)-1
		if part.translateAll {
			i0, i1 = 0, len(part.points)
		}
		for i := i0; i < i1; i++ {
			part.points[i] = part.origin[i].Add(d)
		}
		part.moved = -1
	}
}

// Resize changes the running rectangles of all blocks that may be resized in direction d, see
// Direction.Apply. Unlike MoveTo the changes accumulate. It returns false if no block was resized.
func (s *Shadow) Resize(dx, dy float64, d Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	resized := false
	for _, part := range s.parts {
		if part.isRect && part.dirs.Has(d) {
			part.rect = d.Apply(part.rect, dx, dy)
			resized = true
		}
	}
	return resized
}

// Points returns the previewed control points of the primary figure, or nil for a block.
func (s *Shadow) Points() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	part := s.primary()
	if part.isRect {
		return nil
	}
	return append([]Point{}, part.points...)
}

// Rect returns the previewed rectangle of the primary figure. For a line figure it returns the
// bounds of the previewed path.
func (s *Shadow) Rect() Rect {
	s.mu.Lock()
	defer s.mu.Unlock()

	part := s.primary()
	if part.isRect {
		return part.rect
	}
	p, _, _ := Build(part.points, part.method, part.closed)
	return p.Bounds()
}

// Paint draws the previews the same way their figures are drawn.
func (s *Shadow) Paint(surface Surface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}

	for _, part := range s.parts {
		if part.isRect {
			paintBlock(surface, part.fig.(*Block), part.rect)
			continue
		}
		p, _, _ := Build(part.points, part.method, part.closed)
		draw(surface, part.fig.ID(), p, p.Bounds(), drawStyle{outline: true, interior: part.closed})
	}
}

// Commit writes the previews back to their figures and releases the shadow. A single dragged control
// point is flattened when it became redundant, and edges are resynchronized with their anchors. It
// returns false if the shadow was already released.
func (s *Shadow) Commit() bool {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return false
	}
	parts := s.parts
	s.mu.Unlock()

	for _, part := range parts {
		part.fig.commit(part)
	}
	s.Release()
	return true
}

// Release detaches the shadow from its figures. It is safe to call more than once.
func (s *Shadow) Release() {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return
	}
	s.released = true
	s.mu.Unlock()

	for _, part := range s.parts {
		part.fig.preview().detach(s)
	}
}
