package figure

import (
	"fmt"
	"image"

	"github.com/google/uuid"
)

// recorder is a Surface that records all calls.
type recorder struct {
	ops      []string
	owners   []uuid.UUID
	paths    []*Path
	depth    int
	maxDepth int
}

func (r *recorder) Draw(p *Path) {
	r.ops = append(r.ops, "draw "+p.String())
	r.paths = append(r.paths, p)
}

func (r *recorder) SetOutlineDrawn(outline bool) {
	r.ops = append(r.ops, fmt.Sprintf("outline %v", outline))
}

func (r *recorder) SetInteriorPainted(interior bool) {
	r.ops = append(r.ops, fmt.Sprintf("interior %v", interior))
}

func (r *recorder) DrawImage(img image.Image, rect Rect) {
	r.ops = append(r.ops, "image "+rect.String())
}

func (r *recorder) PushRenderingContext(owner uuid.UUID, p *Path, bounds Rect) {
	r.ops = append(r.ops, "push")
	r.owners = append(r.owners, owner)
	r.depth++
	if r.maxDepth < r.depth {
		r.maxDepth = r.depth
	}
}

func (r *recorder) PopRenderingContext() {
	r.ops = append(r.ops, "pop")
	r.depth--
}

// edge returns an edge through the given points, drawn with straight segments.
func edge(ps ...Point) *Edge {
	e := NewEdge(ps[0].X, ps[0].Y, ps[len(ps)-1].X, ps[len(ps)-1].Y)
	if !e.Points.Replace(ps) {
		panic("bad number of points")
	}
	return e
}

func geometry(method DrawingMethod, closed bool, ps ...Point) *EdgeGeometry {
	g := newEdgeGeometry(0.0, 0.0, 0.0, 0.0, 0)
	g.Points.Replace(ps)
	g.SetMethod(method)
	g.SetClosed(closed)
	return &g
}
