package figure

import (
	"image"
	"math"
)

// BlockGeometry is the shape of a node figure: a rectangle and the directions it may be resized in.
type BlockGeometry struct {
	Rect       Rect
	Directions Directions
}

// Block is a rectangular node figure, optionally showing an image.
type Block struct {
	base
	BlockGeometry
	Image image.Image

	graph *Graph
	node  NodeID
}

// NewBlock returns a block with the given bounds that can be resized in all directions.
func NewBlock(r Rect) *Block {
	return &Block{
		base: newBase(),
		BlockGeometry: BlockGeometry{
			Rect:       r,
			Directions: AllDirections,
		},
	}
}

func (b *Block) bind(g *Graph, id NodeID) {
	b.graph = g
	b.node = id
}

// Node returns the node of the block in its graph.
func (b *Block) Node() (NodeID, bool) {
	return b.node, b.graph != nil
}

// Model returns the graph the block is a node of, or nil.
func (b *Block) Model() Model {
	if b.graph == nil {
		return nil
	}
	return b.graph
}

// Bounds returns the rectangle of the block.
func (b *Block) Bounds() Rect {
	return b.Rect
}

// SetBounds sets the rectangle of the block and resynchronizes the connected edges.
func (b *Block) SetBounds(r Rect) {
	b.Rect = r
	if b.graph != nil {
		b.graph.NodeChanged(b.node)
	}
}

// Move translates the block.
func (b *Block) Move(dx, dy float64) bool {
	if b.locked {
		return false
	}
	b.SetBounds(b.Rect.Move(Point{dx, dy}))
	return true
}

// ResizeDirections returns the directions the block may be resized in.
func (b *Block) ResizeDirections() Directions {
	return b.Directions
}

// FindDirection returns the resize direction of the handle under p.
func (b *Block) FindDirection(p Point, handleSize float64) (Direction, bool) {
	return FindDirection(p, b.Rect, handleSize, b.Directions)
}

// Resize moves the edges of the block that d points at by (dx,dy). It returns false when the block
// is locked or d is not permitted.
func (b *Block) Resize(dx, dy float64, d Direction) bool {
	if b.locked || !b.Directions.Has(d) {
		return false
	}
	b.SetBounds(d.Apply(b.Rect, dx, dy))
	return true
}

// AnchorPoint returns the position of an anchor location on the block.
func (b *Block) AnchorPoint(loc Location) Point {
	return loc.Point(b.Rect)
}

// Contains returns true if (x,y) lies inside the block, including its boundary.
func (b *Block) Contains(x, y float64) bool {
	return b.Rect.Contains(x, y)
}

// Center returns the center of the block.
func (b *Block) Center() Point {
	return b.Rect.Center()
}

// ConnectionPoint returns the point on the boundary of the block nearest to p.
func (b *Block) ConnectionPoint(p Point) Point {
	return connectionPoint(b.Rect, p)
}

func connectionPoint(r Rect, p Point) Point {
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
	if !r.Contains(p.X, p.Y) {
		return Point{math.Max(x0, math.Min(p.X, x1)), math.Max(y0, math.Min(p.Y, y1))}
	}

	// inside, project onto the nearest edge
	dl, dr := p.X-x0, x1-p.X
	dt, db := p.Y-y0, y1-p.Y
	min := math.Min(math.Min(dl, dr), math.Min(dt, db))
	switch min {
	case dl:
		return Point{x0, p.Y}
	case dr:
		return Point{x1, p.Y}
	case dt:
		return Point{p.X, y0}
	}
	return Point{p.X, y1}
}

// Paint draws the block and its image.
func (b *Block) Paint(s Surface) {
	paintBlock(s, b, b.Rect)
}

func paintBlock(s Surface, b *Block, r Rect) {
	draw(s, b.id, r.ToPath(), r, drawStyle{outline: true, interior: true, img: b.Image})
}

func (b *Block) capture() *shadowPart {
	return &shadowPart{
		fig:    b,
		isRect: true,
		rect0:  b.Rect,
		rect:   b.Rect,
		dirs:   b.Directions,
		moved:  -1,
	}
}

func (b *Block) commit(part *shadowPart) {
	b.SetBounds(part.rect)
}
