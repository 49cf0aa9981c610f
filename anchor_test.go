package figure

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

// twoBlocks returns a graph with the blocks A=(0,0,10,10) and B=(50,0,10,10), each with a center
// anchor, and an edge from the center of A to the center of B.
func twoBlocks() (*Graph, *Block, *Block, AnchorRef, AnchorRef, *Edge) {
	g := NewGraph()
	a := NewBlock(Rect{0, 0, 10, 10})
	b := NewBlock(Rect{50, 0, 10, 10})
	ra := g.AddAnchor(g.AddNode(a), "center", AtCenter)
	rb := g.AddAnchor(g.AddNode(b), "center", AtCenter)
	e := NewEdge(5, 5, 55, 5)
	return g, a, b, ra, rb, e
}

func TestLocation(t *testing.T) {
	r := Rect{0, 0, 10, 20}
	test.T(t, AtCenter.Point(r), Point{5, 10})
	test.T(t, AtN.Point(r), Point{5, 0})
	test.T(t, AtNE.Point(r), Point{10, 0})
	test.T(t, AtS.Point(r), Point{5, 20})
	test.T(t, AtW.Point(r), Point{0, 10})

	for l := AtCenter; l <= AtNW; l++ {
		m, err := ParseLocation(l.String())
		test.Error(t, err)
		test.T(t, m, l)
	}
	l, err := ParseLocation("sw")
	test.Error(t, err)
	test.T(t, l, AtSW)

	_, err = ParseLocation("middle")
	test.That(t, errors.Is(err, ErrUnknownDirection))
}

func TestConnect(t *testing.T) {
	g, _, _, ra, rb, e := twoBlocks()
	e.Connect(g, StartEnd, ra)
	test.T(t, e.Points.Points(), []Point{{10, 5}, {55, 5}})
	test.T(t, g.Edges(), 1)

	e.Connect(g, EndEnd, rb)
	test.T(t, e.Points.Points(), []Point{{10, 5}, {50, 5}})
	test.T(t, g.Edges(), 1)
	test.That(t, e.Model() == Model(g))

	ref, ok := e.Anchor(EndEnd)
	test.That(t, ok)
	test.T(t, ref, rb)
	anchor, ok := g.Anchor(ref)
	test.That(t, ok)
	test.T(t, anchor.Name, "center")
}

func TestConnectNodeMoved(t *testing.T) {
	g, _, b, ra, rb, e := twoBlocks()
	e.Connect(g, StartEnd, ra)
	e.Connect(g, EndEnd, rb)

	test.That(t, b.Move(10, 0))
	test.T(t, e.Points.First(), Point{10, 5})
	test.T(t, e.Points.Last(), Point{60, 5})

	test.That(t, b.Resize(0, 10, S))
	test.T(t, e.Points.Last(), Point{60, 5})
	test.That(t, b.Resize(0, -15, N))
	test.T(t, b.Bounds(), Rect{60, -15, 10, 35})
	test.T(t, e.Points.Last(), Point{60, 5})
}

func TestConnectFallbackOppositeEnd(t *testing.T) {
	g := NewGraph()
	a := NewBlock(Rect{0, 0, 10, 10})
	ra := g.AddAnchor(g.AddNode(a), "center", AtCenter)

	// all points inside and the other end unbound
	e := NewEdge(2, 2, 8, 8)
	e.Connect(g, StartEnd, ra)
	test.T(t, e.Points.First(), Point{10, 8})
	test.T(t, e.Points.Last(), Point{8, 8})
}

func TestConnectSameAnchor(t *testing.T) {
	g := NewGraph()
	a := NewBlock(Rect{0, 0, 10, 10})
	ra := g.AddAnchor(g.AddNode(a), "center", AtCenter)

	e := NewEdge(1, 5, 9, 5)
	e.Connect(g, StartEnd, ra)
	test.T(t, e.Points.First(), Point{10, 5})
	e.Connect(g, EndEnd, ra)
	test.T(t, e.Points.First(), Point{0, 5})
	test.T(t, e.Points.Last(), Point{0, 5})

	// moving the node terminates and keeps both ends on its boundary
	a.Move(5, 0)
	test.T(t, e.Points.First(), Point{5, 5})
	test.T(t, e.Points.Last(), Point{5, 5})
}

func TestConnectPolyline(t *testing.T) {
	g := NewGraph()
	pl := PolylineFromPath(Rect{0, 0, 20, 20}.ToPath())
	test.That(t, pl != nil)
	test.T(t, pl.Points.Len(), 4)
	rp := g.AddAnchor(g.AddNode(pl), "center", AtCenter)

	e := NewEdge(10, 10, 50, 10)
	e.Connect(g, StartEnd, rp)
	test.T(t, e.Points.First(), Point{20, 10})
}

func TestEdgeMovePoint(t *testing.T) {
	g, _, _, ra, rb, e := twoBlocks()
	e.Connect(g, StartEnd, ra)
	e.Connect(g, EndEnd, rb)

	// end points snap back to their anchors
	test.That(t, e.MovePoint(0, 3, 3))
	test.T(t, e.Points.First(), Point{10, 5})

	test.That(t, e.InsertPoint(1, 30, 5))
	test.That(t, e.Move(0, 10))
	test.T(t, e.Points.Points(), []Point{{10, 10}, {30, 15}, {50, 10}})

	e.SetLocked(true)
	test.That(t, !e.Move(0, 10))
	test.That(t, !e.MovePoint(1, 0, 0))
	test.That(t, !e.InsertPoint(1, 0, 0))
	test.That(t, !e.RemovePoint(1))
	test.T(t, e.Points.Len(), 3)
}

func TestDisconnect(t *testing.T) {
	g, a, _, ra, rb, e := twoBlocks()
	e.Connect(g, StartEnd, ra)
	e.Connect(g, EndEnd, rb)

	e.Disconnect(StartEnd)
	_, ok := e.Anchor(StartEnd)
	test.That(t, !ok)
	test.T(t, g.Edges(), 1)

	a.Move(-100, 0)
	test.T(t, e.Points.First(), Point{10, 5}, "unbound end keeps its position")

	e.Disconnect(EndEnd)
	test.T(t, g.Edges(), 0)
	test.That(t, e.Model() == nil)
}

func TestRemoveNode(t *testing.T) {
	g, _, b, ra, rb, e := twoBlocks()
	e.Connect(g, StartEnd, ra)
	e.Connect(g, EndEnd, rb)

	id, ok := b.Node()
	test.That(t, ok)
	g.RemoveNode(id)
	_, ok = b.Node()
	test.That(t, !ok)
	test.That(t, b.Model() == nil)
	test.That(t, g.Anchors(id) == nil)
	test.That(t, g.NodeFigure(id) == nil)

	_, ok = e.Anchor(EndEnd)
	test.That(t, !ok)
	test.That(t, !e.SyncEnd(g))
	test.That(t, e.SyncStart(g))
	test.T(t, g.Edges(), 1)

	// indices of other nodes stay valid
	test.That(t, g.NodeFigure(ra.Node) != nil)
	mustPanic(t, func() { g.AddAnchor(id, "x", AtN) })
	mustPanic(t, func() { g.AddAnchor(NodeID(42), "x", AtN) })
}

func TestSyncUnresolved(t *testing.T) {
	geom := geometry(Segments, false, Point{0, 0}, Point{10, 0})
	test.That(t, !geom.Sync(nil, StartEnd))

	g := NewGraph()
	geom.Connect(g, StartEnd, AnchorRef{Node: 3, Index: 0})
	test.That(t, !geom.SyncStart(g))
	test.T(t, geom.Points.First(), Point{0, 0})
}
