package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/tdewolff/figure"
	"github.com/tdewolff/test"
)

func loadTestScene(t *testing.T) *Document {
	scene, err := LoadScene("testdata/scene.yaml")
	test.Error(t, err)
	doc, err := scene.Build()
	test.Error(t, err)
	return doc
}

func TestSceneBuild(t *testing.T) {
	doc := loadTestScene(t)
	test.Float(t, doc.Scene.Width, 100)
	test.T(t, len(doc.Blocks), 2)
	test.T(t, len(doc.Edges), 1)
	test.T(t, len(doc.Polylines), 1)
	test.T(t, len(doc.Figures()), 4)
	test.That(t, doc.Figures()[0] == figure.Figure(doc.Blocks["a"]))

	b := doc.Blocks["b"]
	test.T(t, b.Bounds(), figure.Rect{X: 50, Y: 0, W: 10, H: 10})
	test.T(t, b.ResizeDirections(), figure.DirectionsOf(figure.E, figure.SE, figure.S))

	e := doc.Edges[0]
	test.T(t, e.Points.Points(), []figure.Point{{X: 10, Y: 10}, {X: 30, Y: 20}, {X: 50, Y: 10}})
	ref, ok := e.Anchor(figure.EndEnd)
	test.That(t, ok)
	anchor, _ := doc.Graph.Anchor(ref)
	test.String(t, anchor.Name, "west")

	pl := doc.Polylines[0]
	test.That(t, pl.Closed())
	test.Float(t, pl.Area(), 400)
}

func TestSceneResizeSync(t *testing.T) {
	doc := loadTestScene(t)
	b := doc.Blocks["b"]
	s := figure.NewShadow(b)
	test.That(t, s.Resize(0, 20, figure.S))
	test.That(t, s.Commit())
	test.T(t, b.Bounds(), figure.Rect{X: 50, Y: 0, W: 10, H: 30})
	test.T(t, doc.Edges[0].Points.Last(), figure.Point{X: 50, Y: 20})

	doc.Sync()
	test.String(t, doc.Scene.Blocks[1].Properties[figure.KeyBounds], "(50|0)(60|30)")
	test.String(t, doc.Scene.Edges[0].Properties[figure.KeyPoints], "(10|10)(30|20)(50|20)")

	filename := filepath.Join(t.TempDir(), "scene.yaml")
	test.Error(t, doc.Scene.Save(filename))
	scene, err := LoadScene(filename)
	test.Error(t, err)
	test.T(t, scene, doc.Scene)
}

func TestSceneBuildErrors(t *testing.T) {
	var tts = []struct {
		name  string
		scene Scene
	}{
		{"duplicate block", Scene{Blocks: []BlockEntry{
			{Name: "a", Properties: map[string]string{figure.KeyBounds: "(0|0)(1|1)"}},
			{Name: "a", Properties: map[string]string{figure.KeyBounds: "(0|0)(1|1)"}},
		}}},
		{"bad bounds", Scene{Blocks: []BlockEntry{
			{Name: "a", Properties: map[string]string{figure.KeyBounds: "(0|0)"}},
		}}},
		{"bad anchor", Scene{Blocks: []BlockEntry{
			{Name: "a", Properties: map[string]string{figure.KeyBounds: "(0|0)(1|1)"}, Anchors: []AnchorEntry{{Name: "x", Location: "up"}}},
		}}},
		{"unknown anchor", Scene{Edges: []EdgeEntry{
			{Properties: map[string]string{figure.KeyPoints: "(0|0)(1|1)"}, Start: "nowhere"},
		}}},
		{"degenerate edge", Scene{Edges: []EdgeEntry{
			{Properties: map[string]string{figure.KeyPoints: "(0|0)"}},
		}}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.scene.Build()
			test.That(t, err != nil)
		})
	}

	_, err := (&Scene{Polylines: []PolylineEntry{{Properties: map[string]string{figure.KeyPoints: "(a|b)"}}}}).Build()
	test.That(t, errors.Is(err, figure.ErrDegenerate))
}

func TestDocumentHits(t *testing.T) {
	doc := loadTestScene(t)
	var tts = []struct {
		p    figure.Point
		hits []string
	}{
		{figure.Point{X: 90, Y: 10}, []string{"polyline 0: control point 1"}},
		{figure.Point{X: 80, Y: 30}, []string{"polyline 0: segment 2"}},
		{figure.Point{X: 80, Y: 20}, []string{"polyline 0: inside"}},
		{figure.Point{X: 30, Y: 20}, []string{"edge 0: control point 1"}},
		{figure.Point{X: 55, Y: 5}, []string{"block b: inside"}},
		{figure.Point{X: 95, Y: 39}, []string{}},
	}
	for _, tt := range tts {
		test.T(t, doc.Hits(tt.p, 6.0, 3.0), tt.hits, tt.p)
	}
}
