package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/figure"
	"gopkg.in/yaml.v3"
)

// Scene is the YAML description of a diagram. Figure geometry is stored as flat property maps.
type Scene struct {
	Width     float64         `yaml:"width"`
	Height    float64         `yaml:"height"`
	Blocks    []BlockEntry    `yaml:"blocks,omitempty"`
	Edges     []EdgeEntry     `yaml:"edges,omitempty"`
	Polylines []PolylineEntry `yaml:"polylines,omitempty"`
}

type AnchorEntry struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

type BlockEntry struct {
	Name       string            `yaml:"name"`
	Properties map[string]string `yaml:"properties"`
	Anchors    []AnchorEntry     `yaml:"anchors,omitempty"`
}

type EdgeEntry struct {
	Properties map[string]string `yaml:"properties"`
	Start      string            `yaml:"start,omitempty"` // block/anchor
	End        string            `yaml:"end,omitempty"`
}

type PolylineEntry struct {
	Properties map[string]string `yaml:"properties"`
}

// Document is a scene turned into figures.
type Document struct {
	Scene     *Scene
	Graph     *figure.Graph
	Blocks    map[string]*figure.Block
	Edges     []*figure.Edge
	Polylines []*figure.Polyline
	order     []string
}

// LoadScene reads a scene from a YAML file.
func LoadScene(filename string) (*Scene, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	scene := &Scene{}
	if err := yaml.Unmarshal(b, scene); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return scene, nil
}

// Save writes the scene as YAML.
func (s *Scene) Save(filename string) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if filename == "" || filename == "-" {
		_, err = os.Stdout.Write(b)
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// Build creates the figures of the scene and connects the edges to the block anchors.
func (s *Scene) Build() (*Document, error) {
	doc := &Document{
		Scene:  s,
		Graph:  figure.NewGraph(),
		Blocks: map[string]*figure.Block{},
	}

	anchors := map[string]figure.AnchorRef{}
	for i, entry := range s.Blocks {
		props, err := figure.UnmarshalBlockProperties(entry.Properties)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", entry.Name, err)
		}
		if _, ok := doc.Blocks[entry.Name]; ok || entry.Name == "" {
			return nil, fmt.Errorf("block %d: missing or duplicate name %q", i, entry.Name)
		}
		b := figure.NewBlock(props.Bounds)
		b.SetProperties(props)
		id := doc.Graph.AddNode(b)
		doc.Blocks[entry.Name] = b
		doc.order = append(doc.order, entry.Name)

		anchors[entry.Name] = doc.Graph.AddAnchor(id, "", figure.AtCenter)
		for _, a := range entry.Anchors {
			loc, err := figure.ParseLocation(a.Location)
			if err != nil {
				return nil, fmt.Errorf("block %q: anchor %q: %w", entry.Name, a.Name, err)
			}
			anchors[entry.Name+"/"+a.Name] = doc.Graph.AddAnchor(id, a.Name, loc)
		}
	}

	for i, entry := range s.Edges {
		props, err := figure.UnmarshalEdgeProperties(entry.Properties)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		e := figure.NewEdge(0.0, 0.0, 0.0, 0.0)
		if err := e.SetProperties(props); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		for _, end := range []struct {
			name string
			end  figure.End
		}{{entry.Start, figure.StartEnd}, {entry.End, figure.EndEnd}} {
			if end.name == "" {
				continue
			}
			ref, ok := anchors[strings.TrimSuffix(end.name, "/")]
			if !ok {
				return nil, fmt.Errorf("edge %d: unknown anchor %q", i, end.name)
			}
			e.Connect(doc.Graph, end.end, ref)
		}
		doc.Edges = append(doc.Edges, e)
	}

	for i, entry := range s.Polylines {
		props, err := figure.UnmarshalEdgeProperties(entry.Properties)
		if err != nil {
			return nil, fmt.Errorf("polyline %d: %w", i, err)
		}
		p := figure.NewPolyline(0.0, 0.0, 0.0, 0.0)
		if err := p.SetProperties(props); err != nil {
			return nil, fmt.Errorf("polyline %d: %w", i, err)
		}
		doc.Polylines = append(doc.Polylines, p)
	}
	return doc, nil
}

// Figures returns all figures in paint order: blocks, polylines, then edges.
func (doc *Document) Figures() []figure.Figure {
	figs := []figure.Figure{}
	for _, name := range doc.order {
		figs = append(figs, doc.Blocks[name])
	}
	for _, p := range doc.Polylines {
		figs = append(figs, p)
	}
	for _, e := range doc.Edges {
		figs = append(figs, e)
	}
	return figs
}

// Sync writes the current geometry of all figures back into the scene's property maps.
func (doc *Document) Sync() {
	for i, entry := range doc.Scene.Blocks {
		doc.Scene.Blocks[i].Properties = doc.Blocks[entry.Name].Properties().Marshal()
	}
	for i, e := range doc.Edges {
		doc.Scene.Edges[i].Properties = e.Properties().Marshal()
	}
	for i, p := range doc.Polylines {
		doc.Scene.Polylines[i].Properties = p.Properties().Marshal()
	}
}

// Hits describes the figures under the pointer position, blocks by name and line figures by their
// index among the edges or polylines.
func (doc *Document) Hits(p figure.Point, handleSize, eps float64) []string {
	hits := []string{}
	for _, name := range doc.order {
		b := doc.Blocks[name]
		if d, ok := b.FindDirection(p, handleSize); ok {
			hits = append(hits, fmt.Sprintf("block %s: handle %v", name, d))
		} else if b.Contains(p.X, p.Y) {
			hits = append(hits, fmt.Sprintf("block %s: inside", name))
		}
	}
	hitLine := func(kind string, i int, g *figure.EdgeGeometry) {
		if j := g.HitControlPoint(p.X, p.Y, eps); j != -1 {
			hits = append(hits, fmt.Sprintf("%s %d: control point %d", kind, i, j))
		} else if j := g.HitSegment(p.X, p.Y, eps); j != -1 {
			hits = append(hits, fmt.Sprintf("%s %d: segment %d", kind, i, j))
		} else if g.Contains(p.X, p.Y) {
			hits = append(hits, fmt.Sprintf("%s %d: inside", kind, i))
		}
	}
	for i, e := range doc.Edges {
		hitLine("edge", i, e.Geometry())
	}
	for i, pl := range doc.Polylines {
		hitLine("polyline", i, pl.Geometry())
	}
	return hits
}
