package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/figure"
	"github.com/tdewolff/figure/cmd/figure/internal/config"
	"github.com/tdewolff/figure/renderers"
)

type Main struct{}

type Render struct {
	Config string `short:"c" desc:"Configuration file"`
	Output string `short:"o" desc:"Output filename (.svg, .png, .jpg, .gif or .tiff)"`
	Input  string `index:"0" desc:"Scene file"`
}

type Hit struct {
	Config string  `short:"c" desc:"Configuration file"`
	X      float64 `short:"x" desc:"Pointer X coordinate"`
	Y      float64 `short:"y" desc:"Pointer Y coordinate"`
	Input  string  `index:"0" desc:"Scene file"`
}

type Flatten struct {
	Config string `short:"c" desc:"Configuration file"`
	Output string `short:"o" desc:"Output scene file"`
	Input  string `index:"0" desc:"Scene file"`
}

type Resize struct {
	Config    string  `short:"c" desc:"Configuration file"`
	Block     string  `short:"b" desc:"Block name"`
	Direction string  `short:"d" default:"SE" desc:"Resize direction"`
	DX        float64 `desc:"Horizontal displacement"`
	DY        float64 `desc:"Vertical displacement"`
	Output    string  `short:"o" desc:"Output scene file"`
	Input     string  `index:"0" desc:"Scene file"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Diagram figure geometry toolkit")
	root.AddCmd(&Render{}, "render", "Render a scene to SVG or a raster image")
	root.AddCmd(&Hit{}, "hit", "Report the figures under a pointer position")
	root.AddCmd(&Flatten{}, "flatten", "Remove redundant control points")
	root.AddCmd(&Resize{}, "resize", "Resize a block and resynchronize its edges")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

// setup loads the configuration, installs the logger, and builds the scene.
func setup(configFile, input string) (*config.Config, *Document, error) {
	if input == "" {
		return nil, nil, argp.ShowUsage
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	figure.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	cfg.Options().Apply()

	scene, err := LoadScene(input)
	if err != nil {
		return nil, nil, err
	}
	doc, err := scene.Build()
	if err != nil {
		return nil, nil, err
	}
	figure.Logger.Info("scene loaded", "file", input, "blocks", len(doc.Blocks), "edges", len(doc.Edges), "polylines", len(doc.Polylines))
	return cfg, doc, nil
}

func (cmd *Render) Run() error {
	cfg, doc, err := setup(cmd.Config, cmd.Input)
	if err != nil {
		return err
	}

	width, height := doc.Scene.Width, doc.Scene.Height
	if cmd.Output == "" || cmd.Output == "-" {
		return renderers.Write(os.Stdout, ".svg", width, height, doc.Figures(), renderers.Scale(cfg.Scale))
	}
	return renderers.WriteFile(cmd.Output, width, height, doc.Figures(), renderers.Scale(cfg.Scale))
}

func (cmd *Hit) Run() error {
	cfg, doc, err := setup(cmd.Config, cmd.Input)
	if err != nil {
		return err
	}

	for _, line := range doc.Hits(figure.Point{X: cmd.X, Y: cmd.Y}, cfg.HandleSize, cfg.ClickPrecision) {
		fmt.Println(line)
	}
	return nil
}

func (cmd *Flatten) Run() error {
	_, doc, err := setup(cmd.Config, cmd.Input)
	if err != nil {
		return err
	}

	n := 0
	for _, e := range doc.Edges {
		n += e.Points.FlattenAll()
	}
	for _, p := range doc.Polylines {
		n += p.Points.FlattenAll()
	}
	figure.Logger.Info("flattened control points", "removed", n)
	doc.Sync()
	return doc.Scene.Save(cmd.Output)
}

func (cmd *Resize) Run() error {
	_, doc, err := setup(cmd.Config, cmd.Input)
	if err != nil {
		return err
	}

	b, ok := doc.Blocks[cmd.Block]
	if !ok {
		return fmt.Errorf("unknown block %q", cmd.Block)
	}
	d, err := figure.ParseDirection(cmd.Direction)
	if err != nil {
		return err
	}

	shadow := figure.NewShadow(b)
	if shadow == nil {
		return fmt.Errorf("block %q is locked", cmd.Block)
	}
	defer shadow.Release()
	if !shadow.Resize(cmd.DX, cmd.DY, d) {
		return fmt.Errorf("block %q cannot be resized in direction %v", cmd.Block, d)
	}
	shadow.Commit()
	figure.Logger.Info("resized block", "block", cmd.Block, "bounds", b.Bounds())
	doc.Sync()
	return doc.Scene.Save(cmd.Output)
}
