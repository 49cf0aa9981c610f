package rasterizer

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/srwiley/rasterx"
	"github.com/tdewolff/figure"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

type Options struct {
	Stroke      color.RGBA
	Fill        color.RGBA
	StrokeWidth float64
	Scale       float64 // pixels per unit
}

var DefaultOptions = Options{
	Stroke:      color.RGBA{0, 0, 0, 255},
	Fill:        color.RGBA{224, 224, 224, 255},
	StrokeWidth: 1.0,
	Scale:       1.0,
}

// PNGWriter paints the figures on a new image of the given size in units and writes it as PNG.
func PNGWriter(w io.Writer, width, height float64, opts *Options, figs ...figure.Figure) error {
	img := Draw(width, height, opts, figs...)
	return png.Encode(w, img)
}

// Draw paints the figures on a new image of the given size in units.
func Draw(width, height float64, opts *Options, figs ...figure.Figure) *image.RGBA {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	img := image.NewRGBA(image.Rect(0, 0, int(width*opts.Scale+0.5), int(height*opts.Scale+0.5)))
	ras := New(img, opts)
	for _, fig := range figs {
		fig.Paint(ras)
	}
	return img
}

type context struct {
	owner uuid.UUID
	clip  image.Rectangle
}

// Rasterizer is a drawing surface that paints on an image. Interiors are filled with x/image/vector,
// outlines are stroked with rasterx. Rendering contexts clip to their bounds.
type Rasterizer struct {
	img      draw.Image
	outline  bool
	interior bool
	stack    []context
	opts     *Options
}

// New returns a surface that paints on img.
func New(img draw.Image, opts *Options) *Rasterizer {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	return &Rasterizer{
		img:     img,
		outline: true,
		opts:    opts,
	}
}

// Depth returns the number of open rendering contexts.
func (r *Rasterizer) Depth() int {
	return len(r.stack)
}

func (r *Rasterizer) clip() image.Rectangle {
	if len(r.stack) == 0 {
		return r.img.Bounds()
	}
	return r.stack[len(r.stack)-1].clip
}

func (r *Rasterizer) SetOutlineDrawn(outline bool) {
	r.outline = outline
}

func (r *Rasterizer) SetInteriorPainted(interior bool) {
	r.interior = interior
}

// Draw fills the interior of closed paths and strokes the outline, depending on the current
// settings.
func (r *Rasterizer) Draw(p *figure.Path) {
	clip := r.clip()
	if clip.Empty() {
		return // outside image
	}

	if r.interior && p.Closed() {
		ras := vector.NewRasterizer(clip.Dx(), clip.Dy())
		r.walk(p, vectorAdder{ras}, clip.Min)
		ras.Draw(r.img, clip, image.NewUniform(r.opts.Fill), image.Point{})
	}
	if r.outline && 0.0 < r.opts.StrokeWidth {
		size := r.img.Bounds().Size()
		scanner := rasterx.NewScannerGV(size.X, size.Y, r.img, r.img.Bounds())
		scanner.SetClip(clip)
		stroker := rasterx.NewStroker(size.X, size.Y, scanner)
		stroker.SetStroke(toFixed(r.opts.StrokeWidth*r.opts.Scale), 4<<6, rasterx.ButtCap, nil, rasterx.RoundGap, rasterx.Round)
		stroker.SetColor(r.opts.Stroke)
		r.walk(p, stroker, image.Point{})
		stroker.Draw()
	}
}

// DrawImage scales the image into rect, clipped by the current rendering context.
func (r *Rasterizer) DrawImage(img image.Image, rect figure.Rect) {
	s := r.opts.Scale
	dr := image.Rect(int(math.Floor(rect.X*s)), int(math.Floor(rect.Y*s)), int(math.Ceil((rect.X+rect.W)*s)), int(math.Ceil((rect.Y+rect.H)*s)))
	visible := dr.Intersect(r.clip())
	if visible.Empty() {
		return
	}

	tmp := image.NewRGBA(dr)
	draw.BiLinear.Scale(tmp, dr, img, img.Bounds(), draw.Src, nil)
	draw.Draw(r.img, visible, tmp, visible.Min, draw.Over)
}

// PushRenderingContext restricts drawing to bounds, enlarged by the stroke width.
func (r *Rasterizer) PushRenderingContext(owner uuid.UUID, _ *figure.Path, bounds figure.Rect) {
	s, sw := r.opts.Scale, r.opts.StrokeWidth
	clip := image.Rect(
		int(math.Floor((bounds.X-sw)*s)),
		int(math.Floor((bounds.Y-sw)*s)),
		int(math.Ceil((bounds.X+bounds.W+sw)*s)),
		int(math.Ceil((bounds.Y+bounds.H+sw)*s)),
	)
	r.stack = append(r.stack, context{owner, clip.Intersect(r.clip())})
}

// PopRenderingContext removes the innermost rendering context.
func (r *Rasterizer) PopRenderingContext() {
	if len(r.stack) == 0 {
		return
	}
	r.stack = r.stack[:len(r.stack)-1]
}

// walk adds the path to the adder in pixel coordinates relative to origin.
func (r *Rasterizer) walk(p *figure.Path, a rasterx.Adder, origin image.Point) {
	s := r.opts.Scale
	o := figure.Point{X: float64(origin.X), Y: float64(origin.Y)}
	pt := func(q figure.Point) fixedPoint {
		return toFixedPoint(q.Mul(s).Sub(o))
	}

	a.Start(pt(p.StartPos()))
	closed := false
	for _, seg := range p.Segments() {
		switch seg.Cmd {
		case figure.LineToCmd:
			a.Line(pt(seg.End))
		case figure.QuadToCmd:
			a.QuadBezier(pt(seg.CP1), pt(seg.End))
		case figure.CubeToCmd:
			a.CubeBezier(pt(seg.CP1), pt(seg.CP2), pt(seg.End))
		case figure.CloseCmd:
			closed = true
		}
	}
	a.Stop(closed)
}
