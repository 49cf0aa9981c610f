package svg

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"
	"github.com/google/uuid"
	"github.com/tdewolff/figure"
)

// ErrUnbalanced is returned by Close when rendering contexts were left open.
var ErrUnbalanced = errors.New("unbalanced rendering contexts")

type Options struct {
	Stroke      string
	Fill        string
	StrokeWidth float64
}

var DefaultOptions = Options{
	Stroke:      "black",
	Fill:        "#e0e0e0",
	StrokeWidth: 1.0,
}

// SVG is a drawing surface that writes scalable vector graphics. Every rendering context becomes a
// group clipped to its bounds, with the owning figure's ID as data-owner attribute.
type SVG struct {
	w             *errWriter
	svg           *svgo.SVG
	width, height float64
	outline       bool
	interior      bool
	owners        []uuid.UUID
	clipID        int
	opts          *Options
}

// New returns an SVG surface of the given size.
func New(w io.Writer, width, height float64, opts *Options) *SVG {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	ew := &errWriter{w: w}
	s := svgo.New(ew)
	s.Start(int(math.Ceil(width)), int(math.Ceil(height)), fmt.Sprintf(`viewBox="0 0 %v %v"`, num(width), num(height)))
	return &SVG{
		w:        ew,
		svg:      s,
		width:    width,
		height:   height,
		outline:  true,
		interior: false,
		opts:     opts,
	}
}

// Close ends the SVG document. It returns an error when rendering contexts are still open or
// writing failed.
func (r *SVG) Close() error {
	for range r.owners {
		r.svg.Gend()
	}
	r.svg.End()
	if 0 < len(r.owners) {
		n := len(r.owners)
		r.owners = r.owners[:0]
		return fmt.Errorf("%d open: %w", n, ErrUnbalanced)
	}
	return r.w.err
}

// Size returns the size of the surface.
func (r *SVG) Size() (float64, float64) {
	return r.width, r.height
}

// Depth returns the number of open rendering contexts.
func (r *SVG) Depth() int {
	return len(r.owners)
}

func (r *SVG) SetOutlineDrawn(outline bool) {
	r.outline = outline
}

func (r *SVG) SetInteriorPainted(interior bool) {
	r.interior = interior
}

// Draw writes the path with the current outline and interior settings.
func (r *SVG) Draw(p *figure.Path) {
	fill, stroke := "none", "none"
	if r.interior && p.Closed() {
		fill = r.opts.Fill
	}
	if r.outline {
		stroke = r.opts.Stroke
	}
	r.svg.Path(pathData(p),
		fmt.Sprintf(`fill="%s"`, fill),
		fmt.Sprintf(`stroke="%s"`, stroke),
		fmt.Sprintf(`stroke-width="%v"`, num(r.opts.StrokeWidth)))
}

// DrawImage embeds the image as PNG data stretched over rect.
func (r *SVG) DrawImage(img image.Image, rect figure.Rect) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		r.w.fail(err)
		return
	}
	href := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	r.svg.Image(int(math.Round(rect.X)), int(math.Round(rect.Y)), int(math.Round(rect.W)), int(math.Round(rect.H)), href, `preserveAspectRatio="none"`)
}

// PushRenderingContext opens a group for owner clipped to bounds, enlarged by the stroke width.
func (r *SVG) PushRenderingContext(owner uuid.UUID, p *figure.Path, bounds figure.Rect) {
	sw := r.opts.StrokeWidth
	clip := figure.Rect{X: bounds.X - sw, Y: bounds.Y - sw, W: bounds.W + 2.0*sw, H: bounds.H + 2.0*sw}

	r.clipID++
	id := fmt.Sprintf("clip%d", r.clipID)
	r.svg.Def()
	r.svg.ClipPath(fmt.Sprintf(`id="%s"`, id))
	r.svg.Path(pathData(clip.ToPath()))
	r.svg.ClipEnd()
	r.svg.DefEnd()
	r.svg.Group(fmt.Sprintf(`data-owner="%s"`, owner), fmt.Sprintf(`clip-path="url(#%s)"`, id))
	r.owners = append(r.owners, owner)
}

// PopRenderingContext closes the innermost group. It does nothing when no context is open.
func (r *SVG) PopRenderingContext() {
	if len(r.owners) == 0 {
		return
	}
	r.owners = r.owners[:len(r.owners)-1]
	r.svg.Gend()
}

// errWriter keeps the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(b []byte) (int, error) {
	if w.err != nil {
		return len(b), nil
	}
	n, err := w.w.Write(b)
	w.fail(err)
	return n, err
}

func (w *errWriter) fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}
