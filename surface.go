package figure

import (
	"image"

	"github.com/google/uuid"
)

// Surface is a drawing surface that figures and their previews paint on.
type Surface interface {
	Draw(*Path)
	SetOutlineDrawn(bool)
	SetInteriorPainted(bool)
	DrawImage(image.Image, Rect)

	// PushRenderingContext opens a rendering context for the figure owner, clipped to the path p with
	// the given bounds. Every push is balanced by PopRenderingContext.
	PushRenderingContext(owner uuid.UUID, p *Path, bounds Rect)
	PopRenderingContext()
}

// drawStyle selects what parts of a figure are drawn.
type drawStyle struct {
	outline  bool
	interior bool
	img      image.Image
}

// draw renders the path inside a rendering context of owner. The context is popped on every return.
func draw(s Surface, owner uuid.UUID, p *Path, bounds Rect, style drawStyle) {
	s.PushRenderingContext(owner, p, bounds)
	defer s.PopRenderingContext()

	if p == nil || p.Empty() {
		return
	}
	s.SetOutlineDrawn(style.outline)
	s.SetInteriorPainted(style.interior)
	s.Draw(p)
	if style.img != nil {
		s.DrawImage(style.img, bounds)
	}
}
