package figure

import (
	"sync"

	"github.com/google/uuid"
)

// Figure is a shape on the diagram.
type Figure interface {
	ID() uuid.UUID
	Bounds() Rect
	Paint(Surface)
}

// Resizable is a figure that can be resized by dragging one of its handles.
type Resizable interface {
	Figure
	ResizeDirections() Directions
	FindDirection(p Point, handleSize float64) (Direction, bool)
	Resize(dx, dy float64, d Direction) bool
}

// Lockable is a figure that can be locked against modifications.
type Lockable interface {
	Locked() bool
	SetLocked(bool)
}

// ModelBound is a figure that belongs to a node/anchor model.
type ModelBound interface {
	Model() Model
}

// LinearFeature is a figure defined by control points.
type LinearFeature interface {
	Figure
	Geometry() *EdgeGeometry
}

// Shadowable is a figure that can be previewed by a Shadow.
type Shadowable interface {
	Figure
	Lockable
	preview() *previewSlot
	capture() *shadowPart
	commit(*shadowPart)
}

// previewSlot holds the single live shadow of a figure.
type previewSlot struct {
	mu   sync.Mutex
	live *Shadow
}

// attach makes s the live shadow and returns the previous one, if any.
func (slot *previewSlot) attach(s *Shadow) *Shadow {
	slot.mu.Lock()
	defer slot.mu.Unlock()
	prev := slot.live
	slot.live = s
	if prev == s {
		return nil
	}
	return prev
}

// detach clears the slot if s is the live shadow.
func (slot *previewSlot) detach(s *Shadow) {
	slot.mu.Lock()
	if slot.live == s {
		slot.live = nil
	}
	slot.mu.Unlock()
}

func (slot *previewSlot) get() *Shadow {
	slot.mu.Lock()
	defer slot.mu.Unlock()
	return slot.live
}

// base holds what all figures share.
type base struct {
	id     uuid.UUID
	locked bool
	slot   previewSlot
}

func newBase() base {
	return base{id: uuid.New()}
}

// ID returns the unique identifier of the figure.
func (b *base) ID() uuid.UUID {
	return b.id
}

// Locked returns true if the figure is locked.
func (b *base) Locked() bool {
	return b.locked
}

// SetLocked locks or unlocks the figure.
func (b *base) SetLocked(locked bool) {
	b.locked = locked
}

// Shadow returns the live shadow of the figure, or nil.
func (b *base) Shadow() *Shadow {
	return b.slot.get()
}

func (b *base) preview() *previewSlot {
	return &b.slot
}
