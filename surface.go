package sill

// BevelStyle selects the relief of a bevelled rectangle.
type BevelStyle uint8

const (
	BevelOutset BevelStyle = iota // raised, light top-left edge
	BevelInset                    // sunken, dark top-left edge
)

// RenderTarget is the draw-primitive surface the compositor paints into.
// Implementations own the pixels; the windowing core never allocates any.
// SubRegion narrows the drawable area without touching the receiver, the
// way a clipped sub-image does.
type RenderTarget interface {
	// Bounds is the drawable area in screen coordinates.
	Bounds() Rect
	// SubRegion returns a target restricted to the intersection of the
	// current bounds and r. Coordinates stay in screen space.
	SubRegion(r Rect) RenderTarget
	// FillRect fills r with the palette colour.
	FillRect(r Rect, colour Colour)
	// BevelRect draws r as a bevelled box in the palette colour.
	BevelRect(r Rect, colour Colour, style BevelStyle)
	// Sprite blits an image reference at (x, y), recoloured when colour
	// carries a palette remap.
	Sprite(image uint32, x, y int, colour Colour)
}

// PaintInfo is the clipped paint context handed to paint callbacks. Target
// is already restricted to Clip; painting outside it has no effect.
type PaintInfo struct {
	Target RenderTarget
	Clip   Rect
}

// Invalidator is the dirty-region sink. The desktop forwards every
// invalidated screen rectangle to it; the render loop drains the
// accumulated region and hands it back to DrawAll.
type Invalidator interface {
	MarkDirty(r Rect)
}

// DirtyRegion is a minimal Invalidator that accumulates the bounding
// rectangle of everything marked since the last Take.
type DirtyRegion struct {
	bounds Rect
	marked bool
}

// MarkDirty grows the accumulated bounds to include r.
func (d *DirtyRegion) MarkDirty(r Rect) {
	if r.Empty() {
		return
	}
	if !d.marked {
		d.bounds = r
		d.marked = true
		return
	}
	d.bounds = d.bounds.Union(r)
}

// Take returns the accumulated bounds and resets the region. ok is false
// when nothing was marked.
func (d *DirtyRegion) Take() (r Rect, ok bool) {
	r, ok = d.bounds, d.marked
	d.bounds = Rect{}
	d.marked = false
	return r, ok
}
