package sill

// Window is one on-screen panel. Windows live in a Desktop's back-to-front
// list and are identified by the (Class, Number) pair; a pointer obtained
// before a registry mutation must be re-resolved through FindByNumber
// afterwards.
type Window struct {
	Class  WindowClass
	Number WindowNumber

	X, Y          int
	Width, Height int
	MinWidth      int
	MinHeight     int
	MaxWidth      int
	MaxHeight     int

	Flags WindowFlags

	// Colours are the four palette slots snapshotted into the desktop's
	// current-window-colours scratch before each paint.
	Colours [4]Colour

	// DisabledWidgets is a bitmask over widget indices.
	DisabledWidgets uint64
	// PressedWidgets is a bitmask over widget indices.
	PressedWidgets uint64

	// Widgets is terminated by exactly one WidgetLast sentinel.
	Widgets []Widget
	Scrolls [maxScrollsPerWindow]ScrollState

	// Viewport is the optional owned world view.
	Viewport *Viewport

	// SavedViewX/Y anchor the viewport's target view position while
	// scrolling to a location.
	SavedViewX, SavedViewY int

	Events Events

	// State carries free-form per-class data.
	State any

	visibility Visibility
	desk       *Desktop
}

// Bounds returns the window's screen rectangle.
func (w *Window) Bounds() Rect {
	return Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

// Desktop returns the desktop that owns this window.
func (w *Window) Desktop() *Desktop { return w.desk }

// Invalidate marks the window's whole screen area dirty.
func (w *Window) Invalidate() {
	if w == nil || w.desk == nil {
		return
	}
	w.desk.markDirty(w.Bounds())
}

// SetPosition moves the window so its top-left corner lands on (x, y).
func (w *Window) SetPosition(x, y int) {
	w.MovePosition(x-w.X, y-w.Y)
}

// MovePosition translates the window (and its viewport) by (dx, dy),
// invalidating the old and new areas.
func (w *Window) MovePosition(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}

	w.Invalidate()

	w.X += dx
	w.Y += dy
	if w.Viewport != nil {
		w.Viewport.X += dx
		w.Viewport.Y += dy
	}

	w.Invalidate()
}

// Resize grows or shrinks the window by (dw, dh), clamped to the min/max
// size, then fires resize and invalidate and refreshes scroll widgets with
// forcibly recomputed extents.
func (w *Window) Resize(dw, dh int) {
	if dw == 0 && dh == 0 {
		return
	}

	w.Invalidate()

	w.Width = clamp(w.MinWidth, w.Width+dw, w.MaxWidth)
	w.Height = clamp(w.MinHeight, w.Height+dh, w.MaxHeight)

	w.callResize()
	w.callInvalidate()

	for i := range w.Scrolls {
		w.Scrolls[i].HRight = scrollExtentUndefined
		w.Scrolls[i].VBottom = scrollExtentUndefined
	}
	w.UpdateScrollWidgets()

	w.Invalidate()
}

// SetResize installs new size limits and immediately clamps the current
// size to them.
func (w *Window) SetResize(minWidth, minHeight, maxWidth, maxHeight int) {
	w.MinWidth = minWidth
	w.MinHeight = minHeight
	w.MaxWidth = maxWidth
	w.MaxHeight = maxHeight

	width := clamp(minWidth, w.Width, maxWidth)
	height := clamp(minHeight, w.Height, maxHeight)

	if w.Width != width || w.Height != height {
		w.Invalidate()
		w.Width = width
		w.Height = height
		w.Invalidate()
	}
}

// CanResize reports whether the window is resizable and has room to vary.
func (w *Window) CanResize() bool {
	return w.Flags&FlagResizable != 0 &&
		(w.MinWidth != w.MaxWidth || w.MinHeight != w.MaxHeight)
}

// Flash starts the white-border flash on the window and invalidates it.
func (w *Window) Flash() {
	w.Flags |= FlagWhiteBorderMask
	w.Invalidate()
}

// clamp returns v limited to [lo, hi].
func clamp(lo, v, hi int) int {
	return max(lo, min(v, hi))
}
