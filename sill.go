package sill

// Point is an integer screen-space position. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in integer screen pixels.
type Rect struct {
	X, Y, Width, Height int
}

// Right returns the exclusive right edge (X + Width).
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge (Y + Height).
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the point (x, y) lies inside the rectangle.
// The left and top edges are inside; the right and bottom edges are not.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether r and other overlap by at least one pixel.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Intersection returns the overlap of r and other. The result is empty if
// the rectangles do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Area returns the pixel area, zero for empty rectangles.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// WindowClass enumerates window types. A class is not a unique instance
// identity: windows are identified by the (class, number) pair.
type WindowClass uint8

const (
	ClassMain WindowClass = iota // full-screen world view, always at the back
	ClassViewport
	ClassTopToolbar
	ClassBottomToolbar
	ClassDropdown
	ClassTooltip
	ClassTextInput
	ClassOptions
	ClassError
	ClassOverlay // transparent stats/FPS overlays

	// ClassCustomBase is the first class value free for application windows.
	ClassCustomBase WindowClass = 32

	// ClassNone marks an absent window reference.
	ClassNone WindowClass = 255
)

// WindowNumber distinguishes instances within a WindowClass.
type WindowNumber uint16

// WindowFlags is a bitset of per-window behavior flags.
type WindowFlags uint32

const (
	FlagStickToBack         WindowFlags = 1 << iota // exempt from z-reordering, stays at the back
	FlagStickToFront                                // exempt from z-reordering, stays at the front
	FlagNoScrolling                                 // viewport never scrolls to a location
	FlagScrollingToLocation                         // viewport is gliding toward its saved anchor
	FlagTransparent                                 // composited over whatever is beneath
	FlagNoBackground                                // hit-testable only where a widget is
	FlagResizable
	FlagNoAutoClose // never evicted to satisfy the window cap

	// flagWhiteBorderOne is the low bit of the two-bit white-border flash
	// counter. The counter decays once per housekeeping tick.
	flagWhiteBorderOne
	flagWhiteBorderTwo
)

// FlagWhiteBorderMask covers the white-border flash counter. Setting the
// full mask flashes the border for the maximum duration.
const FlagWhiteBorderMask = flagWhiteBorderOne | flagWhiteBorderTwo

// Visibility is the per-frame memoized visibility of a window.
type Visibility uint8

const (
	VisibilityUnknown Visibility = iota // not yet computed this frame
	VisibilityVisible
	VisibilityCovered // fully contained by a higher window
)

// Colour is a palette colour index. The high bit marks a translucent
// rendition of the base colour.
type Colour uint8

// ColourTranslucent is the translucency flag bit on a Colour.
const ColourTranslucent Colour = 0x80

// Base strips the translucency flag, leaving the opaque palette index.
func (c Colour) Base() Colour { return c &^ ColourTranslucent }

// CursorID identifies a cursor shape hint returned by a window.
type CursorID uint8

const (
	CursorArrow CursorID = iota
	CursorBlank
	CursorHandPoint
	CursorHandOpen
	CursorHandClosed
	CursorZZZ
	CursorDiagonalArrows
)

// Shared pixel constants of the windowing system.
const (
	scrollBarWidth    = 11 // thickness of a scrollbar track
	scrollThumbMin    = 20 // minimum scrollbar thumb length in pixels
	defaultWheelStep  = 17 // pixels scrolled per wheel click
	pushGap           = 3  // gap left when pushing a window clear of another
	frontVisibleEdge  = 20 // minimum on-screen x after bring-to-front
	pushRightMargin   = 13 // right margin that blocks push-others-right
	pushBelowMargin   = 80 // bottom margin that blocks push-others-below
	moveBottomMargin  = 34 // clamp margin for the bottom of a moved window
	relocateStep      = 8  // cascade step when relocating off-screen windows
	scrollLocationPad = 10 // obstruction margin around scroll-to anchors
)

// Window capacity limits. The configured window limit is clamped to
// [WindowLimitMin, WindowLimitMax]; WindowLimitReserved slots of headroom
// beyond the limit absorb windows that must open while the cap is reached.
const (
	WindowLimitMin      = 32
	WindowLimitMax      = 64
	WindowLimitReserved = 4
)
