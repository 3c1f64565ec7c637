package sill

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ViewportFlags is a bitset of per-viewport rendering flags.
type ViewportFlags uint16

const (
	ViewportSoundOn     ViewportFlags = 1 << iota // viewport feeds the mixer
	ViewportUnderground                           // render below ground level
)

// FollowTarget is anything a viewport can track, reported in view-space
// coordinates.
type FollowTarget interface {
	ViewPosition() (x, y int)
}

// glideAnim holds the active scroll-to tweens for a viewport's view anchor.
type glideAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// glideDuration is how long a scroll-to-location glide takes, in seconds.
const glideDuration float32 = 0.45

// Viewport is a world-rendering sub-surface owned by a window. The screen
// rectangle (X, Y, Width, Height) says where it sits; the view anchor and
// extents (ViewX, ViewY, ViewWidth, ViewHeight) say what it shows. The view
// extents double with every zoom level out.
type Viewport struct {
	X, Y          int
	Width, Height int

	ViewX, ViewY          int
	ViewWidth, ViewHeight int

	Zoom  int
	Flags ViewportFlags

	// Visibility mirrors the owning window's memoized visibility.
	Visibility Visibility

	// Follow keeps the view centred on a target while set.
	Follow FollowTarget

	glide *glideAnim
}

// NewViewport creates a viewport filling the given screen rectangle at
// zoom 0, one view unit per pixel.
func NewViewport(screen Rect) *Viewport {
	return &Viewport{
		X: screen.X, Y: screen.Y,
		Width: screen.Width, Height: screen.Height,
		ViewWidth:  screen.Width,
		ViewHeight: screen.Height,
	}
}

// Bounds returns the viewport's screen rectangle.
func (v *Viewport) Bounds() Rect {
	return Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// viewPointAt maps a screen point inside the viewport to view space.
func (v *Viewport) viewPointAt(screenX, screenY int) (int, int) {
	if v.Width <= 0 || v.Height <= 0 {
		return v.ViewX, v.ViewY
	}
	return v.ViewX + (screenX-v.X)*v.ViewWidth/v.Width,
		v.ViewY + (screenY-v.Y)*v.ViewHeight/v.Height
}

// SetZoom changes the window's viewport zoom to level, clamped to the
// configured range. Zooming in halves the view extents with a quarter-step
// anchor correction; zooming out doubles them with a half-step correction.
// With zoom-to-cursor configured and atCursor set, the view point under the
// cursor stays under the cursor. The window is raised and invalidated.
func (d *Desktop) SetZoom(w *Window, level int, atCursor bool) {
	v := w.Viewport
	if v == nil {
		return
	}
	level = clamp(0, level, d.cfg.MaxZoom)
	if v.Zoom == level {
		return
	}

	cursorX, cursorY := 0, 0
	keepX, keepY := 0, 0
	keepCursor := d.cfg.ZoomToCursor && atCursor && d.input != nil
	if keepCursor {
		cursorX, cursorY = d.input.CursorPosition()
		keepX, keepY = v.viewPointAt(cursorX, cursorY)
	}

	for v.Zoom > level {
		v.Zoom--
		w.SavedViewX += v.ViewWidth / 4
		w.SavedViewY += v.ViewHeight / 4
		v.ViewWidth /= 2
		v.ViewHeight /= 2
	}
	for v.Zoom < level {
		v.Zoom++
		w.SavedViewX -= v.ViewWidth / 2
		w.SavedViewY -= v.ViewHeight / 2
		v.ViewWidth *= 2
		v.ViewHeight *= 2
	}

	if keepCursor && v.Width > 0 && v.Height > 0 {
		w.SavedViewX = keepX - (cursorX-v.X)*v.ViewWidth/v.Width
		w.SavedViewY = keepY - (cursorY-v.Y)*v.ViewHeight/v.Height
	}
	v.ViewX = w.SavedViewX
	v.ViewY = w.SavedViewY

	d.BringToFront(w)
	w.Invalidate()
}

// ZoomIn zooms the window's viewport in one level.
func (d *Desktop) ZoomIn(w *Window, atCursor bool) {
	if w.Viewport != nil {
		d.SetZoom(w, w.Viewport.Zoom-1, atCursor)
	}
}

// ZoomOut zooms the window's viewport out one level.
func (d *Desktop) ZoomOut(w *Window, atCursor bool) {
	if w.Viewport != nil {
		d.SetZoom(w, w.Viewport.Zoom+1, atCursor)
	}
}

// MainWindowZoom zooms the main window's viewport. No-op in title mode.
func (d *Desktop) MainWindowZoom(zoomIn, atCursor bool) {
	if d.titleMode {
		return
	}
	if w := d.GetMain(); w != nil && w.Viewport != nil {
		if zoomIn {
			d.SetZoom(w, w.Viewport.Zoom-1, atCursor)
		} else {
			d.SetZoom(w, w.Viewport.Zoom+1, atCursor)
		}
	}
}

// scrollAnchors are fractional viewport positions the target is placed at,
// tried in order until one is not obscured by a higher window.
var scrollAnchors = [17][2]float64{
	{0.5, 0.5},
	{0.75, 0.5},
	{0.25, 0.5},
	{0.5, 0.75},
	{0.5, 0.25},
	{0.75, 0.75},
	{0.75, 0.25},
	{0.25, 0.75},
	{0.25, 0.25},
	{0.125, 0.5},
	{0.875, 0.5},
	{0.5, 0.125},
	{0.5, 0.875},
	{0.875, 0.125},
	{0.875, 0.875},
	{0.125, 0.875},
	{0.125, 0.125},
}

// ScrollToLocation glides the window's viewport until the view point
// (viewX, viewY) sits at an anchor position. Anchors whose screen position
// is covered, within a 10 px margin, by a higher window are skipped; in
// title mode the centre anchor is always used. Windows flagged no-scrolling
// keep their view. Any follow target is released first.
func (d *Desktop) ScrollToLocation(w *Window, viewX, viewY int) {
	v := w.Viewport
	if v == nil {
		return
	}
	d.Unfollow(w)

	i := 0
	if !d.titleMode {
		base := d.indexOf(w)
		for found := false; !found; {
			found = true
			ax := v.X + int(float64(v.Width)*scrollAnchors[i][0])
			ay := v.Y + int(float64(v.Height)*scrollAnchors[i][1])
			for j := base + 1; j < len(d.windows); j++ {
				w2 := d.windows[j]
				x1 := w2.X - scrollLocationPad
				y1 := w2.Y - scrollLocationPad
				if ax >= x1 && ax <= x1+w2.Width+2*scrollLocationPad &&
					ay >= y1 && ay <= y1+w2.Height+2*scrollLocationPad {
					i++
					found = false
					break
				}
			}
			if i >= len(scrollAnchors) {
				i = 0
				found = true
			}
		}
	}

	if w.Flags&FlagNoScrolling != 0 {
		return
	}
	w.SavedViewX = viewX - int(float64(v.ViewWidth)*scrollAnchors[i][0])
	w.SavedViewY = viewY - int(float64(v.ViewHeight)*scrollAnchors[i][1])
	w.Flags |= FlagScrollingToLocation
	v.glide = &glideAnim{
		tweenX: gween.New(float32(v.ViewX), float32(w.SavedViewX), glideDuration, ease.OutQuad),
		tweenY: gween.New(float32(v.ViewY), float32(w.SavedViewY), glideDuration, ease.OutQuad),
	}
}

// SetLocation is ScrollToLocation without the glide: the view snaps to the
// anchor immediately.
func (d *Desktop) SetLocation(w *Window, viewX, viewY int) {
	d.ScrollToLocation(w, viewX, viewY)
	v := w.Viewport
	if v == nil {
		return
	}
	v.glide = nil
	if w.Flags&FlagScrollingToLocation != 0 {
		w.Flags &^= FlagScrollingToLocation
		v.ViewX = w.SavedViewX
		v.ViewY = w.SavedViewY
		w.Invalidate()
	}
}

// FollowTarget centres the window's viewport on the target every tick
// until Unfollow. Following cancels any in-flight glide.
func (d *Desktop) FollowTarget(w *Window, target FollowTarget) {
	v := w.Viewport
	if v == nil {
		return
	}
	v.Follow = target
	v.glide = nil
	w.Flags &^= FlagScrollingToLocation
}

// Unfollow releases the window's viewport follow target.
func (d *Desktop) Unfollow(w *Window) {
	if w.Viewport != nil {
		w.Viewport.Follow = nil
	}
}

// UpdateViewports advances viewport motion for every visible window: the
// scroll-to-location glide and follow-target tracking. dt is the elapsed
// frame time in seconds.
func (d *Desktop) UpdateViewports(dt float32) {
	for _, w := range d.windows {
		v := w.Viewport
		if v == nil || !d.IsVisible(w) {
			continue
		}

		if v.Follow != nil {
			tx, ty := v.Follow.ViewPosition()
			x := tx - v.ViewWidth/2
			y := ty - v.ViewHeight/2
			if x != v.ViewX || y != v.ViewY {
				v.ViewX, v.ViewY = x, y
				w.SavedViewX, w.SavedViewY = x, y
				w.Invalidate()
			}
			continue
		}

		if w.Flags&FlagScrollingToLocation == 0 {
			continue
		}
		if v.glide == nil {
			// No animation to run, snap to the anchor.
			v.ViewX = w.SavedViewX
			v.ViewY = w.SavedViewY
			w.Flags &^= FlagScrollingToLocation
			w.Invalidate()
			continue
		}
		if !v.glide.doneX {
			val, done := v.glide.tweenX.Update(dt)
			v.ViewX = int(val)
			v.glide.doneX = done
		}
		if !v.glide.doneY {
			val, done := v.glide.tweenY.Update(dt)
			v.ViewY = int(val)
			v.glide.doneY = done
		}
		w.Invalidate()
		if v.glide.doneX && v.glide.doneY {
			v.glide = nil
			w.Flags &^= FlagScrollingToLocation
		}
	}
}

// RotateCamera steps the global view rotation by direction (1 clockwise,
// -1 anti-clockwise), re-anchors the window's viewport on its centre, and
// notifies every window topmost first.
func (d *Desktop) RotateCamera(w *Window, direction int) {
	v := w.Viewport
	if v == nil {
		return
	}

	centreX := v.ViewX + v.ViewWidth/2
	centreY := v.ViewY + v.ViewHeight/2

	d.rotation = (d.rotation + direction) & 3

	w.SavedViewX = centreX - v.ViewWidth/2
	w.SavedViewY = centreY - v.ViewHeight/2
	v.ViewX = w.SavedViewX
	v.ViewY = w.SavedViewY

	w.Invalidate()

	for i := len(d.windows) - 1; i >= 0; i-- {
		d.windows[i].callViewportRotate()
	}
}

// Rotation returns the global view rotation in quarter turns, 0 to 3.
func (d *Desktop) Rotation() int { return d.rotation }

// PreviousViewport returns the viewport owned by the next window below the
// one owning current, topmost first; with current nil it returns the
// topmost viewport. Returns nil when there is none.
func (d *Desktop) PreviousViewport(current *Viewport) *Viewport {
	found := current == nil
	for i := len(d.windows) - 1; i >= 0; i-- {
		v := d.windows[i].Viewport
		if v == nil {
			continue
		}
		if found {
			return v
		}
		if v == current {
			found = true
		}
	}
	return nil
}
