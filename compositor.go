package sill

// DrawAll paints every window overlapping the dirty region, back to front.
// Transparent windows are never drawn on their own; they repaint as
// overlays of whatever opaque window is beneath them.
func (d *Desktop) DrawAll(target RenderTarget, region Rect) {
	region = region.Intersection(Rect{Width: d.screenWidth, Height: d.screenHeight})
	if region.Empty() {
		return
	}
	for _, w := range d.windows {
		if w.Flags&FlagTransparent != 0 {
			continue
		}
		if !region.Intersects(w.Bounds()) {
			continue
		}
		d.drawWindow(target, w, region)
	}
	d.dumpStats()
}

// drawWindow paints w within region, splitting the region around higher
// opaque windows so no pixel fully obscured by one is ever painted. The
// recursion of the split is expressed as an explicit work list; sub-regions
// are processed in the same order the recursive form would visit them.
func (d *Desktop) drawWindow(target RenderTarget, w *Window, region Rect) {
	if !d.IsVisible(w) {
		return
	}
	base := d.indexOf(w)
	if base < 0 {
		return
	}

	work := d.splitBuf[:0]
	work = append(work, region)

	for len(work) > 0 {
		r := work[len(work)-1]
		work = work[:len(work)-1]

		if a, b, split := d.splitAround(base, r); split {
			d.stats.splits++
			// a must be processed before b.
			if !b.Empty() {
				work = append(work, b)
			}
			if !a.Empty() {
				work = append(work, a)
			}
			continue
		}

		r = r.Intersection(w.Bounds())
		if r.Empty() {
			continue
		}
		for i := base; i < len(d.windows); i++ {
			v := d.windows[i]
			if v != w && v.Flags&FlagTransparent == 0 {
				continue
			}
			if !v.Bounds().Intersects(r) {
				continue
			}
			if !d.IsVisible(v) {
				continue
			}
			d.drawSingle(target, v, r)
		}
	}
	d.splitBuf = work[:0]
}

// splitAround finds the first opaque window above base that overlaps r and
// cuts r in two at that window's nearest protruding edge, trying the
// overlapper's left, right, top then bottom edge. When r is entirely inside
// the overlapper both halves come back empty: the region is covered and
// must not be drawn.
func (d *Desktop) splitAround(base int, r Rect) (a, b Rect, split bool) {
	for i := base + 1; i < len(d.windows); i++ {
		top := d.windows[i]
		if top.Flags&FlagTransparent != 0 {
			continue
		}
		if !r.Intersects(top.Bounds()) {
			continue
		}

		switch {
		case r.X < top.X:
			a = Rect{X: r.X, Y: r.Y, Width: top.X - r.X, Height: r.Height}
			b = Rect{X: top.X, Y: r.Y, Width: r.Right() - top.X, Height: r.Height}
		case r.Right() > top.Bounds().Right():
			cut := top.Bounds().Right()
			a = Rect{X: r.X, Y: r.Y, Width: cut - r.X, Height: r.Height}
			b = Rect{X: cut, Y: r.Y, Width: r.Right() - cut, Height: r.Height}
		case r.Y < top.Y:
			a = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: top.Y - r.Y}
			b = Rect{X: r.X, Y: top.Y, Width: r.Width, Height: r.Bottom() - top.Y}
		case r.Bottom() > top.Bounds().Bottom():
			cut := top.Bounds().Bottom()
			a = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: cut - r.Y}
			b = Rect{X: r.X, Y: cut, Width: r.Width, Height: r.Bottom() - cut}
		default:
			// r is entirely behind top.
			return Rect{}, Rect{}, true
		}
		return a, b, true
	}
	return Rect{}, Rect{}, false
}

// drawSingle paints one window clipped to r: narrow the target, let the
// window refresh its per-instance layout and colours, snapshot the colours
// for text painting, then fire paint.
func (d *Desktop) drawSingle(target RenderTarget, w *Window, r Rect) {
	sub := target.SubRegion(r)
	if sub.Bounds().Empty() {
		return
	}

	w.callInvalidate()

	for i, c := range w.Colours {
		d.currentColours[i] = c.Base()
	}

	d.stats.paints++
	w.callPaint(&PaintInfo{Target: sub, Clip: sub.Bounds()})
}

// indexOf returns w's position in the z order, or -1.
func (d *Desktop) indexOf(w *Window) int {
	for i, lw := range d.windows {
		if lw == w {
			return i
		}
	}
	return -1
}

// IsVisible reports whether any part of the window can appear on screen.
// The answer is memoized until ResetVisibilities; the main window is always
// visible, and any other window is covered exactly when a single higher
// window's bounds fully contain it.
func (d *Desktop) IsVisible(w *Window) bool {
	if w == nil {
		return false
	}
	switch w.visibility {
	case VisibilityVisible:
		return true
	case VisibilityCovered:
		return false
	}

	if w.Class == ClassMain {
		w.setVisibility(VisibilityVisible)
		return true
	}

	for i := d.indexOf(w) + 1; i < len(d.windows); i++ {
		top := d.windows[i]
		if w.X >= top.X && w.Bounds().Right() <= top.Bounds().Right() &&
			w.Y >= top.Y && w.Bounds().Bottom() <= top.Bounds().Bottom() {
			w.setVisibility(VisibilityCovered)
			return false
		}
	}

	w.setVisibility(VisibilityVisible)
	return true
}

// ResetVisibilities clears every window's memoized visibility, and the
// mirror on any owned viewport, for the next frame.
func (d *Desktop) ResetVisibilities() {
	for _, w := range d.windows {
		w.visibility = VisibilityUnknown
		if w.Viewport != nil {
			w.Viewport.Visibility = VisibilityUnknown
		}
	}
}

func (w *Window) setVisibility(v Visibility) {
	w.visibility = v
	if w.Viewport != nil {
		w.Viewport.Visibility = v
	}
}
