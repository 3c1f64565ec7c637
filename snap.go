package sill

import "math"

// Edge snapping. Each direction looks at the matching edge of every other
// window (and the screen edge) within twice the proximity and whose span
// overlaps this window's orthogonal span. The candidate kept is the running
// max (left/top) or min (right/bottom), so among qualifying edges the
// farthest one in the search direction wins.

func (d *Desktop) snapLeft(w *Window, proximity int) {
	main := d.GetMain()
	wBottom := w.Y + w.Height
	leftProximity := w.X - proximity*2
	rightProximity := w.X + proximity*2
	rightMost := math.MinInt32

	for _, w2 := range d.windows {
		if w2 == w || w2 == main {
			continue
		}
		right := w2.X + w2.Width
		if wBottom < w2.Y || w.Y > w2.Y+w2.Height {
			continue
		}
		if right < leftProximity || right > rightProximity {
			continue
		}
		rightMost = max(rightMost, right)
	}

	if 0 >= leftProximity && 0 <= rightProximity {
		rightMost = max(rightMost, 0)
	}

	if rightMost != math.MinInt32 {
		w.X = rightMost
	}
}

func (d *Desktop) snapTop(w *Window, proximity int) {
	main := d.GetMain()
	wRight := w.X + w.Width
	topProximity := w.Y - proximity*2
	bottomProximity := w.Y + proximity*2
	bottomMost := math.MinInt32

	for _, w2 := range d.windows {
		if w2 == w || w2 == main {
			continue
		}
		bottom := w2.Y + w2.Height
		if wRight < w2.X || w.X > w2.X+w2.Width {
			continue
		}
		if bottom < topProximity || bottom > bottomProximity {
			continue
		}
		bottomMost = max(bottomMost, bottom)
	}

	if 0 >= topProximity && 0 <= bottomProximity {
		bottomMost = max(bottomMost, 0)
	}

	if bottomMost != math.MinInt32 {
		w.Y = bottomMost
	}
}

func (d *Desktop) snapRight(w *Window, proximity int) {
	main := d.GetMain()
	wRight := w.X + w.Width
	wBottom := w.Y + w.Height
	leftProximity := wRight - proximity*2
	rightProximity := wRight + proximity*2
	leftMost := math.MaxInt32

	for _, w2 := range d.windows {
		if w2 == w || w2 == main {
			continue
		}
		if wBottom < w2.Y || w.Y > w2.Y+w2.Height {
			continue
		}
		if w2.X < leftProximity || w2.X > rightProximity {
			continue
		}
		leftMost = min(leftMost, w2.X)
	}

	if d.screenWidth >= leftProximity && d.screenWidth <= rightProximity {
		leftMost = min(leftMost, d.screenWidth)
	}

	if leftMost != math.MaxInt32 {
		w.X = leftMost - w.Width
	}
}

func (d *Desktop) snapBottom(w *Window, proximity int) {
	main := d.GetMain()
	wRight := w.X + w.Width
	wBottom := w.Y + w.Height
	topProximity := wBottom - proximity*2
	bottomProximity := wBottom + proximity*2
	topMost := math.MaxInt32

	for _, w2 := range d.windows {
		if w2 == w || w2 == main {
			continue
		}
		if wRight < w2.X || w.X > w2.X+w2.Width {
			continue
		}
		if w2.Y < topProximity || w2.Y > bottomProximity {
			continue
		}
		topMost = min(topMost, w2.Y)
	}

	if d.screenHeight >= topProximity && d.screenHeight <= bottomProximity {
		topMost = min(topMost, d.screenHeight)
	}

	if topMost != math.MaxInt32 {
		w.Y = topMost - w.Height
	}
}

// MoveAndSnap moves the window toward (x, y), clamping Y below the toolbar
// (or to 1 in title mode) and above the bottom margin, then snaps all four
// edges. When the snapped position equals the window's current position the
// move is dropped entirely.
func (d *Desktop) MoveAndSnap(w *Window, x, y int, snapProximity int) {
	origX, origY := w.X, w.Y

	y = clamp(d.minWindowY(), y, d.screenHeight-moveBottomMargin)

	if snapProximity > 0 {
		w.X, w.Y = x, y
		d.snapRight(w, snapProximity)
		d.snapBottom(w, snapProximity)
		d.snapLeft(w, snapProximity)
		d.snapTop(w, snapProximity)
		if w.X == origX && w.Y == origY {
			return
		}
		x, y = w.X, w.Y
		w.X, w.Y = origX, origY
	}

	w.SetPosition(x, y)
}

// PushOthersRight shifts every non-sticky window overlapping w just clear
// of w's right edge plus a small gap, unless w already reaches the right
// edge of the screen.
func (d *Desktop) PushOthersRight(w *Window) {
	for _, wnd := range d.windows {
		if wnd == w {
			continue
		}
		if wnd.Flags&(FlagStickToBack|FlagStickToFront) != 0 {
			continue
		}
		if wnd.X+wnd.Width <= w.X || wnd.X >= w.X+w.Width {
			continue
		}
		if wnd.Y+wnd.Height <= w.Y || wnd.Y >= w.Y+w.Height {
			continue
		}

		wnd.Invalidate()
		if w.X+w.Width+pushRightMargin >= d.screenWidth {
			continue
		}
		push := w.X + w.Width - wnd.X + pushGap
		wnd.X += push
		wnd.Invalidate()
		if wnd.Viewport != nil {
			wnd.Viewport.X += push
		}
	}
}

// PushOthersBelow shifts every non-sticky window overlapping w just clear
// of w's bottom edge plus a small gap, unless there is no room above the
// bottom margin.
func (d *Desktop) PushOthersBelow(w *Window) {
	for _, wnd := range d.windows {
		if wnd == w {
			continue
		}
		if wnd.Flags&(FlagStickToBack|FlagStickToFront) != 0 {
			continue
		}
		if wnd.X > w.X+w.Width || wnd.X+wnd.Width < w.X {
			continue
		}
		if wnd.Y > w.Y+w.Height || wnd.Y+wnd.Height < w.Y {
			continue
		}
		if w.Y+w.Height+pushBelowMargin >= d.screenHeight {
			continue
		}

		wnd.Invalidate()
		push := w.Y + w.Height - wnd.Y + pushGap
		wnd.Y += push
		wnd.Invalidate()
		if wnd.Viewport != nil {
			wnd.Viewport.Y += push
		}
	}
}

// RelocateWindows pulls windows that fell off screen, typically after the
// screen shrank, back into view as a cascade below the toolbar.
func (d *Desktop) RelocateWindows() {
	offset := relocateStep
	for _, w := range d.windows {
		if w.X+10 < d.screenWidth {
			if w.Flags&(FlagStickToBack|FlagStickToFront) != 0 {
				if w.Y-22 < d.screenHeight {
					continue
				}
			}
			if w.Y+10 < d.screenHeight {
				continue
			}
		}

		newX, newY := offset, offset+d.cfg.ToolbarHeight
		offset += relocateStep
		if w.Viewport != nil {
			w.Viewport.X += newX - w.X
			w.Viewport.Y += newY - w.Y
		}
		w.X, w.Y = newX, newY
	}
}
