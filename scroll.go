package sill

import "math"

// ScrollFlags marks which scrollbars of a scroll widget are visible.
type ScrollFlags uint8

const (
	ScrollHVisible ScrollFlags = 1 << iota
	ScrollVVisible
)

// ScrollState is the per-widget scrollbar state: scroll positions, content
// extents, and the cached thumb pixel extents. Thumb extents are only valid
// after updateThumbs has run for the current positions and extents.
type ScrollState struct {
	Flags ScrollFlags

	// HLeft/VTop are the scroll positions; HRight/VBottom the content extents.
	HLeft, HRight int
	VTop, VBottom int

	// Cached thumb extents in track pixels, inclusive of the track arrows.
	HThumbLeft, HThumbRight int
	VThumbTop, VThumbBottom int
}

// scrollExtentUndefined forces the next UpdateScrollWidgets pass to treat
// the extent as changed.
const scrollExtentUndefined = math.MaxInt32

// maxScrollsPerWindow bounds the number of scroll widgets a window may carry.
const maxScrollsPerWindow = 3

// UpdateScrollWidgets refreshes every scroll widget's content extents from
// the window's get-scroll-size callback, recomputing thumbs and
// invalidating the window whenever an extent changed.
func (w *Window) UpdateScrollWidgets() {
	scrollIndex := 0
	for i := range w.Widgets {
		widget := &w.Widgets[i]
		if widget.Type == WidgetLast {
			break
		}
		if widget.Type != WidgetScroll {
			continue
		}
		if scrollIndex >= maxScrollsPerWindow {
			break
		}

		scroll := &w.Scrolls[scrollIndex]
		width, height := w.callGetScrollSize(scrollIndex)
		if height == 0 {
			scroll.VTop = 0
		} else if width == 0 {
			scroll.HLeft = 0
		}
		width++
		height++

		changed := false
		if widget.Content&ScrollHorizontal != 0 && width != scroll.HRight {
			changed = true
			scroll.HRight = width
		}
		if widget.Content&ScrollVertical != 0 && height != scroll.VBottom {
			changed = true
			scroll.VBottom = height
		}

		if changed {
			w.UpdateScrollThumbs(WidgetIndex(i))
			w.Invalidate()
		}
		scrollIndex++
	}
}

// UpdateScrollThumbs recomputes the cached thumb extents for the scroll
// widget at widgetIndex. The thumb is positioned proportionally within the
// track (the widget length minus the arrow buttons, minus the width of the
// perpendicular bar when both are visible) and is never shorter than
// scrollThumbMin pixels: a too-short thumb is expanded around its
// proportional position, start backward by 20×fraction's complement and
// end forward by the remainder.
func (w *Window) UpdateScrollThumbs(widgetIndex WidgetIndex) {
	scrollIndex := w.scrollIndexOf(widgetIndex)
	if scrollIndex < 0 || scrollIndex >= maxScrollsPerWindow {
		return
	}
	widget := &w.Widgets[widgetIndex]
	scroll := &w.Scrolls[scrollIndex]

	if scroll.Flags&ScrollHVisible != 0 {
		viewSize := widget.Rect.Width - 21
		if scroll.Flags&ScrollVVisible != 0 {
			viewSize -= scrollBarWidth
		}
		x := scroll.HLeft * viewSize
		if scroll.HRight != 0 {
			x /= scroll.HRight
		}
		scroll.HThumbLeft = x + scrollBarWidth

		x = widget.Rect.Width - 2
		if scroll.Flags&ScrollVVisible != 0 {
			x -= scrollBarWidth
		}
		x += scroll.HLeft
		if scroll.HRight != 0 {
			x = x * viewSize / scroll.HRight
		}
		x += scrollBarWidth
		viewSize += 10
		scroll.HThumbRight = min(x, viewSize)

		if scroll.HThumbRight-scroll.HThumbLeft < scrollThumbMin {
			barPosition := float64(scroll.HThumbRight) / float64(viewSize)
			scroll.HThumbLeft = int(math.Round(float64(scroll.HThumbLeft) - scrollThumbMin*barPosition))
			scroll.HThumbRight = int(math.Round(float64(scroll.HThumbRight) + scrollThumbMin*(1-barPosition)))
		}
	}

	if scroll.Flags&ScrollVVisible != 0 {
		viewSize := widget.Rect.Height - 21
		if scroll.Flags&ScrollHVisible != 0 {
			viewSize -= scrollBarWidth
		}
		y := scroll.VTop * viewSize
		if scroll.VBottom != 0 {
			y /= scroll.VBottom
		}
		scroll.VThumbTop = y + scrollBarWidth

		y = widget.Rect.Height - 2
		if scroll.Flags&ScrollHVisible != 0 {
			y -= scrollBarWidth
		}
		y += scroll.VTop
		if scroll.VBottom != 0 {
			y = y * viewSize / scroll.VBottom
		}
		y += scrollBarWidth
		viewSize += 10
		scroll.VThumbBottom = min(y, viewSize)

		if scroll.VThumbBottom-scroll.VThumbTop < scrollThumbMin {
			barPosition := float64(scroll.VThumbBottom) / float64(viewSize)
			scroll.VThumbTop = int(math.Round(float64(scroll.VThumbTop) - scrollThumbMin*barPosition))
			scroll.VThumbBottom = int(math.Round(float64(scroll.VThumbBottom) + scrollThumbMin*(1-barPosition)))
		}
	}
}

// scrollWheelInput applies a wheel movement of the given pixel amount to
// one scroll state, preferring the vertical axis when visible, clamping to
// the content extent, and refreshing thumbs before the next draw.
func (d *Desktop) scrollWheelInput(w *Window, scrollIndex int, pixels int) {
	if scrollIndex < 0 || scrollIndex >= maxScrollsPerWindow {
		return
	}
	scroll := &w.Scrolls[scrollIndex]
	widget, widgetIndex := w.scrollWidget(scrollIndex)
	if widget == nil {
		return
	}

	if scroll.Flags&ScrollVVisible != 0 {
		size := widget.Rect.Height - 1
		if scroll.Flags&ScrollHVisible != 0 {
			size -= scrollBarWidth
		}
		size = max(0, scroll.VBottom-size)
		scroll.VTop = min(max(0, scroll.VTop+pixels), size)
	} else {
		size := widget.Rect.Width - 1
		if scroll.Flags&ScrollVVisible != 0 {
			size -= scrollBarWidth
		}
		size = max(0, scroll.HRight-size)
		scroll.HLeft = min(max(0, scroll.HLeft+pixels), size)
	}

	w.UpdateScrollThumbs(widgetIndex)
	d.InvalidateWidget(w, widgetIndex)
}

// windowWheelInput scrolls the first scroll widget of w that has a visible
// bar. Reports whether any scrolling happened.
func (d *Desktop) windowWheelInput(w *Window, pixels int) bool {
	i := 0
	for wi := range w.Widgets {
		if w.Widgets[wi].Type == WidgetLast {
			break
		}
		if w.Widgets[wi].Type != WidgetScroll {
			continue
		}
		if i >= maxScrollsPerWindow {
			break
		}
		if w.Scrolls[i].Flags&(ScrollHVisible|ScrollVVisible) != 0 {
			d.scrollWheelInput(w, i, pixels)
			return true
		}
		i++
	}
	return false
}
