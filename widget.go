package sill

// WidgetType tags the behavior of a declarative widget entry.
type WidgetType uint8

const (
	// WidgetEmpty is a placeholder slot that is never drawn or hit-tested.
	WidgetEmpty WidgetType = iota
	WidgetFrame
	WidgetCaption
	WidgetCloseBox
	WidgetPanel
	WidgetLabel
	WidgetButton
	WidgetImageButton
	// WidgetFlatButton is the borderless image button used for the +/-
	// pair that follows a preview image button.
	WidgetFlatButton
	WidgetStepper
	WidgetCheckbox
	WidgetDropdown
	WidgetDropdownButton
	WidgetViewport
	WidgetScroll
	// WidgetLast terminates a widget array. Every window's widget slice
	// ends with exactly one sentinel of this type.
	WidgetLast
)

// StringID references a localized string owned by an external string table.
type StringID uint16

// StringNone marks an absent string reference.
const StringNone StringID = 0xFFFF

// WidgetIndex is a position in a window's widget array.
type WidgetIndex int

// WidgetIndexNone marks "no widget".
const WidgetIndexNone WidgetIndex = -1

// Scroll direction bits stored in the Content of a WidgetScroll entry.
const (
	ScrollHorizontal uint32 = 1 << iota
	ScrollVertical
)

// ScrollBoth selects both scroll directions.
const ScrollBoth = ScrollHorizontal | ScrollVertical

// Widget is one declarative rectangular element of a window. The rectangle
// is relative to the owning window's top-left corner and its edges are
// inclusive for hit testing. Widgets carry no per-instance state; mutable
// widget state (disabled, pressed) lives on the owning window.
type Widget struct {
	Type    WidgetType
	Rect    Rect
	Content uint32 // image reference, or scroll direction bits for WidgetScroll
	Text    StringID
	Tooltip StringID
}

// hitTest reports whether the screen point (x, y) falls on the widget of a
// window positioned at (wx, wy). Widget edges are inclusive.
func (wd *Widget) hitTest(wx, wy, x, y int) bool {
	return x >= wx+wd.Rect.X && x <= wx+wd.Rect.Right() &&
		y >= wy+wd.Rect.Y && y <= wy+wd.Rect.Bottom()
}

// WidgetsEnd is the sentinel every widget array must be terminated with.
var WidgetsEnd = Widget{Type: WidgetLast}

// IsWidgetDisabled reports whether the widget at index is disabled via the
// window's disabled bitmask.
func (w *Window) IsWidgetDisabled(index WidgetIndex) bool {
	if index < 0 || index >= WidgetIndex(len(w.Widgets)) {
		return false
	}
	return w.DisabledWidgets&(1<<uint(index)) != 0
}

// SetWidgetDisabled sets or clears the disabled bit for the widget at index.
func (w *Window) SetWidgetDisabled(index WidgetIndex, disabled bool) {
	if index < 0 || index >= WidgetIndex(len(w.Widgets)) {
		return
	}
	if disabled {
		w.DisabledWidgets |= 1 << uint(index)
	} else {
		w.DisabledWidgets &^= 1 << uint(index)
	}
}

// widgetIndexOf returns the index of widget within w's widget array, or
// WidgetIndexNone if it is not one of w's widgets.
func (w *Window) widgetIndexOf(widget *Widget) WidgetIndex {
	for i := range w.Widgets {
		if w.Widgets[i].Type == WidgetLast {
			break
		}
		if &w.Widgets[i] == widget {
			return WidgetIndex(i)
		}
	}
	return WidgetIndexNone
}

// scrollIndexOf maps a widget index to the index of its scroll state: the
// count of WidgetScroll entries before it. Returns -1 when the widget at
// the given index is not a scroll widget.
func (w *Window) scrollIndexOf(index WidgetIndex) int {
	if index < 0 || index >= WidgetIndex(len(w.Widgets)) ||
		w.Widgets[index].Type != WidgetScroll {
		return -1
	}
	scrollIndex := 0
	for i := WidgetIndex(0); i < index; i++ {
		if w.Widgets[i].Type == WidgetLast {
			break
		}
		if w.Widgets[i].Type == WidgetScroll {
			scrollIndex++
		}
	}
	return scrollIndex
}

// scrollWidget returns the widget of the scrollIndex-th scroll state, or
// nil when the window has fewer scroll widgets than that.
func (w *Window) scrollWidget(scrollIndex int) (*Widget, WidgetIndex) {
	for i := range w.Widgets {
		if w.Widgets[i].Type == WidgetLast {
			break
		}
		if w.Widgets[i].Type != WidgetScroll {
			continue
		}
		if scrollIndex == 0 {
			return &w.Widgets[i], WidgetIndex(i)
		}
		scrollIndex--
	}
	return nil, WidgetIndexNone
}

// FindWidgetFromPoint returns the index of the widget under the screen
// point (x, y), or WidgetIndexNone. The window's invalidate callback fires
// first so widget geometry is current. When several widgets overlap the
// point, the last one in declaration order wins; hitting the anchor of a
// dropdown resolves to its drop button.
func (d *Desktop) FindWidgetFromPoint(w *Window, x, y int) WidgetIndex {
	if w == nil {
		return WidgetIndexNone
	}
	w.callInvalidate()

	index := WidgetIndexNone
	for i := range w.Widgets {
		wd := &w.Widgets[i]
		if wd.Type == WidgetLast {
			break
		}
		if wd.Type == WidgetEmpty {
			continue
		}
		if wd.hitTest(w.X, w.Y, x, y) {
			index = WidgetIndex(i)
		}
	}

	if index != WidgetIndexNone && w.Widgets[index].Type == WidgetDropdown {
		index++
	}
	return index
}

// AlignTabs lays the widgets in [startIndex, endIndex] out as a row of
// equal-width tabs, skipping disabled ones.
func (w *Window) AlignTabs(startIndex, endIndex WidgetIndex) {
	if startIndex < 0 || endIndex >= WidgetIndex(len(w.Widgets)) {
		return
	}
	x := w.Widgets[startIndex].Rect.X
	tabWidth := w.Widgets[startIndex].Rect.Width
	for i := startIndex; i <= endIndex; i++ {
		if w.IsWidgetDisabled(i) {
			continue
		}
		w.Widgets[i].Rect.X = x
		w.Widgets[i].Rect.Width = tabWidth
		x += tabWidth + 1
	}
}
