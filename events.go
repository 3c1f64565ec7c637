package sill

// Events is the capability set of a window class: a table of optional
// callbacks. A nil entry is a documented no-op, never an error. Windows of
// the same class typically share one Events value.
type Events struct {
	Close    func(w *Window)
	Resize   func(w *Window)
	MouseUp  func(w *Window, widgetIndex WidgetIndex)
	MouseDown func(w *Window, widgetIndex WidgetIndex, widget *Widget)
	Dropdown func(w *Window, widgetIndex WidgetIndex, selectedIndex int)
	Update   func(w *Window)
	// Periodic fires on the 1000-tick housekeeping sweep.
	Periodic func(w *Window)

	ToolUpdate func(w *Window, widgetIndex WidgetIndex, x, y int)
	ToolDown   func(w *Window, widgetIndex WidgetIndex, x, y int)
	ToolDrag   func(w *Window, widgetIndex WidgetIndex, x, y int)
	ToolUp     func(w *Window, widgetIndex WidgetIndex, x, y int)
	ToolAbort  func(w *Window, widgetIndex WidgetIndex)

	// TextInput receives the textbox buffer on every committed change; an
	// empty string with ok=false reports cancellation.
	TextInput func(w *Window, widgetIndex WidgetIndex, text string, ok bool)

	ViewportRotate func(w *Window)
	Tooltip        func(w *Window, widgetIndex WidgetIndex) StringID
	Cursor         func(w *Window, widgetIndex WidgetIndex, x, y int) CursorID
	Moved          func(w *Window, x, y int)

	// Invalidate recomputes per-instance layout and colours. It fires
	// before hit tests and before every paint.
	Invalidate func(w *Window)
	Paint      func(w *Window, p *PaintInfo)

	ScrollPaint     func(w *Window, p *PaintInfo, scrollIndex int)
	GetScrollSize   func(w *Window, scrollIndex int) (width, height int)
	ScrollMouseDown func(w *Window, scrollIndex, x, y int)
	ScrollMouseDrag func(w *Window, scrollIndex, x, y int)
	ScrollMouseOver func(w *Window, scrollIndex, x, y int)
}

// Dispatch wrappers. Each is nil-safe on both the window and the handler.

func (w *Window) callClose() {
	if w != nil && w.Events.Close != nil {
		w.Events.Close(w)
	}
}

func (w *Window) callResize() {
	if w != nil && w.Events.Resize != nil {
		w.Events.Resize(w)
	}
}

// CallMouseUp fires the mouse-up handler for the widget at widgetIndex.
func (w *Window) CallMouseUp(widgetIndex WidgetIndex) {
	if w != nil && w.Events.MouseUp != nil {
		w.Events.MouseUp(w, widgetIndex)
	}
}

// CallMouseDown fires the mouse-down handler for the widget at widgetIndex.
func (w *Window) CallMouseDown(widgetIndex WidgetIndex) {
	if w == nil || w.Events.MouseDown == nil {
		return
	}
	if widgetIndex < 0 || widgetIndex >= WidgetIndex(len(w.Widgets)) {
		return
	}
	w.Events.MouseDown(w, widgetIndex, &w.Widgets[widgetIndex])
}

// CallDropdown fires the dropdown-selected handler.
func (w *Window) CallDropdown(widgetIndex WidgetIndex, selectedIndex int) {
	if w != nil && w.Events.Dropdown != nil {
		w.Events.Dropdown(w, widgetIndex, selectedIndex)
	}
}

func (w *Window) callUpdate() {
	if w != nil && w.Events.Update != nil {
		w.Events.Update(w)
	}
}

func (w *Window) callPeriodic() {
	if w != nil && w.Events.Periodic != nil {
		w.Events.Periodic(w)
	}
}

func (w *Window) callToolUpdate(widgetIndex WidgetIndex, x, y int) {
	if w != nil && w.Events.ToolUpdate != nil {
		w.Events.ToolUpdate(w, widgetIndex, x, y)
	}
}

func (w *Window) callToolDown(widgetIndex WidgetIndex, x, y int) {
	if w != nil && w.Events.ToolDown != nil {
		w.Events.ToolDown(w, widgetIndex, x, y)
	}
}

func (w *Window) callToolDrag(widgetIndex WidgetIndex, x, y int) {
	if w != nil && w.Events.ToolDrag != nil {
		w.Events.ToolDrag(w, widgetIndex, x, y)
	}
}

func (w *Window) callToolUp(widgetIndex WidgetIndex, x, y int) {
	if w != nil && w.Events.ToolUp != nil {
		w.Events.ToolUp(w, widgetIndex, x, y)
	}
}

func (w *Window) callToolAbort(widgetIndex WidgetIndex) {
	if w != nil && w.Events.ToolAbort != nil {
		w.Events.ToolAbort(w, widgetIndex)
	}
}

func (w *Window) callTextInput(widgetIndex WidgetIndex, text string, ok bool) {
	if w != nil && w.Events.TextInput != nil {
		w.Events.TextInput(w, widgetIndex, text, ok)
	}
}

func (w *Window) callViewportRotate() {
	if w != nil && w.Events.ViewportRotate != nil {
		w.Events.ViewportRotate(w)
	}
}

// CallTooltip queries the tooltip string for the widget at widgetIndex.
func (w *Window) CallTooltip(widgetIndex WidgetIndex) StringID {
	if w != nil && w.Events.Tooltip != nil {
		return w.Events.Tooltip(w, widgetIndex)
	}
	return StringNone
}

// CallCursor queries the cursor hint for the widget at widgetIndex.
// Windows without a handler hint the default arrow.
func (w *Window) CallCursor(widgetIndex WidgetIndex, x, y int) CursorID {
	if w != nil && w.Events.Cursor != nil {
		return w.Events.Cursor(w, widgetIndex, x, y)
	}
	return CursorArrow
}

// CallMoved reports a completed window move to the window.
func (w *Window) CallMoved(x, y int) {
	if w != nil && w.Events.Moved != nil {
		w.Events.Moved(w, x, y)
	}
}

func (w *Window) callInvalidate() {
	if w != nil && w.Events.Invalidate != nil {
		w.Events.Invalidate(w)
	}
}

func (w *Window) callPaint(p *PaintInfo) {
	if w != nil && w.Events.Paint != nil {
		w.Events.Paint(w, p)
	}
}

// CallScrollPaint fires the scroll-content paint handler.
func (w *Window) CallScrollPaint(p *PaintInfo, scrollIndex int) {
	if w != nil && w.Events.ScrollPaint != nil {
		w.Events.ScrollPaint(w, p, scrollIndex)
	}
}

func (w *Window) callGetScrollSize(scrollIndex int) (width, height int) {
	if w != nil && w.Events.GetScrollSize != nil {
		return w.Events.GetScrollSize(w, scrollIndex)
	}
	return 0, 0
}

// CallScrollMouseDown fires the scroll-area mouse-down handler.
func (w *Window) CallScrollMouseDown(scrollIndex, x, y int) {
	if w != nil && w.Events.ScrollMouseDown != nil {
		w.Events.ScrollMouseDown(w, scrollIndex, x, y)
	}
}

// CallScrollMouseDrag fires the scroll-area mouse-drag handler.
func (w *Window) CallScrollMouseDrag(scrollIndex, x, y int) {
	if w != nil && w.Events.ScrollMouseDrag != nil {
		w.Events.ScrollMouseDrag(w, scrollIndex, x, y)
	}
}

// CallScrollMouseOver fires the scroll-area mouse-over handler.
func (w *Window) CallScrollMouseOver(scrollIndex, x, y int) {
	if w != nil && w.Events.ScrollMouseOver != nil {
		w.Events.ScrollMouseOver(w, scrollIndex, x, y)
	}
}

// periodicSweepInterval is the tick count between periodic sweeps.
const periodicSweepInterval = 1000

// UpdateWindows fires every window's update handler once, topmost first.
// Call once per simulation tick.
func (d *Desktop) UpdateWindows() {
	for i := len(d.windows) - 1; i >= 0; i-- {
		d.windows[i].callUpdate()
	}
}

// Tick performs per-tick housekeeping: the 1000-tick periodic sweep, the
// white-border flash decay, and wheel routing. elapsed is the number of
// ticks since the previous call.
func (d *Desktop) Tick(elapsed int) {
	d.consumeInjected()

	d.updateTicks += elapsed
	if d.updateTicks >= periodicSweepInterval {
		d.updateTicks = 0
		for i := len(d.windows) - 1; i >= 0; i-- {
			d.windows[i].callPeriodic()
		}
	}

	for i := len(d.windows) - 1; i >= 0; i-- {
		w := d.windows[i]
		if w.Flags&FlagWhiteBorderMask != 0 {
			w.Flags -= flagWhiteBorderOne
			if w.Flags&FlagWhiteBorderMask == 0 {
				w.Invalidate()
			}
		}
	}

	d.processWheel()
}
