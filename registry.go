package sill

// WindowDesc describes a window to open. Zero min/max sizes default to the
// initial size, making the window fixed-size unless FlagResizable is set
// together with explicit limits.
type WindowDesc struct {
	Class  WindowClass
	Number WindowNumber

	X, Y          int
	Width, Height int
	MinWidth      int
	MinHeight     int
	MaxWidth      int
	MaxHeight     int

	Flags   WindowFlags
	Colours [4]Colour
	Widgets []Widget
	Events  Events
	State   any
}

// Open creates a window and inserts it into the z order. When the window
// count has reached the configured limit the oldest closeable window is
// evicted first; if even the reserved headroom is exhausted Open returns
// nil and no window is created.
//
// New windows open on top of everything except sticky-to-front windows;
// a sticky-to-back window sinks straight to the back.
func (d *Desktop) Open(desc WindowDesc) *Window {
	if len(d.windows) >= d.windowLimit() {
		d.evictOldest()
	}
	if len(d.windows) >= d.windowLimit()+WindowLimitReserved {
		return nil
	}

	w := &Window{
		Class:     desc.Class,
		Number:    desc.Number,
		X:         desc.X,
		Y:         desc.Y,
		Width:     desc.Width,
		Height:    desc.Height,
		MinWidth:  desc.MinWidth,
		MinHeight: desc.MinHeight,
		MaxWidth:  desc.MaxWidth,
		MaxHeight: desc.MaxHeight,
		Flags:     desc.Flags,
		Colours:   desc.Colours,
		Widgets:   desc.Widgets,
		Events:    desc.Events,
		State:     desc.State,
		desk:      d,
	}
	if w.MinWidth == 0 {
		w.MinWidth = w.Width
	}
	if w.MinHeight == 0 {
		w.MinHeight = w.Height
	}
	if w.MaxWidth == 0 {
		w.MaxWidth = w.Width
	}
	if w.MaxHeight == 0 {
		w.MaxHeight = w.Height
	}
	for i := range w.Scrolls {
		w.Scrolls[i].HRight = scrollExtentUndefined
		w.Scrolls[i].VBottom = scrollExtentUndefined
	}
	debugCheckWidgets(w.Widgets)
	debugWarnScrollCount(w)

	d.windows = append(d.windows, w)
	i := len(d.windows) - 1
	switch {
	case w.Flags&FlagStickToBack != 0:
		for i > 0 && d.windows[i-1].Flags&FlagStickToBack == 0 {
			d.windows[i], d.windows[i-1] = d.windows[i-1], d.windows[i]
			i--
		}
	case w.Flags&FlagStickToFront == 0:
		for i > 0 && d.windows[i-1].Flags&FlagStickToFront != 0 {
			d.windows[i], d.windows[i-1] = d.windows[i-1], d.windows[i]
			i--
		}
	}

	w.callInvalidate()
	w.UpdateScrollWidgets()
	w.Invalidate()
	return w
}

// evictOldest closes the least recently created window that is neither
// sticky nor marked no-auto-close. Does nothing when every window is
// protected.
func (d *Desktop) evictOldest() {
	for _, w := range d.windows {
		if w.Flags&(FlagStickToBack|FlagStickToFront|FlagNoAutoClose) == 0 {
			d.Close(w)
			return
		}
	}
}

// windowLimit returns the configured window cap clamped to the supported
// range.
func (d *Desktop) windowLimit() int {
	return clamp(WindowLimitMin, d.cfg.WindowLimit, WindowLimitMax)
}

// SetWindowLimit changes the window cap. Shrinking the cap closes surplus
// windows, never touching the options window.
func (d *Desktop) SetWindowLimit(limit int) {
	prev := d.windowLimit()
	d.cfg.WindowLimit = clamp(WindowLimitMin, limit, WindowLimitMax)
	if d.cfg.WindowLimit < prev {
		d.closeSurplus(d.cfg.WindowLimit, ClassOptions)
	}
}

// closeSurplus closes enough windows to bring the count back under limit,
// oldest closeable first. A closeable window of avoidClass consumes one
// closing attempt without being closed.
func (d *Desktop) closeSurplus(limit int, avoidClass WindowClass) {
	diff := len(d.windows) - WindowLimitReserved - limit
	for i := 0; i < diff; i++ {
		var found *Window
		for _, w := range d.windows {
			if w.Flags&(FlagStickToBack|FlagStickToFront|FlagNoAutoClose) == 0 {
				found = w
				break
			}
		}
		if found == nil {
			break
		}
		if avoidClass != ClassNone && found.Class == avoidClass {
			continue
		}
		d.Close(found)
	}
}

// Close fires the window's close callback and removes it from the desktop.
// The callback may itself mutate the registry, so the window is re-resolved
// by identity afterwards; if the callback already closed it there is
// nothing left to do.
func (d *Desktop) Close(w *Window) {
	if w == nil {
		return
	}
	class, number := w.Class, w.Number

	w.callClose()

	w = d.FindByNumber(class, number)
	if w == nil {
		return
	}

	w.Viewport = nil
	w.Invalidate()

	for i, lw := range d.windows {
		if lw == w {
			copy(d.windows[i:], d.windows[i+1:])
			d.windows = d.windows[:len(d.windows)-1]
			break
		}
	}
	w.desk = nil
}

// CloseByClass closes every window of the given class. The scan restarts
// from the back after each close, so close callbacks that open or close
// further windows cannot make a live match survive.
func (d *Desktop) CloseByClass(class WindowClass) {
	for {
		closed := false
		for _, w := range d.windows {
			if w.Class == class {
				d.Close(w)
				closed = true
				break
			}
		}
		if !closed {
			return
		}
	}
}

// CloseByNumber closes every window with the given identity.
func (d *Desktop) CloseByNumber(class WindowClass, number WindowNumber) {
	for {
		closed := false
		for _, w := range d.windows {
			if w.Class == class && w.Number == number {
				d.Close(w)
				closed = true
				break
			}
		}
		if !closed {
			return
		}
	}
}

// CloseTop closes the topmost non-sticky window, dismissing any open
// dropdown first.
func (d *Desktop) CloseTop() {
	d.CloseByClass(ClassDropdown)
	for i := len(d.windows) - 1; i >= 0; i-- {
		w := d.windows[i]
		if w.Flags&(FlagStickToBack|FlagStickToFront) == 0 {
			d.Close(w)
			return
		}
	}
}

// CloseAll closes every window that is not sticky, dismissing any open
// dropdown first.
func (d *Desktop) CloseAll() {
	d.CloseByClass(ClassDropdown)
	d.CloseAllExceptFlags(FlagStickToBack | FlagStickToFront)
}

// CloseAllExceptClass closes every non-sticky window not of the given class.
func (d *Desktop) CloseAllExceptClass(class WindowClass) {
	d.CloseByClass(ClassDropdown)
	for {
		closed := false
		for _, w := range d.windows {
			if w.Class == class {
				continue
			}
			if w.Flags&(FlagStickToBack|FlagStickToFront) != 0 {
				continue
			}
			d.Close(w)
			closed = true
			break
		}
		if !closed {
			return
		}
	}
}

// CloseAllExceptFlags closes every window carrying none of the given flags.
func (d *Desktop) CloseAllExceptFlags(flags WindowFlags) {
	for {
		closed := false
		for _, w := range d.windows {
			if w.Flags&flags == 0 {
				d.Close(w)
				closed = true
				break
			}
		}
		if !closed {
			return
		}
	}
}

// FindByClass returns the first window of the given class in storage
// (creation) order, or nil.
func (d *Desktop) FindByClass(class WindowClass) *Window {
	for _, w := range d.windows {
		if w.Class == class {
			return w
		}
	}
	return nil
}

// FindByNumber returns the first window with the given identity, or nil.
func (d *Desktop) FindByNumber(class WindowClass, number WindowNumber) *Window {
	for _, w := range d.windows {
		if w.Class == class && w.Number == number {
			return w
		}
	}
	return nil
}

// FindFromPoint returns the topmost window under the screen point (x, y),
// or nil. Windows flagged no-background only count where one of their
// widgets is hit.
func (d *Desktop) FindFromPoint(x, y int) *Window {
	for i := len(d.windows) - 1; i >= 0; i-- {
		w := d.windows[i]
		if !w.Bounds().Contains(x, y) {
			continue
		}
		if w.Flags&FlagNoBackground != 0 {
			if d.FindWidgetFromPoint(w, x, y) == WidgetIndexNone {
				continue
			}
		}
		return w
	}
	return nil
}

// GetMain returns the main (world view) window, or nil before it opens.
func (d *Desktop) GetMain() *Window {
	return d.FindByClass(ClassMain)
}

// BringToFront raises the window to the highest slot below any
// sticky-to-front windows, preserving the relative order of everything it
// passes, then nudges it right if less than 20 px of it would be on screen.
// Sticky windows are left where they are.
func (d *Desktop) BringToFront(w *Window) *Window {
	if w == nil || w.Flags&(FlagStickToBack|FlagStickToFront) != 0 {
		return w
	}

	i := -1
	for j, lw := range d.windows {
		if lw == w {
			i = j
			break
		}
	}
	if i < 0 {
		return w
	}

	moved := false
	for i+1 < len(d.windows) && d.windows[i+1].Flags&FlagStickToFront == 0 {
		d.windows[i], d.windows[i+1] = d.windows[i+1], d.windows[i]
		i++
		moved = true
	}
	if moved {
		w.Invalidate()
	}

	if w.X+w.Width < frontVisibleEdge {
		dx := frontVisibleEdge - w.X - w.Width
		w.X += dx
		if w.Viewport != nil {
			w.Viewport.X += dx
		}
		w.Invalidate()
	}
	return w
}

// BringToFrontByClass raises the first window of the given class, flashing
// its border. Returns the window, or nil if none is open.
func (d *Desktop) BringToFrontByClass(class WindowClass) *Window {
	return d.bringToFrontWithFlash(d.FindByClass(class))
}

// BringToFrontByNumber raises the window with the given identity, flashing
// its border. Returns the window, or nil if none is open.
func (d *Desktop) BringToFrontByNumber(class WindowClass, number WindowNumber) *Window {
	return d.bringToFrontWithFlash(d.FindByNumber(class, number))
}

func (d *Desktop) bringToFrontWithFlash(w *Window) *Window {
	if w == nil {
		return nil
	}
	w.Flags |= FlagWhiteBorderMask
	w.Invalidate()
	return d.BringToFront(w)
}

// InvalidateAll marks every window's area dirty.
func (d *Desktop) InvalidateAll() {
	for _, w := range d.windows {
		w.Invalidate()
	}
}

// InvalidateByClass marks every window of the given class dirty.
func (d *Desktop) InvalidateByClass(class WindowClass) {
	for _, w := range d.windows {
		if w.Class == class {
			w.Invalidate()
		}
	}
}

// InvalidateByNumber marks every window with the given identity dirty.
func (d *Desktop) InvalidateByNumber(class WindowClass, number WindowNumber) {
	for _, w := range d.windows {
		if w.Class == class && w.Number == number {
			w.Invalidate()
		}
	}
}

// InvalidateWidget marks one widget's screen area dirty. Widgets parked at
// X == -2 are hidden and stay clean.
func (d *Desktop) InvalidateWidget(w *Window, widgetIndex WidgetIndex) {
	if w == nil || widgetIndex < 0 || widgetIndex >= WidgetIndex(len(w.Widgets)) {
		return
	}
	widget := &w.Widgets[widgetIndex]
	if widget.Rect.X == -2 {
		return
	}
	d.markDirty(Rect{
		X:      w.X + widget.Rect.X,
		Y:      w.Y + widget.Rect.Y,
		Width:  widget.Rect.Width + 1,
		Height: widget.Rect.Height + 1,
	})
}

// InvalidateWidgetByClass marks one widget dirty on every window of the
// given class.
func (d *Desktop) InvalidateWidgetByClass(class WindowClass, widgetIndex WidgetIndex) {
	for _, w := range d.windows {
		if w.Class == class {
			d.InvalidateWidget(w, widgetIndex)
		}
	}
}

// InvalidateWidgetByNumber marks one widget dirty on every window with the
// given identity.
func (d *Desktop) InvalidateWidgetByNumber(class WindowClass, number WindowNumber, widgetIndex WidgetIndex) {
	for _, w := range d.windows {
		if w.Class == class && w.Number == number {
			d.InvalidateWidget(w, widgetIndex)
		}
	}
}
