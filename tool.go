package sill

// ToolID tags the active tool shape; the set of tools is the caller's.
type ToolID uint8

// toolSession is the single global modal tool claim: one window and widget
// own the tool until it is cancelled or re-claimed.
type toolSession struct {
	active      bool
	tool        ToolID
	class       WindowClass
	number      WindowNumber
	widgetIndex WidgetIndex
}

// ToolActive reports whether any window holds the tool.
func (d *Desktop) ToolActive() bool { return d.tool.active }

// IsToolActive reports whether the given window and widget hold the tool.
func (d *Desktop) IsToolActive(w *Window, widgetIndex WidgetIndex) bool {
	return d.tool.active &&
		d.tool.class == w.Class && d.tool.number == w.Number &&
		d.tool.widgetIndex == widgetIndex
}

// CurrentTool returns the active tool id, or ok=false when none is active.
func (d *Desktop) CurrentTool() (tool ToolID, ok bool) {
	return d.tool.tool, d.tool.active
}

// SetTool claims the tool for the window and widget, cancelling whatever
// held it before. Claiming with the same window and widget toggles the tool
// off instead; the return value reports that toggle.
func (d *Desktop) SetTool(w *Window, widgetIndex WidgetIndex, tool ToolID) bool {
	if d.tool.active {
		if w.Class == d.tool.class && w.Number == d.tool.number &&
			widgetIndex == d.tool.widgetIndex {
			d.CancelTool()
			return true
		}
		d.CancelTool()
	}

	d.tool = toolSession{
		active:      true,
		tool:        tool,
		class:       w.Class,
		number:      w.Number,
		widgetIndex: widgetIndex,
	}
	return false
}

// CancelTool releases the tool: the holder's tool widget is invalidated
// and its tool-abort handler fires. No-op when no tool is active.
func (d *Desktop) CancelTool() {
	if !d.tool.active {
		return
	}
	d.tool.active = false

	if d.tool.widgetIndex != WidgetIndexNone {
		d.InvalidateWidgetByNumber(d.tool.class, d.tool.number, d.tool.widgetIndex)

		if w := d.FindByNumber(d.tool.class, d.tool.number); w != nil {
			w.callToolAbort(d.tool.widgetIndex)
		}
	}
}

// Tool gesture forwarding. Each resolves the holder and fires the matching
// handler; without an active tool they are no-ops.

func (d *Desktop) ToolUpdate(x, y int) {
	if w := d.toolWindow(); w != nil {
		w.callToolUpdate(d.tool.widgetIndex, x, y)
	}
}

func (d *Desktop) ToolDown(x, y int) {
	if w := d.toolWindow(); w != nil {
		w.callToolDown(d.tool.widgetIndex, x, y)
	}
}

func (d *Desktop) ToolDrag(x, y int) {
	if w := d.toolWindow(); w != nil {
		w.callToolDrag(d.tool.widgetIndex, x, y)
	}
}

func (d *Desktop) ToolUp(x, y int) {
	if w := d.toolWindow(); w != nil {
		w.callToolUp(d.tool.widgetIndex, x, y)
	}
}

func (d *Desktop) toolWindow() *Window {
	if !d.tool.active {
		return nil
	}
	return d.FindByNumber(d.tool.class, d.tool.number)
}
