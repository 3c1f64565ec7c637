package sill

// caretWrap is the frame count the caret blink counter wraps at.
const caretWrap = 30

// textboxSession is the single global text-entry claim: one widget edits
// text at a time.
type textboxSession struct {
	active      bool
	class       WindowClass
	number      WindowNumber
	widgetIndex WidgetIndex
	buffer      []rune
	maxLength   int
	caretFrame  int
}

// TextboxActive reports whether a widget is capturing text input.
func (d *Desktop) TextboxActive() bool { return d.textbox.active }

// IsTextboxActive reports whether the given widget is the one capturing
// text input.
func (d *Desktop) IsTextboxActive(w *Window, widgetIndex WidgetIndex) bool {
	return d.textbox.active &&
		d.textbox.class == w.Class && d.textbox.number == w.Number &&
		d.textbox.widgetIndex == widgetIndex
}

// TextboxText returns the current edit buffer.
func (d *Desktop) TextboxText() string { return string(d.textbox.buffer) }

// TextboxCaretVisible reports the blink phase: on for the first half of
// the caret cycle.
func (d *Desktop) TextboxCaretVisible() bool {
	return d.textbox.caretFrame <= caretWrap/2
}

// StartTextbox claims text input for the widget, cancelling any previous
// claim, seeding the buffer with existing and truncating it to maxLength
// runes.
func (d *Desktop) StartTextbox(w *Window, widgetIndex WidgetIndex, existing string, maxLength int) {
	if d.textbox.active {
		d.CancelTextbox()
	}

	buffer := []rune(existing)
	if maxLength > 0 && len(buffer) > maxLength {
		buffer = buffer[:maxLength]
	}
	d.textbox = textboxSession{
		active:      true,
		class:       w.Class,
		number:      w.Number,
		widgetIndex: widgetIndex,
		buffer:      buffer,
		maxLength:   maxLength,
	}
}

// CancelTextbox releases text input, reporting the cancellation to the
// holder through its text-input handler with ok=false.
func (d *Desktop) CancelTextbox() {
	if !d.textbox.active {
		return
	}
	w := d.FindByNumber(d.textbox.class, d.textbox.number)
	w.callTextInput(d.textbox.widgetIndex, "", false)
	d.textbox.active = false
	d.InvalidateWidget(w, d.textbox.widgetIndex)
	d.textbox.widgetIndex = WidgetIndexNone
	d.textbox.buffer = nil
}

// TextboxInsert appends text to the edit buffer, honouring the length
// limit, and commits the change to the holder.
func (d *Desktop) TextboxInsert(text string) {
	if !d.textbox.active {
		return
	}
	for _, r := range text {
		if d.textbox.maxLength > 0 && len(d.textbox.buffer) >= d.textbox.maxLength {
			break
		}
		d.textbox.buffer = append(d.textbox.buffer, r)
	}
	d.UpdateTextbox()
}

// TextboxBackspace removes the last rune and commits the change.
func (d *Desktop) TextboxBackspace() {
	if !d.textbox.active || len(d.textbox.buffer) == 0 {
		return
	}
	d.textbox.buffer = d.textbox.buffer[:len(d.textbox.buffer)-1]
	d.UpdateTextbox()
}

// UpdateTextboxCaret advances the caret blink counter one frame.
func (d *Desktop) UpdateTextboxCaret() {
	d.textbox.caretFrame++
	if d.textbox.caretFrame > caretWrap {
		d.textbox.caretFrame = 0
	}
}

// UpdateTextbox commits the current buffer to the holder: the caret resets
// to the visible phase, the widget is invalidated and the text-input
// handler receives the buffer with ok=true.
func (d *Desktop) UpdateTextbox() {
	if !d.textbox.active {
		return
	}
	d.textbox.caretFrame = 0
	w := d.FindByNumber(d.textbox.class, d.textbox.number)
	d.InvalidateWidget(w, d.textbox.widgetIndex)
	w.callTextInput(d.textbox.widgetIndex, string(d.textbox.buffer), true)
}
