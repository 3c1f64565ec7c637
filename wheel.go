package sill

// processWheel routes accumulated wheel movement. The delta comes from the
// absolute wheel counter so missed frames lose no clicks. Routing order:
// the viewport of a main/viewport window zooms; a scrollbar-bearing widget
// under the cursor scrolls; a stepper-shaped widget cluster steps; any
// other widget hit falls back to the window's first visible scrollbar.
func (d *Desktop) processWheel() {
	if d.input == nil {
		return
	}
	absolute := d.input.WheelCounter()
	if !d.wheelPrimed {
		d.prevWheel = absolute
		d.wheelPrimed = true
	}
	relative := absolute - d.prevWheel
	pixels := relative * d.cfg.ScrollPixels
	d.prevWheel = absolute

	if relative == 0 {
		return
	}
	if d.input.ModalActive() {
		return
	}

	x, y := d.input.CursorPosition()
	w := d.FindFromPoint(x, y)
	if w == nil {
		return
	}

	if w.Class == ClassMain || w.Class == ClassViewport {
		d.viewportWheelInput(w, relative)
		return
	}

	widgetIndex := d.FindWidgetFromPoint(w, x, y)
	if widgetIndex == WidgetIndexNone {
		return
	}
	widget := &w.Widgets[widgetIndex]

	if widget.Type == WidgetScroll {
		scrollIndex := w.scrollIndexOf(widgetIndex)
		if scrollIndex >= 0 && scrollIndex < maxScrollsPerWindow &&
			w.Scrolls[scrollIndex].Flags&(ScrollHVisible|ScrollVVisible) != 0 {
			d.scrollWheelInput(w, scrollIndex, pixels)
			return
		}
	} else if d.stepper != nil && d.stepper.HandleWheel(w, widgetIndex, pixels) {
		return
	}

	d.windowWheelInput(w, pixels)
}

// viewportWheelInput zooms the window's viewport; wheel up (negative)
// zooms in. Suppressed in title mode.
func (d *Desktop) viewportWheelInput(w *Window, wheel int) {
	if d.titleMode {
		return
	}
	if wheel < 0 {
		d.ZoomIn(w, true)
	} else if wheel > 0 {
		d.ZoomOut(w, true)
	}
}

// StepperPolicy decides whether a wheel movement over a non-scroll widget
// should step a numeric value, and performs the step. Reports whether the
// wheel was consumed.
type StepperPolicy interface {
	HandleWheel(w *Window, widgetIndex WidgetIndex, pixels int) bool
}

// DefaultStepperPolicy recognises the two stepper shapes of the classic
// toolkit: an image button followed by a flat decrease/increase button
// pair, and a stepper followed by an up/down button pair. The wheel may
// also land on one of the buttons themselves; the policy walks back up to
// two widgets to find the cluster head. A step is a simulated mouse-down
// on the matching button.
//
// The optional content fields pin the match to exact button images and
// strings; zero values match any content.
type DefaultStepperPolicy struct {
	DecreaseImage uint32
	IncreaseImage uint32
	UpString      StringID
	DownString    StringID
}

func (p DefaultStepperPolicy) HandleWheel(w *Window, widgetIndex WidgetIndex, pixels int) bool {
	widgetType := w.Widgets[widgetIndex].Type

	// Walk back to the cluster head if the cursor is over a button.
	attempts := 0
	for widgetType != WidgetImageButton && widgetType != WidgetStepper && widgetIndex > 0 {
		switch widgetType {
		case WidgetFlatButton, WidgetButton:
			if attempts > 0 {
				// The two buttons of a pair share a type.
				if w.Widgets[widgetIndex+1].Type != widgetType {
					return false
				}
			}
		default:
			return false
		}

		attempts++
		if attempts > 2 {
			return false
		}

		widgetIndex--
		widgetType = w.Widgets[widgetIndex].Type
	}

	if widgetIndex+2 >= WidgetIndex(len(w.Widgets)) {
		return false
	}

	var buttonIndex WidgetIndex
	var expectedType WidgetType
	switch widgetType {
	case WidgetImageButton:
		if pixels < 0 {
			buttonIndex = widgetIndex + 2
		} else {
			buttonIndex = widgetIndex + 1
		}
		expectedType = WidgetFlatButton
		b1, b2 := &w.Widgets[widgetIndex+1], &w.Widgets[widgetIndex+2]
		if b1.Type != expectedType || b2.Type != expectedType {
			return false
		}
		if p.DecreaseImage != 0 && b1.Content != p.DecreaseImage {
			return false
		}
		if p.IncreaseImage != 0 && b2.Content != p.IncreaseImage {
			return false
		}
	case WidgetStepper:
		if pixels < 0 {
			buttonIndex = widgetIndex + 1
		} else {
			buttonIndex = widgetIndex + 2
		}
		expectedType = WidgetButton
		b1, b2 := &w.Widgets[widgetIndex+1], &w.Widgets[widgetIndex+2]
		if b1.Type != expectedType || b2.Type != expectedType {
			return false
		}
		if p.UpString != 0 && b1.Text != p.UpString {
			return false
		}
		if p.DownString != 0 && b2.Text != p.DownString {
			return false
		}
	default:
		return false
	}

	if w.IsWidgetDisabled(buttonIndex) {
		return false
	}

	w.CallMouseDown(buttonIndex)
	return true
}
