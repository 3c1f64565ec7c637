package sill

// injectedEvent is deferred work queued for the tick goroutine.
type injectedEvent func()

// Inject queues fn to run at the start of the next Tick, on the tick
// goroutine. This is the only desktop method safe to call from another
// goroutine; a console or automation thread must marshal every window
// mutation through it rather than touching windows directly.
func (d *Desktop) Inject(fn func()) {
	if fn == nil {
		return
	}
	d.injectMu.Lock()
	d.injected = append(d.injected, fn)
	d.injectMu.Unlock()
}

// InjectCursorMove queues a synthetic cursor move. The desktop's input
// source must be a ScriptInput or the event is dropped.
func (d *Desktop) InjectCursorMove(x, y int) {
	d.Inject(func() {
		if in, ok := d.input.(*ScriptInput); ok {
			in.MoveTo(x, y)
		}
	})
}

// InjectWheel queues synthetic wheel clicks at the current synthetic
// cursor position; negative is wheel up. The desktop's input source must
// be a ScriptInput or the event is dropped.
func (d *Desktop) InjectWheel(clicks int) {
	d.Inject(func() {
		if in, ok := d.input.(*ScriptInput); ok {
			in.Spin(clicks)
		}
	})
}

// consumeInjected drains the queue and runs every entry in order.
func (d *Desktop) consumeInjected() {
	d.injectMu.Lock()
	pending := d.injected
	d.injected = nil
	d.injectMu.Unlock()

	for _, fn := range pending {
		fn()
	}
}
