package sill

import (
	"testing"

	"github.com/fernwheel/sill/config"
)

func newTestDesktop() *Desktop {
	return NewDesktop(config.Default(), 640, 480)
}

func openPlain(d *Desktop, class WindowClass, number WindowNumber) *Window {
	return d.Open(WindowDesc{
		Class: class, Number: number,
		X: 50, Y: 50, Width: 100, Height: 80,
	})
}

// --- Open ---

func TestOpenDefaultsSizeLimits(t *testing.T) {
	d := newTestDesktop()
	w := openPlain(d, ClassCustomBase, 0)
	if w == nil {
		t.Fatal("Open returned nil")
	}
	if w.MinWidth != 100 || w.MaxWidth != 100 {
		t.Errorf("width limits = [%d,%d], want [100,100]", w.MinWidth, w.MaxWidth)
	}
	if w.MinHeight != 80 || w.MaxHeight != 80 {
		t.Errorf("height limits = [%d,%d], want [80,80]", w.MinHeight, w.MaxHeight)
	}
	if w.Desktop() != d {
		t.Error("window not bound to its desktop")
	}
}

func TestOpenOrdersAroundStickyWindows(t *testing.T) {
	d := newTestDesktop()
	front := d.Open(WindowDesc{Class: ClassCustomBase, Number: 1, Width: 10, Height: 10, Flags: FlagStickToFront})
	back := d.Open(WindowDesc{Class: ClassCustomBase, Number: 2, Width: 10, Height: 10, Flags: FlagStickToBack})
	normal := openPlain(d, ClassCustomBase, 3)

	want := []*Window{back, normal, front}
	for i, w := range want {
		if d.windows[i] != w {
			t.Fatalf("windows[%d] = number %d, want number %d", i, d.windows[i].Number, w.Number)
		}
	}
}

func TestOpenEvictsOldestAtLimit(t *testing.T) {
	d := newTestDesktop()
	limit := d.windowLimit()
	closed := false
	d.Open(WindowDesc{
		Class: ClassCustomBase, Number: 0, Width: 10, Height: 10,
		Events: Events{Close: func(w *Window) { closed = true }},
	})
	for i := 1; i < limit; i++ {
		openPlain(d, ClassCustomBase, WindowNumber(i))
	}

	w := openPlain(d, ClassCustomBase, WindowNumber(limit))
	if w == nil {
		t.Fatal("Open at the limit returned nil, want eviction")
	}
	if !closed {
		t.Error("oldest window was not evicted")
	}
	if d.FindByNumber(ClassCustomBase, 0) != nil {
		t.Error("evicted window still registered")
	}
	if len(d.windows) != limit {
		t.Errorf("window count = %d, want %d", len(d.windows), limit)
	}
}

func TestOpenFailsWhenReserveExhausted(t *testing.T) {
	d := newTestDesktop()
	hard := d.windowLimit() + WindowLimitReserved
	for i := 0; i < hard; i++ {
		w := d.Open(WindowDesc{
			Class: ClassCustomBase, Number: WindowNumber(i),
			Width: 10, Height: 10, Flags: FlagNoAutoClose,
		})
		if w == nil {
			t.Fatalf("Open %d returned nil before the reserve was exhausted", i)
		}
	}
	if w := openPlain(d, ClassCustomBase, WindowNumber(hard)); w != nil {
		t.Error("Open beyond the reserve succeeded, want nil")
	}
}

// --- Close ---

func TestCloseReresolvesAfterCallback(t *testing.T) {
	d := newTestDesktop()
	w := openPlain(d, ClassCustomBase, 7)
	other := openPlain(d, ClassCustomBase, 8)

	// The close callback closes the window itself; the outer Close must
	// notice and not compact twice.
	w.Events.Close = func(w *Window) {
		w.Events.Close = nil
		w.Desktop().Close(w)
	}
	d.Close(w)

	if d.FindByNumber(ClassCustomBase, 7) != nil {
		t.Error("window survived Close")
	}
	if d.FindByNumber(ClassCustomBase, 8) != other {
		t.Error("unrelated window lost during Close")
	}
	if len(d.windows) != 1 {
		t.Errorf("window count = %d, want 1", len(d.windows))
	}
}

func TestCloseDetachesWindow(t *testing.T) {
	d := newTestDesktop()
	w := openPlain(d, ClassCustomBase, 1)
	w.Viewport = NewViewport(Rect{Width: 50, Height: 50})
	d.Close(w)
	if w.Viewport != nil {
		t.Error("viewport not released on close")
	}
	if w.Desktop() != nil {
		t.Error("closed window still bound to desktop")
	}
}

func TestCloseByClassSurvivesReopeningCallback(t *testing.T) {
	d := newTestDesktop()
	// Closing the first window opens a replacement of the same class; the
	// restart scan must close that one too.
	reopened := false
	d.Open(WindowDesc{
		Class: ClassError, Number: 1, Width: 10, Height: 10,
		Events: Events{Close: func(w *Window) {
			if !reopened {
				reopened = true
				w.Desktop().Open(WindowDesc{Class: ClassError, Number: 2, Width: 10, Height: 10})
			}
		}},
	})

	d.CloseByClass(ClassError)
	if d.FindByClass(ClassError) != nil {
		t.Error("a window of the class survived CloseByClass")
	}
}

func TestCloseTopSkipsStickyAndDismissesDropdown(t *testing.T) {
	d := newTestDesktop()
	openPlain(d, ClassCustomBase, 1)
	d.Open(WindowDesc{Class: ClassCustomBase, Number: 2, Width: 10, Height: 10, Flags: FlagStickToFront})
	openPlain(d, ClassDropdown, 0)

	d.CloseTop()

	if d.FindByClass(ClassDropdown) != nil {
		t.Error("dropdown survived CloseTop")
	}
	if d.FindByNumber(ClassCustomBase, 1) != nil {
		t.Error("topmost non-sticky window survived CloseTop")
	}
	if d.FindByNumber(ClassCustomBase, 2) == nil {
		t.Error("sticky window closed by CloseTop")
	}
}

func TestCloseAllExceptClass(t *testing.T) {
	d := newTestDesktop()
	openPlain(d, ClassCustomBase, 1)
	openPlain(d, ClassOptions, 0)
	d.Open(WindowDesc{Class: ClassCustomBase, Number: 2, Width: 10, Height: 10, Flags: FlagStickToBack})

	d.CloseAllExceptClass(ClassOptions)

	if d.FindByNumber(ClassCustomBase, 1) != nil {
		t.Error("plain window survived")
	}
	if d.FindByClass(ClassOptions) == nil {
		t.Error("excepted class was closed")
	}
	if d.FindByNumber(ClassCustomBase, 2) == nil {
		t.Error("sticky window was closed")
	}
}

// --- SetWindowLimit ---

func TestSetWindowLimitClosesSurplus(t *testing.T) {
	d := newTestDesktop()
	d.Config().WindowLimit = WindowLimitMax

	openPlain(d, ClassCustomBase, 0)
	openPlain(d, ClassOptions, 0)
	for i := 1; i < 39; i++ {
		openPlain(d, ClassCustomBase, WindowNumber(i))
	}

	d.SetWindowLimit(WindowLimitMin)

	if d.FindByClass(ClassOptions) == nil {
		t.Error("options window closed by SetWindowLimit")
	}
	if d.FindByNumber(ClassCustomBase, 0) != nil {
		t.Error("oldest closeable window survived the shrink")
	}
	// Once the options window is the oldest closeable it soaks up the
	// remaining attempts, so only one window actually closes.
	if got := len(d.windows); got != 39 {
		t.Errorf("window count = %d, want 39", got)
	}
}

// --- Find ---

func TestFindFromPointTopmostWins(t *testing.T) {
	d := newTestDesktop()
	below := d.Open(WindowDesc{Class: ClassCustomBase, Number: 1, X: 0, Y: 0, Width: 100, Height: 100})
	above := d.Open(WindowDesc{Class: ClassCustomBase, Number: 2, X: 50, Y: 50, Width: 100, Height: 100})

	if got := d.FindFromPoint(60, 60); got != above {
		t.Errorf("FindFromPoint(60,60) = number %v, want the topmost window", got)
	}
	if got := d.FindFromPoint(10, 10); got != below {
		t.Errorf("FindFromPoint(10,10) = %v, want the lower window", got)
	}
	if got := d.FindFromPoint(400, 400); got != nil {
		t.Errorf("FindFromPoint outside all windows = %v, want nil", got)
	}
}

func TestFindFromPointNoBackgroundNeedsWidget(t *testing.T) {
	d := newTestDesktop()
	w := d.Open(WindowDesc{
		Class: ClassCustomBase, Number: 1,
		X: 0, Y: 0, Width: 200, Height: 200,
		Flags: FlagNoBackground,
		Widgets: []Widget{
			{Type: WidgetButton, Rect: Rect{X: 10, Y: 10, Width: 20, Height: 20}},
			WidgetsEnd,
		},
	})

	if got := d.FindFromPoint(15, 15); got != w {
		t.Error("point on a widget missed the no-background window")
	}
	if got := d.FindFromPoint(100, 100); got != nil {
		t.Errorf("point off every widget hit the no-background window, got %v", got)
	}
}

// --- BringToFront ---

func TestBringToFrontReorders(t *testing.T) {
	d := newTestDesktop()
	a := openPlain(d, ClassCustomBase, 1)
	b := openPlain(d, ClassCustomBase, 2)
	sticky := d.Open(WindowDesc{Class: ClassCustomBase, Number: 3, Width: 10, Height: 10, Flags: FlagStickToFront})

	d.BringToFront(a)

	want := []*Window{b, a, sticky}
	for i, w := range want {
		if d.windows[i] != w {
			t.Fatalf("windows[%d] = number %d, want number %d", i, d.windows[i].Number, w.Number)
		}
	}
}

func TestBringToFrontNudgesOnScreen(t *testing.T) {
	d := newTestDesktop()
	w := d.Open(WindowDesc{Class: ClassCustomBase, Number: 1, X: -200, Y: 60, Width: 100, Height: 80})
	w.Viewport = NewViewport(Rect{X: -200, Y: 60, Width: 100, Height: 80})

	d.BringToFront(w)

	if got := w.X + w.Width; got != frontVisibleEdge {
		t.Errorf("right edge after nudge = %d, want %d", got, frontVisibleEdge)
	}
	if w.Viewport.X != w.X {
		t.Errorf("viewport x = %d, want %d", w.Viewport.X, w.X)
	}
}

func TestBringToFrontByNumberFlashes(t *testing.T) {
	d := newTestDesktop()
	openPlain(d, ClassCustomBase, 1)
	w := d.BringToFrontByNumber(ClassCustomBase, 1)
	if w == nil {
		t.Fatal("BringToFrontByNumber returned nil for an open window")
	}
	if w.Flags&FlagWhiteBorderMask == 0 {
		t.Error("raised window does not flash")
	}
	if got := d.BringToFrontByNumber(ClassCustomBase, 99); got != nil {
		t.Errorf("BringToFrontByNumber of a missing window = %v, want nil", got)
	}
}

// --- Invalidation ---

func TestInvalidateWidgetSkipsHidden(t *testing.T) {
	d := newTestDesktop()
	var dirty DirtyRegion
	d.SetInvalidator(&dirty)
	w := d.Open(WindowDesc{
		Class: ClassCustomBase, Number: 1,
		X: 10, Y: 40, Width: 100, Height: 100,
		Widgets: []Widget{
			{Type: WidgetButton, Rect: Rect{X: -2, Y: 10, Width: 20, Height: 20}},
			{Type: WidgetButton, Rect: Rect{X: 5, Y: 40, Width: 20, Height: 20}},
			WidgetsEnd,
		},
	})
	dirty.Take()

	d.InvalidateWidget(w, 0)
	if _, ok := dirty.Take(); ok {
		t.Error("hidden widget produced a dirty rect")
	}

	d.InvalidateWidget(w, 1)
	r, ok := dirty.Take()
	if !ok {
		t.Fatal("visible widget produced no dirty rect")
	}
	want := Rect{X: 15, Y: 80, Width: 21, Height: 21}
	if r != want {
		t.Errorf("dirty rect = %v, want %v", r, want)
	}
}

func TestMarkDirtyClipsToScreen(t *testing.T) {
	d := newTestDesktop()
	var dirty DirtyRegion
	d.SetInvalidator(&dirty)

	d.markDirty(Rect{X: 600, Y: 400, Width: 200, Height: 200})
	r, ok := dirty.Take()
	if !ok {
		t.Fatal("no dirty rect recorded")
	}
	want := Rect{X: 600, Y: 400, Width: 40, Height: 80}
	if r != want {
		t.Errorf("dirty rect = %v, want %v", r, want)
	}

	d.markDirty(Rect{X: 700, Y: 500, Width: 10, Height: 10})
	if _, ok := dirty.Take(); ok {
		t.Error("fully off-screen rect reached the invalidator")
	}
}
