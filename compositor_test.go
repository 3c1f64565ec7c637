package sill

import "testing"

// stubTarget is a RenderTarget that draws nothing; clip tracking happens
// through the paint callbacks, which receive the narrowed bounds.
type stubTarget struct {
	bounds Rect
}

func (t stubTarget) Bounds() Rect                     { return t.bounds }
func (t stubTarget) SubRegion(r Rect) RenderTarget    { return stubTarget{t.bounds.Intersection(r)} }
func (t stubTarget) FillRect(Rect, Colour)            {}
func (t stubTarget) BevelRect(Rect, Colour, BevelStyle) {}
func (t stubTarget) Sprite(uint32, int, int, Colour)  {}

// paintRecorder collects the clip rect of every paint of one window.
func paintRecorder(clips *[]Rect) Events {
	return Events{Paint: func(w *Window, p *PaintInfo) {
		*clips = append(*clips, p.Clip)
	}}
}

func fullScreen(d *Desktop) Rect {
	w, h := d.ScreenSize()
	return Rect{Width: w, Height: h}
}

// --- DrawAll ---

func TestDrawAllSplitsAroundOverlap(t *testing.T) {
	d := newTestDesktop()
	var aClips, bClips []Rect
	a := d.Open(WindowDesc{
		Class: ClassCustomBase, Number: 1,
		X: 100, Y: 100, Width: 200, Height: 150,
		Events: paintRecorder(&aClips),
	})
	b := d.Open(WindowDesc{
		Class: ClassCustomBase, Number: 2,
		X: 150, Y: 120, Width: 100, Height: 100,
		Events: paintRecorder(&bClips),
	})

	d.DrawAll(stubTarget{bounds: fullScreen(d)}, fullScreen(d))

	// The lower window paints its area minus the overlap, in disjoint
	// pieces that never touch the higher window.
	overlap := a.Bounds().Intersection(b.Bounds())
	wantArea := a.Bounds().Area() - overlap.Area()
	gotArea := 0
	for i, r := range aClips {
		if r.Intersects(b.Bounds()) {
			t.Errorf("clip %v overlaps the higher window", r)
		}
		if inter := r.Intersection(a.Bounds()); inter != r {
			t.Errorf("clip %v leaks outside the window bounds", r)
		}
		for _, r2 := range aClips[:i] {
			if r.Intersects(r2) {
				t.Errorf("clips %v and %v overlap each other", r, r2)
			}
		}
		gotArea += r.Area()
	}
	if gotArea != wantArea {
		t.Errorf("painted area = %d, want %d", gotArea, wantArea)
	}

	if len(bClips) != 1 {
		t.Fatalf("higher window painted %d times, want 1", len(bClips))
	}
	if bClips[0] != b.Bounds() {
		t.Errorf("higher window clip = %v, want %v", bClips[0], b.Bounds())
	}
}

func TestDrawAllSkipsCoveredWindow(t *testing.T) {
	d := newTestDesktop()
	var underClips []Rect
	d.Open(WindowDesc{
		Class: ClassCustomBase, Number: 1,
		X: 120, Y: 120, Width: 50, Height: 50,
		Events: paintRecorder(&underClips),
	})
	d.Open(WindowDesc{
		Class: ClassCustomBase, Number: 2,
		X: 100, Y: 100, Width: 200, Height: 200,
	})

	d.DrawAll(stubTarget{bounds: fullScreen(d)}, fullScreen(d))

	if len(underClips) != 0 {
		t.Errorf("fully covered window painted %d times, want 0", len(underClips))
	}
}

func TestDrawAllRepaintsTransparentOverlay(t *testing.T) {
	d := newTestDesktop()
	var overlayClips []Rect
	base := d.Open(WindowDesc{
		Class: ClassCustomBase, Number: 1,
		X: 100, Y: 100, Width: 200, Height: 150,
	})
	d.Open(WindowDesc{
		Class: ClassOverlay, Number: 0,
		X: 150, Y: 120, Width: 80, Height: 40,
		Flags:  FlagTransparent,
		Events: paintRecorder(&overlayClips),
	})

	d.DrawAll(stubTarget{bounds: fullScreen(d)}, fullScreen(d))

	if len(overlayClips) == 0 {
		t.Fatal("transparent overlay never painted")
	}
	for _, r := range overlayClips {
		if inter := r.Intersection(base.Bounds()); inter != r {
			t.Errorf("overlay clip %v outside the base window", r)
		}
	}
}

func TestDrawAllHonoursRegion(t *testing.T) {
	d := newTestDesktop()
	var clips []Rect
	d.Open(WindowDesc{
		Class: ClassCustomBase, Number: 1,
		X: 100, Y: 100, Width: 200, Height: 150,
		Events: paintRecorder(&clips),
	})

	region := Rect{X: 150, Y: 150, Width: 40, Height: 40}
	d.DrawAll(stubTarget{bounds: fullScreen(d)}, region)

	if len(clips) != 1 {
		t.Fatalf("painted %d times, want 1", len(clips))
	}
	if clips[0] != region {
		t.Errorf("clip = %v, want %v", clips[0], region)
	}

	clips = clips[:0]
	d.DrawAll(stubTarget{bounds: fullScreen(d)}, Rect{X: 500, Y: 400, Width: 50, Height: 50})
	if len(clips) != 0 {
		t.Errorf("painted %d times for a region off the window, want 0", len(clips))
	}
}

// --- Visibility ---

func TestIsVisibleMemoizes(t *testing.T) {
	d := newTestDesktop()
	under := d.Open(WindowDesc{Class: ClassCustomBase, Number: 1, X: 120, Y: 120, Width: 50, Height: 50})
	cover := d.Open(WindowDesc{Class: ClassCustomBase, Number: 2, X: 100, Y: 100, Width: 200, Height: 200})

	if d.IsVisible(under) {
		t.Fatal("covered window reported visible")
	}

	// Moving the cover does not refresh the memo until the next reset.
	cover.X = 400
	if d.IsVisible(under) {
		t.Error("memoized answer changed mid-frame")
	}

	d.ResetVisibilities()
	if !d.IsVisible(under) {
		t.Error("window still covered after the cover moved and a reset")
	}
}

func TestIsVisibleMainAlways(t *testing.T) {
	d := newTestDesktop()
	main := d.Open(WindowDesc{Class: ClassMain, Number: 0, X: 0, Y: 0, Width: 640, Height: 480})
	d.Open(WindowDesc{Class: ClassCustomBase, Number: 1, X: 0, Y: 0, Width: 640, Height: 480})

	if !d.IsVisible(main) {
		t.Error("main window reported covered")
	}
}

func TestVisibilityMirrorsToViewport(t *testing.T) {
	d := newTestDesktop()
	under := d.Open(WindowDesc{Class: ClassCustomBase, Number: 1, X: 120, Y: 120, Width: 50, Height: 50})
	under.Viewport = NewViewport(Rect{X: 120, Y: 120, Width: 50, Height: 50})
	d.Open(WindowDesc{Class: ClassCustomBase, Number: 2, X: 100, Y: 100, Width: 200, Height: 200})

	d.IsVisible(under)
	if under.Viewport.Visibility != VisibilityCovered {
		t.Errorf("viewport visibility = %v, want covered", under.Viewport.Visibility)
	}

	d.ResetVisibilities()
	if under.Viewport.Visibility != VisibilityUnknown {
		t.Errorf("viewport visibility after reset = %v, want unknown", under.Viewport.Visibility)
	}
}

// --- Benchmarks ---

func BenchmarkDrawAllOverlapping(b *testing.B) {
	d := newTestDesktop()
	for i := 0; i < 12; i++ {
		d.Open(WindowDesc{
			Class: ClassCustomBase, Number: WindowNumber(i),
			X: 40 + i*30, Y: 40 + i*20, Width: 200, Height: 150,
		})
	}
	target := stubTarget{bounds: fullScreen(d)}
	region := fullScreen(d)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.ResetVisibilities()
		d.DrawAll(target, region)
	}
}
