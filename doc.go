// Package sill is the window manager of a real-time simulation game built
// on [Ebitengine]: a stack of overlapping panels with widgets, scrollbars,
// viewports into the game world, and the compositing and input routing
// that tie them together.
//
// # Quick start
//
// A [Desktop] owns every window. Create one, give it an input source and a
// dirty-region sink, and open windows with [Desktop.Open]:
//
//	d := sill.NewDesktop(nil, 1280, 720)
//	d.SetInvalidator(&sill.DirtyRegion{})
//	d.SetInputSource(sill.NewEbitenInput(nil))
//
//	w := d.Open(sill.WindowDesc{
//		Class: sill.ClassCustomBase, X: 40, Y: 60, Width: 300, Height: 200,
//		Widgets: []sill.Widget{
//			{Type: sill.WidgetFrame, Rect: sill.Rect{Width: 300, Height: 200}},
//			sill.WidgetsEnd,
//		},
//		Events: sill.Events{Paint: paintMyWindow},
//	})
//
// Each simulation tick, run dispatch and housekeeping; each frame, reset
// the visibility cache and redraw the dirty region:
//
//	d.UpdateWindows()
//	d.Tick(1)
//	d.UpdateViewports(dt)
//
//	d.ResetVisibilities()
//	if r, ok := dirty.Take(); ok {
//		d.DrawAll(target, r)
//	}
//
// # Windows and events
//
// Windows are identified by a (class, number) pair, never by pointer
// identity across registry mutations: any callback that can close windows
// may compact the list, so re-resolve with [Desktop.FindByNumber]
// afterwards. Behaviour is attached through [Events], a table of optional
// callbacks; a nil entry is a documented no-op.
//
// The compositor splits the dirty region around opaque overlapping
// windows so every visible pixel is painted exactly once, then lets
// transparent overlays repaint above. Paint callbacks receive a
// [PaintInfo] whose target is already clipped; [RenderTarget] is the
// drawing boundary, with an ebiten implementation in [NewEbitenTarget].
//
// Layout behaviour lives on the desktop: edge snapping within a proximity
// threshold ([Desktop.MoveAndSnap]), pushing overlapping windows aside,
// viewport zoom with an anchor kept under the cursor, and scroll-to-
// location glides.
//
// Configuration is read from the config sub-package; saved window layouts
// persist through the layoutstore sub-package.
//
// [Ebitengine]: https://ebitengine.org
package sill
