package sill

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsState is the per-window state of the FPS overlay.
type fpsState struct {
	sinceUpdate float64
	text        string
}

// OpenFPSOverlay opens a small transparent sticky-front window in the top
// right corner showing the actual FPS and TPS, refreshed every half
// second. Returns nil if the overlay is already open.
func OpenFPSOverlay(d *Desktop) *Window {
	if d.FindByClass(ClassOverlay) != nil {
		return nil
	}
	screenW, _ := d.ScreenSize()
	const w, h = 100, 32

	return d.Open(WindowDesc{
		Class:  ClassOverlay,
		X:      screenW - w - 4,
		Y:      4,
		Width:  w,
		Height: h,
		Flags:  FlagTransparent | FlagStickToFront | FlagNoAutoClose,
		State:  &fpsState{},
		Events: Events{
			Update: fpsUpdate,
			Paint:  fpsPaint,
		},
	})
}

func fpsUpdate(w *Window) {
	s := w.State.(*fpsState)
	s.sinceUpdate += 1.0 / float64(ebiten.TPS())
	if s.sinceUpdate < 0.5 {
		return
	}
	s.sinceUpdate = 0
	s.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	w.Invalidate()
}

func fpsPaint(w *Window, p *PaintInfo) {
	s := w.State.(*fpsState)
	p.Target.FillRect(w.Bounds(), ColourTranslucent)
	if t, ok := p.Target.(*EbitenTarget); ok {
		ebitenutil.DebugPrintAt(t.img, s.text, w.X+2, w.Y+2)
	}
}
