package sill

import (
	"fmt"
	"os"
	"sync"

	"github.com/fernwheel/sill/config"
)

// Desktop owns the ordered window list and every piece of scratch state the
// windowing system needs: the tool and textbox sessions, the
// current-window-colours slot, the previous wheel sample, and the dirty
// region sink. All methods must be called from the simulation tick
// goroutine; the only exception is the inject queue, which may be fed from
// anywhere.
type Desktop struct {
	cfg *config.Config

	screenWidth  int
	screenHeight int

	// windows is back-to-front z order. The backing array is preallocated
	// to the hard capacity so append never reallocates and pointers into
	// the slice header stay stable within a frame.
	windows []*Window

	invalidator Invalidator
	input       InputSource
	stepper     StepperPolicy

	// currentColours is the palette scratch snapshotted from the window
	// being painted; text and widget painting read it.
	currentColours [4]Colour

	prevWheel   int
	wheelPrimed bool

	tool    toolSession
	textbox textboxSession

	updateTicks int

	// rotation is the global camera rotation in quarter turns.
	rotation int

	// titleMode relaxes the minimum window Y to 1 (no toolbar on the
	// title screen).
	titleMode bool

	debug bool
	stats frameStats

	injectMu sync.Mutex
	injected []injectedEvent

	splitBuf []Rect
}

// NewDesktop creates an empty desktop for a screen of the given pixel size.
// cfg may be nil, in which case defaults apply.
func NewDesktop(cfg *config.Config, screenWidth, screenHeight int) *Desktop {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Desktop{
		cfg:          cfg,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		windows:      make([]*Window, 0, WindowLimitMax+WindowLimitReserved),
		stepper:      DefaultStepperPolicy{},
	}
}

// Config returns the configuration the desktop reads. The desktop does not
// own it; callers may mutate it between ticks.
func (d *Desktop) Config() *config.Config { return d.cfg }

// ScreenSize returns the current screen extent in pixels.
func (d *Desktop) ScreenSize() (width, height int) {
	return d.screenWidth, d.screenHeight
}

// SetScreenSize records a new screen extent and pulls any window that ended
// up off screen back into view.
func (d *Desktop) SetScreenSize(width, height int) {
	if width == d.screenWidth && height == d.screenHeight {
		return
	}
	d.screenWidth = width
	d.screenHeight = height
	d.RelocateWindows()
	d.InvalidateAll()
}

// SetInvalidator installs the dirty-region sink.
func (d *Desktop) SetInvalidator(inv Invalidator) { d.invalidator = inv }

// SetInputSource installs the input source consumed by Tick.
func (d *Desktop) SetInputSource(in InputSource) {
	d.input = in
	d.wheelPrimed = false
}

// SetStepperPolicy replaces the wheel-over-stepper heuristic. A nil policy
// disables the heuristic.
func (d *Desktop) SetStepperPolicy(p StepperPolicy) { d.stepper = p }

// SetTitleMode toggles title-screen layout rules.
func (d *Desktop) SetTitleMode(on bool) { d.titleMode = on }

// SetDebug toggles per-frame compositor statistics on stderr.
func (d *Desktop) SetDebug(on bool) { d.debug = on }

// CurrentWindowColours returns the palette slots of the window currently
// being painted. Only meaningful inside a paint callback.
func (d *Desktop) CurrentWindowColours() [4]Colour { return d.currentColours }

// markDirty forwards a screen rectangle to the dirty-region sink, clipped
// to the screen.
func (d *Desktop) markDirty(r Rect) {
	if d.invalidator == nil {
		return
	}
	r = r.Intersection(Rect{Width: d.screenWidth, Height: d.screenHeight})
	if r.Empty() {
		return
	}
	d.invalidator.MarkDirty(r)
}

// minWindowY returns the lowest Y a window's top edge may take.
func (d *Desktop) minWindowY() int {
	if d.titleMode {
		return 1
	}
	return d.cfg.ToolbarHeight + 2
}

// frameStats accumulates compositor work counts for the debug dump.
type frameStats struct {
	splits int
	paints int
}

func (d *Desktop) dumpStats() {
	if !d.debug {
		return
	}
	fmt.Fprintf(os.Stderr, "[sill] windows=%d splits=%d paints=%d\n",
		len(d.windows), d.stats.splits, d.stats.paints)
	d.stats = frameStats{}
}
