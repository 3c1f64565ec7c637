package sill

import (
	"fmt"
	"os"
)

// debugEnabled turns widget-array sentinel checks into panics. Release
// callers leave it off and malformed arrays degrade to guarded no-ops.
var debugEnabled = false

// SetDebugChecks toggles the package-wide invariant assertions.
func SetDebugChecks(on bool) { debugEnabled = on }

// debugCheckWidgets panics when a widget array is not terminated by exactly
// one trailing sentinel. Only fires with debug checks on.
func debugCheckWidgets(widgets []Widget) {
	if !debugEnabled || widgets == nil {
		return
	}
	if len(widgets) == 0 {
		panic("sill debug: widget array has no terminator")
	}
	for i := range widgets {
		if widgets[i].Type == WidgetLast {
			if i != len(widgets)-1 {
				panic(fmt.Sprintf("sill debug: widget terminator at index %d of %d", i, len(widgets)))
			}
			return
		}
	}
	panic("sill debug: widget array has no terminator")
}

// debugWarnScrollCount warns on stderr when a window declares more scroll
// widgets than it has scroll states.
func debugWarnScrollCount(w *Window) {
	if !debugEnabled {
		return
	}
	n := 0
	for i := range w.Widgets {
		if w.Widgets[i].Type == WidgetLast {
			break
		}
		if w.Widgets[i].Type == WidgetScroll {
			n++
		}
	}
	if n > maxScrollsPerWindow {
		_, _ = fmt.Fprintf(os.Stderr, "[sill] warning: window class %d declares %d scroll widgets (max %d)\n",
			w.Class, n, maxScrollsPerWindow)
	}
}
