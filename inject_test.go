package sill

import (
	"sync"
	"testing"
)

// --- Marshalling ---

func TestInjectRunsOnTick(t *testing.T) {
	d := newTestDesktop()
	ran := false
	d.Inject(func() { ran = true })

	if ran {
		t.Fatal("injected work ran before the tick")
	}
	d.Tick(1)
	if !ran {
		t.Error("injected work did not run on the tick")
	}
}

func TestInjectPreservesOrder(t *testing.T) {
	d := newTestDesktop()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		d.Inject(func() { order = append(order, i) })
	}
	d.Tick(1)

	for i, got := range order {
		if got != i {
			t.Fatalf("order = %v, want ascending", order)
		}
	}
	if len(order) != 5 {
		t.Fatalf("ran %d of 5 injected entries", len(order))
	}
}

func TestInjectFromOtherGoroutines(t *testing.T) {
	d := newTestDesktop()
	var wg sync.WaitGroup
	var mu sync.Mutex
	count := 0

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Inject(func() {
				mu.Lock()
				count++
				mu.Unlock()
			})
		}()
	}
	wg.Wait()
	d.Tick(1)

	if count != 8 {
		t.Errorf("ran %d of 8 injected entries", count)
	}
}

func TestInjectNilIgnored(t *testing.T) {
	d := newTestDesktop()
	d.Inject(nil)
	d.Tick(1) // must not panic
}

func TestInjectCursorAndWheelNeedScriptInput(t *testing.T) {
	d := newTestDesktop()
	// With an incompatible input source the synthetic events are dropped.
	d.InjectCursorMove(10, 10)
	d.InjectWheel(3)
	d.Tick(1)

	in := &ScriptInput{}
	d.SetInputSource(in)
	d.InjectCursorMove(42, 24)
	d.InjectWheel(-2)
	d.Tick(1)

	if in.X != 42 || in.Y != 24 {
		t.Errorf("cursor = (%d,%d), want (42,24)", in.X, in.Y)
	}
	if in.Wheel != -2 {
		t.Errorf("wheel = %d, want -2", in.Wheel)
	}
}
