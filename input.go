package sill

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSource supplies the cursor and wheel state the desktop consumes on
// every Tick. The wheel is an absolute counter: the desktop keeps the
// previous sample and reacts to the difference, so clicks accumulated over
// a slow frame are never lost.
type InputSource interface {
	CursorPosition() (x, y int)
	WheelCounter() int
	// ModalActive reports whether a modal input capture (active tool drag,
	// widget drag) should suppress wheel routing this tick.
	ModalActive() bool
}

// EbitenInput adapts ebiten's mouse state to the InputSource interface.
// Call Update once per ebiten Update to accumulate the wheel counter.
type EbitenInput struct {
	wheel      float64
	modalCheck func() bool
}

// NewEbitenInput creates an input source. modalCheck may be nil; it is
// polled by ModalActive.
func NewEbitenInput(modalCheck func() bool) *EbitenInput {
	return &EbitenInput{modalCheck: modalCheck}
}

// Update accumulates this frame's wheel movement. Wheel up counts
// negative, matching zoom-in on wheel-up.
func (in *EbitenInput) Update() {
	_, dy := ebiten.Wheel()
	in.wheel -= dy
}

// CursorPosition returns the mouse position in screen pixels.
func (in *EbitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// WheelCounter returns the accumulated wheel clicks.
func (in *EbitenInput) WheelCounter() int {
	return int(in.wheel)
}

// ModalActive polls the modal check installed at construction.
func (in *EbitenInput) ModalActive() bool {
	return in.modalCheck != nil && in.modalCheck()
}

// ScriptInput is a programmable input source for tests and automation. It
// holds plain cursor and wheel state that scripted drivers mutate between
// ticks.
type ScriptInput struct {
	X, Y  int
	Wheel int
	Modal bool
}

// MoveTo places the synthetic cursor.
func (in *ScriptInput) MoveTo(x, y int) {
	in.X, in.Y = x, y
}

// Spin advances the wheel counter by the given clicks; negative is wheel
// up.
func (in *ScriptInput) Spin(clicks int) {
	in.Wheel += clicks
}

// CursorPosition returns the synthetic cursor position.
func (in *ScriptInput) CursorPosition() (int, int) { return in.X, in.Y }

// WheelCounter returns the synthetic wheel counter.
func (in *ScriptInput) WheelCounter() int { return in.Wheel }

// ModalActive returns the scripted modal flag.
func (in *ScriptInput) ModalActive() bool { return in.Modal }
