package sill

import "testing"

type textRecord struct {
	text string
	ok   bool
}

func openTextWindow(d *Desktop, number WindowNumber, log *[]textRecord) *Window {
	return d.Open(WindowDesc{
		Class: ClassCustomBase, Number: number,
		Width: 200, Height: 60,
		Widgets: []Widget{
			{Type: WidgetCaption, Rect: Rect{X: 2, Y: 2, Width: 196, Height: 14}},
			WidgetsEnd,
		},
		Events: Events{TextInput: func(w *Window, i WidgetIndex, text string, ok bool) {
			*log = append(*log, textRecord{text: text, ok: ok})
		}},
	})
}

// --- Session lifecycle ---

func TestStartTextboxSeedsAndTruncates(t *testing.T) {
	d := newTestDesktop()
	var log []textRecord
	w := openTextWindow(d, 1, &log)

	d.StartTextbox(w, 0, "hello world", 5)

	if !d.TextboxActive() || !d.IsTextboxActive(w, 0) {
		t.Fatal("textbox not active for the claiming widget")
	}
	if got := d.TextboxText(); got != "hello" {
		t.Errorf("buffer = %q, want %q", got, "hello")
	}
}

func TestTextboxInsertHonoursLimitAndCommits(t *testing.T) {
	d := newTestDesktop()
	var log []textRecord
	w := openTextWindow(d, 1, &log)

	d.StartTextbox(w, 0, "", 4)
	d.TextboxInsert("ab")
	d.TextboxInsert("cdef")

	if got := d.TextboxText(); got != "abcd" {
		t.Errorf("buffer = %q, want %q", got, "abcd")
	}
	if len(log) != 2 {
		t.Fatalf("commits = %d, want 2", len(log))
	}
	last := log[len(log)-1]
	if last.text != "abcd" || !last.ok {
		t.Errorf("last commit = %+v, want {abcd true}", last)
	}
}

func TestTextboxBackspace(t *testing.T) {
	d := newTestDesktop()
	var log []textRecord
	w := openTextWindow(d, 1, &log)

	d.StartTextbox(w, 0, "abc", 0)
	d.TextboxBackspace()
	if got := d.TextboxText(); got != "ab" {
		t.Errorf("buffer = %q, want %q", got, "ab")
	}

	d.TextboxBackspace()
	d.TextboxBackspace()
	d.TextboxBackspace() // empty buffer, no commit
	if got := d.TextboxText(); got != "" {
		t.Errorf("buffer = %q, want empty", got)
	}
	if len(log) != 3 {
		t.Errorf("commits = %d, want 3 (no commit on an empty backspace)", len(log))
	}
}

func TestCancelTextboxReportsCancellation(t *testing.T) {
	d := newTestDesktop()
	var log []textRecord
	w := openTextWindow(d, 1, &log)

	d.StartTextbox(w, 0, "abc", 0)
	d.CancelTextbox()

	if d.TextboxActive() {
		t.Error("textbox active after cancel")
	}
	if len(log) != 1 {
		t.Fatalf("reports = %d, want 1", len(log))
	}
	if log[0].ok || log[0].text != "" {
		t.Errorf("cancel report = %+v, want {\"\" false}", log[0])
	}

	// A second cancel is a no-op.
	d.CancelTextbox()
	if len(log) != 1 {
		t.Error("repeated cancel fired another report")
	}
}

func TestStartTextboxCancelsPreviousClaim(t *testing.T) {
	d := newTestDesktop()
	var first, second []textRecord
	w1 := openTextWindow(d, 1, &first)
	w2 := openTextWindow(d, 2, &second)

	d.StartTextbox(w1, 0, "one", 0)
	d.StartTextbox(w2, 0, "two", 0)

	if len(first) != 1 || first[0].ok {
		t.Errorf("first holder reports = %v, want one cancellation", first)
	}
	if !d.IsTextboxActive(w2, 0) {
		t.Error("second widget did not take the claim")
	}
	if got := d.TextboxText(); got != "two" {
		t.Errorf("buffer = %q, want %q", got, "two")
	}
}

func TestCancelTextboxAfterHolderClosed(t *testing.T) {
	d := newTestDesktop()
	var log []textRecord
	w := openTextWindow(d, 1, &log)

	d.StartTextbox(w, 0, "abc", 0)
	d.Close(w)
	d.CancelTextbox() // holder gone, must not panic

	if d.TextboxActive() {
		t.Error("textbox active after cancel")
	}
}

// --- Caret ---

func TestTextboxCaretBlinks(t *testing.T) {
	d := newTestDesktop()
	var log []textRecord
	w := openTextWindow(d, 1, &log)
	d.StartTextbox(w, 0, "", 0)

	if !d.TextboxCaretVisible() {
		t.Fatal("caret starts hidden, want visible")
	}
	for i := 0; i <= caretWrap/2; i++ {
		d.UpdateTextboxCaret()
	}
	if d.TextboxCaretVisible() {
		t.Error("caret visible in the second half of the blink cycle")
	}
	for i := 0; i < caretWrap/2; i++ {
		d.UpdateTextboxCaret()
	}
	if !d.TextboxCaretVisible() {
		t.Error("caret did not wrap back to visible")
	}

	// Typing resets the blink to the visible phase.
	for i := 0; i <= caretWrap/2; i++ {
		d.UpdateTextboxCaret()
	}
	d.TextboxInsert("x")
	if !d.TextboxCaretVisible() {
		t.Error("commit did not reset the caret to visible")
	}
}
