package gui

import (
	"strings"
	"testing"

	"github.com/viperdos/gui/gfx"
)

func keyEvent(key gfx.Key, mods int) Event {
	return Event{Type: EventKeyDown, Key: key, Mods: mods}
}

func typeString(t *TextInput, s string) {
	for _, r := range s {
		ev := KeyCharEvent(gfx.Key(r), r, 0)
		t.HandleEvent(&ev)
	}
}

func TestTextInputTyping(t *testing.T) {
	in := NewTextInput()
	typeString(in, "hello")
	if in.Text() != "hello" {
		t.Errorf("text = %q, want %q", in.Text(), "hello")
	}
	if in.Cursor() != 5 {
		t.Errorf("cursor = %d, want 5", in.Cursor())
	}
}

func TestTextInputControlCharsIgnored(t *testing.T) {
	in := NewTextInput()
	for _, r := range []rune{'\t', '\n', 0x1B, 0x7F} {
		ev := KeyCharEvent(gfx.Key(r), r, 0)
		in.HandleEvent(&ev)
	}
	if in.Text() != "" {
		t.Errorf("control chars inserted: %q", in.Text())
	}
}

func TestTextInputBackspaceAndDelete(t *testing.T) {
	in := NewTextInput()
	in.SetText("abc")

	ev := keyEvent(gfx.KeyBackspace, 0)
	in.HandleEvent(&ev)
	if in.Text() != "ab" {
		t.Fatalf("after backspace text = %q, want %q", in.Text(), "ab")
	}

	home := keyEvent(gfx.KeyHome, 0)
	in.HandleEvent(&home)
	del := keyEvent(gfx.KeyDelete, 0)
	in.HandleEvent(&del)
	if in.Text() != "b" {
		t.Errorf("after delete text = %q, want %q", in.Text(), "b")
	}
}

func TestTextInputSelectionReplace(t *testing.T) {
	in := NewTextInput()
	in.SetText("hello world")
	// Select "world" with Shift+Home from the end, then narrow manually.
	in.cursor = 6
	in.anchor = 11
	typeString(in, "Go")
	if in.Text() != "hello Go" {
		t.Errorf("text = %q, want %q", in.Text(), "hello Go")
	}
}

func TestTextInputWordJump(t *testing.T) {
	in := NewTextInput()
	in.SetText("one two three")

	left := keyEvent(gfx.KeyLeft, gfx.ModCtrl)
	in.HandleEvent(&left)
	if in.Cursor() != 8 {
		t.Errorf("ctrl+left cursor = %d, want 8", in.Cursor())
	}
	in.HandleEvent(&left)
	if in.Cursor() != 4 {
		t.Errorf("second ctrl+left cursor = %d, want 4", in.Cursor())
	}
	right := keyEvent(gfx.KeyRight, gfx.ModCtrl)
	in.HandleEvent(&right)
	if in.Cursor() != 7 {
		t.Errorf("ctrl+right cursor = %d, want 7", in.Cursor())
	}
}

func TestTextInputCollapseSelectionOnArrow(t *testing.T) {
	in := NewTextInput()
	in.SetText("abcdef")
	in.anchor = 1
	in.cursor = 4

	left := keyEvent(gfx.KeyLeft, 0)
	in.HandleEvent(&left)
	if in.Cursor() != 1 {
		t.Errorf("left collapsed to %d, want selection start 1", in.Cursor())
	}
	if lo, hi := in.Selection(); lo != hi {
		t.Error("selection survived plain arrow")
	}
}

func TestTextInputMaxLength(t *testing.T) {
	in := NewTextInput()
	in.MaxLength = 3
	typeString(in, "abcdef")
	if in.Text() != "abc" {
		t.Errorf("text = %q, want %q", in.Text(), "abc")
	}
	in.InsertText("xyz")
	if in.Text() != "abc" {
		t.Errorf("overfull insert changed text to %q", in.Text())
	}
}

func TestTextInputUndoRedo(t *testing.T) {
	in := NewTextInput()
	in.InsertText("one")
	in.InsertText(" two")

	if !in.Undo() {
		t.Fatal("undo failed")
	}
	if in.Text() != "one" {
		t.Errorf("after undo text = %q, want %q", in.Text(), "one")
	}
	if !in.Redo() {
		t.Fatal("redo failed")
	}
	if in.Text() != "one two" {
		t.Errorf("after redo text = %q, want %q", in.Text(), "one two")
	}
}

func TestTextInputUndoBottomIsNoop(t *testing.T) {
	in := NewTextInput()
	if in.Undo() {
		t.Error("undo with empty history reported success")
	}
	in.InsertText("x")
	in.Undo()
	if in.Undo() {
		t.Error("undo past the bottom reported success")
	}
	if in.Redo() && in.Redo() {
		t.Error("redo past the top reported success")
	}
}

func TestTextInputEditClearsRedo(t *testing.T) {
	in := NewTextInput()
	in.InsertText("one")
	in.Undo()
	in.InsertText("two")
	if in.Redo() {
		t.Error("redo survived a new edit")
	}
	if in.Text() != "two" {
		t.Errorf("text = %q, want %q", in.Text(), "two")
	}
}

func TestTextInputUndoDepthCapped(t *testing.T) {
	in := NewTextInput()
	for i := 0; i < maxUndoDepth+10; i++ {
		in.InsertText("a")
	}
	undos := 0
	for in.Undo() {
		undos++
	}
	if undos != maxUndoDepth {
		t.Errorf("undo count = %d, want %d", undos, maxUndoDepth)
	}
	// The oldest edits fell off, so some text remains.
	if in.Text() == "" {
		t.Error("capped undo rewound past the oldest retained snapshot")
	}
}

func TestTextInputClipboard(t *testing.T) {
	mem := &MemoryClipboard{}
	SetClipboardProvider(mem)
	defer SetClipboardProvider(nil)

	in := NewTextInput()
	in.SetText("hello world")
	in.anchor = 0
	in.cursor = 5

	copyEv := keyEvent('C', gfx.ModCtrl)
	in.HandleEvent(&copyEv)
	if got := ClipboardText(); got != "hello" {
		t.Errorf("clipboard = %q, want %q", got, "hello")
	}

	cutEv := keyEvent('X', gfx.ModCtrl)
	in.SelectAll()
	in.HandleEvent(&cutEv)
	if in.Text() != "" {
		t.Errorf("cut left %q", in.Text())
	}
	if got := ClipboardText(); got != "hello world" {
		t.Errorf("clipboard after cut = %q", got)
	}

	pasteEv := keyEvent('V', gfx.ModCtrl)
	in.HandleEvent(&pasteEv)
	if in.Text() != "hello world" {
		t.Errorf("paste produced %q", in.Text())
	}
}

func TestTextInputPasteStopsAtNewline(t *testing.T) {
	mem := &MemoryClipboard{}
	SetClipboardProvider(mem)
	defer SetClipboardProvider(nil)
	mem.WriteText("first\nsecond")

	in := NewTextInput()
	pasteEv := keyEvent('V', gfx.ModCtrl)
	in.HandleEvent(&pasteEv)
	if in.Text() != "first" {
		t.Errorf("pasted %q, want %q", in.Text(), "first")
	}
}

func TestTextInputSubmit(t *testing.T) {
	in := NewTextInput()
	var got string
	in.OnSubmit = func(w Widget) { got = w.(*TextInput).Text() }
	typeString(in, "done")
	enter := keyEvent(gfx.KeyEnter, 0)
	in.HandleEvent(&enter)
	if got != "done" {
		t.Errorf("submit saw %q, want %q", got, "done")
	}
}

func TestTextInputOnChange(t *testing.T) {
	in := NewTextInput()
	calls := 0
	in.OnChange = func(Widget) { calls++ }
	in.InsertText("a")
	in.InsertText("b")
	if calls != 2 {
		t.Errorf("OnChange fired %d times, want 2", calls)
	}
}

func TestWordHelpers(t *testing.T) {
	s := "foo  bar_baz qux"
	if got := wordLeft(s, len(s)); got != 13 {
		t.Errorf("wordLeft from end = %d, want 13", got)
	}
	if got := wordRight(s, 0); got != 3 {
		t.Errorf("wordRight from start = %d, want 3", got)
	}
	if got := wordLeft(s, 12); got != 5 {
		t.Errorf("wordLeft inside = %d, want 5", got)
	}
}

func TestMaskRunes(t *testing.T) {
	if got := maskRunes(4); got != strings.Repeat("*", 4) {
		t.Errorf("maskRunes(4) = %q", got)
	}
	in := NewTextInput()
	in.Password = true
	in.SetText("héllo")
	if got := in.displayText(); got != strings.Repeat("*", 5) {
		t.Errorf("password display = %q, want five asterisks", got)
	}
}
