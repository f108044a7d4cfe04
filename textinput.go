package gui

import (
	"unicode/utf8"

	"github.com/viperdos/gui/gfx"
)

// maxUndoDepth bounds each undo stack; the oldest snapshot falls off.
const maxUndoDepth = 256

// editSnapshot captures the full edit state for undo and redo.
type editSnapshot struct {
	text           string
	cursor, anchor int
}

// editHistory is a pair of snapshot stacks. Every mutating edit pushes
// the pre-edit state onto the undo stack and clears the redo stack; undo
// moves the current state to the redo stack and vice versa.
type editHistory struct {
	undo []editSnapshot
	redo []editSnapshot
}

func (h *editHistory) record(s editSnapshot) {
	if len(h.undo) >= maxUndoDepth {
		copy(h.undo, h.undo[1:])
		h.undo = h.undo[:len(h.undo)-1]
	}
	h.undo = append(h.undo, s)
	h.redo = h.redo[:0]
}

func (h *editHistory) popUndo(current editSnapshot) (editSnapshot, bool) {
	if len(h.undo) == 0 {
		return editSnapshot{}, false
	}
	s := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return s, true
}

func (h *editHistory) popRedo(current editSnapshot) (editSnapshot, bool) {
	if len(h.redo) == 0 {
		return editSnapshot{}, false
	}
	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return s, true
}

func (h *editHistory) clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// TextInput is a single-line text editor with selection, clipboard
// support and snapshot undo. Cursor and anchor are byte offsets into the
// UTF-8 text; when they differ the range between them is selected.
type TextInput struct {
	WidgetBase
	Placeholder string
	MaxLength   int // rune count, 0 means unlimited
	Password    bool

	text    string
	cursor  int
	anchor  int
	history editHistory

	scrollX    float32
	blinkStart int64
	dragging   bool
}

// NewTextInput creates an empty text input.
func NewTextInput() *TextInput {
	t := &TextInput{}
	t.Init(t, "textinput")
	t.TabIndex = 0
	return t
}

// Text returns the current content.
func (t *TextInput) Text() string { return t.text }

// SetText replaces the content, clamps the cursor and clears history.
func (t *TextInput) SetText(text string) {
	t.text = text
	t.cursor = len(text)
	t.anchor = t.cursor
	t.history.clear()
	t.InvalidatePaint()
}

// Cursor returns the cursor byte offset.
func (t *TextInput) Cursor() int { return t.cursor }

// Selection returns the selected range in byte offsets, lo <= hi.
func (t *TextInput) Selection() (lo, hi int) {
	if t.anchor <= t.cursor {
		return t.anchor, t.cursor
	}
	return t.cursor, t.anchor
}

// SelectedText returns the selected text, or "".
func (t *TextInput) SelectedText() string {
	lo, hi := t.Selection()
	return t.text[lo:hi]
}

// SelectAll selects the whole content with the cursor at the end.
func (t *TextInput) SelectAll() {
	t.anchor = 0
	t.cursor = len(t.text)
}

func (t *TextInput) CanFocus() bool { return !t.IsDisabled() }

func (t *TextInput) OnFocus(gained bool) {
	t.WidgetBase.OnFocus(gained)
	if gained {
		t.blinkStart = 0
	} else {
		t.dragging = false
	}
}

func (t *TextInput) snapshot() editSnapshot {
	return editSnapshot{text: t.text, cursor: t.cursor, anchor: t.anchor}
}

func (t *TextInput) restore(s editSnapshot) {
	t.text = s.text
	t.cursor = s.cursor
	t.anchor = s.anchor
	t.notifyChange()
}

func (t *TextInput) notifyChange() {
	t.InvalidatePaint()
	if t.OnChange != nil {
		t.OnChange(t.Self())
	}
}

// Undo reverts the last edit. Returns false when the stack is empty.
func (t *TextInput) Undo() bool {
	s, ok := t.history.popUndo(t.snapshot())
	if ok {
		t.restore(s)
	}
	return ok
}

// Redo reapplies the last undone edit.
func (t *TextInput) Redo() bool {
	s, ok := t.history.popRedo(t.snapshot())
	if ok {
		t.restore(s)
	}
	return ok
}

// deleteSelection removes the selected range without recording history;
// callers record first. Reports whether anything was removed.
func (t *TextInput) deleteSelection() bool {
	lo, hi := t.Selection()
	if lo == hi {
		return false
	}
	t.text = t.text[:lo] + t.text[hi:]
	t.cursor = lo
	t.anchor = lo
	return true
}

// InsertText inserts at the cursor, replacing any selection.
func (t *TextInput) InsertText(s string) {
	if s == "" {
		return
	}
	t.history.record(t.snapshot())
	t.deleteSelection()
	if t.MaxLength > 0 {
		room := t.MaxLength - utf8.RuneCountInString(t.text)
		if room <= 0 {
			return
		}
		if utf8.RuneCountInString(s) > room {
			off := 0
			for i := 0; i < room; i++ {
				_, n := utf8.DecodeRuneInString(s[off:])
				off += n
			}
			s = s[:off]
		}
	}
	t.text = t.text[:t.cursor] + s + t.text[t.cursor:]
	t.cursor += len(s)
	t.anchor = t.cursor
	t.notifyChange()
}

// prevOffset returns the byte offset of the rune before off.
func prevOffset(s string, off int) int {
	if off <= 0 {
		return 0
	}
	_, n := utf8.DecodeLastRuneInString(s[:off])
	return off - n
}

// nextOffset returns the byte offset after the rune at off.
func nextOffset(s string, off int) int {
	if off >= len(s) {
		return len(s)
	}
	_, n := utf8.DecodeRuneInString(s[off:])
	return off + n
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// wordLeft jumps to the start of the previous ASCII word.
func wordLeft(s string, off int) int {
	for off > 0 && !isWordByte(s[off-1]) {
		off--
	}
	for off > 0 && isWordByte(s[off-1]) {
		off--
	}
	return off
}

// wordRight jumps past the end of the next ASCII word.
func wordRight(s string, off int) int {
	for off < len(s) && !isWordByte(s[off]) {
		off++
	}
	for off < len(s) && isWordByte(s[off]) {
		off++
	}
	return off
}

func (t *TextInput) moveCursor(to int, selecting bool) {
	t.cursor = to
	if !selecting {
		t.anchor = to
	}
	t.blinkStart = 0
	t.InvalidatePaint()
}

func (t *TextInput) backspace() {
	t.history.record(t.snapshot())
	if t.deleteSelection() {
		t.notifyChange()
		return
	}
	if t.cursor == 0 {
		t.history.undo = t.history.undo[:len(t.history.undo)-1]
		return
	}
	p := prevOffset(t.text, t.cursor)
	t.text = t.text[:p] + t.text[t.cursor:]
	t.cursor = p
	t.anchor = p
	t.notifyChange()
}

func (t *TextInput) deleteForward() {
	t.history.record(t.snapshot())
	if t.deleteSelection() {
		t.notifyChange()
		return
	}
	if t.cursor >= len(t.text) {
		t.history.undo = t.history.undo[:len(t.history.undo)-1]
		return
	}
	n := nextOffset(t.text, t.cursor)
	t.text = t.text[:t.cursor] + t.text[n:]
	t.anchor = t.cursor
	t.notifyChange()
}

func (t *TextInput) cut() {
	lo, hi := t.Selection()
	if lo == hi {
		return
	}
	_ = SetClipboardText(t.text[lo:hi])
	t.history.record(t.snapshot())
	t.deleteSelection()
	t.notifyChange()
}

func (t *TextInput) copySelection() {
	lo, hi := t.Selection()
	if lo != hi {
		_ = SetClipboardText(t.text[lo:hi])
	}
}

func (t *TextInput) paste() {
	s := ClipboardText()
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			s = s[:i]
			break
		}
	}
	t.InsertText(s)
}

// displayText substitutes bullets for password fields.
func (t *TextInput) displayText() string {
	if !t.Password {
		return t.text
	}
	return maskRunes(utf8.RuneCountInString(t.text))
}

func (t *TextInput) Measure(availW, availH float32) {
	c := measureCanvas()
	th := CurrentTheme()
	w := float32(120)
	h := c.LineHeight() + th.Widgets.InputPadY*2
	t.SetMeasured(w+t.Layout.Padding.Horizontal(), h+t.Layout.Padding.Vertical())
}

// caretX returns the pixel x of a byte offset within the display text.
func (t *TextInput) caretX(c *Canvas, off int) float32 {
	if t.Password {
		n := utf8.RuneCountInString(t.text[:off])
		return c.TextWidth(maskRunes(n))
	}
	return c.TextWidth(t.text[:off])
}

func maskRunes(n int) string {
	r := make([]byte, n)
	for i := range r {
		r[i] = '*'
	}
	return string(r)
}

// ensureVisible adjusts scrollX so the caret stays inside the field.
func (t *TextInput) ensureVisible(c *Canvas, innerW float32) {
	cx := t.caretX(c, t.cursor)
	if cx-t.scrollX > innerW {
		t.scrollX = cx - innerW
	}
	if cx-t.scrollX < 0 {
		t.scrollX = cx
	}
	if t.scrollX < 0 {
		t.scrollX = 0
	}
}

func (t *TextInput) Paint(c *Canvas) {
	th := c.Theme
	r := t.Bounds()
	c.FillRect(r, th.Colors.BgTertiary)
	border := th.Colors.Border
	if t.State&StateFocused != 0 {
		border = th.Colors.BorderFocus
	}
	c.StrokeRect(r, border)

	padX := th.Widgets.InputPadX
	innerW := t.W - padX*2
	t.ensureVisible(c, innerW)

	prev, had := c.PushClip(Rect{X: t.X + padX, Y: t.Y, W: innerW, H: t.H})
	defer c.PopClip(prev, had)

	textY := t.Y + (t.H-c.LineHeight())/2
	disp := t.displayText()

	if disp == "" && t.Placeholder != "" && t.State&StateFocused == 0 {
		c.Text(t.X+padX, textY, t.Placeholder, th.Colors.FgSecondary)
		return
	}

	baseX := t.X + padX - t.scrollX
	lo, hi := t.Selection()
	if lo != hi {
		x0 := baseX + t.caretX(c, lo)
		x1 := baseX + t.caretX(c, hi)
		c.FillRect(Rect{X: x0, Y: t.Y + 2, W: x1 - x0, H: t.H - 4}, th.Colors.BgSelected)
	}

	fg := th.Colors.FgPrimary
	if t.IsDisabled() {
		fg = th.Colors.FgDisabled
	}
	c.Text(baseX, textY, disp, fg)

	if t.State&StateFocused != 0 && !t.IsDisabled() {
		now := c.Win.NowMS()
		if t.blinkStart == 0 {
			t.blinkStart = now
		}
		if (now-t.blinkStart)/530%2 == 0 {
			cx := baseX + t.caretX(c, t.cursor)
			c.Line(cx, t.Y+3, cx, t.Y+t.H-4, fg)
		}
	}
}

// offsetAt maps a root-coordinate x to a byte offset in the text.
func (t *TextInput) offsetAt(x float32) int {
	c := measureCanvas()
	th := CurrentTheme()
	sb := t.ScreenBounds()
	local := x - sb.X - th.Widgets.InputPadX + t.scrollX
	if c.Font == nil {
		return len(t.text)
	}
	disp := t.displayText()
	idx := c.Font.HitTest(c.FontSize, disp, int32(local))
	if idx < 0 {
		return len(t.text)
	}
	// HitTest yields a rune index; convert to a byte offset in the real text.
	off := 0
	for i := 0; i < idx && off < len(t.text); i++ {
		off = nextOffset(t.text, off)
	}
	return off
}

func (t *TextInput) HandleEvent(ev *Event) bool {
	if t.IsDisabled() {
		return false
	}
	switch ev.Type {
	case EventMouseDown:
		if ev.Button != gfx.MouseLeft || !t.ScreenBounds().Contains(ev.X, ev.Y) {
			return false
		}
		t.moveCursor(t.offsetAt(ev.X), ev.Mods&gfx.ModShift != 0)
		t.dragging = true
		SetInputCapture(t)
		return true
	case EventMouseMove:
		if t.dragging {
			t.moveCursor(t.offsetAt(ev.X), true)
			return true
		}
	case EventMouseUp:
		if t.dragging && ev.Button == gfx.MouseLeft {
			t.dragging = false
			ReleaseInputCapture(t)
			return true
		}
	case EventKeyChar:
		if ev.Rune >= ' ' && ev.Rune != 0x7F {
			t.InsertText(string(ev.Rune))
			return true
		}
	case EventKeyDown:
		return t.handleKey(ev)
	}
	return false
}

func (t *TextInput) handleKey(ev *Event) bool {
	shift := ev.Mods&gfx.ModShift != 0
	ctrl := ev.Mods&(gfx.ModCtrl|gfx.ModSuper) != 0

	switch ev.Key {
	case gfx.KeyLeft:
		to := prevOffset(t.text, t.cursor)
		if ctrl {
			to = wordLeft(t.text, t.cursor)
		}
		if !shift {
			if lo, hi := t.Selection(); lo != hi && !ctrl {
				to = lo
			}
		}
		t.moveCursor(to, shift)
		return true
	case gfx.KeyRight:
		to := nextOffset(t.text, t.cursor)
		if ctrl {
			to = wordRight(t.text, t.cursor)
		}
		if !shift {
			if lo, hi := t.Selection(); lo != hi && !ctrl {
				to = hi
			}
		}
		t.moveCursor(to, shift)
		return true
	case gfx.KeyHome:
		t.moveCursor(0, shift)
		return true
	case gfx.KeyEnd:
		t.moveCursor(len(t.text), shift)
		return true
	case gfx.KeyBackspace:
		t.backspace()
		return true
	case gfx.KeyDelete:
		t.deleteForward()
		return true
	case gfx.KeyEnter:
		if t.OnSubmit != nil {
			t.OnSubmit(t.Self())
		}
		return true
	}

	if !ctrl {
		return false
	}
	switch ev.Key {
	case 'A':
		t.SelectAll()
		t.InvalidatePaint()
		return true
	case 'C':
		t.copySelection()
		return true
	case 'X':
		t.cut()
		return true
	case 'V':
		t.paste()
		return true
	case 'Z':
		if shift {
			t.Redo()
		} else {
			t.Undo()
		}
		return true
	case 'Y':
		t.Redo()
		return true
	}
	return false
}
