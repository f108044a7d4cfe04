package gui

import (
	"strconv"
	"strings"

	"github.com/viperdos/gui/gfx"
)

// GutterIcon marks a line in the editor gutter.
type GutterIcon struct {
	Line  int
	Color gfx.Color
}

// HighlightSpan is a background highlight over a byte range.
type HighlightSpan struct {
	Start, End int
	Color      gfx.Color
}

// CodeEditor is a monospace multi-line editor with per-character syntax
// colors, gutter icons and background highlight spans. The color array
// always matches the text length in bytes; edits reset it to the plain
// color until the next SetSyntaxHighlight.
type CodeEditor struct {
	WidgetBase
	ShowGutter bool
	TabWidth   int

	text    string
	colors  []gfx.Color
	gutter  []GutterIcon
	spans   []HighlightSpan
	cursor  int
	anchor  int
	history editHistory

	scrollX, scrollY float32
	dragging         bool
	preferredCol     int
}

// NewCodeEditor creates an empty editor.
func NewCodeEditor() *CodeEditor {
	e := &CodeEditor{ShowGutter: true, TabWidth: 4, preferredCol: -1}
	e.Init(e, "codeeditor")
	e.TabIndex = 0
	return e
}

func (e *CodeEditor) CanFocus() bool { return !e.IsDisabled() }

// Text returns the buffer contents.
func (e *CodeEditor) Text() string { return e.text }

// SetText replaces the buffer, resets colors to plain and clears history.
func (e *CodeEditor) SetText(text string) {
	e.text = text
	e.cursor = min(e.cursor, len(text))
	e.anchor = e.cursor
	e.resetColors()
	e.history.clear()
	e.InvalidatePaint()
}

// resetColors sizes the color array to the text and fills it with the
// theme's plain syntax color.
func (e *CodeEditor) resetColors() {
	plain := CurrentTheme().Colors.Syntax.Plain
	e.colors = make([]gfx.Color, len(e.text))
	for i := range e.colors {
		e.colors[i] = plain
	}
}

// SetSyntaxHighlight replaces the per-character color array wholesale.
// The slice must be sized to the current text length; a mismatch is
// rejected and logged.
func (e *CodeEditor) SetSyntaxHighlight(colors []gfx.Color) bool {
	if len(colors) != len(e.text) {
		guiLogger.Warn("syntax color array length mismatch",
			"colors", len(colors), "text", len(e.text))
		return false
	}
	e.colors = append(e.colors[:0], colors...)
	e.InvalidatePaint()
	return true
}

// SetGutterIcons replaces the gutter icon array.
func (e *CodeEditor) SetGutterIcons(icons []GutterIcon) {
	e.gutter = append(e.gutter[:0], icons...)
	e.InvalidatePaint()
}

// SetHighlightSpans replaces the highlight span array.
func (e *CodeEditor) SetHighlightSpans(spans []HighlightSpan) {
	e.spans = append(e.spans[:0], spans...)
	e.InvalidatePaint()
}

// Selection returns the selected byte range, lo <= hi.
func (e *CodeEditor) Selection() (lo, hi int) {
	if e.anchor <= e.cursor {
		return e.anchor, e.cursor
	}
	return e.cursor, e.anchor
}

// GetSelection returns a copy of the selected text, or "" with ok=false
// when the selection is empty.
func (e *CodeEditor) GetSelection() (string, bool) {
	lo, hi := e.Selection()
	if lo == hi {
		return "", false
	}
	return strings.Clone(e.text[lo:hi]), true
}

// Cursor returns the cursor byte offset.
func (e *CodeEditor) Cursor() int { return e.cursor }

// SetCursor clamps and moves the cursor, collapsing the selection.
func (e *CodeEditor) SetCursor(off int) {
	if off < 0 {
		off = 0
	}
	if off > len(e.text) {
		off = len(e.text)
	}
	e.cursor = off
	e.anchor = off
	e.InvalidatePaint()
}

// lineStart returns the byte offset of the start of the line holding off.
func lineStart(s string, off int) int {
	for off > 0 && s[off-1] != '\n' {
		off--
	}
	return off
}

// lineEnd returns the byte offset of the newline (or end) after off.
func lineEnd(s string, off int) int {
	for off < len(s) && s[off] != '\n' {
		off++
	}
	return off
}

// lineOf returns the zero-based line number of a byte offset.
func lineOf(s string, off int) int {
	return strings.Count(s[:off], "\n")
}

func (e *CodeEditor) snapshot() editSnapshot {
	return editSnapshot{text: e.text, cursor: e.cursor, anchor: e.anchor}
}

func (e *CodeEditor) restore(s editSnapshot) {
	e.text = s.text
	e.cursor = s.cursor
	e.anchor = s.anchor
	e.resetColors()
	e.notifyChange()
}

func (e *CodeEditor) notifyChange() {
	e.InvalidatePaint()
	if e.OnChange != nil {
		e.OnChange(e.Self())
	}
}

// Undo reverts the last edit.
func (e *CodeEditor) Undo() bool {
	s, ok := e.history.popUndo(e.snapshot())
	if ok {
		e.restore(s)
	}
	return ok
}

// Redo reapplies the last undone edit.
func (e *CodeEditor) Redo() bool {
	s, ok := e.history.popRedo(e.snapshot())
	if ok {
		e.restore(s)
	}
	return ok
}

func (e *CodeEditor) deleteSelection() bool {
	lo, hi := e.Selection()
	if lo == hi {
		return false
	}
	e.text = e.text[:lo] + e.text[hi:]
	e.cursor = lo
	e.anchor = lo
	return true
}

// InsertText inserts at the cursor, replacing any selection.
func (e *CodeEditor) InsertText(s string) {
	if s == "" {
		return
	}
	e.history.record(e.snapshot())
	e.deleteSelection()
	e.text = e.text[:e.cursor] + s + e.text[e.cursor:]
	e.cursor += len(s)
	e.anchor = e.cursor
	e.resetColors()
	e.notifyChange()
}

func (e *CodeEditor) backspace() {
	e.history.record(e.snapshot())
	if e.deleteSelection() {
		e.resetColors()
		e.notifyChange()
		return
	}
	if e.cursor == 0 {
		e.history.undo = e.history.undo[:len(e.history.undo)-1]
		return
	}
	p := prevOffset(e.text, e.cursor)
	e.text = e.text[:p] + e.text[e.cursor:]
	e.cursor = p
	e.anchor = p
	e.resetColors()
	e.notifyChange()
}

func (e *CodeEditor) deleteForward() {
	e.history.record(e.snapshot())
	if e.deleteSelection() {
		e.resetColors()
		e.notifyChange()
		return
	}
	if e.cursor >= len(e.text) {
		e.history.undo = e.history.undo[:len(e.history.undo)-1]
		return
	}
	n := nextOffset(e.text, e.cursor)
	e.text = e.text[:e.cursor] + e.text[n:]
	e.anchor = e.cursor
	e.resetColors()
	e.notifyChange()
}

// editorCanvas prefers the theme's mono font.
func editorCanvas() *Canvas {
	th := CurrentTheme()
	f := th.Fonts.Mono
	if f == nil {
		f = th.Fonts.Regular
	}
	return &Canvas{Font: f, FontSize: th.Fonts.SizeNormal, Theme: th}
}

const gutterWidth = 48

func (e *CodeEditor) Measure(availW, availH float32) {
	e.SetMeasured(availW, availH)
}

// lines splits the buffer, keeping at least one line.
func (e *CodeEditor) lines() []string {
	return strings.Split(e.text, "\n")
}

func (e *CodeEditor) Paint(c *Canvas) {
	th := c.Theme
	ec := editorCanvas()
	ec.Win = c.Win
	r := e.Bounds()
	c.FillRect(r, th.Colors.BgSecondary)

	lh := ec.LineHeight()
	textX := r.X
	if e.ShowGutter {
		c.FillRect(Rect{X: r.X, Y: r.Y, W: gutterWidth, H: r.H}, th.Colors.BgPrimary)
		textX += gutterWidth
	}

	prev, had := c.PushClip(r)
	defer c.PopClip(prev, had)

	lines := e.lines()
	curLine := lineOf(e.text, e.cursor)
	selLo, selHi := e.Selection()

	off := 0
	y := r.Y - e.scrollY
	for i, line := range lines {
		if y+lh >= r.Y && y <= r.Y+r.H {
			e.paintLine(c, ec, th, i, line, off, textX-e.scrollX, y, lh, selLo, selHi)
			if e.ShowGutter {
				num := strconv.Itoa(i + 1)
				numW := ec.TextWidth(num)
				fg := th.Colors.FgSecondary
				if i == curLine {
					fg = th.Colors.FgPrimary
				}
				ec.Text(r.X+gutterWidth-8-numW, y, num, fg)
				for _, icon := range e.gutter {
					if icon.Line == i {
						c.Win.FillCircle(int32(r.X+10), int32(y+lh/2), 4, icon.Color)
					}
				}
			}
		}
		off += len(line) + 1
		y += lh
	}
}

// paintLine renders one line: highlight spans, selection, glyphs with
// per-byte colors, and the caret.
func (e *CodeEditor) paintLine(c *Canvas, ec *Canvas, th *Theme, lineIdx int, line string, lineOff int, x, y, lh float32, selLo, selHi int) {
	end := lineOff + len(line)

	for _, sp := range e.spans {
		if sp.End <= lineOff || sp.Start >= end {
			continue
		}
		lo := max(sp.Start, lineOff)
		hi := min(sp.End, end)
		x0 := x + ec.TextWidth(line[:lo-lineOff])
		x1 := x + ec.TextWidth(line[:hi-lineOff])
		c.FillRect(Rect{X: x0, Y: y, W: x1 - x0, H: lh}, sp.Color)
	}

	if selLo != selHi && selHi > lineOff && selLo <= end {
		lo := max(selLo, lineOff)
		hi := min(selHi, end)
		x0 := x + ec.TextWidth(line[:lo-lineOff])
		x1 := x + ec.TextWidth(line[:hi-lineOff])
		if hi == end && selHi > end {
			x1 += ec.TextWidth(" ") // show the selected newline
		}
		c.FillRect(Rect{X: x0, Y: y, W: x1 - x0, H: lh}, th.Colors.BgSelected)
	}

	// Draw runs of identically colored bytes together.
	pos := 0
	penX := x
	for pos < len(line) {
		runStart := pos
		col := e.colorAt(lineOff + pos)
		for pos < len(line) && e.colorAt(lineOff+pos) == col {
			pos++
		}
		penX += ec.Text(penX, y, line[runStart:pos], col)
	}

	if e.State&StateFocused != 0 && e.cursor >= lineOff && e.cursor <= end &&
		lineOf(e.text, e.cursor) == lineIdx {
		cx := x + ec.TextWidth(line[:e.cursor-lineOff])
		c.Line(cx, y+1, cx, y+lh-2, th.Colors.FgPrimary)
	}
}

func (e *CodeEditor) colorAt(off int) gfx.Color {
	if off >= 0 && off < len(e.colors) {
		return e.colors[off]
	}
	return CurrentTheme().Colors.Syntax.Plain
}

// offsetAt maps a root coordinate to a byte offset.
func (e *CodeEditor) offsetAt(x, y float32) int {
	ec := editorCanvas()
	sb := e.ScreenBounds()
	textX := sb.X
	if e.ShowGutter {
		textX += gutterWidth
	}
	lh := ec.LineHeight()
	if lh <= 0 {
		return 0
	}
	lineIdx := int((y - sb.Y + e.scrollY) / lh)
	lines := e.lines()
	if lineIdx < 0 {
		return 0
	}
	if lineIdx >= len(lines) {
		return len(e.text)
	}
	off := 0
	for i := 0; i < lineIdx; i++ {
		off += len(lines[i]) + 1
	}
	line := lines[lineIdx]
	if ec.Font == nil {
		return off
	}
	local := x - textX + e.scrollX
	idx := ec.Font.HitTest(ec.FontSize, line, int32(local))
	if idx < 0 {
		return off + len(line)
	}
	byteOff := off
	for i := 0; i < idx && byteOff < off+len(line); i++ {
		byteOff = nextOffset(e.text, byteOff)
	}
	return byteOff
}

// moveVertical moves the cursor a line up or down, keeping the column.
func (e *CodeEditor) moveVertical(delta int, selecting bool) {
	ls := lineStart(e.text, e.cursor)
	col := e.cursor - ls
	if e.preferredCol >= 0 {
		col = e.preferredCol
	}
	lineIdx := lineOf(e.text, e.cursor) + delta
	lines := e.lines()
	if lineIdx < 0 || lineIdx >= len(lines) {
		return
	}
	off := 0
	for i := 0; i < lineIdx; i++ {
		off += len(lines[i]) + 1
	}
	target := off + min(col, len(lines[lineIdx]))
	e.preferredCol = col
	e.moveTo(target, selecting)
}

func (e *CodeEditor) moveTo(off int, selecting bool) {
	e.cursor = off
	if !selecting {
		e.anchor = off
	}
	e.scrollCursorIntoView()
	e.InvalidatePaint()
}

func (e *CodeEditor) scrollCursorIntoView() {
	ec := editorCanvas()
	lh := ec.LineHeight()
	if lh <= 0 {
		return
	}
	top := float32(lineOf(e.text, e.cursor)) * lh
	if top < e.scrollY {
		e.scrollY = top
	}
	if bottom := top + lh; bottom > e.scrollY+e.H {
		e.scrollY = bottom - e.H
	}
	ls := lineStart(e.text, e.cursor)
	cx := ec.TextWidth(e.text[ls:e.cursor])
	avail := e.W
	if e.ShowGutter {
		avail -= gutterWidth
	}
	if cx < e.scrollX {
		e.scrollX = cx
	}
	if cx > e.scrollX+avail-8 {
		e.scrollX = cx - avail + 8
	}
	if e.scrollX < 0 {
		e.scrollX = 0
	}
}

func (e *CodeEditor) HandleEvent(ev *Event) bool {
	if e.IsDisabled() {
		return false
	}
	switch ev.Type {
	case EventMouseDown:
		if ev.Button != gfx.MouseLeft || !e.ScreenBounds().Contains(ev.X, ev.Y) {
			return false
		}
		e.preferredCol = -1
		e.moveTo(e.offsetAt(ev.X, ev.Y), ev.Mods&gfx.ModShift != 0)
		e.dragging = true
		SetInputCapture(e)
		return true
	case EventMouseMove:
		if e.dragging {
			e.moveTo(e.offsetAt(ev.X, ev.Y), true)
			return true
		}
	case EventMouseUp:
		if e.dragging && ev.Button == gfx.MouseLeft {
			e.dragging = false
			ReleaseInputCapture(e)
			return true
		}
	case EventScroll:
		if e.ScreenBounds().Contains(ev.X, ev.Y) {
			ec := editorCanvas()
			lh := ec.LineHeight()
			maxScroll := max32(0, float32(len(e.lines()))*lh-e.H)
			e.scrollY = clamp32(e.scrollY-float32(ev.DeltaY)*lh*3, 0, maxScroll)
			e.InvalidatePaint()
			return true
		}
	case EventKeyChar:
		if ev.Rune >= ' ' && ev.Rune != 0x7F {
			e.preferredCol = -1
			e.InsertText(string(ev.Rune))
			return true
		}
	case EventKeyDown:
		return e.handleKey(ev)
	}
	return false
}

func (e *CodeEditor) handleKey(ev *Event) bool {
	shift := ev.Mods&gfx.ModShift != 0
	ctrl := ev.Mods&(gfx.ModCtrl|gfx.ModSuper) != 0

	switch ev.Key {
	case gfx.KeyLeft:
		e.preferredCol = -1
		to := prevOffset(e.text, e.cursor)
		if ctrl {
			to = wordLeft(e.text, e.cursor)
		}
		e.moveTo(to, shift)
		return true
	case gfx.KeyRight:
		e.preferredCol = -1
		to := nextOffset(e.text, e.cursor)
		if ctrl {
			to = wordRight(e.text, e.cursor)
		}
		e.moveTo(to, shift)
		return true
	case gfx.KeyUp:
		e.moveVertical(-1, shift)
		return true
	case gfx.KeyDown:
		e.moveVertical(1, shift)
		return true
	case gfx.KeyHome:
		e.preferredCol = -1
		if ctrl {
			e.moveTo(0, shift)
		} else {
			e.moveTo(lineStart(e.text, e.cursor), shift)
		}
		return true
	case gfx.KeyEnd:
		e.preferredCol = -1
		if ctrl {
			e.moveTo(len(e.text), shift)
		} else {
			e.moveTo(lineEnd(e.text, e.cursor), shift)
		}
		return true
	case gfx.KeyEnter:
		e.preferredCol = -1
		e.InsertText("\n")
		return true
	case gfx.KeyTab:
		e.preferredCol = -1
		e.InsertText(strings.Repeat(" ", max(1, e.TabWidth)))
		return true
	case gfx.KeyBackspace:
		e.preferredCol = -1
		e.backspace()
		return true
	case gfx.KeyDelete:
		e.preferredCol = -1
		e.deleteForward()
		return true
	}

	if !ctrl {
		return false
	}
	switch ev.Key {
	case 'A':
		e.anchor = 0
		e.cursor = len(e.text)
		e.InvalidatePaint()
		return true
	case 'C':
		if s, ok := e.GetSelection(); ok {
			_ = SetClipboardText(s)
		}
		return true
	case 'X':
		if s, ok := e.GetSelection(); ok {
			_ = SetClipboardText(s)
			e.history.record(e.snapshot())
			e.deleteSelection()
			e.resetColors()
			e.notifyChange()
		}
		return true
	case 'V':
		e.InsertText(ClipboardText())
		return true
	case 'Z':
		if shift {
			e.Redo()
		} else {
			e.Undo()
		}
		return true
	case 'Y':
		e.Redo()
		return true
	}
	return false
}
