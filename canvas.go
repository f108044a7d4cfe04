package gui

import (
	"github.com/viperdos/gui/gfx"
	"github.com/viperdos/gui/font"
)

// Canvas is the paint context handed to widgets: the window surface, the
// default font, and the active theme.
type Canvas struct {
	Win      *gfx.Window
	Font     *font.Font
	FontSize float64
	Theme    *Theme
}

// FillRect fills a rectangle.
func (c *Canvas) FillRect(r Rect, col gfx.Color) {
	c.Win.FillRect(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), col)
}

// StrokeRect outlines a rectangle.
func (c *Canvas) StrokeRect(r Rect, col gfx.Color) {
	c.Win.Rect(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), col)
}

// Line draws a line.
func (c *Canvas) Line(x0, y0, x1, y1 float32, col gfx.Color) {
	c.Win.Line(int32(x0), int32(y0), int32(x1), int32(y1), col)
}

// Text draws a line of text with its top-left corner at (x, y) using the
// canvas font, and returns the advance width in pixels.
func (c *Canvas) Text(x, y float32, s string, col gfx.Color) float32 {
	if c.Font == nil || s == "" {
		return 0
	}
	ascent, _, _ := c.Font.Metrics(c.FontSize)
	return float32(c.Font.DrawText(c.Win, c.FontSize, int32(x), int32(y)+ascent, s, col))
}

// TextWidth measures a line of text in pixels.
func (c *Canvas) TextWidth(s string) float32 {
	if c.Font == nil {
		return 0
	}
	return float32(c.Font.MeasureText(c.FontSize, s).Width)
}

// LineHeight returns the font line height in pixels.
func (c *Canvas) LineHeight() float32 {
	if c.Font == nil {
		return 0
	}
	return float32(c.Font.LineHeight(c.FontSize))
}

// PushClip intersects the window clip with a rectangle and returns the
// previous clip for PopClip.
func (c *Canvas) PushClip(r Rect) (gfx.ClipRect, bool) {
	fb, ok := c.Win.Framebuffer()
	if !ok {
		return gfx.ClipRect{}, false
	}
	prev, had := fb.Clip()
	next := r
	if had {
		next = r.Intersect(Rect{
			X: float32(prev.X), Y: float32(prev.Y),
			W: float32(prev.W), H: float32(prev.H),
		})
	}
	c.Win.SetClip(int32(next.X), int32(next.Y), int32(next.W), int32(next.H))
	return prev, had
}

// PopClip restores a clip saved by PushClip.
func (c *Canvas) PopClip(prev gfx.ClipRect, had bool) {
	if had {
		c.Win.SetClip(prev.X, prev.Y, prev.W, prev.H)
	} else {
		c.Win.ClearClip()
	}
}

// PaintTree paints a subtree depth-first. Widget X/Y hold parent-relative
// values at rest; the walker temporarily overwrites them with absolute
// coordinates for the paint call and restores them afterwards, because
// paint code reads absolute positions while hit testing outside of paint
// needs relative ones.
func PaintTree(w Widget, c *Canvas) {
	paintTree(w, c, 0, 0)
	if w.Base().tree != nil {
		w.Base().tree.needsPaint = false
	}
}

// childClipper is implemented by containers that constrain child painting
// to a rectangle in their own local coordinates (ScrollView's viewport).
type childClipper interface {
	ChildClip() (Rect, bool)
}

func paintTree(w Widget, c *Canvas, offX, offY float32) {
	b := w.Base()
	if !b.Visible {
		return
	}
	absX, absY := b.X+offX, b.Y+offY

	relX, relY := b.X, b.Y
	b.X, b.Y = absX, absY
	w.Paint(c)
	b.X, b.Y = relX, relY

	var prevClip gfx.ClipRect
	var hadClip, clipped bool
	if cl, ok := w.(childClipper); ok {
		if r, use := cl.ChildClip(); use {
			prevClip, hadClip = c.PushClip(Rect{X: absX + r.X, Y: absY + r.Y, W: r.W, H: r.H})
			clipped = true
		}
	}
	for child := b.FirstChild; child != nil; child = child.Base().NextSibling {
		paintTree(child, c, absX, absY)
	}
	if clipped {
		c.PopClip(prevClip, hadClip)
	}

	// The capture holder's overlay is painted by PaintCapturedOverlay after
	// the walk, above every sibling; painting it here too would show the
	// popup twice.
	if b.tree == nil || b.tree.capture == nil || b.tree.capture.Base() != b {
		b.X, b.Y = absX, absY
		w.PaintOverlay(c)
		b.X, b.Y = relX, relY
	}
}

// PaintCapturedOverlay paints the capture holder's overlay, if any, in
// absolute coordinates. Called after the main tree walk so popups render
// above every other widget.
func PaintCapturedOverlay(root Widget, c *Canvas) {
	cap := CaptureWidget(root)
	if cap == nil {
		return
	}
	b := cap.Base()
	sb := b.ScreenBounds()
	relX, relY := b.X, b.Y
	b.X, b.Y = sb.X, sb.Y
	cap.PaintOverlay(c)
	b.X, b.Y = relX, relY
}

// measureCanvas returns a canvas usable for text measurement outside a
// paint pass. It carries the current theme's regular font and normal
// size but no window surface, so only the measuring methods may be used.
func measureCanvas() *Canvas {
	th := CurrentTheme()
	return &Canvas{Font: th.Fonts.Regular, FontSize: th.Fonts.SizeNormal, Theme: th}
}
