package font

import "github.com/viperdos/gui/gfx"

// Canvas is the surface DrawText composites onto. gfx.Window and
// gfx.Framebuffer both satisfy it.
type Canvas interface {
	PsetAlpha(x, y int32, c gfx.Color)
}

// TextMetrics is the result of MeasureText.
type TextMetrics struct {
	Width      int32
	Height     int32
	GlyphCount int
}

// MeasureText returns the advance width (kerning included), the line
// height, and the codepoint count for a single line of UTF-8 text.
func (f *Font) MeasureText(sizePx float64, text string) TextMetrics {
	s := f.scale(sizePx)
	widthUnits := 0
	count := 0
	prev := rune(-1)
	for i := 0; i < len(text); {
		var cp rune
		cp, i = Decode(text, i)
		if cp == 0 {
			continue
		}
		widthUnits += f.AdvanceUnits(cp)
		if prev >= 0 {
			widthUnits += f.Kerning(prev, cp)
		}
		prev = cp
		count++
	}
	return TextMetrics{
		Width:      int32(float64(widthUnits)*s + 0.5),
		Height:     f.LineHeight(sizePx),
		GlyphCount: count,
	}
}

// HitTest returns the zero-based index of the codepoint whose half-width
// box contains x, or -1 when x is past the end of the text.
func (f *Font) HitTest(sizePx float64, text string, x int32) int {
	s := f.scale(sizePx)
	penUnits := 0
	idx := 0
	prev := rune(-1)
	for i := 0; i < len(text); {
		var cp rune
		cp, i = Decode(text, i)
		if cp == 0 {
			continue
		}
		if prev >= 0 {
			penUnits += f.Kerning(prev, cp)
		}
		adv := f.AdvanceUnits(cp)
		mid := int32(float64(penUnits)*s + float64(adv)*s/2 + 0.5)
		right := int32(float64(penUnits+adv)*s + 0.5)
		if x < mid {
			return idx
		}
		if x < right {
			// Right half of the glyph box: caret lands after this one.
			return idx + 1
		}
		penUnits += adv
		prev = cp
		idx++
	}
	return -1
}

// CursorX returns the pen x offset in pixels before the codepoint at the
// given index; the inverse of HitTest. Indices past the end return the full
// text width.
func (f *Font) CursorX(sizePx float64, text string, index int) int32 {
	s := f.scale(sizePx)
	penUnits := 0
	idx := 0
	prev := rune(-1)
	for i := 0; i < len(text); {
		if idx >= index {
			break
		}
		var cp rune
		cp, i = Decode(text, i)
		if cp == 0 {
			continue
		}
		if prev >= 0 {
			penUnits += f.Kerning(prev, cp)
		}
		penUnits += f.AdvanceUnits(cp)
		prev = cp
		idx++
	}
	return int32(float64(penUnits)*s + 0.5)
}

// DrawText composites a line of text onto the canvas with source-over
// blending. (x, y) is the baseline origin; each glyph's coverage scales the
// text color's alpha.
func (f *Font) DrawText(c Canvas, sizePx float64, x, y int32, text string, color gfx.Color) int32 {
	s := f.scale(sizePx)
	penUnits := 0
	prev := rune(-1)
	baseA := uint32(color.A())
	for i := 0; i < len(text); {
		var cp rune
		cp, i = Decode(text, i)
		if cp == 0 {
			continue
		}
		if prev >= 0 {
			penUnits += f.Kerning(prev, cp)
		}
		pen := int32(float64(penUnits)*s + 0.5)
		g := f.RasterizeGlyph(cp, sizePx)
		if g != nil && g.Bitmap != nil {
			gx := x + pen + g.BearingX
			gy := y - g.BearingY
			for row := int32(0); row < g.Height; row++ {
				for col := int32(0); col < g.Width; col++ {
					cov := uint32(g.Bitmap[row*g.Width+col])
					if cov == 0 {
						continue
					}
					a := uint8(cov * baseA / 255)
					c.PsetAlpha(gx+col, gy+row, gfx.RGBA(color.R(), color.G(), color.B(), a))
				}
			}
		}
		penUnits += f.AdvanceUnits(cp)
		prev = cp
	}
	return int32(float64(penUnits)*s + 0.5)
}
