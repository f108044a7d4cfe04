package font

import (
	"image"

	"golang.org/x/image/vector"
)

// Glyph is a rasterised glyph: an 8-bit alpha coverage bitmap plus
// pixel-space metrics. BearingY is the distance from the baseline up to the
// bitmap's top row. The bitmap pointer is stable until the glyph is evicted
// from its cache.
type Glyph struct {
	Bitmap   []byte
	Width    int32
	Height   int32
	BearingX int32
	BearingY int32
	Advance  int32

	tick  uint64
	bytes int
}

// outline is a decoded glyph outline in font units.
type outline struct {
	contours [][]outlinePoint
}

type outlinePoint struct {
	x, y    float64
	onCurve bool
}

// Simple glyph flag bits.
const (
	flagOnCurve = 0x01
	flagXShort  = 0x02
	flagYShort  = 0x04
	flagRepeat  = 0x08
	flagXSame   = 0x10 // positive short X, or same X
	flagYSame   = 0x20 // positive short Y, or same Y
)

// Composite glyph flag bits.
const (
	compArgsWords    = 0x0001
	compArgsXY       = 0x0002
	compHaveScale    = 0x0008
	compMoreComps    = 0x0020
	compXYScale      = 0x0040
	compTwoByTwo     = 0x0080
)

// RasterizeGlyph rasterises a codepoint at the given pixel size, consulting
// the cache first. Returns nil for codepoints that map to an empty outline
// (the glyph still carries an advance; use AdvanceUnits).
func (f *Font) RasterizeGlyph(cp rune, sizePx float64) *Glyph {
	key := glyphKey{sizeQ8: sizeQ8(sizePx), codepoint: cp}
	if g, ok := f.cache.lookup(key); ok {
		return g
	}
	g := f.rasterize(cp, sizePx)
	if g == nil {
		return nil
	}
	f.cache.insert(key, g)
	return g
}

// sizeQ8 quantises a pixel size to 24.8 fixed point for cache keying.
func sizeQ8(sizePx float64) int32 {
	return int32(sizePx*256 + 0.5)
}

func (f *Font) rasterize(cp rune, sizePx float64) *Glyph {
	glyph := f.GlyphIndex(cp)
	adv, _ := f.hMetrics(glyph)
	s := f.scale(sizePx)
	advance := int32(float64(adv)*s + 0.5)

	out, ok := f.outline(glyph, 0)
	if !ok || len(out.contours) == 0 {
		// Empty glyph (space and friends): advance only, no bitmap.
		return &Glyph{Advance: advance}
	}

	// Pixel-space bounds of the scaled outline.
	minX, minY := 1e9, 1e9
	maxX, maxY := -1e9, -1e9
	for _, c := range out.contours {
		for _, p := range c {
			x, y := p.x*s, p.y*s
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	x0 := int32(floor(minX))
	x1 := int32(ceil(maxX)) + 1
	yTop := int32(ceil(maxY))
	yBot := int32(floor(minY))
	w := x1 - x0
	h := yTop - yBot + 1
	if w <= 0 || h <= 0 {
		return &Glyph{Advance: advance}
	}

	r := vector.NewRasterizer(int(w), int(h))
	for _, c := range out.contours {
		drawContour(r, c, s, float64(x0), float64(yTop))
	}
	dst := image.NewAlpha(image.Rect(0, 0, int(w), int(h)))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	return &Glyph{
		Bitmap:   dst.Pix,
		Width:    w,
		Height:   h,
		BearingX: x0,
		BearingY: yTop, // baseline up to the bitmap's top row
		Advance:  advance,
	}
}

// drawContour feeds one TrueType contour into the rasterizer as lines and
// quadratic segments. Font-space y grows upward; bitmap y grows downward,
// so y is flipped about top (font y = top maps to bitmap row 0).
func drawContour(r *vector.Rasterizer, pts []outlinePoint, s, xOff, top float64) {
	if len(pts) == 0 {
		return
	}
	tx := func(p outlinePoint) (float32, float32) {
		return float32(p.x*s - xOff), float32(top - p.y*s)
	}

	// Start on an on-curve point; if none exists, start at the implied
	// midpoint of the first two control points.
	start := -1
	for i, p := range pts {
		if p.onCurve {
			start = i
			break
		}
	}
	var sx, sy float32
	if start < 0 {
		mid := outlinePoint{
			x: (pts[0].x + pts[1].x) / 2,
			y: (pts[0].y + pts[1].y) / 2,
		}
		sx, sy = tx(mid)
		start = 0
	} else {
		sx, sy = tx(pts[start])
	}
	r.MoveTo(sx, sy)

	n := len(pts)
	var ctrl *outlinePoint
	for i := 1; i <= n; i++ {
		p := pts[(start+i)%n]
		if p.onCurve {
			px, py := tx(p)
			if ctrl != nil {
				cx, cy := tx(*ctrl)
				r.QuadTo(cx, cy, px, py)
				ctrl = nil
			} else {
				r.LineTo(px, py)
			}
			continue
		}
		if ctrl != nil {
			// Two off-curve points in a row: implicit on-curve midpoint.
			mid := outlinePoint{x: (ctrl.x + p.x) / 2, y: (ctrl.y + p.y) / 2}
			cx, cy := tx(*ctrl)
			mx, my := tx(mid)
			r.QuadTo(cx, cy, mx, my)
		}
		q := p
		ctrl = &q
	}
	if ctrl != nil {
		cx, cy := tx(*ctrl)
		r.QuadTo(cx, cy, sx, sy)
	} else {
		r.ClosePath()
	}
}

// outline decodes a glyph outline in font units. depth guards composite
// recursion; nested composites beyond one level are skipped.
func (f *Font) outline(glyph uint16, depth int) (outline, bool) {
	var out outline
	start, end, ok := f.glyphRange(glyph)
	if !ok {
		return out, false
	}
	if start == end {
		return out, true // empty glyph
	}
	off := f.glyfOff + start
	numContours := f.i16(off)
	if numContours >= 0 {
		return f.simpleOutline(off, int(numContours))
	}
	if depth >= 1 {
		return out, true
	}
	return f.compositeOutline(off, depth)
}

func (f *Font) simpleOutline(off uint32, numContours int) (outline, bool) {
	var out outline
	endPtsOff := off + 10
	numPoints := 0
	ends := make([]int, numContours)
	for i := 0; i < numContours; i++ {
		ends[i] = int(f.u16(endPtsOff + uint32(i*2)))
	}
	if numContours > 0 {
		numPoints = ends[numContours-1] + 1
	}
	insLen := uint32(f.u16(endPtsOff + uint32(numContours*2)))
	p := endPtsOff + uint32(numContours*2) + 2 + insLen

	// Flags, with the repeat encoding.
	flags := make([]uint8, 0, numPoints)
	for len(flags) < numPoints {
		fl := f.u8(p)
		p++
		flags = append(flags, fl)
		if fl&flagRepeat != 0 {
			rep := int(f.u8(p))
			p++
			for j := 0; j < rep && len(flags) < numPoints; j++ {
				flags = append(flags, fl)
			}
		}
	}

	xs := make([]float64, numPoints)
	x := 0
	for i := 0; i < numPoints; i++ {
		fl := flags[i]
		if fl&flagXShort != 0 {
			d := int(f.u8(p))
			p++
			if fl&flagXSame == 0 {
				d = -d
			}
			x += d
		} else if fl&flagXSame == 0 {
			x += int(f.i16(p))
			p += 2
		}
		xs[i] = float64(x)
	}

	ys := make([]float64, numPoints)
	y := 0
	for i := 0; i < numPoints; i++ {
		fl := flags[i]
		if fl&flagYShort != 0 {
			d := int(f.u8(p))
			p++
			if fl&flagYSame == 0 {
				d = -d
			}
			y += d
		} else if fl&flagYSame == 0 {
			y += int(f.i16(p))
			p += 2
		}
		ys[i] = float64(y)
	}

	prev := 0
	for i := 0; i < numContours; i++ {
		contour := make([]outlinePoint, 0, ends[i]-prev+1)
		for j := prev; j <= ends[i]; j++ {
			contour = append(contour, outlinePoint{
				x:       xs[j],
				y:       ys[j],
				onCurve: flags[j]&flagOnCurve != 0,
			})
		}
		out.contours = append(out.contours, contour)
		prev = ends[i] + 1
	}
	return out, true
}

func (f *Font) compositeOutline(off uint32, depth int) (outline, bool) {
	var out outline
	p := off + 10
	for {
		flags := f.u16(p)
		component := f.u16(p + 2)
		p += 4

		var dx, dy float64
		if flags&compArgsWords != 0 {
			if flags&compArgsXY != 0 {
				dx = float64(f.i16(p))
				dy = float64(f.i16(p + 2))
			}
			p += 4
		} else {
			if flags&compArgsXY != 0 {
				dx = float64(int8(f.u8(p)))
				dy = float64(int8(f.u8(p + 1)))
			}
			p += 2
		}

		// 2.14 fixed-point transform; identity when absent.
		a, b, c, d := 1.0, 0.0, 0.0, 1.0
		switch {
		case flags&compHaveScale != 0:
			a = f2dot14(f.i16(p))
			d = a
			p += 2
		case flags&compXYScale != 0:
			a = f2dot14(f.i16(p))
			d = f2dot14(f.i16(p + 2))
			p += 4
		case flags&compTwoByTwo != 0:
			a = f2dot14(f.i16(p))
			b = f2dot14(f.i16(p + 2))
			c = f2dot14(f.i16(p + 4))
			d = f2dot14(f.i16(p + 6))
			p += 8
		}

		sub, ok := f.outline(component, depth+1)
		if ok {
			for _, contour := range sub.contours {
				tc := make([]outlinePoint, len(contour))
				for i, pt := range contour {
					tc[i] = outlinePoint{
						x:       a*pt.x + c*pt.y + dx,
						y:       b*pt.x + d*pt.y + dy,
						onCurve: pt.onCurve,
					}
				}
				out.contours = append(out.contours, tc)
			}
		}

		if flags&compMoreComps == 0 {
			break
		}
	}
	return out, true
}

func f2dot14(v int16) float64 { return float64(v) / 16384.0 }

func floor(v float64) float64 {
	iv := float64(int64(v))
	if v < 0 && v != iv {
		return iv - 1
	}
	return iv
}

func ceil(v float64) float64 {
	iv := float64(int64(v))
	if v > 0 && v != iv {
		return iv + 1
	}
	return iv
}
