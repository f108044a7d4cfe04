package font

import (
	"bytes"
	"testing"
)

// testFontBuilder assembles a minimal TrueType file: three glyphs
// (.notdef, 'A', 'B', where both letters are 400x700 unit boxes), a format 4
// cmap, short loca, one kern pair ('A','B' = -50) and a Macintosh name
// record.
type testFontBuilder struct {
	bytes.Buffer
}

func (b *testFontBuilder) u16(v uint16) { b.Write([]byte{byte(v >> 8), byte(v)}) }
func (b *testFontBuilder) i16v(v int16) { b.u16(uint16(v)) }
func (b *testFontBuilder) u32(v uint32) {
	b.Write([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

func boxGlyph() []byte {
	var g testFontBuilder
	g.i16v(1) // one contour
	g.i16v(100)
	g.i16v(0)
	g.i16v(500)
	g.i16v(700)
	g.u16(3) // endPt
	g.u16(0) // no instructions
	for i := 0; i < 4; i++ {
		g.WriteByte(0x01) // on-curve, long x and y deltas
	}
	for _, dx := range []int16{100, 400, 0, -400} {
		g.i16v(dx)
	}
	for _, dy := range []int16{0, 0, 700, 0} {
		g.i16v(dy)
	}
	return g.Bytes()
}

func buildTestFont(t *testing.T) []byte {
	t.Helper()

	var head testFontBuilder
	head.Write(make([]byte, 18))
	head.u16(1000) // unitsPerEm
	head.Write(make([]byte, 30))
	head.i16v(0) // short loca
	head.i16v(0) // glyphDataFormat

	var hhea testFontBuilder
	hhea.u32(0x00010000)
	hhea.i16v(800)  // ascent
	hhea.i16v(-200) // descent
	hhea.i16v(0)    // line gap
	hhea.Write(make([]byte, 24))
	hhea.u16(3) // numHMetrics

	var maxp testFontBuilder
	maxp.u32(0x00010000)
	maxp.u16(3) // numGlyphs

	var hmtx testFontBuilder
	for _, m := range []struct {
		adv uint16
		lsb int16
	}{{500, 0}, {600, 100}, {600, 100}} {
		hmtx.u16(m.adv)
		hmtx.i16v(m.lsb)
	}

	var cmap testFontBuilder
	cmap.u16(0) // version
	cmap.u16(1) // one encoding record
	cmap.u16(3) // platform: Windows
	cmap.u16(1) // encoding: Unicode BMP
	cmap.u32(12)
	// Format 4 subtable: segments [65..66] and the 0xFFFF terminator.
	cmap.u16(4)
	cmap.u16(32) // length
	cmap.u16(0)  // language
	cmap.u16(4)  // segCountX2
	cmap.u16(4)  // searchRange
	cmap.u16(1)  // entrySelector
	cmap.u16(0)  // rangeShift
	cmap.u16(66)
	cmap.u16(0xFFFF)
	cmap.u16(0) // reservedPad
	cmap.u16(65)
	cmap.u16(0xFFFF)
	cmap.i16v(-64) // 'A' -> glyph 1
	cmap.i16v(1)
	cmap.u16(0)
	cmap.u16(0)

	glyph := boxGlyph()
	var glyf testFontBuilder
	glyf.Write(glyph)
	glyf.Write(glyph)

	var loca testFontBuilder
	loca.u16(0)
	loca.u16(0) // glyph 0 empty
	loca.u16(uint16(len(glyph) / 2))
	loca.u16(uint16(len(glyph)))

	var kern testFontBuilder
	kern.u16(0) // version
	kern.u16(1) // one subtable
	kern.u16(0)
	kern.u16(20)     // subtable length
	kern.u16(0x0001) // horizontal, format 0
	kern.u16(1)      // one pair
	kern.u16(6)
	kern.u16(0)
	kern.u16(0)
	kern.u16(1)
	kern.u16(2)
	kern.i16v(-50)

	var name testFontBuilder
	name.u16(0)
	name.u16(1)  // one record
	name.u16(18) // string storage offset
	name.u16(1)  // platform: Macintosh
	name.u16(0)
	name.u16(0)
	name.u16(1) // family name
	name.u16(7)
	name.u16(0)
	name.WriteString("TestFam")

	tables := []struct {
		tag  string
		data []byte
	}{
		{"head", head.Bytes()},
		{"hhea", hhea.Bytes()},
		{"maxp", maxp.Bytes()},
		{"hmtx", hmtx.Bytes()},
		{"cmap", cmap.Bytes()},
		{"loca", loca.Bytes()},
		{"glyf", glyf.Bytes()},
		{"kern", kern.Bytes()},
		{"name", name.Bytes()},
	}

	var file testFontBuilder
	file.u32(0x00010000)
	file.u16(uint16(len(tables)))
	file.u16(0)
	file.u16(0)
	file.u16(0)
	offset := uint32(12 + 16*len(tables))
	for _, tb := range tables {
		file.WriteString(tb.tag)
		file.u32(0) // checksum, unchecked
		file.u32(offset)
		file.u32(uint32(len(tb.data)))
		offset += uint32(len(tb.data))
	}
	for _, tb := range tables {
		file.Write(tb.data)
	}
	return file.Bytes()
}

func loadTestFont(t *testing.T) *Font {
	t.Helper()
	f, err := Load(buildTestFont(t))
	if err != nil {
		t.Fatalf("load test font: %v", err)
	}
	return f
}

func TestLoadParsesTables(t *testing.T) {
	f := loadTestFont(t)
	if f.UnitsPerEm() != 1000 {
		t.Errorf("unitsPerEm = %d, want 1000", f.UnitsPerEm())
	}
	if f.NumGlyphs() != 3 {
		t.Errorf("numGlyphs = %d, want 3", f.NumGlyphs())
	}
	if f.Family() != "TestFam" {
		t.Errorf("family = %q, want TestFam", f.Family())
	}
	a, d, _ := f.Metrics(100)
	if a != 80 || d != -20 {
		t.Errorf("metrics at 100px = (%d, %d), want (80, -20)", a, d)
	}
}

func TestGlyphIndex(t *testing.T) {
	f := loadTestFont(t)
	tests := []struct {
		cp   rune
		want uint16
	}{
		{'A', 1},
		{'B', 2},
		{'C', 0},
		{'z', 0},
		{0x2603, 0}, // snowman, not mapped
	}
	for _, tt := range tests {
		if got := f.GlyphIndex(tt.cp); got != tt.want {
			t.Errorf("GlyphIndex(%q) = %d, want %d", tt.cp, got, tt.want)
		}
	}
}

func TestKerning(t *testing.T) {
	f := loadTestFont(t)
	if k := f.Kerning('A', 'B'); k != -50 {
		t.Errorf("kern(A,B) = %d, want -50", k)
	}
	if k := f.Kerning('B', 'A'); k != 0 {
		t.Errorf("kern(B,A) = %d, want 0", k)
	}
}

func TestMeasureText(t *testing.T) {
	f := loadTestFont(t)
	// At 100px: scale 0.1. "AB" = 600 + 600 - 50 kern = 1150 units = 115px.
	m := f.MeasureText(100, "AB")
	if m.Width != 115 {
		t.Errorf("width = %d, want 115", m.Width)
	}
	if m.GlyphCount != 2 {
		t.Errorf("glyph count = %d, want 2", m.GlyphCount)
	}
	if m.Height != f.LineHeight(100) {
		t.Errorf("height = %d, want line height %d", m.Height, f.LineHeight(100))
	}

	if got := f.MeasureText(100, ""); got.Width != 0 || got.GlyphCount != 0 {
		t.Errorf("empty measure = %+v", got)
	}
}

func TestCursorXHitTestInverse(t *testing.T) {
	f := loadTestFont(t)
	text := "ABA"
	for idx := 0; idx <= 3; idx++ {
		x := f.CursorX(100, text, idx)
		if idx < 3 {
			hit := f.HitTest(100, text, x+1)
			if hit != idx {
				t.Errorf("HitTest(CursorX(%d)+1) = %d, want %d", idx, hit, idx)
			}
		}
	}
	if hit := f.HitTest(100, text, 100000); hit != -1 {
		t.Errorf("far hit = %d, want -1", hit)
	}
}

func TestRasterizeGlyph(t *testing.T) {
	f := loadTestFont(t)
	g := f.RasterizeGlyph('A', 100)
	if g == nil {
		t.Fatal("rasterize returned nil")
	}
	if g.Advance != 60 {
		t.Errorf("advance = %d, want 60", g.Advance)
	}
	if g.Bitmap == nil || g.Width <= 0 || g.Height <= 0 {
		t.Fatalf("empty bitmap: %dx%d", g.Width, g.Height)
	}
	// The box glyph spans x 100..500, y 0..700 units = 40x70 px; coverage
	// in the middle of the box must be solid.
	mid := g.Bitmap[(g.Height/2)*g.Width+g.Width/2]
	if mid < 250 {
		t.Errorf("centre coverage = %d, want ~255", mid)
	}
	if g.BearingY != 70 {
		t.Errorf("bearingY = %d, want 70", g.BearingY)
	}

	// Same key must come back from the cache as the same pointer.
	if g2 := f.RasterizeGlyph('A', 100); g2 != g {
		t.Error("second rasterisation missed the cache")
	}
	// Unmapped codepoints fall to the empty .notdef glyph.
	if g3 := f.RasterizeGlyph('C', 100); g3 == nil || g3.Bitmap != nil {
		t.Error(".notdef should rasterise to an advance-only glyph")
	}
}
