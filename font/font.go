// Package font loads TrueType fonts and rasterises glyphs on demand into
// 8-bit alpha coverage bitmaps, cached per font with a byte-budgeted LRU.
// All multi-byte reads from the font file are big-endian.
package font

import (
	"fmt"
	"os"
	"unicode/utf16"
)

// DefaultCacheBudget is the glyph cache byte budget for new fonts.
const DefaultCacheBudget = 4 * 1024 * 1024

// Font is an immutable in-memory TrueType font plus parsed table state and
// the font's glyph cache. A Font must not be shared across goroutines.
type Font struct {
	data []byte

	family     string
	unitsPerEm uint16
	longLoca   bool

	ascent  int16
	descent int16
	lineGap int16

	numGlyphs   uint16
	numHMetrics uint16

	hmtxOff uint32
	locaOff uint32
	glyfOff uint32

	cmap cmapLookup
	kern map[uint32]int16

	cache *GlyphCache
}

type tableEntry struct {
	offset uint32
	length uint32
}

// Load parses a TrueType font from memory. The byte slice is copied so the
// caller may reuse its buffer.
func Load(data []byte) (*Font, error) {
	buf := make([]byte, len(data))
	copy(buf, data)
	f := &Font{data: buf}

	tables, err := f.parseTableDirectory()
	if err != nil {
		return nil, err
	}

	head, ok := tables["head"]
	if !ok {
		return nil, fmt.Errorf("font: missing head table")
	}
	if err := f.parseHead(head); err != nil {
		return nil, err
	}

	hhea, ok := tables["hhea"]
	if !ok {
		return nil, fmt.Errorf("font: missing hhea table")
	}
	if err := f.parseHhea(hhea); err != nil {
		return nil, err
	}

	maxp, ok := tables["maxp"]
	if !ok {
		return nil, fmt.Errorf("font: missing maxp table")
	}
	if err := f.parseMaxp(maxp); err != nil {
		return nil, err
	}

	hmtx, ok := tables["hmtx"]
	if !ok {
		return nil, fmt.Errorf("font: missing hmtx table")
	}
	f.hmtxOff = hmtx.offset

	cmap, ok := tables["cmap"]
	if !ok {
		return nil, fmt.Errorf("font: missing cmap table")
	}
	if err := f.parseCmap(cmap); err != nil {
		return nil, err
	}

	loca, ok := tables["loca"]
	if !ok {
		return nil, fmt.Errorf("font: missing loca table")
	}
	f.locaOff = loca.offset

	glyf, ok := tables["glyf"]
	if !ok {
		return nil, fmt.Errorf("font: missing glyf table")
	}
	f.glyfOff = glyf.offset

	if kern, ok := tables["kern"]; ok {
		f.parseKern(kern)
	}
	if name, ok := tables["name"]; ok {
		f.parseName(name)
	}

	f.cache = NewGlyphCache(DefaultCacheBudget)
	return f, nil
}

// LoadFile reads and parses a TrueType font file.
func LoadFile(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	f, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse %s: %w", path, err)
	}
	return f, nil
}

// Destroy flushes the glyph cache. The font is unusable afterwards.
func (f *Font) Destroy() {
	if f.cache != nil {
		f.cache.Flush()
	}
	f.data = nil
}

// Family returns the font family name, or "" when the name table is absent.
func (f *Font) Family() string { return f.family }

// UnitsPerEm returns the em-square size in font units.
func (f *Font) UnitsPerEm() int { return int(f.unitsPerEm) }

// NumGlyphs returns the glyph count.
func (f *Font) NumGlyphs() int { return int(f.numGlyphs) }

// Cache returns the font's glyph cache.
func (f *Font) Cache() *GlyphCache { return f.cache }

// GlyphIndex maps a codepoint to a glyph id, 0 (missing glyph) when absent.
func (f *Font) GlyphIndex(cp rune) uint16 { return f.cmap.lookup(uint32(cp)) }

// Kerning returns the kerning adjustment between two codepoints in font
// units, 0 when the pair is not kerned.
func (f *Font) Kerning(left, right rune) int {
	if f.kern == nil {
		return 0
	}
	l := f.GlyphIndex(left)
	r := f.GlyphIndex(right)
	return int(f.kern[uint32(l)<<16|uint32(r)])
}

// scale returns the font-unit to pixel factor for a pixel size.
func (f *Font) scale(sizePx float64) float64 {
	if f.unitsPerEm == 0 {
		return 0
	}
	return sizePx / float64(f.unitsPerEm)
}

// Metrics returns ascent, descent (negative) and line gap in pixels at the
// given size.
func (f *Font) Metrics(sizePx float64) (ascent, descent, lineGap int32) {
	s := f.scale(sizePx)
	return int32(float64(f.ascent)*s + 0.5),
		int32(float64(f.descent) * s),
		int32(float64(f.lineGap)*s + 0.5)
}

// LineHeight returns ascent - descent + lineGap in pixels.
func (f *Font) LineHeight(sizePx float64) int32 {
	a, d, g := f.Metrics(sizePx)
	return a - d + g
}

// hMetrics returns the advance and left-side bearing for a glyph in font
// units. Glyphs past numHMetrics repeat the last advance.
func (f *Font) hMetrics(glyph uint16) (advance uint16, lsb int16) {
	if f.numHMetrics == 0 {
		return 0, 0
	}
	if glyph >= f.numGlyphs {
		glyph = 0
	}
	if glyph < f.numHMetrics {
		off := f.hmtxOff + uint32(glyph)*4
		return f.u16(off), int16(f.u16(off + 2))
	}
	lastOff := f.hmtxOff + uint32(f.numHMetrics-1)*4
	advance = f.u16(lastOff)
	lsbOff := f.hmtxOff + uint32(f.numHMetrics)*4 + uint32(glyph-f.numHMetrics)*2
	return advance, int16(f.u16(lsbOff))
}

// AdvanceUnits returns a codepoint's horizontal advance in font units.
func (f *Font) AdvanceUnits(cp rune) int {
	adv, _ := f.hMetrics(f.GlyphIndex(cp))
	return int(adv)
}

// glyphRange returns the glyf byte range for a glyph id. A zero-length
// range is an empty glyph (e.g. space).
func (f *Font) glyphRange(glyph uint16) (start, end uint32, ok bool) {
	if glyph >= f.numGlyphs {
		return 0, 0, false
	}
	if f.longLoca {
		off := f.locaOff + uint32(glyph)*4
		if int(off)+8 > len(f.data) {
			return 0, 0, false
		}
		return f.u32(off), f.u32(off + 4), true
	}
	off := f.locaOff + uint32(glyph)*2
	if int(off)+4 > len(f.data) {
		return 0, 0, false
	}
	return uint32(f.u16(off)) * 2, uint32(f.u16(off+2)) * 2, true
}

// Big-endian readers. Out-of-range reads return zero; table offsets are
// validated at parse time.

func (f *Font) u8(off uint32) uint8 {
	if int(off) >= len(f.data) {
		return 0
	}
	return f.data[off]
}

func (f *Font) u16(off uint32) uint16 {
	if int(off)+2 > len(f.data) {
		return 0
	}
	return uint16(f.data[off])<<8 | uint16(f.data[off+1])
}

func (f *Font) u32(off uint32) uint32 {
	if int(off)+4 > len(f.data) {
		return 0
	}
	return uint32(f.data[off])<<24 | uint32(f.data[off+1])<<16 |
		uint32(f.data[off+2])<<8 | uint32(f.data[off+3])
}

func (f *Font) i16(off uint32) int16 { return int16(f.u16(off)) }

func (f *Font) parseTableDirectory() (map[string]tableEntry, error) {
	if len(f.data) < 12 {
		return nil, fmt.Errorf("font: file too short")
	}
	version := f.u32(0)
	if version != 0x00010000 && version != 0x74727565 { // 1.0 or 'true'
		return nil, fmt.Errorf("font: unsupported sfnt version %08X", version)
	}
	numTables := f.u16(4)
	tables := make(map[string]tableEntry, numTables)
	for i := uint32(0); i < uint32(numTables); i++ {
		rec := 12 + i*16
		if int(rec)+16 > len(f.data) {
			return nil, fmt.Errorf("font: truncated table directory")
		}
		tag := string(f.data[rec : rec+4])
		offset := f.u32(rec + 8)
		length := f.u32(rec + 12)
		if uint64(offset)+uint64(length) > uint64(len(f.data)) {
			return nil, fmt.Errorf("font: table %q out of range", tag)
		}
		tables[tag] = tableEntry{offset: offset, length: length}
	}
	return tables, nil
}

func (f *Font) parseHead(t tableEntry) error {
	if t.length < 54 {
		return fmt.Errorf("font: head table too short")
	}
	f.unitsPerEm = f.u16(t.offset + 18)
	if f.unitsPerEm == 0 {
		return fmt.Errorf("font: unitsPerEm is zero")
	}
	f.longLoca = f.i16(t.offset+50) != 0
	return nil
}

func (f *Font) parseHhea(t tableEntry) error {
	if t.length < 36 {
		return fmt.Errorf("font: hhea table too short")
	}
	f.ascent = f.i16(t.offset + 4)
	f.descent = f.i16(t.offset + 6)
	f.lineGap = f.i16(t.offset + 8)
	f.numHMetrics = f.u16(t.offset + 34)
	return nil
}

func (f *Font) parseMaxp(t tableEntry) error {
	if t.length < 6 {
		return fmt.Errorf("font: maxp table too short")
	}
	f.numGlyphs = f.u16(t.offset + 4)
	return nil
}

func (f *Font) parseName(t tableEntry) {
	count := f.u16(t.offset + 2)
	strOff := t.offset + uint32(f.u16(t.offset+4))
	for i := uint32(0); i < uint32(count); i++ {
		rec := t.offset + 6 + i*12
		platform := f.u16(rec)
		nameID := f.u16(rec + 6)
		length := uint32(f.u16(rec + 8))
		offset := strOff + uint32(f.u16(rec+10))
		if nameID != 1 || int(offset+length) > len(f.data) {
			continue
		}
		raw := f.data[offset : offset+length]
		switch platform {
		case 1: // Macintosh, treat as ASCII
			f.family = string(raw)
			return
		case 3: // Windows, UTF-16BE
			u := make([]uint16, 0, length/2)
			for j := 0; j+1 < int(length); j += 2 {
				u = append(u, uint16(raw[j])<<8|uint16(raw[j+1]))
			}
			f.family = string(utf16.Decode(u))
			// Keep scanning in case a Macintosh record follows.
		}
	}
}

func (f *Font) parseKern(t tableEntry) {
	nTables := f.u16(t.offset + 2)
	off := t.offset + 4
	for i := uint16(0); i < nTables; i++ {
		length := uint32(f.u16(off + 2))
		coverage := f.u16(off + 4)
		format := coverage >> 8
		horizontal := coverage&0x01 != 0
		if format == 0 && horizontal {
			nPairs := f.u16(off + 6)
			pairOff := off + 14
			f.kern = make(map[uint32]int16, nPairs)
			for p := uint32(0); p < uint32(nPairs); p++ {
				rec := pairOff + p*6
				left := f.u16(rec)
				right := f.u16(rec + 2)
				value := f.i16(rec + 4)
				f.kern[uint32(left)<<16|uint32(right)] = value
			}
			return
		}
		if length == 0 {
			return
		}
		off += length
	}
}
