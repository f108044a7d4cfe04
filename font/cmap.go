package font

import "fmt"

// cmapLookup maps codepoints to glyph ids using whichever supported cmap
// subtable the font carries: format 4 (BMP segments) or format 12 (full
// Unicode groups).
type cmapLookup struct {
	format4  *cmapFormat4
	format12 *cmapFormat12
}

func (c *cmapLookup) lookup(cp uint32) uint16 {
	if c.format12 != nil {
		return c.format12.lookup(cp)
	}
	if c.format4 != nil {
		return c.format4.lookup(cp)
	}
	return 0
}

type cmapFormat4 struct {
	segCount    int
	endCodes    []uint16
	startCodes  []uint16
	idDeltas    []int16
	idRangeOffs []uint16
	glyphIDs    []uint16 // trailing glyphIdArray, indexed past idRangeOffs
}

func (s *cmapFormat4) lookup(cp uint32) uint16 {
	if cp > 0xFFFF {
		return 0
	}
	c := uint16(cp)
	// Binary search for the first segment with endCode >= c.
	lo, hi := 0, s.segCount-1
	for lo < hi {
		mid := (lo + hi) / 2
		if s.endCodes[mid] < c {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	i := lo
	if i >= s.segCount || s.startCodes[i] > c || s.endCodes[i] < c {
		return 0
	}
	if s.idRangeOffs[i] == 0 {
		return uint16(int32(c) + int32(s.idDeltas[i]))
	}
	// idRangeOffset is a byte offset from its own position into the glyph
	// id array; expressed over the flattened arrays:
	idx := int(s.idRangeOffs[i])/2 + int(c-s.startCodes[i]) - (s.segCount - i)
	if idx < 0 || idx >= len(s.glyphIDs) {
		return 0
	}
	g := s.glyphIDs[idx]
	if g == 0 {
		return 0
	}
	return uint16(int32(g) + int32(s.idDeltas[i]))
}

type cmapGroup struct {
	start, end, startGlyph uint32
}

type cmapFormat12 struct {
	groups []cmapGroup
}

func (s *cmapFormat12) lookup(cp uint32) uint16 {
	lo, hi := 0, len(s.groups)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		g := s.groups[mid]
		switch {
		case cp < g.start:
			hi = mid - 1
		case cp > g.end:
			lo = mid + 1
		default:
			return uint16(g.startGlyph + (cp - g.start))
		}
	}
	return 0
}

func (f *Font) parseCmap(t tableEntry) error {
	numTables := f.u16(t.offset + 2)
	var best uint32
	var bestFormat uint16
	for i := uint32(0); i < uint32(numTables); i++ {
		rec := t.offset + 4 + i*8
		subOff := t.offset + f.u32(rec+4)
		format := f.u16(subOff)
		// Prefer format 12 when present, otherwise the first format 4.
		if format == 12 && bestFormat != 12 {
			best, bestFormat = subOff, 12
		} else if format == 4 && bestFormat == 0 {
			best, bestFormat = subOff, 4
		}
	}

	switch bestFormat {
	case 4:
		return f.parseCmap4(best)
	case 12:
		return f.parseCmap12(best)
	}
	return fmt.Errorf("font: no usable cmap subtable (format 4 or 12)")
}

func (f *Font) parseCmap4(off uint32) error {
	segCountX2 := f.u16(off + 6)
	segCount := int(segCountX2 / 2)
	if segCount == 0 {
		return fmt.Errorf("font: cmap format 4 has no segments")
	}
	s := &cmapFormat4{
		segCount:    segCount,
		endCodes:    make([]uint16, segCount),
		startCodes:  make([]uint16, segCount),
		idDeltas:    make([]int16, segCount),
		idRangeOffs: make([]uint16, segCount),
	}
	endOff := off + 14
	startOff := endOff + uint32(segCountX2) + 2 // +2 skips reservedPad
	deltaOff := startOff + uint32(segCountX2)
	rangeOff := deltaOff + uint32(segCountX2)
	for i := 0; i < segCount; i++ {
		o := uint32(i * 2)
		s.endCodes[i] = f.u16(endOff + o)
		s.startCodes[i] = f.u16(startOff + o)
		s.idDeltas[i] = f.i16(deltaOff + o)
		s.idRangeOffs[i] = f.u16(rangeOff + o)
	}
	// Glyph id array runs from end of idRangeOffsets to end of data; we
	// bound it loosely and range-check in lookup.
	glyphArr := rangeOff + uint32(segCountX2)
	n := (uint32(len(f.data)) - glyphArr) / 2
	s.glyphIDs = make([]uint16, n)
	for i := uint32(0); i < n; i++ {
		s.glyphIDs[i] = f.u16(glyphArr + i*2)
	}
	f.cmap.format4 = s
	return nil
}

func (f *Font) parseCmap12(off uint32) error {
	nGroups := f.u32(off + 12)
	groups := make([]cmapGroup, 0, nGroups)
	for i := uint32(0); i < nGroups; i++ {
		rec := off + 16 + i*12
		groups = append(groups, cmapGroup{
			start:      f.u32(rec),
			end:        f.u32(rec + 4),
			startGlyph: f.u32(rec + 8),
		})
	}
	f.cmap.format12 = &cmapFormat12{groups: groups}
	return nil
}
