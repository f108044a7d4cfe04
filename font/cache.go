package font

// glyphKey identifies a cached rasterisation: the pixel size quantised to
// 24.8 fixed point plus the codepoint. The font is implicit (one cache per
// font).
type glyphKey struct {
	sizeQ8    int32
	codepoint rune
}

// GlyphCache holds rasterised glyphs under a byte budget. Every lookup
// stamps the entry with a monotonic tick; when an insertion would exceed the
// budget, entries are evicted strictly lowest-tick first until it fits.
// Bitmap slices handed out stay valid until their entry is evicted.
type GlyphCache struct {
	entries   map[glyphKey]*Glyph
	liveBytes int
	maxMemory int
	nextTick  uint64
}

// NewGlyphCache creates a cache with the given byte budget.
func NewGlyphCache(maxMemory int) *GlyphCache {
	if maxMemory < 1 {
		maxMemory = DefaultCacheBudget
	}
	return &GlyphCache{
		entries:   make(map[glyphKey]*Glyph),
		maxMemory: maxMemory,
	}
}

func (c *GlyphCache) lookup(key glyphKey) (*Glyph, bool) {
	g, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	g.tick = c.nextTick
	c.nextTick++
	return g, true
}

func (c *GlyphCache) insert(key glyphKey, g *Glyph) {
	g.bytes = len(g.Bitmap)
	g.tick = c.nextTick
	c.nextTick++

	if old, ok := c.entries[key]; ok {
		c.liveBytes -= old.bytes
	}
	for c.liveBytes+g.bytes > c.maxMemory && len(c.entries) > 0 {
		c.evictOldest()
	}
	c.entries[key] = g
	c.liveBytes += g.bytes
}

// evictOldest removes the entry with the lowest tick.
func (c *GlyphCache) evictOldest() {
	var oldestKey glyphKey
	var oldest *Glyph
	for k, g := range c.entries {
		if oldest == nil || g.tick < oldest.tick {
			oldestKey, oldest = k, g
		}
	}
	if oldest != nil {
		c.liveBytes -= oldest.bytes
		delete(c.entries, oldestKey)
	}
}

// Flush discards every entry.
func (c *GlyphCache) Flush() {
	c.entries = make(map[glyphKey]*Glyph)
	c.liveBytes = 0
}

// Len returns the number of cached glyphs.
func (c *GlyphCache) Len() int { return len(c.entries) }

// LiveBytes returns the bytes held by cached bitmaps.
func (c *GlyphCache) LiveBytes() int { return c.liveBytes }

// Budget returns the byte budget.
func (c *GlyphCache) Budget() int { return c.maxMemory }
