package font

import "testing"

func fakeGlyph(bytes int) *Glyph {
	return &Glyph{Bitmap: make([]byte, bytes), Width: int32(bytes), Height: 1}
}

func key(cp rune) glyphKey { return glyphKey{sizeQ8: 14 * 256, codepoint: cp} }

func TestCacheLRUEviction(t *testing.T) {
	c := NewGlyphCache(300)
	c.insert(key('a'), fakeGlyph(100))
	c.insert(key('b'), fakeGlyph(100))
	c.insert(key('c'), fakeGlyph(100))
	if c.Len() != 3 || c.LiveBytes() != 300 {
		t.Fatalf("len=%d bytes=%d, want 3/300", c.Len(), c.LiveBytes())
	}

	// Touch 'a' so 'b' becomes the oldest.
	if _, ok := c.lookup(key('a')); !ok {
		t.Fatal("lookup a missed")
	}

	c.insert(key('d'), fakeGlyph(100))
	if _, ok := c.lookup(key('b')); ok {
		t.Error("b should have been evicted (lowest tick)")
	}
	for _, cp := range []rune{'a', 'c', 'd'} {
		if _, ok := c.lookup(key(cp)); !ok {
			t.Errorf("%q unexpectedly evicted", cp)
		}
	}
	if c.LiveBytes() != 300 {
		t.Errorf("live bytes = %d, want 300", c.LiveBytes())
	}
}

func TestCacheEvictsUntilFit(t *testing.T) {
	c := NewGlyphCache(250)
	c.insert(key('a'), fakeGlyph(100))
	c.insert(key('b'), fakeGlyph(100))
	// 200 bytes live; a 200-byte insert must evict both.
	c.insert(key('c'), fakeGlyph(200))
	if c.Len() != 1 {
		t.Errorf("len = %d, want 1", c.Len())
	}
	if _, ok := c.lookup(key('c')); !ok {
		t.Error("newest entry missing")
	}
	if c.LiveBytes() != 200 {
		t.Errorf("live bytes = %d, want 200", c.LiveBytes())
	}
}

func TestCacheReplaceSameKey(t *testing.T) {
	c := NewGlyphCache(1000)
	c.insert(key('a'), fakeGlyph(100))
	c.insert(key('a'), fakeGlyph(300))
	if c.Len() != 1 {
		t.Errorf("len = %d, want 1", c.Len())
	}
	if c.LiveBytes() != 300 {
		t.Errorf("live bytes = %d, want 300 after replace", c.LiveBytes())
	}
}

func TestCacheSizeKeysAreDistinct(t *testing.T) {
	c := NewGlyphCache(1000)
	c.insert(glyphKey{sizeQ8: 12 * 256, codepoint: 'x'}, fakeGlyph(10))
	c.insert(glyphKey{sizeQ8: 13 * 256, codepoint: 'x'}, fakeGlyph(10))
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2 (sizes key separately)", c.Len())
	}
}

func TestCacheFlush(t *testing.T) {
	c := NewGlyphCache(1000)
	c.insert(key('a'), fakeGlyph(10))
	c.Flush()
	if c.Len() != 0 || c.LiveBytes() != 0 {
		t.Errorf("after flush: len=%d bytes=%d", c.Len(), c.LiveBytes())
	}
}

func TestUTF8Helpers(t *testing.T) {
	s := "aé世x" // 1, 2, 3 byte sequences
	if n := Strlen(s); n != 4 {
		t.Errorf("Strlen = %d, want 4", n)
	}

	var cps []rune
	for i := 0; i < len(s); {
		var cp rune
		cp, i = Decode(s, i)
		cps = append(cps, cp)
	}
	want := []rune{'a', 0xE9, 0x4E16, 'x'}
	if len(cps) != len(want) {
		t.Fatalf("decoded %d codepoints, want %d", len(cps), len(want))
	}
	for i := range want {
		if cps[i] != want[i] {
			t.Errorf("codepoint %d = %U, want %U", i, cps[i], want[i])
		}
	}

	offsets := []int{0, 1, 3, 6, 7}
	for i, wantOff := range offsets {
		if got := Offset(s, i); got != wantOff {
			t.Errorf("Offset(%d) = %d, want %d", i, got, wantOff)
		}
	}
	if got := Offset(s, 99); got != len(s) {
		t.Errorf("past-end offset = %d, want %d", got, len(s))
	}

	// Invalid byte decodes to 0 and advances one byte.
	cp, next := Decode("\xff!", 0)
	if cp != 0 || next != 1 {
		t.Errorf("invalid decode = (%d, %d), want (0, 1)", cp, next)
	}
}
