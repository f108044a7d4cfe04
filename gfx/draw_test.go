package gfx_test

import (
	"testing"

	"github.com/viperdos/gui/gfx"
	"github.com/viperdos/gui/gfx/backend/mock"
)

func newTestWindow(t *testing.T, w, h int32) (*gfx.Window, *mock.Backend) {
	t.Helper()
	b := mock.New()
	win, err := gfx.New(b, gfx.WithSize(w, h))
	if err != nil {
		t.Fatalf("create window: %v", err)
	}
	t.Cleanup(win.Destroy)
	return win, b
}

func TestClsFillAndReadback(t *testing.T) {
	win, _ := newTestWindow(t, 100, 100)
	win.Cls(gfx.Color(0xFFFF0000))

	for y := int32(0); y < 100; y++ {
		for x := int32(0); x < 100; x++ {
			if c := win.Point(x, y); c != gfx.RGB(255, 0, 0) {
				t.Fatalf("point(%d,%d) = %08X, want FFFF0000", x, y, uint32(c))
			}
		}
	}

	fb, ok := win.Framebuffer()
	if !ok {
		t.Fatal("framebuffer unavailable")
	}
	if fb.Stride() != fb.Width()*4 {
		t.Errorf("stride = %d, want %d", fb.Stride(), fb.Width()*4)
	}
	px := fb.Pixels()
	for i := 3; i < len(px); i += 4 {
		if px[i] != 0xFF {
			t.Fatalf("alpha at byte %d = %02X, want FF", i, px[i])
		}
	}
}

func TestPsetOutOfBoundsDiscarded(t *testing.T) {
	win, _ := newTestWindow(t, 10, 10)
	win.Cls(gfx.Black)
	before := make([]byte, 10*10*4)
	fb, _ := win.Framebuffer()
	copy(before, fb.Pixels())

	for _, p := range []struct{ x, y int32 }{
		{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {-100, -100}, {1000, 1000},
	} {
		win.Pset(p.x, p.y, gfx.White)
	}

	after := fb.Pixels()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("framebuffer changed at byte %d by OOB write", i)
		}
	}
}

func TestPsetPointRoundTrip(t *testing.T) {
	win, _ := newTestWindow(t, 32, 32)
	colors := []gfx.Color{gfx.RGB(1, 2, 3), gfx.RGB(255, 128, 0), gfx.RGB(0, 0, 0)}
	for i, c := range colors {
		x, y := int32(i*7), int32(i*9)
		win.Pset(x, y, c)
		if got := win.Point(x, y); got != c.Opaque() {
			t.Errorf("point(%d,%d) = %08X, want %08X", x, y, uint32(got), uint32(c.Opaque()))
		}
	}
}

func TestPsetAlphaSourceOver(t *testing.T) {
	win, _ := newTestWindow(t, 8, 8)
	win.Cls(gfx.Black)

	// Alpha 255 must match Pset exactly.
	win.PsetAlpha(0, 0, gfx.RGBA(10, 20, 30, 255))
	if got := win.Point(0, 0); got != gfx.RGB(10, 20, 30) {
		t.Errorf("opaque blend = %08X, want %08X", uint32(got), uint32(gfx.RGB(10, 20, 30)))
	}

	// 50% white over black is mid grey.
	win.PsetAlpha(1, 1, gfx.RGBA(255, 255, 255, 128))
	c := win.Point(1, 1)
	if c.R() < 126 || c.R() > 130 {
		t.Errorf("half blend red = %d, want ~128", c.R())
	}

	// Alpha 0 leaves the destination untouched.
	win.Pset(2, 2, gfx.RGB(50, 60, 70))
	win.PsetAlpha(2, 2, gfx.RGBA(255, 255, 255, 0))
	if got := win.Point(2, 2); got != gfx.RGB(50, 60, 70) {
		t.Errorf("zero-alpha blend changed pixel: %08X", uint32(got))
	}
}

func TestFillRectIntersection(t *testing.T) {
	win, _ := newTestWindow(t, 50, 50)
	win.Cls(gfx.Black)
	win.FillRect(40, 40, 20, 20, gfx.Green)

	for y := int32(0); y < 50; y++ {
		for x := int32(0); x < 50; x++ {
			want := gfx.Black
			if x >= 40 && y >= 40 {
				want = gfx.Green
			}
			if got := win.Point(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %08X, want %08X", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestRectDegenerateDrawsNothing(t *testing.T) {
	win, _ := newTestWindow(t, 20, 20)
	win.Cls(gfx.Black)
	win.Rect(5, 5, 0, 10, gfx.White)
	win.Rect(5, 5, 10, 0, gfx.White)
	win.Rect(5, 5, -3, -3, gfx.White)
	win.FillRect(5, 5, 0, 10, gfx.White)
	for y := int32(0); y < 20; y++ {
		for x := int32(0); x < 20; x++ {
			if win.Point(x, y) != gfx.Black {
				t.Fatalf("degenerate rect painted pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestBresenhamLine(t *testing.T) {
	win, _ := newTestWindow(t, 200, 200)
	win.Cls(gfx.Black)

	win.Line(10, 10, 50, 10, gfx.White)
	for x := int32(10); x <= 50; x++ {
		if win.Point(x, 10) != gfx.White {
			t.Fatalf("horizontal line missing pixel (%d,10)", x)
		}
	}
	if win.Point(9, 10) != gfx.Black || win.Point(51, 10) != gfx.Black {
		t.Error("horizontal line over-drew its endpoints")
	}

	win.Line(0, 0, 10, 10, gfx.Green)
	for _, p := range []struct{ x, y int32 }{{0, 0}, {5, 5}, {10, 10}} {
		if win.Point(p.x, p.y) != gfx.Green {
			t.Errorf("diagonal missing pixel (%d,%d)", p.x, p.y)
		}
	}
	greens := 0
	for y := int32(0); y <= 10; y++ {
		for x := int32(0); x <= 10; x++ {
			if win.Point(x, y) == gfx.Green {
				greens++
			}
		}
	}
	if greens < 8 {
		t.Errorf("diagonal drew %d pixels, want >= 8", greens)
	}
}

func TestLinePointLength(t *testing.T) {
	win, _ := newTestWindow(t, 20, 20)
	win.Cls(gfx.Black)
	win.Line(7, 7, 7, 7, gfx.White)

	lit := 0
	for y := int32(0); y < 20; y++ {
		for x := int32(0); x < 20; x++ {
			if win.Point(x, y) == gfx.White {
				lit++
			}
		}
	}
	if lit != 1 {
		t.Errorf("point-length line drew %d pixels, want exactly 1", lit)
	}
	if win.Point(7, 7) != gfx.White {
		t.Error("point-length line missed its pixel")
	}
}

func TestCircleBoundaries(t *testing.T) {
	win, _ := newTestWindow(t, 40, 40)

	win.Cls(gfx.Black)
	win.Circle(20, 20, 0, gfx.White)
	if win.Point(20, 20) != gfx.White {
		t.Error("radius-0 circle missed centre pixel")
	}

	win.Cls(gfx.Black)
	win.Circle(20, 20, -5, gfx.White)
	win.FillCircle(20, 20, -5, gfx.White)
	for y := int32(0); y < 40; y++ {
		for x := int32(0); x < 40; x++ {
			if win.Point(x, y) != gfx.Black {
				t.Fatalf("negative radius painted pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestFillCircleArea(t *testing.T) {
	win, _ := newTestWindow(t, 200, 200)
	win.Cls(gfx.Black)
	win.FillCircle(100, 100, 30, gfx.Green)

	count := 0
	for y := int32(0); y < 200; y++ {
		for x := int32(0); x < 200; x++ {
			if win.Point(x, y) == gfx.Green {
				count++
			}
		}
	}
	// pi * 30^2 = 2827, allow 10%.
	if count < 2544 || count > 3110 {
		t.Errorf("filled circle area = %d pixels, want 2827 +/- 10%%", count)
	}
}

func TestClipRect(t *testing.T) {
	win, _ := newTestWindow(t, 40, 40)
	win.Cls(gfx.Black)
	win.SetClip(10, 10, 10, 10)
	win.FillRect(0, 0, 40, 40, gfx.White)
	win.ClearClip()

	for y := int32(0); y < 40; y++ {
		for x := int32(0); x < 40; x++ {
			inside := x >= 10 && x < 20 && y >= 10 && y < 20
			got := win.Point(x, y)
			if inside && got != gfx.White {
				t.Fatalf("clip interior (%d,%d) not painted", x, y)
			}
			if !inside && got != gfx.Black {
				t.Fatalf("clip exterior (%d,%d) painted", x, y)
			}
		}
	}
}

func TestColorHelpers(t *testing.T) {
	c := gfx.RGB(12, 34, 56)
	r, g, b := c.ToRGB()
	if r != 12 || g != 34 || b != 56 {
		t.Errorf("ToRGB = (%d,%d,%d), want (12,34,56)", r, g, b)
	}
	if c.A() != 0xFF {
		t.Errorf("RGB alpha = %02X, want FF", c.A())
	}
	if uint32(gfx.RGB(0xAB, 0xCD, 0xEF)) != 0xFFABCDEF {
		t.Errorf("RGB packing wrong: %08X", uint32(gfx.RGB(0xAB, 0xCD, 0xEF)))
	}
}
