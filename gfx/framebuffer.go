package gfx

import "unsafe"

// Compile-time configuration. COLOR_DEPTH is fixed at 32-bit RGBA.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultTitle  = "viperdos GFX"
	DefaultFPS    = 60
	MaxWidth      = 4096
	MaxHeight     = 4096

	// DefaultQueueSize is the event queue capacity.
	DefaultQueueSize = 256

	// FramebufferAlignment is the byte alignment of the pixel buffer.
	// Power of two, at least 16.
	FramebufferAlignment = 64
)

// ClipRect is a clip rectangle in framebuffer coordinates.
type ClipRect struct {
	X, Y, W, H int32
}

// Framebuffer is a software RGBA surface: 4 bytes per pixel, row-major,
// top-down, stride = width*4. Alpha is 0xFF after Cls and plain pixel
// writes; PsetAlpha composites source-over.
type Framebuffer struct {
	pixels []byte
	width  int32
	height int32
	stride int32

	clip    ClipRect
	hasClip bool
}

// newFramebuffer allocates an aligned, cleared pixel buffer. Every pixel is
// RGB 0 with alpha 0xFF.
func newFramebuffer(width, height int32) *Framebuffer {
	size := int(width) * int(height) * 4
	raw := make([]byte, size+FramebufferAlignment)
	off := uintptr(unsafe.Pointer(&raw[0])) & (FramebufferAlignment - 1)
	if off != 0 {
		off = FramebufferAlignment - off
	}
	fb := &Framebuffer{
		pixels: raw[off : int(off)+size : int(off)+size],
		width:  width,
		height: height,
		stride: width * 4,
	}
	fb.Cls(Black)
	return fb
}

// Width returns the framebuffer width in physical pixels.
func (fb *Framebuffer) Width() int32 { return fb.width }

// Height returns the framebuffer height in physical pixels.
func (fb *Framebuffer) Height() int32 { return fb.height }

// Stride returns the row length in bytes (always width*4).
func (fb *Framebuffer) Stride() int32 { return fb.stride }

// Pixels returns the raw pixel storage. The slice is read-only by contract;
// it remains valid until the framebuffer is resized or destroyed.
func (fb *Framebuffer) Pixels() []byte { return fb.pixels }

// SetClip sets the clip rectangle, intersected with the framebuffer bounds.
func (fb *Framebuffer) SetClip(x, y, w, h int32) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > fb.width {
		w = fb.width - x
	}
	if y+h > fb.height {
		h = fb.height - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	fb.clip = ClipRect{X: x, Y: y, W: w, H: h}
	fb.hasClip = true
}

// ClearClip removes the clip rectangle.
func (fb *Framebuffer) ClearClip() {
	fb.hasClip = false
}

// Clip returns the current clip rectangle and whether one is set.
func (fb *Framebuffer) Clip() (ClipRect, bool) {
	return fb.clip, fb.hasClip
}

// bounds returns the drawable region: the clip rect when set, otherwise the
// whole framebuffer.
func (fb *Framebuffer) bounds() ClipRect {
	if fb.hasClip {
		return fb.clip
	}
	return ClipRect{W: fb.width, H: fb.height}
}

func (fb *Framebuffer) contains(x, y int32) bool {
	b := fb.bounds()
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Pset writes an opaque pixel. Out-of-bounds and out-of-clip writes are
// silently discarded.
func (fb *Framebuffer) Pset(x, y int32, c Color) {
	if !fb.contains(x, y) {
		return
	}
	i := y*fb.stride + x*4
	fb.pixels[i] = c.R()
	fb.pixels[i+1] = c.G()
	fb.pixels[i+2] = c.B()
	fb.pixels[i+3] = 0xFF
}

// Point reads the pixel at (x, y) as an opaque color. Out-of-bounds reads
// return black. The clip rectangle does not apply to reads.
func (fb *Framebuffer) Point(x, y int32) Color {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return Black
	}
	i := y*fb.stride + x*4
	return RGB(fb.pixels[i], fb.pixels[i+1], fb.pixels[i+2])
}

// PsetAlpha composites a pixel source-over onto the destination:
// dst = src*a + dst*(1-a). Alpha 255 is bit-identical to Pset.
func (fb *Framebuffer) PsetAlpha(x, y int32, c Color) {
	if !fb.contains(x, y) {
		return
	}
	a := uint32(c.A())
	if a == 255 {
		fb.Pset(x, y, c)
		return
	}
	if a == 0 {
		return
	}
	i := y*fb.stride + x*4
	inv := 255 - a
	fb.pixels[i] = uint8((uint32(c.R())*a + uint32(fb.pixels[i])*inv) / 255)
	fb.pixels[i+1] = uint8((uint32(c.G())*a + uint32(fb.pixels[i+1])*inv) / 255)
	fb.pixels[i+2] = uint8((uint32(c.B())*a + uint32(fb.pixels[i+2])*inv) / 255)
	fb.pixels[i+3] = 0xFF
}

// Cls fills the whole framebuffer with an opaque color, ignoring the clip
// rectangle.
func (fb *Framebuffer) Cls(c Color) {
	r, g, b := c.ToRGB()
	px := fb.pixels
	for i := 0; i < len(px); i += 4 {
		px[i] = r
		px[i+1] = g
		px[i+2] = b
		px[i+3] = 0xFF
	}
}

// hline fills a horizontal pixel run, clipped to the drawable region.
func (fb *Framebuffer) hline(x0, x1, y int32, c Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	b := fb.bounds()
	if y < b.Y || y >= b.Y+b.H {
		return
	}
	if x0 < b.X {
		x0 = b.X
	}
	if x1 >= b.X+b.W {
		x1 = b.X + b.W - 1
	}
	if x0 > x1 {
		return
	}
	r, g, bl := c.ToRGB()
	i := y*fb.stride + x0*4
	for x := x0; x <= x1; x++ {
		fb.pixels[i] = r
		fb.pixels[i+1] = g
		fb.pixels[i+2] = bl
		fb.pixels[i+3] = 0xFF
		i += 4
	}
}
