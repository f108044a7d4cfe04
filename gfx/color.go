package gfx

// Color is a packed ARGB color: high byte alpha, then red, green, blue.
// Three-component constructors produce fully opaque colors.
type Color uint32

// Common colors.
const (
	Black   Color = 0xFF000000
	White   Color = 0xFFFFFFFF
	Red     Color = 0xFFFF0000
	Green   Color = 0xFF00FF00
	Blue    Color = 0xFF0000FF
	Yellow  Color = 0xFFFFFF00
	Cyan    Color = 0xFF00FFFF
	Magenta Color = 0xFFFF00FF
)

// RGB packs three 8-bit components into an opaque Color.
func RGB(r, g, b uint8) Color {
	return 0xFF000000 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGBA packs four 8-bit components into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// ToRGB splits a color into its red, green and blue components.
func (c Color) ToRGB() (r, g, b uint8) {
	return c.R(), c.G(), c.B()
}

// Opaque returns the color with alpha forced to 0xFF.
func (c Color) Opaque() Color { return c | 0xFF000000 }
