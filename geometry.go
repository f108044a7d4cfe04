package gui

// Point is a 2D position in physical pixels.
type Point struct {
	X, Y float32
}

// Size is a 2D extent in physical pixels.
type Size struct {
	W, H float32
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of two rectangles; width and height are
// zero when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max32(r.X, o.X)
	y0 := max32(r.Y, o.Y)
	x1 := min32(r.X+r.W, o.X+o.W)
	y1 := min32(r.Y+r.H, o.Y+o.H)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Insets are per-edge distances: margins outside a widget's border box,
// paddings inside it.
type Insets struct {
	Left, Top, Right, Bottom float32
}

// Horizontal returns left + right.
func (in Insets) Horizontal() float32 { return in.Left + in.Right }

// Vertical returns top + bottom.
func (in Insets) Vertical() float32 { return in.Top + in.Bottom }

// UniformInsets returns equal insets on every edge.
func UniformInsets(v float32) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if hi > lo && v > hi {
		return hi
	}
	return v
}
