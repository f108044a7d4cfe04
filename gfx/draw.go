package gfx

// Line draws a line from (x0, y0) to (x1, y1) inclusive using Bresenham's
// algorithm. The inner loop is integer add/compare only. A point-length line
// draws exactly one pixel.
func (fb *Framebuffer) Line(x0, y0, x1, y1 int32, c Color) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := int32(-1)
	if x0 < x1 {
		sx = 1
	}
	sy := int32(-1)
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		fb.Pset(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect draws the outline of a rectangle as four edge lines. Rectangles with
// non-positive width or height draw nothing.
func (fb *Framebuffer) Rect(x, y, w, h int32, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	fb.Line(x, y, x+w-1, y, c)
	fb.Line(x, y+h-1, x+w-1, y+h-1, c)
	fb.Line(x, y, x, y+h-1, c)
	fb.Line(x+w-1, y, x+w-1, y+h-1, c)
}

// FillRect fills a rectangle scanline by scanline, clipped to the drawable
// region.
func (fb *Framebuffer) FillRect(x, y, w, h int32, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	for row := y; row < y+h; row++ {
		fb.hline(x, x+w-1, row, c)
	}
}

// Circle draws a circle outline with the midpoint algorithm, plotting the
// eight-way symmetric points each step. Radius 0 draws the centre pixel;
// negative radius draws nothing.
func (fb *Framebuffer) Circle(cx, cy, r int32, c Color) {
	if r < 0 {
		return
	}
	if r == 0 {
		fb.Pset(cx, cy, c)
		return
	}
	x := r
	y := int32(0)
	d := 1 - r
	fb.circlePoints(cx, cy, x, y, c)
	for x > y {
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
		fb.circlePoints(cx, cy, x, y, c)
	}
}

func (fb *Framebuffer) circlePoints(cx, cy, x, y int32, c Color) {
	fb.Pset(cx+x, cy+y, c)
	fb.Pset(cx-x, cy+y, c)
	fb.Pset(cx+x, cy-y, c)
	fb.Pset(cx-x, cy-y, c)
	fb.Pset(cx+y, cy+x, c)
	fb.Pset(cx-y, cy+x, c)
	fb.Pset(cx+y, cy-x, c)
	fb.Pset(cx-y, cy-x, c)
}

// FillCircle fills a circle using the midpoint algorithm, drawing four
// symmetric horizontal spans per step. Radius 0 fills the centre pixel;
// negative radius draws nothing.
func (fb *Framebuffer) FillCircle(cx, cy, r int32, c Color) {
	if r < 0 {
		return
	}
	if r == 0 {
		fb.Pset(cx, cy, c)
		return
	}
	x := r
	y := int32(0)
	d := 1 - r
	for x >= y {
		fb.hline(cx-x, cx+x, cy+y, c)
		fb.hline(cx-x, cx+x, cy-y, c)
		fb.hline(cx-y, cx+y, cy+x, c)
		fb.hline(cx-y, cx+y, cy-x, c)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}
