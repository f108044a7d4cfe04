package gui

import "github.com/viperdos/gui/gfx"

// Dropdown is a closed selector that opens a popup list. While open it
// holds input capture so clicks outside the popup close it, and the
// popup paints in the overlay pass above every other widget.
type Dropdown struct {
	WidgetBase
	Items       []string
	Placeholder string

	selected int
	open     bool
	hovered  int
}

// NewDropdown creates a dropdown with no selection.
func NewDropdown(items []string) *Dropdown {
	d := &Dropdown{Items: items, selected: -1, hovered: -1}
	d.Init(d, "dropdown")
	d.TabIndex = 0
	return d
}

func (d *Dropdown) CanFocus() bool { return !d.IsDisabled() }

// SelectedIndex returns the selected index, or -1.
func (d *Dropdown) SelectedIndex() int { return d.selected }

// SelectedItem returns the selected text, or "".
func (d *Dropdown) SelectedItem() string {
	if d.selected < 0 || d.selected >= len(d.Items) {
		return ""
	}
	return d.Items[d.selected]
}

// Select sets the selection and fires OnChange on change.
func (d *Dropdown) Select(idx int) {
	if idx < 0 || idx >= len(d.Items) {
		idx = -1
	}
	if idx == d.selected {
		return
	}
	d.selected = idx
	d.InvalidatePaint()
	if d.OnChange != nil {
		d.OnChange(d.Self())
	}
}

// IsOpen reports whether the popup is showing.
func (d *Dropdown) IsOpen() bool { return d.open }

func (d *Dropdown) setOpen(open bool) {
	if d.open == open {
		return
	}
	d.open = open
	if open {
		d.hovered = d.selected
		SetInputCapture(d)
	} else {
		ReleaseInputCapture(d)
	}
	d.InvalidatePaint()
}

func (d *Dropdown) itemHeight() float32 {
	c := measureCanvas()
	return c.LineHeight() + CurrentTheme().Spacing.XS*2
}

func (d *Dropdown) Measure(availW, availH float32) {
	c := measureCanvas()
	th := CurrentTheme()
	widest := c.TextWidth(d.Placeholder)
	for _, it := range d.Items {
		widest = max32(widest, c.TextWidth(it))
	}
	w := widest + th.Spacing.SM*2 + 16 // room for the arrow
	h := c.LineHeight() + th.Widgets.InputPadY*2
	d.SetMeasured(w+d.Layout.Padding.Horizontal(), h+d.Layout.Padding.Vertical())
}

func (d *Dropdown) Paint(c *Canvas) {
	th := c.Theme
	r := d.Bounds()
	bg := th.Colors.BgTertiary
	if d.State&StateHovered != 0 && !d.IsDisabled() {
		bg = th.Colors.BgHover
	}
	c.FillRect(r, bg)
	border := th.Colors.Border
	if d.State&StateFocused != 0 || d.open {
		border = th.Colors.BorderFocus
	}
	c.StrokeRect(r, border)

	label := d.SelectedItem()
	fg := th.Colors.FgPrimary
	if label == "" {
		label = d.Placeholder
		fg = th.Colors.FgSecondary
	}
	if d.IsDisabled() {
		fg = th.Colors.FgDisabled
	}
	c.Text(r.X+th.Spacing.SM, r.Y+(r.H-c.LineHeight())/2, label, fg)

	// Arrow.
	ax := r.X + r.W - 12
	ay := r.Y + r.H/2 - 2
	c.Line(ax, ay, ax+4, ay+4, th.Colors.FgSecondary)
	c.Line(ax+4, ay+4, ax+8, ay, th.Colors.FgSecondary)
}

// popupRect returns the popup bounds in root coordinates.
func (d *Dropdown) popupRect() Rect {
	sb := d.ScreenBounds()
	ih := d.itemHeight()
	n := min(len(d.Items), 8)
	return Rect{X: sb.X, Y: sb.Y + d.H, W: d.W, H: ih * float32(n)}
}

// PaintOverlay draws the open popup. The frame loop paints the capture
// holder's overlay last, so the list covers widgets below it.
func (d *Dropdown) PaintOverlay(c *Canvas) {
	if !d.open {
		return
	}
	th := c.Theme
	// X/Y are absolute during the overlay pass.
	ih := d.itemHeight()
	n := min(len(d.Items), 8)
	pop := Rect{X: d.X, Y: d.Y + d.H, W: d.W, H: ih * float32(n)}
	c.FillRect(pop, th.Colors.BgPrimary)
	c.StrokeRect(pop, th.Colors.Border)
	y := pop.Y
	for i := 0; i < len(d.Items) && i < n; i++ {
		row := Rect{X: pop.X, Y: y, W: pop.W, H: ih}
		switch {
		case i == d.hovered:
			c.FillRect(row, th.Colors.BgHover)
		case i == d.selected:
			c.FillRect(row, th.Colors.BgSelected)
		}
		c.Text(pop.X+th.Spacing.SM, y+(ih-c.LineHeight())/2, d.Items[i], th.Colors.FgPrimary)
		y += ih
	}
}

// popupIndexAt maps a root coordinate to a popup item index, or -1.
func (d *Dropdown) popupIndexAt(x, y float32) int {
	pop := d.popupRect()
	if !pop.Contains(x, y) {
		return -1
	}
	idx := int((y - pop.Y) / d.itemHeight())
	if idx < 0 || idx >= len(d.Items) {
		return -1
	}
	return idx
}

func (d *Dropdown) HandleEvent(ev *Event) bool {
	if d.IsDisabled() {
		return false
	}
	switch ev.Type {
	case EventMouseMove:
		if d.open {
			h := d.popupIndexAt(ev.X, ev.Y)
			if h != d.hovered {
				d.hovered = h
				d.InvalidatePaint()
			}
			return true
		}
		if d.ScreenBounds().Contains(ev.X, ev.Y) {
			d.State |= StateHovered
		} else {
			d.State &^= StateHovered
		}
	case EventMouseDown:
		if ev.Button != gfx.MouseLeft {
			return false
		}
		if d.open {
			if idx := d.popupIndexAt(ev.X, ev.Y); idx >= 0 {
				d.Select(idx)
			}
			d.setOpen(false)
			return true
		}
		if d.ScreenBounds().Contains(ev.X, ev.Y) {
			d.setOpen(true)
			return true
		}
	case EventKeyDown:
		switch ev.Key {
		case gfx.KeyEnter, gfx.Key(' '):
			if d.open {
				if d.hovered >= 0 {
					d.Select(d.hovered)
				}
				d.setOpen(false)
			} else {
				d.setOpen(true)
			}
			return true
		case gfx.KeyEscape:
			if d.open {
				d.setOpen(false)
				return true
			}
		case gfx.KeyUp:
			if d.open {
				if d.hovered > 0 {
					d.hovered--
					d.InvalidatePaint()
				}
			} else if d.selected > 0 {
				d.Select(d.selected - 1)
			}
			return true
		case gfx.KeyDown:
			if d.open {
				if d.hovered < len(d.Items)-1 {
					d.hovered++
					d.InvalidatePaint()
				}
			} else if d.selected < len(d.Items)-1 {
				d.Select(d.selected + 1)
			}
			return true
		}
	}
	return false
}
