package gui

import "github.com/viperdos/gui/gfx"

// ListBox shows a scrollable list of string items with single selection.
type ListBox struct {
	WidgetBase
	Items []string

	selected int // -1 when nothing is selected
	scrollY  float32
	hovered  int
}

// NewListBox creates a list with the given items and no selection.
func NewListBox(items []string) *ListBox {
	l := &ListBox{Items: items, selected: -1, hovered: -1}
	l.Init(l, "listbox")
	l.TabIndex = 0
	return l
}

func (l *ListBox) CanFocus() bool { return !l.IsDisabled() }

// SelectedIndex returns the selected item index, or -1.
func (l *ListBox) SelectedIndex() int { return l.selected }

// SelectedItem returns the selected item text, or "".
func (l *ListBox) SelectedItem() string {
	if l.selected < 0 || l.selected >= len(l.Items) {
		return ""
	}
	return l.Items[l.selected]
}

// Select sets the selection, fires OnChange on change and scrolls the
// item into view. An out-of-range index clears the selection.
func (l *ListBox) Select(idx int) {
	if idx < 0 || idx >= len(l.Items) {
		idx = -1
	}
	if idx == l.selected {
		return
	}
	l.selected = idx
	if idx >= 0 {
		l.scrollIntoView(idx)
	}
	l.InvalidatePaint()
	if l.OnChange != nil {
		l.OnChange(l.Self())
	}
}

func (l *ListBox) itemHeight() float32 {
	c := measureCanvas()
	return c.LineHeight() + CurrentTheme().Spacing.XS*2
}

func (l *ListBox) scrollIntoView(idx int) {
	ih := l.itemHeight()
	top := float32(idx) * ih
	if top < l.scrollY {
		l.scrollY = top
	}
	if bottom := top + ih; bottom > l.scrollY+l.H {
		l.scrollY = bottom - l.H
	}
	l.clampScroll()
}

func (l *ListBox) clampScroll() {
	maxScroll := max32(0, float32(len(l.Items))*l.itemHeight()-l.H)
	l.scrollY = clamp32(l.scrollY, 0, maxScroll)
}

func (l *ListBox) Measure(availW, availH float32) {
	c := measureCanvas()
	var widest float32
	for _, it := range l.Items {
		widest = max32(widest, c.TextWidth(it))
	}
	th := CurrentTheme()
	w := widest + th.Spacing.SM*2 + th.Widgets.ScrollbarSize
	h := l.itemHeight() * float32(min(len(l.Items), 8))
	l.SetMeasured(w+l.Layout.Padding.Horizontal(), h+l.Layout.Padding.Vertical())
}

func (l *ListBox) Paint(c *Canvas) {
	th := c.Theme
	r := l.Bounds()
	c.FillRect(r, th.Colors.BgPrimary)
	border := th.Colors.Border
	if l.State&StateFocused != 0 {
		border = th.Colors.BorderFocus
	}
	c.StrokeRect(r, border)

	prev, had := c.PushClip(r)
	defer c.PopClip(prev, had)

	ih := l.itemHeight()
	first := int(l.scrollY / ih)
	y := r.Y - (l.scrollY - float32(first)*ih)
	for i := first; i < len(l.Items) && y < r.Y+r.H; i++ {
		row := Rect{X: r.X, Y: y, W: r.W, H: ih}
		switch {
		case i == l.selected:
			c.FillRect(row, th.Colors.BgSelected)
		case i == l.hovered:
			c.FillRect(row, th.Colors.BgHover)
		}
		fg := th.Colors.FgPrimary
		if l.IsDisabled() {
			fg = th.Colors.FgDisabled
		}
		c.Text(r.X+th.Spacing.SM, y+(ih-c.LineHeight())/2, l.Items[i], fg)
		y += ih
	}

	// Scrollbar.
	total := float32(len(l.Items)) * ih
	if total > r.H {
		bar := th.Widgets.ScrollbarSize
		thumbH := max32(th.Widgets.ScrollbarMinLen, r.H*r.H/total)
		thumbY := r.Y + (r.H-thumbH)*(l.scrollY/(total-r.H))
		c.FillRect(Rect{X: r.X + r.W - bar, Y: r.Y, W: bar, H: r.H}, th.Colors.BgTertiary)
		c.FillRect(Rect{X: r.X + r.W - bar + 2, Y: thumbY, W: bar - 4, H: thumbH}, th.Colors.BgHover)
	}
}

// indexAt maps a root-coordinate point to an item index, or -1.
func (l *ListBox) indexAt(x, y float32) int {
	sb := l.ScreenBounds()
	if !sb.Contains(x, y) {
		return -1
	}
	idx := int((y - sb.Y + l.scrollY) / l.itemHeight())
	if idx < 0 || idx >= len(l.Items) {
		return -1
	}
	return idx
}

func (l *ListBox) HandleEvent(ev *Event) bool {
	if l.IsDisabled() {
		return false
	}
	switch ev.Type {
	case EventMouseMove:
		h := l.indexAt(ev.X, ev.Y)
		if h != l.hovered {
			l.hovered = h
			l.InvalidatePaint()
		}
	case EventMouseDown:
		if ev.Button == gfx.MouseLeft {
			if idx := l.indexAt(ev.X, ev.Y); idx >= 0 {
				l.Select(idx)
				return true
			}
		}
	case EventScroll:
		if l.ScreenBounds().Contains(ev.X, ev.Y) {
			l.scrollY -= float32(ev.DeltaY) * l.itemHeight()
			l.clampScroll()
			l.InvalidatePaint()
			return true
		}
	case EventKeyDown:
		switch ev.Key {
		case gfx.KeyUp:
			if l.selected > 0 {
				l.Select(l.selected - 1)
			} else if l.selected < 0 && len(l.Items) > 0 {
				l.Select(0)
			}
			return true
		case gfx.KeyDown:
			if l.selected < len(l.Items)-1 {
				l.Select(l.selected + 1)
			}
			return true
		case gfx.KeyHome:
			if len(l.Items) > 0 {
				l.Select(0)
			}
			return true
		case gfx.KeyEnd:
			if len(l.Items) > 0 {
				l.Select(len(l.Items) - 1)
			}
			return true
		case gfx.KeyPageUp:
			l.Select(max(0, l.selected-8))
			return true
		case gfx.KeyPageDown:
			if len(l.Items) > 0 {
				l.Select(min(len(l.Items)-1, l.selected+8))
			}
			return true
		}
	}
	return false
}
