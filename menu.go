package gui

import (
	"strconv"

	"github.com/viperdos/gui/gfx"
)

// MenuItem is one entry in a menu: an action row, a checkable row, or a
// separator. Activation sets a one-frame clicked flag and runs Action.
type MenuItem struct {
	Text      string
	Shortcut  string
	Enabled   bool
	Checked   bool
	Separator bool
	Action    func()

	clicked bool
}

// WasClicked reports whether the item was activated this frame.
func (it *MenuItem) WasClicked() bool { return it.clicked }

// SetEnabled toggles whether the item can be activated.
func (it *MenuItem) SetEnabled(on bool) { it.Enabled = on }

// SetChecked toggles the check mark.
func (it *MenuItem) SetChecked(on bool) { it.Checked = on }

// Menu is a titled list of items shown as a popup under the bar.
type Menu struct {
	Title string
	Items []*MenuItem
}

// AddItem appends an action row. The shortcut is display text only; see
// MenuBar.RegisterAccelerators for the bindings.
func (m *Menu) AddItem(text, shortcut string, action func()) *MenuItem {
	it := &MenuItem{Text: text, Shortcut: shortcut, Action: action, Enabled: true}
	m.Items = append(m.Items, it)
	return it
}

// AddSeparator appends a divider row.
func (m *Menu) AddSeparator() *MenuItem {
	it := &MenuItem{Separator: true}
	m.Items = append(m.Items, it)
	return it
}

// MenuBar is a horizontal bar of menu titles. Clicking a title opens its
// popup; while a popup is open the bar holds input capture, hovering a
// different title switches menus, and Escape or a click elsewhere closes.
type MenuBar struct {
	WidgetBase
	menus []*Menu

	openIdx     int
	highlighted int
}

// NewMenuBar creates an empty menu bar.
func NewMenuBar() *MenuBar {
	mb := &MenuBar{openIdx: -1, highlighted: -1}
	mb.Init(mb, "menubar")
	mb.Layout.Dock = DockTop
	return mb
}

// AddMenu appends a titled menu and returns it for item registration.
func (mb *MenuBar) AddMenu(title string) *Menu {
	m := &Menu{Title: title}
	mb.menus = append(mb.menus, m)
	mb.InvalidatePaint()
	return m
}

// Menus returns the registered menus in bar order.
func (mb *MenuBar) Menus() []*Menu { return mb.menus }

// IsOpen reports whether a popup is showing.
func (mb *MenuBar) IsOpen() bool { return mb.openIdx >= 0 }

// The bar joins the focus order only while a popup is open, so arrow keys
// and Escape reach it without making it a tab stop.
func (mb *MenuBar) CanFocus() bool { return mb.openIdx >= 0 && !mb.IsDisabled() }

// RegisterAccelerators binds every item with a shortcut string into the
// table, keyed "menu/<title>/<index>". Items added later need another call.
func (mb *MenuBar) RegisterAccelerators(t *ShortcutTable) {
	for _, m := range mb.menus {
		for i, it := range m.Items {
			if it.Separator || it.Shortcut == "" {
				continue
			}
			t.RegisterString("menu/"+m.Title+"/"+strconv.Itoa(i), it.Shortcut, func() {
				if it.Enabled {
					it.clicked = true
					if it.Action != nil {
						it.Action()
					}
				}
			})
		}
	}
}

func (mb *MenuBar) setOpen(idx int) {
	if idx == mb.openIdx {
		return
	}
	wasOpen := mb.openIdx >= 0
	mb.openIdx = idx
	mb.highlighted = -1
	if idx >= 0 && !wasOpen {
		SetInputCapture(mb)
		SetFocus(mb)
	} else if idx < 0 && wasOpen {
		ReleaseInputCapture(mb)
	}
	mb.InvalidatePaint()
}

func (mb *MenuBar) barHeight() float32 {
	return measureCanvas().LineHeight() + CurrentTheme().Spacing.XS*2
}

func (mb *MenuBar) itemHeight() float32 {
	return measureCanvas().LineHeight() + CurrentTheme().Spacing.XS*2
}

// titleWidth is the clickable extent of one title, padding included.
func (mb *MenuBar) titleWidth(c *Canvas, m *Menu) float32 {
	return c.TextWidth(m.Title) + CurrentTheme().Spacing.SM*2
}

// titleIndexAt maps a bar-local x to a menu index, or -1.
func (mb *MenuBar) titleIndexAt(x float32) int {
	c := measureCanvas()
	var run float32
	for i, m := range mb.menus {
		w := mb.titleWidth(c, m)
		if x >= run && x < run+w {
			return i
		}
		run += w
	}
	return -1
}

func (mb *MenuBar) Measure(availW, availH float32) {
	mb.SetMeasured(availW, mb.barHeight())
}

// popupRect returns the open popup's bounds in root coordinates.
func (mb *MenuBar) popupRect() Rect {
	return mb.popupRectFrom(mb.ScreenBounds())
}

// popupRectFrom computes the popup bounds below a given bar origin.
func (mb *MenuBar) popupRectFrom(sb Rect) Rect {
	c := measureCanvas()
	th := CurrentTheme()
	var x float32
	for i := 0; i < mb.openIdx; i++ {
		x += mb.titleWidth(c, mb.menus[i])
	}
	m := mb.menus[mb.openIdx]
	w := mb.titleWidth(c, m)
	var h float32
	for _, it := range m.Items {
		if it.Separator {
			h += th.Spacing.XS*2 + 1
		} else {
			h += mb.itemHeight()
			row := c.TextWidth(it.Text) + th.Spacing.SM*3
			if it.Shortcut != "" {
				row += c.TextWidth(it.Shortcut) + th.Spacing.MD
			}
			w = max32(w, row)
		}
	}
	return Rect{X: sb.X + x, Y: sb.Y + mb.H, W: w, H: h}
}

// popupIndexAt maps a root coordinate to an item index in the open menu.
// Separators and out-of-popup positions yield -1.
func (mb *MenuBar) popupIndexAt(x, y float32) int {
	if mb.openIdx < 0 {
		return -1
	}
	pop := mb.popupRect()
	if !pop.Contains(x, y) {
		return -1
	}
	th := CurrentTheme()
	run := pop.Y
	for i, it := range mb.menus[mb.openIdx].Items {
		h := mb.itemHeight()
		if it.Separator {
			h = th.Spacing.XS*2 + 1
		}
		if y >= run && y < run+h {
			if it.Separator {
				return -1
			}
			return i
		}
		run += h
	}
	return -1
}

func (mb *MenuBar) Paint(c *Canvas) {
	th := c.Theme
	r := mb.Bounds()
	c.FillRect(r, th.Colors.BgSecondary)
	c.Line(r.X, r.Y+r.H-1, r.X+r.W, r.Y+r.H-1, th.Colors.Border)

	x := r.X
	for i, m := range mb.menus {
		w := mb.titleWidth(c, m)
		if i == mb.openIdx {
			c.FillRect(Rect{X: x, Y: r.Y, W: w, H: r.H}, th.Colors.BgSelected)
		}
		fg := th.Colors.FgPrimary
		if mb.IsDisabled() {
			fg = th.Colors.FgDisabled
		}
		c.Text(x+th.Spacing.SM, r.Y+(r.H-c.LineHeight())/2, m.Title, fg)
		x += w
	}
}

// PaintOverlay draws the open popup; the frame loop paints the capture
// holder's overlay after the tree walk so it covers the widgets below.
func (mb *MenuBar) PaintOverlay(c *Canvas) {
	if mb.openIdx < 0 {
		return
	}
	th := c.Theme
	// X/Y are absolute during the overlay pass.
	pop := mb.popupRectFrom(Rect{X: mb.X, Y: mb.Y, W: mb.W, H: mb.H})
	c.FillRect(pop, th.Colors.BgPrimary)
	c.StrokeRect(pop, th.Colors.Border)

	y := pop.Y
	for i, it := range mb.menus[mb.openIdx].Items {
		if it.Separator {
			h := th.Spacing.XS*2 + 1
			ly := y + h/2
			c.Line(pop.X+th.Spacing.XS, ly, pop.X+pop.W-th.Spacing.XS, ly, th.Colors.Border)
			y += h
			continue
		}
		h := mb.itemHeight()
		if i == mb.highlighted && it.Enabled {
			c.FillRect(Rect{X: pop.X, Y: y, W: pop.W, H: h}, th.Colors.BgHover)
		}
		fg := th.Colors.FgPrimary
		if !it.Enabled {
			fg = th.Colors.FgDisabled
		}
		tx := pop.X + th.Spacing.SM
		if it.Checked {
			c.Text(tx, y+(h-c.LineHeight())/2, "✓", fg)
		}
		c.Text(tx+th.Spacing.SM, y+(h-c.LineHeight())/2, it.Text, fg)
		if it.Shortcut != "" {
			sw := c.TextWidth(it.Shortcut)
			c.Text(pop.X+pop.W-sw-th.Spacing.SM, y+(h-c.LineHeight())/2, it.Shortcut, th.Colors.FgSecondary)
		}
		y += h
	}
}

// activate runs an item and closes the popup.
func (mb *MenuBar) activate(it *MenuItem) {
	it.clicked = true
	if it.Enabled && it.Action != nil {
		it.Action()
	}
	mb.setOpen(-1)
}

func (mb *MenuBar) HandleEvent(ev *Event) bool {
	if mb.IsDisabled() {
		return false
	}
	sb := mb.ScreenBounds()
	switch ev.Type {
	case EventMouseMove:
		if mb.openIdx < 0 {
			return false
		}
		if sb.Contains(ev.X, ev.Y) {
			// Sliding along the bar switches the open menu.
			if idx := mb.titleIndexAt(ev.X - sb.X); idx >= 0 && idx != mb.openIdx {
				mb.openIdx = idx
				mb.highlighted = -1
				mb.InvalidatePaint()
			}
			return true
		}
		if h := mb.popupIndexAt(ev.X, ev.Y); h != mb.highlighted {
			mb.highlighted = h
			mb.InvalidatePaint()
		}
		return true
	case EventMouseDown:
		if ev.Button != gfx.MouseLeft {
			return false
		}
		if sb.Contains(ev.X, ev.Y) {
			idx := mb.titleIndexAt(ev.X - sb.X)
			if idx < 0 {
				mb.setOpen(-1)
				return true
			}
			if idx == mb.openIdx {
				mb.setOpen(-1)
			} else {
				mb.setOpen(idx)
			}
			return true
		}
		if mb.openIdx >= 0 {
			if idx := mb.popupIndexAt(ev.X, ev.Y); idx >= 0 {
				it := mb.menus[mb.openIdx].Items[idx]
				if it.Enabled {
					mb.activate(it)
					return true
				}
				return true
			}
			// Click elsewhere closes.
			mb.setOpen(-1)
			return true
		}
	case EventKeyDown:
		if mb.openIdx < 0 {
			return false
		}
		items := mb.menus[mb.openIdx].Items
		switch ev.Key {
		case gfx.KeyEscape:
			mb.setOpen(-1)
			return true
		case gfx.KeyDown:
			mb.highlighted = nextSelectable(items, mb.highlighted, 1)
			mb.InvalidatePaint()
			return true
		case gfx.KeyUp:
			mb.highlighted = nextSelectable(items, mb.highlighted, -1)
			mb.InvalidatePaint()
			return true
		case gfx.KeyLeft:
			if mb.openIdx > 0 {
				mb.openIdx--
				mb.highlighted = -1
				mb.InvalidatePaint()
			}
			return true
		case gfx.KeyRight:
			if mb.openIdx < len(mb.menus)-1 {
				mb.openIdx++
				mb.highlighted = -1
				mb.InvalidatePaint()
			}
			return true
		case gfx.KeyEnter:
			if mb.highlighted >= 0 && mb.highlighted < len(items) {
				if it := items[mb.highlighted]; it.Enabled {
					mb.activate(it)
				}
			}
			return true
		}
	}
	return false
}

// nextSelectable steps from cur in dir, skipping separators, staying put
// at the ends. From -1 a downward step lands on the first selectable row.
func nextSelectable(items []*MenuItem, cur, dir int) int {
	for i := cur + dir; i >= 0 && i < len(items); i += dir {
		if !items[i].Separator {
			return i
		}
	}
	return cur
}

// clearClicked resets the per-frame item flags.
func (mb *MenuBar) clearClicked() {
	for _, m := range mb.menus {
		for _, it := range m.Items {
			it.clicked = false
		}
	}
}
