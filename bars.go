package gui

import "github.com/viperdos/gui/gfx"

// Toolbar is a horizontal strip of buttons with optional separators,
// usually docked to the top of a window.
type Toolbar struct {
	HBox
}

// NewToolbar creates an empty toolbar.
func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.Init(t, "toolbar")
	t.Spacing = 4
	t.Align = AlignCenter
	t.Layout.Padding = UniformInsets(4)
	return t
}

// AddButton appends a button and returns it.
func (t *Toolbar) AddButton(text string, onClick func(Widget)) *Button {
	b := NewButton(text)
	b.OnClick = onClick
	t.AddChild(b)
	return b
}

// AddSeparator appends a thin vertical divider.
func (t *Toolbar) AddSeparator() {
	s := &toolbarSeparator{}
	s.Init(s, "separator")
	t.AddChild(s)
}

func (t *Toolbar) Paint(c *Canvas) {
	c.FillRect(t.Bounds(), c.Theme.Colors.BgTertiary)
}

type toolbarSeparator struct {
	WidgetBase
}

func (s *toolbarSeparator) Measure(availW, availH float32) {
	s.SetMeasured(9, 20)
}

func (s *toolbarSeparator) Paint(c *Canvas) {
	x := s.X + s.W/2
	c.Line(x, s.Y+2, x, s.Y+s.H-2, c.Theme.Colors.Border)
}

// StatusBar is a bottom strip of text sections. Sections are indexed;
// the last section absorbs leftover width.
type StatusBar struct {
	WidgetBase
	sections []string
}

// NewStatusBar creates a status bar with n sections.
func NewStatusBar(n int) *StatusBar {
	s := &StatusBar{sections: make([]string, n)}
	s.Init(s, "statusbar")
	return s
}

// SetText updates a section; out-of-range indexes are ignored.
func (s *StatusBar) SetText(section int, text string) {
	if section < 0 || section >= len(s.sections) {
		return
	}
	if s.sections[section] == text {
		return
	}
	s.sections[section] = text
	s.InvalidatePaint()
}

// Text returns a section's text.
func (s *StatusBar) Text(section int) string {
	if section < 0 || section >= len(s.sections) {
		return ""
	}
	return s.sections[section]
}

func (s *StatusBar) Measure(availW, availH float32) {
	c := measureCanvas()
	s.SetMeasured(availW, c.LineHeight()+CurrentTheme().Spacing.XS*2)
}

func (s *StatusBar) Paint(c *Canvas) {
	th := c.Theme
	r := s.Bounds()
	c.FillRect(r, th.Colors.Accent)
	x := r.X + th.Spacing.SM
	for i, text := range s.sections {
		if i > 0 {
			c.Line(x-th.Spacing.SM/2, r.Y+2, x-th.Spacing.SM/2, r.Y+r.H-2, th.Colors.BorderFocus)
		}
		w := c.Text(x, r.Y+(r.H-c.LineHeight())/2, text, th.Colors.FgPrimary)
		x += w + th.Spacing.MD
	}
}

// TabBar is a row of selectable tabs.
type TabBar struct {
	WidgetBase
	Tabs []string

	selected int
	hovered  int
}

// NewTabBar creates a tab bar with the first tab selected.
func NewTabBar(tabs []string) *TabBar {
	t := &TabBar{Tabs: tabs, hovered: -1}
	t.Init(t, "tabbar")
	t.TabIndex = 0
	return t
}

func (t *TabBar) CanFocus() bool { return !t.IsDisabled() }

// SelectedIndex returns the active tab.
func (t *TabBar) SelectedIndex() int { return t.selected }

// Select activates a tab and fires OnChange on change.
func (t *TabBar) Select(idx int) {
	if idx < 0 || idx >= len(t.Tabs) || idx == t.selected {
		return
	}
	t.selected = idx
	t.InvalidatePaint()
	if t.OnChange != nil {
		t.OnChange(t.Self())
	}
}

func (t *TabBar) tabWidth(c *Canvas, i int) float32 {
	return c.TextWidth(t.Tabs[i]) + CurrentTheme().Spacing.MD*2
}

func (t *TabBar) Measure(availW, availH float32) {
	c := measureCanvas()
	var w float32
	for i := range t.Tabs {
		w += t.tabWidth(c, i)
	}
	t.SetMeasured(w, c.LineHeight()+CurrentTheme().Spacing.SM*2)
}

func (t *TabBar) Paint(c *Canvas) {
	th := c.Theme
	r := t.Bounds()
	c.FillRect(r, th.Colors.BgSecondary)
	x := r.X
	for i, tab := range t.Tabs {
		w := t.tabWidth(c, i)
		cell := Rect{X: x, Y: r.Y, W: w, H: r.H}
		switch {
		case i == t.selected:
			c.FillRect(cell, th.Colors.BgPrimary)
			c.FillRect(Rect{X: x, Y: r.Y, W: w, H: 2}, th.Colors.Accent)
		case i == t.hovered:
			c.FillRect(cell, th.Colors.BgHover)
		}
		fg := th.Colors.FgSecondary
		if i == t.selected {
			fg = th.Colors.FgPrimary
		}
		c.Text(x+th.Spacing.MD, r.Y+(r.H-c.LineHeight())/2, tab, fg)
		x += w
	}
	if t.State&StateFocused != 0 {
		c.StrokeRect(r, th.Colors.BorderFocus)
	}
}

// tabAt maps a root coordinate to a tab index, or -1.
func (t *TabBar) tabAt(x, y float32) int {
	sb := t.ScreenBounds()
	if !sb.Contains(x, y) {
		return -1
	}
	c := measureCanvas()
	pos := sb.X
	for i := range t.Tabs {
		w := t.tabWidth(c, i)
		if x < pos+w {
			return i
		}
		pos += w
	}
	return -1
}

func (t *TabBar) HandleEvent(ev *Event) bool {
	if t.IsDisabled() {
		return false
	}
	switch ev.Type {
	case EventMouseMove:
		h := t.tabAt(ev.X, ev.Y)
		if h != t.hovered {
			t.hovered = h
			t.InvalidatePaint()
		}
	case EventMouseDown:
		if ev.Button == gfx.MouseLeft {
			if idx := t.tabAt(ev.X, ev.Y); idx >= 0 {
				t.Select(idx)
				return true
			}
		}
	case EventKeyDown:
		switch ev.Key {
		case gfx.KeyLeft:
			t.Select(t.selected - 1)
			return true
		case gfx.KeyRight:
			t.Select(t.selected + 1)
			return true
		}
	}
	return false
}
