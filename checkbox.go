package gui

import "github.com/viperdos/gui/gfx"

const checkBoxSize = 16

// Checkbox is a toggleable box with a caption.
type Checkbox struct {
	WidgetBase
	Text    string
	Checked bool
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(text string) *Checkbox {
	c := &Checkbox{Text: text}
	c.Init(c, "checkbox")
	c.TabIndex = 0
	return c
}

func (cb *Checkbox) CanFocus() bool { return !cb.IsDisabled() }

// SetChecked sets the state and fires OnChange when it changed.
func (cb *Checkbox) SetChecked(checked bool) {
	if cb.Checked == checked {
		return
	}
	cb.Checked = checked
	if checked {
		cb.State |= StateChecked
	} else {
		cb.State &^= StateChecked
	}
	cb.InvalidatePaint()
	if cb.OnChange != nil {
		cb.OnChange(cb.Self())
	}
}

func (cb *Checkbox) toggle() {
	if cb.IsDisabled() {
		return
	}
	cb.SetChecked(!cb.Checked)
}

func (cb *Checkbox) Measure(availW, availH float32) {
	c := measureCanvas()
	th := CurrentTheme()
	w := checkBoxSize + th.Spacing.SM + c.TextWidth(cb.Text)
	h := max32(checkBoxSize, c.LineHeight())
	cb.SetMeasured(w+cb.Layout.Padding.Horizontal(), h+cb.Layout.Padding.Vertical())
}

func (cb *Checkbox) Paint(c *Canvas) {
	th := c.Theme
	boxY := cb.Y + (cb.H-checkBoxSize)/2
	box := Rect{X: cb.X, Y: boxY, W: checkBoxSize, H: checkBoxSize}

	bg := th.Colors.BgTertiary
	if cb.Checked {
		bg = th.Colors.Accent
	}
	if cb.State&StateHovered != 0 && !cb.IsDisabled() {
		if cb.Checked {
			bg = th.Colors.AccentHover
		} else {
			bg = th.Colors.BgHover
		}
	}
	c.FillRect(box, bg)
	border := th.Colors.Border
	if cb.State&StateFocused != 0 {
		border = th.Colors.BorderFocus
	}
	c.StrokeRect(box, border)

	if cb.Checked {
		fg := th.Colors.FgPrimary
		x, y := box.X, box.Y
		c.Line(x+3, y+8, x+6, y+11, fg)
		c.Line(x+6, y+11, x+12, y+4, fg)
	}

	fg := th.Colors.FgPrimary
	if cb.IsDisabled() {
		fg = th.Colors.FgDisabled
	}
	c.Text(cb.X+checkBoxSize+th.Spacing.SM, cb.Y+(cb.H-c.LineHeight())/2, cb.Text, fg)
}

func (cb *Checkbox) HandleEvent(ev *Event) bool {
	switch ev.Type {
	case EventMouseMove:
		if cb.ScreenBounds().Contains(ev.X, ev.Y) {
			cb.State |= StateHovered
		} else {
			cb.State &^= StateHovered
		}
	case EventMouseUp:
		if ev.Button == gfx.MouseLeft && cb.ScreenBounds().Contains(ev.X, ev.Y) {
			cb.toggle()
			return true
		}
	case EventKeyDown:
		if ev.Key == gfx.Key(' ') || ev.Key == gfx.KeyEnter {
			cb.toggle()
			return true
		}
	}
	return false
}

// RadioGroup links radio buttons so at most one is selected.
type RadioGroup struct {
	selected *RadioButton

	// OnSelect fires with the newly selected button.
	OnSelect func(*RadioButton)
}

// NewRadioGroup creates an empty group.
func NewRadioGroup() *RadioGroup { return &RadioGroup{} }

// Selected returns the selected button, or nil.
func (g *RadioGroup) Selected() *RadioButton { return g.selected }

func (g *RadioGroup) selectButton(rb *RadioButton) {
	if g.selected == rb {
		return
	}
	if g.selected != nil {
		g.selected.Checked = false
		g.selected.State &^= StateChecked
		g.selected.InvalidatePaint()
	}
	g.selected = rb
	if rb != nil {
		rb.Checked = true
		rb.State |= StateChecked
		rb.InvalidatePaint()
	}
	if g.OnSelect != nil {
		g.OnSelect(rb)
	}
}

// RadioButton is a mutually-exclusive choice within a RadioGroup.
type RadioButton struct {
	WidgetBase
	Text    string
	Checked bool
	Group   *RadioGroup
}

// NewRadioButton creates a radio button attached to group.
func NewRadioButton(group *RadioGroup, text string) *RadioButton {
	r := &RadioButton{Text: text, Group: group}
	r.Init(r, "radio")
	r.TabIndex = 0
	return r
}

func (rb *RadioButton) CanFocus() bool { return !rb.IsDisabled() }

// Select makes this the group's selected button.
func (rb *RadioButton) Select() {
	if rb.IsDisabled() {
		return
	}
	if rb.Group != nil {
		rb.Group.selectButton(rb)
	} else {
		rb.Checked = true
		rb.InvalidatePaint()
	}
	if rb.OnChange != nil {
		rb.OnChange(rb.Self())
	}
}

func (rb *RadioButton) Measure(availW, availH float32) {
	c := measureCanvas()
	th := CurrentTheme()
	w := checkBoxSize + th.Spacing.SM + c.TextWidth(rb.Text)
	h := max32(checkBoxSize, c.LineHeight())
	rb.SetMeasured(w+rb.Layout.Padding.Horizontal(), h+rb.Layout.Padding.Vertical())
}

func (rb *RadioButton) Paint(c *Canvas) {
	th := c.Theme
	cy := rb.Y + rb.H/2
	cx := rb.X + checkBoxSize/2
	r := int32(checkBoxSize / 2)

	bg := th.Colors.BgTertiary
	if rb.State&StateHovered != 0 && !rb.IsDisabled() {
		bg = th.Colors.BgHover
	}
	c.Win.FillCircle(int32(cx), int32(cy), r, bg)
	border := th.Colors.Border
	if rb.State&StateFocused != 0 {
		border = th.Colors.BorderFocus
	}
	c.Win.Circle(int32(cx), int32(cy), r, border)
	if rb.Checked {
		c.Win.FillCircle(int32(cx), int32(cy), r-4, th.Colors.Accent)
	}

	fg := th.Colors.FgPrimary
	if rb.IsDisabled() {
		fg = th.Colors.FgDisabled
	}
	c.Text(rb.X+checkBoxSize+th.Spacing.SM, rb.Y+(rb.H-c.LineHeight())/2, rb.Text, fg)
}

func (rb *RadioButton) HandleEvent(ev *Event) bool {
	switch ev.Type {
	case EventMouseMove:
		if rb.ScreenBounds().Contains(ev.X, ev.Y) {
			rb.State |= StateHovered
		} else {
			rb.State &^= StateHovered
		}
	case EventMouseUp:
		if ev.Button == gfx.MouseLeft && rb.ScreenBounds().Contains(ev.X, ev.Y) {
			rb.Select()
			return true
		}
	case EventKeyDown:
		if ev.Key == gfx.Key(' ') || ev.Key == gfx.KeyEnter {
			rb.Select()
			return true
		}
	}
	return false
}
