package gui

import "github.com/viperdos/gui/gfx"

// Button is a push button. A click fires OnClick immediately and also
// sets a one-frame flag readable through WasClicked, which the frame
// loop clears at the start of every frame.
type Button struct {
	WidgetBase
	Text string
	Icon *gfx.Framebuffer // optional, drawn left of the text

	clicked bool
}

// NewButton creates a button with the given caption.
func NewButton(text string) *Button {
	b := &Button{Text: text}
	b.Init(b, "button")
	return b
}

// WasClicked reports whether the button was activated this frame.
func (b *Button) WasClicked() bool { return b.clicked }

// clearClicked resets the per-frame flag.
func (b *Button) clearClicked() { b.clicked = false }

func (b *Button) CanFocus() bool { return !b.IsDisabled() }

func (b *Button) Measure(availW, availH float32) {
	c := measureCanvas()
	th := CurrentTheme()
	w := c.TextWidth(b.Text) + th.Widgets.ButtonPadX*2
	h := c.LineHeight() + th.Widgets.ButtonPadY*2
	if b.Icon != nil {
		w += float32(b.Icon.Width()) + th.Spacing.XS
		h = max32(h, float32(b.Icon.Height())+th.Widgets.ButtonPadY*2)
	}
	b.SetMeasured(w+b.Layout.Padding.Horizontal(), h+b.Layout.Padding.Vertical())
}

func (b *Button) Paint(c *Canvas) {
	th := c.Theme
	bg := th.Colors.Accent
	fg := th.Colors.FgPrimary
	switch {
	case b.IsDisabled():
		bg = th.Colors.BgTertiary
		fg = th.Colors.FgDisabled
	case b.State&StatePressed != 0:
		bg = th.Colors.AccentPressed
	case b.State&StateHovered != 0:
		bg = th.Colors.AccentHover
	}
	r := b.Bounds()
	c.FillRect(r, bg)
	if b.State&StateFocused != 0 {
		c.StrokeRect(r, th.Colors.BorderFocus)
	}

	contentW := c.TextWidth(b.Text)
	var iconW float32
	if b.Icon != nil {
		iconW = float32(b.Icon.Width()) + th.Spacing.XS
		contentW += iconW
	}
	x := b.X + (b.W-contentW)/2
	if b.Icon != nil {
		blitIcon(c, b.Icon, int32(x), int32(b.Y+(b.H-float32(b.Icon.Height()))/2))
		x += iconW
	}
	c.Text(x, b.Y+(b.H-c.LineHeight())/2, b.Text, fg)
}

func (b *Button) HandleEvent(ev *Event) bool {
	switch ev.Type {
	case EventMouseMove:
		inside := b.ScreenBounds().Contains(ev.X, ev.Y)
		if inside {
			b.State |= StateHovered
		} else {
			b.State &^= StateHovered
		}
		return false
	case EventMouseDown:
		if ev.Button == gfx.MouseLeft {
			b.State |= StatePressed
			return true
		}
	case EventMouseUp:
		if ev.Button == gfx.MouseLeft && b.State&StatePressed != 0 {
			b.State &^= StatePressed
			if b.ScreenBounds().Contains(ev.X, ev.Y) {
				b.activate()
			}
			return true
		}
	case EventKeyDown:
		if ev.Key == gfx.KeyEnter || ev.Key == gfx.Key(' ') {
			b.activate()
			return true
		}
	}
	return false
}

func (b *Button) activate() {
	if b.IsDisabled() {
		return
	}
	b.clicked = true
	if b.OnClick != nil {
		b.OnClick(b.Self())
	}
	b.InvalidatePaint()
}

// blitIcon copies an ARGB framebuffer onto the canvas with alpha blending.
func blitIcon(c *Canvas, icon *gfx.Framebuffer, dx, dy int32) {
	w, h := icon.Width(), icon.Height()
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c.Win.PsetAlpha(dx+x, dy+y, icon.Point(x, y))
		}
	}
}
