package gui

import "github.com/viperdos/gui/gfx"

// Dialog is a modal panel with a title bar and a content area. At most
// one dialog is active per App; while active it receives every event and
// the rest of the tree receives nothing. Closing marks the dialog for
// destruction at the end of the frame.
type Dialog struct {
	WidgetBase
	Title string

	// Content holds the dialog body; AddChild adds to it, not to the
	// dialog itself.
	Content *VBox

	closed   bool
	dragOffX float32
	dragOffY float32
	dragging bool
}

const dialogTitleHeight = 28

// NewDialog creates a dialog with an empty content box.
func NewDialog(title string) *Dialog {
	d := &Dialog{Title: title}
	d.Init(d, "dialog")
	d.Content = NewVBox()
	d.Content.Spacing = 8
	d.Content.Layout.Padding = UniformInsets(12)
	d.WidgetBase.AddChild(d.Content)
	return d
}

// Close marks the dialog closed; the frame loop destroys it.
func (d *Dialog) Close() { d.closed = true }

// Closed reports whether Close was called.
func (d *Dialog) Closed() bool { return d.closed }

// AddButton appends a button row helper to the content.
func (d *Dialog) AddButton(text string, onClick func(Widget)) *Button {
	b := NewButton(text)
	b.OnClick = onClick
	d.Content.AddChild(b)
	return b
}

func (d *Dialog) Measure(availW, availH float32) {
	MeasureWidget(d.Content, availW, availH-dialogTitleHeight)
	cb := d.Content.Base()
	c := measureCanvas()
	w := max32(cb.MeasuredW, c.TextWidth(d.Title)+40)
	d.SetMeasured(max32(w, 160), cb.MeasuredH+dialogTitleHeight)
}

func (d *Dialog) Arrange(x, y, w, h float32) {
	d.SetGeometry(x, y, w, h)
	ArrangeWidget(d.Content, 0, dialogTitleHeight, w, h-dialogTitleHeight)
}

func (d *Dialog) Paint(c *Canvas) {
	th := c.Theme
	r := d.Bounds()
	c.FillRect(r, th.Colors.BgPrimary)
	c.StrokeRect(r, th.Colors.Border)

	title := Rect{X: r.X, Y: r.Y, W: r.W, H: dialogTitleHeight}
	c.FillRect(title, th.Colors.BgTertiary)
	c.Text(r.X+10, r.Y+(dialogTitleHeight-c.LineHeight())/2, d.Title, th.Colors.FgPrimary)

	// Close glyph.
	cx := r.X + r.W - 18
	cy := r.Y + dialogTitleHeight/2
	c.Line(cx-4, cy-4, cx+4, cy+4, th.Colors.FgSecondary)
	c.Line(cx-4, cy+4, cx+4, cy-4, th.Colors.FgSecondary)
}

// closeButtonRect is in root coordinates.
func (d *Dialog) closeButtonRect() Rect {
	sb := d.ScreenBounds()
	return Rect{X: sb.X + d.W - 26, Y: sb.Y + 4, W: 20, H: dialogTitleHeight - 8}
}

func (d *Dialog) titleRect() Rect {
	sb := d.ScreenBounds()
	return Rect{X: sb.X, Y: sb.Y, W: d.W, H: dialogTitleHeight}
}

func (d *Dialog) HandleEvent(ev *Event) bool {
	switch ev.Type {
	case EventMouseDown:
		if ev.Button != gfx.MouseLeft {
			break
		}
		if d.closeButtonRect().Contains(ev.X, ev.Y) {
			d.Close()
			return true
		}
		if d.titleRect().Contains(ev.X, ev.Y) {
			sb := d.ScreenBounds()
			d.dragging = true
			d.dragOffX = ev.X - sb.X
			d.dragOffY = ev.Y - sb.Y
			return true
		}
	case EventMouseMove:
		if d.dragging {
			d.X = ev.X - d.dragOffX
			d.Y = ev.Y - d.dragOffY
			d.InvalidatePaint()
			return true
		}
	case EventMouseUp:
		if d.dragging && ev.Button == gfx.MouseLeft {
			d.dragging = false
			return true
		}
	case EventKeyDown:
		if ev.Key == gfx.KeyEscape {
			d.Close()
			return true
		}
	}
	return false
}
