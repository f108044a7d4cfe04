package gui

// Dock pins children to container edges in insertion order. Each child
// claims a strip along its Dock edge and shrinks the remaining area; a
// child docked to DockFill takes whatever is left. Multiple fill
// children stack on top of each other.
type Dock struct {
	WidgetBase
}

// NewDock creates an empty dock container.
func NewDock() *Dock {
	d := &Dock{}
	d.Init(d, "dock")
	return d
}

func (d *Dock) Measure(availW, availH float32) {
	innerW := availW - d.Layout.Padding.Horizontal()
	innerH := availH - d.Layout.Padding.Vertical()
	for c := d.FirstChild; c != nil; c = c.Base().NextSibling {
		cb := c.Base()
		if !cb.Visible {
			continue
		}
		MeasureWidget(c, innerW-cb.Layout.Margin.Horizontal(), innerH-cb.Layout.Margin.Vertical())
	}
	d.SetMeasured(availW, availH)
}

func (d *Dock) Arrange(x, y, w, h float32) {
	d.SetGeometry(x, y, w, h)
	rx := d.Layout.Padding.Left
	ry := d.Layout.Padding.Top
	rw := d.W - d.Layout.Padding.Horizontal()
	rh := d.H - d.Layout.Padding.Vertical()

	for c := d.FirstChild; c != nil; c = c.Base().NextSibling {
		cb := c.Base()
		if !cb.Visible {
			continue
		}
		m := cb.Layout.Margin
		mw := cb.MeasuredW + m.Horizontal()
		mh := cb.MeasuredH + m.Vertical()
		switch cb.Layout.Dock {
		case DockTop:
			strip := min32(mh, rh)
			ArrangeWidget(c, rx+m.Left, ry+m.Top, rw-m.Horizontal(), strip-m.Vertical())
			ry += strip
			rh -= strip
		case DockBottom:
			strip := min32(mh, rh)
			ArrangeWidget(c, rx+m.Left, ry+rh-strip+m.Top, rw-m.Horizontal(), strip-m.Vertical())
			rh -= strip
		case DockLeft:
			strip := min32(mw, rw)
			ArrangeWidget(c, rx+m.Left, ry+m.Top, strip-m.Horizontal(), rh-m.Vertical())
			rx += strip
			rw -= strip
		case DockRight:
			strip := min32(mw, rw)
			ArrangeWidget(c, rx+rw-strip+m.Left, ry+m.Top, strip-m.Horizontal(), rh-m.Vertical())
			rw -= strip
		default: // DockFill
			ArrangeWidget(c, rx+m.Left, ry+m.Top, max32(0, rw-m.Horizontal()), max32(0, rh-m.Vertical()))
		}
		if rw < 0 {
			rw = 0
		}
		if rh < 0 {
			rh = 0
		}
	}
}
