package gui

// Alignment selects cross-axis placement in box and flex layouts.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignStretch
	AlignBaseline
)

// Justify selects main-axis distribution of leftover space.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// VBox stacks children vertically with uniform spacing, distributing
// leftover height among flex children in proportion to their flex factor.
type VBox struct {
	WidgetBase
	Spacing float32
	Align   Alignment
	Justify Justify
}

// NewVBox creates an empty vertical box.
func NewVBox() *VBox {
	v := &VBox{}
	v.Init(v, "vbox")
	return v
}

func (v *VBox) Measure(availW, availH float32) {
	w, h := boxMeasure(&v.WidgetBase, v.Spacing, true, availW, availH)
	v.SetMeasured(w, h)
}

func (v *VBox) Arrange(x, y, w, h float32) {
	v.SetGeometry(x, y, w, h)
	boxArrange(&v.WidgetBase, v.Spacing, v.Align, v.Justify, true)
}

// HBox stacks children horizontally; otherwise identical to VBox.
type HBox struct {
	WidgetBase
	Spacing float32
	Align   Alignment
	Justify Justify
}

// NewHBox creates an empty horizontal box.
func NewHBox() *HBox {
	h := &HBox{}
	h.Init(h, "hbox")
	return h
}

func (hb *HBox) Measure(availW, availH float32) {
	w, h := boxMeasure(&hb.WidgetBase, hb.Spacing, false, availW, availH)
	hb.SetMeasured(w, h)
}

func (hb *HBox) Arrange(x, y, w, h float32) {
	hb.SetGeometry(x, y, w, h)
	boxArrange(&hb.WidgetBase, hb.Spacing, hb.Align, hb.Justify, false)
}

// boxMeasure measures children and returns the stacked content size plus
// padding: the main axis sums children and spacing, the cross axis takes
// the widest child.
func boxMeasure(b *WidgetBase, spacing float32, vertical bool, availW, availH float32) (w, h float32) {
	innerW := availW - b.Layout.Padding.Horizontal()
	innerH := availH - b.Layout.Padding.Vertical()
	var mainSum, crossMax float32
	n := 0
	for c := b.FirstChild; c != nil; c = c.Base().NextSibling {
		cb := c.Base()
		if !cb.Visible {
			continue
		}
		MeasureWidget(c, innerW-cb.Layout.Margin.Horizontal(), innerH-cb.Layout.Margin.Vertical())
		mw := cb.MeasuredW + cb.Layout.Margin.Horizontal()
		mh := cb.MeasuredH + cb.Layout.Margin.Vertical()
		if vertical {
			mainSum += mh
			crossMax = max32(crossMax, mw)
		} else {
			mainSum += mw
			crossMax = max32(crossMax, mh)
		}
		n++
	}
	if n > 1 {
		mainSum += spacing * float32(n-1)
	}
	if vertical {
		return crossMax + b.Layout.Padding.Horizontal(), mainSum + b.Layout.Padding.Vertical()
	}
	return mainSum + b.Layout.Padding.Horizontal(), crossMax + b.Layout.Padding.Vertical()
}

// boxArrange positions children inside the already-set geometry of b.
func boxArrange(b *WidgetBase, spacing float32, align Alignment, justify Justify, vertical bool) {
	innerX := b.Layout.Padding.Left
	innerY := b.Layout.Padding.Top
	innerW := b.W - b.Layout.Padding.Horizontal()
	innerH := b.H - b.Layout.Padding.Vertical()

	mainAvail := innerH
	if !vertical {
		mainAvail = innerW
	}

	// First pass: fixed sizes and flex total.
	var totalFixed, totalFlex float32
	n := 0
	for c := b.FirstChild; c != nil; c = c.Base().NextSibling {
		cb := c.Base()
		if !cb.Visible {
			continue
		}
		n++
		if cb.Layout.Flex > 0 {
			totalFlex += cb.Layout.Flex
			continue
		}
		if vertical {
			totalFixed += cb.MeasuredH + cb.Layout.Margin.Vertical()
		} else {
			totalFixed += cb.MeasuredW + cb.Layout.Margin.Horizontal()
		}
	}
	if n == 0 {
		return
	}
	spacingTotal := spacing * float32(n-1)
	available := mainAvail - totalFixed - spacingTotal
	var flexUnit float32
	if totalFlex > 0 && available > 0 {
		flexUnit = available / totalFlex
	}

	// Justify distributes leftover only when nothing flexes.
	var lead, between float32
	if totalFlex == 0 && available > 0 {
		switch justify {
		case JustifyCenter:
			lead = available / 2
		case JustifyEnd:
			lead = available
		case JustifySpaceBetween:
			if n > 1 {
				between = available / float32(n-1)
			}
		case JustifySpaceAround:
			between = available / float32(n)
			lead = between / 2
		case JustifySpaceEvenly:
			between = available / float32(n+1)
			lead = between
		}
	}

	pos := lead
	i := 0
	for c := b.FirstChild; c != nil; c = c.Base().NextSibling {
		cb := c.Base()
		if !cb.Visible {
			continue
		}
		m := cb.Layout.Margin

		var mainSize float32
		if cb.Layout.Flex > 0 {
			if vertical {
				mainSize = flexUnit*cb.Layout.Flex - m.Vertical()
			} else {
				mainSize = flexUnit*cb.Layout.Flex - m.Horizontal()
			}
			if mainSize < 0 {
				mainSize = 0
			}
		} else if vertical {
			mainSize = cb.MeasuredH
		} else {
			mainSize = cb.MeasuredW
		}

		var crossSize, crossOff float32
		if vertical {
			crossSize = cb.MeasuredW
			crossOff = crossOffset(align, innerW, crossSize, m.Left, m.Right)
			if align == AlignStretch {
				crossSize = innerW - m.Horizontal()
			}
			ArrangeWidget(c, innerX+crossOff, innerY+pos+m.Top, crossSize, mainSize)
			pos += mainSize + m.Vertical()
		} else {
			crossSize = cb.MeasuredH
			crossOff = crossOffset(align, innerH, crossSize, m.Top, m.Bottom)
			if align == AlignStretch {
				crossSize = innerH - m.Vertical()
			}
			ArrangeWidget(c, innerX+pos+m.Left, innerY+crossOff, mainSize, crossSize)
			pos += mainSize + m.Horizontal()
		}
		i++
		if i < n {
			pos += spacing + between
		}
	}
}

// crossOffset resolves cross-axis alignment within the inner extent.
func crossOffset(align Alignment, inner, size, marginLead, marginTrail float32) float32 {
	switch align {
	case AlignCenter:
		return (inner - size) / 2
	case AlignEnd:
		return inner - size - marginTrail
	default: // start, stretch, baseline
		return marginLead
	}
}
