package gui

// FlexDirection selects the main axis and its direction.
type FlexDirection int

const (
	FlexRow FlexDirection = iota
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

// Flex is a wrapping flexbox container. Children with a positive Flex
// layout factor grow to absorb leftover main-axis space within their line.
type Flex struct {
	WidgetBase
	Direction    FlexDirection
	Wrap         bool
	Gap          float32
	AlignItems   Alignment
	AlignContent Alignment
	Justify      Justify
}

// NewFlex creates a row-direction flex container.
func NewFlex() *Flex {
	f := &Flex{AlignItems: AlignStart, AlignContent: AlignStart}
	f.Init(f, "flex")
	return f
}

func (f *Flex) horizontal() bool {
	return f.Direction == FlexRow || f.Direction == FlexRowReverse
}

func (f *Flex) reversed() bool {
	return f.Direction == FlexRowReverse || f.Direction == FlexColumnReverse
}

func (f *Flex) Measure(availW, availH float32) {
	innerW := availW - f.Layout.Padding.Horizontal()
	innerH := availH - f.Layout.Padding.Vertical()
	horiz := f.horizontal()
	mainAvail := innerW
	if !horiz {
		mainAvail = innerH
	}

	var lineMain, lineCross, totalCross, maxMain float32
	lines := 0
	inLine := 0
	for c := f.FirstChild; c != nil; c = c.Base().NextSibling {
		cb := c.Base()
		if !cb.Visible {
			continue
		}
		MeasureWidget(c, innerW-cb.Layout.Margin.Horizontal(), innerH-cb.Layout.Margin.Vertical())
		cm, cc := f.childExtent(cb)
		next := lineMain + cm
		if inLine > 0 {
			next += f.Gap
		}
		if f.Wrap && inLine > 0 && next > mainAvail {
			maxMain = max32(maxMain, lineMain)
			totalCross += lineCross
			if lines > 0 {
				totalCross += f.Gap
			}
			lines++
			lineMain, lineCross, inLine = 0, 0, 0
			next = cm
		}
		lineMain = next
		lineCross = max32(lineCross, cc)
		inLine++
	}
	if inLine > 0 {
		maxMain = max32(maxMain, lineMain)
		if lines > 0 {
			totalCross += f.Gap
		}
		totalCross += lineCross
	}

	if horiz {
		f.SetMeasured(maxMain+f.Layout.Padding.Horizontal(), totalCross+f.Layout.Padding.Vertical())
	} else {
		f.SetMeasured(totalCross+f.Layout.Padding.Horizontal(), maxMain+f.Layout.Padding.Vertical())
	}
}

// childExtent returns the child's margin-inclusive main and cross sizes.
func (f *Flex) childExtent(cb *WidgetBase) (main, cross float32) {
	mw := cb.MeasuredW + cb.Layout.Margin.Horizontal()
	mh := cb.MeasuredH + cb.Layout.Margin.Vertical()
	if f.horizontal() {
		return mw, mh
	}
	return mh, mw
}

type flexLine struct {
	items []Widget
	main  float32 // content main size including gaps
	cross float32 // tallest item
	flex  float32 // sum of flex factors
}

func (f *Flex) Arrange(x, y, w, h float32) {
	f.SetGeometry(x, y, w, h)
	innerX := f.Layout.Padding.Left
	innerY := f.Layout.Padding.Top
	innerW := f.W - f.Layout.Padding.Horizontal()
	innerH := f.H - f.Layout.Padding.Vertical()
	horiz := f.horizontal()
	mainAvail, crossAvail := innerW, innerH
	if !horiz {
		mainAvail, crossAvail = innerH, innerW
	}

	// Break children into lines.
	var lines []flexLine
	cur := flexLine{}
	for c := f.FirstChild; c != nil; c = c.Base().NextSibling {
		cb := c.Base()
		if !cb.Visible {
			continue
		}
		cm, cc := f.childExtent(cb)
		next := cur.main + cm
		if len(cur.items) > 0 {
			next += f.Gap
		}
		if f.Wrap && len(cur.items) > 0 && next > mainAvail {
			lines = append(lines, cur)
			cur = flexLine{}
			next = cm
		}
		cur.items = append(cur.items, c)
		cur.main = next
		cur.cross = max32(cur.cross, cc)
		cur.flex += cb.Layout.Flex
	}
	if len(cur.items) > 0 {
		lines = append(lines, cur)
	}
	if len(lines) == 0 {
		return
	}

	// Align-content positions the block of lines along the cross axis.
	var linesCross float32
	for i := range lines {
		linesCross += lines[i].cross
	}
	linesCross += f.Gap * float32(len(lines)-1)
	crossPos := alignLead(f.AlignContent, crossAvail, linesCross)
	stretchLine := float32(0)
	if f.AlignContent == AlignStretch && len(lines) > 0 && crossAvail > linesCross {
		stretchLine = (crossAvail - linesCross) / float32(len(lines))
		crossPos = 0
	}

	for li := range lines {
		ln := &lines[li]
		lineCross := ln.cross + stretchLine
		f.arrangeLine(ln, innerX, innerY, mainAvail, crossPos, lineCross, horiz)
		crossPos += lineCross + f.Gap
	}
}

func (f *Flex) arrangeLine(ln *flexLine, innerX, innerY, mainAvail, crossPos, lineCross float32, horiz bool) {
	available := mainAvail - ln.main
	var flexUnit float32
	if ln.flex > 0 && available > 0 {
		flexUnit = available / ln.flex
	}

	var lead, between float32
	if ln.flex == 0 && available > 0 {
		n := len(ln.items)
		switch f.Justify {
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

	items := ln.items
	if f.reversed() {
		items = make([]Widget, len(ln.items))
		for i, c := range ln.items {
			items[len(ln.items)-1-i] = c
		}
	}

	pos := lead
	for i, c := range items {
		cb := c.Base()
		m := cb.Layout.Margin
		mainSize, crossSize := cb.MeasuredW, cb.MeasuredH
		if !horiz {
			mainSize, crossSize = crossSize, mainSize
		}
		if cb.Layout.Flex > 0 {
			mainSize += flexUnit * cb.Layout.Flex
		}

		var crossMargLead, crossMargTrail float32
		if horiz {
			crossMargLead, crossMargTrail = m.Top, m.Bottom
		} else {
			crossMargLead, crossMargTrail = m.Left, m.Right
		}
		crossOff := crossOffset(f.AlignItems, lineCross, crossSize, crossMargLead, crossMargTrail)
		if f.AlignItems == AlignStretch {
			crossSize = lineCross - crossMargLead - crossMargTrail
			crossOff = crossMargLead
		}

		if horiz {
			ArrangeWidget(c, innerX+pos+m.Left, innerY+crossPos+crossOff, mainSize, crossSize)
			pos += mainSize + m.Horizontal()
		} else {
			ArrangeWidget(c, innerX+crossPos+crossOff, innerY+pos+m.Top, crossSize, mainSize)
			pos += mainSize + m.Vertical()
		}
		if i < len(items)-1 {
			pos += f.Gap + between
		}
	}
}

// alignLead returns the leading offset for a block of the given size.
func alignLead(align Alignment, avail, size float32) float32 {
	switch align {
	case AlignCenter:
		return (avail - size) / 2
	case AlignEnd:
		return avail - size
	default:
		return 0
	}
}
