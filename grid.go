package gui

// Grid arranges children in a fixed-column grid. Column and row extents
// may be pinned via ColumnSizes/RowSizes; unpinned tracks share the
// remaining space equally. Children without explicit GridCol/GridRow are
// auto-flowed left to right, top to bottom, honoring spans.
type Grid struct {
	WidgetBase
	Columns     int
	ColGap      float32
	RowGap      float32
	ColumnSizes []float32 // 0 entries mean "share leftover"
	RowSizes    []float32
}

// NewGrid creates a grid with the given column count (minimum 1).
func NewGrid(columns int) *Grid {
	if columns < 1 {
		columns = 1
	}
	g := &Grid{Columns: columns}
	g.Init(g, "grid")
	return g
}

type gridCell struct {
	w                Widget
	col, row         int
	colSpan, rowSpan int
}

// place resolves every visible child to a cell, auto-flowing children
// that carry no explicit position.
func (g *Grid) place() ([]gridCell, int) {
	var cells []gridCell
	flowCol, flowRow := 0, 0
	rows := 0
	for c := g.FirstChild; c != nil; c = c.Base().NextSibling {
		cb := c.Base()
		if !cb.Visible {
			continue
		}
		lp := cb.Layout
		span := lp.ColSpan
		if span < 1 {
			span = 1
		}
		if span > g.Columns {
			span = g.Columns
		}
		rowSpan := lp.RowSpan
		if rowSpan < 1 {
			rowSpan = 1
		}
		col, row := lp.GridCol, lp.GridRow
		if col < 0 || row < 0 {
			if flowCol+span > g.Columns {
				flowCol = 0
				flowRow++
			}
			col, row = flowCol, flowRow
			flowCol += span
			if flowCol >= g.Columns {
				flowCol = 0
				flowRow++
			}
		} else if col+span > g.Columns {
			span = g.Columns - col
		}
		cells = append(cells, gridCell{w: c, col: col, row: row, colSpan: span, rowSpan: rowSpan})
		if row+rowSpan > rows {
			rows = row + rowSpan
		}
	}
	return cells, rows
}

// trackSizes splits the available extent into n tracks, pinning any
// positive entries from sizes and sharing the remainder equally.
func trackSizes(n int, avail, gap float32, sizes []float32) []float32 {
	out := make([]float32, n)
	content := avail - gap*float32(n-1)
	fixed := float32(0)
	free := 0
	for i := 0; i < n; i++ {
		if i < len(sizes) && sizes[i] > 0 {
			out[i] = sizes[i]
			fixed += sizes[i]
		} else {
			free++
		}
	}
	if free > 0 {
		share := max32(0, content-fixed) / float32(free)
		for i := 0; i < n; i++ {
			if out[i] == 0 {
				out[i] = share
			}
		}
	}
	return out
}

func (g *Grid) Measure(availW, availH float32) {
	innerW := availW - g.Layout.Padding.Horizontal()
	innerH := availH - g.Layout.Padding.Vertical()
	cells, rows := g.place()
	cols := trackSizes(g.Columns, innerW, g.ColGap, g.ColumnSizes)

	// Row heights come from pinned sizes or the tallest single-row cell.
	rowH := make([]float32, rows)
	for i := range rowH {
		if i < len(g.RowSizes) && g.RowSizes[i] > 0 {
			rowH[i] = g.RowSizes[i]
		}
	}
	for _, cell := range cells {
		cb := cell.w.Base()
		cw := spanExtent(cols, cell.col, cell.colSpan, g.ColGap)
		MeasureWidget(cell.w, cw-cb.Layout.Margin.Horizontal(), innerH-cb.Layout.Margin.Vertical())
		if cell.rowSpan == 1 && cell.row < rows {
			if h := cb.MeasuredH + cb.Layout.Margin.Vertical(); h > rowH[cell.row] {
				rowH[cell.row] = h
			}
		}
	}

	var totalH float32
	for _, h := range rowH {
		totalH += h
	}
	if rows > 1 {
		totalH += g.RowGap * float32(rows-1)
	}
	g.SetMeasured(availW, totalH+g.Layout.Padding.Vertical())
}

func (g *Grid) Arrange(x, y, w, h float32) {
	g.SetGeometry(x, y, w, h)
	innerX := g.Layout.Padding.Left
	innerY := g.Layout.Padding.Top
	innerW := g.W - g.Layout.Padding.Horizontal()
	innerH := g.H - g.Layout.Padding.Vertical()
	cells, rows := g.place()
	if rows == 0 {
		return
	}
	cols := trackSizes(g.Columns, innerW, g.ColGap, g.ColumnSizes)
	rowTracks := trackSizes(rows, innerH, g.RowGap, g.rowSizesFor(rows, cells, cols))

	colPos := trackOffsets(cols, g.ColGap)
	rowPos := trackOffsets(rowTracks, g.RowGap)

	for _, cell := range cells {
		cb := cell.w.Base()
		m := cb.Layout.Margin
		cx := colPos[cell.col]
		cy := rowPos[cell.row]
		cw := spanExtent(cols, cell.col, cell.colSpan, g.ColGap)
		ch := spanExtent(rowTracks, cell.row, cell.rowSpan, g.RowGap)
		ArrangeWidget(cell.w,
			innerX+cx+m.Left, innerY+cy+m.Top,
			max32(0, cw-m.Horizontal()), max32(0, ch-m.Vertical()))
	}
}

// rowSizesFor merges explicit RowSizes with heights derived from the
// tallest single-row cell, so content rows are never crushed to zero.
func (g *Grid) rowSizesFor(rows int, cells []gridCell, cols []float32) []float32 {
	out := make([]float32, rows)
	copy(out, g.RowSizes)
	for _, cell := range cells {
		if cell.rowSpan != 1 || cell.row >= rows {
			continue
		}
		if cell.row < len(g.RowSizes) && g.RowSizes[cell.row] > 0 {
			continue
		}
		cb := cell.w.Base()
		cw := spanExtent(cols, cell.col, cell.colSpan, g.ColGap)
		MeasureWidget(cell.w, cw-cb.Layout.Margin.Horizontal(), cb.MeasuredH)
		if h := cb.MeasuredH + cb.Layout.Margin.Vertical(); h > out[cell.row] {
			out[cell.row] = h
		}
	}
	return out
}

// spanExtent sums track sizes across a span, including interior gaps.
func spanExtent(tracks []float32, start, span int, gap float32) float32 {
	var total float32
	for i := start; i < start+span && i < len(tracks); i++ {
		total += tracks[i]
	}
	if span > 1 {
		total += gap * float32(span-1)
	}
	return total
}

// trackOffsets returns the leading offset of each track.
func trackOffsets(tracks []float32, gap float32) []float32 {
	out := make([]float32, len(tracks))
	var pos float32
	for i, t := range tracks {
		out[i] = pos
		pos += t + gap
	}
	return out
}
