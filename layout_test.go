package gui

import "testing"

// stubWidget is a plain fixed-size widget for layout and event tests.
type stubWidget struct {
	WidgetBase
	focusable bool
	seen      []EventType
	handle    func(*Event) bool
}

func newStub(w, h float32) *stubWidget {
	s := &stubWidget{}
	s.Init(s, "stub")
	s.SetFixedSize(w, h)
	return s
}

func (s *stubWidget) CanFocus() bool { return s.focusable && !s.IsDisabled() }

func (s *stubWidget) HandleEvent(ev *Event) bool {
	s.seen = append(s.seen, ev.Type)
	if s.handle != nil {
		return s.handle(ev)
	}
	return false
}

func wantRect(t *testing.T, w Widget, x, y, width, height float32) {
	t.Helper()
	b := w.Base()
	if b.X != x || b.Y != y || b.W != width || b.H != height {
		t.Errorf("%s rect = (%g,%g %gx%g), want (%g,%g %gx%g)",
			b.Type, b.X, b.Y, b.W, b.H, x, y, width, height)
	}
}

func TestVBoxStacksWithSpacing(t *testing.T) {
	box := NewVBox()
	box.Spacing = 10
	a := newStub(100, 20)
	b := newStub(50, 30)
	box.AddChild(a)
	box.AddChild(b)

	MeasureWidget(box, 200, 200)
	if box.MeasuredW != 100 || box.MeasuredH != 60 {
		t.Fatalf("measured = %gx%g, want 100x60", box.MeasuredW, box.MeasuredH)
	}

	ArrangeWidget(box, 0, 0, 200, 200)
	wantRect(t, a, 0, 0, 100, 20)
	wantRect(t, b, 0, 30, 50, 30)
}

func TestVBoxFlexTakesLeftover(t *testing.T) {
	box := NewVBox()
	box.Spacing = 10
	fixed := newStub(100, 20)
	flex := &stubWidget{}
	flex.Init(flex, "stub")
	flex.Layout.Flex = 1
	box.AddChild(fixed)
	box.AddChild(flex)

	LayoutTree(box, 200, 200)
	wantRect(t, fixed, 0, 0, 100, 20)
	// Leftover after the fixed child and spacing.
	if flex.Y != 30 || flex.H != 170 {
		t.Errorf("flex child at y=%g h=%g, want y=30 h=170", flex.Y, flex.H)
	}
}

func TestVBoxFlexProportions(t *testing.T) {
	box := NewVBox()
	one := &stubWidget{}
	one.Init(one, "stub")
	one.Layout.Flex = 1
	three := &stubWidget{}
	three.Init(three, "stub")
	three.Layout.Flex = 3
	box.AddChild(one)
	box.AddChild(three)

	LayoutTree(box, 100, 400)
	if one.H != 100 {
		t.Errorf("flex=1 child h = %g, want 100", one.H)
	}
	if three.H != 300 {
		t.Errorf("flex=3 child h = %g, want 300", three.H)
	}
}

func TestHBoxJustifyCenter(t *testing.T) {
	box := NewHBox()
	box.Justify = JustifyCenter
	a := newStub(40, 20)
	b := newStub(40, 20)
	box.AddChild(a)
	box.AddChild(b)

	LayoutTree(box, 200, 40)
	// 200 - 80 content = 120 leftover, half leads.
	if a.X != 60 {
		t.Errorf("first child x = %g, want 60", a.X)
	}
	if b.X != 100 {
		t.Errorf("second child x = %g, want 100", b.X)
	}
}

func TestHBoxAlignStretch(t *testing.T) {
	box := NewHBox()
	box.Align = AlignStretch
	a := newStub(40, 0)
	box.AddChild(a)

	LayoutTree(box, 200, 50)
	if a.H != 50 {
		t.Errorf("stretched child h = %g, want 50", a.H)
	}
}

func TestGridAutoFlow(t *testing.T) {
	g := NewGrid(2)
	var cells [4]*stubWidget
	for i := range cells {
		cells[i] = newStub(50, 30)
		g.AddChild(cells[i])
	}

	LayoutTree(g, 200, 200)
	// Two equal 100-wide columns, rows sized to content.
	wantRect(t, cells[0], 0, 0, 100, 30)
	wantRect(t, cells[1], 100, 0, 100, 30)
	wantRect(t, cells[2], 0, 30, 100, 30)
	wantRect(t, cells[3], 100, 30, 100, 30)
}

func TestGridColSpan(t *testing.T) {
	g := NewGrid(2)
	wide := newStub(50, 30)
	wide.Layout.ColSpan = 2
	below := newStub(50, 30)
	g.AddChild(wide)
	g.AddChild(below)

	LayoutTree(g, 200, 200)
	wantRect(t, wide, 0, 0, 200, 30)
	wantRect(t, below, 0, 30, 100, 30)
}

func TestGridPinnedColumn(t *testing.T) {
	g := NewGrid(2)
	g.ColumnSizes = []float32{60}
	a := newStub(10, 30)
	b := newStub(10, 30)
	g.AddChild(a)
	g.AddChild(b)

	LayoutTree(g, 200, 200)
	if a.W != 60 {
		t.Errorf("pinned column width = %g, want 60", a.W)
	}
	if b.X != 60 || b.W != 140 {
		t.Errorf("free column at x=%g w=%g, want x=60 w=140", b.X, b.W)
	}
}

func TestGridExplicitCell(t *testing.T) {
	g := NewGrid(3)
	placed := newStub(10, 10)
	placed.Layout.GridCol = 2
	placed.Layout.GridRow = 1
	g.AddChild(placed)
	g.AddChild(newStub(10, 10))

	LayoutTree(g, 300, 300)
	if placed.X != 200 {
		t.Errorf("explicit cell x = %g, want 200", placed.X)
	}
	if placed.Y <= 0 {
		t.Errorf("explicit cell y = %g, want second row", placed.Y)
	}
}

func TestDockStrips(t *testing.T) {
	d := NewDock()
	top := newStub(0, 30)
	top.Layout.Dock = DockTop
	left := newStub(80, 0)
	left.Layout.Dock = DockLeft
	bottom := newStub(0, 20)
	bottom.Layout.Dock = DockBottom
	fill := &stubWidget{}
	fill.Init(fill, "stub")
	fill.Layout.Dock = DockFill
	d.AddChild(top)
	d.AddChild(bottom)
	d.AddChild(left)
	d.AddChild(fill)

	LayoutTree(d, 400, 300)
	wantRect(t, top, 0, 0, 400, 30)
	wantRect(t, bottom, 0, 280, 400, 20)
	wantRect(t, left, 0, 30, 80, 250)
	wantRect(t, fill, 80, 30, 320, 250)
}

func TestMarginsOffsetChild(t *testing.T) {
	box := NewVBox()
	a := newStub(50, 20)
	a.Layout.Margin = Insets{Top: 5, Left: 7}
	box.AddChild(a)

	MeasureWidget(box, 200, 200)
	if box.MeasuredH != 25 {
		t.Errorf("measured h = %g, want 25", box.MeasuredH)
	}
	ArrangeWidget(box, 0, 0, 200, 200)
	if a.X != 7 || a.Y != 5 {
		t.Errorf("child at (%g,%g), want (7,5)", a.X, a.Y)
	}
}

func TestInvisibleChildSkipped(t *testing.T) {
	box := NewVBox()
	hidden := newStub(100, 50)
	hidden.Visible = false
	shown := newStub(100, 20)
	box.AddChild(hidden)
	box.AddChild(shown)

	LayoutTree(box, 200, 200)
	if box.MeasuredH != 20 {
		t.Errorf("measured h = %g, want 20", box.MeasuredH)
	}
	wantRect(t, shown, 0, 0, 100, 20)
}

func TestHitTestDeepest(t *testing.T) {
	box := NewVBox()
	a := newStub(100, 20)
	b := newStub(100, 30)
	box.AddChild(a)
	box.AddChild(b)
	LayoutTree(box, 100, 50)

	if got := HitTest(box, 50, 10); got != Widget(a) {
		t.Errorf("hit at (50,10) = %v, want first child", got)
	}
	if got := HitTest(box, 50, 25); got != Widget(b) {
		t.Errorf("hit at (50,25) = %v, want second child", got)
	}
	if got := HitTest(box, 200, 10); got != nil {
		t.Errorf("hit outside = %v, want nil", got)
	}
}
