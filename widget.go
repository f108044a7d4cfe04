package gui

import "sync/atomic"

// WidgetState is a bitmask of interaction states.
type WidgetState uint32

const (
	StateNormal   WidgetState = 0
	StateHovered  WidgetState = 1 << 0
	StatePressed  WidgetState = 1 << 1
	StateFocused  WidgetState = 1 << 2
	StateDisabled WidgetState = 1 << 3
	StateSelected WidgetState = 1 << 4
	StateChecked  WidgetState = 1 << 5
)

// Constraints bound a widget's measured size. Zero fields are unset.
type Constraints struct {
	MinW, MinH   float32
	MaxW, MaxH   float32
	PrefW, PrefH float32
}

// DockEdge selects the edge a child claims inside a Dock container.
type DockEdge int

const (
	DockFill DockEdge = iota
	DockLeft
	DockTop
	DockRight
	DockBottom
)

// LayoutParams carry the per-child inputs to the layout engines.
type LayoutParams struct {
	// Flex is the child's share of leftover main-axis space in box and
	// flex layouts; 0 means fixed size.
	Flex float32

	Margin  Insets
	Padding Insets

	// Grid placement. A negative GridCol or GridRow means the cell is
	// auto-flowed.
	GridCol, GridRow int
	ColSpan, RowSpan int

	// Dock placement.
	Dock DockEdge
}

// Widget is the interface every widget type implements. Concrete types
// embed WidgetBase, which supplies defaults for everything, and override
// the entries they need.
type Widget interface {
	// Base returns the embedded common record.
	Base() *WidgetBase

	// Measure computes MeasuredW/MeasuredH within the available space,
	// honouring constraints. Containers measure their children here.
	Measure(availW, availH float32)

	// Arrange sets final geometry and positions children.
	Arrange(x, y, w, h float32)

	// Paint draws the widget. Children are painted by the tree walker,
	// not here. Coordinates in Base().X/Y are absolute during the call.
	Paint(c *Canvas)

	// PaintOverlay draws above normal Z-order; used by widgets holding
	// input capture for their popups.
	PaintOverlay(c *Canvas)

	// HandleEvent consumes or ignores an event; returning true stops
	// propagation.
	HandleEvent(ev *Event) bool

	// CanFocus reports whether focus traversal may land here.
	CanFocus() bool

	// OnFocus is notified when focus is gained or lost.
	OnFocus(gained bool)

	// Destroy releases per-type resources. The tree walker destroys
	// children first.
	Destroy()
}

var widgetIDCounter atomic.Uint64

// treeState is the per-tree shared record: focus, input capture, and the
// pending dirty flags. Every widget attached to the tree points at the same
// instance.
type treeState struct {
	focused     Widget
	capture     Widget
	needsLayout bool
	needsPaint  bool
}

// WidgetBase is the common widget record: identity, tree links, geometry,
// constraints, layout params, state and callbacks. Embed it in every
// concrete widget and call Init with the outer value.
type WidgetBase struct {
	self Widget
	tree *treeState

	ID   uint64
	Name string
	Type string

	Parent      Widget
	FirstChild  Widget
	LastChild   Widget
	NextSibling Widget
	PrevSibling Widget
	ChildCount  int

	// Geometry: X/Y are relative to the parent origin at rest; the paint
	// walker temporarily overwrites them with absolute values.
	X, Y          float32
	W, H          float32
	MeasuredW     float32
	MeasuredH     float32

	Constraints Constraints
	Layout      LayoutParams

	State    WidgetState
	Visible  bool
	Enabled  bool
	TabIndex int // -1 means natural order

	// Generic callbacks fired by concrete widgets.
	OnClick  func(w Widget)
	OnChange func(w Widget)
	OnSubmit func(w Widget)

	UserData any
}

// Init wires the embedded base to its outer widget. Every constructor must
// call it before using tree operations.
func (b *WidgetBase) Init(self Widget, typeName string) {
	b.self = self
	b.Type = typeName
	b.ID = widgetIDCounter.Add(1)
	b.Visible = true
	b.Enabled = true
	b.TabIndex = -1
	b.Layout.GridCol = -1
	b.Layout.GridRow = -1
	b.tree = &treeState{}
}

// Base implements Widget.
func (b *WidgetBase) Base() *WidgetBase { return b }

// Self returns the outer widget value.
func (b *WidgetBase) Self() Widget { return b.self }

// Default vtable entries. Concrete widgets override what they need.

// Measure measures children against the content box and reports the
// largest child plus padding, clamped by constraints.
func (b *WidgetBase) Measure(availW, availH float32) {
	innerW := availW - b.Layout.Padding.Horizontal()
	innerH := availH - b.Layout.Padding.Vertical()
	var maxW, maxH float32
	for c := b.FirstChild; c != nil; c = c.Base().NextSibling {
		cb := c.Base()
		MeasureWidget(c, innerW-cb.Layout.Margin.Horizontal(), innerH-cb.Layout.Margin.Vertical())
		w := cb.MeasuredW + cb.Layout.Margin.Horizontal()
		h := cb.MeasuredH + cb.Layout.Margin.Vertical()
		if w > maxW {
			maxW = w
		}
		if h > maxH {
			maxH = h
		}
	}
	b.SetMeasured(maxW+b.Layout.Padding.Horizontal(), maxH+b.Layout.Padding.Vertical())
}

// Arrange stores geometry and stacks children at the padding offset with
// their measured sizes.
func (b *WidgetBase) Arrange(x, y, w, h float32) {
	b.SetGeometry(x, y, w, h)
	for c := b.FirstChild; c != nil; c = c.Base().NextSibling {
		cb := c.Base()
		cx := b.Layout.Padding.Left + cb.Layout.Margin.Left
		cy := b.Layout.Padding.Top + cb.Layout.Margin.Top
		ArrangeWidget(c, cx, cy, cb.MeasuredW, cb.MeasuredH)
	}
}

// Paint draws nothing.
func (b *WidgetBase) Paint(c *Canvas) {}

// PaintOverlay draws nothing.
func (b *WidgetBase) PaintOverlay(c *Canvas) {}

// HandleEvent ignores everything.
func (b *WidgetBase) HandleEvent(ev *Event) bool { return false }

// CanFocus reports not focusable.
func (b *WidgetBase) CanFocus() bool { return false }

// OnFocus updates the focus state bit.
func (b *WidgetBase) OnFocus(gained bool) {
	if gained {
		b.State |= StateFocused
	} else {
		b.State &^= StateFocused
	}
}

// Destroy releases nothing.
func (b *WidgetBase) Destroy() {}

// SetMeasured applies constraints and records the measured size.
func (b *WidgetBase) SetMeasured(w, h float32) {
	c := b.Constraints
	if c.PrefW > 0 {
		w = c.PrefW
	}
	if c.PrefH > 0 {
		h = c.PrefH
	}
	if c.MinW > 0 && w < c.MinW {
		w = c.MinW
	}
	if c.MinH > 0 && h < c.MinH {
		h = c.MinH
	}
	if c.MaxW > 0 && w > c.MaxW {
		w = c.MaxW
	}
	if c.MaxH > 0 && h > c.MaxH {
		h = c.MaxH
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.MeasuredW, b.MeasuredH = w, h
}

// SetGeometry stores the arranged rectangle.
func (b *WidgetBase) SetGeometry(x, y, w, h float32) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.X, b.Y, b.W, b.H = x, y, w, h
}

// SetFixedSize pins the widget to an exact size.
func (b *WidgetBase) SetFixedSize(w, h float32) {
	b.Constraints.MinW, b.Constraints.MaxW, b.Constraints.PrefW = w, w, w
	b.Constraints.MinH, b.Constraints.MaxH, b.Constraints.PrefH = h, h, h
	b.InvalidateLayout()
}

// Bounds returns the widget rectangle in parent coordinates.
func (b *WidgetBase) Bounds() Rect { return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H} }

// Tree operations.

// AddChild appends a child, detaching it from any previous parent.
func (b *WidgetBase) AddChild(child Widget) {
	if child == nil || child.Base().self == nil {
		return
	}
	cb := child.Base()
	if cb.Parent != nil {
		cb.Parent.Base().RemoveChild(child)
	}
	cb.Parent = b.self
	cb.PrevSibling = b.LastChild
	cb.NextSibling = nil
	if b.LastChild != nil {
		b.LastChild.Base().NextSibling = child
	} else {
		b.FirstChild = child
	}
	b.LastChild = child
	b.ChildCount++
	setTree(child, b.tree)
	b.InvalidateLayout()
}

// InsertChild places a child before the given sibling; a nil sibling
// appends.
func (b *WidgetBase) InsertChild(child, before Widget) {
	if before == nil {
		b.AddChild(child)
		return
	}
	cb := child.Base()
	if cb.Parent != nil {
		cb.Parent.Base().RemoveChild(child)
	}
	bb := before.Base()
	cb.Parent = b.self
	cb.NextSibling = before
	cb.PrevSibling = bb.PrevSibling
	if bb.PrevSibling != nil {
		bb.PrevSibling.Base().NextSibling = child
	} else {
		b.FirstChild = child
	}
	bb.PrevSibling = child
	b.ChildCount++
	setTree(child, b.tree)
	b.InvalidateLayout()
}

// RemoveChild detaches a child without destroying it.
func (b *WidgetBase) RemoveChild(child Widget) {
	cb := child.Base()
	if cb.Parent == nil || cb.Parent.Base() != b {
		return
	}
	if cb.PrevSibling != nil {
		cb.PrevSibling.Base().NextSibling = cb.NextSibling
	} else {
		b.FirstChild = cb.NextSibling
	}
	if cb.NextSibling != nil {
		cb.NextSibling.Base().PrevSibling = cb.PrevSibling
	} else {
		b.LastChild = cb.PrevSibling
	}
	cb.Parent = nil
	cb.PrevSibling = nil
	cb.NextSibling = nil
	b.ChildCount--
	setTree(child, &treeState{})
	b.InvalidateLayout()
}

// ClearChildren destroys every child subtree.
func (b *WidgetBase) ClearChildren() {
	for b.FirstChild != nil {
		c := b.FirstChild
		b.RemoveChild(c)
		DestroyWidget(c)
	}
}

// Children returns the child widgets in tree order.
func (b *WidgetBase) Children() []Widget {
	out := make([]Widget, 0, b.ChildCount)
	for c := b.FirstChild; c != nil; c = c.Base().NextSibling {
		out = append(out, c)
	}
	return out
}

// FindByName searches the subtree depth-first for a widget name.
func (b *WidgetBase) FindByName(name string) Widget {
	if b.Name == name {
		return b.self
	}
	for c := b.FirstChild; c != nil; c = c.Base().NextSibling {
		if found := c.Base().FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// FindByID searches the subtree depth-first for a widget id.
func (b *WidgetBase) FindByID(id uint64) Widget {
	if b.ID == id {
		return b.self
	}
	for c := b.FirstChild; c != nil; c = c.Base().NextSibling {
		if found := c.Base().FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// setTree repoints a subtree at a shared tree state, clearing stale focus
// or capture that referenced the moved widgets.
func setTree(w Widget, t *treeState) {
	b := w.Base()
	if b.tree != nil && b.tree != t {
		if b.tree.focused != nil && b.tree.focused.Base() == b {
			b.tree.focused = nil
		}
		if b.tree.capture != nil && b.tree.capture.Base() == b {
			b.tree.capture = nil
		}
	}
	b.tree = t
	for c := b.FirstChild; c != nil; c = c.Base().NextSibling {
		setTree(c, t)
	}
}

// InvalidateLayout marks the tree for re-layout.
func (b *WidgetBase) InvalidateLayout() {
	if b.tree != nil {
		b.tree.needsLayout = true
		b.tree.needsPaint = true
	}
}

// InvalidatePaint marks the tree for repaint.
func (b *WidgetBase) InvalidatePaint() {
	if b.tree != nil {
		b.tree.needsPaint = true
	}
}

// IsDisabled reports the disabled state or a cleared enabled flag.
func (b *WidgetBase) IsDisabled() bool {
	return !b.Enabled || b.State&StateDisabled != 0
}

// SetEnabled flips the enabled flag and disabled state bit together.
func (b *WidgetBase) SetEnabled(enabled bool) {
	b.Enabled = enabled
	if enabled {
		b.State &^= StateDisabled
	} else {
		b.State |= StateDisabled
	}
	b.InvalidatePaint()
}

// ScreenBounds returns the widget rectangle in root coordinates by walking
// the parent chain. X/Y must hold relative values (i.e. not during paint).
func (b *WidgetBase) ScreenBounds() Rect {
	x, y := b.X, b.Y
	for p := b.Parent; p != nil; p = p.Base().Parent {
		pb := p.Base()
		x += pb.X
		y += pb.Y
	}
	return Rect{X: x, Y: y, W: b.W, H: b.H}
}

// Tree walkers.

// MeasureWidget runs the measure pass on a subtree.
func MeasureWidget(w Widget, availW, availH float32) {
	b := w.Base()
	if !b.Visible {
		b.MeasuredW, b.MeasuredH = 0, 0
		return
	}
	w.Measure(availW, availH)
}

// ArrangeWidget runs the arrange pass on a subtree.
func ArrangeWidget(w Widget, x, y, width, height float32) {
	if !w.Base().Visible {
		return
	}
	w.Arrange(x, y, width, height)
}

// LayoutTree measures then arranges the whole tree at the given root size.
func LayoutTree(root Widget, width, height float32) {
	MeasureWidget(root, width, height)
	ArrangeWidget(root, 0, 0, width, height)
	root.Base().tree.needsLayout = false
}

// DestroyWidget destroys a subtree: children first, then the widget's own
// Destroy, then the tree links.
func DestroyWidget(w Widget) {
	if w == nil {
		return
	}
	b := w.Base()
	for b.FirstChild != nil {
		c := b.FirstChild
		b.RemoveChild(c)
		DestroyWidget(c)
	}
	if b.Parent != nil {
		b.Parent.Base().RemoveChild(w)
	}
	if b.tree != nil {
		if b.tree.focused == w {
			b.tree.focused = nil
		}
		if b.tree.capture == w {
			b.tree.capture = nil
		}
	}
	w.Destroy()
}

// HitTest returns the deepest visible widget containing the point in root
// coordinates, or nil.
func HitTest(root Widget, x, y float32) Widget {
	return hitTest(root, x, y, 0, 0)
}

func hitTest(w Widget, x, y, offX, offY float32) Widget {
	b := w.Base()
	if !b.Visible {
		return nil
	}
	absX, absY := b.X+offX, b.Y+offY
	if x < absX || x >= absX+b.W || y < absY || y >= absY+b.H {
		return nil
	}
	// Later siblings render on top, so scan children in reverse.
	for c := b.LastChild; c != nil; c = c.Base().PrevSibling {
		if hit := hitTest(c, x, y, absX, absY); hit != nil {
			return hit
		}
	}
	return w
}
