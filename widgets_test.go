package gui

import (
	"testing"

	"github.com/viperdos/gui/gfx"
)

func widgetKey(w Widget, key gfx.Key, mods int) bool {
	ev := Event{Type: EventKeyDown, Key: key, Mods: mods}
	return w.HandleEvent(&ev)
}

func TestCheckboxToggle(t *testing.T) {
	cb := NewCheckbox("opt")
	changes := 0
	cb.OnChange = func(Widget) { changes++ }

	cb.SetChecked(true)
	if !cb.Checked {
		t.Fatal("not checked")
	}
	if cb.State&StateChecked == 0 {
		t.Error("checked state bit not set")
	}
	cb.SetChecked(true)
	if changes != 1 {
		t.Errorf("OnChange fired %d times, want 1 (no-op set must not fire)", changes)
	}
	widgetKey(cb, gfx.KeyEnter, 0)
	if cb.Checked {
		t.Error("enter did not toggle off")
	}
}

func TestRadioGroupExclusive(t *testing.T) {
	g := NewRadioGroup()
	a := NewRadioButton(g, "a")
	b := NewRadioButton(g, "b")

	a.Select()
	if g.Selected() != a || !a.Checked {
		t.Fatal("first button not selected")
	}
	b.Select()
	if a.Checked {
		t.Error("previous button stayed checked")
	}
	if g.Selected() != b || !b.Checked {
		t.Error("second button not selected")
	}
}

func TestRadioGroupOnSelect(t *testing.T) {
	g := NewRadioGroup()
	var got *RadioButton
	g.OnSelect = func(rb *RadioButton) { got = rb }
	rb := NewRadioButton(g, "x")
	rb.Select()
	if got != rb {
		t.Error("OnSelect not fired with the selected button")
	}
}

func TestSliderClampAndStep(t *testing.T) {
	s := NewSlider(0, 10)
	s.SetValue(42)
	if s.Value() != 10 {
		t.Errorf("value = %g, want clamped to 10", s.Value())
	}
	s.SetValue(-3)
	if s.Value() != 0 {
		t.Errorf("value = %g, want clamped to 0", s.Value())
	}

	s.Step = 2
	s.SetValue(5.3)
	if s.Value() != 6 {
		t.Errorf("value = %g, want snapped to 6", s.Value())
	}
}

func TestSliderKeyboard(t *testing.T) {
	s := NewSlider(0, 10)
	s.Step = 1
	s.SetValue(5)

	widgetKey(s, gfx.KeyRight, 0)
	if s.Value() != 6 {
		t.Errorf("right arrow value = %g, want 6", s.Value())
	}
	widgetKey(s, gfx.KeyLeft, 0)
	widgetKey(s, gfx.KeyLeft, 0)
	if s.Value() != 4 {
		t.Errorf("left arrows value = %g, want 4", s.Value())
	}
	widgetKey(s, gfx.KeyEnd, 0)
	if s.Value() != 10 {
		t.Errorf("end value = %g, want 10", s.Value())
	}
	widgetKey(s, gfx.KeyHome, 0)
	if s.Value() != 0 {
		t.Errorf("home value = %g, want 0", s.Value())
	}
}

func TestSliderOnChangeOnlyOnRealChange(t *testing.T) {
	s := NewSlider(0, 10)
	calls := 0
	s.OnChange = func(Widget) { calls++ }
	s.SetValue(5)
	s.SetValue(5)
	if calls != 1 {
		t.Errorf("OnChange fired %d times, want 1", calls)
	}
}

func TestProgressBarClamp(t *testing.T) {
	p := NewProgressBar()
	p.SetFraction(1.5)
	if p.Fraction() != 1 {
		t.Errorf("fraction = %g, want 1", p.Fraction())
	}
	p.SetFraction(-0.2)
	if p.Fraction() != 0 {
		t.Errorf("fraction = %g, want 0", p.Fraction())
	}
}

func TestListBoxSelect(t *testing.T) {
	l := NewListBox([]string{"a", "b", "c"})
	if l.SelectedIndex() != -1 {
		t.Fatalf("initial selection = %d, want -1", l.SelectedIndex())
	}
	changes := 0
	l.OnChange = func(Widget) { changes++ }

	l.Select(1)
	if l.SelectedItem() != "b" {
		t.Errorf("selected item = %q, want %q", l.SelectedItem(), "b")
	}
	l.Select(99)
	if l.SelectedIndex() != 2 {
		t.Errorf("out-of-range select = %d, want clamped to 2", l.SelectedIndex())
	}
	l.Select(2)
	if changes != 2 {
		t.Errorf("OnChange fired %d times, want 2", changes)
	}
}

func TestListBoxKeyboard(t *testing.T) {
	l := NewListBox([]string{"a", "b", "c", "d"})
	l.SetFixedSize(100, 200)

	widgetKey(l, gfx.KeyDown, 0)
	if l.SelectedIndex() != 0 {
		t.Fatalf("first down = %d, want 0", l.SelectedIndex())
	}
	widgetKey(l, gfx.KeyDown, 0)
	widgetKey(l, gfx.KeyUp, 0)
	if l.SelectedIndex() != 0 {
		t.Errorf("down+up = %d, want 0", l.SelectedIndex())
	}
	widgetKey(l, gfx.KeyEnd, 0)
	if l.SelectedIndex() != 3 {
		t.Errorf("end = %d, want 3", l.SelectedIndex())
	}
	widgetKey(l, gfx.KeyHome, 0)
	if l.SelectedIndex() != 0 {
		t.Errorf("home = %d, want 0", l.SelectedIndex())
	}
}

func TestDropdownSelect(t *testing.T) {
	d := NewDropdown([]string{"red", "green", "blue"})
	if d.SelectedItem() != "" {
		t.Fatal("empty selection should render placeholder")
	}
	var got string
	d.OnChange = func(w Widget) { got = w.(*Dropdown).SelectedItem() }
	d.Select(2)
	if got != "blue" {
		t.Errorf("OnChange saw %q, want %q", got, "blue")
	}
}

func TestDropdownOpenTakesCapture(t *testing.T) {
	root := NewVBox()
	d := NewDropdown([]string{"a", "b"})
	root.AddChild(d)
	LayoutTree(root, 200, 100)

	d.setOpen(true)
	if CaptureWidget(root) != Widget(d) {
		t.Error("open dropdown does not hold input capture")
	}
	d.setOpen(false)
	if CaptureWidget(root) != nil {
		t.Error("closed dropdown kept input capture")
	}
}

func TestDropdownEscapeCloses(t *testing.T) {
	d := NewDropdown([]string{"a", "b"})
	d.setOpen(true)
	widgetKey(d, gfx.KeyEscape, 0)
	if d.IsOpen() {
		t.Error("escape did not close the popup")
	}
}

func TestTabBarSelect(t *testing.T) {
	tb := NewTabBar([]string{"one", "two", "three"})
	changes := 0
	tb.OnChange = func(Widget) { changes++ }

	tb.Select(1)
	if tb.SelectedIndex() != 1 {
		t.Fatalf("selected = %d, want 1", tb.SelectedIndex())
	}
	widgetKey(tb, gfx.KeyRight, 0)
	if tb.SelectedIndex() != 2 {
		t.Errorf("right arrow = %d, want 2", tb.SelectedIndex())
	}
	widgetKey(tb, gfx.KeyRight, 0)
	if tb.SelectedIndex() != 2 {
		t.Errorf("right at the last tab = %d, want to stay at 2", tb.SelectedIndex())
	}
	widgetKey(tb, gfx.KeyLeft, 0)
	if tb.SelectedIndex() != 1 {
		t.Errorf("left arrow = %d, want 1", tb.SelectedIndex())
	}
	if changes != 3 {
		t.Errorf("OnChange fired %d times, want 3", changes)
	}
}

func TestStatusBarSections(t *testing.T) {
	sb := NewStatusBar(3)
	sb.SetText(0, "ready")
	sb.SetText(2, "ln 4")
	sb.SetText(9, "ignored")
	if sb.Text(0) != "ready" || sb.Text(2) != "ln 4" {
		t.Error("section text not stored")
	}
	if sb.Text(9) != "" {
		t.Error("out-of-range section readable")
	}
}

func TestToolbarAddButton(t *testing.T) {
	tb := NewToolbar()
	clicked := false
	btn := tb.AddButton("run", func(Widget) { clicked = true })
	tb.AddSeparator()

	n := 0
	for c := tb.Base().FirstChild; c != nil; c = c.Base().NextSibling {
		n++
	}
	if n != 2 {
		t.Fatalf("toolbar children = %d, want 2", n)
	}
	btn.activate()
	if !clicked {
		t.Error("button callback not wired")
	}
}

func TestScrollViewWheel(t *testing.T) {
	content := newStub(100, 500)
	sv := NewScrollView(content)
	sv.SetFixedSize(100, 100)
	root := NewVBox()
	root.AddChild(sv)
	LayoutTree(root, 100, 100)

	ev := Event{Type: EventScroll, X: 50, Y: 50, DeltaY: -1}
	sv.HandleEvent(&ev)
	if _, sy := sv.ScrollOffset(); sy != sv.WheelStep {
		t.Errorf("scrollY = %g after wheel, want %g", sy, sv.WheelStep)
	}

	for i := 0; i < 50; i++ {
		sv.HandleEvent(&ev)
	}
	_, sy := sv.ScrollOffset()
	if maxScroll := sv.contentH - sv.viewportH(); sy > maxScroll {
		t.Errorf("scrollY = %g, beyond content range %g", sy, maxScroll)
	}

	outside := Event{Type: EventScroll, X: 300, Y: 300, DeltaY: -1}
	if sv.HandleEvent(&outside) {
		t.Error("wheel outside the viewport was handled")
	}
}
