package gui

import "testing"

func focusTree() (*VBox, *stubWidget, *stubWidget, *stubWidget) {
	root := NewVBox()
	a := newStub(50, 20)
	a.focusable = true
	b := newStub(50, 20)
	b.focusable = true
	c := newStub(50, 20)
	c.focusable = true
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)
	return root, a, b, c
}

func TestFocusNextNaturalOrder(t *testing.T) {
	root, a, b, c := focusTree()

	if got := FocusNext(root); got != Widget(a) {
		t.Fatalf("first FocusNext = %v, want first child", got)
	}
	FocusNext(root)
	if FocusedWidget(root) != Widget(b) {
		t.Error("second FocusNext did not land on second child")
	}
	FocusNext(root)
	FocusNext(root)
	if FocusedWidget(root) != Widget(a) {
		t.Errorf("traversal did not wrap past %v", c.Type)
	}
}

func TestFocusPrevWraps(t *testing.T) {
	root, _, _, c := focusTree()

	if got := FocusPrev(root); got != Widget(c) {
		t.Fatalf("FocusPrev with no focus = %v, want last child", got)
	}
}

func TestTabIndexBeforeNatural(t *testing.T) {
	root, a, b, c := focusTree()
	// Explicit indices come first in ascending order, then natural order.
	a.TabIndex = 2
	b.TabIndex = 1

	order := focusOrder(root)
	want := []Widget{b, a, c}
	if len(order) != len(want) {
		t.Fatalf("order length = %d, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %v, want %v", i, order[i], want[i])
		}
	}
}

func TestFocusSkipsDisabledAndHidden(t *testing.T) {
	root, a, b, _ := focusTree()
	a.SetEnabled(false)
	b.Visible = false

	order := focusOrder(root)
	if len(order) != 1 {
		t.Fatalf("order length = %d, want 1", len(order))
	}
}

func TestSetFocusNotifies(t *testing.T) {
	root, a, b, _ := focusTree()

	SetFocus(a)
	if FocusedWidget(root) != Widget(a) {
		t.Fatal("focus not set")
	}
	if a.State&StateFocused == 0 {
		t.Error("focused state bit not set")
	}
	SetFocus(b)
	if a.State&StateFocused != 0 {
		t.Error("old holder kept the focused bit")
	}
	ClearFocus(root)
	if FocusedWidget(root) != nil {
		t.Error("ClearFocus left a focused widget")
	}
}

func TestCaptureSeesMouseFirst(t *testing.T) {
	root, a, b, _ := focusTree()
	LayoutTree(root, 100, 100)
	a.handle = func(ev *Event) bool { return ev.IsMouse() }

	SetInputCapture(a)
	ev := Event{Type: EventMouseMove, X: 25, Y: 30} // over b
	Dispatch(root, &ev)
	if len(a.seen) != 1 {
		t.Error("capture holder did not receive the event")
	}
	if len(b.seen) != 0 {
		t.Error("event leaked past the capture holder")
	}

	ReleaseInputCapture(a)
	Dispatch(root, &ev)
	if len(b.seen) != 1 {
		t.Error("hit widget not reached after release")
	}
}

func TestReleaseCaptureOnlyByHolder(t *testing.T) {
	root, a, b, _ := focusTree()

	SetInputCapture(a)
	ReleaseInputCapture(b)
	if CaptureWidget(root) != Widget(a) {
		t.Error("release by a non-holder cleared the capture")
	}
}

func TestDestroyClearsFocusAndCapture(t *testing.T) {
	root, a, _, _ := focusTree()
	SetFocus(a)
	SetInputCapture(a)

	DestroyWidget(Widget(a))
	if FocusedWidget(root) != nil {
		t.Error("destroyed widget still focused")
	}
	if CaptureWidget(root) != nil {
		t.Error("destroyed widget still holds capture")
	}
}
