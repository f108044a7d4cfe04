package gui

import (
	"testing"

	"github.com/viperdos/gui/gfx"
)

// newTestMenuBar builds a bar with File (New | --- | Quit) and Edit (Undo),
// laid out at (0,0) 200 wide. Without a font every title is padding-wide.
func newTestMenuBar() (*MenuBar, *MenuItem, *MenuItem) {
	mb := NewMenuBar()
	file := mb.AddMenu("File")
	newItem := file.AddItem("New", "Ctrl+N", nil)
	file.AddSeparator()
	quitItem := file.AddItem("Quit", "", nil)
	mb.AddMenu("Edit").AddItem("Undo", "Ctrl+Z", nil)

	mb.Measure(200, 50)
	mb.Arrange(0, 0, mb.MeasuredW, mb.MeasuredH)
	return mb, newItem, quitItem
}

func TestMenuBarOpenToggleAndSwitch(t *testing.T) {
	mb, _, _ := newTestMenuBar()

	down := Event{Type: EventMouseDown, X: 2, Y: 2}
	if !Dispatch(mb, &down) {
		t.Fatal("click on a title not handled")
	}
	if !mb.IsOpen() || mb.openIdx != 0 {
		t.Fatalf("openIdx = %d, want 0", mb.openIdx)
	}
	if CaptureWidget(mb) != Widget(mb) {
		t.Error("open menu bar should hold input capture")
	}
	if FocusedWidget(mb) != Widget(mb) {
		t.Error("open menu bar should be focused")
	}

	// Sliding along the bar switches to the neighbouring menu.
	move := Event{Type: EventMouseMove, X: 10, Y: 2}
	Dispatch(mb, &move)
	if mb.openIdx != 1 {
		t.Errorf("after hover openIdx = %d, want 1", mb.openIdx)
	}

	// Clicking the open title again closes.
	down2 := Event{Type: EventMouseDown, X: 10, Y: 2}
	Dispatch(mb, &down2)
	if mb.IsOpen() {
		t.Error("second click on the open title should close")
	}
	if CaptureWidget(mb) != nil {
		t.Error("capture should be released on close")
	}
}

func TestMenuItemClickRunsAction(t *testing.T) {
	mb, newItem, _ := newTestMenuBar()
	ran := false
	newItem.Action = func() { ran = true }

	Dispatch(mb, &Event{Type: EventMouseDown, X: 2, Y: 2})
	// First popup row sits directly under the bar.
	Dispatch(mb, &Event{Type: EventMouseDown, X: 5, Y: 5})

	if !ran {
		t.Error("item action did not run")
	}
	if !newItem.WasClicked() {
		t.Error("WasClicked should be set for one frame")
	}
	if mb.IsOpen() || CaptureWidget(mb) != nil {
		t.Error("activation should close the popup and release capture")
	}

	clearClickedTree(mb)
	if newItem.WasClicked() {
		t.Error("clicked flag should clear with the frame")
	}
}

func TestMenuDisabledItemIgnored(t *testing.T) {
	mb, newItem, _ := newTestMenuBar()
	ran := false
	newItem.Action = func() { ran = true }
	newItem.SetEnabled(false)

	Dispatch(mb, &Event{Type: EventMouseDown, X: 2, Y: 2})
	Dispatch(mb, &Event{Type: EventMouseDown, X: 5, Y: 5})

	if ran {
		t.Error("disabled item must not run its action")
	}
	if !mb.IsOpen() {
		t.Error("clicking a disabled item should keep the popup open")
	}
}

func TestMenuClickOutsideCloses(t *testing.T) {
	mb, _, _ := newTestMenuBar()
	Dispatch(mb, &Event{Type: EventMouseDown, X: 2, Y: 2})
	Dispatch(mb, &Event{Type: EventMouseDown, X: 150, Y: 40})
	if mb.IsOpen() {
		t.Error("click outside the bar and popup should close")
	}
}

func TestMenuKeyboard(t *testing.T) {
	mb, newItem, _ := newTestMenuBar()
	ran := false
	newItem.Action = func() { ran = true }

	Dispatch(mb, &Event{Type: EventMouseDown, X: 2, Y: 2})

	key := func(k gfx.Key) {
		ev := Event{Type: EventKeyDown, Key: k}
		Dispatch(mb, &ev)
	}
	key(gfx.KeyDown)
	if mb.highlighted != 0 {
		t.Fatalf("highlight = %d, want 0", mb.highlighted)
	}
	key(gfx.KeyDown)
	if mb.highlighted != 2 {
		t.Errorf("highlight = %d, want 2 (separator skipped)", mb.highlighted)
	}
	key(gfx.KeyDown)
	if mb.highlighted != 2 {
		t.Errorf("highlight should stay at the last row, got %d", mb.highlighted)
	}
	key(gfx.KeyUp)
	if mb.highlighted != 0 {
		t.Errorf("highlight = %d, want 0 after up", mb.highlighted)
	}
	key(gfx.KeyRight)
	if mb.openIdx != 1 {
		t.Errorf("right arrow should open the next menu, openIdx = %d", mb.openIdx)
	}
	key(gfx.KeyLeft)
	if mb.openIdx != 0 {
		t.Errorf("left arrow should return, openIdx = %d", mb.openIdx)
	}
	key(gfx.KeyDown)
	key(gfx.KeyEnter)
	if !ran {
		t.Error("enter should activate the highlighted item")
	}
	if mb.IsOpen() {
		t.Error("activation should close the popup")
	}

	Dispatch(mb, &Event{Type: EventMouseDown, X: 2, Y: 2})
	key(gfx.KeyEscape)
	if mb.IsOpen() {
		t.Error("escape should close the popup")
	}
}

func TestMenuAccelerators(t *testing.T) {
	mb, newItem, _ := newTestMenuBar()
	ran := false
	newItem.Action = func() { ran = true }

	tbl := NewShortcutTable()
	mb.RegisterAccelerators(tbl)
	if !tbl.Check('N', gfx.ModCtrl) {
		t.Fatal("Ctrl+N should match the registered accelerator")
	}
	if !ran {
		t.Error("accelerator should run the item action")
	}
	if !newItem.WasClicked() {
		t.Error("accelerator should set the clicked flag")
	}
}

// overlayStub counts overlay paints.
type overlayStub struct {
	stubWidget
	overlays int
}

func (o *overlayStub) PaintOverlay(c *Canvas) { o.overlays++ }

func TestCaptureOverlayPaintsOnce(t *testing.T) {
	box := NewVBox()
	o := &overlayStub{}
	o.Init(o, "overlay-stub")
	o.SetFixedSize(40, 20)
	box.AddChild(o)
	box.Measure(200, 100)
	box.Arrange(0, 0, 200, 100)

	c := &Canvas{}
	PaintTree(box, c)
	if o.overlays != 1 {
		t.Fatalf("without capture overlay painted %d times, want 1", o.overlays)
	}

	o.overlays = 0
	SetInputCapture(o)
	PaintTree(box, c)
	PaintCapturedOverlay(box, c)
	if o.overlays != 1 {
		t.Errorf("with capture overlay painted %d times, want 1", o.overlays)
	}
}
