package gui

import (
	"testing"

	"github.com/viperdos/gui/gfx"
	"github.com/viperdos/gui/gfx/backend/mock"
)

func newTestApp(t *testing.T, root Widget) (*App, *mock.Backend) {
	t.Helper()
	b := mock.New()
	win, err := gfx.New(b, gfx.WithSize(400, 300))
	if err != nil {
		t.Fatalf("create window: %v", err)
	}
	t.Cleanup(win.Destroy)
	return NewApp(win, root), b
}

func TestAppCloseEvent(t *testing.T) {
	app, b := newTestApp(t, NewVBox())

	if !app.Frame() {
		t.Fatal("first frame reported close")
	}
	b.InjectClose(app.Window())
	if app.Frame() {
		t.Error("frame after close event did not report close")
	}
	if !app.ShouldClose() {
		t.Error("ShouldClose false after close event")
	}
}

func TestAppRequestClose(t *testing.T) {
	app, _ := newTestApp(t, NewVBox())
	app.RequestClose()
	if app.Frame() {
		t.Error("frame after RequestClose did not report close")
	}
}

func TestAppLastClicked(t *testing.T) {
	root := NewVBox()
	target := newStub(100, 50)
	root.AddChild(target)
	app, b := newTestApp(t, root)

	app.Frame() // lay the tree out
	b.InjectMouseMove(app.Window(), 10, 10)
	b.InjectMouseDown(app.Window(), gfx.MouseLeft)
	b.InjectMouseUp(app.Window(), gfx.MouseLeft)
	app.Frame()
	if app.LastClicked() != Widget(target) {
		t.Errorf("LastClicked = %v, want the stub under the cursor", app.LastClicked())
	}

	app.Frame()
	if app.LastClicked() != nil {
		t.Error("LastClicked survived into the next frame")
	}
}

func TestAppShortcutSuppressesTyping(t *testing.T) {
	root := NewVBox()
	in := NewTextInput()
	root.AddChild(in)
	app, b := newTestApp(t, root)
	SetFocus(in)

	fired := false
	app.Shortcuts().Register("act", 'K', gfx.ModCtrl, func() { fired = true })

	b.InjectKeyDown(app.Window(), 'K', gfx.ModCtrl)
	app.Frame()
	if !fired {
		t.Error("shortcut did not fire")
	}
	if in.Text() != "" {
		t.Errorf("shortcut chord leaked into the input: %q", in.Text())
	}
}

func TestAppTypingSynthesisesChars(t *testing.T) {
	root := NewVBox()
	in := NewTextInput()
	root.AddChild(in)
	app, b := newTestApp(t, root)
	SetFocus(in)

	b.InjectKeyDown(app.Window(), 'H', 0)
	b.InjectKeyDown(app.Window(), 'I', gfx.ModShift)
	app.Frame()
	if in.Text() != "hI" {
		t.Errorf("typed text = %q, want %q", in.Text(), "hI")
	}
}

func TestAppDialogExclusivity(t *testing.T) {
	root := NewVBox()
	rootInput := NewTextInput()
	root.AddChild(rootInput)
	app, b := newTestApp(t, root)
	SetFocus(rootInput)

	d := NewDialog("modal")
	dlgInput := NewTextInput()
	d.Content.AddChild(dlgInput)
	app.OpenDialog(d)
	SetFocus(dlgInput)

	b.InjectKeyDown(app.Window(), 'X', 0)
	app.Frame()
	if dlgInput.Text() != "x" {
		t.Errorf("dialog input = %q, want %q", dlgInput.Text(), "x")
	}
	if rootInput.Text() != "" {
		t.Errorf("tree behind the modal received input: %q", rootInput.Text())
	}
}

func TestAppDialogBlocksLastClicked(t *testing.T) {
	root := NewVBox()
	target := newStub(100, 50)
	root.AddChild(target)
	app, b := newTestApp(t, root)
	app.Frame()

	app.OpenDialog(NewDialog("modal"))
	b.InjectMouseMove(app.Window(), 10, 10)
	b.InjectMouseUp(app.Window(), gfx.MouseLeft)
	app.Frame()
	if app.LastClicked() != nil {
		t.Error("click behind a modal registered")
	}
}

func TestAppSecondDialogRejected(t *testing.T) {
	app, _ := newTestApp(t, NewVBox())
	first := NewDialog("first")
	app.OpenDialog(first)
	app.OpenDialog(NewDialog("second"))
	if app.ActiveDialog() != first {
		t.Error("second OpenDialog replaced the active dialog")
	}
}

func TestAppDialogClosedAndDestroyed(t *testing.T) {
	app, _ := newTestApp(t, NewVBox())
	d := NewDialog("modal")
	app.OpenDialog(d)
	app.Frame()
	if app.ActiveDialog() != d {
		t.Fatal("dialog not active")
	}
	d.Close()
	app.Frame()
	if app.ActiveDialog() != nil {
		t.Error("closed dialog still active")
	}
}

func TestAppDialogCentredOnce(t *testing.T) {
	app, _ := newTestApp(t, NewVBox())
	d := NewDialog("modal")
	d.Content.AddChild(newStub(100, 40))
	app.OpenDialog(d)
	app.Frame()

	db := d.Base()
	if db.X <= 0 || db.Y <= 0 {
		t.Fatalf("dialog at (%g,%g), want centred in 400x300", db.X, db.Y)
	}
	// A drag moves the dialog; rendering must not recentre it.
	db.X += 17
	wantX := db.X
	app.Frame()
	if db.X != wantX {
		t.Errorf("dialog x = %g after frame, want %g", db.X, wantX)
	}
}

func TestAppButtonClickedFlagClearedPerFrame(t *testing.T) {
	root := NewVBox()
	btn := NewButton("go")
	btn.SetFixedSize(80, 30)
	root.AddChild(btn)
	app, b := newTestApp(t, root)
	app.Frame()

	b.InjectMouseMove(app.Window(), 10, 10)
	b.InjectMouseDown(app.Window(), gfx.MouseLeft)
	b.InjectMouseUp(app.Window(), gfx.MouseLeft)
	app.Frame()
	if !btn.WasClicked() {
		t.Fatal("button did not register the click")
	}
	app.Frame()
	if btn.WasClicked() {
		t.Error("clicked flag survived into the next frame")
	}
}
