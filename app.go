package gui

import (
	"fmt"
	"os"

	"github.com/viperdos/gui/font"
	"github.com/viperdos/gui/gfx"
)

// defaultFontPaths are searched for a lazily loaded UI font when the
// application was given none.
var defaultFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"C:\\Windows\\Fonts\\segoeui.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// App ties a window, a widget tree, a shortcut table and an optional
// modal dialog into a frame loop.
type App struct {
	win       *gfx.Window
	root      Widget
	shortcuts *ShortcutTable
	theme     *Theme

	dialog         *Dialog
	dialogArranged bool

	defaultFont *font.Font
	fontLoaded  bool

	lastClicked Widget
	mouseX      float32
	mouseY      float32
	shouldClose bool
}

// NewApp wraps an existing window with a root widget.
func NewApp(win *gfx.Window, root Widget) *App {
	a := &App{
		win:       win,
		root:      root,
		shortcuts: NewShortcutTable(),
		theme:     CurrentTheme(),
	}
	return a
}

// Window returns the underlying window.
func (a *App) Window() *gfx.Window { return a.win }

// Root returns the widget tree root.
func (a *App) Root() Widget { return a.root }

// Shortcuts returns the app's shortcut table.
func (a *App) Shortcuts() *ShortcutTable { return a.shortcuts }

// Theme returns the active theme.
func (a *App) Theme() *Theme { return a.theme }

// SetTheme swaps the active theme.
func (a *App) SetTheme(th *Theme) {
	if th == nil {
		return
	}
	a.theme = th
	SetCurrentTheme(th)
	if a.root != nil {
		a.root.Base().InvalidateLayout()
	}
}

// LastClicked returns the widget released on this frame, or nil.
func (a *App) LastClicked() Widget { return a.lastClicked }

// MousePos returns the cursor position refreshed at the top of the frame.
func (a *App) MousePos() (x, y float32) { return a.mouseX, a.mouseY }

// ShouldClose reports whether a window close was requested.
func (a *App) ShouldClose() bool { return a.shouldClose }

// RequestClose asks the loop to stop after the current frame.
func (a *App) RequestClose() { a.shouldClose = true }

// OpenDialog activates a modal dialog. While active every event goes to
// the dialog and the tree receives nothing. A second open attempt while
// one is active is silently rejected.
func (a *App) OpenDialog(d *Dialog) {
	if a.dialog != nil || d == nil {
		return
	}
	a.dialog = d
	a.dialogArranged = false
}

// ActiveDialog returns the current modal dialog, or nil.
func (a *App) ActiveDialog() *Dialog { return a.dialog }

// SetDefaultFont provides the UI font explicitly, skipping the lazy
// system lookup.
func (a *App) SetDefaultFont(f *font.Font) {
	a.defaultFont = f
	a.fontLoaded = true
	th := CurrentTheme()
	if th.Fonts.Regular == nil {
		th.Fonts.Regular = f
	}
}

// DefaultFont returns the UI font, which may be nil before the first
// frame.
func (a *App) DefaultFont() *font.Font { return a.defaultFont }

// ensureFont loads the default font lazily from well-known system paths.
func (a *App) ensureFont() {
	if a.fontLoaded {
		return
	}
	a.fontLoaded = true
	for _, path := range defaultFontPaths {
		f, err := font.LoadFile(path)
		if err != nil {
			continue
		}
		a.defaultFont = f
		guiLogger.Info("loaded default font", "path", path, "family", f.Family())
		break
	}
	if a.defaultFont == nil {
		guiLogger.Warn("no default font found; text will not render")
		fmt.Fprintln(os.Stderr, "gui: no usable system font found")
		return
	}
	th := CurrentTheme()
	if th.Fonts.Regular == nil {
		th.Fonts.Regular = a.defaultFont
	}
	if th.Fonts.Mono == nil {
		th.Fonts.Mono = a.defaultFont
	}
}

// Frame runs one iteration of the application loop: input processing,
// layout, painting and presentation. It returns false once the window
// should close.
func (a *App) Frame() bool {
	if a.win == nil || a.win.Destroyed() {
		return false
	}
	a.pollInput()
	a.render()
	if !a.win.Update() {
		a.shouldClose = true
	}
	if a.win.CloseRequested() {
		a.shouldClose = true
	}
	return !a.shouldClose
}

// Run loops Frame until close is requested, then destroys the window.
func (a *App) Run() {
	for a.Frame() {
	}
	a.Destroy()
}

// pollInput drains the event queue into the widget tree.
func (a *App) pollInput() {
	a.lastClicked = nil
	a.shortcuts.ClearTriggered()
	clearClickedTree(a.root)
	if a.dialog != nil {
		clearClickedTree(a.dialog)
	}

	mx, my, _ := a.win.MousePos()
	a.mouseX, a.mouseY = float32(mx), float32(my)

	for {
		pev, ok := a.win.PollEvent()
		if !ok {
			break
		}
		ev := FromPlatform(pev)

		switch ev.Type {
		case EventClose:
			a.shouldClose = true
			continue
		case EventMouseUp:
			if a.dialog == nil && a.root != nil {
				if hit := HitTest(a.root, ev.X, ev.Y); hit != nil {
					a.lastClicked = hit
				}
			}
		case EventKeyDown:
			if a.shortcuts.Check(ev.Key, ev.Mods) {
				continue
			}
			if ev.Mods&(gfx.ModCtrl|gfx.ModAlt|gfx.ModSuper) == 0 {
				a.deliver(&ev)
				if r := SynthesizeChar(ev.Key, ev.Mods); r != 0 {
					ch := KeyCharEvent(ev.Key, r, ev.TimeMS)
					a.deliver(&ch)
				}
				continue
			}
		}
		a.deliver(&ev)
	}
}

// deliver routes one event: the modal dialog gets everything, otherwise
// it goes through tree dispatch.
func (a *App) deliver(ev *Event) {
	if a.dialog != nil {
		Dispatch(a.dialog, ev)
		return
	}
	if a.root != nil {
		Dispatch(a.root, ev)
	}
}

// clearClickedTree resets per-frame button click flags.
func clearClickedTree(w Widget) {
	if w == nil {
		return
	}
	switch b := w.(type) {
	case *Button:
		b.clearClicked()
	case *MenuBar:
		b.clearClicked()
	}
	for c := w.Base().FirstChild; c != nil; c = c.Base().NextSibling {
		clearClickedTree(c)
	}
}

// render lays out and paints the frame.
func (a *App) render() {
	a.ensureFont()
	th := CurrentTheme()
	a.theme = th

	fb, ok := a.win.Framebuffer()
	if !ok {
		return
	}
	winW := float32(fb.Width())
	winH := float32(fb.Height())

	c := &Canvas{
		Win:      a.win,
		Font:     th.Fonts.Regular,
		FontSize: th.Fonts.SizeNormal,
		Theme:    th,
	}
	if c.Font == nil {
		c.Font = a.defaultFont
	}

	a.win.Cls(th.Colors.BgSecondary)

	if a.root != nil {
		LayoutTree(a.root, winW, winH)
		PaintTree(a.root, c)
		PaintCapturedOverlay(a.root, c)
	}

	if d := a.dialog; d != nil {
		if d.Closed() {
			DestroyWidget(d)
			a.dialog = nil
			a.dialogArranged = false
		} else {
			MeasureWidget(d, winW, winH)
			db := d.Base()
			if !a.dialogArranged {
				db.X = (winW - db.MeasuredW) / 2
				db.Y = (winH - db.MeasuredH) / 2
				a.dialogArranged = true
			}
			ArrangeWidget(d, db.X, db.Y, db.MeasuredW, db.MeasuredH)
			PaintTree(d, c)
		}
	}
}

// Destroy tears down the window first, then the widget tree.
func (a *App) Destroy() {
	if a.win != nil && !a.win.Destroyed() {
		a.win.Destroy()
	}
	if a.dialog != nil {
		DestroyWidget(a.dialog)
		a.dialog = nil
	}
	if a.root != nil {
		DestroyWidget(a.root)
		a.root = nil
	}
}
