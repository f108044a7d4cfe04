// Package mock provides a deterministic backend for tests. It creates no
// native window, presents nowhere, and replaces the wall clock with a
// virtual clock that only advances via SleepMS or AdvanceTime. Event
// injection goes through the same delivery path as native backends, so
// queue semantics and the input-state mirror behave identically.
package mock

import "github.com/viperdos/gui/gfx"

// Backend is a deterministic in-memory PAL implementation.
type Backend struct {
	timeMS int64

	// Recorded window-op state, observable by tests.
	LastTitle   string
	Cursor      gfx.Cursor
	CursorShown bool
	Fullscreen  bool
	Minimized   bool
	Maximized   bool
	PosX, PosY  int32
	MonitorW    int32
	MonitorH    int32

	initialised bool
	destroyed   bool
}

// New returns a mock backend with the virtual clock at zero.
func New() *Backend {
	return &Backend{CursorShown: true, MonitorW: 1920, MonitorH: 1080}
}

// InitWindow implements gfx.Backend.
func (b *Backend) InitWindow(w *gfx.Window, p gfx.Params) error {
	b.LastTitle = p.Title
	b.initialised = true
	w.SetScale(1.0)
	return nil
}

// DestroyWindow implements gfx.Backend.
func (b *Backend) DestroyWindow(w *gfx.Window) {
	b.destroyed = true
}

// ProcessEvents is a no-op: the mock has no OS queue. Injected events are
// already in the window's queue.
func (b *Backend) ProcessEvents(w *gfx.Window) error { return nil }

// Present is a no-op.
func (b *Backend) Present(w *gfx.Window) error { return nil }

// NowMS returns the virtual clock.
func (b *Backend) NowMS() int64 { return b.timeMS }

// SleepMS advances the virtual clock instead of blocking.
func (b *Backend) SleepMS(ms int64) {
	if ms > 0 {
		b.timeMS += ms
	}
}

// SetTime sets the virtual clock.
func (b *Backend) SetTime(ms int64) { b.timeMS = ms }

// AdvanceTime advances the virtual clock.
func (b *Backend) AdvanceTime(ms int64) { b.timeMS += ms }

// Initialised reports whether InitWindow ran.
func (b *Backend) Initialised() bool { return b.initialised }

// Destroyed reports whether DestroyWindow ran.
func (b *Backend) Destroyed() bool { return b.destroyed }

// Event injection. Each entry point synthesises an event stamped with the
// virtual clock and delivers it through the window's normal path.

// InjectKeyDown injects a key press.
func (b *Backend) InjectKeyDown(w *gfx.Window, key gfx.Key, mods int) {
	w.Deliver(gfx.Event{Type: gfx.EventKeyDown, TimeMS: b.timeMS, Key: key, Mods: mods})
}

// InjectKeyUp injects a key release.
func (b *Backend) InjectKeyUp(w *gfx.Window, key gfx.Key, mods int) {
	w.Deliver(gfx.Event{Type: gfx.EventKeyUp, TimeMS: b.timeMS, Key: key, Mods: mods})
}

// InjectMouseMove injects a cursor move.
func (b *Backend) InjectMouseMove(w *gfx.Window, x, y int32) {
	w.Deliver(gfx.Event{Type: gfx.EventMouseMove, TimeMS: b.timeMS, X: x, Y: y})
}

// InjectMouseDown injects a button press at the current cursor position.
func (b *Backend) InjectMouseDown(w *gfx.Window, button int) {
	x, y, _ := w.MousePos()
	w.Deliver(gfx.Event{Type: gfx.EventMouseDown, TimeMS: b.timeMS, X: x, Y: y, Button: button})
}

// InjectMouseUp injects a button release at the current cursor position.
func (b *Backend) InjectMouseUp(w *gfx.Window, button int) {
	x, y, _ := w.MousePos()
	w.Deliver(gfx.Event{Type: gfx.EventMouseUp, TimeMS: b.timeMS, X: x, Y: y, Button: button})
}

// InjectScroll injects a scroll-wheel event at the current cursor position.
func (b *Backend) InjectScroll(w *gfx.Window, dx, dy float64) {
	x, y, _ := w.MousePos()
	w.Deliver(gfx.Event{Type: gfx.EventScroll, TimeMS: b.timeMS, X: x, Y: y, DeltaX: dx, DeltaY: dy})
}

// InjectResize injects a window resize. The framebuffer is reallocated and
// cleared as part of delivery.
func (b *Backend) InjectResize(w *gfx.Window, width, height int32) {
	w.Deliver(gfx.Event{Type: gfx.EventResize, TimeMS: b.timeMS, Width: width, Height: height})
}

// InjectClose injects a close request.
func (b *Backend) InjectClose(w *gfx.Window) {
	w.Deliver(gfx.Event{Type: gfx.EventClose, TimeMS: b.timeMS})
}

// InjectFocus injects a focus change.
func (b *Backend) InjectFocus(w *gfx.Window, gained bool) {
	t := gfx.EventFocusLost
	if gained {
		t = gfx.EventFocusGained
	}
	w.Deliver(gfx.Event{Type: t, TimeMS: b.timeMS})
}

// Window-op and cursor support, recorded for test inspection.

// SetTitle implements gfx.WindowOps.
func (b *Backend) SetTitle(w *gfx.Window, title string) error {
	b.LastTitle = title
	return nil
}

// SetSize implements gfx.WindowOps by delivering a resize event.
func (b *Backend) SetSize(w *gfx.Window, width, height int32) error {
	b.InjectResize(w, width, height)
	return nil
}

// Position implements gfx.WindowOps.
func (b *Backend) Position(w *gfx.Window) (int32, int32, error) {
	return b.PosX, b.PosY, nil
}

// SetPosition implements gfx.WindowOps.
func (b *Backend) SetPosition(w *gfx.Window, x, y int32) error {
	b.PosX, b.PosY = x, y
	return nil
}

// SetFullscreen implements gfx.WindowOps.
func (b *Backend) SetFullscreen(w *gfx.Window, on bool) error {
	b.Fullscreen = on
	return nil
}

// Minimize implements gfx.WindowOps.
func (b *Backend) Minimize(w *gfx.Window) error {
	b.Minimized = true
	return nil
}

// Maximize implements gfx.WindowOps.
func (b *Backend) Maximize(w *gfx.Window) error {
	b.Maximized = true
	return nil
}

// Restore implements gfx.WindowOps.
func (b *Backend) Restore(w *gfx.Window) error {
	b.Minimized = false
	b.Maximized = false
	return nil
}

// FocusWindow implements gfx.WindowOps.
func (b *Backend) FocusWindow(w *gfx.Window) error {
	w.Deliver(gfx.Event{Type: gfx.EventFocusGained, TimeMS: b.timeMS})
	return nil
}

// MonitorSize implements gfx.WindowOps.
func (b *Backend) MonitorSize(w *gfx.Window) (int32, int32, error) {
	return b.MonitorW, b.MonitorH, nil
}

// SetCursor implements gfx.CursorOps.
func (b *Backend) SetCursor(w *gfx.Window, c gfx.Cursor) error {
	b.Cursor = c
	return nil
}

// ShowCursor implements gfx.CursorOps.
func (b *Backend) ShowCursor(w *gfx.Window, visible bool) error {
	b.CursorShown = visible
	return nil
}
