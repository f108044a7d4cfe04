package gfx

import "fmt"

// Version is the toolkit version string.
const Version = "1.0.0"

// Params are the window creation parameters. Zero or negative dimensions
// fall back to the defaults; FPS < 0 disables pacing, 0 selects the default
// cap, > 0 is a cap clamped to [1, 1000].
type Params struct {
	Width     int32
	Height    int32
	Title     string
	FPS       int
	Resizable bool
}

// Option configures window creation.
type Option func(*Params)

// WithSize sets the window dimensions in physical pixels.
func WithSize(width, height int32) Option {
	return func(p *Params) { p.Width, p.Height = width, height }
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(p *Params) { p.Title = title }
}

// WithFPS sets the frame rate cap.
func WithFPS(fps int) Option {
	return func(p *Params) { p.FPS = fps }
}

// WithResizable makes the window user-resizable.
func WithResizable(resizable bool) Option {
	return func(p *Params) { p.Resizable = resizable }
}

// Window owns a native OS window, its software framebuffer, the event queue,
// and the input-state mirror. All methods must be called from the goroutine
// that created the window.
type Window struct {
	backend Backend
	params  Params
	fb      *Framebuffer
	queue   *eventQueue

	// Input-state mirror, updated before the corresponding event is
	// queued so polling observes state consistent with delivered events.
	keyState     [KeyStateSize]bool
	mouseButtons [mouseButtonCount]bool
	mouseX       int32
	mouseY       int32

	scale          float64
	focused        bool
	closeRequested bool
	preventClose   bool
	destroyed      bool

	targetFPS        int
	targetFrameMS    int64
	nextDeadlineMS   int64
	lastFrameTimeMS  int64
	frameStartMS     int64
	platformData     any
	lastErr          lastError
}

// New creates a window on the given backend. On success the window is
// visible and its framebuffer is cleared to opaque black.
func New(b Backend, opts ...Option) (*Window, error) {
	p := Params{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Title:     DefaultTitle,
		FPS:       DefaultFPS,
		Resizable: false,
	}
	for _, opt := range opts {
		opt(&p)
	}
	if p.Width <= 0 {
		p.Width = DefaultWidth
	}
	if p.Height <= 0 {
		p.Height = DefaultHeight
	}
	if p.Title == "" {
		p.Title = DefaultTitle
	}

	w := &Window{backend: b, scale: 1.0}

	if p.Width > MaxWidth || p.Height > MaxHeight {
		w.lastErr.set(ErrorInvalidParam,
			"window dimensions exceed maximum (%dx%d)", MaxWidth, MaxHeight)
		return nil, fmt.Errorf("create window %dx%d: %w", p.Width, p.Height, ErrInvalidParam)
	}

	if p.FPS == 0 {
		p.FPS = DefaultFPS
	} else if p.FPS > 1000 {
		p.FPS = 1000
	}
	w.params = p
	w.targetFPS = p.FPS
	if p.FPS > 0 {
		w.targetFrameMS = int64(1000 / p.FPS)
		if w.targetFrameMS < 1 {
			w.targetFrameMS = 1
		}
	}

	w.fb = newFramebuffer(p.Width, p.Height)
	w.queue = newEventQueue(DefaultQueueSize)

	if err := b.InitWindow(w, p); err != nil {
		w.lastErr.set(ErrorPlatform, "window init failed: %v", err)
		return nil, fmt.Errorf("init window: %w", ErrPlatform)
	}
	w.focused = true
	w.nextDeadlineMS = b.NowMS()
	w.frameStartMS = w.nextDeadlineMS

	Logger().Info("window created",
		"width", p.Width, "height", p.Height, "fps", p.FPS, "title", p.Title)
	return w, nil
}

// Destroy tears down the native window, then the event queue and
// framebuffer. Safe to call on nil or an already destroyed window.
func (w *Window) Destroy() {
	if w == nil || w.destroyed {
		return
	}
	w.backend.DestroyWindow(w)
	w.queue = nil
	w.fb = nil
	w.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (w *Window) Destroyed() bool { return w == nil || w.destroyed }

// Update runs one frame tick: pump platform events into the queue, present
// the framebuffer, then pace to the frame-rate cap. Returns false with the
// error recorded when a platform operation fails.
func (w *Window) Update() bool {
	if w.Destroyed() {
		return false
	}
	if err := w.backend.ProcessEvents(w); err != nil {
		w.lastErr.set(ErrorPlatform, "event processing failed: %v", err)
		return false
	}
	if err := w.backend.Present(w); err != nil {
		w.lastErr.set(ErrorPlatform, "present failed: %v", err)
		return false
	}
	w.paceFrame()
	return true
}

// paceFrame sleeps until the next frame deadline, then advances the deadline
// additively so rounding never drifts the frame rate. A frame that overran
// by more than one period resyncs the deadline to now.
func (w *Window) paceFrame() {
	now := w.backend.NowMS()
	if w.targetFPS > 0 {
		if sleep := w.nextDeadlineMS - now; sleep > 0 {
			w.backend.SleepMS(sleep)
			now = w.backend.NowMS()
		}
		w.nextDeadlineMS += w.targetFrameMS
		if w.nextDeadlineMS < now-w.targetFrameMS {
			w.nextDeadlineMS = now
		}
	}
	w.lastFrameTimeMS = now - w.frameStartMS
	w.frameStartMS = now
}

// Deliver updates the input-state mirror from an event and then enqueues
// it, preserving the contract that mirrors reflect every queued event.
// Backends call this for every translated native event; it must only be
// called from the window's thread.
func (w *Window) Deliver(ev Event) {
	if w.Destroyed() {
		return
	}
	switch ev.Type {
	case EventKeyDown:
		if ev.Key >= 0 && int(ev.Key) < KeyStateSize {
			w.keyState[ev.Key] = true
		}
	case EventKeyUp:
		if ev.Key >= 0 && int(ev.Key) < KeyStateSize {
			w.keyState[ev.Key] = false
		}
	case EventMouseMove:
		w.mouseX, w.mouseY = ev.X, ev.Y
	case EventMouseDown:
		if ev.Button >= 0 && ev.Button < mouseButtonCount {
			w.mouseButtons[ev.Button] = true
		}
		w.mouseX, w.mouseY = ev.X, ev.Y
	case EventMouseUp:
		if ev.Button >= 0 && ev.Button < mouseButtonCount {
			w.mouseButtons[ev.Button] = false
		}
		w.mouseX, w.mouseY = ev.X, ev.Y
	case EventResize:
		w.resize(ev.Width, ev.Height)
	case EventFocusGained:
		w.focused = true
	case EventFocusLost:
		w.focused = false
	case EventClose:
		w.closeRequested = true
		if w.preventClose {
			return
		}
	}
	w.queue.enqueue(ev)
}

// resize reallocates the framebuffer at the new size. The new framebuffer
// is cleared; previous contents are dropped.
func (w *Window) resize(width, height int32) {
	if width <= 0 || height <= 0 || width > MaxWidth || height > MaxHeight {
		return
	}
	w.params.Width = width
	w.params.Height = height
	w.fb = newFramebuffer(width, height)
}

// PollEvent removes and returns the oldest queued event.
func (w *Window) PollEvent() (Event, bool) {
	if w.Destroyed() {
		return Event{}, false
	}
	return w.queue.dequeue()
}

// PeekEvent returns the oldest queued event without removing it.
func (w *Window) PeekEvent() (Event, bool) {
	if w.Destroyed() {
		return Event{}, false
	}
	return w.queue.peek()
}

// FlushEvents discards every queued event.
func (w *Window) FlushEvents() {
	if !w.Destroyed() {
		w.queue.flush()
	}
}

// OverflowCount returns the number of events dropped by queue overflow since
// the last call, and resets the counter.
func (w *Window) OverflowCount() uint32 {
	if w.Destroyed() {
		return 0
	}
	return w.queue.overflowCount()
}

// QueueLen returns the number of queued events.
func (w *Window) QueueLen() int {
	if w.Destroyed() {
		return 0
	}
	return w.queue.len()
}

// KeyDown reports whether the key is currently held, per the input mirror.
func (w *Window) KeyDown(k Key) bool {
	if w.Destroyed() || k < 0 || int(k) >= KeyStateSize {
		return false
	}
	return w.keyState[k]
}

// MouseButtonDown reports whether the mouse button is currently held.
func (w *Window) MouseButtonDown(button int) bool {
	if w.Destroyed() || button < 0 || button >= mouseButtonCount {
		return false
	}
	return w.mouseButtons[button]
}

// MousePos returns the last known cursor position, and whether it lies
// inside the framebuffer.
func (w *Window) MousePos() (x, y int32, inside bool) {
	if w.Destroyed() {
		return 0, 0, false
	}
	x, y = w.mouseX, w.mouseY
	inside = x >= 0 && y >= 0 && x < w.params.Width && y < w.params.Height
	return x, y, inside
}

// Size returns the window dimensions in physical pixels.
func (w *Window) Size() (width, height int32) {
	if w.Destroyed() {
		return 0, 0
	}
	return w.params.Width, w.params.Height
}

// Width returns the window width in physical pixels.
func (w *Window) Width() int32 { width, _ := w.Size(); return width }

// Height returns the window height in physical pixels.
func (w *Window) Height() int32 { _, height := w.Size(); return height }

// Scale returns the HiDPI scale factor fixed at creation time (>= 1.0).
func (w *Window) Scale() float64 {
	if w.Destroyed() {
		return 1.0
	}
	return w.scale
}

// SetScale records the HiDPI scale factor. Called by backends during
// initialisation.
func (w *Window) SetScale(scale float64) {
	if scale < 1.0 {
		scale = 1.0
	}
	w.scale = scale
}

// Framebuffer returns the window's software surface, or nil, false on a
// destroyed window.
func (w *Window) Framebuffer() (*Framebuffer, bool) {
	if w.Destroyed() {
		return nil, false
	}
	return w.fb, true
}

// CloseRequested reports the sticky close flag; once set it stays set.
func (w *Window) CloseRequested() bool {
	return w != nil && w.closeRequested
}

// SetPreventClose suppresses the Close event (the sticky flag is still set
// when the user asks to close).
func (w *Window) SetPreventClose(prevent bool) {
	w.preventClose = prevent
}

// PreventClose reports whether Close events are being suppressed.
func (w *Window) PreventClose() bool { return w != nil && w.preventClose }

// Focused reports whether the window has input focus.
func (w *Window) Focused() bool { return w != nil && w.focused }

// Resizable reports whether the window was created resizable.
func (w *Window) Resizable() bool { return w != nil && w.params.Resizable }

// FPS returns the configured frame-rate cap.
func (w *Window) FPS() int { return w.targetFPS }

// LastFrameTime returns the measured duration of the previous frame in
// milliseconds.
func (w *Window) LastFrameTime() int64 { return w.lastFrameTimeMS }

// NowMS returns the backend's monotonic clock.
func (w *Window) NowMS() int64 { return w.backend.NowMS() }

// PlatformData returns the backend's per-window state.
func (w *Window) PlatformData() any { return w.platformData }

// SetPlatformData stores the backend's per-window state.
func (w *Window) SetPlatformData(pd any) { w.platformData = pd }

// LastError returns the last recorded error code and message for this
// window. The message may be empty.
func (w *Window) LastError() (ErrorCode, string) {
	return w.lastErr.get()
}

// ClearError resets the last-error pair.
func (w *Window) ClearError() { w.lastErr.clear() }

// Drawing passthroughs. All primitives respect the current clip rectangle.

// Pset writes an opaque pixel. Out-of-bounds writes are discarded.
func (w *Window) Pset(x, y int32, c Color) {
	if fb, ok := w.Framebuffer(); ok {
		fb.Pset(x, y, c)
	}
}

// Point reads a pixel as an opaque color.
func (w *Window) Point(x, y int32) Color {
	if fb, ok := w.Framebuffer(); ok {
		return fb.Point(x, y)
	}
	return Black
}

// PsetAlpha composites a pixel source-over.
func (w *Window) PsetAlpha(x, y int32, c Color) {
	if fb, ok := w.Framebuffer(); ok {
		fb.PsetAlpha(x, y, c)
	}
}

// Cls fills the framebuffer with an opaque color.
func (w *Window) Cls(c Color) {
	if fb, ok := w.Framebuffer(); ok {
		fb.Cls(c)
	}
}

// Line draws a Bresenham line.
func (w *Window) Line(x0, y0, x1, y1 int32, c Color) {
	if fb, ok := w.Framebuffer(); ok {
		fb.Line(x0, y0, x1, y1, c)
	}
}

// Rect draws a rectangle outline.
func (w *Window) Rect(x, y, width, height int32, c Color) {
	if fb, ok := w.Framebuffer(); ok {
		fb.Rect(x, y, width, height, c)
	}
}

// FillRect fills a rectangle.
func (w *Window) FillRect(x, y, width, height int32, c Color) {
	if fb, ok := w.Framebuffer(); ok {
		fb.FillRect(x, y, width, height, c)
	}
}

// Circle draws a circle outline.
func (w *Window) Circle(cx, cy, r int32, c Color) {
	if fb, ok := w.Framebuffer(); ok {
		fb.Circle(cx, cy, r, c)
	}
}

// FillCircle fills a circle.
func (w *Window) FillCircle(cx, cy, r int32, c Color) {
	if fb, ok := w.Framebuffer(); ok {
		fb.FillCircle(cx, cy, r, c)
	}
}

// SetClip sets the clip rectangle, intersected with the framebuffer.
func (w *Window) SetClip(x, y, width, height int32) {
	if fb, ok := w.Framebuffer(); ok {
		fb.SetClip(x, y, width, height)
	}
}

// ClearClip removes the clip rectangle.
func (w *Window) ClearClip() {
	if fb, ok := w.Framebuffer(); ok {
		fb.ClearClip()
	}
}

// Window ops, delegated to backends that support them.

func (w *Window) windowOps() (WindowOps, bool) {
	ops, ok := w.backend.(WindowOps)
	return ops, ok && !w.Destroyed()
}

// SetTitle changes the native window title.
func (w *Window) SetTitle(title string) error {
	ops, ok := w.windowOps()
	if !ok {
		return ErrPlatform
	}
	w.params.Title = title
	return ops.SetTitle(w, title)
}

// Title returns the current window title.
func (w *Window) Title() string { return w.params.Title }

// SetSize resizes the native window. The framebuffer follows via the Resize
// event the backend delivers.
func (w *Window) SetSize(width, height int32) error {
	if width <= 0 || height <= 0 || width > MaxWidth || height > MaxHeight {
		w.lastErr.set(ErrorInvalidParam, "set size %dx%d out of range", width, height)
		return ErrInvalidParam
	}
	ops, ok := w.windowOps()
	if !ok {
		return ErrPlatform
	}
	return ops.SetSize(w, width, height)
}

// Position returns the native window position.
func (w *Window) Position() (x, y int32, err error) {
	ops, ok := w.windowOps()
	if !ok {
		return 0, 0, ErrPlatform
	}
	return ops.Position(w)
}

// SetPosition moves the native window.
func (w *Window) SetPosition(x, y int32) error {
	ops, ok := w.windowOps()
	if !ok {
		return ErrPlatform
	}
	return ops.SetPosition(w, x, y)
}

// SetFullscreen toggles fullscreen mode.
func (w *Window) SetFullscreen(on bool) error {
	ops, ok := w.windowOps()
	if !ok {
		return ErrPlatform
	}
	return ops.SetFullscreen(w, on)
}

// Minimize iconifies the window.
func (w *Window) Minimize() error {
	ops, ok := w.windowOps()
	if !ok {
		return ErrPlatform
	}
	return ops.Minimize(w)
}

// Maximize maximizes the window.
func (w *Window) Maximize() error {
	ops, ok := w.windowOps()
	if !ok {
		return ErrPlatform
	}
	return ops.Maximize(w)
}

// Restore restores a minimized or maximized window.
func (w *Window) Restore() error {
	ops, ok := w.windowOps()
	if !ok {
		return ErrPlatform
	}
	return ops.Restore(w)
}

// Focus requests input focus for the window.
func (w *Window) Focus() error {
	ops, ok := w.windowOps()
	if !ok {
		return ErrPlatform
	}
	return ops.FocusWindow(w)
}

// MonitorSize returns the primary monitor dimensions in physical pixels.
func (w *Window) MonitorSize() (width, height int32, err error) {
	ops, ok := w.windowOps()
	if !ok {
		return 0, 0, ErrPlatform
	}
	return ops.MonitorSize(w)
}

// SetCursor selects a standard cursor shape.
func (w *Window) SetCursor(c Cursor) error {
	ops, ok := w.backend.(CursorOps)
	if !ok || w.Destroyed() {
		return ErrPlatform
	}
	return ops.SetCursor(w, c)
}

// ShowCursor shows or hides the cursor.
func (w *Window) ShowCursor(visible bool) error {
	ops, ok := w.backend.(CursorOps)
	if !ok || w.Destroyed() {
		return ErrPlatform
	}
	return ops.ShowCursor(w, visible)
}
