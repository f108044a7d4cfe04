package gfx

// Backend is the platform abstraction layer: the boundary between the
// software core and any OS windowing system. Every backend must satisfy the
// contract exactly; the deterministic mock backend used by tests is held to
// the same behaviour as the native ones.
type Backend interface {
	// InitWindow creates the native window, visible and ready for
	// rendering. The core framebuffer is already allocated. On failure any
	// partial state must be released.
	InitWindow(w *Window, p Params) error

	// DestroyWindow closes the native window and releases backend state.
	// Must be safe when initialisation only partially completed.
	DestroyWindow(w *Window)

	// ProcessEvents drains the OS queue without blocking, translating each
	// native event into one or more Events delivered via w.Deliver. An
	// error is returned only for fatal conditions.
	ProcessEvents(w *Window) error

	// Present copies the framebuffer to the native surface, converting the
	// pixel format bit-exactly where the surface differs.
	Present(w *Window) error

	// NowMS is a monotonic millisecond clock. It never decreases within a
	// process.
	NowMS() int64

	// SleepMS blocks for at least ms milliseconds; ms <= 0 returns
	// immediately.
	SleepMS(ms int64)
}

// Cursor identifies a standard cursor shape.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorIBeam
	CursorCrosshair
	CursorHand
	CursorHResize
	CursorVResize
)

// WindowOps is implemented by backends that support native window control.
// Backends without it report ErrPlatform for these operations.
type WindowOps interface {
	SetTitle(w *Window, title string) error
	SetSize(w *Window, width, height int32) error
	Position(w *Window) (x, y int32, err error)
	SetPosition(w *Window, x, y int32) error
	SetFullscreen(w *Window, on bool) error
	Minimize(w *Window) error
	Maximize(w *Window) error
	Restore(w *Window) error
	FocusWindow(w *Window) error
	MonitorSize(w *Window) (width, height int32, err error)
}

// CursorOps is implemented by backends that support cursor control.
type CursorOps interface {
	SetCursor(w *Window, c Cursor) error
	ShowCursor(w *Window, visible bool) error
}
