// Package x11 is a pure-X11 backend: an override-free top-level window
// whose content is the software framebuffer pushed with PutImage. It has
// no GPU dependency, which makes it useful over remote displays.
package x11

import (
	"fmt"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/viperdos/gui/gfx"
)

var (
	_ gfx.Backend   = (*Backend)(nil)
	_ gfx.WindowOps = (*Backend)(nil)
)

// Backend implements gfx.Backend over a raw X connection.
type Backend struct {
	win  *gfx.Window
	conn *xgb.Conn
	xu   *xgbutil.XUtil
	xwin xproto.Window
	gc   xproto.Gcontext
	dep  byte

	wmProtocols  xproto.Atom
	wmDeleteWin  xproto.Atom
	keymap       []xproto.Keysym
	keysymsPerKC byte
	firstKeycode xproto.Keycode

	width, height int32
	scratch       []byte
	startNS       int64
}

// New creates an uninitialized backend.
func New() *Backend {
	return &Backend{startNS: time.Now().UnixNano()}
}

func (b *Backend) InitWindow(w *gfx.Window, params gfx.Params) error {
	conn, err := xgb.NewConn()
	if err != nil {
		return fmt.Errorf("x11 connect: %w", err)
	}
	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	xwin, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return fmt.Errorf("x11 window id: %w", err)
	}

	mask := uint32(xproto.EventMaskKeyPress | xproto.EventMaskKeyRelease |
		xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease |
		xproto.EventMaskPointerMotion | xproto.EventMaskStructureNotify |
		xproto.EventMaskFocusChange | xproto.EventMaskExposure)

	err = xproto.CreateWindowChecked(conn, screen.RootDepth, xwin, screen.Root,
		0, 0, uint16(params.Width), uint16(params.Height), 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{screen.BlackPixel, mask}).Check()
	if err != nil {
		conn.Close()
		return fmt.Errorf("x11 create window: %w", err)
	}

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		conn.Close()
		return fmt.Errorf("x11 gc id: %w", err)
	}
	if err := xproto.CreateGCChecked(conn, gc, xproto.Drawable(xwin), 0, nil).Check(); err != nil {
		conn.Close()
		return fmt.Errorf("x11 create gc: %w", err)
	}

	b.win = w
	b.conn = conn
	b.xwin = xwin
	b.gc = gc
	b.dep = screen.RootDepth
	b.width = params.Width
	b.height = params.Height

	if xu, err := xgbutil.NewConnXgb(conn); err == nil {
		b.xu = xu
	}

	if err := b.setupWMDelete(); err != nil {
		conn.Close()
		return err
	}
	if err := b.loadKeymap(setup); err != nil {
		conn.Close()
		return err
	}
	b.setTitle(params.Title)

	if err := xproto.MapWindowChecked(conn, xwin).Check(); err != nil {
		conn.Close()
		return fmt.Errorf("x11 map window: %w", err)
	}
	return nil
}

func (b *Backend) setupWMDelete() error {
	proto, err := xproto.InternAtom(b.conn, false, uint16(len("WM_PROTOCOLS")), "WM_PROTOCOLS").Reply()
	if err != nil {
		return fmt.Errorf("x11 intern WM_PROTOCOLS: %w", err)
	}
	del, err := xproto.InternAtom(b.conn, false, uint16(len("WM_DELETE_WINDOW")), "WM_DELETE_WINDOW").Reply()
	if err != nil {
		return fmt.Errorf("x11 intern WM_DELETE_WINDOW: %w", err)
	}
	b.wmProtocols = proto.Atom
	b.wmDeleteWin = del.Atom

	data := make([]byte, 4)
	xgb.Put32(data, uint32(del.Atom))
	return xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, b.xwin,
		proto.Atom, xproto.AtomAtom, 32, 1, data).Check()
}

func (b *Backend) loadKeymap(setup *xproto.SetupInfo) error {
	first := setup.MinKeycode
	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)
	reply, err := xproto.GetKeyboardMapping(b.conn, first, count).Reply()
	if err != nil {
		return fmt.Errorf("x11 keyboard mapping: %w", err)
	}
	b.keymap = reply.Keysyms
	b.keysymsPerKC = reply.KeysymsPerKeycode
	b.firstKeycode = first
	return nil
}

func (b *Backend) setTitle(title string) {
	if b.xu != nil {
		if err := ewmh.WmNameSet(b.xu, b.xwin, title); err == nil {
			return
		}
	}
	xproto.ChangeProperty(b.conn, xproto.PropModeReplace, b.xwin,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(title)), []byte(title))
}

func (b *Backend) DestroyWindow(_ *gfx.Window) {
	if b.conn == nil {
		return
	}
	xproto.FreeGC(b.conn, b.gc)
	xproto.DestroyWindow(b.conn, b.xwin)
	b.conn.Close()
	b.conn = nil
}

// keysym returns the unshifted keysym for a keycode.
func (b *Backend) keysym(kc xproto.Keycode) xproto.Keysym {
	idx := int(kc-b.firstKeycode) * int(b.keysymsPerKC)
	if idx < 0 || idx >= len(b.keymap) {
		return 0
	}
	return b.keymap[idx]
}

func (b *Backend) ProcessEvents(_ *gfx.Window) error {
	if b.conn == nil {
		return gfx.ErrPlatform
	}
	for {
		ev, err := b.conn.PollForEvent()
		if err != nil {
			// Errors for async requests are not fatal to the stream.
			continue
		}
		if ev == nil {
			return nil
		}
		b.handle(ev)
	}
}

func (b *Backend) handle(ev xgb.Event) {
	now := b.NowMS()
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		if k := mapKeysym(b.keysym(e.Detail)); k >= 0 {
			b.win.Deliver(gfx.Event{
				Type: gfx.EventKeyDown, Key: gfx.Key(k),
				Mods: mapState(e.State), TimeMS: now,
			})
		}
	case xproto.KeyReleaseEvent:
		if k := mapKeysym(b.keysym(e.Detail)); k >= 0 {
			b.win.Deliver(gfx.Event{
				Type: gfx.EventKeyUp, Key: gfx.Key(k),
				Mods: mapState(e.State), TimeMS: now,
			})
		}
	case xproto.ButtonPressEvent:
		switch e.Detail {
		case 4:
			b.win.Deliver(gfx.Event{Type: gfx.EventScroll, DeltaY: 1,
				X: int32(e.EventX), Y: int32(e.EventY), TimeMS: now})
		case 5:
			b.win.Deliver(gfx.Event{Type: gfx.EventScroll, DeltaY: -1,
				X: int32(e.EventX), Y: int32(e.EventY), TimeMS: now})
		case 6:
			b.win.Deliver(gfx.Event{Type: gfx.EventScroll, DeltaX: 1,
				X: int32(e.EventX), Y: int32(e.EventY), TimeMS: now})
		case 7:
			b.win.Deliver(gfx.Event{Type: gfx.EventScroll, DeltaX: -1,
				X: int32(e.EventX), Y: int32(e.EventY), TimeMS: now})
		default:
			if btn := mapButton(e.Detail); btn >= 0 {
				b.win.Deliver(gfx.Event{
					Type: gfx.EventMouseDown, Button: btn,
					X: int32(e.EventX), Y: int32(e.EventY),
					Mods: mapState(e.State), TimeMS: now,
				})
			}
		}
	case xproto.ButtonReleaseEvent:
		if btn := mapButton(e.Detail); btn >= 0 {
			b.win.Deliver(gfx.Event{
				Type: gfx.EventMouseUp, Button: btn,
				X: int32(e.EventX), Y: int32(e.EventY),
				Mods: mapState(e.State), TimeMS: now,
			})
		}
	case xproto.MotionNotifyEvent:
		b.win.Deliver(gfx.Event{
			Type: gfx.EventMouseMove,
			X:    int32(e.EventX), Y: int32(e.EventY), TimeMS: now,
		})
	case xproto.ConfigureNotifyEvent:
		w, h := int32(e.Width), int32(e.Height)
		if w != b.width || h != b.height {
			b.width, b.height = w, h
			b.win.Deliver(gfx.Event{Type: gfx.EventResize, Width: w, Height: h, TimeMS: now})
		}
	case xproto.ClientMessageEvent:
		if e.Type == b.wmProtocols && len(e.Data.Data32) > 0 &&
			xproto.Atom(e.Data.Data32[0]) == b.wmDeleteWin {
			b.win.Deliver(gfx.Event{Type: gfx.EventClose, TimeMS: now})
		}
	case xproto.FocusInEvent:
		b.win.Deliver(gfx.Event{Type: gfx.EventFocusGained, TimeMS: now})
	case xproto.FocusOutEvent:
		b.win.Deliver(gfx.Event{Type: gfx.EventFocusLost, TimeMS: now})
	}
}

// putImageMaxBytes keeps one PutImage request under the server's
// maximum request length.
const putImageMaxBytes = 256 * 1024

func (b *Backend) Present(win *gfx.Window) error {
	if b.conn == nil {
		return gfx.ErrPlatform
	}
	fb, ok := win.Framebuffer()
	if !ok {
		return gfx.ErrInvalidParam
	}
	w, h := fb.Width(), fb.Height()
	src := fb.Pixels()

	// X ZPixmap on a 24/32-bit visual wants BGRX byte order.
	need := int(w) * int(h) * 4
	if cap(b.scratch) < need {
		b.scratch = make([]byte, need)
	}
	dst := b.scratch[:need]
	for i := 0; i < need; i += 4 {
		dst[i] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i]
		dst[i+3] = 0xFF
	}

	rowBytes := int(w) * 4
	rowsPerReq := putImageMaxBytes / rowBytes
	if rowsPerReq < 1 {
		rowsPerReq = 1
	}
	for y := 0; y < int(h); y += rowsPerReq {
		rows := min(rowsPerReq, int(h)-y)
		chunk := dst[y*rowBytes : (y+rows)*rowBytes]
		xproto.PutImage(b.conn, xproto.ImageFormatZPixmap,
			xproto.Drawable(b.xwin), b.gc,
			uint16(w), uint16(rows), 0, int16(y),
			0, b.dep, chunk)
	}
	return nil
}

func (b *Backend) NowMS() int64 {
	return (time.Now().UnixNano() - b.startNS) / int64(time.Millisecond)
}

func (b *Backend) SleepMS(ms int64) {
	if ms > 0 {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	}
}

// Window ops.

func (b *Backend) SetTitle(_ *gfx.Window, title string) error {
	b.setTitle(title)
	return nil
}

func (b *Backend) SetSize(_ *gfx.Window, width, height int32) error {
	return xproto.ConfigureWindowChecked(b.conn, b.xwin,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(width), uint32(height)}).Check()
}

func (b *Backend) SetPosition(_ *gfx.Window, x, y int32) error {
	return xproto.ConfigureWindowChecked(b.conn, b.xwin,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(x), uint32(y)}).Check()
}

func (b *Backend) Position(_ *gfx.Window) (x, y int32, err error) {
	geo, err := xproto.GetGeometry(b.conn, xproto.Drawable(b.xwin)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("x11 geometry: %w", err)
	}
	return int32(geo.X), int32(geo.Y), nil
}

func (b *Backend) SetFullscreen(_ *gfx.Window, on bool) error {
	if b.xu == nil {
		return gfx.ErrPlatform
	}
	action := ewmh.StateRemove
	if on {
		action = ewmh.StateAdd
	}
	return ewmh.WmStateReq(b.xu, b.xwin, action, "_NET_WM_STATE_FULLSCREEN")
}

func (b *Backend) Minimize(_ *gfx.Window) error {
	reply, err := xproto.InternAtom(b.conn, false,
		uint16(len("WM_CHANGE_STATE")), "WM_CHANGE_STATE").Reply()
	if err != nil {
		return fmt.Errorf("x11 intern WM_CHANGE_STATE: %w", err)
	}
	// IconicState = 3 per ICCCM.
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: b.xwin,
		Type:   reply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{3, 0, 0, 0, 0}),
	}
	screen := xproto.Setup(b.conn).DefaultScreen(b.conn)
	return xproto.SendEventChecked(b.conn, false, screen.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes())).Check()
}

func (b *Backend) Maximize(_ *gfx.Window) error {
	if b.xu == nil {
		return gfx.ErrPlatform
	}
	return ewmh.WmStateReqExtra(b.xu, b.xwin, ewmh.StateAdd,
		"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_MAXIMIZED_HORZ", 1)
}

func (b *Backend) Restore(_ *gfx.Window) error {
	if b.xu == nil {
		return gfx.ErrPlatform
	}
	if err := ewmh.WmStateReqExtra(b.xu, b.xwin, ewmh.StateRemove,
		"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_MAXIMIZED_HORZ", 1); err != nil {
		return err
	}
	return xproto.MapWindowChecked(b.conn, b.xwin).Check()
}

func (b *Backend) FocusWindow(_ *gfx.Window) error {
	return xproto.SetInputFocusChecked(b.conn,
		xproto.InputFocusPointerRoot, b.xwin, xproto.TimeCurrentTime).Check()
}

func (b *Backend) MonitorSize(_ *gfx.Window) (w, h int32, err error) {
	screen := xproto.Setup(b.conn).DefaultScreen(b.conn)
	return int32(screen.WidthInPixels), int32(screen.HeightInPixels), nil
}

func mapState(state uint16) int {
	out := 0
	if state&xproto.ModMaskShift != 0 {
		out |= gfx.ModShift
	}
	if state&xproto.ModMaskControl != 0 {
		out |= gfx.ModCtrl
	}
	if state&xproto.ModMask1 != 0 {
		out |= gfx.ModAlt
	}
	if state&xproto.ModMask4 != 0 {
		out |= gfx.ModSuper
	}
	return out
}

func mapButton(detail xproto.Button) int {
	switch detail {
	case 1:
		return gfx.MouseLeft
	case 2:
		return gfx.MouseMiddle
	case 3:
		return gfx.MouseRight
	default:
		return -1
	}
}

// mapKeysym converts an X keysym to the shared key codes. Letters are
// upper-cased to match the physical-key convention.
func mapKeysym(sym xproto.Keysym) int {
	switch {
	case sym >= 'a' && sym <= 'z':
		return int(sym) - 'a' + 'A'
	case sym >= ' ' && sym <= '~':
		return int(sym)
	}
	switch sym {
	case 0xFF1B:
		return int(gfx.KeyEscape)
	case 0xFF0D:
		return int(gfx.KeyEnter)
	case 0xFF09:
		return int(gfx.KeyTab)
	case 0xFF08:
		return int(gfx.KeyBackspace)
	case 0xFF63:
		return int(gfx.KeyInsert)
	case 0xFFFF:
		return int(gfx.KeyDelete)
	case 0xFF51:
		return int(gfx.KeyLeft)
	case 0xFF52:
		return int(gfx.KeyUp)
	case 0xFF53:
		return int(gfx.KeyRight)
	case 0xFF54:
		return int(gfx.KeyDown)
	case 0xFF55:
		return int(gfx.KeyPageUp)
	case 0xFF56:
		return int(gfx.KeyPageDown)
	case 0xFF50:
		return int(gfx.KeyHome)
	case 0xFF57:
		return int(gfx.KeyEnd)
	case 0xFFE1:
		return int(gfx.KeyLeftShift)
	case 0xFFE2:
		return int(gfx.KeyRightShift)
	case 0xFFE3:
		return int(gfx.KeyLeftCtrl)
	case 0xFFE4:
		return int(gfx.KeyRightCtrl)
	case 0xFFE9:
		return int(gfx.KeyLeftAlt)
	case 0xFFEA:
		return int(gfx.KeyRightAlt)
	case 0xFFEB:
		return int(gfx.KeyLeftSuper)
	case 0xFFEC:
		return int(gfx.KeyRightSuper)
	}
	if sym >= 0xFFBE && sym <= 0xFFC9 {
		return int(gfx.KeyF1) + int(sym-0xFFBE)
	}
	return -1
}
