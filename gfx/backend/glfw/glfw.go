// Package glfw is the desktop backend: a GLFW window whose content is the
// software framebuffer blitted through an OpenGL textured quad each frame.
package glfw

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/viperdos/gui/gfx"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

var glfwInitDone bool

var (
	_ gfx.Backend   = (*Backend)(nil)
	_ gfx.WindowOps = (*Backend)(nil)
	_ gfx.CursorOps = (*Backend)(nil)
)

// Backend implements gfx.Backend on top of GLFW + OpenGL 4.1.
type Backend struct {
	win      *gfx.Window
	glfwWin  *glfw.Window
	blitter  *blitter
	cursors  map[gfx.Cursor]*glfw.Cursor
	lastW    int32
	lastH    int32
	startNS  int64
	focused  bool
}

// New creates an uninitialized backend; InitWindow does the real work.
func New() *Backend {
	return &Backend{startNS: time.Now().UnixNano()}
}

func (b *Backend) InitWindow(w *gfx.Window, params gfx.Params) error {
	if !glfwInitDone {
		if err := glfw.Init(); err != nil {
			return fmt.Errorf("glfw init: %w", err)
		}
		glfwInitDone = true
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if params.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	gw, err := glfw.CreateWindow(int(params.Width), int(params.Height), params.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("glfw create window: %w", err)
	}
	gw.MakeContextCurrent()
	glfw.SwapInterval(0) // pacing is ours

	if err := gl.Init(); err != nil {
		gw.Destroy()
		return fmt.Errorf("gl init: %w", err)
	}

	// On HiDPI displays the GLFW framebuffer is larger than the requested
	// size in screen coordinates; the core framebuffer tracks physical
	// pixels.
	fbW, fbH := gw.GetFramebufferSize()

	bl, err := newBlitter(int32(fbW), int32(fbH))
	if err != nil {
		gw.Destroy()
		return err
	}

	b.win = w
	b.glfwWin = gw
	b.blitter = bl
	b.lastW = int32(fbW)
	b.lastH = int32(fbH)
	b.focused = true

	if sx, _ := gw.GetContentScale(); sx > 0 {
		w.SetScale(float64(sx))
	}
	if int32(fbW) != params.Width || int32(fbH) != params.Height {
		w.Deliver(gfx.Event{
			Type: gfx.EventResize, Width: int32(fbW), Height: int32(fbH), TimeMS: b.NowMS(),
		})
	}

	b.installCallbacks()
	return nil
}

func (b *Backend) installCallbacks() {
	gw := b.glfwWin
	gw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		k := mapKey(key)
		if k < 0 {
			return
		}
		ev := gfx.Event{
			Key:      gfx.Key(k),
			Mods:     mapMods(mods),
			TimeMS:   b.NowMS(),
			IsRepeat: action == glfw.Repeat,
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			ev.Type = gfx.EventKeyDown
		case glfw.Release:
			ev.Type = gfx.EventKeyUp
		}
		b.win.Deliver(ev)
	})
	gw.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		btn := mapMouseButton(button)
		if btn < 0 {
			return
		}
		x, y := gw.GetCursorPos()
		ev := gfx.Event{
			Button: btn,
			Mods:   mapMods(mods),
			X:      int32(x),
			Y:      int32(y),
			TimeMS: b.NowMS(),
		}
		if action == glfw.Press {
			ev.Type = gfx.EventMouseDown
		} else {
			ev.Type = gfx.EventMouseUp
		}
		b.win.Deliver(ev)
	})
	gw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		b.win.Deliver(gfx.Event{
			Type: gfx.EventMouseMove, X: int32(x), Y: int32(y), TimeMS: b.NowMS(),
		})
	})
	gw.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		x, y := gw.GetCursorPos()
		b.win.Deliver(gfx.Event{
			Type: gfx.EventScroll, DeltaX: dx, DeltaY: dy,
			X: int32(x), Y: int32(y), TimeMS: b.NowMS(),
		})
	})
	gw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if int32(width) == b.lastW && int32(height) == b.lastH {
			return
		}
		b.lastW, b.lastH = int32(width), int32(height)
		b.blitter.resize(int32(width), int32(height))
		b.win.Deliver(gfx.Event{
			Type: gfx.EventResize, Width: int32(width), Height: int32(height), TimeMS: b.NowMS(),
		})
	})
	gw.SetCloseCallback(func(_ *glfw.Window) {
		b.win.Deliver(gfx.Event{Type: gfx.EventClose, TimeMS: b.NowMS()})
		if b.win.PreventClose() {
			gw.SetShouldClose(false)
		}
	})
	gw.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		b.focused = focused
		t := gfx.EventFocusLost
		if focused {
			t = gfx.EventFocusGained
		}
		b.win.Deliver(gfx.Event{Type: t, TimeMS: b.NowMS()})
	})
}

func (b *Backend) DestroyWindow(_ *gfx.Window) {
	if b.glfwWin == nil {
		return
	}
	for _, c := range b.cursors {
		c.Destroy()
	}
	b.cursors = nil
	b.blitter.destroy()
	b.glfwWin.Destroy()
	b.glfwWin = nil
}

func (b *Backend) ProcessEvents(_ *gfx.Window) error {
	if b.glfwWin == nil {
		return gfx.ErrPlatform
	}
	glfw.PollEvents()
	return nil
}

func (b *Backend) Present(w *gfx.Window) error {
	if b.glfwWin == nil {
		return gfx.ErrPlatform
	}
	fb, ok := w.Framebuffer()
	if !ok {
		return gfx.ErrInvalidParam
	}
	b.glfwWin.MakeContextCurrent()
	b.blitter.blit(fb)
	b.glfwWin.SwapBuffers()
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
	b.glfwWin.SetTitle(title)
	return nil
}

func (b *Backend) SetSize(_ *gfx.Window, width, height int32) error {
	b.glfwWin.SetSize(int(width), int(height))
	return nil
}

func (b *Backend) Position(_ *gfx.Window) (x, y int32, err error) {
	px, py := b.glfwWin.GetPos()
	return int32(px), int32(py), nil
}

func (b *Backend) SetPosition(_ *gfx.Window, x, y int32) error {
	b.glfwWin.SetPos(int(x), int(y))
	return nil
}

func (b *Backend) SetFullscreen(_ *gfx.Window, on bool) error {
	gw := b.glfwWin
	if on {
		mon := glfw.GetPrimaryMonitor()
		mode := mon.GetVideoMode()
		gw.SetMonitor(mon, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	} else {
		gw.SetMonitor(nil, 100, 100, int(b.lastW), int(b.lastH), 0)
	}
	return nil
}

func (b *Backend) Minimize(_ *gfx.Window) error    { b.glfwWin.Iconify(); return nil }
func (b *Backend) Maximize(_ *gfx.Window) error    { b.glfwWin.Maximize(); return nil }
func (b *Backend) Restore(_ *gfx.Window) error     { b.glfwWin.Restore(); return nil }
func (b *Backend) FocusWindow(_ *gfx.Window) error { b.glfwWin.Focus(); return nil }

func (b *Backend) MonitorSize(_ *gfx.Window) (w, h int32, err error) {
	mode := glfw.GetPrimaryMonitor().GetVideoMode()
	return int32(mode.Width), int32(mode.Height), nil
}

// Cursor ops.

func (b *Backend) SetCursor(_ *gfx.Window, c gfx.Cursor) error {
	if b.cursors == nil {
		b.cursors = map[gfx.Cursor]*glfw.Cursor{
			gfx.CursorArrow:     glfw.CreateStandardCursor(glfw.ArrowCursor),
			gfx.CursorIBeam:     glfw.CreateStandardCursor(glfw.IBeamCursor),
			gfx.CursorCrosshair: glfw.CreateStandardCursor(glfw.CrosshairCursor),
			gfx.CursorHand:      glfw.CreateStandardCursor(glfw.HandCursor),
			gfx.CursorHResize:   glfw.CreateStandardCursor(glfw.HResizeCursor),
			gfx.CursorVResize:   glfw.CreateStandardCursor(glfw.VResizeCursor),
		}
	}
	cur, ok := b.cursors[c]
	if !ok {
		return gfx.ErrInvalidParam
	}
	b.glfwWin.SetCursor(cur)
	return nil
}

func (b *Backend) ShowCursor(_ *gfx.Window, visible bool) error {
	if visible {
		b.glfwWin.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		b.glfwWin.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}
	return nil
}

// mapKey converts a GLFW key to the shared key codes; GLFW's values for
// printable and special keys already match, so only out-of-range keys
// need rejecting.
func mapKey(key glfw.Key) int {
	k := int(key)
	if k >= 32 && k <= 347 {
		return k
	}
	return -1
}

func mapMods(mods glfw.ModifierKey) int {
	out := 0
	if mods&glfw.ModShift != 0 {
		out |= gfx.ModShift
	}
	if mods&glfw.ModControl != 0 {
		out |= gfx.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		out |= gfx.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		out |= gfx.ModSuper
	}
	return out
}

func mapMouseButton(button glfw.MouseButton) int {
	switch button {
	case glfw.MouseButtonLeft:
		return gfx.MouseLeft
	case glfw.MouseButtonRight:
		return gfx.MouseRight
	case glfw.MouseButtonMiddle:
		return gfx.MouseMiddle
	default:
		return -1
	}
}
