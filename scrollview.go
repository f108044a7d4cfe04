package gui

import "github.com/viperdos/gui/gfx"

// ScrollView clips a single content child and scrolls it with the mouse
// wheel or the scrollbar thumbs. Scroll offsets are clamped so the
// content never detaches from the viewport edges.
type ScrollView struct {
	WidgetBase
	WheelStep float32 // pixels per wheel notch, default 40

	scrollX, scrollY   float32
	contentW, contentH float32
	dragV, dragH       bool
	dragOff            float32
}

// NewScrollView creates a scroll view wrapping content (may be nil).
func NewScrollView(content Widget) *ScrollView {
	s := &ScrollView{WheelStep: 40}
	s.Init(s, "scrollview")
	if content != nil {
		s.AddChild(content)
	}
	return s
}

// Content returns the first (and typically only) child.
func (s *ScrollView) Content() Widget {
	return s.FirstChild
}

// ScrollTo sets the offsets with clamping.
func (s *ScrollView) ScrollTo(x, y float32) {
	s.scrollX = clamp32(x, 0, max32(0, s.contentW-s.viewportW()))
	s.scrollY = clamp32(y, 0, max32(0, s.contentH-s.viewportH()))
	s.InvalidatePaint()
}

// ScrollOffset returns the current offsets.
func (s *ScrollView) ScrollOffset() (x, y float32) { return s.scrollX, s.scrollY }

func (s *ScrollView) barSize() float32 {
	return CurrentTheme().Widgets.ScrollbarSize
}

func (s *ScrollView) viewportW() float32 {
	w := s.W - s.Layout.Padding.Horizontal()
	if s.contentH > s.viewportHRaw() {
		w -= s.barSize()
	}
	return max32(0, w)
}

func (s *ScrollView) viewportH() float32 {
	h := s.viewportHRaw()
	if s.contentW > s.viewportW() {
		h -= s.barSize()
	}
	return max32(0, h)
}

func (s *ScrollView) viewportHRaw() float32 {
	return max32(0, s.H-s.Layout.Padding.Vertical())
}

func (s *ScrollView) Measure(availW, availH float32) {
	if c := s.FirstChild; c != nil {
		MeasureWidget(c, availW, availH)
	}
	s.SetMeasured(availW, availH)
}

func (s *ScrollView) Arrange(x, y, w, h float32) {
	s.SetGeometry(x, y, w, h)
	c := s.FirstChild
	if c == nil {
		s.contentW, s.contentH = 0, 0
		return
	}
	cb := c.Base()
	s.contentW = cb.MeasuredW
	s.contentH = cb.MeasuredH
	// Content narrower than the viewport stretches to fill it.
	cw := max32(s.contentW, s.viewportW())
	ch := max32(s.contentH, s.viewportH())
	s.ScrollTo(s.scrollX, s.scrollY)
	ArrangeWidget(c,
		s.Layout.Padding.Left-s.scrollX,
		s.Layout.Padding.Top-s.scrollY,
		cw, ch)
}

func (s *ScrollView) Paint(c *Canvas) {
	th := c.Theme
	c.FillRect(s.Bounds(), th.Colors.BgPrimary)
}

// ChildClip confines child painting to the viewport.
func (s *ScrollView) ChildClip() (Rect, bool) {
	return Rect{
		X: s.Layout.Padding.Left,
		Y: s.Layout.Padding.Top,
		W: s.viewportW(),
		H: s.viewportH(),
	}, true
}

// PaintOverlay draws the scrollbars after the content.
func (s *ScrollView) PaintOverlay(c *Canvas) {
	th := c.Theme
	bar := s.barSize()
	minLen := th.Widgets.ScrollbarMinLen
	vw, vh := s.viewportW(), s.viewportH()

	if s.contentH > vh {
		track := Rect{X: s.X + s.W - bar, Y: s.Y, W: bar, H: vh}
		c.FillRect(track, th.Colors.BgTertiary)
		thumbH := max32(minLen, vh*vh/s.contentH)
		maxScroll := s.contentH - vh
		thumbY := s.Y
		if maxScroll > 0 {
			thumbY += (vh - thumbH) * (s.scrollY / maxScroll)
		}
		col := th.Colors.BgHover
		if s.dragV {
			col = th.Colors.Accent
		}
		c.FillRect(Rect{X: track.X + 2, Y: thumbY, W: bar - 4, H: thumbH}, col)
	}

	if s.contentW > vw {
		track := Rect{X: s.X, Y: s.Y + s.H - bar, W: vw, H: bar}
		c.FillRect(track, th.Colors.BgTertiary)
		thumbW := max32(minLen, vw*vw/s.contentW)
		maxScroll := s.contentW - vw
		thumbX := s.X
		if maxScroll > 0 {
			thumbX += (vw - thumbW) * (s.scrollX / maxScroll)
		}
		col := th.Colors.BgHover
		if s.dragH {
			col = th.Colors.Accent
		}
		c.FillRect(Rect{X: thumbX, Y: track.Y + 2, W: thumbW, H: bar - 4}, col)
	}
}

func (s *ScrollView) vThumb() (track Rect, thumb Rect, ok bool) {
	vw, vh := s.viewportW(), s.viewportH()
	if s.contentH <= vh {
		return Rect{}, Rect{}, false
	}
	_ = vw
	sb := s.ScreenBounds()
	bar := s.barSize()
	track = Rect{X: sb.X + s.W - bar, Y: sb.Y, W: bar, H: vh}
	thumbH := max32(CurrentTheme().Widgets.ScrollbarMinLen, vh*vh/s.contentH)
	maxScroll := s.contentH - vh
	thumbY := sb.Y
	if maxScroll > 0 {
		thumbY += (vh - thumbH) * (s.scrollY / maxScroll)
	}
	return track, Rect{X: track.X, Y: thumbY, W: bar, H: thumbH}, true
}

func (s *ScrollView) hThumb() (track Rect, thumb Rect, ok bool) {
	vw, vh := s.viewportW(), s.viewportH()
	if s.contentW <= vw {
		return Rect{}, Rect{}, false
	}
	_ = vh
	sb := s.ScreenBounds()
	bar := s.barSize()
	track = Rect{X: sb.X, Y: sb.Y + s.H - bar, W: vw, H: bar}
	thumbW := max32(CurrentTheme().Widgets.ScrollbarMinLen, vw*vw/s.contentW)
	maxScroll := s.contentW - vw
	thumbX := sb.X
	if maxScroll > 0 {
		thumbX += (vw - thumbW) * (s.scrollX / maxScroll)
	}
	return track, Rect{X: thumbX, Y: track.Y, W: thumbW, H: bar}, true
}

func (s *ScrollView) HandleEvent(ev *Event) bool {
	switch ev.Type {
	case EventScroll:
		if !s.ScreenBounds().Contains(ev.X, ev.Y) {
			return false
		}
		s.ScrollTo(s.scrollX-float32(ev.DeltaX)*s.WheelStep,
			s.scrollY-float32(ev.DeltaY)*s.WheelStep)
		s.relayout()
		return true
	case EventMouseDown:
		if ev.Button != gfx.MouseLeft {
			return false
		}
		if track, thumb, ok := s.vThumb(); ok && track.Contains(ev.X, ev.Y) {
			s.dragV = true
			if thumb.Contains(ev.X, ev.Y) {
				s.dragOff = ev.Y - thumb.Y
			} else {
				s.dragOff = thumb.H / 2
				s.dragVTo(ev.Y)
			}
			SetInputCapture(s)
			return true
		}
		if track, thumb, ok := s.hThumb(); ok && track.Contains(ev.X, ev.Y) {
			s.dragH = true
			if thumb.Contains(ev.X, ev.Y) {
				s.dragOff = ev.X - thumb.X
			} else {
				s.dragOff = thumb.W / 2
				s.dragHTo(ev.X)
			}
			SetInputCapture(s)
			return true
		}
	case EventMouseMove:
		if s.dragV {
			s.dragVTo(ev.Y)
			return true
		}
		if s.dragH {
			s.dragHTo(ev.X)
			return true
		}
	case EventMouseUp:
		if (s.dragV || s.dragH) && ev.Button == gfx.MouseLeft {
			s.dragV, s.dragH = false, false
			ReleaseInputCapture(s)
			return true
		}
	}
	return false
}

func (s *ScrollView) dragVTo(y float32) {
	_, thumb, ok := s.vThumb()
	if !ok {
		return
	}
	vh := s.viewportH()
	sb := s.ScreenBounds()
	maxScroll := s.contentH - vh
	span := vh - thumb.H
	if span <= 0 {
		return
	}
	f := clamp32((y-s.dragOff-sb.Y)/span, 0, 1)
	s.ScrollTo(s.scrollX, f*maxScroll)
	s.relayout()
}

func (s *ScrollView) dragHTo(x float32) {
	_, thumb, ok := s.hThumb()
	if !ok {
		return
	}
	vw := s.viewportW()
	sb := s.ScreenBounds()
	maxScroll := s.contentW - vw
	span := vw - thumb.W
	if span <= 0 {
		return
	}
	f := clamp32((x-s.dragOff-sb.X)/span, 0, 1)
	s.ScrollTo(f*maxScroll, s.scrollY)
	s.relayout()
}

// relayout repositions the content child after a scroll change.
func (s *ScrollView) relayout() {
	c := s.FirstChild
	if c == nil {
		return
	}
	cw := max32(s.contentW, s.viewportW())
	ch := max32(s.contentH, s.viewportH())
	ArrangeWidget(c,
		s.Layout.Padding.Left-s.scrollX,
		s.Layout.Padding.Top-s.scrollY,
		cw, ch)
}
