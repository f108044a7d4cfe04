package gui

import (
	"strconv"

	"github.com/viperdos/gui/gfx"
)

// Slider selects a value in [Min, Max], snapped to Step when Step > 0.
// Arrow keys nudge by one step (or 1% of the range when Step is 0).
type Slider struct {
	WidgetBase
	Min, Max, Step float64

	value    float64
	dragging bool
}

// NewSlider creates a slider over [min, max] starting at min.
func NewSlider(min, max float64) *Slider {
	s := &Slider{Min: min, Max: max, value: min}
	s.Init(s, "slider")
	s.TabIndex = 0
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// SetValue clamps, snaps to Step and fires OnChange on change.
func (s *Slider) SetValue(v float64) {
	if s.Step > 0 {
		steps := (v - s.Min) / s.Step
		v = s.Min + float64(int64(steps+0.5))*s.Step
	}
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	if v == s.value {
		return
	}
	s.value = v
	s.InvalidatePaint()
	if s.OnChange != nil {
		s.OnChange(s.Self())
	}
}

func (s *Slider) CanFocus() bool { return !s.IsDisabled() }

func (s *Slider) stepSize() float64 {
	if s.Step > 0 {
		return s.Step
	}
	return (s.Max - s.Min) / 100
}

func (s *Slider) Measure(availW, availH float32) {
	s.SetMeasured(160+s.Layout.Padding.Horizontal(), 20+s.Layout.Padding.Vertical())
}

// fraction maps the value to [0, 1].
func (s *Slider) fraction() float32 {
	if s.Max <= s.Min {
		return 0
	}
	return float32((s.value - s.Min) / (s.Max - s.Min))
}

const sliderKnob = 12

func (s *Slider) Paint(c *Canvas) {
	th := c.Theme
	trackY := s.Y + s.H/2 - 2
	track := Rect{X: s.X, Y: trackY, W: s.W, H: 4}
	c.FillRect(track, th.Colors.BgTertiary)

	fillW := s.fraction() * (s.W - sliderKnob)
	c.FillRect(Rect{X: s.X, Y: trackY, W: fillW + sliderKnob/2, H: 4}, th.Colors.Accent)

	knobX := s.X + fillW
	knob := Rect{X: knobX, Y: s.Y + (s.H-sliderKnob)/2, W: sliderKnob, H: sliderKnob}
	kc := th.Colors.Accent
	switch {
	case s.IsDisabled():
		kc = th.Colors.FgDisabled
	case s.dragging:
		kc = th.Colors.AccentPressed
	case s.State&StateHovered != 0:
		kc = th.Colors.AccentHover
	}
	c.FillRect(knob, kc)
	if s.State&StateFocused != 0 {
		c.StrokeRect(knob, th.Colors.BorderFocus)
	}
}

// valueAt maps a root-coordinate x to a slider value.
func (s *Slider) valueAt(x float32) float64 {
	sb := s.ScreenBounds()
	usable := sb.W - sliderKnob
	if usable <= 0 {
		return s.Min
	}
	f := clamp32((x-sb.X-sliderKnob/2)/usable, 0, 1)
	return s.Min + float64(f)*(s.Max-s.Min)
}

func (s *Slider) HandleEvent(ev *Event) bool {
	if s.IsDisabled() {
		return false
	}
	switch ev.Type {
	case EventMouseMove:
		if s.dragging {
			s.SetValue(s.valueAt(ev.X))
			return true
		}
		if s.ScreenBounds().Contains(ev.X, ev.Y) {
			s.State |= StateHovered
		} else {
			s.State &^= StateHovered
		}
	case EventMouseDown:
		if ev.Button == gfx.MouseLeft && s.ScreenBounds().Contains(ev.X, ev.Y) {
			s.dragging = true
			SetInputCapture(s)
			s.SetValue(s.valueAt(ev.X))
			return true
		}
	case EventMouseUp:
		if s.dragging && ev.Button == gfx.MouseLeft {
			s.dragging = false
			ReleaseInputCapture(s)
			return true
		}
	case EventKeyDown:
		switch ev.Key {
		case gfx.KeyLeft, gfx.KeyDown:
			s.SetValue(s.value - s.stepSize())
			return true
		case gfx.KeyRight, gfx.KeyUp:
			s.SetValue(s.value + s.stepSize())
			return true
		case gfx.KeyHome:
			s.SetValue(s.Min)
			return true
		case gfx.KeyEnd:
			s.SetValue(s.Max)
			return true
		}
	}
	return false
}

// ProgressBar shows determinate progress in [0, 1].
type ProgressBar struct {
	WidgetBase
	ShowLabel bool

	fraction float64
}

// NewProgressBar creates a bar at zero progress.
func NewProgressBar() *ProgressBar {
	p := &ProgressBar{}
	p.Init(p, "progress")
	return p
}

// Fraction returns the progress in [0, 1].
func (p *ProgressBar) Fraction() float64 { return p.fraction }

// SetFraction clamps and updates progress.
func (p *ProgressBar) SetFraction(f float64) {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	if f == p.fraction {
		return
	}
	p.fraction = f
	p.InvalidatePaint()
}

func (p *ProgressBar) Measure(availW, availH float32) {
	p.SetMeasured(160+p.Layout.Padding.Horizontal(), 18+p.Layout.Padding.Vertical())
}

func (p *ProgressBar) Paint(c *Canvas) {
	th := c.Theme
	r := p.Bounds()
	c.FillRect(r, th.Colors.BgTertiary)
	c.FillRect(Rect{X: r.X, Y: r.Y, W: r.W * float32(p.fraction), H: r.H}, th.Colors.Accent)
	c.StrokeRect(r, th.Colors.Border)
	if p.ShowLabel {
		label := strconv.Itoa(int(p.fraction*100+0.5)) + "%"
		tw := c.TextWidth(label)
		c.Text(r.X+(r.W-tw)/2, r.Y+(r.H-c.LineHeight())/2, label, th.Colors.FgPrimary)
	}
}
