package gui

import (
	"strings"

	"github.com/viperdos/gui/gfx"
)

// Label is a static text widget. With Wrap set it breaks its text on
// spaces to fit the available width.
type Label struct {
	WidgetBase
	Text  string
	Color gfx.Color // 0 means the theme foreground
	Wrap  bool

	lines     []string
	wrapWidth float32
}

// NewLabel creates a label with the given text.
func NewLabel(text string) *Label {
	l := &Label{Text: text}
	l.Init(l, "label")
	return l
}

// SetText replaces the label text and invalidates layout.
func (l *Label) SetText(text string) {
	if text == l.Text {
		return
	}
	l.Text = text
	l.lines = nil
	l.InvalidateLayout()
}

func (l *Label) Measure(availW, availH float32) {
	c := measureCanvas()
	innerW := availW - l.Layout.Padding.Horizontal()
	lh := c.LineHeight()
	if !l.Wrap {
		l.lines = nil
		l.SetMeasured(c.TextWidth(l.Text)+l.Layout.Padding.Horizontal(), lh+l.Layout.Padding.Vertical())
		return
	}
	l.lines = wrapText(c, l.Text, innerW)
	l.wrapWidth = innerW
	var widest float32
	for _, line := range l.lines {
		widest = max32(widest, c.TextWidth(line))
	}
	l.SetMeasured(widest+l.Layout.Padding.Horizontal(),
		lh*float32(len(l.lines))+l.Layout.Padding.Vertical())
}

func (l *Label) Paint(c *Canvas) {
	col := l.Color
	if col == 0 {
		col = c.Theme.Colors.FgPrimary
	}
	if l.IsDisabled() {
		col = c.Theme.Colors.FgDisabled
	}
	x := l.X + l.Layout.Padding.Left
	y := l.Y + l.Layout.Padding.Top
	if !l.Wrap {
		c.Text(x, y, l.Text, col)
		return
	}
	lines := l.lines
	innerW := l.W - l.Layout.Padding.Horizontal()
	if lines == nil || innerW != l.wrapWidth {
		lines = wrapText(c, l.Text, innerW)
		l.lines = lines
		l.wrapWidth = innerW
	}
	lh := c.LineHeight()
	for _, line := range lines {
		c.Text(x, y, line, col)
		y += lh
	}
}

// wrapText greedily breaks text at spaces so each line fits maxW. A word
// wider than the line goes on its own line and overflows.
func wrapText(c *Canvas, text string, maxW float32) []string {
	if text == "" {
		return []string{""}
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, word := range words[1:] {
			joined := cur + " " + word
			if c.TextWidth(joined) > maxW {
				lines = append(lines, cur)
				cur = word
			} else {
				cur = joined
			}
		}
		lines = append(lines, cur)
	}
	return lines
}
