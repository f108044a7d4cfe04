package gui

import "github.com/viperdos/gui/gfx"

// EventType discriminates widget events. The platform layer produces
// everything except KeyChar, which the application loop synthesises from
// KeyDown (see App.Poll).
type EventType int

const (
	EventNone EventType = iota
	EventKeyDown
	EventKeyUp
	EventKeyChar
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventScroll
	EventResize
	EventFocusGained
	EventFocusLost
	EventClose
)

// Event is a widget-layer event. Mouse coordinates are in root coordinates
// (physical pixels).
type Event struct {
	Type   EventType
	TimeMS int64

	Key      gfx.Key
	Mods     int
	IsRepeat bool
	Rune     rune // KeyChar only

	X, Y   float32
	Button int

	DeltaX, DeltaY float64

	Width, Height int32
}

// FromPlatform converts a gfx event to a widget event.
func FromPlatform(ev gfx.Event) Event {
	out := Event{
		TimeMS:   ev.TimeMS,
		Key:      ev.Key,
		Mods:     ev.Mods,
		IsRepeat: ev.IsRepeat,
		X:        float32(ev.X),
		Y:        float32(ev.Y),
		Button:   ev.Button,
		DeltaX:   ev.DeltaX,
		DeltaY:   ev.DeltaY,
		Width:    ev.Width,
		Height:   ev.Height,
	}
	switch ev.Type {
	case gfx.EventKeyDown:
		out.Type = EventKeyDown
	case gfx.EventKeyUp:
		out.Type = EventKeyUp
	case gfx.EventMouseMove:
		out.Type = EventMouseMove
	case gfx.EventMouseDown:
		out.Type = EventMouseDown
	case gfx.EventMouseUp:
		out.Type = EventMouseUp
	case gfx.EventScroll:
		out.Type = EventScroll
	case gfx.EventResize:
		out.Type = EventResize
	case gfx.EventFocusGained:
		out.Type = EventFocusGained
	case gfx.EventFocusLost:
		out.Type = EventFocusLost
	case gfx.EventClose:
		out.Type = EventClose
	}
	return out
}

// KeyCharEvent builds a synthesised character event.
func KeyCharEvent(key gfx.Key, r rune, timeMS int64) Event {
	return Event{Type: EventKeyChar, Key: key, Rune: r, TimeMS: timeMS}
}

// IsMouse reports whether the event carries a cursor position.
func (e *Event) IsMouse() bool {
	switch e.Type {
	case EventMouseMove, EventMouseDown, EventMouseUp, EventScroll:
		return true
	}
	return false
}

// IsKey reports whether the event is keyboard input.
func (e *Event) IsKey() bool {
	switch e.Type {
	case EventKeyDown, EventKeyUp, EventKeyChar:
		return true
	}
	return false
}

// shiftedASCII applies the US-keyboard Shift mapping to a printable key.
func shiftedASCII(key gfx.Key) rune {
	if key >= 'A' && key <= 'Z' {
		return rune(key)
	}
	switch key {
	case '1':
		return '!'
	case '2':
		return '@'
	case '3':
		return '#'
	case '4':
		return '$'
	case '5':
		return '%'
	case '6':
		return '^'
	case '7':
		return '&'
	case '8':
		return '*'
	case '9':
		return '('
	case '0':
		return ')'
	case '-':
		return '_'
	case '=':
		return '+'
	case '[':
		return '{'
	case ']':
		return '}'
	case '\\':
		return '|'
	case ';':
		return ':'
	case '\'':
		return '"'
	case ',':
		return '<'
	case '.':
		return '>'
	case '/':
		return '?'
	case '`':
		return '~'
	}
	return rune(key)
}

// SynthesizeChar maps a KeyDown to the character it would type, or 0 when
// the key is not printable ASCII. Letters honour Shift for case; other keys
// use the US layout symbol row.
func SynthesizeChar(key gfx.Key, mods int) rune {
	if key < ' ' || key > '~' {
		return 0
	}
	shift := mods&gfx.ModShift != 0
	if key >= 'A' && key <= 'Z' {
		if shift {
			return rune(key)
		}
		return rune(key) + ('a' - 'A')
	}
	if shift {
		return shiftedASCII(key)
	}
	return rune(key)
}
