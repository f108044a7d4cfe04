package gfx

// EventType discriminates the Event union.
type EventType int

const (
	EventNone EventType = iota
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventScroll
	EventResize
	EventFocusGained
	EventFocusLost
	EventClose
)

func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventMouseMove:
		return "mouse-move"
	case EventMouseDown:
		return "mouse-down"
	case EventMouseUp:
		return "mouse-up"
	case EventScroll:
		return "scroll"
	case EventResize:
		return "resize"
	case EventFocusGained:
		return "focus-gained"
	case EventFocusLost:
		return "focus-lost"
	case EventClose:
		return "close"
	}
	return "none"
}

// Key is a virtual key code. Printable ASCII keys use their ASCII value
// (letters are the uppercase code); special keys start at 256. The integer
// values are a binary contract shared by the event layer, the shortcut
// table, and the widget key handling.
type Key int

const (
	KeySpace      Key = 32
	KeyApostrophe Key = 39
	KeyComma      Key = 44
	KeyMinus      Key = 45
	KeyPeriod     Key = 46
	KeySlash      Key = 47
	Key0          Key = 48
	Key9          Key = 57
	KeySemicolon  Key = 59
	KeyEqual      Key = 61
	KeyA          Key = 65
	KeyZ          Key = 90
	KeyLeftBrack  Key = 91
	KeyBackslash  Key = 92
	KeyRightBrack Key = 93
	KeyGrave      Key = 96

	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyInsert    Key = 260
	KeyDelete    Key = 261
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyPageUp    Key = 266
	KeyPageDown  Key = 267
	KeyHome      Key = 268
	KeyEnd       Key = 269

	KeyF1  Key = 290
	KeyF2  Key = 291
	KeyF3  Key = 292
	KeyF4  Key = 293
	KeyF5  Key = 294
	KeyF6  Key = 295
	KeyF7  Key = 296
	KeyF8  Key = 297
	KeyF9  Key = 298
	KeyF10 Key = 299
	KeyF11 Key = 300
	KeyF12 Key = 301

	KeyLeftShift  Key = 340
	KeyLeftCtrl   Key = 341
	KeyLeftAlt    Key = 342
	KeyLeftSuper  Key = 343
	KeyRightShift Key = 344
	KeyRightCtrl  Key = 345
	KeyRightAlt   Key = 346
	KeyRightSuper Key = 347

	// KeyStateSize is the size of the per-window key state mirror.
	KeyStateSize = 512
)

// Modifier bitmask values.
const (
	ModShift = 1 << 0
	ModCtrl  = 1 << 1
	ModAlt   = 1 << 2
	ModSuper = 1 << 3
)

// Mouse buttons.
const (
	MouseLeft   = 0
	MouseRight  = 1
	MouseMiddle = 2

	mouseButtonCount = 8
)

// Event is a tagged union of an event kind, a millisecond timestamp, and the
// per-kind payload fields. Unused fields are zero.
type Event struct {
	Type   EventType
	TimeMS int64

	// KeyDown / KeyUp
	Key      Key
	Mods     int
	IsRepeat bool

	// MouseMove, MouseDown, MouseUp, Scroll
	X, Y   int32
	Button int

	// Scroll
	DeltaX, DeltaY float64

	// Resize
	Width, Height int32
}
