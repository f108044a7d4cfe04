package gui

import (
	"strings"

	"github.com/viperdos/gui/gfx"
)

// Shortcut binds a key chord to an identifier and optional callback.
// Matching requires Ctrl or Alt to be part of the chord so that plain
// typing never fires a shortcut.
type Shortcut struct {
	ID     string
	Key    gfx.Key
	Mods   int
	Action func()

	triggered bool
}

// ShortcutTable holds registered shortcuts for one application.
type ShortcutTable struct {
	entries []*Shortcut
	enabled bool
	lastID  string
}

// NewShortcutTable creates an enabled, empty table.
func NewShortcutTable() *ShortcutTable {
	return &ShortcutTable{enabled: true}
}

// Register adds a shortcut. Registering an ID that already exists
// replaces the previous binding.
func (t *ShortcutTable) Register(id string, key gfx.Key, mods int, action func()) {
	for _, s := range t.entries {
		if s.ID == id {
			s.Key, s.Mods, s.Action = key, mods, action
			return
		}
	}
	t.entries = append(t.entries, &Shortcut{ID: id, Key: key, Mods: mods, Action: action})
}

// RegisterString registers a shortcut from a chord description such as
// "Ctrl+Shift+S" or "Alt+F4". It returns false when the description
// cannot be parsed.
func (t *ShortcutTable) RegisterString(id, chord string, action func()) bool {
	key, mods, ok := ParseChord(chord)
	if !ok {
		return false
	}
	t.Register(id, key, mods, action)
	return true
}

// Unregister removes a shortcut by ID.
func (t *ShortcutTable) Unregister(id string) {
	for i, s := range t.entries {
		if s.ID == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return
		}
	}
}

// SetEnabled toggles the whole table. A disabled table matches nothing.
func (t *ShortcutTable) SetEnabled(enabled bool) { t.enabled = enabled }

// Enabled reports whether the table is active.
func (t *ShortcutTable) Enabled() bool { return t.enabled }

// Check tests a key event against the table. On a match the shortcut's
// triggered flag is set for this frame, its action runs, and Check
// returns true so the caller can suppress character synthesis.
//
// Super is treated as Ctrl so macOS-style chords match the same
// bindings. A chord without Ctrl or Alt never matches.
func (t *ShortcutTable) Check(key gfx.Key, mods int) bool {
	if !t.enabled {
		return false
	}
	eff := mods
	if eff&gfx.ModSuper != 0 {
		eff = (eff &^ gfx.ModSuper) | gfx.ModCtrl
	}
	if eff&(gfx.ModCtrl|gfx.ModAlt) == 0 {
		return false
	}
	k := key
	if k >= 'a' && k <= 'z' {
		k -= 'a' - 'A'
	}
	for _, s := range t.entries {
		if s.Key == k && s.Mods == eff {
			s.triggered = true
			t.lastID = s.ID
			if s.Action != nil {
				s.Action()
			}
			return true
		}
	}
	return false
}

// WasTriggered reports whether the shortcut fired since the last
// ClearTriggered. The flag is sticky within a frame.
func (t *ShortcutTable) WasTriggered(id string) bool {
	for _, s := range t.entries {
		if s.ID == id {
			return s.triggered
		}
	}
	return false
}

// TriggeredID returns the ID of the most recent triggered shortcut this
// frame, or "".
func (t *ShortcutTable) TriggeredID() string { return t.lastID }

// ClearTriggered resets all triggered flags. Called once per frame
// before event processing.
func (t *ShortcutTable) ClearTriggered() {
	for _, s := range t.entries {
		s.triggered = false
	}
	t.lastID = ""
}

// ParseChord parses a chord description like "Ctrl+Shift+S". Modifier
// names are Ctrl, Cmd (alias for Ctrl), Shift, Alt and Super; the final
// token is a single character, F1..F12, or a named key.
func ParseChord(chord string) (gfx.Key, int, bool) {
	parts := strings.Split(chord, "+")
	if len(parts) == 0 {
		return 0, 0, false
	}
	mods := 0
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl", "cmd", "control":
			mods |= gfx.ModCtrl
		case "shift":
			mods |= gfx.ModShift
		case "alt":
			mods |= gfx.ModAlt
		case "super", "meta", "win":
			mods |= gfx.ModSuper
		default:
			return 0, 0, false
		}
	}
	key, ok := parseKeyName(strings.TrimSpace(parts[len(parts)-1]))
	if !ok {
		return 0, 0, false
	}
	return key, mods, true
}

func parseKeyName(name string) (gfx.Key, bool) {
	if name == "" {
		return 0, false
	}
	if len(name) == 1 {
		c := name[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= ' ' && c <= '~' {
			return gfx.Key(c), true
		}
		return 0, false
	}
	lower := strings.ToLower(name)
	if len(lower) >= 2 && lower[0] == 'f' {
		n := 0
		for _, c := range lower[1:] {
			if c < '0' || c > '9' {
				n = -1
				break
			}
			n = n*10 + int(c-'0')
		}
		if n >= 1 && n <= 12 {
			return gfx.KeyF1 + gfx.Key(n-1), true
		}
	}
	named := map[string]gfx.Key{
		"escape": gfx.KeyEscape, "esc": gfx.KeyEscape,
		"enter": gfx.KeyEnter, "return": gfx.KeyEnter,
		"tab":       gfx.KeyTab,
		"backspace": gfx.KeyBackspace,
		"insert":    gfx.KeyInsert,
		"delete":    gfx.KeyDelete, "del": gfx.KeyDelete,
		"left": gfx.KeyLeft, "right": gfx.KeyRight,
		"up": gfx.KeyUp, "down": gfx.KeyDown,
		"pageup": gfx.KeyPageUp, "pagedown": gfx.KeyPageDown,
		"home": gfx.KeyHome, "end": gfx.KeyEnd,
		"space": gfx.Key(' '),
	}
	k, ok := named[lower]
	return k, ok
}
