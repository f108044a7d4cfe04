package gui

import (
	"testing"

	"github.com/viperdos/gui/gfx"
)

func TestShortcutCheckRunsAction(t *testing.T) {
	tbl := NewShortcutTable()
	fired := 0
	tbl.Register("save", 'S', gfx.ModCtrl, func() { fired++ })

	if !tbl.Check('S', gfx.ModCtrl) {
		t.Fatal("exact chord did not match")
	}
	if fired != 1 {
		t.Errorf("action ran %d times, want 1", fired)
	}
	if tbl.TriggeredID() != "save" {
		t.Errorf("TriggeredID = %q, want %q", tbl.TriggeredID(), "save")
	}
}

func TestShortcutLowercaseKeyMatches(t *testing.T) {
	tbl := NewShortcutTable()
	tbl.Register("save", 'S', gfx.ModCtrl, nil)
	if !tbl.Check('s', gfx.ModCtrl) {
		t.Error("lowercase key did not match")
	}
}

func TestShortcutSuperAliasesCtrl(t *testing.T) {
	tbl := NewShortcutTable()
	tbl.Register("save", 'S', gfx.ModCtrl, nil)
	if !tbl.Check('S', gfx.ModSuper) {
		t.Error("Super chord did not match the Ctrl binding")
	}
}

func TestShortcutRequiresCtrlOrAlt(t *testing.T) {
	tbl := NewShortcutTable()
	tbl.Register("odd", 'S', gfx.ModShift, nil)
	if tbl.Check('S', gfx.ModShift) {
		t.Error("shift-only chord matched")
	}
	if tbl.Check('S', 0) {
		t.Error("bare key matched")
	}
}

func TestShortcutTriggeredSticky(t *testing.T) {
	tbl := NewShortcutTable()
	tbl.Register("save", 'S', gfx.ModCtrl, nil)

	tbl.Check('S', gfx.ModCtrl)
	if !tbl.WasTriggered("save") {
		t.Fatal("WasTriggered false right after match")
	}
	if !tbl.WasTriggered("save") {
		t.Error("triggered flag was consumed by reading it")
	}
	tbl.ClearTriggered()
	if tbl.WasTriggered("save") {
		t.Error("flag survived ClearTriggered")
	}
	if tbl.TriggeredID() != "" {
		t.Error("TriggeredID survived ClearTriggered")
	}
}

func TestShortcutDisabledTable(t *testing.T) {
	tbl := NewShortcutTable()
	tbl.Register("save", 'S', gfx.ModCtrl, nil)
	tbl.SetEnabled(false)
	if tbl.Check('S', gfx.ModCtrl) {
		t.Error("disabled table matched")
	}
}

func TestShortcutReplaceAndUnregister(t *testing.T) {
	tbl := NewShortcutTable()
	tbl.Register("act", 'A', gfx.ModCtrl, nil)
	tbl.Register("act", 'B', gfx.ModCtrl, nil)
	if tbl.Check('A', gfx.ModCtrl) {
		t.Error("replaced binding still matches")
	}
	if !tbl.Check('B', gfx.ModCtrl) {
		t.Error("new binding does not match")
	}
	tbl.Unregister("act")
	if tbl.Check('B', gfx.ModCtrl) {
		t.Error("unregistered binding still matches")
	}
}

func TestParseChord(t *testing.T) {
	tests := []struct {
		chord    string
		wantKey  gfx.Key
		wantMods int
		ok       bool
	}{
		{"Ctrl+S", 'S', gfx.ModCtrl, true},
		{"ctrl+shift+s", 'S', gfx.ModCtrl | gfx.ModShift, true},
		{"Cmd+Z", 'Z', gfx.ModCtrl, true},
		{"Alt+F4", gfx.KeyF4, gfx.ModAlt, true},
		{"Ctrl+Enter", gfx.KeyEnter, gfx.ModCtrl, true},
		{"Super+Space", ' ', gfx.ModSuper, true},
		{"Ctrl+Delete", gfx.KeyDelete, gfx.ModCtrl, true},
		{"Bogus+S", 0, 0, false},
		{"Ctrl+NotAKey", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		key, mods, ok := ParseChord(tt.chord)
		if ok != tt.ok {
			t.Errorf("ParseChord(%q) ok = %v, want %v", tt.chord, ok, tt.ok)
			continue
		}
		if ok && (key != tt.wantKey || mods != tt.wantMods) {
			t.Errorf("ParseChord(%q) = (%d, %d), want (%d, %d)",
				tt.chord, key, mods, tt.wantKey, tt.wantMods)
		}
	}
}

func TestRegisterString(t *testing.T) {
	tbl := NewShortcutTable()
	if !tbl.RegisterString("quit", "Ctrl+Q", nil) {
		t.Fatal("valid chord rejected")
	}
	if tbl.RegisterString("bad", "Nope", nil) {
		t.Error("invalid chord accepted")
	}
	if !tbl.Check('Q', gfx.ModCtrl) {
		t.Error("registered chord does not match")
	}
}
