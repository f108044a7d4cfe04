package gui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeSaveLoadRoundTrip(t *testing.T) {
	th := DarkTheme()
	th.Name = "custom"
	th.Colors.Accent = 0xFF336699
	th.Widgets.ButtonPadX = 20

	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := th.SaveThemeFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadThemeFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "custom" {
		t.Errorf("name = %q, want %q", got.Name, "custom")
	}
	if got.Colors.Accent != 0xFF336699 {
		t.Errorf("accent = %#x, want 0xFF336699", got.Colors.Accent)
	}
	if got.Widgets.ButtonPadX != 20 {
		t.Errorf("button pad = %g, want 20", got.Widgets.ButtonPadX)
	}
	if got.Colors.Syntax.Keyword != th.Colors.Syntax.Keyword {
		t.Error("syntax colors did not round-trip")
	}
}

func TestThemePartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	src := "name = \"minimal\"\n\n[colors]\naccent = 0xFF112233\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadThemeFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "minimal" || got.Colors.Accent != 0xFF112233 {
		t.Error("explicit fields not applied")
	}
	def := DarkTheme()
	if got.Colors.BgPrimary != def.Colors.BgPrimary {
		t.Error("unset color lost the default")
	}
	if got.Fonts.SizeNormal != def.Fonts.SizeNormal {
		t.Error("unset font size lost the default")
	}
}

func TestLoadThemeFileMissing(t *testing.T) {
	if _, err := LoadThemeFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing file did not error")
	}
}

func TestApplyScaleOnce(t *testing.T) {
	th := DarkTheme()
	base := th.Fonts.SizeNormal
	th.ApplyScale(2)
	if th.Fonts.SizeNormal != base*2 {
		t.Errorf("scaled size = %g, want %g", th.Fonts.SizeNormal, base*2)
	}
	th.ApplyScale(2)
	if th.Fonts.SizeNormal != base*2 {
		t.Error("second ApplyScale with the same factor scaled again")
	}
	md := th.Spacing.MD
	th.ApplyScale(1)
	if th.Spacing.MD != md {
		t.Error("scale 1 changed spacing")
	}
}

func TestSetCurrentThemeNilRestoresDefault(t *testing.T) {
	orig := CurrentTheme()
	defer SetCurrentTheme(orig)

	SetCurrentTheme(LightTheme())
	if CurrentTheme().Name != "light" {
		t.Fatal("theme not switched")
	}
	SetCurrentTheme(nil)
	if CurrentTheme().Name != "dark" {
		t.Error("nil did not restore the dark default")
	}
}
