package gui

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/viperdos/gui/font"
	"github.com/viperdos/gui/gfx"
)

// ColorScheme is a theme's full color set. All colors are packed ARGB.
type ColorScheme struct {
	BgPrimary   gfx.Color `toml:"bg_primary"`
	BgSecondary gfx.Color `toml:"bg_secondary"`
	BgTertiary  gfx.Color `toml:"bg_tertiary"`
	BgSelected  gfx.Color `toml:"bg_selected"`
	BgHover     gfx.Color `toml:"bg_hover"`

	FgPrimary   gfx.Color `toml:"fg_primary"`
	FgSecondary gfx.Color `toml:"fg_secondary"`
	FgDisabled  gfx.Color `toml:"fg_disabled"`

	Accent        gfx.Color `toml:"accent"`
	AccentHover   gfx.Color `toml:"accent_hover"`
	AccentPressed gfx.Color `toml:"accent_pressed"`

	Border      gfx.Color `toml:"border"`
	BorderFocus gfx.Color `toml:"border_focus"`

	Error   gfx.Color `toml:"error"`
	Warning gfx.Color `toml:"warning"`
	Success gfx.Color `toml:"success"`

	Syntax SyntaxColors `toml:"syntax"`
}

// SyntaxColors are the nine highlight colors used by the code editor.
type SyntaxColors struct {
	Keyword  gfx.Color `toml:"keyword"`
	String   gfx.Color `toml:"string"`
	Number   gfx.Color `toml:"number"`
	Comment  gfx.Color `toml:"comment"`
	Function gfx.Color `toml:"function"`
	Type     gfx.Color `toml:"type"`
	Constant gfx.Color `toml:"constant"`
	Operator gfx.Color `toml:"operator"`
	Plain    gfx.Color `toml:"plain"`
}

// Typography holds the theme's font slots and size presets. The fonts are
// not owned by the theme.
type Typography struct {
	Regular *font.Font `toml:"-"`
	Bold    *font.Font `toml:"-"`
	Mono    *font.Font `toml:"-"`

	SizeSmall  float64 `toml:"size_small"`
	SizeNormal float64 `toml:"size_normal"`
	SizeLarge  float64 `toml:"size_large"`
	SizeTitle  float64 `toml:"size_title"`

	LineHeight float64 `toml:"line_height"`
}

// Spacing presets, smallest to largest.
type Spacing struct {
	XS float32 `toml:"xs"`
	SM float32 `toml:"sm"`
	MD float32 `toml:"md"`
	LG float32 `toml:"lg"`
	XL float32 `toml:"xl"`
}

// WidgetStyles are per-widget-class overrides.
type WidgetStyles struct {
	ButtonRadius    float32 `toml:"button_radius"`
	ButtonPadX      float32 `toml:"button_pad_x"`
	ButtonPadY      float32 `toml:"button_pad_y"`
	InputPadX       float32 `toml:"input_pad_x"`
	InputPadY       float32 `toml:"input_pad_y"`
	ScrollbarSize   float32 `toml:"scrollbar_size"`
	ScrollbarMinLen float32 `toml:"scrollbar_min_len"`
}

// Theme is a complete visual style: colors, typography, spacing and
// per-widget overrides, plus the HiDPI scale applied once after window
// creation.
type Theme struct {
	Name    string       `toml:"name"`
	Colors  ColorScheme  `toml:"colors"`
	Fonts   Typography   `toml:"fonts"`
	Spacing Spacing      `toml:"spacing"`
	Widgets WidgetStyles `toml:"widgets"`
	UIScale float32      `toml:"ui_scale"`
}

// DarkTheme returns the built-in dark theme.
func DarkTheme() *Theme {
	return &Theme{
		Name: "dark",
		Colors: ColorScheme{
			BgPrimary:   0xFF252526,
			BgSecondary: 0xFF1E1E1E,
			BgTertiary:  0xFF2D2D30,
			BgSelected:  0xFF264F78,
			BgHover:     0xFF3E3E42,
			FgPrimary:   0xFFD4D4D4,
			FgSecondary: 0xFF9D9D9D,
			FgDisabled:  0xFF6B6B6B,
			Accent:      0xFF0E639C, AccentHover: 0xFF1177BB, AccentPressed: 0xFF094771,
			Border: 0xFF3F3F46, BorderFocus: 0xFF007FD4,
			Error: 0xFFF44747, Warning: 0xFFCCA700, Success: 0xFF89D185,
			Syntax: SyntaxColors{
				Keyword: 0xFF569CD6, String: 0xFFCE9178, Number: 0xFFB5CEA8,
				Comment: 0xFF6A9955, Function: 0xFFDCDCAA, Type: 0xFF4EC9B0,
				Constant: 0xFF4FC1FF, Operator: 0xFFD4D4D4, Plain: 0xFFD4D4D4,
			},
		},
		Fonts: Typography{
			SizeSmall: 11, SizeNormal: 14, SizeLarge: 18, SizeTitle: 24,
			LineHeight: 1.4,
		},
		Spacing: Spacing{XS: 2, SM: 4, MD: 8, LG: 16, XL: 24},
		Widgets: WidgetStyles{
			ButtonRadius: 3, ButtonPadX: 12, ButtonPadY: 6,
			InputPadX: 8, InputPadY: 4,
			ScrollbarSize: 12, ScrollbarMinLen: 24,
		},
		UIScale: 1.0,
	}
}

// LightTheme returns the built-in light theme.
func LightTheme() *Theme {
	t := DarkTheme()
	t.Name = "light"
	t.Colors.BgPrimary = 0xFFF3F3F3
	t.Colors.BgSecondary = 0xFFFFFFFF
	t.Colors.BgTertiary = 0xFFECECEC
	t.Colors.BgSelected = 0xFFADD6FF
	t.Colors.BgHover = 0xFFE8E8E8
	t.Colors.FgPrimary = 0xFF1E1E1E
	t.Colors.FgSecondary = 0xFF616161
	t.Colors.FgDisabled = 0xFFA0A0A0
	t.Colors.Border = 0xFFCECECE
	t.Colors.Syntax.Plain = 0xFF1E1E1E
	t.Colors.Syntax.Operator = 0xFF1E1E1E
	return t
}

var currentTheme = DarkTheme()

// CurrentTheme returns the active theme.
func CurrentTheme() *Theme { return currentTheme }

// SetCurrentTheme replaces the active theme. Passing nil restores the dark
// default.
func SetCurrentTheme(t *Theme) {
	if t == nil {
		t = DarkTheme()
	}
	currentTheme = t
}

// ApplyScale multiplies typography sizes and spacing presets by the HiDPI
// factor. Call exactly once, after window creation, so physical-pixel
// measurements stay stable.
func (t *Theme) ApplyScale(scale float32) {
	if scale <= 1.0 || t.UIScale == scale {
		return
	}
	s := float64(scale)
	t.Fonts.SizeSmall *= s
	t.Fonts.SizeNormal *= s
	t.Fonts.SizeLarge *= s
	t.Fonts.SizeTitle *= s
	t.Spacing.XS *= scale
	t.Spacing.SM *= scale
	t.Spacing.MD *= scale
	t.Spacing.LG *= scale
	t.Spacing.XL *= scale
	t.UIScale = scale
}

// LoadThemeFile reads a theme from a TOML file. Missing fields keep the
// dark theme's values, so partial themes are valid.
func LoadThemeFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	t := DarkTheme()
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("theme: parse %s: %w", path, err)
	}
	return t, nil
}

// SaveThemeFile writes the theme as TOML.
func (t *Theme) SaveThemeFile(path string) error {
	data, err := toml.Marshal(t)
	if err != nil {
		return fmt.Errorf("theme: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	return nil
}
