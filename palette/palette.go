// Package palette holds the fixed color themes used to draw the icons.
package palette

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme is the set of colors used for one icon variant.
type Theme struct {
	Name string

	Primary   color.RGBA
	Secondary color.RGBA
	Outline   color.RGBA

	// Background gradient: BgStart at the center, BgEnd at the corners.
	BgStart color.RGBA
	BgEnd   color.RGBA
}

// Suffix is appended to the file name of icons drawn with this theme.
func (t Theme) Suffix() string {
	if t.Name == Enabled {
		return ""
	}
	return "_" + t.Name
}

const (
	Enabled  = "enabled"
	Disabled = "disabled"
)

// Light background shared by both variants, suited to dark toolbars.
const (
	bgLight = "#f8f9fa"
	bgDark  = "#e9ecef"
)

var themes = map[string]Theme{
	Enabled: {
		Name:      Enabled,
		Primary:   MustHex("#667eea"),
		Secondary: MustHex("#764ba2"),
		Outline:   MustHex("#5a67d8"),
		BgStart:   MustHex(bgLight),
		BgEnd:     MustHex(bgDark),
	},
	Disabled: {
		Name:      Disabled,
		Primary:   MustHex("#9ca3af"),
		Secondary: MustHex("#6b7280"),
		Outline:   MustHex("#4b5563"),
		BgStart:   MustHex(bgLight),
		BgEnd:     MustHex(bgDark),
	},
}

// Lookup returns the theme registered under name.
func Lookup(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// Default returns the themes in generation order: enabled first.
func Default() []Theme {
	return []Theme{themes[Enabled], themes[Disabled]}
}

// Names returns all theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// HexToRGB converts "#rrggbb" (the leading '#' is optional) to an opaque color.
func HexToRGB(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustHex is like HexToRGB but panics on malformed input. Only for constants.
func MustHex(s string) color.RGBA {
	c, err := HexToRGB(s)
	if err != nil {
		panic("palette: " + err.Error())
	}
	return c
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
