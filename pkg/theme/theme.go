// Package theme resolves skin colors for component styling.
//
// Skins are declared in configuration as name → color mappings; values are
// either CSS-style named colors or #rgb/#rrggbb hex literals. Components
// consult the palette when synthesizing their elements.
package theme

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Palette maps skin slot names (e.g. "control", "accent") to colors.
type Palette map[string]color.RGBA

// ButtonThemeData defines default styling slots for Button components.
type ButtonThemeData struct {
	// Background is the button background slot name.
	Background string
	// Foreground is the label color slot name.
	Foreground string
}

// DefaultButtonTheme returns the slot names buttons look up by default.
func DefaultButtonTheme() ButtonThemeData {
	return ButtonThemeData{Background: "control", Foreground: "text"}
}

// ResolveColor parses a color value: a named color from the SVG 1.1 set, or
// a #rgb / #rrggbb hex literal.
func ResolveColor(value string) (color.RGBA, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return color.RGBA{}, fmt.Errorf("empty color value")
	}
	if strings.HasPrefix(value, "#") {
		return parseHex(value)
	}
	if c, ok := colornames.Map[value]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color name %q", value)
}

// ParsePalette resolves a name → value mapping into a palette. Unparseable
// entries fail the whole palette; a skin typo should be loud.
func ParsePalette(values map[string]string) (Palette, error) {
	palette := make(Palette, len(values))
	for slot, value := range values {
		c, err := ResolveColor(value)
		if err != nil {
			return nil, fmt.Errorf("skin slot %q: %w", slot, err)
		}
		palette[slot] = c
	}
	return palette, nil
}

// Lookup returns the color for slot and whether it is present.
func (p Palette) Lookup(slot string) (color.RGBA, bool) {
	c, ok := p[slot]
	return c, ok
}

// CSS formats the slot's color as a CSS rgb() literal, or "" when absent.
func (p Palette) CSS(slot string) string {
	c, ok := p[slot]
	if !ok {
		return ""
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func parseHex(value string) (color.RGBA, error) {
	hex := value[1:]
	switch len(hex) {
	case 3:
		r, err1 := hexNibble(hex[0])
		g, err2 := hexNibble(hex[1])
		b, err3 := hexNibble(hex[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", value)
		}
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xff}, nil
	case 6:
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			hi, err1 := hexNibble(hex[2*i])
			lo, err2 := hexNibble(hex[2*i+1])
			if err1 != nil || err2 != nil {
				return color.RGBA{}, fmt.Errorf("invalid hex color %q", value)
			}
			rgb[i] = hi<<4 | lo
		}
		return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", value)
	}
}

func hexNibble(b byte) (uint8, error) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', nil
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", b)
	}
}
