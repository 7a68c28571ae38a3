// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an RGBA colour written as "#RRGGBB" or "#RRGGBBAA" in definition files.
type Color color.RGBA

// RGBA returns the colour as the standard library type.
func (c Color) RGBA() color.RGBA {
	return color.RGBA(c)
}

// UnmarshalYAML parses the hex notation.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	parsed, err := ParseHexColor(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the colour back in hex notation.
func (c Color) MarshalYAML() (interface{}, error) {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}

// ParseHexColor accepts "#RRGGBB" and "#RRGGBBAA".
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var c Color
	switch len(s) {
	case 6:
		c.A = 0xff
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	default:
		return Color{}, fmt.Errorf("invalid color %q: expected #RRGGBB or #RRGGBBAA", s)
	}
	return c, nil
}
