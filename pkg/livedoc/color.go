package livedoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a hex color literal into packed ARGB. Alpha defaults to
// ff when the literal does not carry it.
func ParseColor(s string) (uint32, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("color %q: missing #", s)
	}
	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		for _, c := range hex {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		hex = b.String()
	case 6, 8:
	default:
		return 0, fmt.Errorf("color %q: want 3, 4, 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return 0xff000000 | uint32(v), nil
	}
	rgba := uint32(v)
	return rgba<<24 | rgba>>8, nil
}

// NamedColor returns the packed ARGB value of an SVG 1.1 color name.
func NamedColor(name string) (uint32, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return 0, false
	}
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B), true
}

// FormatColor renders packed ARGB as "#rrggbbaa".
func FormatColor(argb uint32) string {
	return fmt.Sprintf("#%06x%02x", argb&0xffffff, argb>>24)
}

func isColorLiteral(s string) bool {
	if len(s) < 4 || s[0] != '#' {
		return false
	}
	_, err := ParseColor(s)
	return err == nil
}
