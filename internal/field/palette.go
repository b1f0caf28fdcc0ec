package field

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHex reads "#RRGGBB" or "#RRGGBBAA". A missing alpha means opaque.
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("colour %q: want #RRGGBB or #RRGGBBAA", s)
	}

	c, err := colorful.Hex("#" + hex[:6])
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()

	a := uint64(0xff)
	if len(hex) == 8 {
		a, err = strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colour %q alpha: %w", s, err)
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a)}, nil
}

// ParsePalette parses every entry of hexes, failing on the first bad one.
func ParsePalette(hexes []string) ([]color.NRGBA, error) {
	out := make([]color.NRGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func mustPalette(hexes ...string) []color.NRGBA {
	p, err := ParsePalette(hexes)
	if err != nil {
		panic(err)
	}
	return p
}
