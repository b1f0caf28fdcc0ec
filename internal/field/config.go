package field

import (
	"fmt"
	"image/color"
	"sort"
)

// Config describes one visual variant of the particle field.
type Config struct {
	// Density is the viewport width, in pixels, per particle.
	Density int
	// Cap bounds the particle count and with it the cost of the
	// connection pass.
	Cap int

	Kinds   []Kind
	Palette []color.NRGBA

	SizeMin  float64
	SizeMax  float64
	MaxSpeed float64
	MaxSpin  float64
	// Opacity is applied to every shape on top of its palette alpha.
	Opacity float64

	LinkDistance float64
	LinkAlpha    float64
	LinkColor    color.NRGBA
	LinkWidth    float64
}

const (
	VariantGeometric = "geometric"
	VariantDots      = "dots"
)

// Geometric is the landing page variant: mixed rotating shapes in the
// brand blues, joined by a faint web.
func Geometric() Config {
	return Config{
		Density: 10,
		Cap:     120,
		Kinds:   []Kind{Circle, Square, Triangle},
		Palette: mustPalette(
			"#FFFFFF80",
			"#E6F3F780",
			"#C8E6F080",
			"#A9D9E980",
			"#8ACCDF80",
			"#6CBFD680",
			"#4DB3CC80",
			"#10728B80",
		),
		SizeMin:      3,
		SizeMax:      11,
		MaxSpeed:     0.4,
		MaxSpin:      0.01,
		Opacity:      0.8,
		LinkDistance: 180,
		LinkAlpha:    0.2,
		LinkColor:    color.NRGBA{R: 0x10, G: 0x72, B: 0x8b, A: 0x40},
		LinkWidth:    0.5,
	}
}

// Dots is the denser, circles-only variant.
func Dots() Config {
	return Config{
		Density: 8,
		Cap:     150,
		Kinds:   []Kind{Circle},
		Palette: mustPalette(
			"#FFFFFF99",
			"#8ACCDF99",
			"#4DB3CC99",
			"#10728B99",
		),
		SizeMin:      1,
		SizeMax:      5,
		MaxSpeed:     0.5,
		Opacity:      0.9,
		LinkDistance: 150,
		LinkAlpha:    0.3,
		LinkColor:    color.NRGBA{R: 0x10, G: 0x72, B: 0x8b, A: 0xff},
		LinkWidth:    1,
	}
}

var presets = map[string]func() Config{
	VariantGeometric: Geometric,
	VariantDots:      Dots,
}

// Preset returns the named variant.
func Preset(name string) (Config, error) {
	fn, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown variant %q: must be one of %v", name, Variants())
	}
	return fn(), nil
}

// Variants lists the preset names in sorted order.
func Variants() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count is the number of particles spawned for a viewport width.
func (c Config) Count(viewportWidth int) int {
	if c.Density <= 0 || viewportWidth <= 0 {
		return 0
	}
	return min(viewportWidth/c.Density, c.Cap)
}

// Validate rejects configs that would spawn nothing drawable.
func (c Config) Validate() error {
	switch {
	case c.Density <= 0:
		return fmt.Errorf("density must be positive, got %d", c.Density)
	case c.Cap < 0:
		return fmt.Errorf("cap must be non-negative, got %d", c.Cap)
	case len(c.Kinds) == 0:
		return fmt.Errorf("at least one shape kind is required")
	case len(c.Palette) == 0:
		return fmt.Errorf("palette is empty")
	case c.SizeMin <= 0 || c.SizeMax < c.SizeMin:
		return fmt.Errorf("size range [%g, %g) is invalid", c.SizeMin, c.SizeMax)
	case c.MaxSpeed < 0 || c.MaxSpin < 0:
		return fmt.Errorf("speeds must be non-negative")
	case c.Opacity < 0 || c.Opacity > 1:
		return fmt.Errorf("opacity %g out of [0, 1]", c.Opacity)
	case c.LinkDistance < 0:
		return fmt.Errorf("link distance must be non-negative, got %g", c.LinkDistance)
	case c.LinkAlpha < 0 || c.LinkAlpha > 1:
		return fmt.Errorf("link alpha %g out of [0, 1]", c.LinkAlpha)
	}
	return nil
}
