package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/iburimskiy/charro-ambient/internal/field"
)

// EnvPrefix prefixes every environment override, e.g. CHARRO_VARIANT.
const EnvPrefix = "CHARRO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CHARRO_*). A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
			if err := k.Unmarshal("", cfg); err != nil {
				return nil, fmt.Errorf("unmarshalling config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if _, err := c.Field(); err != nil {
		return err
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("sound.volume %g out of [0, 1]", c.Sound.Volume)
	}

	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size must be positive")
	}
	if c.Terminal.FPS <= 0 {
		return fmt.Errorf("terminal.fps must be positive, got %d", c.Terminal.FPS)
	}

	return nil
}

// Field resolves the named variant and applies the overrides that are set.
func (c *Config) Field() (field.Config, error) {
	fc, err := field.Preset(c.Variant)
	if err != nil {
		return field.Config{}, err
	}

	o := c.Overrides
	if o.Density != nil {
		fc.Density = *o.Density
	}
	if o.Cap != nil {
		fc.Cap = *o.Cap
	}
	if o.LinkDistance != nil {
		fc.LinkDistance = *o.LinkDistance
	}
	if o.Opacity != nil {
		fc.Opacity = *o.Opacity
	}
	if len(o.Palette) > 0 {
		p, err := field.ParsePalette(o.Palette)
		if err != nil {
			return field.Config{}, fmt.Errorf("overrides.palette: %w", err)
		}
		fc.Palette = p
	}
	if len(o.Kinds) > 0 {
		kinds := make([]field.Kind, 0, len(o.Kinds))
		for _, name := range o.Kinds {
			k, err := field.ParseKind(name)
			if err != nil {
				return field.Config{}, fmt.Errorf("overrides.kinds: %w", err)
			}
			kinds = append(kinds, k)
		}
		fc.Kinds = kinds
	}

	if err := fc.Validate(); err != nil {
		return field.Config{}, fmt.Errorf("variant %s: %w", c.Variant, err)
	}
	return fc, nil
}
