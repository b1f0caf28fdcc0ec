package config

// Config is the full application configuration.
type Config struct {
	Variant   string    `koanf:"variant" yaml:"variant" env:"VARIANT"`
	Seed      uint64    `koanf:"seed" yaml:"seed" env:"SEED"`
	Overrides Overrides `koanf:"overrides" yaml:"overrides" envPrefix:"FIELD_"`
	Window    Window    `koanf:"window" yaml:"window" envPrefix:"WINDOW_"`
	Sound     Sound     `koanf:"sound" yaml:"sound" envPrefix:"SOUND_"`
	Terminal  Terminal  `koanf:"terminal" yaml:"terminal" envPrefix:"TERMINAL_"`
}

// Overrides tweak the selected variant. Unset (nil or empty) fields keep
// the preset; a set field wins even when it is zero.
type Overrides struct {
	Density      *int     `koanf:"density" yaml:"density,omitempty" env:"DENSITY"`
	Cap          *int     `koanf:"cap" yaml:"cap,omitempty" env:"CAP"`
	LinkDistance *float64 `koanf:"link_distance" yaml:"link_distance,omitempty" env:"LINK_DISTANCE"`
	Opacity      *float64 `koanf:"opacity" yaml:"opacity,omitempty" env:"OPACITY"`
	Palette      []string `koanf:"palette" yaml:"palette,omitempty" env:"PALETTE" envSeparator:","`
	Kinds        []string `koanf:"kinds" yaml:"kinds,omitempty" env:"KINDS" envSeparator:","`
}

// Window holds the desktop window settings.
type Window struct {
	Width  int    `koanf:"width" yaml:"width" env:"WIDTH"`
	Height int    `koanf:"height" yaml:"height" env:"HEIGHT"`
	Title  string `koanf:"title" yaml:"title" env:"TITLE"`
}

// Sound holds the click and ambient track settings.
type Sound struct {
	Enabled bool    `koanf:"enabled" yaml:"enabled" env:"ENABLED"`
	Ambient string  `koanf:"ambient" yaml:"ambient,omitempty" env:"AMBIENT"`
	Volume  float64 `koanf:"volume" yaml:"volume" env:"VOLUME"`
}

// Terminal holds the tcell backend settings. A cell stands for
// CellWidth x CellHeight field units.
type Terminal struct {
	CellWidth  float64 `koanf:"cell_width" yaml:"cell_width" env:"CELL_WIDTH"`
	CellHeight float64 `koanf:"cell_height" yaml:"cell_height" env:"CELL_HEIGHT"`
	FPS        int     `koanf:"fps" yaml:"fps" env:"FPS"`
}
