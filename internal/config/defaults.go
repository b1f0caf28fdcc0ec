package config

import "github.com/iburimskiy/charro-ambient/internal/field"

const (
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "Charro - Servicios y Consultoría Digital"

	SoundVolume = 0.6

	CellWidth   = 8
	CellHeight  = 16
	TerminalFPS = 30
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Variant: field.VariantGeometric,
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Sound: Sound{
			Enabled: true,
			Volume:  SoundVolume,
		},
		Terminal: Terminal{
			CellWidth:  CellWidth,
			CellHeight: CellHeight,
			FPS:        TerminalFPS,
		},
	}
}
