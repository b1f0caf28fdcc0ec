package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/iburimskiy/charro-ambient/internal/field"
)

// RunWizard asks for the commonly changed settings, starting from base,
// and returns the resulting Config. base is not modified.
func RunWizard(base *Config) (*Config, error) {
	cfg := *base

	variants := field.Variants()
	variantPrompt := promptui.Select{
		Label:     "Particle field variant",
		Items:     variants,
		CursorPos: indexOf(variants, base.Variant),
	}
	_, v, err := variantPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("variant selection: %w", err)
	}
	cfg.Variant = v

	seedPrompt := promptui.Prompt{
		Label:    "Seed (0 for a new field every run)",
		Default:  strconv.FormatUint(base.Seed, 10),
		Validate: func(s string) error { _, err := parseSeed(s); return err },
	}
	seedStr, err := seedPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	cfg.Seed, _ = parseSeed(seedStr)

	soundPrompt := promptui.Select{
		Label:     "Interface sounds",
		Items:     []string{"on", "off"},
		CursorPos: map[bool]int{true: 0, false: 1}[base.Sound.Enabled],
	}
	_, on, err := soundPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("sound selection: %w", err)
	}
	cfg.Sound.Enabled = on == "on"

	if cfg.Sound.Enabled {
		volumePrompt := promptui.Prompt{
			Label:    "Volume (0 to 1)",
			Default:  strconv.FormatFloat(base.Sound.Volume, 'g', -1, 64),
			Validate: func(s string) error { _, err := parseVolume(s); return err },
		}
		volStr, err := volumePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("volume: %w", err)
		}
		cfg.Sound.Volume, _ = parseVolume(volStr)

		ambientPrompt := promptui.Prompt{
			Label:   "Ambient track (.wav, .mp3 or .flac, blank for none)",
			Default: base.Sound.Ambient,
		}
		ambient, err := ambientPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("ambient track: %w", err)
		}
		cfg.Sound.Ambient = strings.TrimSpace(ambient)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseSeed(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("seed must be a non-negative integer")
	}
	return v, nil
}

func parseVolume(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || v > 1 {
		return 0, fmt.Errorf("volume must be between 0 and 1")
	}
	return v, nil
}

func indexOf(items []string, s string) int {
	for i, it := range items {
		if it == s {
			return i
		}
	}
	return 0
}
