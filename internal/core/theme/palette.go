// Package theme resolves the colour palette applied to the dashboard.
package theme

import (
	"strings"

	"weatherdash.app/pkg/errors"
)

// Mode is the base light/dark appearance
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode parses a theme mode, ignoring case
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.IsValid() {
		return "", errors.NewValidationError("theme must be one of: light, dark")
	}
	return mode, nil
}

func (m Mode) IsValid() bool {
	return m == ModeLight || m == ModeDark
}

// Toggle switches light and dark
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// Preset names a fixed palette, or custom for a user override
type Preset string

const (
	PresetNone   Preset = ""
	PresetSunny  Preset = "sunny"
	PresetCloudy Preset = "cloudy"
	PresetRainy  Preset = "rainy"
	PresetCustom Preset = "custom"
)

var presetCycle = []Preset{PresetNone, PresetSunny, PresetCloudy, PresetRainy, PresetCustom}

// ParsePreset parses a preset name. An empty string is PresetNone.
func ParsePreset(s string) (Preset, error) {
	preset := Preset(strings.ToLower(strings.TrimSpace(s)))
	if preset != PresetNone && !preset.IsValid() {
		return "", errors.NewValidationError("theme preset must be one of: sunny, cloudy, rainy, custom")
	}
	return preset, nil
}

// IsValid reports whether p is one of the named presets
func (p Preset) IsValid() bool {
	switch p {
	case PresetSunny, PresetCloudy, PresetRainy, PresetCustom:
		return true
	default:
		return false
	}
}

// Next cycles none -> sunny -> cloudy -> rainy -> custom -> none
func (p Preset) Next() Preset {
	for i, candidate := range presetCycle {
		if candidate == p {
			return presetCycle[(i+1)%len(presetCycle)]
		}
	}
	return PresetNone
}

func (p Preset) String() string {
	if p == PresetNone {
		return "none"
	}
	return string(p)
}

// Palette is the triple of colours applied to the display surface.
// A blank channel means "not set".
type Palette struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Primary    string `json:"primary"`
}

// IsZero reports whether every channel is blank
func (p Palette) IsZero() bool {
	return isBlank(p.Background) && isBlank(p.Foreground) && isBlank(p.Primary)
}

// Complete fills blank channels of p from fallback
func (p Palette) Complete(fallback Palette) Palette {
	return Palette{
		Background: firstSet(p.Background, fallback.Background),
		Foreground: firstSet(p.Foreground, fallback.Foreground),
		Primary:    firstSet(p.Primary, fallback.Primary),
	}
}

// DefaultPalette backs every channel that has no other value
var DefaultPalette = Palette{
	Background: "#e0e5ec",
	Foreground: "#1f2937",
	Primary:    "#3b82f6",
}

var basePalettes = map[Mode]Palette{
	ModeLight: DefaultPalette,
	ModeDark: {
		Background: "#2c3e50",
		Foreground: "#ecf0f1",
		Primary:    "#60a5fa",
	},
}

var presetPalettes = map[Preset]Palette{
	PresetSunny: {
		Background: "#fff4d6",
		Foreground: "#5c3d00",
		Primary:    "#f59e0b",
	},
	PresetCloudy: {
		Background: "#dfe4ea",
		Foreground: "#2f3542",
		Primary:    "#747d8c",
	},
	PresetRainy: {
		Background: "#2f3b52",
		Foreground: "#e3f2fd",
		Primary:    "#4fc3f7",
	},
}

// BasePalette returns the palette of a light or dark mode. Unknown modes
// get the light palette.
func BasePalette(mode Mode) Palette {
	if palette, ok := basePalettes[mode]; ok {
		return palette
	}
	return DefaultPalette
}

// PresetPalette returns the fixed palette of a preset, if it has one
func PresetPalette(preset Preset) (Palette, bool) {
	palette, ok := presetPalettes[preset]
	return palette, ok
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func firstSet(values ...string) string {
	for _, v := range values {
		if !isBlank(v) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
