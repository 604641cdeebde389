package theme

// Resolve maps a preset and an optional custom override to the palette to
// apply. Fixed presets return their palette. For custom, each channel falls
// back from the override to the current value to DefaultPalette. Anything
// else keeps the current palette, completed from DefaultPalette. Resolve is
// total and idempotent.
func Resolve(preset Preset, custom Palette, current Palette) Palette {
	if palette, ok := PresetPalette(preset); ok {
		return palette
	}

	if preset == PresetCustom {
		return Palette{
			Background: firstSet(custom.Background, current.Background, DefaultPalette.Background),
			Foreground: firstSet(custom.Foreground, current.Foreground, DefaultPalette.Foreground),
			Primary:    firstSet(custom.Primary, current.Primary, DefaultPalette.Primary),
		}
	}

	return current.Complete(DefaultPalette)
}

// ResolveForMode resolves against the base palette of mode, used when no
// palette has been applied yet.
func ResolveForMode(mode Mode, preset Preset, custom Palette) Palette {
	return Resolve(preset, custom, BasePalette(mode))
}
