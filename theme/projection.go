package theme

// Palette slots every theme carries.
const (
	SlotHighlight          = "highlight"
	SlotFrames             = "frames"
	SlotLighterBackground  = "lighter-background"
	SlotDarkerBackground   = "darker-background"
	SlotBackgroundContrast = "background-contrast"
)

// Projection is the result of applying a theme: the style variables to write
// into the global scope plus the body-level effect flags.
type Projection struct {
	Variables        map[string]string
	MatrixBackground bool
	Animations       bool
}

// Project maps a theme definition onto style variables. Pure; callers pass
// the effective definition (user toggles already folded in).
func Project(def Definition) Projection {
	vars := make(map[string]string, len(def.Colors)*2+8)

	for slot, value := range def.Colors {
		vars["--color-"+slot] = value
	}

	vars["--highlight"] = def.Colors[SlotHighlight]
	vars["--frames"] = def.Colors[SlotFrames]
	vars["--lighter-background"] = def.Colors[SlotLighterBackground]
	vars["--darker-background"] = def.Colors[SlotDarkerBackground]
	vars["--background-contrast"] = def.Colors[SlotBackgroundContrast]

	// Legacy names kept for existing stylesheets.
	vars["--teal"] = def.Colors[SlotHighlight]
	vars["--seaweed-green"] = def.Colors[SlotFrames]
	vars["--background-primary"] = def.Colors[SlotLighterBackground]
	vars["--background-secondary"] = def.Colors[SlotDarkerBackground]

	if IsLightColor(def.Colors[SlotDarkerBackground]) {
		vars["--text-primary"] = "#000000"
		vars["--text-secondary"] = "#666666"
	} else {
		vars["--text-primary"] = "#e8e8e8"
		vars["--text-secondary"] = "#b8b8b8"
	}
	vars["--border-color"] = def.Colors[SlotFrames]

	return Projection{
		Variables:        vars,
		MatrixBackground: def.Effects.MatrixBackground,
		Animations:       def.Effects.Animations,
	}
}
