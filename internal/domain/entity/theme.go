package entity

// ThemeSetting is the configured theme preference.
type ThemeSetting string

// Theme settings accepted in the THEME key.
const (
	ThemeLight ThemeSetting = "light"
	ThemeDark  ThemeSetting = "dark"
	ThemeAuto  ThemeSetting = "auto"
)

// ParseThemeSetting maps a raw THEME value to a setting. Matching is exact;
// absent or unrecognized values, including other casings, fall back to light.
func ParseThemeSetting(raw string) ThemeSetting {
	switch ThemeSetting(raw) {
	case ThemeDark:
		return ThemeDark
	case ThemeAuto:
		return ThemeAuto
	default:
		return ThemeLight
	}
}

// ResolvedMode is the concrete light/dark decision applied to the document.
type ResolvedMode string

// Resolved modes.
const (
	ModeLight ResolvedMode = "light"
	ModeDark  ResolvedMode = "dark"
)

// ModeFromPreference maps a dark-mode preference to a mode.
func ModeFromPreference(prefersDark bool) ResolvedMode {
	if prefersDark {
		return ModeDark
	}
	return ModeLight
}

// IsDark reports whether the mode is dark.
func (m ResolvedMode) IsDark() bool {
	return m == ModeDark
}

func (m ResolvedMode) String() string {
	return string(m)
}

// ThemeAttribute is the document root attribute carrying the resolved mode.
const ThemeAttribute = "data-theme"
