package colorscheme

import "github.com/bnema/uxtheme/internal/application/port"

// DesktopDetectors returns the detectors that query the host desktop:
// gsettings, macOS defaults and GTK_THEME.
func DesktopDetectors() []port.ColorSchemeDetector {
	return []port.ColorSchemeDetector{
		NewGsettingsDetector(),
		NewDefaultsDetector(),
		NewEnvDetector(),
	}
}

// HasAvailable reports whether any detector in list is available.
func HasAvailable(list []port.ColorSchemeDetector) bool {
	for _, d := range list {
		if d.Available() {
			return true
		}
	}
	return false
}
