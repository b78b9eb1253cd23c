package colorscheme

import (
	"context"
	"strings"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 50

	gsettingsSchema = "org.gnome.desktop.interface"
	gsettingsKey    = "color-scheme"
)

// GsettingsDetector detects color scheme from GNOME gsettings.
// This is the most reliable method for GNOME-based desktops.
type GsettingsDetector struct {
	run    commandRunner
	lookup commandLookup
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: runCommand, lookup: lookPath}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector.
// Returns true if the gsettings command is available.
func (d *GsettingsDetector) Available() bool {
	return d.lookup("gsettings")
}

// Detect implements port.ColorSchemeDetector.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	output, err := d.run(context.Background(), "gsettings", "get", gsettingsSchema, gsettingsKey)
	if err != nil {
		return false, false
	}
	return parseGsettingsColorScheme(string(output))
}

// parseGsettingsColorScheme interprets a color-scheme value such as
// "'prefer-dark'\n". "default" carries no preference.
func parseGsettingsColorScheme(raw string) (prefersDark, ok bool) {
	value := strings.Trim(strings.TrimSpace(raw), "'\"")
	switch value {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}
