package colorscheme

import (
	"context"
	"runtime"
	"strings"
)

const (
	detectorNameDefaults = "macos-defaults"
	priorityDefaults     = 50
)

// DefaultsDetector reads AppleInterfaceStyle through the macOS defaults tool.
// The key only exists while dark mode is on.
type DefaultsDetector struct {
	goos   string
	run    commandRunner
	lookup commandLookup
}

// NewDefaultsDetector creates a macOS defaults-based detector.
func NewDefaultsDetector() *DefaultsDetector {
	return &DefaultsDetector{goos: runtime.GOOS, run: runCommand, lookup: lookPath}
}

// Name implements port.ColorSchemeDetector.
func (*DefaultsDetector) Name() string {
	return detectorNameDefaults
}

// Priority implements port.ColorSchemeDetector.
func (*DefaultsDetector) Priority() int {
	return priorityDefaults
}

// Available implements port.ColorSchemeDetector.
func (d *DefaultsDetector) Available() bool {
	return d.goos == "darwin" && d.lookup("defaults")
}

// Detect implements port.ColorSchemeDetector.
func (d *DefaultsDetector) Detect() (prefersDark, ok bool) {
	output, err := d.run(context.Background(), "defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		// Missing key means light mode.
		return false, true
	}
	return strings.TrimSpace(string(output)) == "Dark", true
}
