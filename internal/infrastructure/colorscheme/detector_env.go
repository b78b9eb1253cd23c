package colorscheme

import (
	"os"
	"strings"
)

const (
	// EnvGTKTheme is the variable GTK uses to force a theme.
	EnvGTKTheme = "GTK_THEME"

	priorityEnv = 20
)

// EnvDetector detects color scheme from an environment variable holding a
// theme name, GTK_THEME by default. Names containing "dark" mean dark.
type EnvDetector struct {
	variable string
}

// NewEnvDetector creates a detector reading GTK_THEME.
func NewEnvDetector() *EnvDetector {
	return NewEnvDetectorFor(EnvGTKTheme)
}

// NewEnvDetectorFor creates a detector reading the given variable.
func NewEnvDetectorFor(variable string) *EnvDetector {
	return &EnvDetector{variable: variable}
}

// Name implements port.ColorSchemeDetector.
func (d *EnvDetector) Name() string {
	return d.variable
}

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Available implements port.ColorSchemeDetector.
func (d *EnvDetector) Available() bool {
	return os.Getenv(d.variable) != ""
}

// Detect implements port.ColorSchemeDetector.
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	theme := os.Getenv(d.variable)
	if theme == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(theme), "dark"), true
}
