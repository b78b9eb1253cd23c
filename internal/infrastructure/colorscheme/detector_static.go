package colorscheme

const priorityStatic = 1000

// StaticDetector reports a fixed preference. It outranks every other
// detector and backs explicit --scheme overrides.
type StaticDetector struct {
	prefersDark bool
}

// NewStaticDetector creates a detector always answering prefersDark.
func NewStaticDetector(prefersDark bool) *StaticDetector {
	return &StaticDetector{prefersDark: prefersDark}
}

// Name implements port.ColorSchemeDetector.
func (*StaticDetector) Name() string {
	return "static"
}

// Priority implements port.ColorSchemeDetector.
func (*StaticDetector) Priority() int {
	return priorityStatic
}

// Available implements port.ColorSchemeDetector.
func (*StaticDetector) Available() bool {
	return true
}

// Detect implements port.ColorSchemeDetector.
func (d *StaticDetector) Detect() (prefersDark, ok bool) {
	return d.prefersDark, true
}
