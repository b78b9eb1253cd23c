package port

// ColorSchemePreference represents the resolved system color scheme preference.
type ColorSchemePreference struct {
	// PrefersDark indicates whether dark mode is preferred.
	PrefersDark bool

	// Source identifies which detector provided this preference.
	// Empty string means no detector answered and the fallback was used.
	Source string
}

// Detected reports whether a detector actually provided the preference.
func (p ColorSchemePreference) Detected() bool {
	return p.Source != ""
}

// ColorSchemeDetector detects the system's color scheme preference.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	// Recommended ranges:
	//   - 1000: Explicit overrides (static detector)
	//   - 100+: Live page detectors (browser matchMedia)
	//   -  50+: Desktop settings (gsettings, macOS defaults)
	//   -  10+: Fallback detectors (env vars)
	Priority() int

	// Available returns true if this detector can be used.
	// For example, the page detector returns false before a page is attached.
	Available() bool

	// Detect returns the detected preference and whether detection succeeded.
	// Returns (preference, true) on success, (_, false) if unavailable or detection failed.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeResolver resolves the effective system color scheme preference.
// It is the notifier the theme resolver subscribes to while THEME is "auto".
type ColorSchemeResolver interface {
	// Resolve returns the current color scheme preference.
	// It queries detectors by priority. If all detectors fail, the
	// returned preference is light with an empty Source.
	Resolve() ColorSchemePreference

	// RegisterDetector adds a detector to the resolver.
	// Safe to call at any time; the resolver re-evaluates on next Resolve().
	RegisterDetector(detector ColorSchemeDetector)

	// Refresh forces re-evaluation of the color scheme.
	// Call this when a detector reports that system preferences changed.
	// Returns the new preference.
	Refresh() ColorSchemePreference

	// OnChange registers a callback for color scheme changes.
	// The callback is invoked when Refresh() results in a different preference.
	// Returns a function to unregister the callback.
	OnChange(callback func(ColorSchemePreference)) func()
}
