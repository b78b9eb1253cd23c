// Package config loads the branding configuration from a TOML file and
// UX_* environment variables and reports changes as snapshots.
package config

import "time"

// Config is the full application configuration.
type Config struct {
	// Theme is "light", "dark" or "auto".
	Theme string `mapstructure:"theme" toml:"theme" json:"theme,omitempty" jsonschema:"enum=light,enum=dark,enum=auto,description=Theme mode; auto follows the system color scheme"`
	// PrimaryColor is written verbatim to --color-primary.
	PrimaryColor string `mapstructure:"primary_color" toml:"primary_color" json:"primary_color,omitempty" jsonschema:"description=Primary color passed through to --color-primary,example=#262626"`
	// AccentColor is written verbatim to --color-accent.
	AccentColor string `mapstructure:"accent_color" toml:"accent_color" json:"accent_color,omitempty" jsonschema:"description=Accent color passed through to --color-accent,example=#FFF65D"`
	// LogoURL becomes url("...") in --custom-logo-url.
	LogoURL string `mapstructure:"logo_url" toml:"logo_url" json:"logo_url,omitempty" jsonschema:"description=Logo URL exposed as --custom-logo-url"`
	// FontURL points at a woff2 file loaded as the custom font.
	FontURL string `mapstructure:"font_url" toml:"font_url" json:"font_url,omitempty" jsonschema:"description=URL of a woff2 font used as the custom font family"`

	Logging     LoggingConfig     `mapstructure:"logging" toml:"logging" json:"logging"`
	Browser     BrowserConfig     `mapstructure:"browser" toml:"browser" json:"browser"`
	ColorScheme ColorSchemeConfig `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// BrowserConfig holds settings for the live page the watch command drives.
type BrowserConfig struct {
	URL      string `mapstructure:"url" toml:"url" json:"url,omitempty" jsonschema:"description=Page opened by the watch command"`
	Headless bool   `mapstructure:"headless" toml:"headless" json:"headless" jsonschema:"default=false"`
	ExecPath string `mapstructure:"exec_path" toml:"exec_path" json:"exec_path,omitempty" jsonschema:"description=Chromium binary; empty uses the default lookup"`
	// Emulate forces the page's prefers-color-scheme ("dark", "light" or empty).
	Emulate string `mapstructure:"emulate" toml:"emulate" json:"emulate,omitempty" jsonschema:"description=Force prefers-color-scheme to dark or light; empty keeps the browser default"`
}

// ColorSchemeConfig tunes system color scheme detection.
type ColorSchemeConfig struct {
	// PollInterval re-queries detectors that cannot push changes.
	PollInterval time.Duration `mapstructure:"poll_interval" toml:"poll_interval" json:"poll_interval" jsonschema:"type=string,default=5s"`
	// Desktop enables gsettings/macOS/GTK_THEME detectors.
	Desktop bool `mapstructure:"desktop" toml:"desktop" json:"desktop" jsonschema:"default=true"`
}
