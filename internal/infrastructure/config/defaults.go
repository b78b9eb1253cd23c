package config

import (
	"time"

	"github.com/bnema/uxtheme/internal/logging"
)

const (
	defaultPollInterval = 5 * time.Second
	defaultLogLevel     = "info"
)

// DefaultConfig returns the configuration used when no file or env overrides exist.
// Branding values are empty: absent keys leave the document untouched.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: logging.FormatConsole,
		},
		Browser: BrowserConfig{
			Headless: false,
		},
		ColorScheme: ColorSchemeConfig{
			PollInterval: defaultPollInterval,
			Desktop:      true,
		},
	}
}

// setDefaults registers every key with viper so AutomaticEnv can override
// keys absent from the file during Unmarshal.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("theme", defaults.Theme)
	m.viper.SetDefault("primary_color", defaults.PrimaryColor)
	m.viper.SetDefault("accent_color", defaults.AccentColor)
	m.viper.SetDefault("logo_url", defaults.LogoURL)
	m.viper.SetDefault("font_url", defaults.FontURL)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("browser.url", defaults.Browser.URL)
	m.viper.SetDefault("browser.headless", defaults.Browser.Headless)
	m.viper.SetDefault("browser.exec_path", defaults.Browser.ExecPath)
	m.viper.SetDefault("browser.emulate", defaults.Browser.Emulate)

	m.viper.SetDefault("color_scheme.poll_interval", defaults.ColorScheme.PollInterval)
	m.viper.SetDefault("color_scheme.desktop", defaults.ColorScheme.Desktop)
}
