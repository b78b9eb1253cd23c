package config

import (
	"fmt"
	"strings"

	"github.com/bnema/uxtheme/internal/logging"
)

// validateConfig checks the settings this process depends on. Branding values
// are deliberately not validated: they are written to the document as-is.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateBrowser(config)...)
	validationErrors = append(validationErrors, validateColorScheme(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level: %v", err))
	}
	switch config.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be %q or %q (got %q)", logging.FormatConsole, logging.FormatJSON, config.Logging.Format))
	}
	return validationErrors
}

func validateBrowser(config *Config) []string {
	switch config.Browser.Emulate {
	case "", "dark", "light":
		return nil
	default:
		return []string{fmt.Sprintf("browser.emulate must be empty, \"dark\" or \"light\" (got %q)", config.Browser.Emulate)}
	}
}

func validateColorScheme(config *Config) []string {
	if config.ColorScheme.PollInterval < 0 {
		return []string{"color_scheme.poll_interval must be non-negative"}
	}
	return nil
}
