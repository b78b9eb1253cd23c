package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/uxtheme/internal/domain/entity"
)

// envPrefix is prepended to every key when read from the environment
// (theme -> UX_THEME, logging.level -> UX_LOGGING_LEVEL).
const envPrefix = "UX"

// ErrNotLoaded is returned when the configuration is read before Load.
var ErrNotLoaded = errors.New("configuration not loaded")

// Options configures where the Manager looks for its file.
type Options struct {
	// ConfigFile is an explicit path. When set, the file must exist.
	ConfigFile string
	// SearchDirs replaces the default search path (XDG config dir, then ".").
	SearchDirs []string
}

// Manager handles configuration loading, watching, and reloading.
// It implements port.ConfigSource.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []*snapshotCallback
	watching  bool
}

// snapshotCallback wraps a callback to enable pointer comparison for removal.
type snapshotCallback struct {
	fn func(entity.ConfigSnapshot)
}

// NewManager creates a new configuration manager.
func NewManager(opts Options) (*Manager, error) {
	v := viper.New()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)

		dirs := opts.SearchDirs
		if len(dirs) == 0 {
			configDir, err := GetConfigDir()
			if err != nil {
				return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
			}
			dirs = []string{configDir, "."}
		}
		for _, dir := range dirs {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names for logging, matching the logger's own variables.
	if err := v.BindEnv("logging.level", "UX_LOG_LEVEL", "UX_LOGGING_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind UX_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "UX_LOG_FORMAT", "UX_LOGGING_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind UX_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file in the search path is not an error: environment-only
// configuration is valid.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.reload()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

// reload unmarshals, normalizes and validates the current viper state.
// Must be called with m.mu held for write. On failure the previous
// configuration stays in place.
func (m *Manager) reload() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func normalizeConfig(config *Config) {
	config.PrimaryColor = strings.TrimSpace(config.PrimaryColor)
	config.AccentColor = strings.TrimSpace(config.AccentColor)
	config.LogoURL = strings.TrimSpace(config.LogoURL)
	config.FontURL = strings.TrimSpace(config.FontURL)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Browser.Emulate = strings.ToLower(strings.TrimSpace(config.Browser.Emulate))
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() (*Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return nil, ErrNotLoaded
	}
	configCopy := *m.config
	return &configCopy, nil
}

// ConfigFileUsed returns the path of the file read, or "" when running on
// environment variables only.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// Snapshot implements port.ConfigSource.
func (m *Manager) Snapshot() entity.ConfigSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return snapshotOf(m.config)
}

// snapshotOf maps a configuration to a branding snapshot. A nil
// configuration is not ready.
func snapshotOf(config *Config) entity.ConfigSnapshot {
	if config == nil {
		return entity.ConfigSnapshot{}
	}
	return entity.NewConfigSnapshot(config.BrandingValues())
}

// BrandingValues returns the branding keys of the configuration.
func (c *Config) BrandingValues() entity.Values {
	return entity.Values{
		entity.KeyTheme:        c.Theme,
		entity.KeyPrimaryColor: c.PrimaryColor,
		entity.KeyAccentColor:  c.AccentColor,
		entity.KeyLogoURL:      c.LogoURL,
		entity.KeyFontURL:      c.FontURL,
	}
}
