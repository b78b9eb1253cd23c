package entity

import "strings"

// Key identifies one branding configuration value.
type Key string

// Recognized branding keys.
const (
	KeyTheme        Key = "THEME"
	KeyPrimaryColor Key = "PRIMARY_COLOR"
	KeyAccentColor  Key = "ACCENT_COLOR"
	KeyLogoURL      Key = "LOGO_URL"
	KeyFontURL      Key = "FONT_URL"
)

// keyEnvPrefix is the prefix the keys carry when supplied as environment variables.
const keyEnvPrefix = "UX_"

// AllKeys lists every recognized key in application order.
var AllKeys = []Key{KeyTheme, KeyPrimaryColor, KeyAccentColor, KeyLogoURL, KeyFontURL}

// ParseKey maps a raw name to a Key.
// Accepts "THEME", "theme" and "UX_THEME" forms.
func ParseKey(raw string) (Key, bool) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	name = strings.TrimPrefix(name, keyEnvPrefix)
	for _, k := range AllKeys {
		if string(k) == name {
			return k, true
		}
	}
	return "", false
}

// EnvName returns the environment variable name for the key (e.g. UX_THEME).
func (k Key) EnvName() string {
	return keyEnvPrefix + string(k)
}

// ConfigName returns the key as written in the config file (e.g. accent_color).
func (k Key) ConfigName() string {
	return strings.ToLower(string(k))
}

// Values maps branding keys to their raw, unvalidated strings.
type Values map[Key]string

// ConfigSnapshot is a point-in-time branding configuration.
// A new snapshot supersedes the previous one entirely.
type ConfigSnapshot struct {
	Ready  bool
	Values Values
}

// NewConfigSnapshot builds a ready snapshot, copying values so the caller
// cannot mutate it afterwards. Empty strings are dropped.
func NewConfigSnapshot(values Values) ConfigSnapshot {
	copied := make(Values, len(values))
	for k, v := range values {
		if v == "" {
			continue
		}
		copied[k] = v
	}
	return ConfigSnapshot{Ready: true, Values: copied}
}

// Value returns the value for key and whether it is present.
// An empty string counts as absent.
func (s ConfigSnapshot) Value(key Key) (string, bool) {
	v, ok := s.Values[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Value returns the value for key and whether it is present.
func (v Values) Value(key Key) (string, bool) {
	s, ok := v[key]
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Equal reports whether both snapshots carry the same readiness and values.
func (s ConfigSnapshot) Equal(other ConfigSnapshot) bool {
	if s.Ready != other.Ready || len(s.Values) != len(other.Values) {
		return false
	}
	for k, v := range s.Values {
		if ov, ok := other.Values[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Custom properties written on the document root.
const (
	PropertyPrimaryColor = "--color-primary"
	PropertyAccentColor  = "--color-accent"
	PropertyLogoURL      = "--custom-logo-url"
	PropertyFontFamily   = "--font-family"
)
