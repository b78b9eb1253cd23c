package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uxtheme/internal/application/port"
	"github.com/bnema/uxtheme/internal/domain/entity"
)

var _ port.ConfigSource = (*Manager)(nil)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "uxtheme.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestManager_SnapshotNotReadyBeforeLoad(t *testing.T) {
	mgr, err := NewManager(Options{SearchDirs: []string{t.TempDir()}})
	require.NoError(t, err)

	assert.False(t, mgr.Snapshot().Ready)
	_, err = mgr.Get()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestManager_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
theme = " Auto "
primary_color = "#262626"
accent_color = "#FFF65D"
logo_url = "https://example.com/logo.svg"
font_url = "https://example.com/f.woff2"

[logging]
level = "debug"
format = "json"

[color_scheme]
poll_interval = "2s"
`)

	mgr, err := NewManager(Options{SearchDirs: []string{dir}})
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	snap := mgr.Snapshot()
	require.True(t, snap.Ready)
	assert.Equal(t, entity.Values{
		entity.KeyTheme:        "auto",
		entity.KeyPrimaryColor: "#262626",
		entity.KeyAccentColor:  "#FFF65D",
		entity.KeyLogoURL:      "https://example.com/logo.svg",
		entity.KeyFontURL:      "https://example.com/f.woff2",
	}, snap.Values)

	cfg, err := mgr.Get()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 2*time.Second, cfg.ColorScheme.PollInterval)
	assert.True(t, cfg.ColorScheme.Desktop)
	assert.Equal(t, filepath.Join(dir, "uxtheme.toml"), mgr.ConfigFileUsed())
}

func TestManager_EnvOnly(t *testing.T) {
	t.Setenv("UX_ACCENT_COLOR", "#FFF65D")
	t.Setenv("UX_LOG_LEVEL", "warn")

	mgr, err := NewManager(Options{SearchDirs: []string{t.TempDir()}})
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	snap := mgr.Snapshot()
	assert.True(t, snap.Ready)
	assert.Equal(t, entity.Values{entity.KeyAccentColor: "#FFF65D"}, snap.Values)
	assert.Empty(t, mgr.ConfigFileUsed())

	cfg, err := mgr.Get()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManager_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `theme = "light"`)
	t.Setenv("UX_THEME", "dark")

	mgr, err := NewManager(Options{SearchDirs: []string{dir}})
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	v, ok := mgr.Snapshot().Value(entity.KeyTheme)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestManager_ExplicitMissingFile(t *testing.T) {
	mgr, err := NewManager(Options{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, err)

	assert.Error(t, mgr.Load())
	assert.False(t, mgr.Snapshot().Ready)
}

func TestManager_ValidationRejectsBadLogging(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[logging]\nformat = \"xml\"\n")

	mgr, err := NewManager(Options{SearchDirs: []string{dir}})
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestManager_BrandingIsNotValidated(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
theme = "neon"
primary_color = "definitely not a color"
`)

	mgr, err := NewManager(Options{SearchDirs: []string{dir}})
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	snap := mgr.Snapshot()
	assert.Equal(t, "neon", snap.Values[entity.KeyTheme])
	assert.Equal(t, "definitely not a color", snap.Values[entity.KeyPrimaryColor])
}

func TestManager_ThemeCaseIsKept(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `theme = "Dark"`)

	mgr, err := NewManager(Options{SearchDirs: []string{dir}})
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	v, _ := mgr.Snapshot().Value(entity.KeyTheme)
	assert.Equal(t, "Dark", v)
	assert.Equal(t, entity.ThemeLight, entity.ParseThemeSetting(v))
}

func TestManager_ConfigChangeNotifies(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := writeConfig(t, dir, `theme = "light"`)

	mgr, err := NewManager(Options{SearchDirs: []string{dir}})
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []entity.ConfigSnapshot
	unregister := mgr.OnSnapshot(func(s entity.ConfigSnapshot) { got = append(got, s) })

	writeConfig(t, dir, "theme = \"auto\"\naccent_color = \"#FFF65D\"\n")
	mgr.handleConfigChange(ctx, fsnotify.Event{Name: path, Op: fsnotify.Write})

	require.Len(t, got, 1)
	assert.Equal(t, "auto", got[0].Values[entity.KeyTheme])
	assert.Equal(t, "#FFF65D", got[0].Values[entity.KeyAccentColor])

	// Same content: no notification.
	mgr.handleConfigChange(ctx, fsnotify.Event{Name: path, Op: fsnotify.Write})
	assert.Len(t, got, 1)

	// Broken file keeps the previous snapshot and stays silent.
	writeConfig(t, dir, "theme = [unterminated")
	mgr.handleConfigChange(ctx, fsnotify.Event{Name: path, Op: fsnotify.Write})
	assert.Len(t, got, 1)
	assert.Equal(t, "auto", mgr.Snapshot().Values[entity.KeyTheme])

	unregister()
	writeConfig(t, dir, `theme = "dark"`)
	mgr.handleConfigChange(ctx, fsnotify.Event{Name: path, Op: fsnotify.Write})
	assert.Len(t, got, 1)
	assert.Equal(t, "dark", mgr.Snapshot().Values[entity.KeyTheme])
}

func TestManager_WatchWithoutFileIsNoop(t *testing.T) {
	mgr, err := NewManager(Options{SearchDirs: []string{t.TempDir()}})
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.NoError(t, mgr.Watch(context.Background()))
	assert.False(t, mgr.watching)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	schema := string(data)
	assert.Contains(t, schema, `"accent_color"`)
	assert.Contains(t, schema, `"auto"`)
	assert.Contains(t, schema, "uxtheme configuration")
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/uxtheme", dir)
}

func TestGetManDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/share")

	dir, err := GetManDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/share/man/man1", dir)
}
