package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uxtheme.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCSS_AutoWithForcedScheme(t *testing.T) {
	path := writeConfig(t, `
theme = "auto"
primary_color = "#262626"
accent_color = "#FFF65D"
logo_url = "https://example.com/logo.svg"
font_url = "https://example.com/f.woff2"
`)

	out := execute(t, "css", "-c", path, "--scheme", "dark")

	assert.Contains(t, out, `data-theme="dark"`)
	assert.Contains(t, out, "--color-primary: #262626;")
	assert.Contains(t, out, "--color-accent: #FFF65D;")
	assert.Contains(t, out, `--custom-logo-url: url("https://example.com/logo.svg");`)
	assert.Contains(t, out, "--font-family: 'CustomFont', 'Yellix'")
	assert.Contains(t, out, "@font-face {")

	out = execute(t, "css", "-c", path, "--scheme", "light")
	assert.Contains(t, out, `data-theme="light"`)
}

func TestCSS_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `theme = "light"`)
	t.Setenv("UX_THEME", "dark")

	out := execute(t, "css", "-c", path, "--scheme", "light")

	assert.Contains(t, out, `data-theme="dark"`)
	assert.NotContains(t, out, "--color-primary")
}

func TestCSS_UnknownScheme(t *testing.T) {
	path := writeConfig(t, `theme = "auto"`)

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"css", "-c", path, "--scheme", "sepia"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		cssScheme = "system"
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sepia")
}

func TestInspect(t *testing.T) {
	path := writeConfig(t, `
theme = "dark"
accent_color = "#FFF65D"
`)

	out := execute(t, "inspect", "-c", path, "--scheme", "light")

	assert.Contains(t, out, "uxtheme.toml")
	assert.Contains(t, out, "dark")
	assert.Contains(t, out, "#FFF65D")
}

func TestSchema(t *testing.T) {
	out := execute(t, "schema")

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Contains(t, out, "accent_color")
}

func TestGenDocs_Markdown(t *testing.T) {
	dir := t.TempDir()
	layout, err := resolveDocLayout("markdown", dir)
	require.NoError(t, err)

	written, err := generateDocs("markdown", layout)
	require.NoError(t, err)

	assert.Contains(t, written, filepath.Join(dir, "uxtheme.md"))
	assert.Contains(t, written, filepath.Join(dir, "uxtheme_css.md"))
	configPage := filepath.Join(dir, "uxtheme-config.md")
	assert.Contains(t, written, configPage)

	data, err := os.ReadFile(configPage)
	require.NoError(t, err)
	assert.Contains(t, string(data), "`UX_LOGO_URL`")
}

func TestGenDocs_DefaultManLayout(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	layout, err := resolveDocLayout("man", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "man", "man1"), layout.commandDir)
	assert.Equal(t, filepath.Join("/data", "man", "man5", "uxtheme.toml.5"), layout.configPath)

	_, err = resolveDocLayout("html", "")
	assert.Error(t, err)
}

func TestAbout_ShowsConfigFile(t *testing.T) {
	path := writeConfig(t, `
theme = "auto"

[color_scheme]
desktop = false
`)

	out := execute(t, "about", "-c", path)

	assert.Contains(t, out, "uxtheme.toml")
	assert.Contains(t, out, "auto")
	assert.Contains(t, out, "disabled")
}
