package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/uxtheme/internal/domain/entity"
)

// InspectView is what the inspect command shows.
type InspectView struct {
	ConfigFile string
	Setting    entity.ThemeSetting
	Mode       entity.ResolvedMode
	// Source names the detector that decided the mode in auto; empty when
	// the mode did not come from a detector.
	Source string
	Values entity.Values
}

// InspectRenderer renders the resolved branding configuration.
type InspectRenderer struct {
	theme *Theme
}

// NewInspectRenderer creates a new inspect renderer.
func NewInspectRenderer(theme *Theme) *InspectRenderer {
	return &InspectRenderer{theme: theme}
}

// Render renders v as a boxed summary.
func (r *InspectRenderer) Render(v InspectView) string {
	header := r.theme.BoxHeader.Render("Branding")

	lines := []string{
		r.row(IconConfig, "Config", r.configFile(v.ConfigFile)),
		r.row(r.modeIcon(v.Mode), "Theme", r.mode(v)),
		"",
		r.row(IconPalette, "Primary", r.color(v.Values, entity.KeyPrimaryColor)),
		r.row(IconPalette, "Accent", r.color(v.Values, entity.KeyAccentColor)),
		r.row(IconImage, "Logo", r.plain(v.Values, entity.KeyLogoURL)),
		r.row(IconFont, "Font", r.plain(v.Values, entity.KeyFontURL)),
	}

	body := lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n"))
	return r.theme.Box.Render(body)
}

// RenderError renders an error line.
func (r *InspectRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render("Error: " + err.Error())
}

func (r *InspectRenderer) row(icon, label, value string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle.Width(8)
	return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(label), value)
}

func (r *InspectRenderer) configFile(path string) string {
	if path == "" {
		return r.theme.Subtle.Render("environment only")
	}
	return r.theme.Normal.Render(path)
}

func (r *InspectRenderer) mode(v InspectView) string {
	out := r.theme.Badge.Render(v.Mode.String())
	if v.Setting == entity.ThemeAuto {
		source := v.Source
		if source == "" {
			source = "no detector, default"
		}
		out += " " + r.theme.Subtle.Render(fmt.Sprintf("auto via %s", source))
	}
	return out
}

func (r *InspectRenderer) modeIcon(mode entity.ResolvedMode) string {
	if mode.IsDark() {
		return IconMoon
	}
	return IconSun
}

func (r *InspectRenderer) color(values entity.Values, key entity.Key) string {
	v, ok := values.Value(key)
	if !ok {
		return r.unset()
	}
	return r.theme.Swatch(v)
}

func (r *InspectRenderer) plain(values entity.Values, key entity.Key) string {
	v, ok := values.Value(key)
	if !ok {
		return r.unset()
	}
	return r.theme.Normal.Render(v)
}

func (r *InspectRenderer) unset() string {
	return r.theme.Subtle.Render("unset")
}
