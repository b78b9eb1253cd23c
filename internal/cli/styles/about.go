package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/uxtheme/internal/domain/build"
	"github.com/bnema/uxtheme/internal/domain/entity"
)

// DetectorStatus is one system color scheme source and whether this host has it.
type DetectorStatus struct {
	Name      string
	Available bool
}

// AboutView is everything the about screen shows.
type AboutView struct {
	Build      build.Info
	ConfigFile string
	Theme      entity.ThemeSetting
	Detectors  []DetectorStatus
}

// AboutRenderer renders the about screen: a sun/moon mark next to build,
// configuration and detector details.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders v.
func (r *AboutRenderer) Render(v AboutView) string {
	mark := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render("▄███▄\n███░░\n███░░\n▀███▀")

	sections := []string{
		r.section("Build",
			r.row(IconVersion, "Version", v.Build.Version),
			r.row(IconGitBranch, "Commit", v.Build.Commit),
			r.row(IconCalendar, "Built", v.Build.BuildDate),
			r.row(IconGo, "Go", v.Build.GoVersion),
		),
		r.section("Configuration",
			r.row(IconConfig, "File", orNone(v.ConfigFile, "none (defaults and UX_* environment)")),
			r.row(themeIcon(v.Theme), "Theme", orNone(string(v.Theme), "unset")),
		),
		r.section("Color scheme detectors", r.detectorRows(v.Detectors)...),
		r.theme.Subtle.Render(IconGithub + " " + build.RepoURL()),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, mark, "   ", strings.Join(sections, "\n\n"))
}

func (r *AboutRenderer) section(title string, rows ...string) string {
	return r.theme.Subtitle.Render(title) + "\n" + strings.Join(rows, "\n")
}

func (r *AboutRenderer) row(icon, key, value string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return iconStyle.Render(icon) + " " + r.theme.Subtle.Width(8).Render(key) + r.theme.Highlight.Render(value)
}

func (r *AboutRenderer) detectorRows(detectors []DetectorStatus) []string {
	if len(detectors) == 0 {
		return []string{r.theme.Subtle.Render("disabled")}
	}
	rows := make([]string, 0, len(detectors))
	for _, d := range detectors {
		if d.Available {
			rows = append(rows, r.theme.SuccessStyle.Render(IconCheck)+" "+r.theme.Normal.Render(d.Name))
			continue
		}
		rows = append(rows, r.theme.ErrorStyle.Render(IconCross)+" "+r.theme.Subtle.Render(d.Name+" (unavailable)"))
	}
	return rows
}

func themeIcon(s entity.ThemeSetting) string {
	switch s {
	case entity.ThemeDark:
		return IconMoon
	case entity.ThemeLight:
		return IconSun
	default:
		return IconPalette
	}
}

func orNone(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
