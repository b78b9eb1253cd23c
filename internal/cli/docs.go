package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/uxtheme/internal/domain/entity"
	"github.com/bnema/uxtheme/internal/infrastructure/config"
)

// ConfigEntry documents one branding key.
type ConfigEntry struct {
	Key    entity.Key
	File   string
	Env    string
	Effect string
}

var keyEffects = map[entity.Key]string{
	entity.KeyTheme: fmt.Sprintf("sets the %s attribute: light, dark, or auto to follow the system color scheme; anything else is light",
		entity.ThemeAttribute),
	entity.KeyPrimaryColor: fmt.Sprintf("written verbatim to %s", entity.PropertyPrimaryColor),
	entity.KeyAccentColor:  fmt.Sprintf("written verbatim to %s", entity.PropertyAccentColor),
	entity.KeyLogoURL:      fmt.Sprintf("written to %s as url(\"...\")", entity.PropertyLogoURL),
	entity.KeyFontURL: fmt.Sprintf("loaded as the %s woff2 font; %s becomes %s",
		entity.CustomFontFamily, entity.PropertyFontFamily, entity.FontFamilyStack(entity.CustomFontFamily)),
}

// ConfigReference lists the branding keys in application order.
func ConfigReference() []ConfigEntry {
	entries := make([]ConfigEntry, 0, len(entity.AllKeys))
	for _, k := range entity.AllKeys {
		entries = append(entries, ConfigEntry{
			Key:    k,
			File:   k.ConfigName(),
			Env:    k.EnvName(),
			Effect: keyEffects[k],
		})
	}
	return entries
}

// WriteConfigMarkdown writes the configuration reference with the JSON
// schema appended.
func WriteConfigMarkdown(w io.Writer) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("# uxtheme configuration\n\n")
	sb.WriteString("Keys are read from `uxtheme.toml` and overridden by environment variables. ")
	sb.WriteString("Absent or empty keys leave the document untouched.\n\n")
	sb.WriteString("| File key | Environment | Effect |\n|---|---|---|\n")
	for _, e := range ConfigReference() {
		fmt.Fprintf(&sb, "| `%s` | `%s` | %s |\n", e.File, e.Env, e.Effect)
	}
	sb.WriteString("\n## Schema\n\n```json\n")
	sb.Write(schema)
	sb.WriteString("\n```\n")

	_, err = io.WriteString(w, sb.String())
	return err
}

// WriteConfigMan writes the configuration reference as a section 5 man page.
func WriteConfigMan(w io.Writer, version string, date time.Time) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, ".TH \"UXTHEME.TOML\" \"5\" \"%s\" \"uxtheme %s\" \"uxtheme Manual\"\n", date.Format("Jan 2006"), version)
	sb.WriteString(".SH NAME\nuxtheme.toml \\- branding configuration for uxtheme\n")
	sb.WriteString(".SH DESCRIPTION\nKeys are read from uxtheme.toml and overridden by environment variables.\n")
	sb.WriteString("Absent or empty keys leave the document untouched.\n")
	sb.WriteString(".SH KEYS\n")
	for _, e := range ConfigReference() {
		fmt.Fprintf(&sb, ".TP\n\\fB%s\\fR, \\fB%s\\fR\n%s\n", e.File, e.Env, roffEscape(e.Effect))
	}
	sb.WriteString(".SH SEE ALSO\n\\fBuxtheme\\fR(1)\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func roffEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\e`)
	return strings.ReplaceAll(s, "-", `\-`)
}
