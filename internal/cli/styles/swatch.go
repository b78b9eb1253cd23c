package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// luminanceThreshold splits backgrounds needing dark text from those
// needing light text (WCAG relative luminance).
const luminanceThreshold = 0.179

// ContrastText returns "#000000" or "#ffffff", whichever reads better on
// background. Unparseable colors get black.
func ContrastText(background string) string {
	c, err := colorful.Hex(background)
	if err != nil {
		return "#000000"
	}
	r, g, b := c.Clamped().LinearRgb()
	if 0.2126*r+0.7152*g+0.0722*b > luminanceThreshold {
		return "#000000"
	}
	return "#ffffff"
}

// Swatch renders value as a colored block labelled with the value itself.
// Values that are not hex colors are rendered plain, marked as unpreviewable;
// they are still written to the document verbatim.
func (t *Theme) Swatch(value string) string {
	c, err := colorful.Hex(value)
	if err != nil {
		return t.Normal.Render(value) + " " + t.Subtle.Render("(no preview)")
	}
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(ContrastText(value))).
		Padding(0, 2).
		Render(value)
	return block
}
