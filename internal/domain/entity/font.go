package entity

import (
	"fmt"
	"strings"
)

// Branding font constants.
const (
	// CustomFontFamily is the logical family name bound to FONT_URL.
	CustomFontFamily = "CustomFont"
	// FontFallbackChain follows the custom family in the font-family property.
	FontFallbackChain = "'Yellix', -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif"

	fontFormatWOFF2   = "woff2"
	fontWeightRegular = "400"
	fontStyleNormal   = "normal"
	fontDisplaySwap   = "swap"
)

// FontFace describes an @font-face declaration.
type FontFace struct {
	Family  string
	URL     string
	Format  string
	Weight  string
	Style   string
	Display string
}

// NewCustomFontFace returns the declaration for a custom font URL using the
// fixed woff2 / 400 / normal / swap policy.
func NewCustomFontFace(url string) FontFace {
	return FontFace{
		Family:  CustomFontFamily,
		URL:     url,
		Format:  fontFormatWOFF2,
		Weight:  fontWeightRegular,
		Style:   fontStyleNormal,
		Display: fontDisplaySwap,
	}
}

// CSS renders the @font-face block. The URL is written through literally.
func (f FontFace) CSS() string {
	var sb strings.Builder
	sb.WriteString("@font-face {\n")
	fmt.Fprintf(&sb, "  font-family: '%s';\n", f.Family)
	fmt.Fprintf(&sb, "  src: url('%s') format('%s');\n", f.URL, f.Format)
	fmt.Fprintf(&sb, "  font-weight: %s;\n", f.Weight)
	fmt.Fprintf(&sb, "  font-style: %s;\n", f.Style)
	fmt.Fprintf(&sb, "  font-display: %s;\n", f.Display)
	sb.WriteString("}\n")
	return sb.String()
}

// FontFamilyStack returns the font-family value listing family first,
// then the fixed fallback chain.
func FontFamilyStack(family string) string {
	return fmt.Sprintf("'%s', %s", family, FontFallbackChain)
}

// CSSURL wraps a raw URL in a CSS url() reference without escaping it.
func CSSURL(raw string) string {
	return `url("` + raw + `")`
}
