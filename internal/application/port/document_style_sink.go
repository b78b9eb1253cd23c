package port

import (
	"context"

	"github.com/bnema/uxtheme/internal/domain/entity"
)

// DocumentStyleSink abstracts the web document the branding is written to.
// Implementations exist for an in-memory document and a live browser page.
type DocumentStyleSink interface {
	// SetAttribute sets an attribute on the document root element.
	SetAttribute(ctx context.Context, name, value string) error

	// SetProperty sets a custom CSS property on the document root style.
	SetProperty(ctx context.Context, name, value string) error

	// AppendFontFace adds a font-face declaration to the document head.
	// A previous declaration for the same family is replaced.
	AppendFontFace(ctx context.Context, face entity.FontFace) error
}
