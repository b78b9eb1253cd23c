package usecase

import (
	"context"

	"github.com/bnema/uxtheme/internal/application/port"
	"github.com/bnema/uxtheme/internal/domain/entity"
	"github.com/bnema/uxtheme/internal/logging"
)

// ApplyBrandingUseCase writes colors, logo and font to the document.
// Every step is optional: an absent key skips its write.
type ApplyBrandingUseCase struct {
	sink port.DocumentStyleSink
}

// NewApplyBrandingUseCase creates a new branding application use case.
func NewApplyBrandingUseCase(sink port.DocumentStyleSink) *ApplyBrandingUseCase {
	return &ApplyBrandingUseCase{
		sink: sink,
	}
}

// ApplyBrandingOutput reports which keys were written.
type ApplyBrandingOutput struct {
	Applied []entity.Key
}

// Execute applies the non-theme branding values. Values are passed through
// literally; sink failures are logged and the remaining steps still run.
func (uc *ApplyBrandingUseCase) Execute(ctx context.Context, values entity.Values) ApplyBrandingOutput {
	log := logging.FromContext(ctx)
	var out ApplyBrandingOutput

	setProperty := func(key entity.Key, name, value string) {
		if err := uc.sink.SetProperty(ctx, name, value); err != nil {
			log.Warn().Err(err).Str("property", name).Msg("failed to set custom property")
			return
		}
		out.Applied = append(out.Applied, key)
	}

	if v, ok := values.Value(entity.KeyPrimaryColor); ok {
		setProperty(entity.KeyPrimaryColor, entity.PropertyPrimaryColor, v)
	}
	if v, ok := values.Value(entity.KeyAccentColor); ok {
		setProperty(entity.KeyAccentColor, entity.PropertyAccentColor, v)
	}
	if v, ok := values.Value(entity.KeyLogoURL); ok {
		setProperty(entity.KeyLogoURL, entity.PropertyLogoURL, entity.CSSURL(v))
	}

	if v, ok := values.Value(entity.KeyFontURL); ok {
		face := entity.NewCustomFontFace(v)
		if err := uc.sink.AppendFontFace(ctx, face); err != nil {
			log.Warn().Err(err).Str("font_url", v).Msg("failed to inject font face")
		}
		// Set even when injection failed.
		setProperty(entity.KeyFontURL, entity.PropertyFontFamily, entity.FontFamilyStack(face.Family))
	}

	log.Debug().Int("applied", len(out.Applied)).Msg("branding applied")
	return out
}
