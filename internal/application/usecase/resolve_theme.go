package usecase

import (
	"context"

	"github.com/bnema/uxtheme/internal/application/port"
	"github.com/bnema/uxtheme/internal/domain/entity"
	"github.com/bnema/uxtheme/internal/logging"
)

// ResolveThemeUseCase turns the THEME setting into a resolved mode and writes
// it to the document root.
type ResolveThemeUseCase struct {
	sink   port.DocumentStyleSink
	scheme port.ColorSchemeResolver
}

// NewResolveThemeUseCase creates a new theme resolution use case.
// scheme may be nil when the environment cannot report a color scheme;
// "auto" then resolves to light.
func NewResolveThemeUseCase(sink port.DocumentStyleSink, scheme port.ColorSchemeResolver) *ResolveThemeUseCase {
	return &ResolveThemeUseCase{
		sink:   sink,
		scheme: scheme,
	}
}

// ResolveThemeInput contains parameters for theme resolution.
type ResolveThemeInput struct {
	// Theme is the raw THEME value. Empty means absent.
	Theme string

	// OnPreference receives system preference changes while the returned
	// subscription is alive. It may also be called once during Execute with
	// the preference Execute applies. When nil, the use case rewrites the
	// mode itself.
	OnPreference func(prefersDark bool)
}

// ResolveThemeOutput contains the resolution result.
type ResolveThemeOutput struct {
	Setting entity.ThemeSetting
	Mode    entity.ResolvedMode

	// Subscription is set only for "auto" with a working preference source.
	// The caller owns it and must release it.
	Subscription *Subscription
}

// Execute resolves the mode, writes the theme attribute and, for "auto",
// subscribes to system preference changes.
func (uc *ResolveThemeUseCase) Execute(ctx context.Context, input ResolveThemeInput) ResolveThemeOutput {
	log := logging.FromContext(ctx)
	setting := entity.ParseThemeSetting(input.Theme)

	if setting != entity.ThemeAuto {
		mode := entity.ModeLight
		if setting == entity.ThemeDark {
			mode = entity.ModeDark
		}
		uc.ApplyMode(ctx, mode)
		return ResolveThemeOutput{Setting: setting, Mode: mode}
	}

	if uc.scheme == nil {
		log.Debug().Msg("no color scheme resolver, auto theme falls back to light")
		uc.ApplyMode(ctx, entity.ModeLight)
		return ResolveThemeOutput{Setting: setting, Mode: entity.ModeLight}
	}

	notify := input.OnPreference
	if notify == nil {
		notify = func(prefersDark bool) {
			uc.ApplyMode(ctx, entity.ModeFromPreference(prefersDark))
		}
	}

	// Subscribe before reading the preference so a flip reported in between
	// is not lost. Refresh rather than Resolve so later notifications compare
	// against the preference applied here.
	unregister := uc.scheme.OnChange(func(p port.ColorSchemePreference) {
		notify(p.PrefersDark)
	})
	pref := uc.scheme.Refresh()
	if !pref.Detected() {
		unregister()
		log.Debug().Msg("system color scheme unavailable, auto theme falls back to light")
		uc.ApplyMode(ctx, entity.ModeLight)
		return ResolveThemeOutput{Setting: setting, Mode: entity.ModeLight}
	}

	mode := entity.ModeFromPreference(pref.PrefersDark)
	uc.ApplyMode(ctx, mode)

	log.Debug().
		Str("mode", mode.String()).
		Str("source", pref.Source).
		Msg("auto theme following system color scheme")

	return ResolveThemeOutput{
		Setting:      setting,
		Mode:         mode,
		Subscription: NewSubscription(unregister),
	}
}

// ApplyMode writes the theme attribute for mode.
func (uc *ResolveThemeUseCase) ApplyMode(ctx context.Context, mode entity.ResolvedMode) {
	if err := uc.sink.SetAttribute(ctx, entity.ThemeAttribute, mode.String()); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("mode", mode.String()).
			Msg("failed to write theme attribute")
	}
}
