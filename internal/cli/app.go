// Package cli wires configuration, logging and the theme engine for the
// uxtheme commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bnema/uxtheme/internal/application/port"
	"github.com/bnema/uxtheme/internal/domain/build"
	"github.com/bnema/uxtheme/internal/infrastructure/colorscheme"
	"github.com/bnema/uxtheme/internal/infrastructure/config"
	"github.com/bnema/uxtheme/internal/infrastructure/document"
	"github.com/bnema/uxtheme/internal/logging"
	"github.com/bnema/uxtheme/internal/ui/theme"
)

// Color scheme overrides accepted by --scheme.
const (
	SchemeSystem = "system"
	SchemeDark   = "dark"
	SchemeLight  = "light"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	BuildInfo build.Info

	ctx context.Context
}

// NewApp loads the configuration and builds the logger it describes.
func NewApp(opts config.Options) (*App, error) {
	manager, err := config.NewManager(opts)
	if err != nil {
		return nil, err
	}
	if err := manager.Load(); err != nil {
		return nil, err
	}
	cfg, err := manager.Get()
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logging.Config{
		Level:      level,
		Format:     cfg.Logging.Format,
		TimeFormat: time.TimeOnly,
		Output:     os.Stderr,
	})

	return &App{
		Config:  cfg,
		Manager: manager,
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// Context returns the base context carrying the logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// ColorScheme builds the resolver for a --scheme value. "system" uses the
// desktop detectors and returns nil when none is available on this host.
func (a *App) ColorScheme(scheme string) (port.ColorSchemeResolver, error) {
	switch scheme {
	case SchemeDark:
		return colorscheme.NewResolver(colorscheme.NewStaticDetector(true)), nil
	case SchemeLight:
		return colorscheme.NewResolver(colorscheme.NewStaticDetector(false)), nil
	case SchemeSystem, "":
		if !a.Config.ColorScheme.Desktop {
			return nil, nil
		}
		detectors := colorscheme.DesktopDetectors()
		if !colorscheme.HasAvailable(detectors) {
			logging.FromContext(a.ctx).Debug().Msg("no desktop color scheme detector available")
			return nil, nil
		}
		return colorscheme.NewResolver(detectors...), nil
	default:
		return nil, fmt.Errorf("unknown color scheme %q (use: system, dark, light)", scheme)
	}
}

// RenderDocument applies the current snapshot to an in-memory document and
// returns the document with the engine status.
func (a *App) RenderDocument(scheme port.ColorSchemeResolver) (*document.Memory, theme.Status) {
	ctx := logging.WithComponent(a.ctx, "render")
	doc := document.NewMemory()
	engine := theme.NewEngine(doc, scheme)
	defer engine.Close(ctx)

	engine.Apply(ctx, a.Manager.Snapshot())
	return doc, engine.Status()
}
