package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/uxtheme/internal/application/port"
	"github.com/bnema/uxtheme/internal/infrastructure/browser"
	"github.com/bnema/uxtheme/internal/infrastructure/colorscheme"
	"github.com/bnema/uxtheme/internal/logging"
	"github.com/bnema/uxtheme/internal/ui/theme"
)

var (
	watchURL      string
	watchEmulate  string
	watchHeadless bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep a live page themed from the configuration",
	Long: `Open a page in Chromium and keep its theme in sync with the configuration
file and the page's prefers-color-scheme until interrupted.

Edits to uxtheme.toml are applied as soon as the file is saved. With
THEME=auto the data-theme attribute follows the page's color scheme;
--emulate forces it to dark or light.

Examples:
  uxtheme watch --url http://localhost:3000
  uxtheme watch --url http://localhost:3000 --emulate dark --headless`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchURL, "url", "", "page to open (default: browser.url from config)")
	watchCmd.Flags().StringVar(&watchEmulate, "emulate", "", "force prefers-color-scheme: dark, light")
	watchCmd.Flags().BoolVar(&watchHeadless, "headless", false, "run Chromium without a window")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config

	opts := browser.Options{
		URL:           cfg.Browser.URL,
		Headless:      cfg.Browser.Headless,
		ExecPath:      cfg.Browser.ExecPath,
		EmulateScheme: cfg.Browser.Emulate,
	}
	if cmd.Flags().Changed("url") {
		opts.URL = watchURL
	}
	if cmd.Flags().Changed("emulate") {
		opts.EmulateScheme = watchEmulate
	}
	if cmd.Flags().Changed("headless") {
		opts.Headless = watchHeadless
	}
	if opts.URL == "" {
		return fmt.Errorf("no page to open: pass --url or set browser.url")
	}
	switch opts.EmulateScheme {
	case "", "dark", "light":
	default:
		return fmt.Errorf("invalid --emulate %q (use: dark, light)", opts.EmulateScheme)
	}

	ctx, stop := signal.NotifyContext(app.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithURL(logging.WithComponent(ctx, "watch"), opts.URL)
	log := logging.FromContext(ctx)

	page, err := browser.Open(ctx, opts)
	if err != nil {
		return err
	}
	defer page.Close()

	resolver := colorscheme.NewResolver(browser.NewDetector(page))
	if cfg.ColorScheme.Desktop {
		for _, d := range colorscheme.DesktopDetectors() {
			resolver.RegisterDetector(d)
		}
	}
	if err := page.WatchColorScheme(ctx, resolver); err != nil {
		return fmt.Errorf("watch page color scheme: %w", err)
	}
	if err := app.Manager.Watch(ctx); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	engine := theme.NewEngine(page, resolver)
	page.OnLoad(func() {
		log.Debug().Msg("page loaded, re-applying branding")
		engine.Reapply()
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return engine.Run(gctx, app.Manager)
	})
	if cfg.ColorScheme.Desktop {
		startDesktopMonitors(gctx, g, resolver, cfg.ColorScheme.PollInterval)
	}

	log.Info().Msg("watching, press Ctrl+C to stop")
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("stopped")
	return nil
}

// startDesktopMonitors feeds desktop preference changes into resolver.
// Monitor failures are logged and do not stop the watch.
func startDesktopMonitors(ctx context.Context, g *errgroup.Group, resolver port.ColorSchemeResolver, interval time.Duration) {
	log := logging.FromContext(ctx)

	if colorscheme.NewGsettingsDetector().Available() {
		monitor := colorscheme.NewGsettingsMonitor(resolver)
		g.Go(func() error {
			if err := monitor.Run(ctx); err != nil {
				log.Warn().Err(err).Msg("gsettings monitor stopped")
			}
			return nil
		})
	}

	poller := colorscheme.NewPoller(resolver, interval)
	g.Go(func() error {
		return poller.Run(ctx)
	})
}
