// Package cmd provides Cobra CLI commands for uxtheme.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/uxtheme/internal/cli"
	"github.com/bnema/uxtheme/internal/domain/build"
	"github.com/bnema/uxtheme/internal/infrastructure/config"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "uxtheme",
		Short: "Apply branding configuration to a document theme",
		Long: `uxtheme maps a small branding configuration (theme mode, colors, logo,
custom font) onto a document: a data-theme attribute and CSS custom
properties on the root element, plus an @font-face rule for the custom font.

Configuration comes from uxtheme.toml ($XDG_CONFIG_HOME/uxtheme or the
current directory) and UX_* environment variables (UX_THEME,
UX_PRIMARY_COLOR, UX_ACCENT_COLOR, UX_LOGO_URL, UX_FONT_URL).

With THEME=auto the document follows the system color scheme.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(config.Options{ConfigFile: configFile})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default: search $XDG_CONFIG_HOME/uxtheme and .)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
