package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/uxtheme/internal/cli/styles"
	"github.com/bnema/uxtheme/internal/domain/entity"
	"github.com/bnema/uxtheme/internal/infrastructure/colorscheme"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show build, configuration and detector information",
	Long: `Display build info, the config file in use, the configured theme and
which system color scheme detectors are available on this host.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	view := styles.AboutView{
		Build:      app.BuildInfo,
		ConfigFile: app.Manager.ConfigFileUsed(),
		Theme:      entity.ThemeSetting(app.Config.Theme),
	}
	if app.Config.ColorScheme.Desktop {
		for _, d := range colorscheme.DesktopDetectors() {
			view.Detectors = append(view.Detectors, styles.DetectorStatus{Name: d.Name(), Available: d.Available()})
		}
	}

	theme := styles.NewTheme(entity.ModeDark, app.Config.AccentColor)
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(theme).Render(view))
	return nil
}
