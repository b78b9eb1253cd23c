package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/uxtheme/internal/cli"
	"github.com/bnema/uxtheme/internal/cli/styles"
	"github.com/bnema/uxtheme/internal/domain/entity"
)

var inspectScheme string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the resolved branding configuration",
	Long: `Show where the configuration came from, the theme mode it resolves to,
and a preview of the configured colors.`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectScheme, "scheme", cli.SchemeSystem, "color scheme for THEME=auto: system, dark, light")
}

func runInspect(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	scheme, err := app.ColorScheme(inspectScheme)
	if err != nil {
		return err
	}

	_, status := app.RenderDocument(scheme)

	view := styles.InspectView{
		ConfigFile: app.Manager.ConfigFileUsed(),
		Setting:    status.Setting,
		Mode:       status.Mode,
		Values:     status.Snapshot.Values,
	}
	if status.Setting == entity.ThemeAuto && scheme != nil {
		view.Source = scheme.Resolve().Source
	}

	accent, _ := status.Snapshot.Value(entity.KeyAccentColor)
	renderer := styles.NewInspectRenderer(styles.NewTheme(status.Mode, accent))
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(view))
	return nil
}
