package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/uxtheme/internal/cli"
)

var cssScheme string

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the document theme for the current configuration",
	Long: `Apply the current configuration to an empty document and print the
resulting root element and stylesheet.

--scheme decides what THEME=auto resolves to: "system" asks the desktop
(gsettings, macOS defaults, GTK_THEME), "dark" and "light" force it.

Examples:
  uxtheme css
  UX_THEME=auto uxtheme css --scheme dark
  uxtheme css -c ./branding.toml`,
	RunE: runCSS,
}

func init() {
	rootCmd.AddCommand(cssCmd)
	cssCmd.Flags().StringVar(&cssScheme, "scheme", cli.SchemeSystem, "color scheme for THEME=auto: system, dark, light")
}

func runCSS(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	scheme, err := app.ColorScheme(cssScheme)
	if err != nil {
		return err
	}

	doc, _ := app.RenderDocument(scheme)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, doc.RootTag())
	fmt.Fprint(out, doc.Stylesheet())
	return nil
}
