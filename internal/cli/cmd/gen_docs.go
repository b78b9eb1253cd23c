package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/uxtheme/internal/cli"
	"github.com/bnema/uxtheme/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate command and configuration reference docs",
	Long: `Generate man pages or markdown for every command, plus a reference of
the branding keys (file name, environment variable, effect on the document).

  man       uxtheme(1) pages and uxtheme.toml(5)
  markdown  one file per command and uxtheme-config.md with the JSON schema

Man pages go to ~/.local/share/man by default; markdown goes to ./docs.

Examples:
  uxtheme gen-docs
  uxtheme gen-docs --format markdown
  uxtheme gen-docs --output ./man`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

// docLayout says where one format puts the command tree and the config page.
type docLayout struct {
	commandDir string
	configPath string
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	layout, err := resolveDocLayout(genDocsFormat, genDocsOutputDir)
	if err != nil {
		return err
	}

	written, err := generateDocs(genDocsFormat, layout)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %s docs:\n", genDocsFormat)
	for _, f := range written {
		fmt.Fprintf(out, "  - %s\n", f)
	}
	if genDocsFormat == "man" {
		fmt.Fprintln(out, "Run 'mandb' if 'man uxtheme' doesn't work immediately.")
	}
	return nil
}

// resolveDocLayout keeps both man sections side by side under the man root;
// an explicit output directory receives everything.
func resolveDocLayout(format, outputDir string) (docLayout, error) {
	switch format {
	case "man":
		if outputDir != "" {
			return docLayout{commandDir: outputDir, configPath: filepath.Join(outputDir, "uxtheme.toml.5")}, nil
		}
		man1, err := config.GetManDir()
		if err != nil {
			return docLayout{}, fmt.Errorf("resolve man directory: %w", err)
		}
		man5 := filepath.Join(filepath.Dir(man1), "man5")
		return docLayout{commandDir: man1, configPath: filepath.Join(man5, "uxtheme.toml.5")}, nil
	case "markdown":
		if outputDir == "" {
			outputDir = "./docs"
		}
		return docLayout{commandDir: outputDir, configPath: filepath.Join(outputDir, "uxtheme-config.md")}, nil
	default:
		return docLayout{}, fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
}

// generateDocs writes the command tree and the config reference and returns
// the files it produced.
func generateDocs(format string, layout docLayout) ([]string, error) {
	for _, dir := range []string{layout.commandDir, filepath.Dir(layout.configPath)} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	// No timestamp footer, so output is reproducible.
	rootCmd.DisableAutoGenTag = true

	now := time.Now()
	var (
		ext         string
		writeConfig func(io.Writer) error
	)
	switch format {
	case "man":
		ext = ".1"
		header := &doc.GenManHeader{
			Title:   "UXTHEME",
			Section: "1",
			Source:  "uxtheme " + buildInfo.Version,
			Manual:  "uxtheme Manual",
			Date:    &now,
		}
		if err := doc.GenManTree(rootCmd, header, layout.commandDir); err != nil {
			return nil, fmt.Errorf("generate man pages: %w", err)
		}
		writeConfig = func(w io.Writer) error { return cli.WriteConfigMan(w, buildInfo.Version, now) }
	case "markdown":
		ext = ".md"
		if err := doc.GenMarkdownTree(rootCmd, layout.commandDir); err != nil {
			return nil, fmt.Errorf("generate markdown docs: %w", err)
		}
		writeConfig = cli.WriteConfigMarkdown
	default:
		return nil, fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}

	if err := writeDocFile(layout.configPath, writeConfig); err != nil {
		return nil, fmt.Errorf("generate config reference: %w", err)
	}

	matches, err := filepath.Glob(filepath.Join(layout.commandDir, "uxtheme*"+ext))
	if err != nil {
		return nil, err
	}
	written := append(matches, layout.configPath)
	slices.Sort(written)
	return slices.Compact(written), nil
}

func writeDocFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
