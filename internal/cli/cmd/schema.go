package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/uxtheme/internal/infrastructure/config"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration file",
	Long: `Print a JSON schema describing uxtheme.toml, for editor completion and
validation.`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
