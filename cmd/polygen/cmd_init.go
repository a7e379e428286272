package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"polygen/internal/config"
	"polygen/internal/wizard"
)

// configFileName is the config document each project directory carries.
const configFileName = "polygen.json"

func newInitCommand(store *config.Store) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a project directory",
		Long: `Initialize a polygen project directory with a complete configuration file.

The current settings document, defaults plus any loaded overrides, is
persisted verbatim as polygen.json.

Use --interactive to run a guided form that collects provider, model, and
output directory before writing.

If no directory is specified, the current directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}

			if interactive {
				defaults := wizard.Setup{
					Provider:  stringAt(store, "llm.provider", config.DefaultProvider),
					Model:     stringAt(store, "llm.model", config.DefaultModel),
					OutputDir: stringAt(store, "paths.outputDir", config.DefaultOutputDir),
				}

				setup, err := wizard.RunSetupWizard(cmd.InOrStdin(), cmd.OutOrStdout(), defaults)
				if err != nil {
					return err
				}
				setup.Apply(store.Set)
			}

			configPath := filepath.Join(dir, configFileName)
			if err := store.SaveTo(configPath); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Project initialized\n")        //nolint:errcheck
			fmt.Fprintf(out, "  %s\n", configPath)           //nolint:errcheck
			fmt.Fprintf(out, "\nNext: polygen generate --help\n") //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run guided project setup")

	return cmd
}

// stringAt reads a string from the store, falling back when absent.
func stringAt(store *config.Store, path, fallback string) string {
	if v, ok := store.GetString(path); ok && v != "" {
		return v
	}
	return fallback
}
