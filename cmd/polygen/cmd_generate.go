package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"polygen/internal/config"
	"polygen/internal/oracle"
	"polygen/internal/profile"
	"polygen/internal/query"
	"polygen/internal/scaffold"
)

// generateWorkers bounds concurrent module generation requests.
const generateWorkers = 4

func newGenerateCommand(store *config.Store, registry *profile.Registry) *cobra.Command {
	var (
		projectName string
		modelID     string
		outputDir   string
		offline     bool
	)

	cmd := &cobra.Command{
		Use:   "generate <description...>",
		Short: "Generate a service from a natural-language description",
		Long: `Generate service scaffolding from a natural-language description.

The oracle extracts a weighted requirement vector from the description, the
scorer ranks the language profiles, the oracle decomposes the service into
modules for the winner, and the generated files are written under the output
directory.

With --offline a canned oracle is used; no credentials or network access are
needed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")

			if err := scaffold.ValidateName(projectName); err != nil {
				return err
			}

			if modelID == "" {
				modelID = stringAt(store, "llm.model", config.DefaultModel)
			}
			if outputDir == "" {
				outputDir = stringAt(store, "paths.outputDir", config.DefaultOutputDir)
			}

			engine := buildEngine(store, modelID, offline)

			ctx := cmd.Context()
			if err := engine.Initialize(ctx); err != nil {
				return err
			}
			defer func() {
				if err := engine.Shutdown(ctx); err != nil {
					slog.Warn("engine shutdown failed", "error", err)
				}
			}()

			client := oracle.NewClient(engine, modelID)
			out := cmd.OutOrStdout()

			// Requirement extraction. A malformed or unusable requirement
			// object degrades to an empty query; only ranking over an empty
			// registry is unanswerable.
			q := profile.Query{}
			raw, err := client.ExtractRequirements(ctx, description)
			if err != nil {
				slog.Warn("requirement extraction unusable; ranking with empty query", "error", err)
			} else if decoded, err := query.Decode(raw); err != nil {
				slog.Warn("requirement object undecodable; ranking with empty query", "error", err)
			} else {
				q = decoded
			}

			result := registry.FindBest(q)
			if result.Profile == nil {
				return &NoMatchError{Message: "no language profiles registered"}
			}

			fmt.Fprintf(out, "Selected language: %s (score %.2f)\n", result.Language, result.Score) //nolint:errcheck

			modules, err := client.Decompose(ctx, description, result.Language)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Decomposed into %d module(s)\n", len(modules)) //nolint:errcheck

			sources, err := generateSources(cmd, client, description, result.Language, modules)
			if err != nil {
				return err
			}

			plan, err := scaffold.NewPlan(projectName, result.Language, description, result.Score, modules, sources)
			if err != nil {
				return err
			}

			projectDir := filepath.Join(outputDir, projectName)
			written, err := plan.Write(projectDir)
			if err != nil {
				return err
			}

			// Keep the settings that produced this project next to it.
			if err := store.SaveTo(filepath.Join(projectDir, configFileName)); err != nil {
				slog.Warn("could not persist project config", "error", err)
			}

			fmt.Fprintf(out, "\nProject written to %s\n", projectDir) //nolint:errcheck
			for _, path := range written {
				fmt.Fprintf(out, "  %s\n", path) //nolint:errcheck
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectName, "name", "n", "service", "Project name (directory under the output dir)")
	cmd.Flags().StringVarP(&modelID, "model", "m", "", "Model to use (default from configuration)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default from configuration)")
	cmd.Flags().BoolVar(&offline, "offline", false, "Use the canned oracle instead of a live model")

	return cmd
}

// buildEngine picks the oracle backend: canned responses offline, the
// Copilot SDK otherwise. Credentials come from the environment first, then
// the settings document.
func buildEngine(store *config.Store, modelID string, offline bool) oracle.Engine {
	if offline {
		return oracle.NewMockEngine(modelID)
	}

	token := os.Getenv("POLYGEN_API_KEY")
	if token == "" {
		token = stringAt(store, "llm.apiKey", "")
	}
	return oracle.NewCopilotEngineBuilder(modelID, token, nil).Build()
}

// generateSources asks the oracle for every module's source, a few modules
// at a time. Results are keyed by module name for the scaffold plan.
func generateSources(cmd *cobra.Command, client *oracle.Client, description, language string, modules []oracle.ModuleSpec) (map[string]string, error) {
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(generateWorkers)

	var mu sync.Mutex
	sources := make(map[string]string, len(modules))

	for _, mod := range modules {
		g.Go(func() error {
			code, err := client.GenerateModule(ctx, description, language, mod)
			if err != nil {
				return fmt.Errorf("generating module %s: %w", mod.Name, err)
			}
			mu.Lock()
			sources[mod.Name] = code
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}
