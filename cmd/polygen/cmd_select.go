package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"polygen/internal/profile"
	"polygen/internal/query"
)

func newSelectCommand(registry *profile.Registry) *cobra.Command {
	var (
		weightArgs       []string
		useCase          string
		useCaseWeight    float64
		requirementsPath string
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Rank language profiles against a requirement query",
		Long: `Rank every registered language profile against a weighted requirement
query and report the best match.

Build the query from repeated --weight dimension=weight flags plus an
optional --use-case, or load a requirement object from a JSON file with
--requirements. Dimensions the query omits are skipped entirely; they never
dilute a profile's weighted average.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := buildQuery(cmd, weightArgs, useCase, useCaseWeight, requirementsPath)
			if err != nil {
				return err
			}

			result := registry.FindBest(q)
			if result.Profile == nil {
				return &NoMatchError{Message: "no language profiles registered"}
			}

			out := cmd.OutOrStdout()
			renderRanking(out, rankProfiles(registry, q))
			fmt.Fprintf(out, "\nBest match: %s (score %.2f)\n", result.Language, result.Score) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&weightArgs, "weight", "w", nil, "Dimension weight as dimension=weight (repeatable)")
	cmd.Flags().StringVarP(&useCase, "use-case", "u", "", "Use case to match against profile affinities")
	cmd.Flags().Float64Var(&useCaseWeight, "use-case-weight", 1, "Weight of the use-case term")
	cmd.Flags().StringVarP(&requirementsPath, "requirements", "r", "", "JSON file holding a requirement object")

	return cmd
}

// buildQuery assembles the profile query from either a requirement file or
// the individual flags.
func buildQuery(cmd *cobra.Command, weightArgs []string, useCase string, useCaseWeight float64, requirementsPath string) (profile.Query, error) {
	if requirementsPath != "" {
		if len(weightArgs) > 0 || useCase != "" {
			return profile.Query{}, fmt.Errorf("--requirements cannot be combined with --weight or --use-case")
		}
		return loadRequirements(requirementsPath)
	}

	weights := map[string]float64{}
	for _, arg := range weightArgs {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return profile.Query{}, fmt.Errorf("invalid --weight %q: want dimension=weight", arg)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return profile.Query{}, fmt.Errorf("invalid --weight %q: %w", arg, err)
		}
		weights[strings.TrimSpace(name)] = w
	}

	var ucWeight *float64
	if cmd.Flags().Changed("use-case-weight") {
		ucWeight = &useCaseWeight
	}

	return query.FromWeights(weights, useCase, ucWeight)
}

// loadRequirements reads a requirement object from a JSON file, validates
// it, and decodes it into a query.
func loadRequirements(path string) (profile.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return profile.Query{}, fmt.Errorf("reading requirements %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return profile.Query{}, fmt.Errorf("parsing requirements %s: %w", path, err)
	}

	if errs := query.Validate(raw); len(errs) > 0 {
		return profile.Query{}, fmt.Errorf("requirements %s failed validation: %s", path, strings.Join(errs, "; "))
	}

	return query.Decode(raw)
}
