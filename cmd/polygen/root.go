package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"polygen/internal/config"
	"polygen/internal/profile"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	store := config.NewStore()
	registry := profile.Builtin()

	cmd := &cobra.Command{
		Use:   "polygen",
		Short: "polygen - language selection and service generation",
		Long: `Polygen ranks implementation languages against weighted requirements and
generates service scaffolding in the winner.

Describe the service you want, let the oracle extract a requirement vector,
or supply dimension weights directly with --weight.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	configPath := cmd.PersistentFlags().String("config", "", "Config override file (.json, .yml, or .yaml)")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
		if *configPath != "" {
			// Configuration is best-effort; a bad override never stops a run.
			if err := store.LoadFrom(*configPath); err != nil {
				slog.Warn("ignoring config override", "error", err)
			}
		}
	}

	// Add subcommands
	cmd.AddCommand(newSelectCommand(registry))
	cmd.AddCommand(newProfilesCommand(registry))
	cmd.AddCommand(newInitCommand(store))
	cmd.AddCommand(newConfigCommand(store))
	cmd.AddCommand(newGenerateCommand(store, registry))

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
