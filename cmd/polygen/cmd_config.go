package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"polygen/internal/config"
)

func newConfigCommand(store *config.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the settings document",
		Long: `Inspect and edit the nested settings document.

The in-memory document always starts from complete defaults; --config on the
root command merges an override file on top. 'config set --save' persists
the result.`,
	}

	cmd.AddCommand(newConfigGetCommand(store))
	cmd.AddCommand(newConfigSetCommand(store))
	cmd.AddCommand(newConfigShowCommand(store))

	return cmd
}

func newConfigGetCommand(store *config.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "get <dotted.path>",
		Short: "Read a value by dotted path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := store.Get(args[0])
			if !ok {
				// A missing path is "no value", not a failure.
				fmt.Fprintf(cmd.OutOrStdout(), "(not set)\n") //nolint:errcheck
				return nil
			}

			data, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("serializing value: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data)) //nolint:errcheck
			return nil
		},
	}
}

func newConfigSetCommand(store *config.Store) *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   "set <dotted.path> <value>",
		Short: "Set a value by dotted path",
		Long: `Set a value by dotted path, creating intermediate sections as needed.

The value is parsed as JSON when possible (numbers, booleans, objects,
arrays) and taken as a plain string otherwise.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store.Set(args[0], parseScalar(args[1]))

			if savePath != "" {
				if err := store.SaveTo(savePath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", savePath) //nolint:errcheck
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s (in memory; use --save to persist)\n", args[0]) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "Persist the document to this file after setting")

	return cmd
}

func newConfigShowCommand(store *config.Store) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the full settings document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			switch format {
			case "json":
				data, err = json.MarshalIndent(store.Document(), "", "  ")
			case "yaml":
				data, err = yaml.Marshal(store.Document())
			default:
				return fmt.Errorf("unknown format %q: want json or yaml", format)
			}
			if err != nil {
				return fmt.Errorf("serializing config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data)) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: json or yaml")

	return cmd
}

// parseScalar interprets a CLI value: valid JSON is taken structurally,
// anything else is a plain string.
func parseScalar(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}
