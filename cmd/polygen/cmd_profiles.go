package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"polygen/internal/profile"
)

func newProfilesCommand(registry *profile.Registry) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List language profiles and their characteristics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch format {
			case "table":
				renderProfiles(out, registry)
				return nil
			case "json", "yaml":
				snapshots := make([]profile.Portable, 0, registry.Len())
				for _, name := range registry.Names() {
					p, ok := registry.Get(name)
					if !ok {
						continue
					}
					snapshots = append(snapshots, p.Portable())
				}

				var (
					data []byte
					err  error
				)
				if format == "json" {
					data, err = json.MarshalIndent(snapshots, "", "  ")
				} else {
					data, err = yaml.Marshal(snapshots)
				}
				if err != nil {
					return fmt.Errorf("serializing profiles: %w", err)
				}
				fmt.Fprintln(out, string(data)) //nolint:errcheck
				return nil
			default:
				return fmt.Errorf("unknown format %q: want table, json, or yaml", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json, or yaml")

	return cmd
}
