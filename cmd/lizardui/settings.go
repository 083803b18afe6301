package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/lizardui/pkg/settings"
)

func newSettingsCmd(*globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "defaults",
		Short: "Print the default settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(settings.Defaults()); err != nil {
				return err
			}
			return enc.Close()
		},
	})
	return cmd
}
