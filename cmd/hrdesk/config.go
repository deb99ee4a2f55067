package main

import (
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/hrdesk/cmd"
	"github.com/cristianoliveira/hrdesk/internal/colors"
	"github.com/cristianoliveira/hrdesk/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a sample config.toml unless one exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteSample()
			if err != nil {
				return err
			}
			colors.Success("Config file: " + path)
			return nil
		},
	})
	return configCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewConfigCmd())
}
