// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/moduledev/cli/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage the global configuration",
		Long: `Read and write the moduledev configuration file
(~/.moduledev/config.yaml, or --config / MODULEDEV_CONFIG).`,
	}

	c.AddCommand(NewConfigGetCmd(cfg))
	c.AddCommand(NewConfigSetCmd(cfg))

	return c
}
