package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/cmdutil"
	"github.com/moduledev/cli/internal/config"
	"github.com/moduledev/cli/internal/output"
)

// NewConfigSetCmd creates the config set command.
func NewConfigSetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "set <setting> <value>",
		Short: "Store a setting",
		Long: fmt.Sprintf(`Store a setting in the configuration file, creating it if needed.

Settings: %s

Examples:
  moduledev config set root /opt/modules
  moduledev config set maintainer "Jane Doe"`, strings.Join(config.Settings, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			if err := cfg.Store.Set(args[0], args[1]); err != nil {
				return cmdutil.Exit(err)
			}
			if err := cfg.Store.Save(); err != nil {
				return cmdutil.Exit(err)
			}
			output.Debug("config saved", "path", cfg.Store.Path(), "key", args[0])
			return nil
		},
	}
}
