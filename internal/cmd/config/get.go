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

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "get [setting]",
		Short: "Print a setting, or the whole configuration",
		Long: fmt.Sprintf(`Print the stored value of a setting. Without a setting the whole
configuration is printed as YAML.

Settings: %s`, strings.Join(config.Settings, ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			key := ""
			if len(args) == 1 {
				key = args[0]
			}
			out, err := cfg.Store.Dump(key)
			if err != nil {
				return cmdutil.Exit(err)
			}
			output.Println(out)
			return nil
		},
	}
}
