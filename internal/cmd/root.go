// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cmdconfig "github.com/moduledev/cli/internal/cmd/config"
	"github.com/moduledev/cli/internal/cmd/mod"
	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/config"
	"github.com/moduledev/cli/internal/output"
)

// rootFlags holds the raw persistent flag values.
type rootFlags struct {
	root       string
	maintainer string
	config     string
	verbose    bool
	noColor    bool
}

// NewRootCmd creates the root command for the moduledev CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "moduledev",
		Short: "Environment modules tree manager",
		Long: `moduledev creates and maintains a tree of environment modules.

A tree holds one master loader file, a loader hierarchy of symlinks into it
and the install directory and descriptor of every module version.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cfg, &flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.root, "root", "", "Module tree root (env: MODULEDEV_ROOT)")
	rootCmd.PersistentFlags().StringVar(&flags.maintainer, "maintainer", "", "Maintainer written into new modules (env: MODULEDEV_MAINTAINER)")
	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: MODULEDEV_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(mod.NewCommands(cfg)...)
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals sets up logging, opens the config store and resolves the
// global settings into cfg.
func initializeGlobals(cfg *cmdtypes.GlobalConfig, flags *rootFlags) error {
	output.SetupLogging(output.LogConfig{Verbose: flags.verbose})
	output.ConfigureColor(flags.noColor)

	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: fmt.Errorf("resolving config path: %w", err)}
	}

	store, err := config.OpenStore(configPath.Value)
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
	}

	cfg.Store = store
	cfg.ConfigPath = store.Path()
	cfg.Verbose = flags.verbose
	cfg.EditorEnv = os.Getenv("EDITOR")

	cfg.Root = config.ResolveRoot(flags.root, store.Config())
	cfg.Root.Value = config.ExpandTilde(cfg.Root.Value)
	cfg.Maintainer = config.ResolveMaintainer(flags.maintainer, store.Config())

	config.LogResolvedValues(configPath, cfg.Root, cfg.Maintainer)
	return nil
}
