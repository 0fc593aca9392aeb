package mod

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/cmdutil"
	"github.com/moduledev/cli/internal/output"
)

// NewShowCmd creates the show command.
func NewShowCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var vf cmdutil.VersionFlag
	var pf cmdutil.ParseFlags

	c := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the descriptor of a module",
		Long:  `Print the descriptor file of a module as stored on disk.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			_, l, err := cmdutil.LoadModule(cfg, args[0], vf.Version, pf.Policy(cfg.FileConfig()))
			if err != nil {
				return err
			}
			path, err := l.DescriptorPath()
			if err != nil {
				return cmdutil.Exit(err)
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return cmdutil.Exit(fmt.Errorf("reading descriptor: %w", err))
			}
			output.Print(string(content))
			return nil
		},
	}

	vf.AddTo(c)
	pf.AddTo(c)

	return c
}

// NewLocationCmd creates the location command.
func NewLocationCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var vf cmdutil.VersionFlag
	var pf cmdutil.ParseFlags

	c := &cobra.Command{
		Use:   "location <name>",
		Short: "Print the install directory of a module",
		Long: `Print the install directory of a module.

Examples:
  cd "$(moduledev location hello)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			_, l, err := cmdutil.LoadModule(cfg, args[0], vf.Version, pf.Policy(cfg.FileConfig()))
			if err != nil {
				return err
			}
			install, err := l.InstallPath()
			if err != nil {
				return cmdutil.Exit(err)
			}
			output.Println(install)
			return nil
		},
	}

	vf.AddTo(c)
	pf.AddTo(c)

	return c
}
