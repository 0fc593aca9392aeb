package mod

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/cmdutil"
	"github.com/moduledev/cli/internal/output"
)

// NewSetupCmd creates the setup command.
func NewSetupCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "setup <label>",
		Short: "Set up a module tree",
		Long: `Set up the module tree at the configured root.

The root must be an empty, writable directory. Setup creates:

  <root>/module/<label>_modulefile   master loader file
  <root>/modulefile/                 loader hierarchy

The label is the default category of new modules.

Examples:
  # Set up a tree labelled "lab"
  moduledev --root /opt/modules setup lab`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runSetup(args, cfg)
		},
	}
}

func runSetup(args []string, cfg *cmdtypes.GlobalConfig) error {
	label := args[0]

	t, err := cmdutil.NewTree(cfg)
	if err != nil {
		return err
	}
	if err := t.Setup(label); err != nil {
		return cmdutil.Exit(err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Set up module tree %s in %s",
		output.StyleNoun.Render(label), t.Root())))
	return nil
}
