package mod

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/cmdutil"
	"github.com/moduledev/cli/internal/core/versionkey"
	oerrors "github.com/moduledev/cli/internal/errors"
	"github.com/moduledev/cli/internal/output"
)

// NewVersionsCmd creates the versions command.
func NewVersionsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "versions <name>",
		Short: "List the versions of a module",
		Long: `List the installed versions of a module from oldest to newest.

The latest version, the one used when --version is omitted, is marked.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runVersions(args, cfg)
		},
	}
}

func runVersions(args []string, cfg *cmdtypes.GlobalConfig) error {
	name := args[0]

	t, err := cmdutil.OpenTree(cfg)
	if err != nil {
		return err
	}

	versions, err := t.AvailableVersions(name)
	if err != nil || len(versions) == 0 {
		return cmdutil.Exit(oerrors.NewNotFoundError(
			fmt.Sprintf("Module %s does not exist", name), t.Root(), ""))
	}
	versionkey.Sort(versions)

	latest := versions[len(versions)-1]
	for _, v := range versions {
		if v == latest {
			output.Println(fmt.Sprintf("%s %s", v, output.StyleDim.Render("(latest)")))
			continue
		}
		output.Println(v)
	}
	return nil
}
