package mod

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/cmdutil"
	"github.com/moduledev/cli/internal/core/module"
	"github.com/moduledev/cli/internal/core/tree"
	"github.com/moduledev/cli/internal/core/versionkey"
	oerrors "github.com/moduledev/cli/internal/errors"
	"github.com/moduledev/cli/internal/output"
)

// NewCheckCmd creates the check command.
func NewCheckCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the tree and every module version",
		Long: `Check that the tree is set up and that every module version is in place
with a loader link to the master loader file and a descriptor that parses.

One status line is printed per module version. The command fails when any
version is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runCheck(cfg)
		},
	}
}

func runCheck(cfg *cmdtypes.GlobalConfig) error {
	t, err := cmdutil.OpenTree(cfg)
	if err != nil {
		return err
	}
	output.Println(output.FormatStatusLine(t.Root(), output.StatusValid))

	names, err := t.ModuleNames()
	if err != nil {
		return cmdutil.Exit(err)
	}

	invalid := 0
	for _, name := range names {
		versions, err := t.AvailableVersions(name)
		if err != nil {
			return cmdutil.Exit(err)
		}
		versionkey.Sort(versions)
		modLog := output.ModuleLogger(name)

		for _, v := range versions {
			if reason := checkVersion(t, name, v); reason != "" {
				invalid++
				output.Println(output.FormatStatusLine(name+" "+v, output.StatusInvalid))
				modLog.Warn(reason, "version", v)
				continue
			}
			output.Println(output.FormatStatusLine(name+" "+v, output.StatusValid))
		}
	}

	if invalid > 0 {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitValidationError,
			Err:  oerrors.Wrap(oerrors.ErrValidation, fmt.Sprintf("%d module version(s) invalid", invalid)),
		}
	}
	return nil
}

// checkVersion returns why name at version is invalid, or "" when it is
// fine.
func checkVersion(t *tree.Tree, name, version string) string {
	l, err := tree.NewLoader(t, name, version)
	if err != nil {
		return err.Error()
	}
	if !l.IsValid() {
		return "install directory, descriptor or loader link missing"
	}
	if _, err := l.Load(module.ParseStrict); err != nil {
		return err.Error()
	}
	return ""
}
